package provisioning

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keywords-api/infrastructure/repository"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
	"github.com/vfg2006/negative-keywords-api/pkg/utils"
)

// Mensagem inicial de toda solicitação admitida no ledger
const waitingMessage = "Waiting for processing"

// ProvisioningService é o caminho de submissão: valida cada item, admite os
// válidos no ledger em PENDING e expõe as visões de leitura. Nunca toca em
// status/message/processed_date de linhas existentes; isso é do worker.
type ProvisioningService interface {
	SubmitRequests(inputs []domain.NewNegativeKeywordInput) (*domain.SubmissionResult, error)
	RemoveRequest(id string) (bool, error)
	GetProvisioningState() (*domain.ProvisioningState, error)
	GetProcessingStatus() (*domain.ProcessingStatus, error)
}

type Service struct {
	validator         *Validator
	requestRepository repository.NegativeKeywordRequestRepository
	triggerRepository repository.ProcessingTriggerRepository
}

func NewService(
	requestRepo repository.NegativeKeywordRequestRepository,
	triggerRepo repository.ProcessingTriggerRepository,
) ProvisioningService {
	return &Service{
		validator:         NewValidator(),
		requestRepository: requestRepo,
		triggerRepository: triggerRepo,
	}
}

// SubmitRequests processa um lote de submissão item a item. Um lote pode
// ser admitido parcialmente; não há deduplicação de termos já
// PENDING/ACTIVE para o mesmo alvo (submissões repetidas criam linhas
// paralelas no ledger).
func (s *Service) SubmitRequests(inputs []domain.NewNegativeKeywordInput) (*domain.SubmissionResult, error) {
	result := &domain.SubmissionResult{
		Errors: make([]domain.SubmissionError, 0),
	}

	for i, input := range inputs {
		if validationErrors := s.validator.Validate(input); len(validationErrors) > 0 {
			result.Failed++
			result.Errors = append(result.Errors, domain.SubmissionError{
				Index:  i,
				Text:   input.Text,
				Errors: validationErrors,
			})
			continue
		}

		request, err := s.buildRequest(input)
		if err != nil {
			logrus.WithError(err).Error("provisioning: failed to build request")
			result.Failed++
			result.Errors = append(result.Errors, domain.SubmissionError{
				Index:  i,
				Text:   input.Text,
				Errors: []string{ErrGenerateRequestID.Error()},
			})
			continue
		}

		if err := s.requestRepository.Insert(request); err != nil {
			admissionErr := errors.Wrap(ErrLedgerAppend, err.Error())
			logrus.WithFields(logrus.Fields{
				"keyword_text": input.Text,
				"level":        string(input.Level),
				"error":        err.Error(),
			}).Error("provisioning: failed to admit request into ledger")

			result.Failed++
			result.Errors = append(result.Errors, domain.SubmissionError{
				Index:  i,
				Text:   input.Text,
				Errors: []string{admissionErr.Error()},
			})
			continue
		}

		result.Added++
	}

	if result.Added > 0 {
		s.recordTrigger(result.Added)
	}

	result.Message = fmt.Sprintf(
		"%d request(s) queued; negative keywords are applied asynchronously by the provisioning worker",
		result.Added,
	)

	logrus.WithFields(logrus.Fields{
		"added":  result.Added,
		"failed": result.Failed,
	}).Info("provisioning: submission batch processed")

	return result, nil
}

func (s *Service) buildRequest(input domain.NewNegativeKeywordInput) (*domain.NegativeKeywordRequest, error) {
	now := time.Now()

	id, err := utils.GenerateRequestID(now)
	if err != nil {
		return nil, err
	}

	return &domain.NegativeKeywordRequest{
		ID:             id,
		KeywordText:    input.Text,
		MatchType:      input.MatchType,
		Level:          input.Level,
		CampaignID:     input.CampaignID,
		CampaignName:   input.CampaignName,
		AdGroupID:      input.AdGroupID,
		AdGroupName:    input.AdGroupName,
		SharedListID:   input.SharedListID,
		SharedListName: input.SharedListName,
		AddedDate:      now,
		Status:         domain.StatusPending,
		Message:        waitingMessage,
	}, nil
}

// recordTrigger grava o marcador consultivo de trabalho disponível. Falha
// aqui não afeta a submissão: o worker revarre o ledger de qualquer forma.
func (s *Service) recordTrigger(added int) {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("provisioning: failed to generate trigger ID")
		return
	}

	trigger := &domain.ProcessingTrigger{
		ID:        id,
		Action:    domain.TriggerActionProcessNegativeKeywords,
		Timestamp: time.Now(),
		Status:    domain.TriggerStatusPending,
		Message:   fmt.Sprintf("%d request(s) awaiting processing", added),
	}

	if err := s.triggerRepository.Insert(trigger); err != nil {
		logrus.WithError(err).Warn("provisioning: failed to record processing trigger")
	}
}

func (s *Service) RemoveRequest(id string) (bool, error) {
	removed, err := s.requestRepository.Remove(id)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"request_id": id,
			"error":      err.Error(),
		}).Error("provisioning: failed to remove request")
		return false, err
	}

	logrus.WithFields(logrus.Fields{
		"request_id": id,
		"removed":    removed,
	}).Info("provisioning: request removal handled")

	return removed, nil
}

// GetProvisioningState particiona as solicitações por nível para as telas
// de acompanhamento
func (s *Service) GetProvisioningState() (*domain.ProvisioningState, error) {
	campaign, err := s.requestRepository.ListByLevel(domain.LevelCampaign)
	if err != nil {
		return nil, errors.Wrap(ErrFetchRequests, err.Error())
	}

	adGroup, err := s.requestRepository.ListByLevel(domain.LevelAdGroup)
	if err != nil {
		return nil, errors.Wrap(ErrFetchRequests, err.Error())
	}

	sharedList, err := s.requestRepository.ListByLevel(domain.LevelSharedList)
	if err != nil {
		return nil, errors.Wrap(ErrFetchRequests, err.Error())
	}

	return &domain.ProvisioningState{
		Campaign:   campaign,
		AdGroup:    adGroup,
		SharedList: sharedList,
	}, nil
}

// GetProcessingStatus resume o estado da fila: pendências e o último
// desfecho registrado pelo worker
func (s *Service) GetProcessingStatus() (*domain.ProcessingStatus, error) {
	pending, err := s.requestRepository.ListPending()
	if err != nil {
		return nil, errors.Wrap(ErrFetchRequests, err.Error())
	}

	all, err := s.requestRepository.ListAll()
	if err != nil {
		return nil, errors.Wrap(ErrFetchRequests, err.Error())
	}

	var lastProcessed *time.Time
	for _, request := range all {
		if request.ProcessedDate == nil {
			continue
		}
		if lastProcessed == nil || request.ProcessedDate.After(*lastProcessed) {
			lastProcessed = request.ProcessedDate
		}
	}

	status := domain.ProcessingStatusUpToDate
	if len(pending) > 0 {
		status = domain.ProcessingStatusPending
	}

	return &domain.ProcessingStatus{
		Status:          status,
		LastProcessed:   lastProcessed,
		PendingRequests: len(pending),
	}, nil
}
