package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keywords-api/infrastructure/integrator/adplatform"
	"github.com/vfg2006/negative-keywords-api/infrastructure/integrator/adplatform/adsclient"
	"github.com/vfg2006/negative-keywords-api/infrastructure/repository"
	"github.com/vfg2006/negative-keywords-api/internal/config"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
)

// NegativeKeywordSyncConfig representa a configuração do worker de
// provisionamento
type NegativeKeywordSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// NegativeKeywordSyncService é o worker de provisionamento: drena as
// solicitações PENDING do ledger contra a conta externa e registra o
// desfecho de cada uma. Roda em cronograma fixo; os triggers de submissão
// são consultivos.
type NegativeKeywordSyncService struct {
	scheduler           *gocron.Scheduler
	config              NegativeKeywordSyncConfig
	appConfig           *config.Config
	requestRepo         repository.NegativeKeywordRequestRepository
	triggerRepo         repository.ProcessingTriggerRepository
	referenceRepo       repository.ReferenceDataRepository
	integrator          adplatform.Integrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunActivated    int
	lastRunFailed       int
}

// NewNegativeKeywordSyncService cria uma nova instância do worker
func NewNegativeKeywordSyncService(
	requestRepo repository.NegativeKeywordRequestRepository,
	triggerRepo repository.ProcessingTriggerRepository,
	referenceRepo repository.ReferenceDataRepository,
	integrator adplatform.Integrator,
	appConfig *config.Config,
) *NegativeKeywordSyncService {
	syncConfig := NegativeKeywordSyncConfig{
		CronSchedule: appConfig.NegativeKeywordSync.CronSchedule,
		SyncEnabled:  appConfig.NegativeKeywordSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do worker de palavras-chave negativas carregada")

	return &NegativeKeywordSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		appConfig:     appConfig,
		requestRepo:   requestRepo,
		triggerRepo:   triggerRepo,
		referenceRepo: referenceRepo,
		integrator:    integrator,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *NegativeKeywordSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Worker de palavras-chave negativas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando worker de palavras-chave negativas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.processNegativeKeywords()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar worker de palavras-chave negativas: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando worker de palavras-chave negativas")
		s.scheduler.Stop()
	}()

	return nil
}

// processNegativeKeywords executa uma varredura completa: atualiza os dados
// de referência e drena a fila de solicitações pendentes
func (s *NegativeKeywordSyncService) processNegativeKeywords() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Processamento de palavras-chave negativas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando processamento de solicitações de palavras-chave negativas")

	// Dados de referência primeiro, independente da drenagem da fila
	s.refreshReferenceData()

	pending, err := s.requestRepo.ListPending()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar solicitações pendentes no ledger")
		return
	}

	if len(pending) == 0 {
		logrus.Info("Nenhuma solicitação pendente encontrada")
		s.completeTriggers(0, 0)
		s.lastSyncCompletedAt = time.Now()
		return
	}

	logrus.WithField("pending", len(pending)).Info("Solicitações pendentes encontradas para processamento")

	activated, failed := s.drainPending(pending)

	s.lastRunActivated = activated
	s.lastRunFailed = failed

	s.completeTriggers(activated, failed)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"pending":   len(pending),
		"activated": activated,
		"failed":    failed,
	}).Info("Processamento de palavras-chave negativas concluído")

	s.lastSyncCompletedAt = time.Now()
}

// drainPending processa as solicitações na ordem do ledger. Uma falha
// transitória de alcance interrompe a varredura deixando o restante
// PENDING para a próxima execução agendada; qualquer outra falha é
// definitiva e isolada por item.
func (s *NegativeKeywordSyncService) drainPending(pending []*domain.NegativeKeywordRequest) (int, int) {
	activated := 0
	failed := 0

	for _, request := range pending {
		message, err := s.applyRequest(request)

		if err != nil && adsclient.IsUnreachable(err) {
			logrus.WithFields(logrus.Fields{
				"request_id": request.ID,
				"error":      err.Error(),
			}).Warn("Plataforma de anúncios inalcançável; solicitações restantes permanecem pendentes")
			break
		}

		if err != nil {
			failed++
			s.markOutcome(request.ID, domain.StatusFailed, err.Error())
			continue
		}

		activated++
		s.markOutcome(request.ID, domain.StatusActive, message)
	}

	return activated, failed
}

// applyRequest aplica uma única solicitação, convertendo panic em erro para
// que um item problemático não derrube a varredura
func (s *NegativeKeywordSyncService) applyRequest(request *domain.NegativeKeywordRequest) (message string, err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"request_id": request.ID,
				"panic":      r,
			}).Error("Panic ao processar solicitação de palavra-chave negativa")
			err = fmt.Errorf("panic while processing request: %v", r)
		}
	}()

	return s.integrator.ApplyNegativeKeyword(request)
}

func (s *NegativeKeywordSyncService) markOutcome(id string, status domain.RequestStatus, message string) {
	if err := s.requestRepo.MarkOutcome(id, status, message); err != nil {
		logrus.WithFields(logrus.Fields{
			"request_id": id,
			"status":     string(status),
			"error":      err.Error(),
		}).Error("Erro ao registrar desfecho no ledger")
	}
}

// refreshReferenceData espelha os catálogos da conta externa usados pelos
// dropdowns de submissão. Falhas aqui não bloqueiam a drenagem da fila.
func (s *NegativeKeywordSyncService) refreshReferenceData() {
	campaigns, err := s.integrator.FetchCampaigns()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao atualizar catálogo de campanhas")
	} else {
		for _, campaign := range campaigns {
			if err := s.referenceRepo.SaveCampaign(campaign); err != nil {
				logrus.WithFields(logrus.Fields{
					"campaign_id": campaign.ID,
					"error":       err.Error(),
				}).Warn("Erro ao salvar campanha de referência")
			}
		}
	}

	adGroups, err := s.integrator.FetchAdGroups()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao atualizar catálogo de grupos de anúncios")
	} else {
		for _, adGroup := range adGroups {
			if err := s.referenceRepo.SaveAdGroup(adGroup); err != nil {
				logrus.WithFields(logrus.Fields{
					"ad_group_id": adGroup.ID,
					"error":       err.Error(),
				}).Warn("Erro ao salvar grupo de anúncios de referência")
			}
		}
	}

	sharedLists, err := s.integrator.FetchSharedLists()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao atualizar catálogo de listas compartilhadas")
	} else {
		for _, sharedList := range sharedLists {
			if err := s.referenceRepo.SaveSharedList(sharedList); err != nil {
				logrus.WithFields(logrus.Fields{
					"shared_list_id": sharedList.ID,
					"error":          err.Error(),
				}).Warn("Erro ao salvar lista compartilhada de referência")
			}
		}
	}
}

// completeTriggers fecha os marcadores consultivos com o resumo da execução
func (s *NegativeKeywordSyncService) completeTriggers(activated, failed int) {
	triggers, err := s.triggerRepo.ListPending()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar triggers pendentes")
		return
	}

	summary := fmt.Sprintf("Run completed: %d activated, %d failed", activated, failed)
	for _, trigger := range triggers {
		if err := s.triggerRepo.MarkCompleted(trigger.ID, summary); err != nil {
			logrus.WithFields(logrus.Fields{
				"trigger_id": trigger.ID,
				"error":      err.Error(),
			}).Warn("Erro ao concluir trigger de processamento")
		}
	}
}

// TriggerManualSync inicia manualmente uma varredura do ledger
func (s *NegativeKeywordSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Processamento já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando processamento manual de palavras-chave negativas")
	go s.processNegativeKeywords()
}

// GetStatus retorna o status atual do worker
func (s *NegativeKeywordSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_activated":     s.lastRunActivated,
		"last_run_failed":        s.lastRunFailed,
	}
}
