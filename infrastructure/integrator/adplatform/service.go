package adplatform

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keywords-api/infrastructure/integrator/adplatform/adsclient"
	"github.com/vfg2006/negative-keywords-api/internal/config"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
)

// Integrator é o colaborador de conta externa usado pelo worker: resolve o
// alvo de cada solicitação, aplica a palavra-chave negativa e fornece os
// catálogos para a atualização de dados de referência.
type Integrator interface {
	ApplyNegativeKeyword(request *domain.NegativeKeywordRequest) (string, error)
	FetchCampaigns() ([]*domain.ReferenceCampaign, error)
	FetchAdGroups() ([]*domain.ReferenceAdGroup, error)
	FetchSharedLists() ([]*domain.ReferenceSharedList, error)
}

type AdPlatformIntegrator struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) *AdPlatformIntegrator {
	return &AdPlatformIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// ApplyNegativeKeyword aplica uma solicitação na conta externa conforme o
// nível. Retorna a mensagem de sucesso ou o erro da plataforma; erros de
// transporte saem como adsclient.UnreachableError para o chamador
// distinguir transitório de definitivo.
func (s *AdPlatformIntegrator) ApplyNegativeKeyword(request *domain.NegativeKeywordRequest) (string, error) {
	switch request.Level {
	case domain.LevelCampaign:
		campaign, err := s.Client.GetCampaignByID(request.CampaignID)
		if err != nil {
			return "", err
		}

		if err := s.Client.AddCampaignNegativeKeyword(request.CampaignID, request.KeywordText, string(request.MatchType)); err != nil {
			return "", err
		}

		logrus.WithFields(logrus.Fields{
			"request_id":  request.ID,
			"campaign_id": campaign.ID,
		}).Debug("adplatform: negative keyword added at campaign level")

		return fmt.Sprintf("Added to campaign %q", campaign.Name), nil

	case domain.LevelAdGroup:
		adGroup, err := s.Client.GetAdGroupByID(request.AdGroupID)
		if err != nil {
			return "", err
		}

		if err := s.Client.AddAdGroupNegativeKeyword(request.AdGroupID, request.KeywordText, string(request.MatchType)); err != nil {
			return "", err
		}

		logrus.WithFields(logrus.Fields{
			"request_id":  request.ID,
			"ad_group_id": adGroup.ID,
		}).Debug("adplatform: negative keyword added at ad group level")

		return fmt.Sprintf("Added to ad group %q", adGroup.Name), nil

	case domain.LevelSharedList:
		sharedList, err := s.Client.GetSharedListByID(request.SharedListID)
		if err != nil {
			return "", err
		}

		if err := s.Client.AddSharedListNegativeKeyword(request.SharedListID, request.KeywordText, string(request.MatchType)); err != nil {
			return "", err
		}

		logrus.WithFields(logrus.Fields{
			"request_id":     request.ID,
			"shared_list_id": sharedList.ID,
		}).Debug("adplatform: negative keyword added to shared list")

		return fmt.Sprintf("Added to shared list %q", sharedList.Name), nil
	}

	// O validator impede níveis inválidos na admissão; chegar aqui indica
	// que a solicitação contornou a validação
	return "", fmt.Errorf("invalid level: %s", request.Level)
}

func (s *AdPlatformIntegrator) FetchCampaigns() ([]*domain.ReferenceCampaign, error) {
	campaigns, err := s.Client.ListCampaigns()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	references := make([]*domain.ReferenceCampaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		references = append(references, &domain.ReferenceCampaign{
			ID:       campaign.ID,
			Name:     campaign.Name,
			Status:   campaign.Status,
			SyncedAt: now,
		})
	}

	logrus.WithField("total_campaigns", len(references)).Debug("adplatform: campaigns fetched for reference data")

	return references, nil
}

func (s *AdPlatformIntegrator) FetchAdGroups() ([]*domain.ReferenceAdGroup, error) {
	adGroups, err := s.Client.ListAdGroups()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	references := make([]*domain.ReferenceAdGroup, 0, len(adGroups))
	for _, adGroup := range adGroups {
		references = append(references, &domain.ReferenceAdGroup{
			ID:         adGroup.ID,
			CampaignID: adGroup.CampaignID,
			Name:       adGroup.Name,
			Status:     adGroup.Status,
			SyncedAt:   now,
		})
	}

	logrus.WithField("total_ad_groups", len(references)).Debug("adplatform: ad groups fetched for reference data")

	return references, nil
}

func (s *AdPlatformIntegrator) FetchSharedLists() ([]*domain.ReferenceSharedList, error) {
	sharedLists, err := s.Client.ListSharedLists()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	references := make([]*domain.ReferenceSharedList, 0, len(sharedLists))
	for _, sharedList := range sharedLists {
		references = append(references, &domain.ReferenceSharedList{
			ID:            sharedList.ID,
			Name:          sharedList.Name,
			KeywordsCount: sharedList.KeywordsCount,
			SyncedAt:      now,
		})
	}

	logrus.WithField("total_shared_lists", len(references)).Debug("adplatform: shared lists fetched for reference data")

	return references, nil
}
