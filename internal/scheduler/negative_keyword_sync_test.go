package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/negative-keywords-api/infrastructure/integrator/adplatform/adsclient"
	adplatformmocks "github.com/vfg2006/negative-keywords-api/infrastructure/integrator/adplatform/mocks"
	"github.com/vfg2006/negative-keywords-api/infrastructure/repository/mocks"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestNegativeKeywordSyncService_drainPending(t *testing.T) {
	requests := func() []*domain.NegativeKeywordRequest {
		return []*domain.NegativeKeywordRequest{
			{ID: "kw_1_a", KeywordText: "free running shoes", Level: domain.LevelCampaign, CampaignID: "cmp-1002", Status: domain.StatusPending},
			{ID: "kw_2_b", KeywordText: "running shoes repair", Level: domain.LevelAdGroup, CampaignID: "cmp-1002", AdGroupID: "adg-2002", Status: domain.StatusPending},
			{ID: "kw_3_c", KeywordText: "bicycle helmet", Level: domain.LevelSharedList, SharedListID: "lst-3001", Status: domain.StatusPending},
		}
	}

	tests := []struct {
		name              string
		setup             func(integrator *adplatformmocks.MockIntegrator, requestRepo *mocks.MockNegativeKeywordRequestRepository)
		expectedActivated int
		expectedFailed    int
	}{
		{
			name: "Solicitações aplicadas viram ACTIVE com a mensagem do integrador",
			setup: func(integrator *adplatformmocks.MockIntegrator, requestRepo *mocks.MockNegativeKeywordRequestRepository) {
				integrator.EXPECT().ApplyNegativeKeyword(gomock.Any()).Return(`Added to campaign "Search - Running Shoes"`, nil)
				integrator.EXPECT().ApplyNegativeKeyword(gomock.Any()).Return(`Added to ad group "Running Shoes Generic"`, nil)
				integrator.EXPECT().ApplyNegativeKeyword(gomock.Any()).Return(`Added to shared list "Irrelevant queries"`, nil)

				requestRepo.EXPECT().MarkOutcome("kw_1_a", domain.StatusActive, `Added to campaign "Search - Running Shoes"`).Return(nil)
				requestRepo.EXPECT().MarkOutcome("kw_2_b", domain.StatusActive, `Added to ad group "Running Shoes Generic"`).Return(nil)
				requestRepo.EXPECT().MarkOutcome("kw_3_c", domain.StatusActive, `Added to shared list "Irrelevant queries"`).Return(nil)
			},
			expectedActivated: 3,
			expectedFailed:    0,
		},
		{
			name: "Rejeição da plataforma vira FAILED com o texto literal do erro",
			setup: func(integrator *adplatformmocks.MockIntegrator, requestRepo *mocks.MockNegativeKeywordRequestRepository) {
				integrator.EXPECT().ApplyNegativeKeyword(gomock.Any()).Return("", errors.New("Keyword text contains forbidden characters"))
				integrator.EXPECT().ApplyNegativeKeyword(gomock.Any()).Return(`Added to ad group "Running Shoes Generic"`, nil)
				integrator.EXPECT().ApplyNegativeKeyword(gomock.Any()).Return(`Added to shared list "Irrelevant queries"`, nil)

				requestRepo.EXPECT().MarkOutcome("kw_1_a", domain.StatusFailed, "Keyword text contains forbidden characters").Return(nil)
				requestRepo.EXPECT().MarkOutcome("kw_2_b", domain.StatusActive, gomock.Any()).Return(nil)
				requestRepo.EXPECT().MarkOutcome("kw_3_c", domain.StatusActive, gomock.Any()).Return(nil)
			},
			expectedActivated: 2,
			expectedFailed:    1,
		},
		{
			name: "Plataforma inalcançável interrompe a varredura deixando o restante PENDING",
			setup: func(integrator *adplatformmocks.MockIntegrator, requestRepo *mocks.MockNegativeKeywordRequestRepository) {
				integrator.EXPECT().ApplyNegativeKeyword(gomock.Any()).Return(`Added to campaign "Search - Running Shoes"`, nil)
				integrator.EXPECT().ApplyNegativeKeyword(gomock.Any()).Return("", &adsclient.UnreachableError{Err: errors.New("connection refused")})

				// Só a primeira solicitação tem desfecho; as demais não são tocadas
				requestRepo.EXPECT().MarkOutcome("kw_1_a", domain.StatusActive, gomock.Any()).Return(nil)
			},
			expectedActivated: 1,
			expectedFailed:    0,
		},
		{
			name: "Nível inválido é uma falha definitiva do item",
			setup: func(integrator *adplatformmocks.MockIntegrator, requestRepo *mocks.MockNegativeKeywordRequestRepository) {
				integrator.EXPECT().ApplyNegativeKeyword(gomock.Any()).Return("", errors.New("invalid level: ACCOUNT"))
				integrator.EXPECT().ApplyNegativeKeyword(gomock.Any()).Return(`Added to ad group "Running Shoes Generic"`, nil)
				integrator.EXPECT().ApplyNegativeKeyword(gomock.Any()).Return(`Added to shared list "Irrelevant queries"`, nil)

				requestRepo.EXPECT().MarkOutcome("kw_1_a", domain.StatusFailed, "invalid level: ACCOUNT").Return(nil)
				requestRepo.EXPECT().MarkOutcome("kw_2_b", domain.StatusActive, gomock.Any()).Return(nil)
				requestRepo.EXPECT().MarkOutcome("kw_3_c", domain.StatusActive, gomock.Any()).Return(nil)
			},
			expectedActivated: 2,
			expectedFailed:    1,
		},
		{
			name: "Panic no processamento de um item vira FAILED sem derrubar a varredura",
			setup: func(integrator *adplatformmocks.MockIntegrator, requestRepo *mocks.MockNegativeKeywordRequestRepository) {
				integrator.EXPECT().ApplyNegativeKeyword(gomock.Any()).DoAndReturn(func(*domain.NegativeKeywordRequest) (string, error) {
					panic("nil target")
				})
				integrator.EXPECT().ApplyNegativeKeyword(gomock.Any()).Return(`Added to ad group "Running Shoes Generic"`, nil)
				integrator.EXPECT().ApplyNegativeKeyword(gomock.Any()).Return(`Added to shared list "Irrelevant queries"`, nil)

				requestRepo.EXPECT().MarkOutcome("kw_1_a", domain.StatusFailed, "panic while processing request: nil target").Return(nil)
				requestRepo.EXPECT().MarkOutcome("kw_2_b", domain.StatusActive, gomock.Any()).Return(nil)
				requestRepo.EXPECT().MarkOutcome("kw_3_c", domain.StatusActive, gomock.Any()).Return(nil)
			},
			expectedActivated: 2,
			expectedFailed:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRequestRepo := mocks.NewMockNegativeKeywordRequestRepository(ctrl)
			mockIntegrator := adplatformmocks.NewMockIntegrator(ctrl)

			service := &NegativeKeywordSyncService{
				requestRepo: mockRequestRepo,
				integrator:  mockIntegrator,
			}

			tt.setup(mockIntegrator, mockRequestRepo)

			activated, failed := service.drainPending(requests())

			assert.Equal(t, tt.expectedActivated, activated)
			assert.Equal(t, tt.expectedFailed, failed)
		})
	}
}

func TestNegativeKeywordSyncService_refreshReferenceData(t *testing.T) {
	t.Run("Catálogos retornados são espelhados no repositório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReferenceRepo := mocks.NewMockReferenceDataRepository(ctrl)
		mockIntegrator := adplatformmocks.NewMockIntegrator(ctrl)

		service := &NegativeKeywordSyncService{
			referenceRepo: mockReferenceRepo,
			integrator:    mockIntegrator,
		}

		campaign := &domain.ReferenceCampaign{ID: "cmp-1002", Name: "Search - Running Shoes"}
		adGroup := &domain.ReferenceAdGroup{ID: "adg-2002", CampaignID: "cmp-1002", Name: "Running Shoes Generic"}
		sharedList := &domain.ReferenceSharedList{ID: "lst-3001", Name: "Irrelevant queries"}

		mockIntegrator.EXPECT().FetchCampaigns().Return([]*domain.ReferenceCampaign{campaign}, nil)
		mockIntegrator.EXPECT().FetchAdGroups().Return([]*domain.ReferenceAdGroup{adGroup}, nil)
		mockIntegrator.EXPECT().FetchSharedLists().Return([]*domain.ReferenceSharedList{sharedList}, nil)

		mockReferenceRepo.EXPECT().SaveCampaign(campaign).Return(nil)
		mockReferenceRepo.EXPECT().SaveAdGroup(adGroup).Return(nil)
		mockReferenceRepo.EXPECT().SaveSharedList(sharedList).Return(nil)

		service.refreshReferenceData()
	})

	t.Run("Falha em um catálogo não impede os demais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReferenceRepo := mocks.NewMockReferenceDataRepository(ctrl)
		mockIntegrator := adplatformmocks.NewMockIntegrator(ctrl)

		service := &NegativeKeywordSyncService{
			referenceRepo: mockReferenceRepo,
			integrator:    mockIntegrator,
		}

		sharedList := &domain.ReferenceSharedList{ID: "lst-3001", Name: "Irrelevant queries"}

		mockIntegrator.EXPECT().FetchCampaigns().Return(nil, assert.AnError)
		mockIntegrator.EXPECT().FetchAdGroups().Return(nil, assert.AnError)
		mockIntegrator.EXPECT().FetchSharedLists().Return([]*domain.ReferenceSharedList{sharedList}, nil)

		mockReferenceRepo.EXPECT().SaveSharedList(sharedList).Return(nil)

		service.refreshReferenceData()
	})
}

func TestNegativeKeywordSyncService_completeTriggers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTriggerRepo := mocks.NewMockProcessingTriggerRepository(ctrl)

	service := &NegativeKeywordSyncService{
		triggerRepo: mockTriggerRepo,
	}

	mockTriggerRepo.EXPECT().ListPending().Return([]*domain.ProcessingTrigger{
		{ID: "trg001", Status: domain.TriggerStatusPending},
		{ID: "trg002", Status: domain.TriggerStatusPending},
	}, nil)

	mockTriggerRepo.EXPECT().MarkCompleted("trg001", "Run completed: 2 activated, 1 failed").Return(nil)
	mockTriggerRepo.EXPECT().MarkCompleted("trg002", "Run completed: 2 activated, 1 failed").Return(nil)

	service.completeTriggers(2, 1)
}

func TestNegativeKeywordSyncService_GetStatus(t *testing.T) {
	service := &NegativeKeywordSyncService{
		config: NegativeKeywordSyncConfig{
			CronSchedule: "*/15 * * * *",
			SyncEnabled:  true,
		},
		lastRunActivated: 4,
		lastRunFailed:    1,
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "*/15 * * * *", status["sync_cron"])
	assert.Equal(t, 4, status["last_run_activated"])
	assert.Equal(t, 1, status["last_run_failed"])
}
