package adplatform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/negative-keywords-api/infrastructure/integrator/adplatform/adsclient/mocks"
	adsdomain "github.com/vfg2006/negative-keywords-api/infrastructure/integrator/adplatform/domain"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestAdPlatformIntegrator_ApplyNegativeKeyword(t *testing.T) {
	tests := []struct {
		name            string
		request         *domain.NegativeKeywordRequest
		setup           func(client *mocks.MockClient)
		expectedMessage string
		expectedError   string
	}{
		{
			name: "Nível CAMPAIGN resolve a campanha e aplica a palavra-chave",
			request: &domain.NegativeKeywordRequest{
				ID:          "kw_1_a",
				KeywordText: "free running shoes",
				MatchType:   domain.MatchTypePhrase,
				Level:       domain.LevelCampaign,
				CampaignID:  "cmp-1002",
			},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetCampaignByID("cmp-1002").Return(&adsdomain.Campaign{ID: "cmp-1002", Name: "Search - Running Shoes"}, nil)
				client.EXPECT().AddCampaignNegativeKeyword("cmp-1002", "free running shoes", "PHRASE").Return(nil)
			},
			expectedMessage: `Added to campaign "Search - Running Shoes"`,
		},
		{
			name: "Nível AD_GROUP resolve o grupo e aplica a palavra-chave",
			request: &domain.NegativeKeywordRequest{
				ID:          "kw_2_b",
				KeywordText: "running shoes repair",
				MatchType:   domain.MatchTypeBroad,
				Level:       domain.LevelAdGroup,
				AdGroupID:   "adg-2002",
			},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetAdGroupByID("adg-2002").Return(&adsdomain.AdGroup{ID: "adg-2002", Name: "Running Shoes Generic"}, nil)
				client.EXPECT().AddAdGroupNegativeKeyword("adg-2002", "running shoes repair", "BROAD").Return(nil)
			},
			expectedMessage: `Added to ad group "Running Shoes Generic"`,
		},
		{
			name: "Nível SHARED_LIST resolve a lista e aplica a palavra-chave",
			request: &domain.NegativeKeywordRequest{
				ID:           "kw_3_c",
				KeywordText:  "bicycle helmet",
				MatchType:    domain.MatchTypeExact,
				Level:        domain.LevelSharedList,
				SharedListID: "lst-3001",
			},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetSharedListByID("lst-3001").Return(&adsdomain.SharedList{ID: "lst-3001", Name: "Irrelevant queries"}, nil)
				client.EXPECT().AddSharedListNegativeKeyword("lst-3001", "bicycle helmet", "EXACT").Return(nil)
			},
			expectedMessage: `Added to shared list "Irrelevant queries"`,
		},
		{
			name: "Alvo inexistente interrompe antes da mutação",
			request: &domain.NegativeKeywordRequest{
				ID:         "kw_4_d",
				Level:      domain.LevelCampaign,
				CampaignID: "cmp-9999",
			},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetCampaignByID("cmp-9999").Return(nil, errors.New("Campaign cmp-9999 not found"))
			},
			expectedError: "Campaign cmp-9999 not found",
		},
		{
			name: "Rejeição da plataforma na mutação é repassada literalmente",
			request: &domain.NegativeKeywordRequest{
				ID:          "kw_5_e",
				KeywordText: "free running shoes",
				MatchType:   domain.MatchTypePhrase,
				Level:       domain.LevelCampaign,
				CampaignID:  "cmp-1002",
			},
			setup: func(client *mocks.MockClient) {
				client.EXPECT().GetCampaignByID("cmp-1002").Return(&adsdomain.Campaign{ID: "cmp-1002", Name: "Search - Running Shoes"}, nil)
				client.EXPECT().AddCampaignNegativeKeyword("cmp-1002", "free running shoes", "PHRASE").Return(errors.New("Negative keyword limit exceeded"))
			},
			expectedError: "Negative keyword limit exceeded",
		},
		{
			name: "Nível desconhecido é rejeitado sem tocar no cliente",
			request: &domain.NegativeKeywordRequest{
				ID:    "kw_6_f",
				Level: domain.KeywordLevel("ACCOUNT"),
			},
			setup:         func(client *mocks.MockClient) {},
			expectedError: "invalid level: ACCOUNT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mocks.NewMockClient(ctrl)
			integrator := New(nil, mockClient)

			tt.setup(mockClient)

			message, err := integrator.ApplyNegativeKeyword(tt.request)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				assert.Empty(t, message)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMessage, message)
		})
	}
}

func TestAdPlatformIntegrator_FetchCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(nil, mockClient)

	mockClient.EXPECT().ListCampaigns().Return([]adsdomain.Campaign{
		{ID: "cmp-1001", Name: "Search - Brand", Status: "ENABLED"},
		{ID: "cmp-1004", Name: "Search - Accessories", Status: "PAUSED"},
	}, nil)

	references, err := integrator.FetchCampaigns()

	assert.NoError(t, err)
	assert.Len(t, references, 2)
	assert.Equal(t, "cmp-1001", references[0].ID)
	assert.Equal(t, "PAUSED", references[1].Status)
	assert.False(t, references[0].SyncedAt.IsZero())
}

func TestAdPlatformIntegrator_FetchSharedLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	integrator := New(nil, mockClient)

	mockClient.EXPECT().ListSharedLists().Return([]adsdomain.SharedList{
		{ID: "lst-3001", Name: "Irrelevant queries", KeywordsCount: 42},
	}, nil)

	references, err := integrator.FetchSharedLists()

	assert.NoError(t, err)
	assert.Len(t, references, 1)
	assert.Equal(t, 42, references[0].KeywordsCount)
}
