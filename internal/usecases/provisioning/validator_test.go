package provisioning

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
)

func TestValidator_Validate(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    domain.NewNegativeKeywordInput
		expected []string
	}{
		{
			name: "Entrada válida no nível CAMPAIGN não produz violações",
			input: domain.NewNegativeKeywordInput{
				Text:       "free running shoes",
				MatchType:  domain.MatchTypePhrase,
				Level:      domain.LevelCampaign,
				CampaignID: "cmp-1002",
			},
			expected: []string{},
		},
		{
			name: "Texto vazio é obrigatório",
			input: domain.NewNegativeKeywordInput{
				Text:       "",
				MatchType:  domain.MatchTypeBroad,
				Level:      domain.LevelCampaign,
				CampaignID: "cmp-1002",
			},
			expected: []string{"O texto da palavra-chave é obrigatório"},
		},
		{
			name: "Texto acima de 80 caracteres é rejeitado",
			input: domain.NewNegativeKeywordInput{
				Text:       strings.Repeat("a", 81),
				MatchType:  domain.MatchTypeBroad,
				Level:      domain.LevelCampaign,
				CampaignID: "cmp-1002",
			},
			expected: []string{"O texto da palavra-chave excede 80 caracteres"},
		},
		{
			name: "Texto com exatamente 80 caracteres é aceito",
			input: domain.NewNegativeKeywordInput{
				Text:       strings.Repeat("a", 80),
				MatchType:  domain.MatchTypeBroad,
				Level:      domain.LevelCampaign,
				CampaignID: "cmp-1002",
			},
			expected: []string{},
		},
		{
			name: "Caracteres fora do conjunto permitido são rejeitados",
			input: domain.NewNegativeKeywordInput{
				Text:       "zapatos @baratos",
				MatchType:  domain.MatchTypeBroad,
				Level:      domain.LevelCampaign,
				CampaignID: "cmp-1002",
			},
			expected: []string{"O texto da palavra-chave contém caracteres inválidos"},
		},
		{
			name: "Pontuação básica é aceita",
			input: domain.NewNegativeKeywordInput{
				Text:       "running shoes - size 42, what?!",
				MatchType:  domain.MatchTypeBroad,
				Level:      domain.LevelCampaign,
				CampaignID: "cmp-1002",
			},
			expected: []string{},
		},
		{
			name: "Tipo de correspondência inválido é rejeitado",
			input: domain.NewNegativeKeywordInput{
				Text:       "running shoes",
				MatchType:  domain.MatchType("NEAR"),
				Level:      domain.LevelCampaign,
				CampaignID: "cmp-1002",
			},
			expected: []string{`Tipo de correspondência inválido: "NEAR"`},
		},
		{
			name: "Nível inválido interrompe as checagens por nível",
			input: domain.NewNegativeKeywordInput{
				Text:      "running shoes",
				MatchType: domain.MatchTypeBroad,
				Level:     domain.KeywordLevel("ACCOUNT"),
			},
			expected: []string{`Nível inválido: "ACCOUNT"`},
		},
		{
			name: "CAMPAIGN sem campaign_id é rejeitado",
			input: domain.NewNegativeKeywordInput{
				Text:      "running shoes",
				MatchType: domain.MatchTypeBroad,
				Level:     domain.LevelCampaign,
			},
			expected: []string{"Campaign ID é obrigatório para o nível CAMPAIGN"},
		},
		{
			name: "AD_GROUP sem ad_group_id menciona Ad Group na violação",
			input: domain.NewNegativeKeywordInput{
				Text:       "running shoes",
				MatchType:  domain.MatchTypeBroad,
				Level:      domain.LevelAdGroup,
				CampaignID: "cmp-1002",
			},
			expected: []string{"Ad Group ID é obrigatório para o nível AD_GROUP"},
		},
		{
			name: "AD_GROUP sem nenhum identificador acumula as duas violações",
			input: domain.NewNegativeKeywordInput{
				Text:      "running shoes",
				MatchType: domain.MatchTypeBroad,
				Level:     domain.LevelAdGroup,
			},
			expected: []string{
				"Campaign ID é obrigatório para o nível AD_GROUP",
				"Ad Group ID é obrigatório para o nível AD_GROUP",
			},
		},
		{
			name: "SHARED_LIST sem shared_list_id é rejeitado",
			input: domain.NewNegativeKeywordInput{
				Text:      "running shoes",
				MatchType: domain.MatchTypeBroad,
				Level:     domain.LevelSharedList,
			},
			expected: []string{"Shared List ID é obrigatório para o nível SHARED_LIST"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.Validate(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
