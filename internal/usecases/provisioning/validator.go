package provisioning

import (
	"fmt"
	"regexp"

	"github.com/vfg2006/negative-keywords-api/internal/domain"
)

const maxKeywordLength = 80

// Somente letras, dígitos, espaços e pontuação básica são aceitos pela
// plataforma de anúncios
var keywordTextPattern = regexp.MustCompile(`^[A-Za-z0-9\s\-_.,!?]+$`)

// Validator aplica as regras estruturais e por nível antes da admissão no
// ledger. Cada item de um lote é validado de forma independente.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate retorna a lista de violações; vazia significa admissível
func (v *Validator) Validate(input domain.NewNegativeKeywordInput) []string {
	errors := make([]string, 0)

	if input.Text == "" {
		errors = append(errors, "O texto da palavra-chave é obrigatório")
	} else {
		if len(input.Text) > maxKeywordLength {
			errors = append(errors, fmt.Sprintf("O texto da palavra-chave excede %d caracteres", maxKeywordLength))
		}
		if !keywordTextPattern.MatchString(input.Text) {
			errors = append(errors, "O texto da palavra-chave contém caracteres inválidos")
		}
	}

	if !input.MatchType.Valid() {
		errors = append(errors, fmt.Sprintf("Tipo de correspondência inválido: %q", string(input.MatchType)))
	}

	if !input.Level.Valid() {
		errors = append(errors, fmt.Sprintf("Nível inválido: %q", string(input.Level)))
		return errors
	}

	switch input.Level {
	case domain.LevelCampaign:
		if input.CampaignID == "" {
			errors = append(errors, "Campaign ID é obrigatório para o nível CAMPAIGN")
		}
	case domain.LevelAdGroup:
		if input.CampaignID == "" {
			errors = append(errors, "Campaign ID é obrigatório para o nível AD_GROUP")
		}
		if input.AdGroupID == "" {
			errors = append(errors, "Ad Group ID é obrigatório para o nível AD_GROUP")
		}
	case domain.LevelSharedList:
		if input.SharedListID == "" {
			errors = append(errors, "Shared List ID é obrigatório para o nível SHARED_LIST")
		}
	}

	return errors
}
