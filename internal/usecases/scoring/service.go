package scoring

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keywords-api/infrastructure/repository"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
	"github.com/vfg2006/negative-keywords-api/pkg/utils"
)

// Limiar de custo abaixo do qual um termo sem conversão não vale a pena
// sinalizar
const minWastedCost = 5.0

// Termos que indicam busca por marca ou intenção de compra; qualquer
// ocorrência (substring, sem diferenciar maiúsculas) recomenda PHRASE
var (
	brandTerms         = []string{"brand", "official", "store", "shop", "buy", "purchase"}
	productIntentTerms = []string{"price", "cost", "cheap", "free", "discount", "sale"}
)

// ScoringService identifica oportunidades de palavras-chave negativas a
// partir do snapshot de desempenho
type ScoringService interface {
	ListOpportunities() ([]*domain.NegativeKeywordCandidate, error)
	Impact() (*domain.OpportunityImpact, error)
}

type Service struct {
	performanceRepository repository.PerformanceRepository
}

func NewService(performanceRepo repository.PerformanceRepository) ScoringService {
	return &Service{
		performanceRepository: performanceRepo,
	}
}

func (s *Service) ListOpportunities() ([]*domain.NegativeKeywordCandidate, error) {
	rows, err := s.performanceRepository.ListRows()
	if err != nil {
		logrus.WithError(err).Error("scoring: failed to load performance snapshot")
		return nil, err
	}

	candidates := IdentifyOpportunities(rows)

	logrus.WithFields(logrus.Fields{
		"rows":       len(rows),
		"candidates": len(candidates),
	}).Info("scoring: opportunities identified")

	return candidates, nil
}

func (s *Service) Impact() (*domain.OpportunityImpact, error) {
	candidates, err := s.ListOpportunities()
	if err != nil {
		return nil, err
	}

	return CalculateImpact(candidates), nil
}

// IdentifyOpportunities filtra e ranqueia os termos de busca que gastam sem
// converter. Um termo qualifica se conversions == 0, cost > 5 e clicks > 0;
// a economia potencial é o custo integral no momento da pontuação.
func IdentifyOpportunities(rows []*domain.PerformanceRow) []*domain.NegativeKeywordCandidate {
	candidates := make([]*domain.NegativeKeywordCandidate, 0)

	for _, row := range rows {
		if row.Conversions != 0 || row.Cost <= minWastedCost || row.Clicks <= 0 {
			continue
		}

		candidates = append(candidates, &domain.NegativeKeywordCandidate{
			SearchTerm:           row.SearchTerm,
			Cost:                 row.Cost,
			Clicks:               row.Clicks,
			Conversions:          row.Conversions,
			PotentialSavings:     row.Cost,
			RecommendedMatchType: RecommendMatchType(row.SearchTerm),
			RecommendedLevel:     RecommendLevel(row),
			CampaignName:         row.CampaignName,
			AdGroupName:          row.AdGroupName,
		})
	}

	// Ordenação estável: empates preservam a ordem de entrada
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PotentialSavings > candidates[j].PotentialSavings
	})

	return candidates
}

// RecommendMatchType sugere a abrangência da palavra-chave negativa a
// partir do próprio termo: EXACT para termos curtos ou de um só token,
// PHRASE quando o termo carrega marca ou intenção de compra, BROAD no resto
func RecommendMatchType(term string) domain.MatchType {
	if len(strings.Fields(term)) <= 1 || len(term) <= 3 {
		return domain.MatchTypeExact
	}

	lowered := strings.ToLower(term)
	for _, brandTerm := range brandTerms {
		if strings.Contains(lowered, brandTerm) {
			return domain.MatchTypePhrase
		}
	}
	for _, intentTerm := range productIntentTerms {
		if strings.Contains(lowered, intentTerm) {
			return domain.MatchTypePhrase
		}
	}

	return domain.MatchTypeBroad
}

// RecommendLevel sugere o escopo de aplicação: AD_GROUP quando mais da
// metade das palavras do termo casa com o nome do grupo de anúncios,
// CAMPAIGN quando ao menos uma casa com o nome da campanha, SHARED_LIST
// caso contrário. O casamento de palavras é por substring em qualquer
// direção.
func RecommendLevel(row *domain.PerformanceRow) domain.KeywordLevel {
	termWords := strings.Fields(strings.ToLower(row.SearchTerm))
	if len(termWords) == 0 {
		return domain.LevelSharedList
	}

	adGroupWords := strings.Fields(strings.ToLower(row.AdGroupName))
	adGroupMatches := 0
	for _, termWord := range termWords {
		if wordOverlaps(termWord, adGroupWords) {
			adGroupMatches++
		}
	}
	if float64(adGroupMatches)/float64(len(termWords)) > 0.5 {
		return domain.LevelAdGroup
	}

	campaignWords := strings.Fields(strings.ToLower(row.CampaignName))
	for _, termWord := range termWords {
		if wordOverlaps(termWord, campaignWords) {
			return domain.LevelCampaign
		}
	}

	return domain.LevelSharedList
}

func wordOverlaps(word string, words []string) bool {
	for _, other := range words {
		if strings.Contains(other, word) || strings.Contains(word, other) {
			return true
		}
	}
	return false
}

// CalculateImpact agrega o impacto estimado de uma lista de candidatos
func CalculateImpact(candidates []*domain.NegativeKeywordCandidate) *domain.OpportunityImpact {
	totalSavings := 0.0
	for _, candidate := range candidates {
		totalSavings += candidate.PotentialSavings
	}

	averageSavings := 0.0
	if len(candidates) > 0 {
		averageSavings = totalSavings / float64(len(candidates))
	}

	return &domain.OpportunityImpact{
		TotalSavings:          utils.RoundWithTwoDecimalPlace(totalSavings),
		AffectedSearchTerms:   len(candidates),
		AverageSavingsPerTerm: utils.RoundWithTwoDecimalPlace(averageSavings),
	}
}
