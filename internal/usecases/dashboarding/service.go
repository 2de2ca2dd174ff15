package dashboarding

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keywords-api/infrastructure/repository"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
	"github.com/vfg2006/negative-keywords-api/internal/usecases/scoring"
	"github.com/vfg2006/negative-keywords-api/pkg/cache"
	"github.com/vfg2006/negative-keywords-api/pkg/utils"
)

const (
	metricsCacheKey  = "dashboard_metrics"
	topOpportunities = 10
)

// DashboardService deriva as métricas de resumo do snapshot de desempenho
type DashboardService interface {
	GetMetrics() (*domain.DashboardMetrics, error)
	ReplaceSnapshot(ctx context.Context, rows []*domain.PerformanceRow) error
}

type Service struct {
	performanceRepository repository.PerformanceRepository
	metricsCache          *cache.TTLCache
}

func NewService(performanceRepo repository.PerformanceRepository, metricsCache *cache.TTLCache) DashboardService {
	return &Service{
		performanceRepository: performanceRepo,
		metricsCache:          metricsCache,
	}
}

// GetMetrics devolve as métricas do painel, memoizadas pelo cache TTL
func (s *Service) GetMetrics() (*domain.DashboardMetrics, error) {
	if cached, ok := s.metricsCache.Get(metricsCacheKey); ok {
		if metrics, ok := cached.(*domain.DashboardMetrics); ok {
			logrus.Debug("dashboard: metrics served from cache")
			return metrics, nil
		}
	}

	rows, err := s.performanceRepository.ListRows()
	if err != nil {
		logrus.WithError(err).Error("dashboard: failed to load performance snapshot")
		return nil, err
	}

	metrics := GenerateDashboardMetrics(rows)
	s.metricsCache.Set(metricsCacheKey, metrics)

	return metrics, nil
}

// ReplaceSnapshot substitui o snapshot de desempenho por inteiro e invalida
// as métricas memoizadas
func (s *Service) ReplaceSnapshot(ctx context.Context, rows []*domain.PerformanceRow) error {
	for _, row := range rows {
		row.RecomputeDerived()
	}

	if err := s.performanceRepository.ReplaceSnapshot(ctx, rows); err != nil {
		logrus.WithError(err).Error("dashboard: failed to replace performance snapshot")
		return err
	}

	s.metricsCache.Invalidate(metricsCacheKey)

	logrus.WithField("rows", len(rows)).Info("dashboard: performance snapshot replaced")

	return nil
}

// GenerateDashboardMetrics calcula totais, desperdício e médias sobre o
// snapshot, além das 10 maiores oportunidades remodeladas para exibição
func GenerateDashboardMetrics(rows []*domain.PerformanceRow) *domain.DashboardMetrics {
	metrics := &domain.DashboardMetrics{
		TopOpportunities: make([]*domain.TopOpportunityRow, 0),
	}

	totalCTR := 0.0
	totalCPC := 0.0
	totalCPA := 0.0
	rowsWithConversions := 0

	for _, row := range rows {
		metrics.TotalCost += row.Cost
		metrics.TotalClicks += row.Clicks
		metrics.TotalConversions += row.Conversions

		if row.Conversions == 0 {
			metrics.WastedSpend += row.Cost
			if row.Cost > 5 {
				metrics.PotentialSavings += row.Cost
			}
		}

		totalCTR += row.CTR
		totalCPC += row.CPC

		if row.Conversions > 0 {
			totalCPA += row.CostPerConversion
			rowsWithConversions++
		}
	}

	if len(rows) > 0 {
		metrics.AverageCTR = utils.RoundWithTwoDecimalPlace(totalCTR / float64(len(rows)))
		metrics.AverageCPC = utils.RoundWithTwoDecimalPlace(totalCPC / float64(len(rows)))
	}
	if rowsWithConversions > 0 {
		metrics.AverageCPA = utils.RoundWithTwoDecimalPlace(totalCPA / float64(rowsWithConversions))
	}

	metrics.TotalCost = utils.RoundWithTwoDecimalPlace(metrics.TotalCost)
	metrics.WastedSpend = utils.RoundWithTwoDecimalPlace(metrics.WastedSpend)
	metrics.PotentialSavings = utils.RoundWithTwoDecimalPlace(metrics.PotentialSavings)

	candidates := scoring.IdentifyOpportunities(rows)
	limit := topOpportunities
	if len(candidates) < limit {
		limit = len(candidates)
	}

	for _, candidate := range candidates[:limit] {
		metrics.TopOpportunities = append(metrics.TopOpportunities, &domain.TopOpportunityRow{
			SearchTerm:   candidate.SearchTerm,
			CampaignName: candidate.CampaignName,
			AdGroupName:  candidate.AdGroupName,
			Cost:         utils.RoundWithTwoDecimalPlace(candidate.Cost),
			Clicks:       candidate.Clicks,
			Impressions:  candidate.Clicks * 10, // aproximação: não há valor medido aqui
			Conversions:  candidate.Conversions,
			Savings:      utils.RoundWithTwoDecimalPlace(candidate.PotentialSavings),
		})
	}

	return metrics
}
