package dashboarding

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/negative-keywords-api/infrastructure/repository/mocks"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
	"github.com/vfg2006/negative-keywords-api/pkg/cache"
	"go.uber.org/mock/gomock"
)

func snapshotRows() []*domain.PerformanceRow {
	rows := []*domain.PerformanceRow{
		{SearchTerm: "buy running shoes", CampaignName: "Search - Running Shoes", AdGroupName: "Running Shoes Generic", Cost: 54.30, Clicks: 61, Impressions: 820, Conversions: 4},
		{SearchTerm: "free running shoes", CampaignName: "Search - Running Shoes", AdGroupName: "Running Shoes Generic", Cost: 18.40, Clicks: 31, Impressions: 412, Conversions: 0},
		{SearchTerm: "insole size chart", CampaignName: "Search - Accessories", AdGroupName: "Insoles", Cost: 3.20, Clicks: 8, Impressions: 95, Conversions: 0},
	}
	for _, row := range rows {
		row.RecomputeDerived()
	}
	return rows
}

func TestGenerateDashboardMetrics(t *testing.T) {
	t.Run("Totais, desperdício e médias sobre o snapshot", func(t *testing.T) {
		metrics := GenerateDashboardMetrics(snapshotRows())

		assert.Equal(t, 75.90, metrics.TotalCost)
		assert.Equal(t, 100, metrics.TotalClicks)
		assert.Equal(t, 4.0, metrics.TotalConversions)

		// Desperdício soma todo termo sem conversão; economia potencial só
		// os acima do limiar de custo
		assert.Equal(t, 21.60, metrics.WastedSpend)
		assert.Equal(t, 18.40, metrics.PotentialSavings)

		// CTR e CPC são médias sobre todas as linhas; CPA só sobre as que
		// convertem
		assert.InDelta(t, 7.79, metrics.AverageCTR, 0.01)
		assert.InDelta(t, 0.63, metrics.AverageCPC, 0.01)
		assert.InDelta(t, 13.575, metrics.AverageCPA, 0.01)
	})

	t.Run("Top oportunidades aproxima impressões como clicks vezes dez", func(t *testing.T) {
		metrics := GenerateDashboardMetrics(snapshotRows())

		assert.Len(t, metrics.TopOpportunities, 1)
		top := metrics.TopOpportunities[0]
		assert.Equal(t, "free running shoes", top.SearchTerm)
		assert.Equal(t, 31, top.Clicks)
		assert.Equal(t, 310, top.Impressions)
		assert.Equal(t, 18.40, top.Savings)
	})

	t.Run("Lista de oportunidades é limitada a dez", func(t *testing.T) {
		rows := make([]*domain.PerformanceRow, 0, 15)
		for i := 0; i < 15; i++ {
			rows = append(rows, &domain.PerformanceRow{
				SearchTerm:   "termo irrelevante",
				CampaignName: "Search",
				AdGroupName:  "Generic",
				Cost:         6.0 + float64(i),
				Clicks:       5,
				Impressions:  100,
				Conversions:  0,
			})
		}

		metrics := GenerateDashboardMetrics(rows)

		assert.Len(t, metrics.TopOpportunities, 10)
		// Ordenadas por economia decrescente
		assert.Equal(t, 20.0, metrics.TopOpportunities[0].Savings)
	})

	t.Run("Snapshot vazio produz métricas zeradas sem divisão por zero", func(t *testing.T) {
		metrics := GenerateDashboardMetrics([]*domain.PerformanceRow{})

		assert.Equal(t, 0.0, metrics.TotalCost)
		assert.Equal(t, 0.0, metrics.AverageCTR)
		assert.Equal(t, 0.0, metrics.AverageCPA)
		assert.Empty(t, metrics.TopOpportunities)
	})
}

func TestService_GetMetrics(t *testing.T) {
	t.Run("Primeira leitura consulta o repositório e memoiza", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPerformanceRepo := mocks.NewMockPerformanceRepository(ctrl)
		service := NewService(mockPerformanceRepo, cache.New(time.Minute))

		// Uma única chamada ao repositório para duas leituras
		mockPerformanceRepo.EXPECT().ListRows().Return(snapshotRows(), nil).Times(1)

		first, err := service.GetMetrics()
		assert.NoError(t, err)

		second, err := service.GetMetrics()
		assert.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("Erro do repositório é propagado sem memoizar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPerformanceRepo := mocks.NewMockPerformanceRepository(ctrl)
		service := NewService(mockPerformanceRepo, cache.New(time.Minute))

		mockPerformanceRepo.EXPECT().ListRows().Return(nil, assert.AnError)

		metrics, err := service.GetMetrics()

		assert.Error(t, err)
		assert.Nil(t, metrics)
	})
}

func TestService_ReplaceSnapshot(t *testing.T) {
	t.Run("Substituição recalcula derivados, persiste e invalida o cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPerformanceRepo := mocks.NewMockPerformanceRepository(ctrl)
		metricsCache := cache.New(time.Minute)
		service := NewService(mockPerformanceRepo, metricsCache)

		// Leitura inicial memoizada
		mockPerformanceRepo.EXPECT().ListRows().Return([]*domain.PerformanceRow{}, nil)
		_, err := service.GetMetrics()
		assert.NoError(t, err)

		rows := []*domain.PerformanceRow{
			{SearchTerm: "free running shoes", Cost: 18.40, Clicks: 31, Impressions: 412, Conversions: 0},
		}

		mockPerformanceRepo.EXPECT().
			ReplaceSnapshot(gomock.Any(), rows).
			DoAndReturn(func(_ context.Context, persisted []*domain.PerformanceRow) error {
				// Derivados recalculados antes da persistência
				assert.InDelta(t, 7.52, persisted[0].CTR, 0.01)
				assert.InDelta(t, 0.59, persisted[0].CPC, 0.01)
				return nil
			})

		err = service.ReplaceSnapshot(context.Background(), rows)
		assert.NoError(t, err)

		// Cache invalidado: a próxima leitura volta ao repositório
		mockPerformanceRepo.EXPECT().ListRows().Return(rows, nil)
		metrics, err := service.GetMetrics()
		assert.NoError(t, err)
		assert.Equal(t, 18.40, metrics.TotalCost)
	})

	t.Run("Erro de persistência é propagado e mantém o cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPerformanceRepo := mocks.NewMockPerformanceRepository(ctrl)
		service := NewService(mockPerformanceRepo, cache.New(time.Minute))

		mockPerformanceRepo.EXPECT().ReplaceSnapshot(gomock.Any(), gomock.Any()).Return(assert.AnError)

		err := service.ReplaceSnapshot(context.Background(), []*domain.PerformanceRow{})
		assert.Error(t, err)
	})
}
