package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/negative-keywords-api/internal/domain"
	"github.com/vfg2006/negative-keywords-api/internal/usecases/dashboarding"
	"github.com/vfg2006/negative-keywords-api/pkg/apiErrors"
	"github.com/vfg2006/negative-keywords-api/pkg/log"
)

// GetDashboardMetrics devolve os totais e as maiores oportunidades do
// snapshot vigente
func GetDashboardMetrics(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metrics, err := service.GetMetrics()
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to generate metrics")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar métricas do painel", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ReplacePerformanceSnapshot substitui o snapshot de desempenho por
// inteiro. Usado pelo coletor externo; não há merge incremental.
func ReplacePerformanceSnapshot(service dashboarding.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var rows []*domain.PerformanceRow
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
			logger.WithError(err).Warn("dashboard: invalid snapshot payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Payload de snapshot inválido", err.Error())
			return
		}

		for _, row := range rows {
			if row.Clicks > row.Impressions {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"Linha de desempenho inválida: clicks maior que impressions", row.ID)
				return
			}
		}

		if err := service.ReplaceSnapshot(r.Context(), rows); err != nil {
			logger.WithError(err).Error("dashboard: failed to replace snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao substituir snapshot", err.Error())
			return
		}

		logger.WithField("rows", len(rows)).Info("dashboard: performance snapshot replaced")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"rows": len(rows)})
	})
}
