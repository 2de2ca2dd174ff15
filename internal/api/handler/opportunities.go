package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/negative-keywords-api/internal/usecases/scoring"
	"github.com/vfg2006/negative-keywords-api/pkg/apiErrors"
	"github.com/vfg2006/negative-keywords-api/pkg/log"
)

// ListOpportunities devolve os candidatos a palavra-chave negativa
// ranqueados por economia potencial
func ListOpportunities(service scoring.ScoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		candidates, err := service.ListOpportunities()
		if err != nil {
			logger.WithError(err).Error("opportunities: failed to score performance snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao identificar oportunidades", err.Error())
			return
		}

		logger.WithField("candidates", len(candidates)).Info("opportunities: candidates listed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(candidates); err != nil {
			logger.WithError(err).Error("opportunities: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetOpportunityImpact agrega o impacto estimado dos candidatos atuais
func GetOpportunityImpact(service scoring.ScoringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		impact, err := service.Impact()
		if err != nil {
			logger.WithError(err).Error("opportunities: failed to calculate impact")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular impacto", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(impact); err != nil {
			logger.WithError(err).Error("opportunities: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
