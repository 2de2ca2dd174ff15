package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/negative-keywords-api/infrastructure/repository"
	"github.com/vfg2006/negative-keywords-api/pkg/apiErrors"
	"github.com/vfg2006/negative-keywords-api/pkg/log"
)

// ListReferenceCampaigns devolve o espelho local de campanhas mantido pelo
// worker para os dropdowns de submissão
func ListReferenceCampaigns(repo repository.ReferenceDataRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaigns, err := repo.ListCampaigns()
		if err != nil {
			logger.WithError(err).Error("reference-data: failed to list campaigns")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar campanhas", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logger.WithError(err).Error("reference-data: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListReferenceAdGroups devolve o espelho local de grupos de anúncios,
// opcionalmente filtrado por campanha via query string
func ListReferenceAdGroups(repo repository.ReferenceDataRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := r.URL.Query().Get("campaign_id")

		adGroups, err := repo.ListAdGroups(campaignID)
		if err != nil {
			logger.WithError(err).Error("reference-data: failed to list ad groups")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar grupos de anúncios", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(adGroups); err != nil {
			logger.WithError(err).Error("reference-data: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListReferenceSharedLists devolve o espelho local de listas compartilhadas
func ListReferenceSharedLists(repo repository.ReferenceDataRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sharedLists, err := repo.ListSharedLists()
		if err != nil {
			logger.WithError(err).Error("reference-data: failed to list shared lists")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar listas compartilhadas", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sharedLists); err != nil {
			logger.WithError(err).Error("reference-data: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
