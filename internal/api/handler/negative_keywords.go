package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
	"github.com/vfg2006/negative-keywords-api/internal/usecases/provisioning"
	"github.com/vfg2006/negative-keywords-api/pkg/apiErrors"
	"github.com/vfg2006/negative-keywords-api/pkg/log"
)

// SubmitNegativeKeywords admite um lote de solicitações no ledger. A
// resposta informa contagens por item; a aplicação na conta externa é
// assíncrona.
func SubmitNegativeKeywords(service provisioning.ProvisioningService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var inputs []domain.NewNegativeKeywordInput
		if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
			logger.WithError(err).Warn("negative-keywords: invalid submission payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Payload de submissão inválido", err.Error())
			return
		}

		if len(inputs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhuma solicitação informada", nil)
			return
		}

		logger.WithField("batch_size", len(inputs)).Info("negative-keywords: submission batch received")

		result, err := service.SubmitRequests(inputs)
		if err != nil {
			logger.WithError(err).Error("negative-keywords: failed to process submission batch")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar solicitações", err.Error())
			return
		}

		logger.WithFields(log.Fields{
			"added":  result.Added,
			"failed": result.Failed,
		}).Info("negative-keywords: submission batch handled")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("negative-keywords: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListNegativeKeywords devolve as solicitações particionadas por nível,
// incluindo status, mensagem e data de processamento de cada uma
func ListNegativeKeywords(service provisioning.ProvisioningService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		state, err := service.GetProvisioningState()
		if err != nil {
			logger.WithError(err).Error("negative-keywords: failed to read provisioning state")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar solicitações", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(state); err != nil {
			logger.WithError(err).Error("negative-keywords: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// RemoveNegativeKeyword exclui uma solicitação do ledger, qualquer que seja
// o status dela
func RemoveNegativeKeyword(service provisioning.ProvisioningService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da solicitação não informado", nil)
			return
		}

		logger.WithField("request_id", id).Info("negative-keywords: removal requested")

		removed, err := service.RemoveRequest(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"request_id": id,
				"error":      err.Error(),
			}).Error("negative-keywords: failed to remove request")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover solicitação", err.Error())
			return
		}

		if !removed {
			apiErrors.WriteError(w, apiErrors.ErrRequestNotFound, "Solicitação não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"removed": true, "id": id})
	})
}

// GetProcessingStatus resume o estado da fila de provisionamento
func GetProcessingStatus(service provisioning.ProvisioningService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status, err := service.GetProcessingStatus()
		if err != nil {
			logger.WithError(err).Error("negative-keywords: failed to read processing status")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar status de processamento", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("negative-keywords: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
