package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/negative-keywords-api/internal/scheduler"
	"github.com/vfg2006/negative-keywords-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeNegativeKeywords = "negative-keywords"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	NegativeKeywordSyncService *scheduler.NegativeKeywordSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeNegativeKeywords:
			if services.NegativeKeywordSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Worker de palavras-chave negativas não disponível", nil)
				return
			}
			services.NegativeKeywordSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: negative-keywords", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"negative-keywords": services.NegativeKeywordSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
