package handler

import (
	"net/http"

	"github.com/vfg2006/negative-keywords-api/infrastructure/repository"
	"github.com/vfg2006/negative-keywords-api/internal/api/handler/router"
	"github.com/vfg2006/negative-keywords-api/internal/usecases/dashboarding"
	"github.com/vfg2006/negative-keywords-api/internal/usecases/provisioning"
	"github.com/vfg2006/negative-keywords-api/internal/usecases/scoring"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func NegativeKeywords(service provisioning.ProvisioningService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/negative-keywords",
			Method:  http.MethodPost,
			Handler: SubmitNegativeKeywords(service),
		},
		{
			Path:    "/v1/negative-keywords",
			Method:  http.MethodGet,
			Handler: ListNegativeKeywords(service),
		},
		{
			Path:    "/v1/negative-keywords/processing-status",
			Method:  http.MethodGet,
			Handler: GetProcessingStatus(service),
		},
		{
			Path:    "/v1/negative-keywords/:id",
			Method:  http.MethodDelete,
			Handler: RemoveNegativeKeyword(service),
		},
	}
}

func Opportunities(service scoring.ScoringService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/opportunities",
			Method:  http.MethodGet,
			Handler: ListOpportunities(service),
		},
		{
			Path:    "/v1/opportunities/impact",
			Method:  http.MethodGet,
			Handler: GetOpportunityImpact(service),
		},
	}
}

func Dashboard(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/metrics",
			Method:  http.MethodGet,
			Handler: GetDashboardMetrics(service),
		},
		{
			Path:    "/v1/performance/snapshot",
			Method:  http.MethodPut,
			Handler: ReplacePerformanceSnapshot(service),
		},
	}
}

// ReferenceData retorna as rotas de consulta das entidades da plataforma de anúncios
func ReferenceData(repo repository.ReferenceDataRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reference/campaigns",
			Method:  http.MethodGet,
			Handler: ListReferenceCampaigns(repo),
		},
		{
			Path:    "/v1/reference/ad-groups",
			Method:  http.MethodGet,
			Handler: ListReferenceAdGroups(repo),
		},
		{
			Path:    "/v1/reference/shared-lists",
			Method:  http.MethodGet,
			Handler: ListReferenceSharedLists(repo),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
