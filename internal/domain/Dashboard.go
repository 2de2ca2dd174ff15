package domain

// TopOpportunityRow é um candidato do scorer remodelado como linha de
// exibição para o painel. Impressions é aproximado como clicks*10 quando
// não há valor medido disponível neste ponto.
type TopOpportunityRow struct {
	SearchTerm   string  `json:"search_term"`
	CampaignName string  `json:"campaign_name"`
	AdGroupName  string  `json:"ad_group_name"`
	Cost         float64 `json:"cost"`
	Clicks       int     `json:"clicks"`
	Impressions  int     `json:"impressions"`
	Conversions  float64 `json:"conversions"`
	Savings      float64 `json:"savings"`
}

// DashboardMetrics reúne os totais e médias exibidos no painel
type DashboardMetrics struct {
	TotalCost        float64              `json:"total_cost"`
	TotalClicks      int                  `json:"total_clicks"`
	TotalConversions float64              `json:"total_conversions"`
	WastedSpend      float64              `json:"wasted_spend"`
	PotentialSavings float64              `json:"potential_savings"`
	AverageCTR       float64              `json:"average_ctr"`
	AverageCPC       float64              `json:"average_cpc"`
	AverageCPA       float64              `json:"average_cpa"`
	TopOpportunities []*TopOpportunityRow `json:"top_opportunities"`
}
