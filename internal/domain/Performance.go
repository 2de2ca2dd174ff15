package domain

import (
	"github.com/vfg2006/negative-keywords-api/pkg/utils"
)

// PerformanceRow representa as métricas de um termo de busca dentro da
// janela de relatório vigente. O snapshot é produzido integralmente pelo
// coletor externo e substitui o anterior; este núcleo só lê.
type PerformanceRow struct {
	ID                string  `json:"id"`
	SearchTerm        string  `json:"search_term"`
	CampaignName      string  `json:"campaign_name"`
	AdGroupName       string  `json:"ad_group_name"`
	Cost              float64 `json:"cost"`
	Clicks            int     `json:"clicks"`
	Impressions       int     `json:"impressions"`
	Conversions       float64 `json:"conversions"`
	CostPerConversion float64 `json:"cost_per_conversion"`
	CTR               float64 `json:"ctr"`
	CPC               float64 `json:"cpc"`
}

// RecomputeDerived recalcula os campos derivados a partir dos campos base.
// Os valores recebidos do coletor nunca são autoritativos.
func (r *PerformanceRow) RecomputeDerived() {
	r.CostPerConversion = 0
	if r.Conversions > 0 {
		r.CostPerConversion = utils.RoundWithTwoDecimalPlace(r.Cost / r.Conversions)
	}

	r.CTR = 0
	if r.Impressions > 0 {
		r.CTR = utils.RoundWithFourDecimalPlace(float64(r.Clicks) / float64(r.Impressions) * 100)
	}

	r.CPC = 0
	if r.Clicks > 0 {
		r.CPC = utils.RoundWithTwoDecimalPlace(r.Cost / float64(r.Clicks))
	}
}
