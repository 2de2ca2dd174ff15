package domain

// Campaign é o formato de campanha retornado pela API da plataforma de anúncios
type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// AdGroup é o formato de grupo de anúncios retornado pela API
type AdGroup struct {
	ID         string `json:"id"`
	CampaignID string `json:"campaign_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
}

// SharedList é o formato de lista compartilhada retornado pela API
type SharedList struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	KeywordsCount int    `json:"keywords_count"`
}

type Paging struct {
	Next string `json:"next,omitempty"`
}
