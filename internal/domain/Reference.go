package domain

import "time"

// ReferenceCampaign é uma campanha da conta externa espelhada localmente
// pelo worker para alimentar os dropdowns de submissão
type ReferenceCampaign struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	SyncedAt time.Time `json:"synced_at"`
}

// ReferenceAdGroup é um grupo de anúncios espelhado localmente
type ReferenceAdGroup struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	SyncedAt   time.Time `json:"synced_at"`
}

// ReferenceSharedList é uma lista compartilhada de palavras-chave negativas
type ReferenceSharedList struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	KeywordsCount int       `json:"keywords_count"`
	SyncedAt      time.Time `json:"synced_at"`
}
