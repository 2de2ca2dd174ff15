package domain

import "time"

// MatchType define a abrangência de correspondência de uma palavra-chave negativa
type MatchType string

const (
	MatchTypeExact  MatchType = "EXACT"
	MatchTypePhrase MatchType = "PHRASE"
	MatchTypeBroad  MatchType = "BROAD"
)

func (m MatchType) Valid() bool {
	switch m {
	case MatchTypeExact, MatchTypePhrase, MatchTypeBroad:
		return true
	}
	return false
}

// KeywordLevel define o escopo em que a palavra-chave negativa é aplicada
type KeywordLevel string

const (
	LevelCampaign   KeywordLevel = "CAMPAIGN"
	LevelAdGroup    KeywordLevel = "AD_GROUP"
	LevelSharedList KeywordLevel = "SHARED_LIST"
)

func (l KeywordLevel) Valid() bool {
	switch l {
	case LevelCampaign, LevelAdGroup, LevelSharedList:
		return true
	}
	return false
}

// RequestStatus é o ciclo de vida de uma solicitação no ledger.
// PENDING -> ACTIVE | FAILED, transição única feita apenas pelo worker.
type RequestStatus string

const (
	StatusPending RequestStatus = "PENDING"
	StatusActive  RequestStatus = "ACTIVE"
	StatusFailed  RequestStatus = "FAILED"
)

// NegativeKeywordCandidate é a saída do scorer; não é persistida
type NegativeKeywordCandidate struct {
	SearchTerm           string       `json:"search_term"`
	Cost                 float64      `json:"cost"`
	Clicks               int          `json:"clicks"`
	Conversions          float64      `json:"conversions"`
	PotentialSavings     float64      `json:"potential_savings"`
	RecommendedMatchType MatchType    `json:"recommended_match_type"`
	RecommendedLevel     KeywordLevel `json:"recommended_level"`
	CampaignName         string       `json:"campaign_name"`
	AdGroupName          string       `json:"ad_group_name"`
}

// OpportunityImpact agrega o impacto estimado de uma lista de candidatos
type OpportunityImpact struct {
	TotalSavings          float64 `json:"total_savings"`
	AffectedSearchTerms   int     `json:"affected_search_terms"`
	AverageSavingsPerTerm float64 `json:"average_savings_per_term"`
}

// NewNegativeKeywordInput é a forma de submissão vinda do cliente.
// Os campos de identificação exigidos dependem do Level (ver validator).
type NewNegativeKeywordInput struct {
	Text           string       `json:"text"`
	MatchType      MatchType    `json:"match_type"`
	Level          KeywordLevel `json:"level"`
	CampaignID     string       `json:"campaign_id,omitempty"`
	CampaignName   string       `json:"campaign_name,omitempty"`
	AdGroupID      string       `json:"ad_group_id,omitempty"`
	AdGroupName    string       `json:"ad_group_name,omitempty"`
	SharedListID   string       `json:"shared_list_id,omitempty"`
	SharedListName string       `json:"shared_list_name,omitempty"`
}

// NegativeKeywordRequest é a unidade de trabalho do ledger de provisionamento.
// Imutável após a admissão, exceto status/message/processed_date, que só o
// worker escreve.
type NegativeKeywordRequest struct {
	ID             string        `json:"id"`
	KeywordText    string        `json:"keyword_text"`
	MatchType      MatchType     `json:"match_type"`
	Level          KeywordLevel  `json:"level"`
	CampaignID     string        `json:"campaign_id,omitempty"`
	CampaignName   string        `json:"campaign_name,omitempty"`
	AdGroupID      string        `json:"ad_group_id,omitempty"`
	AdGroupName    string        `json:"ad_group_name,omitempty"`
	SharedListID   string        `json:"shared_list_id,omitempty"`
	SharedListName string        `json:"shared_list_name,omitempty"`
	AddedDate      time.Time     `json:"added_date"`
	Status         RequestStatus `json:"status"`
	Message        string        `json:"message"`
	ProcessedDate  *time.Time    `json:"processed_date,omitempty"`
}

// SubmissionError descreve a falha de um item dentro de um lote de submissão
type SubmissionError struct {
	Index  int      `json:"index"`
	Text   string   `json:"text"`
	Errors []string `json:"errors"`
}

// SubmissionResult é o retorno síncrono de uma submissão em lote.
// Added/Failed são contagens por item; o lote nunca é tudo-ou-nada.
type SubmissionResult struct {
	Added   int               `json:"added"`
	Failed  int               `json:"failed"`
	Errors  []SubmissionError `json:"errors"`
	Message string            `json:"message"`
}

// ProvisioningState particiona as solicitações por nível para leitura
type ProvisioningState struct {
	Campaign   []*NegativeKeywordRequest `json:"campaign"`
	AdGroup    []*NegativeKeywordRequest `json:"ad_group"`
	SharedList []*NegativeKeywordRequest `json:"shared_list"`
}

// ProcessingStatus resume o estado da fila para o cliente
type ProcessingStatus struct {
	Status          string     `json:"status"`
	LastProcessed   *time.Time `json:"last_processed,omitempty"`
	PendingRequests int        `json:"pending_requests"`
}

const (
	ProcessingStatusUpToDate = "Up to date"
	ProcessingStatusPending  = "Processing pending"
)
