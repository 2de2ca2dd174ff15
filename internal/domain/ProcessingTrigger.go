package domain

import "time"

// TriggerStatus é o ciclo de vida de um marcador de processamento
type TriggerStatus string

const (
	TriggerStatusPending   TriggerStatus = "PENDING"
	TriggerStatusCompleted TriggerStatus = "COMPLETED"
)

// ProcessingTrigger sinaliza "há trabalho disponível" para o worker.
// Puramente consultivo: o worker roda no próprio cronograma e sempre
// revarre o ledger, observando ou não os triggers.
type ProcessingTrigger struct {
	ID            string        `json:"id"`
	Action        string        `json:"action"`
	Timestamp     time.Time     `json:"timestamp"`
	Status        TriggerStatus `json:"status"`
	Message       string        `json:"message,omitempty"`
	ProcessedDate *time.Time    `json:"processed_date,omitempty"`
}

const TriggerActionProcessNegativeKeywords = "PROCESS_NEGATIVE_KEYWORDS"
