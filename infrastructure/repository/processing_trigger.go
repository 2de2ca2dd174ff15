package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/negative-keywords-api/infrastructure/database/postgres"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
)

const (
	processingTriggersTable = "processing_triggers pt"
)

// ProcessingTriggerRepository guarda os marcadores consultivos de "há
// trabalho disponível". O worker não depende deles para correção.
type ProcessingTriggerRepository interface {
	Insert(trigger *domain.ProcessingTrigger) error
	ListPending() ([]*domain.ProcessingTrigger, error)
	MarkCompleted(id string, message string) error
}

type processingTriggerRepository struct {
	conn *postgres.Connection
}

func NewProcessingTriggerRepository(conn *postgres.Connection) ProcessingTriggerRepository {
	return &processingTriggerRepository{
		conn: conn,
	}
}

func (r *processingTriggerRepository) Insert(trigger *domain.ProcessingTrigger) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("processing_triggers").
		Columns("id", "action", "timestamp", "status", "message").
		Values(
			trigger.ID,
			trigger.Action,
			trigger.Timestamp,
			string(trigger.Status),
			trigger.Message,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *processingTriggerRepository) ListPending() ([]*domain.ProcessingTrigger, error) {
	query, args, err := squirrel.
		Select("pt.id, pt.action, pt.timestamp, pt.status, pt.message, pt.processed_date").
		From(processingTriggersTable).
		Where(squirrel.Eq{"pt.status": string(domain.TriggerStatusPending)}).
		OrderBy("pt.timestamp ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	triggers := make([]*domain.ProcessingTrigger, 0)
	for rows.Next() {
		trigger := &domain.ProcessingTrigger{}
		var status string
		var message sql.NullString
		var processedDate sql.NullTime

		err := rows.Scan(&trigger.ID, &trigger.Action, &trigger.Timestamp, &status, &message, &processedDate)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear trigger: %w", err)
		}

		trigger.Status = domain.TriggerStatus(status)
		trigger.Message = message.String
		if processedDate.Valid {
			processed := processedDate.Time
			trigger.ProcessedDate = &processed
		}

		triggers = append(triggers, trigger)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return triggers, nil
}

func (r *processingTriggerRepository) MarkCompleted(id string, message string) error {
	query, args, err := squirrel.StatementBuilder.
		Update("processing_triggers").
		Set("status", string(domain.TriggerStatusCompleted)).
		Set("message", message).
		Set("processed_date", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
