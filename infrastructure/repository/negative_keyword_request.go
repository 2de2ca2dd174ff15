package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/negative-keywords-api/infrastructure/database/postgres"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
)

const (
	negativeKeywordRequestsTable = "negative_keyword_requests nkr"

	requestColumns = "nkr.id, nkr.keyword_text, nkr.match_type, nkr.level, " +
		"nkr.campaign_id, nkr.campaign_name, nkr.ad_group_id, nkr.ad_group_name, " +
		"nkr.shared_list_id, nkr.shared_list_name, nkr.added_date, nkr.status, " +
		"nkr.message, nkr.processed_date"
)

// NegativeKeywordRequestRepository é o ledger de provisionamento: um store
// durável apenas-apêndice compartilhado entre o caminho de submissão
// (produtor) e o worker (consumidor). A ordem do ledger é (added_date, id).
type NegativeKeywordRequestRepository interface {
	Insert(request *domain.NegativeKeywordRequest) error
	ListPending() ([]*domain.NegativeKeywordRequest, error)
	MarkOutcome(id string, status domain.RequestStatus, message string) error
	Remove(id string) (bool, error)
	ListByLevel(level domain.KeywordLevel) ([]*domain.NegativeKeywordRequest, error)
	ListAll() ([]*domain.NegativeKeywordRequest, error)
}

type negativeKeywordRequestRepository struct {
	conn *postgres.Connection
}

func NewNegativeKeywordRequestRepository(conn *postgres.Connection) NegativeKeywordRequestRepository {
	return &negativeKeywordRequestRepository{
		conn: conn,
	}
}

// Insert grava uma nova solicitação no ledger. Nunca sobrescreve nem
// reordena linhas existentes.
func (r *negativeKeywordRequestRepository) Insert(request *domain.NegativeKeywordRequest) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("negative_keyword_requests").
		Columns(
			"id", "keyword_text", "match_type", "level",
			"campaign_id", "campaign_name", "ad_group_id", "ad_group_name",
			"shared_list_id", "shared_list_name", "added_date", "status", "message",
		).
		Values(
			request.ID,
			request.KeywordText,
			string(request.MatchType),
			string(request.Level),
			nullable(request.CampaignID),
			nullable(request.CampaignName),
			nullable(request.AdGroupID),
			nullable(request.AdGroupName),
			nullable(request.SharedListID),
			nullable(request.SharedListName),
			request.AddedDate,
			string(request.Status),
			request.Message,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// ListPending retorna as solicitações PENDING na ordem do ledger
func (r *negativeKeywordRequestRepository) ListPending() ([]*domain.NegativeKeywordRequest, error) {
	query, args, err := squirrel.
		Select(requestColumns).
		From(negativeKeywordRequestsTable).
		Where(squirrel.Eq{"nkr.status": string(domain.StatusPending)}).
		OrderBy("nkr.added_date ASC", "nkr.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRequests(query, args...)
}

// MarkOutcome registra o desfecho de uma solicitação. Deve ser chamado no
// máximo uma vez por id; o worker garante isso processando cada linha
// pendente exatamente uma vez por varredura.
func (r *negativeKeywordRequestRepository) MarkOutcome(id string, status domain.RequestStatus, message string) error {
	query, args, err := squirrel.StatementBuilder.
		Update("negative_keyword_requests").
		Set("status", string(status)).
		Set("message", message).
		Set("processed_date", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("solicitação não encontrada: %s", id)
	}

	return nil
}

// Remove exclui uma linha do ledger independentemente do status
func (r *negativeKeywordRequestRepository) Remove(id string) (bool, error) {
	query, args, err := squirrel.
		Delete("negative_keyword_requests").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *negativeKeywordRequestRepository) ListByLevel(level domain.KeywordLevel) ([]*domain.NegativeKeywordRequest, error) {
	query, args, err := squirrel.
		Select(requestColumns).
		From(negativeKeywordRequestsTable).
		Where(squirrel.Eq{"nkr.level": string(level)}).
		OrderBy("nkr.added_date ASC", "nkr.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRequests(query, args...)
}

func (r *negativeKeywordRequestRepository) ListAll() ([]*domain.NegativeKeywordRequest, error) {
	query, args, err := squirrel.
		Select(requestColumns).
		From(negativeKeywordRequestsTable).
		OrderBy("nkr.added_date ASC", "nkr.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryRequests(query, args...)
}

func (r *negativeKeywordRequestRepository) queryRequests(query string, args ...interface{}) ([]*domain.NegativeKeywordRequest, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	requests := make([]*domain.NegativeKeywordRequest, 0)
	for rows.Next() {
		request, err := r.scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear solicitação: %w", err)
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return requests, nil
}

func (r *negativeKeywordRequestRepository) scanRequest(rows *sql.Rows) (*domain.NegativeKeywordRequest, error) {
	request := &domain.NegativeKeywordRequest{}
	var matchType, level, status string
	var campaignID, campaignName, adGroupID, adGroupName, sharedListID, sharedListName sql.NullString
	var processedDate sql.NullTime

	err := rows.Scan(
		&request.ID,
		&request.KeywordText,
		&matchType,
		&level,
		&campaignID,
		&campaignName,
		&adGroupID,
		&adGroupName,
		&sharedListID,
		&sharedListName,
		&request.AddedDate,
		&status,
		&request.Message,
		&processedDate,
	)
	if err != nil {
		return nil, err
	}

	request.MatchType = domain.MatchType(matchType)
	request.Level = domain.KeywordLevel(level)
	request.Status = domain.RequestStatus(status)
	request.CampaignID = campaignID.String
	request.CampaignName = campaignName.String
	request.AdGroupID = adGroupID.String
	request.AdGroupName = adGroupName.String
	request.SharedListID = sharedListID.String
	request.SharedListName = sharedListName.String

	if processedDate.Valid {
		processed := processedDate.Time
		request.ProcessedDate = &processed
	}

	return request, nil
}

// nullable converte string vazia em NULL para colunas opcionais
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
