package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/negative-keywords-api/infrastructure/database/postgres"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
)

const (
	performanceTable = "search_term_performance stp"
)

// PerformanceRepository guarda o snapshot de desempenho por termo de busca.
// O snapshot é substituído por inteiro a cada execução do coletor; não há
// merge incremental.
type PerformanceRepository interface {
	ReplaceSnapshot(ctx context.Context, rows []*domain.PerformanceRow) error
	ListRows() ([]*domain.PerformanceRow, error)
}

type performanceRepository struct {
	conn *postgres.Connection
}

func NewPerformanceRepository(conn *postgres.Connection) PerformanceRepository {
	return &performanceRepository{
		conn: conn,
	}
}

// ReplaceSnapshot descarta o snapshot anterior e grava o novo em uma única
// transação, para que leitores nunca observem um estado parcial
func (r *performanceRepository) ReplaceSnapshot(ctx context.Context, rows []*domain.PerformanceRow) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM search_term_performance"); err != nil {
			return fmt.Errorf("erro ao limpar snapshot anterior: %w", err)
		}

		stmt, err := tx.Prepare(pq.CopyIn(
			"search_term_performance",
			"id", "search_term", "campaign_name", "ad_group_name",
			"cost", "clicks", "impressions", "conversions",
		))
		if err != nil {
			return fmt.Errorf("erro ao preparar statement: %w", err)
		}
		defer stmt.Close()

		for _, row := range rows {
			_, err = stmt.Exec(
				row.ID,
				row.SearchTerm,
				row.CampaignName,
				row.AdGroupName,
				row.Cost,
				row.Clicks,
				row.Impressions,
				row.Conversions,
			)
			if err != nil {
				return fmt.Errorf("erro ao inserir linha %s: %w", row.ID, err)
			}
		}

		if _, err = stmt.Exec(); err != nil {
			return fmt.Errorf("erro ao finalizar cópia do snapshot: %w", err)
		}

		return nil
	})
}

// ListRows retorna todas as linhas do snapshot vigente com os campos
// derivados recalculados
func (r *performanceRepository) ListRows() ([]*domain.PerformanceRow, error) {
	query, args, err := squirrel.
		Select("stp.id, stp.search_term, stp.campaign_name, stp.ad_group_name, stp.cost, stp.clicks, stp.impressions, stp.conversions").
		From(performanceTable).
		OrderBy("stp.cost DESC").
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

	performanceRows := make([]*domain.PerformanceRow, 0)
	for rows.Next() {
		row := &domain.PerformanceRow{}
		err := rows.Scan(
			&row.ID,
			&row.SearchTerm,
			&row.CampaignName,
			&row.AdGroupName,
			&row.Cost,
			&row.Clicks,
			&row.Impressions,
			&row.Conversions,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de desempenho: %w", err)
		}

		row.RecomputeDerived()
		performanceRows = append(performanceRows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return performanceRows, nil
}
