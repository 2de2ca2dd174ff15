package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/negative-keywords-api/infrastructure/database/postgres"
	"github.com/vfg2006/negative-keywords-api/internal/domain"
)

// ReferenceDataRepository espelha os catálogos da conta externa
// (campanhas, grupos de anúncios e listas compartilhadas) usados pelos
// dropdowns de submissão. O worker atualiza o espelho a cada execução.
type ReferenceDataRepository interface {
	SaveCampaign(campaign *domain.ReferenceCampaign) error
	SaveAdGroup(adGroup *domain.ReferenceAdGroup) error
	SaveSharedList(sharedList *domain.ReferenceSharedList) error
	ListCampaigns() ([]*domain.ReferenceCampaign, error)
	ListAdGroups(campaignID string) ([]*domain.ReferenceAdGroup, error)
	ListSharedLists() ([]*domain.ReferenceSharedList, error)
}

type referenceDataRepository struct {
	conn *postgres.Connection
}

func NewReferenceDataRepository(conn *postgres.Connection) ReferenceDataRepository {
	return &referenceDataRepository{
		conn: conn,
	}
}

func (r *referenceDataRepository) SaveCampaign(campaign *domain.ReferenceCampaign) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("reference_campaigns").
		Columns("id", "name", "status", "synced_at").
		Values(campaign.ID, campaign.Name, campaign.Status, campaign.SyncedAt).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				synced_at = EXCLUDED.synced_at
		`).
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

func (r *referenceDataRepository) SaveAdGroup(adGroup *domain.ReferenceAdGroup) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("reference_ad_groups").
		Columns("id", "campaign_id", "name", "status", "synced_at").
		Values(adGroup.ID, adGroup.CampaignID, adGroup.Name, adGroup.Status, adGroup.SyncedAt).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				campaign_id = EXCLUDED.campaign_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
				synced_at = EXCLUDED.synced_at
		`).
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

func (r *referenceDataRepository) SaveSharedList(sharedList *domain.ReferenceSharedList) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("reference_shared_lists").
		Columns("id", "name", "keywords_count", "synced_at").
		Values(sharedList.ID, sharedList.Name, sharedList.KeywordsCount, sharedList.SyncedAt).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				keywords_count = EXCLUDED.keywords_count,
				synced_at = EXCLUDED.synced_at
		`).
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

func (r *referenceDataRepository) ListCampaigns() ([]*domain.ReferenceCampaign, error) {
	query, args, err := squirrel.
		Select("rc.id, rc.name, rc.status, rc.synced_at").
		From("reference_campaigns rc").
		OrderBy("rc.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.ReferenceCampaign, 0)
	for rows.Next() {
		campaign := &domain.ReferenceCampaign{}
		if err := rows.Scan(&campaign.ID, &campaign.Name, &campaign.Status, &campaign.SyncedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

// ListAdGroups retorna os grupos de anúncios do espelho; campaignID vazio
// retorna todos
func (r *referenceDataRepository) ListAdGroups(campaignID string) ([]*domain.ReferenceAdGroup, error) {
	builder := squirrel.
		Select("rag.id, rag.campaign_id, rag.name, rag.status, rag.synced_at").
		From("reference_ad_groups rag").
		OrderBy("rag.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if campaignID != "" {
		builder = builder.Where(squirrel.Eq{"rag.campaign_id": campaignID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	adGroups := make([]*domain.ReferenceAdGroup, 0)
	for rows.Next() {
		adGroup := &domain.ReferenceAdGroup{}
		if err := rows.Scan(&adGroup.ID, &adGroup.CampaignID, &adGroup.Name, &adGroup.Status, &adGroup.SyncedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear grupo de anúncios: %w", err)
		}
		adGroups = append(adGroups, adGroup)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return adGroups, nil
}

func (r *referenceDataRepository) ListSharedLists() ([]*domain.ReferenceSharedList, error) {
	query, args, err := squirrel.
		Select("rsl.id, rsl.name, rsl.keywords_count, rsl.synced_at").
		From("reference_shared_lists rsl").
		OrderBy("rsl.name ASC").
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

	sharedLists := make([]*domain.ReferenceSharedList, 0)
	for rows.Next() {
		sharedList := &domain.ReferenceSharedList{}
		if err := rows.Scan(&sharedList.ID, &sharedList.Name, &sharedList.KeywordsCount, &sharedList.SyncedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear lista compartilhada: %w", err)
		}
		sharedLists = append(sharedLists, sharedList)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sharedLists, nil
}
