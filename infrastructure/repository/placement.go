package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/adboardhq/adboard-api/infrastructure/database/postgres"
	"github.com/adboardhq/adboard-api/internal/domain"
)

const placementTable = "ad_placements"

type PlacementRepository interface {
	// GetEligible devolve os placements ativos de uma superfície dentro do
	// período de veiculação, excluindo os que já atingiram o limite diário
	// de impressões (a menos que a virada do dia os tenha liberado),
	// ordenados por prioridade e depois pelos servidos há mais tempo. Os
	// placements devolvidos têm last_served_at atualizado na mesma
	// transação para a rotação avançar.
	GetEligible(ctx context.Context, placementType domain.PlacementType, limit uint64) ([]domain.Placement, error)

	// RecordInteraction incrementa o contador (impressão ou clique) em uma
	// única instrução atômica: o reset diário, o incremento e o recálculo
	// do CTR acontecem no servidor, então chamadas concorrentes nunca
	// perdem incrementos.
	RecordInteraction(ctx context.Context, placementID string, kind domain.InteractionKind) (*domain.Placement, error)

	GetByID(ctx context.Context, id string) (*domain.Placement, error)
	GetByAdRequestID(ctx context.Context, adRequestID string) (*domain.Placement, error)
	DeactivateByAdRequestID(ctx context.Context, adRequestID string) error
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type placementRepository struct {
	conn *postgres.Connection
}

func NewPlacementRepository(conn *postgres.Connection) PlacementRepository {
	return &placementRepository{conn: conn}
}

var placementColumns = `id, ad_request_id, placement_type, display_priority, start_date,
	end_date, is_active, total_impressions, total_clicks, click_through_rate,
	daily_impression_limit, current_daily_impressions, last_impression_reset,
	last_served_at, created_at, updated_at`

func (r *placementRepository) GetEligible(
	ctx context.Context,
	placementType domain.PlacementType,
	limit uint64,
) ([]domain.Placement, error) {
	// O filtro do limite diário considera a virada do dia: um placement no
	// teto volta a ser elegível quando last_impression_reset é de um dia
	// anterior, porque o contador será zerado na próxima impressão
	query := `
		UPDATE ` + placementTable + ` p
		SET last_served_at = CURRENT_TIMESTAMP
		WHERE p.id IN (
			SELECT id FROM ` + placementTable + `
			WHERE placement_type = $1
			  AND is_active = TRUE
			  AND start_date <= CURRENT_TIMESTAMP
			  AND end_date >= CURRENT_TIMESTAMP
			  AND (
				daily_impression_limit IS NULL
				OR current_daily_impressions < daily_impression_limit
				OR last_impression_reset::date < CURRENT_DATE
			  )
			ORDER BY display_priority DESC, last_served_at ASC NULLS FIRST
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + placementColumns

	rows, err := r.conn.QueryContext(ctx, query, placementType, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar placements elegíveis: %w", err)
	}
	defer rows.Close()

	placements := make([]domain.Placement, 0)
	for rows.Next() {
		placement, err := r.scanRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear placement: %w", err)
		}
		placements = append(placements, *placement)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return placements, nil
}

func (r *placementRepository) RecordInteraction(
	ctx context.Context,
	placementID string,
	kind domain.InteractionKind,
) (*domain.Placement, error) {
	var query string
	switch kind {
	case domain.InteractionImpression:
		// Impressão respeita o limite diário: zero linhas afetadas quando o
		// teto do dia já foi atingido
		query = `
			UPDATE ` + placementTable + `
			SET total_impressions = total_impressions + 1,
				current_daily_impressions = CASE
					WHEN last_impression_reset::date < CURRENT_DATE THEN 1
					ELSE current_daily_impressions + 1
				END,
				last_impression_reset = CASE
					WHEN last_impression_reset::date < CURRENT_DATE THEN CURRENT_TIMESTAMP
					ELSE last_impression_reset
				END,
				click_through_rate = total_clicks::float / (total_impressions + 1),
				updated_at = CURRENT_TIMESTAMP
			WHERE id = $1
			  AND is_active = TRUE
			  AND (
				daily_impression_limit IS NULL
				OR current_daily_impressions < daily_impression_limit
				OR last_impression_reset::date < CURRENT_DATE
			  )
			RETURNING ` + placementColumns
	case domain.InteractionClick:
		query = `
			UPDATE ` + placementTable + `
			SET total_clicks = total_clicks + 1,
				click_through_rate = CASE
					WHEN total_impressions = 0 THEN 0
					ELSE (total_clicks + 1)::float / total_impressions
				END,
				updated_at = CURRENT_TIMESTAMP
			WHERE id = $1 AND is_active = TRUE
			RETURNING ` + placementColumns
	default:
		return nil, fmt.Errorf("tipo de interação desconhecido: %s", kind)
	}

	row := r.conn.QueryRowContext(ctx, query, placementID)
	placement, err := r.scanRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrStateMismatch
		}
		return nil, fmt.Errorf("erro ao registrar interação: %w", err)
	}

	return placement, nil
}

func (r *placementRepository) GetByID(ctx context.Context, id string) (*domain.Placement, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *placementRepository) GetByAdRequestID(ctx context.Context, adRequestID string) (*domain.Placement, error) {
	return r.getOne(ctx, squirrel.Eq{"ad_request_id": adRequestID})
}

func (r *placementRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Placement, error) {
	query, args, err := squirrel.
		Select(placementColumns).
		From(placementTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	placement, err := r.scanRow(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear placement: %w", err)
	}

	return placement, nil
}

func (r *placementRepository) DeactivateByAdRequestID(ctx context.Context, adRequestID string) error {
	query, args, err := squirrel.
		Update(placementTable).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"ad_request_id": adRequestID, "is_active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de desativação: %w", err)
	}

	// Campanha cancelada antes do pagamento não tem placement, então zero
	// linhas afetadas não é erro aqui
	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao desativar placement: %w", err)
	}

	return nil
}

func (r *placementRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := squirrel.
		Update(placementTable).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Lt{"end_date": now}).
		Where(squirrel.Eq{"is_active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de desativação: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao desativar placements expirados: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}

	return affected, nil
}

func (r *placementRepository) scanRow(row *sql.Row) (*domain.Placement, error) {
	placement := &domain.Placement{}
	err := row.Scan(
		&placement.ID,
		&placement.AdRequestID,
		&placement.PlacementType,
		&placement.DisplayPriority,
		&placement.StartDate,
		&placement.EndDate,
		&placement.IsActive,
		&placement.TotalImpressions,
		&placement.TotalClicks,
		&placement.ClickThroughRate,
		&placement.DailyImpressionLimit,
		&placement.CurrentDailyImpression,
		&placement.LastImpressionReset,
		&placement.LastServedAt,
		&placement.CreatedAt,
		&placement.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return placement, nil
}

func (r *placementRepository) scanRows(rows *sql.Rows) (*domain.Placement, error) {
	placement := &domain.Placement{}
	err := rows.Scan(
		&placement.ID,
		&placement.AdRequestID,
		&placement.PlacementType,
		&placement.DisplayPriority,
		&placement.StartDate,
		&placement.EndDate,
		&placement.IsActive,
		&placement.TotalImpressions,
		&placement.TotalClicks,
		&placement.ClickThroughRate,
		&placement.DailyImpressionLimit,
		&placement.CurrentDailyImpression,
		&placement.LastImpressionReset,
		&placement.LastServedAt,
		&placement.CreatedAt,
		&placement.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return placement, nil
}
