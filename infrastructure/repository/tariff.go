// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adboardhq/adboard-api/infrastructure/database/postgres"
	"github.com/adboardhq/adboard-api/internal/domain"
)

const (
	tariffTable         = "ad_type_tariffs"
	pricingHistoryTable = "pricing_history"
)

type TariffRepository interface {
	ListTariffs(ctx context.Context) ([]domain.AdTypeTariff, error)
	GetTariff(ctx context.Context, adTypeID string) (*domain.AdTypeTariff, error)
	// UpdatePriceWithHistory atualiza a tarifa e grava o registro de
	// histórico na mesma transação. O preço antigo registrado é lido com
	// SELECT FOR UPDATE, portanto é exatamente o valor imediatamente
	// anterior a esta escrita, mesmo sob atualizações concorrentes.
	UpdatePriceWithHistory(ctx context.Context, adTypeID string, newPrice decimal.Decimal, actorID, actorName, reason string) (*domain.PricingHistoryEntry, error)
	ListHistory(ctx context.Context, adTypeID string, limit uint64) ([]domain.PricingHistoryEntry, error)
	// ListHistorySince alimenta o transporte de polling: devolve as mudanças
	// de preço gravadas após o instante informado, em ordem cronológica
	ListHistorySince(ctx context.Context, since time.Time) ([]domain.PricingHistoryEntry, error)
}

type tariffRepository struct {
	conn *postgres.Connection
}

func NewTariffRepository(conn *postgres.Connection) TariffRepository {
	return &tariffRepository{conn: conn}
}

func (r *tariffRepository) ListTariffs(ctx context.Context) ([]domain.AdTypeTariff, error) {
	query, args, err := squirrel.
		Select(
			"t.ad_type_id",
			"t.type_name",
			"t.base_price",
			"t.currency",
			"t.effective_from",
			"t.last_updated",
			"t.updated_by",
			"t.updated_by_name",
		).
		From(tariffTable + " t").
		OrderBy("t.type_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	tariffs := make([]domain.AdTypeTariff, 0)
	for rows.Next() {
		var t domain.AdTypeTariff
		err := rows.Scan(
			&t.AdTypeID,
			&t.TypeName,
			&t.BasePrice,
			&t.Currency,
			&t.EffectiveFrom,
			&t.LastUpdated,
			&t.UpdatedBy,
			&t.UpdatedByName,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear tarifa: %w", err)
		}
		tariffs = append(tariffs, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tariffs, nil
}

func (r *tariffRepository) GetTariff(ctx context.Context, adTypeID string) (*domain.AdTypeTariff, error) {
	query, args, err := squirrel.
		Select("t.ad_type_id, t.type_name, t.base_price, t.currency, t.effective_from, t.last_updated, t.updated_by, t.updated_by_name").
		From(tariffTable + " t").
		Where(squirrel.Eq{"t.ad_type_id": adTypeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var t domain.AdTypeTariff
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&t.AdTypeID,
		&t.TypeName,
		&t.BasePrice,
		&t.Currency,
		&t.EffectiveFrom,
		&t.LastUpdated,
		&t.UpdatedBy,
		&t.UpdatedByName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear tarifa: %w", err)
	}

	return &t, nil
}

func (r *tariffRepository) UpdatePriceWithHistory(
	ctx context.Context,
	adTypeID string,
	newPrice decimal.Decimal,
	actorID, actorName, reason string,
) (*domain.PricingHistoryEntry, error) {
	entry := &domain.PricingHistoryEntry{
		ID:        uuid.New().String(),
		AdTypeID:  adTypeID,
		NewPrice:  newPrice,
		Reason:    reason,
		ChangedBy: actorID,
		CreatedAt: time.Now(),
	}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		// Captura o preço anterior com lock de linha para impedir
		// lost-update entre leitura e escrita
		row := tx.QueryRowContext(ctx,
			`SELECT type_name, base_price FROM `+tariffTable+` WHERE ad_type_id = $1 FOR UPDATE`,
			adTypeID,
		)
		if err := row.Scan(&entry.TypeName, &entry.OldPrice); err != nil {
			if err == sql.ErrNoRows {
				return ErrNotFound
			}
			return fmt.Errorf("erro ao ler tarifa atual: %w", err)
		}

		_, err := tx.ExecContext(ctx,
			`UPDATE `+tariffTable+`
			 SET base_price = $1, last_updated = CURRENT_TIMESTAMP, updated_by = $2, updated_by_name = $3
			 WHERE ad_type_id = $4`,
			newPrice, actorID, actorName, adTypeID,
		)
		if err != nil {
			return fmt.Errorf("erro ao atualizar tarifa: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO `+pricingHistoryTable+`
			 (id, ad_type_id, old_price, new_price, reason, changed_by, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			entry.ID, entry.AdTypeID, entry.OldPrice, entry.NewPrice, entry.Reason, entry.ChangedBy, entry.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("erro ao gravar histórico de preço: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *tariffRepository) ListHistorySince(ctx context.Context, since time.Time) ([]domain.PricingHistoryEntry, error) {
	query, args, err := squirrel.
		Select(
			"h.id",
			"h.ad_type_id",
			"t.type_name",
			"h.old_price",
			"h.new_price",
			"h.reason",
			"h.changed_by",
			"h.created_at",
		).
		From(pricingHistoryTable + " h").
		Join(tariffTable + " t ON t.ad_type_id = h.ad_type_id").
		Where(squirrel.Gt{"h.created_at": since}).
		OrderBy("h.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.PricingHistoryEntry, 0)
	for rows.Next() {
		var e domain.PricingHistoryEntry
		err := rows.Scan(
			&e.ID,
			&e.AdTypeID,
			&e.TypeName,
			&e.OldPrice,
			&e.NewPrice,
			&e.Reason,
			&e.ChangedBy,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *tariffRepository) ListHistory(ctx context.Context, adTypeID string, limit uint64) ([]domain.PricingHistoryEntry, error) {
	builder := squirrel.
		Select(
			"h.id",
			"h.ad_type_id",
			"t.type_name",
			"h.old_price",
			"h.new_price",
			"h.reason",
			"h.changed_by",
			"h.created_at",
		).
		From(pricingHistoryTable + " h").
		Join(tariffTable + " t ON t.ad_type_id = h.ad_type_id").
		OrderBy("h.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if adTypeID != "" {
		builder = builder.Where(squirrel.Eq{"h.ad_type_id": adTypeID})
	}
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.PricingHistoryEntry, 0)
	for rows.Next() {
		var e domain.PricingHistoryEntry
		err := rows.Scan(
			&e.ID,
			&e.AdTypeID,
			&e.TypeName,
			&e.OldPrice,
			&e.NewPrice,
			&e.Reason,
			&e.ChangedBy,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
