package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/adboardhq/adboard-api/infrastructure/database/postgres"
	"github.com/adboardhq/adboard-api/internal/domain"
)

const notificationTable = "notifications"

type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	CreateBatch(ctx context.Context, notifications []*domain.Notification) error
	ListByVendor(ctx context.Context, vendorID string, onlyUnread bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, vendorID string) error
	MarkAllRead(ctx context.Context, vendorID string) error
}

type notificationRepository struct {
	conn *postgres.Connection
}

func NewNotificationRepository(conn *postgres.Connection) NotificationRepository {
	return &notificationRepository{conn: conn}
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	return r.CreateBatch(ctx, []*domain.Notification{notification})
}

func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []*domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(notificationTable).
		Columns(
			"id",
			"vendor_id",
			"notification_type",
			"title",
			"message",
			"action_required",
			"action_url",
			"priority",
			"metadata",
			"expires_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, n := range notifications {
		metadata, err := json.Marshal(n.Metadata)
		if err != nil {
			return fmt.Errorf("erro ao serializar metadata: %w", err)
		}

		builder = builder.Values(
			n.ID,
			n.VendorID,
			n.Type,
			n.Title,
			n.Message,
			n.ActionRequired,
			n.ActionURL,
			n.Priority,
			metadata,
			n.ExpiresAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir notificações: %w", err)
	}

	return nil
}

func (r *notificationRepository) ListByVendor(ctx context.Context, vendorID string, onlyUnread bool) ([]*domain.Notification, error) {
	builder := squirrel.
		Select(
			"n.id",
			"n.vendor_id",
			"n.notification_type",
			"n.title",
			"n.message",
			"n.action_required",
			"n.action_url",
			"n.is_read",
			"n.priority",
			"n.metadata",
			"n.expires_at",
			"n.created_at",
		).
		From(notificationTable + " n").
		Where(squirrel.Eq{"n.vendor_id": vendorID}).
		OrderBy("n.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyUnread {
		builder = builder.Where(squirrel.Eq{"n.is_read": false})
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

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		notification, err := r.scanRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear notificação: %w", err)
		}
		notifications = append(notifications, notification)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, vendorID string) error {
	query, args, err := squirrel.
		Update(notificationTable).
		Set("is_read", true).
		Where(squirrel.Eq{"id": id, "vendor_id": vendorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao marcar notificação como lida: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, vendorID string) error {
	query, args, err := squirrel.
		Update(notificationTable).
		Set("is_read", true).
		Where(squirrel.Eq{"vendor_id": vendorID, "is_read": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao marcar notificações como lidas: %w", err)
	}

	return nil
}

func (r *notificationRepository) scanRows(rows *sql.Rows) (*domain.Notification, error) {
	notification := &domain.Notification{}
	var metadata []byte

	err := rows.Scan(
		&notification.ID,
		&notification.VendorID,
		&notification.Type,
		&notification.Title,
		&notification.Message,
		&notification.ActionRequired,
		&notification.ActionURL,
		&notification.IsRead,
		&notification.Priority,
		&metadata,
		&notification.ExpiresAt,
		&notification.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &notification.Metadata); err != nil {
			return nil, fmt.Errorf("erro ao decodificar metadata: %w", err)
		}
	}

	return notification, nil
}
