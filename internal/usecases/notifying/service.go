// Package notifying cria e entrega as notificações de ciclo de vida das
// campanhas e os broadcasts de mudança de preço. A persistência nunca falha
// silenciosamente: o erro volta para o chamador, que decide se a transição
// principal segue mesmo assim.
package notifying

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/adboardhq/adboard-api/infrastructure/realtime"
	"github.com/adboardhq/adboard-api/infrastructure/repository"
	"github.com/adboardhq/adboard-api/internal/domain"
	"github.com/adboardhq/adboard-api/pkg/log"
)

// NotifyInput descreve a notificação a ser criada para um vendor
type NotifyInput struct {
	VendorID       string
	Type           domain.NotificationType
	Title          string
	Message        string
	ActionRequired bool
	ActionURL      *string
	Priority       domain.NotificationPriority
	Metadata       map[string]string
	ExpiresAt      *time.Time
}

type Dispatcher interface {
	Notify(ctx context.Context, input NotifyInput) (*domain.Notification, error)

	// BroadcastPriceChange cria uma notificação por vendor afetado e publica
	// o evento no canal de tempo real. É melhor-esforço: um vendor offline vê
	// o novo preço no próximo fetch de tarifas.
	BroadcastPriceChange(ctx context.Context, entry *domain.PricingHistoryEntry, vendorIDs []string) error

	ListByVendor(ctx context.Context, vendorID string, onlyUnread bool) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, vendorID string) error
	MarkAllRead(ctx context.Context, vendorID string) error
}

type Service struct {
	notificationRepository repository.NotificationRepository
	publisher              *realtime.Publisher
}

func NewService(
	notificationRepo repository.NotificationRepository,
	publisher *realtime.Publisher,
) Dispatcher {
	return &Service{
		notificationRepository: notificationRepo,
		publisher:              publisher,
	}
}

func (s *Service) Notify(ctx context.Context, input NotifyInput) (*domain.Notification, error) {
	if input.VendorID == "" {
		return nil, ErrVendorIDRequired
	}
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Type == "" {
		return nil, ErrUnknownType
	}

	if input.Priority == "" {
		input.Priority = domain.NotificationPriorityNormal
	}

	notification := &domain.Notification{
		ID:             uuid.New().String(),
		VendorID:       input.VendorID,
		Type:           input.Type,
		Title:          input.Title,
		Message:        input.Message,
		ActionRequired: input.ActionRequired,
		ActionURL:      input.ActionURL,
		Priority:       input.Priority,
		Metadata:       input.Metadata,
		ExpiresAt:      input.ExpiresAt,
		CreatedAt:      time.Now(),
	}

	if err := s.notificationRepository.Create(ctx, notification); err != nil {
		return nil, err
	}

	// O push é só frescor: a notificação já está persistida e aparece no
	// próximo fetch mesmo que a publicação falhe
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, realtime.EventNotificationCreated, notification); err != nil {
			log.L.WithContext(ctx).WithError(err).Warn("Falha ao publicar notificação no canal de tempo real")
		}
	}

	return notification, nil
}

func (s *Service) BroadcastPriceChange(
	ctx context.Context,
	entry *domain.PricingHistoryEntry,
	vendorIDs []string,
) error {
	notifications := make([]*domain.Notification, 0, len(vendorIDs))
	for _, vendorID := range vendorIDs {
		notifications = append(notifications, &domain.Notification{
			ID:       uuid.New().String(),
			VendorID: vendorID,
			Type:     domain.NotificationPriceChange,
			Title:    "Tarifa atualizada",
			Message:  "O preço do formato " + string(entry.TypeName) + " mudou de " + entry.OldPrice.StringFixed(2) + " para " + entry.NewPrice.StringFixed(2),
			Priority: domain.NotificationPriorityNormal,
			Metadata: map[string]string{
				"ad_type_id": entry.AdTypeID,
				"old_price":  entry.OldPrice.String(),
				"new_price":  entry.NewPrice.String(),
			},
			CreatedAt: time.Now(),
		})
	}

	if err := s.notificationRepository.CreateBatch(ctx, notifications); err != nil {
		return err
	}

	if s.publisher != nil {
		event := &domain.PriceChangeEvent{
			AdTypeID:  entry.AdTypeID,
			OldPrice:  entry.OldPrice.String(),
			NewPrice:  entry.NewPrice.String(),
			ChangedAt: entry.CreatedAt,
		}
		if err := s.publisher.Publish(ctx, realtime.EventPricingChanged, event); err != nil {
			log.L.WithContext(ctx).WithError(err).Warn("Falha ao publicar mudança de preço no canal de tempo real")
		}
	}

	return nil
}

func (s *Service) ListByVendor(ctx context.Context, vendorID string, onlyUnread bool) ([]*domain.Notification, error) {
	return s.notificationRepository.ListByVendor(ctx, vendorID, onlyUnread)
}

func (s *Service) MarkRead(ctx context.Context, id, vendorID string) error {
	err := s.notificationRepository.MarkRead(ctx, id, vendorID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotificationNotFound
	}
	return err
}

func (s *Service) MarkAllRead(ctx context.Context, vendorID string) error {
	return s.notificationRepository.MarkAllRead(ctx, vendorID)
}
