package notifying

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adboardhq/adboard-api/infrastructure/repository"
	"github.com/adboardhq/adboard-api/infrastructure/repository/mocks"
	"github.com/adboardhq/adboard-api/internal/domain"
)

func TestService_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotificationRepo := mocks.NewMockNotificationRepository(ctrl)

	// Publisher nulo: a entrega em tempo real é opcional e a persistência
	// sozinha já é suficiente
	service := NewService(mockNotificationRepo, nil)

	validNotify := func() NotifyInput {
		return NotifyInput{
			VendorID: "VND001",
			Type:     domain.NotificationRequestApproved,
			Title:    "Campanha aprovada",
			Message:  "A campanha foi aprovada.",
		}
	}

	tests := []struct {
		name     string
		input    func() NotifyInput
		setup    func()
		validate func(t *testing.T, notification *domain.Notification, err error)
	}{
		{
			name:  "Notificação é persistida com prioridade normal por padrão",
			input: validNotify,
			setup: func() {
				mockNotificationRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, notification *domain.Notification) error {
						assert.NotEmpty(t, notification.ID)
						assert.Equal(t, domain.NotificationPriorityNormal, notification.Priority)
						return nil
					})
			},
			validate: func(t *testing.T, notification *domain.Notification, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "VND001", notification.VendorID)
			},
		},
		{
			name: "Prioridade explícita é respeitada",
			input: func() NotifyInput {
				input := validNotify()
				input.Priority = domain.NotificationPriorityHigh
				return input
			},
			setup: func() {
				mockNotificationRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, notification *domain.Notification, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.NotificationPriorityHigh, notification.Priority)
			},
		},
		{
			name: "Sem vendor não há destinatário",
			input: func() NotifyInput {
				input := validNotify()
				input.VendorID = ""
				return input
			},
			setup: func() {},
			validate: func(t *testing.T, notification *domain.Notification, err error) {
				assert.ErrorIs(t, err, ErrVendorIDRequired)
			},
		},
		{
			name: "Sem título a notificação é inútil",
			input: func() NotifyInput {
				input := validNotify()
				input.Title = ""
				return input
			},
			setup: func() {},
			validate: func(t *testing.T, notification *domain.Notification, err error) {
				assert.ErrorIs(t, err, ErrTitleRequired)
			},
		},
		{
			name: "Tipo vazio é rejeitado",
			input: func() NotifyInput {
				input := validNotify()
				input.Type = ""
				return input
			},
			setup: func() {},
			validate: func(t *testing.T, notification *domain.Notification, err error) {
				assert.ErrorIs(t, err, ErrUnknownType)
			},
		},
		{
			name:  "Falha de persistência é propagada",
			input: validNotify,
			setup: func() {
				mockNotificationRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			validate: func(t *testing.T, notification *domain.Notification, err error) {
				assert.Error(t, err)
				assert.Nil(t, notification)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			notification, err := service.Notify(context.Background(), tt.input())

			tt.validate(t, notification, err)
		})
	}
}

func TestService_BroadcastPriceChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotificationRepo := mocks.NewMockNotificationRepository(ctrl)

	service := NewService(mockNotificationRepo, nil)

	entry := &domain.PricingHistoryEntry{
		ID:       "HST001",
		AdTypeID: "banner",
		TypeName: domain.AdTypeBanner,
		OldPrice: decimal.NewFromInt(500),
		NewPrice: decimal.NewFromInt(650),
	}

	t.Run("Uma notificação por vendor afetado, em lote", func(t *testing.T) {
		mockNotificationRepo.EXPECT().
			CreateBatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, notifications []*domain.Notification) error {
				assert.Len(t, notifications, 2)

				vendors := []string{notifications[0].VendorID, notifications[1].VendorID}
				assert.ElementsMatch(t, []string{"VND001", "VND002"}, vendors)

				for _, notification := range notifications {
					assert.Equal(t, domain.NotificationPriceChange, notification.Type)
					assert.Contains(t, notification.Message, "500.00")
					assert.Contains(t, notification.Message, "650.00")
					assert.Equal(t, "banner", notification.Metadata["ad_type_id"])
					assert.Equal(t, "650", notification.Metadata["new_price"])
				}
				return nil
			})

		err := service.BroadcastPriceChange(context.Background(), entry, []string{"VND001", "VND002"})

		assert.NoError(t, err)
	})

	t.Run("Sem vendors afetados o lote é vazio mas ainda gravado", func(t *testing.T) {
		mockNotificationRepo.EXPECT().
			CreateBatch(gomock.Any(), gomock.Len(0)).
			Return(nil)

		err := service.BroadcastPriceChange(context.Background(), entry, nil)

		assert.NoError(t, err)
	})

	t.Run("Falha do lote é propagada para o chamador decidir", func(t *testing.T) {
		mockNotificationRepo.EXPECT().
			CreateBatch(gomock.Any(), gomock.Any()).
			Return(errors.New("deadlock detected"))

		err := service.BroadcastPriceChange(context.Background(), entry, []string{"VND001"})

		assert.Error(t, err)
	})
}

func TestService_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotificationRepo := mocks.NewMockNotificationRepository(ctrl)

	service := NewService(mockNotificationRepo, nil)

	t.Run("Marca como lida a notificação do próprio vendor", func(t *testing.T) {
		mockNotificationRepo.EXPECT().
			MarkRead(gomock.Any(), "NTF001", "VND001").
			Return(nil)

		assert.NoError(t, service.MarkRead(context.Background(), "NTF001", "VND001"))
	})

	t.Run("Notificação de outro vendor responde como inexistente", func(t *testing.T) {
		mockNotificationRepo.EXPECT().
			MarkRead(gomock.Any(), "NTF001", "VND999").
			Return(repository.ErrNotFound)

		err := service.MarkRead(context.Background(), "NTF001", "VND999")

		assert.ErrorIs(t, err, ErrNotificationNotFound)
	})
}

func TestService_ListByVendor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockNotificationRepo := mocks.NewMockNotificationRepository(ctrl)

	service := NewService(mockNotificationRepo, nil)

	expected := []*domain.Notification{
		{ID: "NTF002", VendorID: "VND001"},
		{ID: "NTF001", VendorID: "VND001"},
	}

	mockNotificationRepo.EXPECT().
		ListByVendor(gomock.Any(), "VND001", true).
		Return(expected, nil)

	notifications, err := service.ListByVendor(context.Background(), "VND001", true)

	assert.NoError(t, err)
	assert.Equal(t, expected, notifications)
}
