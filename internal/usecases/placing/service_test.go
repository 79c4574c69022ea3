package placing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adboardhq/adboard-api/infrastructure/repository"
	"github.com/adboardhq/adboard-api/infrastructure/repository/mocks"
	"github.com/adboardhq/adboard-api/internal/config"
	"github.com/adboardhq/adboard-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Placement: config.Placement{
			RotationIntervalSeconds: 30,
			PopupDelaySeconds:       5,
		},
	}
}

func TestService_GetEligiblePlacements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlacementRepo := mocks.NewMockPlacementRepository(ctrl)

	service := NewService(testConfig(), mockPlacementRepo)

	tests := []struct {
		name          string
		placementType domain.PlacementType
		limit         uint64
		setup         func()
		validate      func(t *testing.T, rotation *domain.PlacementRotation, err error)
	}{
		{
			name:          "Rotação devolve as dicas de exibição configuradas",
			placementType: domain.PlacementHeaderBanner,
			limit:         3,
			setup: func() {
				mockPlacementRepo.EXPECT().
					GetEligible(gomock.Any(), domain.PlacementHeaderBanner, uint64(3)).
					Return([]domain.Placement{
						{ID: "PLC001", PlacementType: domain.PlacementHeaderBanner},
						{ID: "PLC002", PlacementType: domain.PlacementHeaderBanner},
					}, nil)
			},
			validate: func(t *testing.T, rotation *domain.PlacementRotation, err error) {
				assert.NoError(t, err)
				assert.Len(t, rotation.Placements, 2)
				assert.Equal(t, 30, rotation.RotationIntervalSeconds)
				assert.Equal(t, 5, rotation.PopupDelaySeconds)
			},
		},
		{
			name:          "Limite zero assume o padrão de rotação",
			placementType: domain.PlacementPopup,
			limit:         0,
			setup: func() {
				mockPlacementRepo.EXPECT().
					GetEligible(gomock.Any(), domain.PlacementPopup, uint64(defaultRotationLimit)).
					Return([]domain.Placement{}, nil)
			},
			validate: func(t *testing.T, rotation *domain.PlacementRotation, err error) {
				assert.NoError(t, err)
				assert.Empty(t, rotation.Placements)
			},
		},
		{
			name:          "Superfície desconhecida não toca o banco",
			placementType: domain.PlacementType("billboard"),
			limit:         3,
			setup:         func() {},
			validate: func(t *testing.T, rotation *domain.PlacementRotation, err error) {
				assert.ErrorIs(t, err, ErrUnknownSurface)
				assert.Nil(t, rotation)
			},
		},
		{
			name:          "Falha do repositório é propagada",
			placementType: domain.PlacementSidebar,
			limit:         3,
			setup: func() {
				mockPlacementRepo.EXPECT().
					GetEligible(gomock.Any(), domain.PlacementSidebar, uint64(3)).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, rotation *domain.PlacementRotation, err error) {
				assert.Error(t, err)
				assert.Nil(t, rotation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rotation, err := service.GetEligiblePlacements(context.Background(), tt.placementType, tt.limit)

			tt.validate(t, rotation, err)
		})
	}
}

func TestService_RecordInteraction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlacementRepo := mocks.NewMockPlacementRepository(ctrl)

	service := NewService(testConfig(), mockPlacementRepo)

	tests := []struct {
		name     string
		kind     domain.InteractionKind
		setup    func()
		validate func(t *testing.T, placement *domain.Placement, err error)
	}{
		{
			name: "Impressão incrementa os contadores",
			kind: domain.InteractionImpression,
			setup: func() {
				mockPlacementRepo.EXPECT().
					RecordInteraction(gomock.Any(), "PLC001", domain.InteractionImpression).
					Return(&domain.Placement{
						ID:            "PLC001",
						PlacementType: domain.PlacementHeaderBanner,
					}, nil)
			},
			validate: func(t *testing.T, placement *domain.Placement, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "PLC001", placement.ID)
			},
		},
		{
			name:  "Tipo de interação desconhecido",
			kind:  domain.InteractionKind("hover"),
			setup: func() {},
			validate: func(t *testing.T, placement *domain.Placement, err error) {
				assert.ErrorIs(t, err, ErrUnknownInteractionKind)
			},
		},
		{
			name: "Placement inativo ou no teto diário não serve mais",
			kind: domain.InteractionClick,
			setup: func() {
				mockPlacementRepo.EXPECT().
					RecordInteraction(gomock.Any(), "PLC001", domain.InteractionClick).
					Return(nil, repository.ErrStateMismatch)
			},
			validate: func(t *testing.T, placement *domain.Placement, err error) {
				assert.ErrorIs(t, err, ErrNotServable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			placement, err := service.RecordInteraction(context.Background(), "PLC001", tt.kind)

			tt.validate(t, placement, err)
		})
	}
}

func TestService_GetByAdRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlacementRepo := mocks.NewMockPlacementRepository(ctrl)

	service := NewService(testConfig(), mockPlacementRepo)

	t.Run("Placement existente é devolvido", func(t *testing.T) {
		mockPlacementRepo.EXPECT().
			GetByAdRequestID(gomock.Any(), "REQ001").
			Return(&domain.Placement{ID: "PLC001", AdRequestID: "REQ001"}, nil)

		placement, err := service.GetByAdRequestID(context.Background(), "REQ001")

		assert.NoError(t, err)
		assert.Equal(t, "PLC001", placement.ID)
	})

	t.Run("Campanha sem placement", func(t *testing.T) {
		mockPlacementRepo.EXPECT().
			GetByAdRequestID(gomock.Any(), "REQ001").
			Return(nil, nil)

		placement, err := service.GetByAdRequestID(context.Background(), "REQ001")

		assert.ErrorIs(t, err, ErrPlacementNotFound)
		assert.Nil(t, placement)
	})
}

func TestService_DeactivateExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPlacementRepo := mocks.NewMockPlacementRepository(ctrl)

	service := NewService(testConfig(), mockPlacementRepo)

	now := time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC)

	mockPlacementRepo.EXPECT().
		DeactivateExpired(gomock.Any(), now).
		Return(int64(4), nil)

	deactivated, err := service.DeactivateExpired(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), deactivated)
}
