// Package placing decide quais campanhas aparecem em cada superfície de
// exibição e registra impressões e cliques. Elegibilidade e teto diário são
// autoritativos no servidor; intervalo de rotação e atraso de popup são só
// dicas de exibição devolvidas junto com a resposta.
package placing

import (
	"context"
	"errors"
	"time"

	"github.com/adboardhq/adboard-api/infrastructure/repository"
	"github.com/adboardhq/adboard-api/internal/config"
	"github.com/adboardhq/adboard-api/internal/domain"
	"github.com/adboardhq/adboard-api/pkg/metrics"
)

const defaultRotationLimit = 10

type Scheduler interface {
	// GetEligiblePlacements devolve a rotação de uma superfície: placements
	// ativos, dentro do período e abaixo do teto diário, ordenados por
	// prioridade e depois pelos exibidos há mais tempo
	GetEligiblePlacements(ctx context.Context, placementType domain.PlacementType, limit uint64) (*domain.PlacementRotation, error)

	// RecordInteraction registra uma impressão ou clique com contadores
	// atômicos no banco; chamadas concorrentes nunca perdem incrementos
	RecordInteraction(ctx context.Context, placementID string, kind domain.InteractionKind) (*domain.Placement, error)

	GetByAdRequestID(ctx context.Context, adRequestID string) (*domain.Placement, error)
	DeactivateForRequest(ctx context.Context, adRequestID string) error
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type Service struct {
	cfg                 *config.Config
	placementRepository repository.PlacementRepository
}

func NewService(cfg *config.Config, placementRepo repository.PlacementRepository) Scheduler {
	return &Service{
		cfg:                 cfg,
		placementRepository: placementRepo,
	}
}

func (s *Service) GetEligiblePlacements(
	ctx context.Context,
	placementType domain.PlacementType,
	limit uint64,
) (*domain.PlacementRotation, error) {
	if !placementType.Valid() {
		return nil, ErrUnknownSurface
	}
	if limit == 0 {
		limit = defaultRotationLimit
	}

	placements, err := s.placementRepository.GetEligible(ctx, placementType, limit)
	if err != nil {
		return nil, err
	}

	return &domain.PlacementRotation{
		Placements:              placements,
		RotationIntervalSeconds: s.cfg.Placement.RotationIntervalSeconds,
		PopupDelaySeconds:       s.cfg.Placement.PopupDelaySeconds,
	}, nil
}

func (s *Service) RecordInteraction(
	ctx context.Context,
	placementID string,
	kind domain.InteractionKind,
) (*domain.Placement, error) {
	if !kind.Valid() {
		return nil, ErrUnknownInteractionKind
	}

	placement, err := s.placementRepository.RecordInteraction(ctx, placementID, kind)
	if err != nil {
		if errors.Is(err, repository.ErrStateMismatch) {
			return nil, ErrNotServable
		}
		return nil, err
	}

	metrics.RecordInteraction(string(placement.PlacementType), string(kind))

	return placement, nil
}

func (s *Service) GetByAdRequestID(ctx context.Context, adRequestID string) (*domain.Placement, error) {
	placement, err := s.placementRepository.GetByAdRequestID(ctx, adRequestID)
	if err != nil {
		return nil, err
	}
	if placement == nil {
		return nil, ErrPlacementNotFound
	}
	return placement, nil
}

func (s *Service) DeactivateForRequest(ctx context.Context, adRequestID string) error {
	return s.placementRepository.DeactivateByAdRequestID(ctx, adRequestID)
}

func (s *Service) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.placementRepository.DeactivateExpired(ctx, now)
}
