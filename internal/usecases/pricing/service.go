// Package pricing administra as tarifas por formato de anúncio e o seu
// histórico de alterações.
package pricing

import (
	"context"
	"errors"
	"math"

	"github.com/shopspring/decimal"

	"github.com/adboardhq/adboard-api/infrastructure/repository"
	"github.com/adboardhq/adboard-api/internal/config"
	"github.com/adboardhq/adboard-api/internal/domain"
	"github.com/adboardhq/adboard-api/internal/usecases/notifying"
	"github.com/adboardhq/adboard-api/pkg/log"
	"github.com/adboardhq/adboard-api/pkg/metrics"
)

// UpdatePricingInput descreve uma alteração de tarifa feita por um admin
type UpdatePricingInput struct {
	AdTypeID  string
	NewPrice  float64
	Reason    string
	ActorID   string
	ActorName string
}

type PricingStore interface {
	// GetCurrentPricing devolve todas as tarifas vigentes ordenadas por
	// formato. Quando a tabela ainda não foi provisionada (ou está
	// inacessível), responde com os preços padrão marcados com o sentinela
	// "System" em updated_by_name, para o chamador detectar o modo fallback.
	GetCurrentPricing(ctx context.Context) ([]domain.AdTypeTariff, error)

	// UpdatePricing valida o novo preço, grava tarifa + histórico na mesma
	// transação e dispara o broadcast para os vendors afetados. A falha do
	// broadcast é registrada em log e nunca desfaz a alteração.
	UpdatePricing(ctx context.Context, input UpdatePricingInput) (*domain.PricingHistoryEntry, error)

	GetPricingHistory(ctx context.Context, adTypeID string, limit uint64) ([]domain.PricingHistoryEntry, error)

	ValidatePricing(price float64) error
}

type Service struct {
	cfg                 *config.Config
	tariffRepository    repository.TariffRepository
	adRequestRepository repository.AdRequestRepository
	dispatcher          notifying.Dispatcher
}

func NewService(
	cfg *config.Config,
	tariffRepo repository.TariffRepository,
	adRequestRepo repository.AdRequestRepository,
	dispatcher notifying.Dispatcher,
) PricingStore {
	return &Service{
		cfg:                 cfg,
		tariffRepository:    tariffRepo,
		adRequestRepository: adRequestRepo,
		dispatcher:          dispatcher,
	}
}

func (s *Service) GetCurrentPricing(ctx context.Context) ([]domain.AdTypeTariff, error) {
	tariffs, err := s.tariffRepository.ListTariffs(ctx)
	if err != nil {
		// Leitura de tarifas tem fallback: responder com os padrões é melhor
		// do que derrubar toda tela que precisa de um preço
		log.L.WithContext(ctx).WithError(err).Warn("Tabela de tarifas inacessível; usando preços padrão")
		return domain.DefaultTariffs(), nil
	}

	if len(tariffs) == 0 {
		log.L.WithContext(ctx).Warn("Tabela de tarifas vazia; usando preços padrão")
		return domain.DefaultTariffs(), nil
	}

	return tariffs, nil
}

func (s *Service) UpdatePricing(ctx context.Context, input UpdatePricingInput) (*domain.PricingHistoryEntry, error) {
	if input.AdTypeID == "" {
		return nil, ErrUnknownAdType
	}
	if input.Reason == "" {
		return nil, ErrReasonRequired
	}
	if err := s.ValidatePricing(input.NewPrice); err != nil {
		return nil, err
	}

	newPrice := decimal.NewFromFloat(input.NewPrice)

	entry, err := s.tariffRepository.UpdatePriceWithHistory(
		ctx,
		input.AdTypeID,
		newPrice,
		input.ActorID,
		input.ActorName,
		input.Reason,
	)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTariffNotFound
		}
		return nil, err
	}

	metrics.RecordPriceUpdate(string(entry.TypeName))

	s.broadcast(ctx, entry)

	return entry, nil
}

// broadcast resolve o conjunto de vendors afetados conforme o modo
// configurado e entrega a mudança via NotificationDispatcher. Qualquer falha
// aqui é registrada e engolida: a tarifa já está atualizada e é a fonte de
// verdade.
func (s *Service) broadcast(ctx context.Context, entry *domain.PricingHistoryEntry) {
	var (
		vendorIDs []string
		err       error
	)

	switch s.cfg.Pricing.BroadcastMode {
	case config.BroadcastAll:
		vendorIDs, err = s.adRequestRepository.ListAllVendorIDs(ctx)
	default:
		vendorIDs, err = s.adRequestRepository.ListVendorIDsByAdType(ctx, entry.AdTypeID)
	}
	if err != nil {
		log.L.WithContext(ctx).WithError(err).WithFields(log.Fields{
			"adTypeID": entry.AdTypeID,
		}).Warn("Falha ao resolver vendors afetados pela mudança de preço")
		return
	}

	if err := s.dispatcher.BroadcastPriceChange(ctx, entry, vendorIDs); err != nil {
		log.L.WithContext(ctx).WithError(err).WithFields(log.Fields{
			"adTypeID": entry.AdTypeID,
			"vendors":  len(vendorIDs),
		}).Warn("Falha ao entregar broadcast de mudança de preço")
	}
}

func (s *Service) GetPricingHistory(ctx context.Context, adTypeID string, limit uint64) ([]domain.PricingHistoryEntry, error) {
	entries, err := s.tariffRepository.ListHistory(ctx, adTypeID, limit)
	if err != nil {
		// Histórico é informativo: sem ele a tela de preços ainda funciona,
		// então degrada para lista vazia em vez de erro
		log.L.WithContext(ctx).WithError(err).Warn("Histórico de preços inacessível; devolvendo lista vazia")
		return []domain.PricingHistoryEntry{}, nil
	}

	return entries, nil
}

// ValidatePricing aplica as mesmas regras do caminho de atualização e de
// qualquer entrada interativa de preço
func (s *Service) ValidatePricing(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return ErrPriceNotANumber
	}
	if price < 0 {
		return ErrNegativePrice
	}
	if decimal.NewFromFloat(price).GreaterThan(s.cfg.Pricing.MaxPriceAmount) {
		return ErrPriceAboveLimit
	}
	return nil
}
