// Package paying coordena a transição approved → active: valida o valor
// contra o total recalculado, confirma a transação no gateway e grava o
// pagamento, a ativação da campanha e a criação do placement em uma única
// transação. A idempotência vem do índice único em gateway_transaction_id.
package paying

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adboardhq/adboard-api/infrastructure/integrator/gateway"
	"github.com/adboardhq/adboard-api/infrastructure/repository"
	"github.com/adboardhq/adboard-api/internal/config"
	"github.com/adboardhq/adboard-api/internal/domain"
	"github.com/adboardhq/adboard-api/internal/usecases/notifying"
	"github.com/adboardhq/adboard-api/pkg/log"
	"github.com/adboardhq/adboard-api/pkg/metrics"
	"github.com/adboardhq/adboard-api/pkg/utils"
)

// PricingCalculator é a fatia do motor de campanhas que a cobrança precisa:
// a mesma fórmula usada no preview da submissão
type PricingCalculator interface {
	CalculatePricing(dailyBudget decimal.Decimal, durationDays int) domain.PricingBreakdown
}

// ProcessPaymentInput descreve a tentativa de pagamento enviada pelo vendor
type ProcessPaymentInput struct {
	AdRequestID          string
	VendorID             string
	Amount               decimal.Decimal
	Method               string
	GatewayTransactionID string
}

// ProcessPaymentResult informa o pagamento autoritativo e se a chamada foi
// um reenvio já processado (curto-circuito de idempotência)
type ProcessPaymentResult struct {
	Payment          *domain.Payment
	AlreadyProcessed bool
}

type Coordinator interface {
	ProcessPayment(ctx context.Context, input ProcessPaymentInput) (*ProcessPaymentResult, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*domain.Payment, error)
}

type Service struct {
	cfg                 *config.Config
	adRequestRepository repository.AdRequestRepository
	paymentRepository   repository.PaymentRepository
	calculator          PricingCalculator
	gatewayClient       gateway.Client
	dispatcher          notifying.Dispatcher
}

func NewService(
	cfg *config.Config,
	adRequestRepo repository.AdRequestRepository,
	paymentRepo repository.PaymentRepository,
	calculator PricingCalculator,
	gatewayClient gateway.Client,
	dispatcher notifying.Dispatcher,
) Coordinator {
	return &Service{
		cfg:                 cfg,
		adRequestRepository: adRequestRepo,
		paymentRepository:   paymentRepo,
		calculator:          calculator,
		gatewayClient:       gatewayClient,
		dispatcher:          dispatcher,
	}
}

func (s *Service) ProcessPayment(ctx context.Context, input ProcessPaymentInput) (*ProcessPaymentResult, error) {
	if input.GatewayTransactionID == "" {
		return nil, ErrTransactionIDRequired
	}

	request, err := s.adRequestRepository.GetByID(ctx, input.AdRequestID)
	if err != nil {
		return nil, err
	}
	if request == nil || request.VendorID != input.VendorID {
		return nil, ErrRequestNotFound
	}

	// Idempotência antes do guard de estado: um reenvio legítimo chega com a
	// campanha já em active, e mesmo assim deve responder "já processado" em
	// vez de erro
	existing, err := s.paymentRepository.FindByGatewayTransactionID(ctx, input.GatewayTransactionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.AdRequestID != input.AdRequestID {
			return nil, ErrDuplicateTransaction
		}
		if existing.Status == domain.PaymentStatusCompleted {
			return &ProcessPaymentResult{Payment: existing, AlreadyProcessed: true}, nil
		}
		// Tentativa recusada da mesma campanha: o índice único parcial só
		// trava transações concluídas, então o reenvio segue para nova
		// verificação no gateway
	}

	if request.Status != domain.AdRequestStatusApproved {
		return nil, ErrRequestNotApproved
	}

	// Recalcular aqui impede que um cliente defasado pague o total antigo
	// após uma mudança de preço ou de duração
	breakdown := s.calculator.CalculatePricing(request.DailyBudget, request.DurationDays())
	if !input.Amount.Equal(breakdown.Total) {
		return nil, ErrAmountMismatch
	}

	status, err := s.gatewayClient.VerifyTransaction(input.GatewayTransactionID)
	if err != nil {
		log.L.WithContext(ctx).WithError(err).WithFields(log.Fields{
			"adRequestID":   input.AdRequestID,
			"transactionID": input.GatewayTransactionID,
		}).Error("Gateway de pagamento indisponível")
		return nil, ErrGatewayUnavailable
	}

	if !status.Succeeded() {
		return nil, s.recordDeclined(ctx, request, input, breakdown)
	}

	payment := s.buildPayment(request, input, breakdown, domain.PaymentStatusCompleted)
	placement := s.buildPlacement(request)

	err = s.paymentRepository.CreateCompletedAndActivate(ctx, payment, placement)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStateMismatch):
			return nil, ErrRequestNotApproved
		case errors.Is(err, repository.ErrDuplicateTransaction):
			// Corrida entre dois reenvios simultâneos: um deles perdeu a
			// inserção e relê o pagamento vencedor
			winner, findErr := s.paymentRepository.FindByGatewayTransactionID(ctx, input.GatewayTransactionID)
			if findErr == nil && winner != nil && winner.AdRequestID == input.AdRequestID {
				return &ProcessPaymentResult{Payment: winner, AlreadyProcessed: true}, nil
			}
			return nil, ErrDuplicateTransaction
		default:
			return nil, err
		}
	}

	metrics.RecordPayment(string(domain.PaymentStatusCompleted))
	metrics.RecordTransition(string(domain.AdRequestStatusActive))

	s.notify(ctx, request, notifying.NotifyInput{
		VendorID: request.VendorID,
		Type:     domain.NotificationCampaignLive,
		Title:    "Campanha no ar",
		Message:  "Pagamento confirmado: a campanha \"" + request.Title + "\" está ativa.",
		Priority: domain.NotificationPriorityHigh,
		Metadata: map[string]string{
			"ad_request_id": request.ID,
			"payment_id":    payment.ID,
		},
	})

	return &ProcessPaymentResult{Payment: payment}, nil
}

// recordDeclined grava a tentativa recusada na trilha de auditoria e avisa o
// vendor que o pagamento continua pendente; a campanha permanece approved
func (s *Service) recordDeclined(
	ctx context.Context,
	request *domain.AdRequest,
	input ProcessPaymentInput,
	breakdown domain.PricingBreakdown,
) error {
	attempt := s.buildPayment(request, input, breakdown, domain.PaymentStatusFailed)
	if err := s.paymentRepository.CreateAttempt(ctx, attempt); err != nil {
		log.L.WithContext(ctx).WithError(err).WithFields(log.Fields{
			"adRequestID":   request.ID,
			"transactionID": input.GatewayTransactionID,
		}).Error("Falha ao registrar tentativa recusada")
	}

	metrics.RecordPayment(string(domain.PaymentStatusFailed))

	s.notify(ctx, request, notifying.NotifyInput{
		VendorID:       request.VendorID,
		Type:           domain.NotificationPaymentRequired,
		Title:          "Pagamento não concluído",
		Message:        "O gateway recusou o pagamento da campanha \"" + request.Title + "\". Tente novamente.",
		ActionRequired: true,
		Priority:       domain.NotificationPriorityHigh,
		Metadata:       map[string]string{"ad_request_id": request.ID},
	})

	return ErrPaymentDeclined
}

func (s *Service) buildPayment(
	request *domain.AdRequest,
	input ProcessPaymentInput,
	breakdown domain.PricingBreakdown,
	status domain.PaymentStatus,
) *domain.Payment {
	receipt, err := utils.GenerateRef()
	if err != nil {
		// nanoid só falha se o gerador de aleatoriedade do SO falhar
		receipt = uuid.New().String()[:10]
	}

	return &domain.Payment{
		ID:                   uuid.New().String(),
		AdRequestID:          request.ID,
		VendorID:             request.VendorID,
		Amount:               breakdown.Total,
		PaymentMethod:        input.Method,
		GatewayTransactionID: input.GatewayTransactionID,
		Status:               status,
		GSTAmount:            breakdown.GSTAmount,
		PlatformFee:          breakdown.PlatformFee,
		NetAmount:            breakdown.BaseAmount,
		ReceiptRef:           receipt,
	}
}

func (s *Service) buildPlacement(request *domain.AdRequest) *domain.Placement {
	limit := s.cfg.Placement.DefaultDailyImpressionLimit

	return &domain.Placement{
		ID:                   uuid.New().String(),
		AdRequestID:          request.ID,
		PlacementType:        domain.SurfaceForAdType(domain.AdType(request.AdTypeID)),
		DisplayPriority:      s.cfg.Placement.DefaultDisplayPriority,
		StartDate:            request.RequestedStartDate,
		EndDate:              request.RequestedEndDate,
		IsActive:             true,
		DailyImpressionLimit: &limit,
	}
}

func (s *Service) notify(ctx context.Context, request *domain.AdRequest, input notifying.NotifyInput) {
	if _, err := s.dispatcher.Notify(ctx, input); err != nil {
		log.L.WithContext(ctx).WithError(err).WithFields(log.Fields{
			"adRequestID": request.ID,
			"vendorID":    request.VendorID,
		}).Error("Falha ao persistir notificação de pagamento")
	}
}

func (s *Service) ListByVendor(ctx context.Context, vendorID string) ([]*domain.Payment, error) {
	return s.paymentRepository.ListByVendor(ctx, vendorID)
}
