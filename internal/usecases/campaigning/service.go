// Package campaigning é o dono do ciclo de vida das campanhas: validação da
// submissão, fila de revisão do admin, decisões, cancelamento e encerramento
// agendado. Toda transição de estado é um UPDATE condicional no banco; uma
// decisão duplicada ou um cliente defasado recebem ErrInvalidState em vez de
// sobrescrever o estado mais novo.
package campaigning

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adboardhq/adboard-api/infrastructure/repository"
	"github.com/adboardhq/adboard-api/internal/config"
	"github.com/adboardhq/adboard-api/internal/domain"
	"github.com/adboardhq/adboard-api/internal/usecases/notifying"
	"github.com/adboardhq/adboard-api/pkg/log"
	"github.com/adboardhq/adboard-api/pkg/metrics"
)

// SubmissionInput descreve os campos editáveis de uma campanha
type SubmissionInput struct {
	ID             string // vazio na criação; preenchido ao regravar um rascunho
	VendorID       string
	AdTypeID       string
	Title          string
	Content        string
	ImageURL       *string
	VideoURL       *string
	TargetAudience *string
	StartDate      time.Time
	EndDate        time.Time
	DailyBudget    decimal.Decimal
	PriorityLevel  domain.PriorityLevel
}

type Engine interface {
	// SubmitRequest valida e cria a campanha já em pending (submissão direta)
	SubmitRequest(ctx context.Context, input SubmissionInput) (*domain.AdRequest, error)

	// SaveDraft cria ou regrava um rascunho. A exigência de vídeo para
	// campanhas de vídeo só é aplicada na submissão, não aqui.
	SaveDraft(ctx context.Context, input SubmissionInput) (*domain.AdRequest, error)

	// SubmitDraft promove um rascunho para pending após a validação completa
	SubmitDraft(ctx context.Context, id, vendorID string) (*domain.AdRequest, error)

	Approve(ctx context.Context, id, reviewerID string, notes *string) error
	Reject(ctx context.Context, id, reviewerID, reason string, notes *string) error

	// Cancel encerra uma campanha não terminal e desativa o placement, se
	// houver. Vendors só cancelam as próprias campanhas; admins, qualquer uma.
	Cancel(ctx context.Context, id, actorID string, isAdmin bool) error

	GetRequest(ctx context.Context, id string) (*domain.AdRequest, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*domain.AdRequest, error)

	// ListForReview é a fila de revisão do admin, ordenada por prioridade e
	// idade; statuses vazio devolve todas as campanhas
	ListForReview(ctx context.Context, statuses []domain.AdRequestStatus) ([]*domain.AdRequest, error)

	VendorStats(ctx context.Context, vendorID string) (*domain.VendorStats, error)

	// CompleteExpired encerra campanhas active com data final vencida e
	// notifica os vendors; é o ponto de entrada da varredura agendada
	CompleteExpired(ctx context.Context, now time.Time) ([]*domain.AdRequest, error)

	CalculatePricing(dailyBudget decimal.Decimal, durationDays int) domain.PricingBreakdown
}

type Service struct {
	cfg                 *config.Config
	adRequestRepository repository.AdRequestRepository
	placementRepository repository.PlacementRepository
	dispatcher          notifying.Dispatcher
}

func NewService(
	cfg *config.Config,
	adRequestRepo repository.AdRequestRepository,
	placementRepo repository.PlacementRepository,
	dispatcher notifying.Dispatcher,
) Engine {
	return &Service{
		cfg:                 cfg,
		adRequestRepository: adRequestRepo,
		placementRepository: placementRepo,
		dispatcher:          dispatcher,
	}
}

// CalculatePricing é a única implementação da fórmula de custo. Preview da
// submissão, cobrança e analytics chamam esta função; as taxas vêm da
// configuração.
func (s *Service) CalculatePricing(dailyBudget decimal.Decimal, durationDays int) domain.PricingBreakdown {
	base := dailyBudget.Mul(decimal.NewFromInt(int64(durationDays)))
	fee := base.Mul(s.cfg.Pricing.PlatformFee)
	subtotal := base.Add(fee)
	gst := subtotal.Mul(s.cfg.Pricing.GST)
	total := subtotal.Add(gst)

	return domain.PricingBreakdown{
		BaseAmount:  base.Round(2),
		PlatformFee: fee.Round(2),
		Subtotal:    subtotal.Round(2),
		GSTAmount:   gst.Round(2),
		Total:       total.Round(2),
	}
}

func (s *Service) SubmitRequest(ctx context.Context, input SubmissionInput) (*domain.AdRequest, error) {
	if err := s.validateSubmission(input, true); err != nil {
		return nil, err
	}

	request := s.buildRequest(input, domain.AdRequestStatusPending)
	if err := s.adRequestRepository.Create(ctx, request); err != nil {
		return nil, err
	}

	metrics.RecordTransition(string(domain.AdRequestStatusPending))

	return request, nil
}

func (s *Service) SaveDraft(ctx context.Context, input SubmissionInput) (*domain.AdRequest, error) {
	if err := s.validateSubmission(input, false); err != nil {
		return nil, err
	}

	if input.ID == "" {
		request := s.buildRequest(input, domain.AdRequestStatusDraft)
		if err := s.adRequestRepository.Create(ctx, request); err != nil {
			return nil, err
		}
		return request, nil
	}

	existing, err := s.getOwned(ctx, input.ID, input.VendorID)
	if err != nil {
		return nil, err
	}
	if existing.Status != domain.AdRequestStatusDraft {
		return nil, ErrInvalidState
	}

	request := s.buildRequest(input, domain.AdRequestStatusDraft)
	request.ID = existing.ID
	request.CreatedAt = existing.CreatedAt

	if err := s.adRequestRepository.UpdateDraft(ctx, request); err != nil {
		if errors.Is(err, repository.ErrStateMismatch) {
			return nil, ErrInvalidState
		}
		return nil, err
	}

	return request, nil
}

func (s *Service) SubmitDraft(ctx context.Context, id, vendorID string) (*domain.AdRequest, error) {
	request, err := s.getOwned(ctx, id, vendorID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.AdRequestStatusDraft {
		return nil, ErrInvalidState
	}

	// Na promoção o rascunho passa pela validação completa, incluindo a
	// exigência de vídeo que SaveDraft não aplica
	input := SubmissionInput{
		VendorID:    request.VendorID,
		AdTypeID:    request.AdTypeID,
		Title:       request.Title,
		Content:     request.Content,
		VideoURL:    request.VideoURL,
		StartDate:   request.RequestedStartDate,
		EndDate:     request.RequestedEndDate,
		DailyBudget: request.DailyBudget,
	}
	if err := s.validateSubmission(input, true); err != nil {
		return nil, err
	}

	err = s.adRequestRepository.TransitionStatus(ctx, id, domain.AdRequestStatusDraft, domain.AdRequestStatusPending)
	if err != nil {
		if errors.Is(err, repository.ErrStateMismatch) {
			return nil, ErrInvalidState
		}
		return nil, err
	}

	metrics.RecordTransition(string(domain.AdRequestStatusPending))
	request.Status = domain.AdRequestStatusPending

	return request, nil
}

func (s *Service) Approve(ctx context.Context, id, reviewerID string, notes *string) error {
	request, err := s.adRequestRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request == nil {
		return ErrRequestNotFound
	}

	err = s.adRequestRepository.Decide(ctx, id, domain.AdRequestStatusApproved, reviewerID, notes, nil)
	if err != nil {
		if errors.Is(err, repository.ErrStateMismatch) {
			return ErrInvalidState
		}
		return err
	}

	metrics.RecordTransition(string(domain.AdRequestStatusApproved))

	// A notificação não desfaz a aprovação: falha aqui é registrada e o
	// vendor vê o novo estado no próximo fetch
	s.notifyDecision(ctx, request, notifying.NotifyInput{
		VendorID:       request.VendorID,
		Type:           domain.NotificationRequestApproved,
		Title:          "Campanha aprovada",
		Message:        "A campanha \"" + request.Title + "\" foi aprovada. Conclua o pagamento para colocá-la no ar.",
		ActionRequired: true,
		Priority:       domain.NotificationPriorityHigh,
	})

	return nil
}

func (s *Service) Reject(ctx context.Context, id, reviewerID, reason string, notes *string) error {
	if reason == "" {
		return ErrReasonRequired
	}

	request, err := s.adRequestRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request == nil {
		return ErrRequestNotFound
	}

	err = s.adRequestRepository.Decide(ctx, id, domain.AdRequestStatusRejected, reviewerID, notes, &reason)
	if err != nil {
		if errors.Is(err, repository.ErrStateMismatch) {
			return ErrInvalidState
		}
		return err
	}

	metrics.RecordTransition(string(domain.AdRequestStatusRejected))

	s.notifyDecision(ctx, request, notifying.NotifyInput{
		VendorID: request.VendorID,
		Type:     domain.NotificationRequestRejected,
		Title:    "Campanha rejeitada",
		Message:  "A campanha \"" + request.Title + "\" foi rejeitada: " + reason,
		Priority: domain.NotificationPriorityHigh,
	})

	return nil
}

func (s *Service) Cancel(ctx context.Context, id, actorID string, isAdmin bool) error {
	request, err := s.adRequestRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request == nil {
		return ErrRequestNotFound
	}
	if !isAdmin && request.VendorID != actorID {
		return ErrNotOwner
	}
	if !request.Status.Cancellable() {
		return ErrInvalidState
	}

	err = s.adRequestRepository.TransitionStatus(ctx, id, request.Status, domain.AdRequestStatusCancelled)
	if err != nil {
		if errors.Is(err, repository.ErrStateMismatch) {
			return ErrInvalidState
		}
		return err
	}

	metrics.RecordTransition(string(domain.AdRequestStatusCancelled))

	// Campanha cancelada antes do pagamento não tem placement; o repositório
	// trata zero linhas como sucesso
	if err := s.placementRepository.DeactivateByAdRequestID(ctx, id); err != nil {
		log.L.WithContext(ctx).WithError(err).WithFields(log.Fields{
			"adRequestID": id,
		}).Error("Falha ao desativar placement da campanha cancelada")
	}

	return nil
}

func (s *Service) GetRequest(ctx context.Context, id string) (*domain.AdRequest, error) {
	request, err := s.adRequestRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}
	return request, nil
}

func (s *Service) ListByVendor(ctx context.Context, vendorID string) ([]*domain.AdRequest, error) {
	return s.adRequestRepository.ListByVendor(ctx, vendorID)
}

func (s *Service) ListForReview(ctx context.Context, statuses []domain.AdRequestStatus) ([]*domain.AdRequest, error) {
	return s.adRequestRepository.ListByStatus(ctx, statuses)
}

func (s *Service) VendorStats(ctx context.Context, vendorID string) (*domain.VendorStats, error) {
	return s.adRequestRepository.VendorStats(ctx, vendorID)
}

func (s *Service) CompleteExpired(ctx context.Context, now time.Time) ([]*domain.AdRequest, error) {
	completed, err := s.adRequestRepository.CompleteExpired(ctx, now)
	if err != nil {
		return nil, err
	}

	for _, request := range completed {
		metrics.RecordTransition(string(domain.AdRequestStatusCompleted))
		s.notifyDecision(ctx, request, notifying.NotifyInput{
			VendorID: request.VendorID,
			Type:     domain.NotificationCampaignDone,
			Title:    "Campanha encerrada",
			Message:  "A campanha \"" + request.Title + "\" chegou ao fim do período de veiculação.",
			Priority: domain.NotificationPriorityLow,
		})
	}

	return completed, nil
}

func (s *Service) notifyDecision(ctx context.Context, request *domain.AdRequest, input notifying.NotifyInput) {
	if input.Metadata == nil {
		input.Metadata = map[string]string{}
	}
	input.Metadata["ad_request_id"] = request.ID

	if _, err := s.dispatcher.Notify(ctx, input); err != nil {
		log.L.WithContext(ctx).WithError(err).WithFields(log.Fields{
			"adRequestID": request.ID,
			"vendorID":    request.VendorID,
			"type":        string(input.Type),
		}).Error("Falha ao persistir notificação de ciclo de vida")
	}
}

func (s *Service) getOwned(ctx context.Context, id, vendorID string) (*domain.AdRequest, error) {
	request, err := s.adRequestRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}
	if request.VendorID != vendorID {
		return nil, ErrNotOwner
	}
	return request, nil
}

func (s *Service) buildRequest(input SubmissionInput, status domain.AdRequestStatus) *domain.AdRequest {
	now := time.Now()
	breakdown := s.CalculatePricing(input.DailyBudget, domain.CampaignDays(input.StartDate, input.EndDate))

	priority := input.PriorityLevel
	if priority == "" {
		priority = domain.PriorityNormal
	}

	return &domain.AdRequest{
		ID:                 uuid.New().String(),
		VendorID:           input.VendorID,
		AdTypeID:           input.AdTypeID,
		Title:              input.Title,
		Content:            input.Content,
		ImageURL:           input.ImageURL,
		VideoURL:           input.VideoURL,
		TargetAudience:     input.TargetAudience,
		RequestedStartDate: input.StartDate,
		RequestedEndDate:   input.EndDate,
		DailyBudget:        input.DailyBudget,
		TotalBudget:        breakdown.Total,
		Status:             status,
		PriorityLevel:      priority,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// validateSubmission aplica as regras de entrada. Com strict=false (rascunho)
// título, conteúdo e vídeo podem faltar; datas e orçamento são sempre
// exigidos porque o total é derivado deles.
func (s *Service) validateSubmission(input SubmissionInput, strict bool) error {
	if input.VendorID == "" {
		return ErrMissingRequiredField
	}
	if !domain.AdType(input.AdTypeID).Valid() {
		return ErrUnknownAdType
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return ErrMissingRequiredField
	}
	if !input.EndDate.After(input.StartDate) {
		return ErrInvalidDateRange
	}
	if !input.DailyBudget.IsPositive() {
		return ErrBudgetNotPositive
	}

	if strict {
		if input.Title == "" || input.Content == "" {
			return ErrMissingRequiredField
		}
		if domain.AdType(input.AdTypeID) == domain.AdTypeVideo &&
			(input.VideoURL == nil || *input.VideoURL == "") {
			return ErrVideoRequired
		}
	}

	return nil
}
