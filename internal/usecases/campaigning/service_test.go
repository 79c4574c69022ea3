package campaigning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adboardhq/adboard-api/infrastructure/repository"
	"github.com/adboardhq/adboard-api/infrastructure/repository/mocks"
	"github.com/adboardhq/adboard-api/internal/config"
	"github.com/adboardhq/adboard-api/internal/domain"
	"github.com/adboardhq/adboard-api/internal/usecases/notifying"
	notifyingmocks "github.com/adboardhq/adboard-api/internal/usecases/notifying/mocks"
)

func stringPtr(s string) *string {
	return &s
}

func testConfig() *config.Config {
	return &config.Config{
		Pricing: config.Pricing{
			PlatformFee: decimal.NewFromFloat(0.10),
			GST:         decimal.NewFromFloat(0.18),
		},
	}
}

// validInput devolve uma submissão completa; cada caso sobrescreve o campo
// que quer quebrar
func validInput() SubmissionInput {
	return SubmissionInput{
		VendorID:    "VND001",
		AdTypeID:    "banner",
		Title:       "Promoção de verão",
		Content:     "Banner da promoção de verão",
		StartDate:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		DailyBudget: decimal.NewFromInt(100),
	}
}

func TestService_CalculatePricing(t *testing.T) {
	service := &Service{cfg: testConfig()}

	tests := []struct {
		name        string
		dailyBudget decimal.Decimal
		days        int
		base        string
		fee         string
		subtotal    string
		gst         string
		total       string
	}{
		{
			name:        "Orçamento de 100 por 5 dias",
			dailyBudget: decimal.NewFromInt(100),
			days:        5,
			base:        "500",
			fee:         "50",
			subtotal:    "550",
			gst:         "99",
			total:       "649",
		},
		{
			name:        "Orçamento fracionário arredonda em duas casas",
			dailyBudget: decimal.NewFromFloat(99.99),
			days:        3,
			base:        "299.97",
			fee:         "30",
			subtotal:    "329.97",
			gst:         "59.39",
			total:       "389.36",
		},
		{
			name:        "Um único dia de veiculação",
			dailyBudget: decimal.NewFromInt(1200),
			days:        1,
			base:        "1200",
			fee:         "120",
			subtotal:    "1320",
			gst:         "237.6",
			total:       "1557.6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := service.CalculatePricing(tt.dailyBudget, tt.days)

			assert.Equal(t, tt.base, breakdown.BaseAmount.String())
			assert.Equal(t, tt.fee, breakdown.PlatformFee.String())
			assert.Equal(t, tt.subtotal, breakdown.Subtotal.String())
			assert.Equal(t, tt.gst, breakdown.GSTAmount.String())
			assert.Equal(t, tt.total, breakdown.Total.String())
		})
	}
}

func TestService_CalculatePricing_monotonia(t *testing.T) {
	service := &Service{cfg: testConfig()}

	// Mais dias nunca custa menos
	previous := decimal.Zero
	for days := 1; days <= 30; days++ {
		total := service.CalculatePricing(decimal.NewFromInt(100), days).Total
		assert.True(t, total.GreaterThan(previous), "total de %d dias deveria crescer", days)
		previous = total
	}
}

func TestService_SubmitRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRequestRepo := mocks.NewMockAdRequestRepository(ctrl)
	mockPlacementRepo := mocks.NewMockPlacementRepository(ctrl)
	mockDispatcher := notifyingmocks.NewMockDispatcher(ctrl)

	service := NewService(testConfig(), mockAdRequestRepo, mockPlacementRepo, mockDispatcher)

	tests := []struct {
		name     string
		input    func() SubmissionInput
		setup    func()
		validate func(t *testing.T, request *domain.AdRequest, err error)
	}{
		{
			name:  "Submissão válida cria a campanha em pending com o total derivado",
			input: validInput,
			setup: func() {
				mockAdRequestRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, request *domain.AdRequest) error {
						assert.Equal(t, domain.AdRequestStatusPending, request.Status)
						assert.NotEmpty(t, request.ID)
						return nil
					})
			},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.AdRequestStatusPending, request.Status)
				assert.Equal(t, domain.PriorityNormal, request.PriorityLevel)
				// 100 * 5 dias => base 500, taxa 50, GST 99, total 649
				assert.Equal(t, "649", request.TotalBudget.String())
			},
		},
		{
			name: "Sem vendor devolve campo obrigatório",
			input: func() SubmissionInput {
				input := validInput()
				input.VendorID = ""
				return input
			},
			setup: func() {},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredField)
				assert.Nil(t, request)
			},
		},
		{
			name: "Formato de anúncio desconhecido",
			input: func() SubmissionInput {
				input := validInput()
				input.AdTypeID = "skywriting"
				return input
			},
			setup: func() {},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrUnknownAdType)
			},
		},
		{
			name: "Datas zeradas devolvem campo obrigatório",
			input: func() SubmissionInput {
				input := validInput()
				input.StartDate = time.Time{}
				return input
			},
			setup: func() {},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredField)
			},
		},
		{
			name: "Data final igual à inicial é intervalo inválido",
			input: func() SubmissionInput {
				input := validInput()
				input.EndDate = input.StartDate
				return input
			},
			setup: func() {},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrInvalidDateRange)
			},
		},
		{
			name: "Orçamento zero não é aceito",
			input: func() SubmissionInput {
				input := validInput()
				input.DailyBudget = decimal.Zero
				return input
			},
			setup: func() {},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrBudgetNotPositive)
			},
		},
		{
			name: "Orçamento negativo não é aceito",
			input: func() SubmissionInput {
				input := validInput()
				input.DailyBudget = decimal.NewFromInt(-10)
				return input
			},
			setup: func() {},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrBudgetNotPositive)
			},
		},
		{
			name: "Título vazio falha na submissão direta",
			input: func() SubmissionInput {
				input := validInput()
				input.Title = ""
				return input
			},
			setup: func() {},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredField)
			},
		},
		{
			name: "Campanha de vídeo sem URL de vídeo",
			input: func() SubmissionInput {
				input := validInput()
				input.AdTypeID = "video"
				return input
			},
			setup: func() {},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrVideoRequired)
			},
		},
		{
			name: "Campanha de vídeo com URL passa",
			input: func() SubmissionInput {
				input := validInput()
				input.AdTypeID = "video"
				input.VideoURL = stringPtr("https://cdn.adboard.local/v/teaser.mp4")
				return input
			},
			setup: func() {
				mockAdRequestRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "video", request.AdTypeID)
			},
		},
		{
			name:  "Falha do repositório é propagada",
			input: validInput,
			setup: func() {
				mockAdRequestRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.Error(t, err)
				assert.Nil(t, request)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			request, err := service.SubmitRequest(context.Background(), tt.input())

			tt.validate(t, request, err)
		})
	}
}

func TestService_SaveDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRequestRepo := mocks.NewMockAdRequestRepository(ctrl)
	mockPlacementRepo := mocks.NewMockPlacementRepository(ctrl)
	mockDispatcher := notifyingmocks.NewMockDispatcher(ctrl)

	service := NewService(testConfig(), mockAdRequestRepo, mockPlacementRepo, mockDispatcher)

	existingDraft := &domain.AdRequest{
		ID:        "REQ001",
		VendorID:  "VND001",
		Status:    domain.AdRequestStatusDraft,
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		input    func() SubmissionInput
		setup    func()
		validate func(t *testing.T, request *domain.AdRequest, err error)
	}{
		{
			name: "Rascunho novo dispensa título e conteúdo",
			input: func() SubmissionInput {
				input := validInput()
				input.Title = ""
				input.Content = ""
				return input
			},
			setup: func() {
				mockAdRequestRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.AdRequestStatusDraft, request.Status)
			},
		},
		{
			name: "Rascunho de vídeo sem URL de vídeo é aceito",
			input: func() SubmissionInput {
				input := validInput()
				input.AdTypeID = "video"
				return input
			},
			setup: func() {
				mockAdRequestRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Regravação preserva ID e data de criação",
			input: func() SubmissionInput {
				input := validInput()
				input.ID = "REQ001"
				return input
			},
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(existingDraft, nil)

				mockAdRequestRepo.EXPECT().
					UpdateDraft(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, request *domain.AdRequest) error {
						assert.Equal(t, "REQ001", request.ID)
						assert.Equal(t, existingDraft.CreatedAt, request.CreatedAt)
						return nil
					})
			},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "REQ001", request.ID)
			},
		},
		{
			name: "Regravar rascunho de outro vendor é bloqueado",
			input: func() SubmissionInput {
				input := validInput()
				input.ID = "REQ001"
				input.VendorID = "VND999"
				return input
			},
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(existingDraft, nil)
			},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrNotOwner)
			},
		},
		{
			name: "Regravar campanha que já saiu de draft",
			input: func() SubmissionInput {
				input := validInput()
				input.ID = "REQ002"
				return input
			},
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ002").
					Return(&domain.AdRequest{
						ID:       "REQ002",
						VendorID: "VND001",
						Status:   domain.AdRequestStatusPending,
					}, nil)
			},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
			},
		},
		{
			name: "Corrida na regravação vira estado inválido",
			input: func() SubmissionInput {
				input := validInput()
				input.ID = "REQ001"
				return input
			},
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(existingDraft, nil)

				mockAdRequestRepo.EXPECT().
					UpdateDraft(gomock.Any(), gomock.Any()).
					Return(repository.ErrStateMismatch)
			},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			request, err := service.SaveDraft(context.Background(), tt.input())

			tt.validate(t, request, err)
		})
	}
}

func TestService_SubmitDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRequestRepo := mocks.NewMockAdRequestRepository(ctrl)
	mockPlacementRepo := mocks.NewMockPlacementRepository(ctrl)
	mockDispatcher := notifyingmocks.NewMockDispatcher(ctrl)

	service := NewService(testConfig(), mockAdRequestRepo, mockPlacementRepo, mockDispatcher)

	completeDraft := func() *domain.AdRequest {
		return &domain.AdRequest{
			ID:                 "REQ001",
			VendorID:           "VND001",
			AdTypeID:           "banner",
			Title:              "Promoção de verão",
			Content:            "Banner da promoção de verão",
			RequestedStartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			RequestedEndDate:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			DailyBudget:        decimal.NewFromInt(100),
			Status:             domain.AdRequestStatusDraft,
		}
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, request *domain.AdRequest, err error)
	}{
		{
			name: "Rascunho completo é promovido para pending",
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(completeDraft(), nil)

				mockAdRequestRepo.EXPECT().
					TransitionStatus(gomock.Any(), "REQ001", domain.AdRequestStatusDraft, domain.AdRequestStatusPending).
					Return(nil)
			},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.AdRequestStatusPending, request.Status)
			},
		},
		{
			name: "Rascunho de vídeo sem URL não promove",
			setup: func() {
				draft := completeDraft()
				draft.AdTypeID = "video"
				draft.VideoURL = nil

				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(draft, nil)
			},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrVideoRequired)
			},
		},
		{
			name: "Campanha já promovida devolve estado inválido",
			setup: func() {
				promoted := completeDraft()
				promoted.Status = domain.AdRequestStatusPending

				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(promoted, nil)
			},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
			},
		},
		{
			name: "Corrida na promoção vira estado inválido",
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(completeDraft(), nil)

				mockAdRequestRepo.EXPECT().
					TransitionStatus(gomock.Any(), "REQ001", domain.AdRequestStatusDraft, domain.AdRequestStatusPending).
					Return(repository.ErrStateMismatch)
			},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
			},
		},
		{
			name: "Rascunho inexistente",
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(nil, nil)
			},
			validate: func(t *testing.T, request *domain.AdRequest, err error) {
				assert.ErrorIs(t, err, ErrRequestNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			request, err := service.SubmitDraft(context.Background(), "REQ001", "VND001")

			tt.validate(t, request, err)
		})
	}
}

func TestService_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRequestRepo := mocks.NewMockAdRequestRepository(ctrl)
	mockPlacementRepo := mocks.NewMockPlacementRepository(ctrl)
	mockDispatcher := notifyingmocks.NewMockDispatcher(ctrl)

	service := NewService(testConfig(), mockAdRequestRepo, mockPlacementRepo, mockDispatcher)

	pendingRequest := &domain.AdRequest{
		ID:       "REQ001",
		VendorID: "VND001",
		Title:    "Promoção de verão",
		Status:   domain.AdRequestStatusPending,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, err error)
	}{
		{
			name: "Aprovação registra a decisão e notifica o vendor",
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(pendingRequest, nil)

				mockAdRequestRepo.EXPECT().
					Decide(gomock.Any(), "REQ001", domain.AdRequestStatusApproved, "ADM001", stringPtr("ok"), gomock.Nil()).
					Return(nil)

				mockDispatcher.EXPECT().
					Notify(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, input notifying.NotifyInput) (*domain.Notification, error) {
						assert.Equal(t, "VND001", input.VendorID)
						assert.Equal(t, domain.NotificationRequestApproved, input.Type)
						assert.True(t, input.ActionRequired)
						assert.Equal(t, domain.NotificationPriorityHigh, input.Priority)
						assert.Contains(t, input.Message, "\"Promoção de verão\"")
						assert.Equal(t, "REQ001", input.Metadata["ad_request_id"])
						return &domain.Notification{ID: "NTF001"}, nil
					})
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Campanha inexistente",
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(nil, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrRequestNotFound)
			},
		},
		{
			name: "Decisão duplicada vira estado inválido",
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(pendingRequest, nil)

				mockAdRequestRepo.EXPECT().
					Decide(gomock.Any(), "REQ001", domain.AdRequestStatusApproved, "ADM001", gomock.Any(), gomock.Nil()).
					Return(repository.ErrStateMismatch)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
			},
		},
		{
			name: "Falha na notificação não desfaz a aprovação",
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(pendingRequest, nil)

				mockAdRequestRepo.EXPECT().
					Decide(gomock.Any(), "REQ001", domain.AdRequestStatusApproved, "ADM001", gomock.Any(), gomock.Nil()).
					Return(nil)

				mockDispatcher.EXPECT().
					Notify(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("notification store down"))
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.Approve(context.Background(), "REQ001", "ADM001", stringPtr("ok"))

			tt.validate(t, err)
		})
	}
}

func TestService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRequestRepo := mocks.NewMockAdRequestRepository(ctrl)
	mockPlacementRepo := mocks.NewMockPlacementRepository(ctrl)
	mockDispatcher := notifyingmocks.NewMockDispatcher(ctrl)

	service := NewService(testConfig(), mockAdRequestRepo, mockPlacementRepo, mockDispatcher)

	pendingRequest := &domain.AdRequest{
		ID:       "REQ001",
		VendorID: "VND001",
		Title:    "Promoção de verão",
		Status:   domain.AdRequestStatusPending,
	}

	tests := []struct {
		name     string
		reason   string
		setup    func()
		validate func(t *testing.T, err error)
	}{
		{
			name:   "Rejeição exige motivo antes de qualquer consulta",
			reason: "",
			setup:  func() {},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrReasonRequired)
			},
		},
		{
			name:   "Rejeição registra o motivo e notifica",
			reason: "Imagem fora do padrão",
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(pendingRequest, nil)

				mockAdRequestRepo.EXPECT().
					Decide(gomock.Any(), "REQ001", domain.AdRequestStatusRejected, "ADM001", gomock.Nil(), stringPtr("Imagem fora do padrão")).
					Return(nil)

				mockDispatcher.EXPECT().
					Notify(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, input notifying.NotifyInput) (*domain.Notification, error) {
						assert.Equal(t, domain.NotificationRequestRejected, input.Type)
						assert.Contains(t, input.Message, "Imagem fora do padrão")
						assert.False(t, input.ActionRequired)
						return &domain.Notification{ID: "NTF002"}, nil
					})
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:   "Decisão duplicada vira estado inválido",
			reason: "Imagem fora do padrão",
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(pendingRequest, nil)

				mockAdRequestRepo.EXPECT().
					Decide(gomock.Any(), "REQ001", domain.AdRequestStatusRejected, "ADM001", gomock.Any(), gomock.Any()).
					Return(repository.ErrStateMismatch)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.Reject(context.Background(), "REQ001", "ADM001", tt.reason, nil)

			tt.validate(t, err)
		})
	}
}

func TestService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRequestRepo := mocks.NewMockAdRequestRepository(ctrl)
	mockPlacementRepo := mocks.NewMockPlacementRepository(ctrl)
	mockDispatcher := notifyingmocks.NewMockDispatcher(ctrl)

	service := NewService(testConfig(), mockAdRequestRepo, mockPlacementRepo, mockDispatcher)

	activeRequest := func() *domain.AdRequest {
		return &domain.AdRequest{
			ID:       "REQ001",
			VendorID: "VND001",
			Status:   domain.AdRequestStatusActive,
		}
	}

	tests := []struct {
		name     string
		actorID  string
		isAdmin  bool
		setup    func()
		validate func(t *testing.T, err error)
	}{
		{
			name:    "Vendor cancela a própria campanha ativa",
			actorID: "VND001",
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(activeRequest(), nil)

				mockAdRequestRepo.EXPECT().
					TransitionStatus(gomock.Any(), "REQ001", domain.AdRequestStatusActive, domain.AdRequestStatusCancelled).
					Return(nil)

				mockPlacementRepo.EXPECT().
					DeactivateByAdRequestID(gomock.Any(), "REQ001").
					Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:    "Vendor não cancela campanha alheia",
			actorID: "VND999",
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(activeRequest(), nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNotOwner)
			},
		},
		{
			name:    "Admin cancela campanha de qualquer vendor",
			actorID: "ADM001",
			isAdmin: true,
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(activeRequest(), nil)

				mockAdRequestRepo.EXPECT().
					TransitionStatus(gomock.Any(), "REQ001", domain.AdRequestStatusActive, domain.AdRequestStatusCancelled).
					Return(nil)

				mockPlacementRepo.EXPECT().
					DeactivateByAdRequestID(gomock.Any(), "REQ001").
					Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:    "Campanha completed não é cancelável",
			actorID: "VND001",
			setup: func() {
				finished := activeRequest()
				finished.Status = domain.AdRequestStatusCompleted

				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(finished, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
			},
		},
		{
			name:    "Falha ao desativar o placement não desfaz o cancelamento",
			actorID: "VND001",
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(activeRequest(), nil)

				mockAdRequestRepo.EXPECT().
					TransitionStatus(gomock.Any(), "REQ001", domain.AdRequestStatusActive, domain.AdRequestStatusCancelled).
					Return(nil)

				mockPlacementRepo.EXPECT().
					DeactivateByAdRequestID(gomock.Any(), "REQ001").
					Return(errors.New("placement store down"))
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:    "Corrida no cancelamento vira estado inválido",
			actorID: "VND001",
			setup: func() {
				mockAdRequestRepo.EXPECT().
					GetByID(gomock.Any(), "REQ001").
					Return(activeRequest(), nil)

				mockAdRequestRepo.EXPECT().
					TransitionStatus(gomock.Any(), "REQ001", domain.AdRequestStatusActive, domain.AdRequestStatusCancelled).
					Return(repository.ErrStateMismatch)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidState)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.Cancel(context.Background(), "REQ001", tt.actorID, tt.isAdmin)

			tt.validate(t, err)
		})
	}
}

func TestService_CompleteExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdRequestRepo := mocks.NewMockAdRequestRepository(ctrl)
	mockPlacementRepo := mocks.NewMockPlacementRepository(ctrl)
	mockDispatcher := notifyingmocks.NewMockDispatcher(ctrl)

	service := NewService(testConfig(), mockAdRequestRepo, mockPlacementRepo, mockDispatcher)

	now := time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC)

	t.Run("Cada campanha encerrada gera uma notificação de baixa prioridade", func(t *testing.T) {
		completed := []*domain.AdRequest{
			{ID: "REQ001", VendorID: "VND001", Title: "Campanha A"},
			{ID: "REQ002", VendorID: "VND002", Title: "Campanha B"},
		}

		mockAdRequestRepo.EXPECT().
			CompleteExpired(gomock.Any(), now).
			Return(completed, nil)

		notified := map[string]string{}
		mockDispatcher.EXPECT().
			Notify(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input notifying.NotifyInput) (*domain.Notification, error) {
				assert.Equal(t, domain.NotificationCampaignDone, input.Type)
				assert.Equal(t, domain.NotificationPriorityLow, input.Priority)
				notified[input.Metadata["ad_request_id"]] = input.VendorID
				return &domain.Notification{}, nil
			}).
			Times(2)

		result, err := service.CompleteExpired(context.Background(), now)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, map[string]string{"REQ001": "VND001", "REQ002": "VND002"}, notified)
	})

	t.Run("Falha da varredura é propagada sem notificar ninguém", func(t *testing.T) {
		mockAdRequestRepo.EXPECT().
			CompleteExpired(gomock.Any(), now).
			Return(nil, errors.New("deadlock detected"))

		result, err := service.CompleteExpired(context.Background(), now)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
