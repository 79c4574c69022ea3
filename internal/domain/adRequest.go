package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdRequestStatus representa o estado de uma campanha no ciclo de vida
// draft → pending → {approved, rejected}; approved → payment_pending →
// paid → active → completed; qualquer estado pré-active pode ir para
// cancelled. rejected, completed e cancelled são terminais.
type AdRequestStatus string

const (
	AdRequestStatusDraft          AdRequestStatus = "draft"
	AdRequestStatusPending        AdRequestStatus = "pending"
	AdRequestStatusApproved       AdRequestStatus = "approved"
	AdRequestStatusRejected       AdRequestStatus = "rejected"
	AdRequestStatusPaymentPending AdRequestStatus = "payment_pending"
	AdRequestStatusPaid           AdRequestStatus = "paid"
	AdRequestStatusActive         AdRequestStatus = "active"
	AdRequestStatusCompleted      AdRequestStatus = "completed"
	AdRequestStatusCancelled      AdRequestStatus = "cancelled"
)

// Terminal indica se o estado não admite mais transições
func (s AdRequestStatus) Terminal() bool {
	switch s {
	case AdRequestStatusRejected, AdRequestStatusCompleted, AdRequestStatusCancelled:
		return true
	}
	return false
}

// Cancellable indica se a campanha ainda pode ser cancelada pelo vendor
// ou pelo admin (qualquer estado não terminal anterior a active, inclusive)
func (s AdRequestStatus) Cancellable() bool {
	switch s {
	case AdRequestStatusDraft, AdRequestStatusPending, AdRequestStatusApproved,
		AdRequestStatusPaymentPending, AdRequestStatusPaid, AdRequestStatusActive:
		return true
	}
	return false
}

// PriorityLevel classifica a ordem de revisão na fila do admin
type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "low"
	PriorityNormal PriorityLevel = "normal"
	PriorityHigh   PriorityLevel = "high"
)

// AdRequest representa a proposta de campanha de um vendor e seu ciclo de vida
type AdRequest struct {
	ID                 string          `json:"id"`
	VendorID           string          `json:"vendor_id"`
	AdTypeID           string          `json:"ad_type_id"`
	Title              string          `json:"title"`
	Content            string          `json:"content"`
	ImageURL           *string         `json:"image_url,omitempty"`
	VideoURL           *string         `json:"video_url,omitempty"`
	TargetAudience     *string         `json:"target_audience,omitempty"`
	RequestedStartDate time.Time       `json:"requested_start_date"`
	RequestedEndDate   time.Time       `json:"requested_end_date"`
	DailyBudget        decimal.Decimal `json:"daily_budget"`
	TotalBudget        decimal.Decimal `json:"total_budget"`
	Status             AdRequestStatus `json:"status"`
	AdminNotes         *string         `json:"admin_notes,omitempty"`
	RejectionReason    *string         `json:"rejection_reason,omitempty"`
	ReviewedBy         *string         `json:"reviewed_by,omitempty"`
	ReviewedAt         *time.Time      `json:"reviewed_at,omitempty"`
	PriorityLevel      PriorityLevel   `json:"priority_level"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// CampaignDays conta a duração de uma campanha em dias corridos, incluindo
// o dia inicial e o final. Toda derivação de duração passa por aqui para o
// preview e a cobrança nunca divergirem.
func CampaignDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// DurationDays retorna a duração da campanha em dias corridos
func (r *AdRequest) DurationDays() int {
	return CampaignDays(r.RequestedStartDate, r.RequestedEndDate)
}

// PricingBreakdown detalha a composição do valor total de uma campanha.
// As taxas (comissão da plataforma e GST) vêm da configuração e são
// aplicadas em um único lugar para evitar divergência entre telas.
type PricingBreakdown struct {
	BaseAmount  decimal.Decimal `json:"base_amount"`
	PlatformFee decimal.Decimal `json:"platform_fee"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	GSTAmount   decimal.Decimal `json:"gst_amount"`
	Total       decimal.Decimal `json:"total"`
}

// VendorStats agrega os números exibidos no painel do vendor
type VendorStats struct {
	TotalRequests  int             `json:"total_requests"`
	PendingCount   int             `json:"pending_count"`
	ApprovedCount  int             `json:"approved_count"`
	ActiveCount    int             `json:"active_count"`
	RejectedCount  int             `json:"rejected_count"`
	CompletedCount int             `json:"completed_count"`
	TotalSpend     decimal.Decimal `json:"total_spend"`
}
