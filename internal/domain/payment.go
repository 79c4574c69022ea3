package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus representa o estado de uma tentativa de pagamento
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Payment registra uma tentativa de pagamento de uma campanha aprovada.
// Registros nunca são apagados (trilha de auditoria); apenas um pagamento
// completed é autoritativo por campanha.
type Payment struct {
	ID                   string          `json:"id"`
	AdRequestID          string          `json:"ad_request_id"`
	VendorID             string          `json:"vendor_id"`
	Amount               decimal.Decimal `json:"amount"`
	PaymentMethod        string          `json:"payment_method"`
	GatewayTransactionID string          `json:"gateway_transaction_id"`
	Status               PaymentStatus   `json:"status"`
	GSTAmount            decimal.Decimal `json:"gst_amount"`
	PlatformFee          decimal.Decimal `json:"platform_fee"`
	NetAmount            decimal.Decimal `json:"net_amount"`
	ReceiptRef           string          `json:"receipt_ref"`
	PaymentDate          *time.Time      `json:"payment_date,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}
