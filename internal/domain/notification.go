package domain

import "time"

// NotificationType classifica os eventos de ciclo de vida entregues ao vendor
type NotificationType string

const (
	NotificationRequestApproved NotificationType = "request_approved"
	NotificationRequestRejected NotificationType = "request_rejected"
	NotificationPaymentRequired NotificationType = "payment_required"
	NotificationCampaignLive    NotificationType = "campaign_live"
	NotificationCampaignDone    NotificationType = "campaign_completed"
	NotificationPriceChange     NotificationType = "price_change"
)

// NotificationPriority define o destaque da notificação na caixa do vendor
type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityNormal NotificationPriority = "normal"
	NotificationPriorityHigh   NotificationPriority = "high"
)

// Notification é um evento de ciclo de vida ou de preço entregue a um vendor.
// Imutável após a criação, exceto pelo flag is_read.
type Notification struct {
	ID             string               `json:"id"`
	VendorID       string               `json:"vendor_id"`
	Type           NotificationType     `json:"notification_type"`
	Title          string               `json:"title"`
	Message        string               `json:"message"`
	ActionRequired bool                 `json:"action_required"`
	ActionURL      *string              `json:"action_url,omitempty"`
	IsRead         bool                 `json:"is_read"`
	Priority       NotificationPriority `json:"priority"`
	Metadata       map[string]string    `json:"metadata,omitempty"`
	ExpiresAt      *time.Time           `json:"expires_at,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

// PriceChangeEvent é o payload publicado no canal de tempo real quando um
// admin altera uma tarifa
type PriceChangeEvent struct {
	AdTypeID  string    `json:"ad_type_id"`
	OldPrice  string    `json:"old_price"`
	NewPrice  string    `json:"new_price"`
	ChangedAt time.Time `json:"changed_at"`
}
