package domain

import "time"

// PlacementType identifica a superfície de exibição de um anúncio
type PlacementType string

const (
	PlacementHeaderBanner PlacementType = "header_banner"
	PlacementSidebar      PlacementType = "sidebar"
	PlacementFooter       PlacementType = "footer"
	PlacementPopup        PlacementType = "popup"
	PlacementNotification PlacementType = "notification"
	PlacementVideoOverlay PlacementType = "video_overlay"
)

func (t PlacementType) Valid() bool {
	switch t {
	case PlacementHeaderBanner, PlacementSidebar, PlacementFooter,
		PlacementPopup, PlacementNotification, PlacementVideoOverlay:
		return true
	}
	return false
}

// SurfaceForAdType mapeia o formato do anúncio para a superfície padrão
// onde o placement é criado após o pagamento
func SurfaceForAdType(adType AdType) PlacementType {
	switch adType {
	case AdTypeVideo:
		return PlacementVideoOverlay
	case AdTypePopup:
		return PlacementPopup
	case AdTypeNotification:
		return PlacementNotification
	default:
		return PlacementHeaderBanner
	}
}

// Placement é o vínculo ativo entre uma campanha paga e uma superfície de
// exibição. Os contadores diários reiniciam na primeira impressão após a
// virada do dia; o CTR é sempre recalculado a partir dos contadores.
type Placement struct {
	ID                     string        `json:"id"`
	AdRequestID            string        `json:"ad_request_id"`
	PlacementType          PlacementType `json:"placement_type"`
	DisplayPriority        int           `json:"display_priority"`
	StartDate              time.Time     `json:"start_date"`
	EndDate                time.Time     `json:"end_date"`
	IsActive               bool          `json:"is_active"`
	TotalImpressions       int64         `json:"total_impressions"`
	TotalClicks            int64         `json:"total_clicks"`
	ClickThroughRate       float64       `json:"click_through_rate"`
	DailyImpressionLimit   *int64        `json:"daily_impression_limit,omitempty"`
	CurrentDailyImpression int64         `json:"current_daily_impressions"`
	LastImpressionReset    time.Time     `json:"last_impression_reset"`
	LastServedAt           *time.Time    `json:"last_served_at,omitempty"`
	CreatedAt              time.Time     `json:"created_at"`
	UpdatedAt              time.Time     `json:"updated_at"`
}

// InteractionKind distingue impressões de cliques em RecordInteraction
type InteractionKind string

const (
	InteractionImpression InteractionKind = "impression"
	InteractionClick      InteractionKind = "click"
)

func (k InteractionKind) Valid() bool {
	return k == InteractionImpression || k == InteractionClick
}

// PlacementRotation é a resposta de elegibilidade entregue às superfícies
// de exibição: os placements elegíveis mais as dicas de rotação do cliente
// (intervalo de round-robin e atraso do popup, que são política de exibição
// e não estado do servidor)
type PlacementRotation struct {
	Placements              []Placement `json:"placements"`
	RotationIntervalSeconds int         `json:"rotation_interval_seconds"`
	PopupDelaySeconds       int         `json:"popup_delay_seconds"`
}
