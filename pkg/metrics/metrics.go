// Package metrics expõe os contadores Prometheus da aplicação
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InteractionsTotal conta impressões e cliques registrados por superfície
	InteractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adboard_interactions_total",
			Help: "Total de interações registradas (impressão ou clique) por superfície",
		},
		[]string{"placement_type", "kind"},
	)

	// PaymentsTotal conta tentativas de pagamento por resultado
	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adboard_payments_total",
			Help: "Total de tentativas de pagamento por resultado",
		},
		[]string{"status"},
	)

	// PriceUpdatesTotal conta alterações de tarifa por formato de anúncio
	PriceUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adboard_price_updates_total",
			Help: "Total de alterações de tarifa por formato de anúncio",
		},
		[]string{"ad_type"},
	)

	// RequestTransitionsTotal conta transições de estado das campanhas
	RequestTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adboard_request_transitions_total",
			Help: "Total de transições de estado das campanhas",
		},
		[]string{"to_status"},
	)
)

// RecordInteraction registra uma interação servida
func RecordInteraction(placementType, kind string) {
	InteractionsTotal.WithLabelValues(placementType, kind).Inc()
}

// RecordPayment registra o resultado de uma tentativa de pagamento
func RecordPayment(status string) {
	PaymentsTotal.WithLabelValues(status).Inc()
}

// RecordPriceUpdate registra uma alteração de tarifa
func RecordPriceUpdate(adType string) {
	PriceUpdatesTotal.WithLabelValues(adType).Inc()
}

// RecordTransition registra uma transição de estado de campanha
func RecordTransition(toStatus string) {
	RequestTransitionsTotal.WithLabelValues(toStatus).Inc()
}
