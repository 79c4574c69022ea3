// Package realtime implementa o canal de atualizações ao vivo sobre o
// Postgres. Dois transportes intercambiáveis ficam atrás da mesma interface:
// push via LISTEN/NOTIFY e polling periódico. A escolha é feita na partida
// da aplicação, então o restante do código não muda conforme o transporte.
package realtime

import (
	"context"
	"encoding/json"
	"time"
)

// EventKind identifica a natureza do evento publicado no canal
type EventKind string

const (
	EventPricingChanged      EventKind = "pricing_changed"
	EventNotificationCreated EventKind = "notification_created"
)

// Event é a mensagem trafegada no canal de tempo real
type Event struct {
	Kind    EventKind       `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
	At      time.Time       `json:"at"`
}

// Subscription é o handle devolvido por cada Subscribe. Quem criou a
// assinatura é dono do handle e deve chamar Close no teardown; não existe
// registro global de assinaturas.
type Subscription interface {
	// Events entrega os eventos recebidos. O canal é fechado quando a
	// assinatura termina (Close ou erro irrecuperável do transporte).
	Events() <-chan Event

	// Err devolve o erro que encerrou a assinatura, se houver
	Err() error

	Close() error
}

// Transport abre assinaturas no canal de eventos
type Transport interface {
	Subscribe(ctx context.Context, channel string) (Subscription, error)
}
