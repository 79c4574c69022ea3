package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adboardhq/adboard-api/infrastructure/database/postgres"
)

// Publisher publica eventos no canal de tempo real via pg_notify. A
// publicação é uma otimização de frescor, não a fonte de verdade: um vendor
// offline no momento do broadcast vê o novo estado no próximo fetch.
type Publisher struct {
	conn    *postgres.Connection
	channel string
}

func NewPublisher(conn *postgres.Connection, channel string) *Publisher {
	return &Publisher{conn: conn, channel: channel}
}

func (p *Publisher) Publish(ctx context.Context, kind EventKind, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar payload do evento: %w", err)
	}

	event := Event{
		Kind:    kind,
		Payload: raw,
		At:      time.Now(),
	}

	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao serializar evento: %w", err)
	}

	_, err = p.conn.ExecContext(ctx, `SELECT pg_notify($1, $2)`, p.channel, string(message))
	if err != nil {
		return fmt.Errorf("erro ao publicar evento: %w", err)
	}

	return nil
}
