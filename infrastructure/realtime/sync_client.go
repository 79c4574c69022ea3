package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adboardhq/adboard-api/internal/domain"
)

// ConnectionState é o estado do cliente de sincronização
type ConnectionState string

const (
	StateConnected    ConnectionState = "connected"
	StateDisconnected ConnectionState = "disconnected"
	StateReconnecting ConnectionState = "reconnecting"
)

// PricingFetcher busca o estado completo das tarifas
type PricingFetcher func(ctx context.Context) ([]domain.AdTypeTariff, error)

// SyncClient mantém um cache local de tarifas alinhado com o servidor:
// fetch completo inicial, depois eventos incrementais do transporte. Quando
// o canal cai, o cliente degrada para o cache e sinaliza o estado
// disconnected — modo degradado mas funcional, nunca um erro fatal para o
// consumidor.
type SyncClient struct {
	transport Transport
	channel   string
	fetch     PricingFetcher

	mu       sync.RWMutex
	state    ConnectionState
	tariffs  []domain.AdTypeTariff
	lastSync time.Time

	sub  Subscription
	done chan struct{}
	once sync.Once
}

func NewSyncClient(transport Transport, channel string, fetch PricingFetcher) *SyncClient {
	return &SyncClient{
		transport: transport,
		channel:   channel,
		fetch:     fetch,
		state:     StateDisconnected,
		done:      make(chan struct{}),
	}
}

// Start faz o fetch completo inicial e assina o canal de eventos
func (c *SyncClient) Start(ctx context.Context) error {
	if err := c.refresh(ctx); err != nil {
		// Sem fetch inicial ainda operamos: o cache fica vazio e o estado
		// disconnected orienta o consumidor a expor o refresh manual
		logrus.WithError(err).Warn("Fetch inicial de tarifas falhou; iniciando em modo desconectado")
	}

	sub, err := c.transport.Subscribe(ctx, c.channel)
	if err != nil {
		c.setState(StateDisconnected)
		return err
	}

	c.mu.Lock()
	c.sub = sub
	c.mu.Unlock()
	c.setState(StateConnected)

	go c.consume(ctx, sub)

	return nil
}

func (c *SyncClient) consume(ctx context.Context, sub Subscription) {
	for {
		select {
		case <-ctx.Done():
			c.setState(StateDisconnected)
			return
		case <-c.done:
			return
		case event, ok := <-sub.Events():
			if !ok {
				c.setState(StateDisconnected)
				return
			}

			switch event.Kind {
			case EventPricingChanged, EventKind("resync"):
				c.setState(StateReconnecting)
				if err := c.refresh(ctx); err != nil {
					logrus.WithError(err).Warn("Falha ao ressincronizar tarifas após evento")
					c.setState(StateDisconnected)
					continue
				}
				c.setState(StateConnected)
			default:
				// Eventos de outros tipos não afetam o cache de tarifas
			}
		}
	}
}

// refresh refaz o fetch completo e atualiza o cache
func (c *SyncClient) refresh(ctx context.Context) error {
	tariffs, err := c.fetch(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.tariffs = tariffs
	c.lastSync = time.Now()
	c.mu.Unlock()

	return nil
}

// Refresh é o gancho de atualização manual exposto quando o canal está
// indisponível
func (c *SyncClient) Refresh(ctx context.Context) error {
	return c.refresh(ctx)
}

// Tariffs devolve o cache corrente e o instante da última sincronização
func (c *SyncClient) Tariffs() ([]domain.AdTypeTariff, time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tariffs := make([]domain.AdTypeTariff, len(c.tariffs))
	copy(tariffs, c.tariffs)

	return tariffs, c.lastSync
}

func (c *SyncClient) State() ConnectionState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *SyncClient) setState(state ConnectionState) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

// Close encerra a assinatura; é seguro chamar mais de uma vez
func (c *SyncClient) Close() error {
	var err error
	c.once.Do(func() {
		close(c.done)
		c.mu.RLock()
		sub := c.sub
		c.mu.RUnlock()
		if sub != nil {
			err = sub.Close()
		}
		c.setState(StateDisconnected)
	})
	return err
}
