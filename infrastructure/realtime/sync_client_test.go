package realtime

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/adboardhq/adboard-api/internal/domain"
)

// stubSubscription é uma assinatura controlada pelo teste
type stubSubscription struct {
	events chan Event
	err    error
	once   sync.Once
}

func newStubSubscription() *stubSubscription {
	return &stubSubscription{events: make(chan Event, 8)}
}

func (s *stubSubscription) Events() <-chan Event { return s.events }
func (s *stubSubscription) Err() error           { return s.err }
func (s *stubSubscription) Close() error {
	s.once.Do(func() { close(s.events) })
	return nil
}

type stubTransport struct {
	sub *stubSubscription
	err error
}

func (t *stubTransport) Subscribe(_ context.Context, _ string) (Subscription, error) {
	if t.err != nil {
		return nil, t.err
	}
	return t.sub, nil
}

func tariffFixture(price int64) []domain.AdTypeTariff {
	return []domain.AdTypeTariff{
		{AdTypeID: "banner", TypeName: domain.AdTypeBanner, BasePrice: decimal.NewFromInt(price)},
	}
}

func TestSyncClient_Start(t *testing.T) {
	sub := newStubSubscription()
	transport := &stubTransport{sub: sub}

	fetches := 0
	client := NewSyncClient(transport, "adboard_events", func(_ context.Context) ([]domain.AdTypeTariff, error) {
		fetches++
		return tariffFixture(500), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := client.Start(ctx)
	assert.NoError(t, err)
	defer client.Close()

	assert.Equal(t, StateConnected, client.State())
	assert.Equal(t, 1, fetches)

	tariffs, lastSync := client.Tariffs()
	assert.Len(t, tariffs, 1)
	assert.Equal(t, "500", tariffs[0].BasePrice.String())
	assert.False(t, lastSync.IsZero())
}

func TestSyncClient_ressincronizaAposEventoDePreco(t *testing.T) {
	sub := newStubSubscription()
	transport := &stubTransport{sub: sub}

	var mu sync.Mutex
	price := int64(500)

	client := NewSyncClient(transport, "adboard_events", func(_ context.Context) ([]domain.AdTypeTariff, error) {
		mu.Lock()
		defer mu.Unlock()
		return tariffFixture(price), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.NoError(t, client.Start(ctx))
	defer client.Close()

	mu.Lock()
	price = 650
	mu.Unlock()

	sub.events <- Event{Kind: EventPricingChanged, At: time.Now()}

	assert.Eventually(t, func() bool {
		tariffs, _ := client.Tariffs()
		return len(tariffs) == 1 && tariffs[0].BasePrice.String() == "650"
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, StateConnected, client.State())
}

func TestSyncClient_ignoraEventosDeOutroTipo(t *testing.T) {
	sub := newStubSubscription()
	transport := &stubTransport{sub: sub}

	fetches := 0
	var mu sync.Mutex

	client := NewSyncClient(transport, "adboard_events", func(_ context.Context) ([]domain.AdTypeTariff, error) {
		mu.Lock()
		defer mu.Unlock()
		fetches++
		return tariffFixture(500), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.NoError(t, client.Start(ctx))
	defer client.Close()

	sub.events <- Event{Kind: EventNotificationCreated, At: time.Now()}
	sub.events <- Event{Kind: EventPricingChanged, At: time.Now()}

	// O evento de notificação não dispara refetch; só o de preço
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return fetches == 2
	}, time.Second, 10*time.Millisecond)
}

func TestSyncClient_degradaParaCacheQuandoOCanalCai(t *testing.T) {
	sub := newStubSubscription()
	transport := &stubTransport{sub: sub}

	client := NewSyncClient(transport, "adboard_events", func(_ context.Context) ([]domain.AdTypeTariff, error) {
		return tariffFixture(500), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.NoError(t, client.Start(ctx))

	sub.Close()

	assert.Eventually(t, func() bool {
		return client.State() == StateDisconnected
	}, time.Second, 10*time.Millisecond)

	// O cache continua servindo mesmo desconectado
	tariffs, _ := client.Tariffs()
	assert.Len(t, tariffs, 1)

	assert.NoError(t, client.Close())
}

func TestSyncClient_fetchInicialFalhoNaoImpedeAPartida(t *testing.T) {
	sub := newStubSubscription()
	transport := &stubTransport{sub: sub}

	client := NewSyncClient(transport, "adboard_events", func(_ context.Context) ([]domain.AdTypeTariff, error) {
		return nil, errors.New("relation ad_type_tariffs does not exist")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := client.Start(ctx)
	assert.NoError(t, err)
	defer client.Close()

	// Conectado ao canal, mas com cache vazio até o primeiro refresh bem
	// sucedido
	assert.Equal(t, StateConnected, client.State())
	tariffs, lastSync := client.Tariffs()
	assert.Empty(t, tariffs)
	assert.True(t, lastSync.IsZero())
}

func TestSyncClient_falhaAoAssinarDevolveErro(t *testing.T) {
	transport := &stubTransport{err: errors.New("connection refused")}

	client := NewSyncClient(transport, "adboard_events", func(_ context.Context) ([]domain.AdTypeTariff, error) {
		return tariffFixture(500), nil
	})

	err := client.Start(context.Background())

	assert.Error(t, err)
	assert.Equal(t, StateDisconnected, client.State())
}

func TestPollingTransport_entregaEventosIncrementais(t *testing.T) {
	var mu sync.Mutex
	polls := 0
	var lastSince time.Time

	eventAt := time.Now().Add(time.Hour)

	transport := NewPollingTransport(10*time.Millisecond, func(_ context.Context, since time.Time) ([]Event, error) {
		mu.Lock()
		defer mu.Unlock()
		polls++
		lastSince = since
		if polls == 1 {
			return []Event{{Kind: EventPricingChanged, At: eventAt}}, nil
		}
		return nil, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub, err := transport.Subscribe(ctx, "adboard_events")
	assert.NoError(t, err)
	defer sub.Close()

	event := <-sub.Events()
	assert.Equal(t, EventPricingChanged, event.Kind)

	// O cursor avança para o instante do último evento entregue
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return polls >= 2 && lastSince.Equal(eventAt)
	}, time.Second, 10*time.Millisecond)
}

func TestPollingTransport_falhaDePollingETransitoria(t *testing.T) {
	var mu sync.Mutex
	polls := 0

	transport := NewPollingTransport(10*time.Millisecond, func(_ context.Context, _ time.Time) ([]Event, error) {
		mu.Lock()
		defer mu.Unlock()
		polls++
		if polls == 1 {
			return nil, errors.New("connection reset")
		}
		return []Event{{Kind: EventPricingChanged, At: time.Now()}}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub, err := transport.Subscribe(ctx, "adboard_events")
	assert.NoError(t, err)
	defer sub.Close()

	// Mesmo após o erro do primeiro tick, o seguinte entrega normalmente
	select {
	case event := <-sub.Events():
		assert.Equal(t, EventPricingChanged, event.Kind)
	case <-time.After(time.Second):
		t.Fatal("nenhum evento entregue após falha transitória de polling")
	}
}

func TestPollingTransport_cancelamentoEncerraAAssinatura(t *testing.T) {
	transport := NewPollingTransport(10*time.Millisecond, func(_ context.Context, _ time.Time) ([]Event, error) {
		return nil, nil
	})

	ctx, cancel := context.WithCancel(context.Background())

	sub, err := transport.Subscribe(ctx, "adboard_events")
	assert.NoError(t, err)

	cancel()

	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-sub.Events():
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	assert.ErrorIs(t, sub.Err(), context.Canceled)
}
