package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// ListenerTransport é o transporte push, baseado em LISTEN/NOTIFY do
// Postgres via pq.Listener
type ListenerTransport struct {
	dsn string

	minReconnect time.Duration
	maxReconnect time.Duration
}

func NewListenerTransport(dsn string) *ListenerTransport {
	return &ListenerTransport{
		dsn:          dsn,
		minReconnect: 2 * time.Second,
		maxReconnect: time.Minute,
	}
}

func (t *ListenerTransport) Subscribe(ctx context.Context, channel string) (Subscription, error) {
	listener := pq.NewListener(t.dsn, t.minReconnect, t.maxReconnect, func(event pq.ListenerEventType, err error) {
		if err != nil {
			logrus.WithError(err).Warn("Evento do listener Postgres com erro")
		}
	})

	if err := listener.Listen(channel); err != nil {
		_ = listener.Close()
		return nil, err
	}

	sub := &listenerSubscription{
		listener: listener,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}

	go sub.run(ctx)

	return sub, nil
}

type listenerSubscription struct {
	listener *pq.Listener
	events   chan Event

	mu     sync.Mutex
	err    error
	done   chan struct{}
	closed bool
}

func (s *listenerSubscription) run(ctx context.Context) {
	defer close(s.events)

	for {
		select {
		case <-ctx.Done():
			s.setErr(ctx.Err())
			return
		case <-s.done:
			return
		case notification, ok := <-s.listener.Notify:
			if !ok {
				s.setErr(ErrChannelClosed)
				return
			}
			// Notificações nil sinalizam reconexão do listener; o consumidor
			// deve refazer o fetch completo para não perder eventos no vão
			if notification == nil {
				s.emit(ctx, Event{Kind: EventKind("resync"), At: time.Now()})
				continue
			}

			var event Event
			if err := json.Unmarshal([]byte(notification.Extra), &event); err != nil {
				logrus.WithError(err).Warn("Payload inválido no canal de tempo real")
				continue
			}
			s.emit(ctx, event)
		}
	}
}

func (s *listenerSubscription) emit(ctx context.Context, event Event) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	case <-s.done:
	}
}

func (s *listenerSubscription) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

func (s *listenerSubscription) Events() <-chan Event {
	return s.events
}

func (s *listenerSubscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *listenerSubscription) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)
	return s.listener.Close()
}
