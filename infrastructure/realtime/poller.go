package realtime

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrChannelClosed indica que o canal subjacente do transporte foi encerrado
var ErrChannelClosed = errors.New("canal de tempo real encerrado")

// PollFunc busca os eventos ocorridos desde o instante informado
type PollFunc func(ctx context.Context, since time.Time) ([]Event, error)

// PollingTransport é o transporte de fallback quando LISTEN/NOTIFY não está
// disponível: um tick periódico dispara um fetch incremental. Um fetch nunca
// é iniciado enquanto o anterior está em andamento, para não acumular
// requisições pendentes quando o banco está lento.
type PollingTransport struct {
	interval time.Duration
	poll     PollFunc
}

func NewPollingTransport(interval time.Duration, poll PollFunc) *PollingTransport {
	return &PollingTransport{interval: interval, poll: poll}
}

func (t *PollingTransport) Subscribe(ctx context.Context, channel string) (Subscription, error) {
	sub := &pollingSubscription{
		interval: t.interval,
		poll:     t.poll,
		events:   make(chan Event, 16),
		done:     make(chan struct{}),
	}

	go sub.run(ctx)

	return sub, nil
}

type pollingSubscription struct {
	interval time.Duration
	poll     PollFunc
	events   chan Event

	mu     sync.Mutex
	err    error
	done   chan struct{}
	closed bool
}

func (s *pollingSubscription) run(ctx context.Context) {
	defer close(s.events)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	since := time.Now()
	inFlight := false
	var flightMu sync.Mutex

	for {
		select {
		case <-ctx.Done():
			s.setErr(ctx.Err())
			return
		case <-s.done:
			return
		case <-ticker.C:
			flightMu.Lock()
			if inFlight {
				flightMu.Unlock()
				continue
			}
			inFlight = true
			flightMu.Unlock()

			events, err := s.poll(ctx, since)

			flightMu.Lock()
			inFlight = false
			flightMu.Unlock()

			if err != nil {
				// Falha de polling é transitória: o próximo tick tenta de
				// novo, sem derrubar a assinatura
				continue
			}

			for _, event := range events {
				if event.At.After(since) {
					since = event.At
				}
				select {
				case s.events <- event:
				case <-ctx.Done():
					s.setErr(ctx.Err())
					return
				case <-s.done:
					return
				}
			}
		}
	}
}

func (s *pollingSubscription) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

func (s *pollingSubscription) Events() <-chan Event {
	return s.events
}

func (s *pollingSubscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *pollingSubscription) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)
	return nil
}
