// Package store es la única vía de mutación del dominio: cada operación valida sus
// precondiciones y aplica la transición completa dentro de una transacción, o la rechaza
// con un error tipado sin tocar el estado.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
	"github.com/jhoicas/TrainOps-api/internal/domain/scheduling"
	"github.com/jhoicas/TrainOps-api/pkg/logger"
)

// errNoChange corta la transacción de una operación idempotente que ya estaba aplicada.
// Se traduce a éxito sin publicar una versión nueva.
var errNoChange = errors.New("sin cambios")

// Store motor de transiciones sobre las colecciones canónicas.
type Store struct {
	tx       TxRunner
	resolver *scheduling.ResolverService
	observer TransitionObserver
	log      *logger.Logger
	nowFn    func() time.Time
	newID    func() string
}

// Option configura el Store.
type Option func(*Store)

// WithObserver registra un observador de transiciones (métricas).
func WithObserver(o TransitionObserver) Option {
	return func(s *Store) { s.observer = o }
}

// WithClock fija el reloj (fechas de pago, createdAt).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.nowFn = now }
}

// NewStore construye el store sobre el runner transaccional.
func NewStore(tx TxRunner, log *logger.Logger, opts ...Option) *Store {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{
		tx:       tx,
		resolver: scheduling.NewResolverService(),
		log:      log.Component("store"),
		nowFn:    func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot devuelve el estado vigente (lectura pura, sin efectos).
func (s *Store) Snapshot() entity.Snapshot {
	return s.tx.Snapshot()
}

// run aplica fn como una transacción, registra el resultado y envuelve el error con la operación.
func (s *Store) run(ctx context.Context, op string, fn func(r Repos) error) (entity.Snapshot, error) {
	start := time.Now()
	snap, err := s.tx.Run(ctx, fn)
	if errors.Is(err, errNoChange) {
		err = nil
	}
	if s.observer != nil {
		s.observer.Observe(op, err, time.Since(start).Seconds())
	}
	if err != nil {
		s.log.Warn().Str("op", op).Err(err).Msg("transición rechazada")
		return snap, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Debug().Str("op", op).Uint64("version", snap.Version).Msg("transición aplicada")
	return snap, nil
}
