package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/TrainOps-api/internal/application/store"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// Ensure TxRunner implements store.TxRunner.
var _ store.TxRunner = (*TxRunner)(nil)

// TxRunner único escritor del estado en memoria: cada Run trabaja sobre una copia
// y la publica solo si el callback termina sin error.
type TxRunner struct {
	mu    sync.RWMutex
	st    *state
	nowFn func() time.Time
}

// Option configura el TxRunner.
type Option func(*TxRunner)

// WithClock fija el reloj usado para TakenAt de los snapshots.
func WithClock(now func() time.Time) Option {
	return func(r *TxRunner) { r.nowFn = now }
}

// NewTxRunner construye el runner con un estado vacío.
func NewTxRunner(opts ...Option) *TxRunner {
	r := &TxRunner{
		st:    newState(),
		nowFn: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run serializa la transacción, ejecuta fn con repos atados a la copia y hace Commit o descarta.
func (r *TxRunner) Run(ctx context.Context, fn func(repos store.Repos) error) (entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return entity.Snapshot{}, fmt.Errorf("begin transaction: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := r.st.clone()
	if err := fn(reposFor(tx)); err != nil {
		// Rollback: la copia se descarta y el estado vigente no cambia.
		return r.st.snapshot(r.nowFn()), err
	}
	tx.version++
	r.st = tx
	return r.st.snapshot(r.nowFn()), nil
}

// Snapshot devuelve una copia del estado vigente (lectura pura).
func (r *TxRunner) Snapshot() entity.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.st.snapshot(r.nowFn())
}

func reposFor(st *state) store.Repos {
	return store.Repos{
		Users:     &UserRepo{st: st},
		Leads:     &LeadRepo{st: st},
		Deals:     &DealRepo{st: st},
		Proposals: &ProposalRepo{st: st},
		Invoices:  &InvoiceRepo{st: st},
		Trainings: &TrainingRepo{st: st},
	}
}
