package store

import (
	"context"
	"errors"

	"github.com/jhoicas/TrainOps-api/internal/domain"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
	"github.com/jhoicas/TrainOps-api/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Users     repository.UserRepository
	Leads     repository.LeadRepository
	Deals     repository.DealRepository
	Proposals repository.ProposalRepository
	Invoices  repository.InvoiceRepository
	Trainings repository.TrainingRepository
}

// TxRunner ejecuta fn sobre una copia del estado y la confirma solo si fn no devuelve error.
// Las transacciones se serializan: nunca hay dos aplicándose a la vez.
// Devuelve el snapshot resultante (o el vigente si fn falla).
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) (entity.Snapshot, error)
	Snapshot() entity.Snapshot
}

// TransitionObserver recibe el resultado de cada operación (métricas).
type TransitionObserver interface {
	Observe(operation string, err error, seconds float64)
}

// Outcome etiqueta el resultado de una operación según su error tipado.
func Outcome(err error) string {
	var conflict *domain.SchedulingConflictError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &conflict):
		return "conflict_" + conflict.Kind
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrDuplicate):
		return "duplicate"
	case errors.Is(err, domain.ErrSelfDeactivationForbidden):
		return "forbidden"
	default:
		return "error"
	}
}
