package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound                  = errors.New("recurso no encontrado")
	ErrInvalidInput              = errors.New("entrada inválida")
	ErrDuplicate                 = errors.New("recurso duplicado")
	ErrUnauthorized              = errors.New("no autorizado")
	ErrInvalidTransition         = errors.New("transición de estado no permitida")
	ErrSchedulingConflict        = errors.New("conflicto de programación")
	ErrSelfDeactivationForbidden = errors.New("no se puede desactivar la propia sesión")
)

// Tipos de conflicto de programación.
const (
	ConflictRoom    = "room"
	ConflictTrainer = "trainer"
)

// SchedulingConflictError identifica la clase existente que bloquea la programación.
// errors.Is(err, ErrSchedulingConflict) es verdadero para este tipo.
type SchedulingConflictError struct {
	ClassID string
	Kind    string // room | trainer
}

func (e *SchedulingConflictError) Error() string {
	if e.Kind == ConflictRoom {
		return fmt.Sprintf("%s: aula ocupada por la clase %s", ErrSchedulingConflict, e.ClassID)
	}
	return fmt.Sprintf("%s: formador asignado a la clase %s", ErrSchedulingConflict, e.ClassID)
}

// Is permite comparar con ErrSchedulingConflict.
func (e *SchedulingConflictError) Is(target error) bool {
	return target == ErrSchedulingConflict
}
