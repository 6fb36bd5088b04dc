// Package scheduling decide si una clase puede ubicarse sin solapar aula ni formador.
//
// Regla de solape (intervalos cerrados): [a,b] y [c,d] se solapan si a ≤ d y c ≤ b.
// El escaneo sigue el orden de las clases existentes; si hay conflicto de aula y de
// formador a la vez, se informa el de aula.
package scheduling

import (
	"time"

	"github.com/jhoicas/TrainOps-api/internal/domain"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// Request datos de la clase propuesta.
type Request struct {
	TrainerID string
	Classroom string
	StartDate time.Time
	EndDate   time.Time
}

// ResolverService valida disponibilidad de aula y formador (servicio de dominio, sin estado).
type ResolverService struct{}

// NewResolverService crea el servicio.
func NewResolverService() *ResolverService {
	return &ResolverService{}
}

// Overlaps compara dos intervalos cerrados.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// Check devuelve *domain.SchedulingConflictError con la primera clase en conflicto,
// o nil si la solicitud cabe. No modifica existing.
func (s *ResolverService) Check(existing []*entity.TrainingClass, req Request) error {
	var roomHit, trainerHit *entity.TrainingClass
	for _, c := range existing {
		if c == nil || !Overlaps(req.StartDate, req.EndDate, c.StartDate, c.EndDate) {
			continue
		}
		if roomHit == nil && c.Classroom == req.Classroom {
			roomHit = c
		}
		if trainerHit == nil && c.TrainerID == req.TrainerID {
			trainerHit = c
		}
		if roomHit != nil {
			break
		}
	}
	switch {
	case roomHit != nil:
		return &domain.SchedulingConflictError{ClassID: roomHit.ID, Kind: domain.ConflictRoom}
	case trainerHit != nil:
		return &domain.SchedulingConflictError{ClassID: trainerHit.ID, Kind: domain.ConflictTrainer}
	}
	return nil
}

// CheckOngoing verifica que ninguna otra clase del aula esté en curso (Ongoing)
// antes de iniciar la clase indicada.
func (s *ResolverService) CheckOngoing(existing []*entity.TrainingClass, class *entity.TrainingClass) error {
	for _, c := range existing {
		if c == nil || c.ID == class.ID {
			continue
		}
		if c.Classroom == class.Classroom && c.Status == entity.TrainingStatusOngoing {
			return &domain.SchedulingConflictError{ClassID: c.ID, Kind: domain.ConflictRoom}
		}
	}
	return nil
}
