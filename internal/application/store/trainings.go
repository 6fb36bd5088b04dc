package store

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/TrainOps-api/internal/domain"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
	"github.com/jhoicas/TrainOps-api/internal/domain/scheduling"
)

// ScheduleRequest datos de programación de una clase.
type ScheduleRequest struct {
	CourseName string
	TrainerID  string
	Classroom  string
	Hours      int
	StartDate  time.Time
	EndDate    time.Time
}

func (r ScheduleRequest) validate() error {
	if !entity.IsValidClassroom(r.Classroom) || r.TrainerID == "" || r.Hours < 0 {
		return domain.ErrInvalidInput
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() || r.StartDate.After(r.EndDate) {
		return domain.ErrInvalidInput
	}
	return nil
}

// ScheduleTraining programa la clase de un deal pagado.
//
// Orden de comprobación:
//  1. el deal existe y aún no tiene clase (un segundo intento → ErrInvalidTransition);
//  2. el formador existe, está activo y tiene rol Trainer;
//  3. el resolver no encuentra solape de aula ni de formador (→ *domain.SchedulingConflictError);
//  4. el deal está pagado.
//
// Con todo en orden crea la clase en estado Confirmed.
func (s *Store) ScheduleTraining(ctx context.Context, dealID string, req ScheduleRequest) (*entity.TrainingClass, entity.Snapshot, error) {
	var out *entity.TrainingClass
	snap, err := s.run(ctx, "ScheduleTraining", func(r Repos) error {
		if err := req.validate(); err != nil {
			return err
		}
		deal, _ := r.Deals.GetByID(dealID)
		if deal == nil {
			return domain.ErrNotFound
		}
		if existing, _ := r.Trainings.GetByDealID(dealID); existing != nil {
			return domain.ErrInvalidTransition
		}
		trainer, _ := r.Users.GetByID(req.TrainerID)
		if trainer == nil {
			return domain.ErrNotFound
		}
		if trainer.Role != entity.RoleTrainer || !trainer.Active {
			return domain.ErrInvalidInput
		}

		classes, err := r.Trainings.List()
		if err != nil {
			return err
		}
		if err := s.resolver.Check(classes, scheduling.Request{
			TrainerID: req.TrainerID,
			Classroom: req.Classroom,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		}); err != nil {
			return err
		}
		if !deal.IsPaid {
			return domain.ErrInvalidTransition
		}

		course := strings.TrimSpace(req.CourseName)
		if course == "" {
			course = defaultCourseName(r, deal)
		}
		out = &entity.TrainingClass{
			ID:         s.newID(),
			DealID:     dealID,
			CourseName: course,
			TrainerID:  req.TrainerID,
			Classroom:  req.Classroom,
			Hours:      req.Hours,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			Status:     entity.TrainingStatusConfirmed,
			CreatedAt:  s.nowFn(),
		}
		return r.Trainings.Create(out)
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}

// defaultCourseName toma el primer curso de la propuesta aceptada del deal, o el título del deal.
func defaultCourseName(r Repos, deal *entity.Deal) string {
	proposals, _ := r.Proposals.ListByDeal(deal.ID)
	for _, p := range proposals {
		if p.Status == entity.ProposalStatusAccepted && len(p.Items) > 0 {
			return p.Items[0].Name
		}
	}
	return deal.Title
}

// StartTraining pasa la clase a Ongoing. Un aula no puede tener dos clases en curso.
func (s *Store) StartTraining(ctx context.Context, trainingID string) (*entity.TrainingClass, entity.Snapshot, error) {
	var out *entity.TrainingClass
	snap, err := s.run(ctx, "StartTraining", func(r Repos) error {
		class, _ := r.Trainings.GetByID(trainingID)
		if class == nil {
			return domain.ErrNotFound
		}
		if class.Status != entity.TrainingStatusConfirmed {
			return domain.ErrInvalidTransition
		}
		classes, err := r.Trainings.List()
		if err != nil {
			return err
		}
		if err := s.resolver.CheckOngoing(classes, class); err != nil {
			return err
		}
		class.Status = entity.TrainingStatusOngoing
		out = class
		return r.Trainings.Update(class)
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}

// CompleteTraining cierra una clase en curso.
func (s *Store) CompleteTraining(ctx context.Context, trainingID string) (*entity.TrainingClass, entity.Snapshot, error) {
	var out *entity.TrainingClass
	snap, err := s.run(ctx, "CompleteTraining", func(r Repos) error {
		class, _ := r.Trainings.GetByID(trainingID)
		if class == nil {
			return domain.ErrNotFound
		}
		if class.Status != entity.TrainingStatusOngoing {
			return domain.ErrInvalidTransition
		}
		class.Status = entity.TrainingStatusCompleted
		out = class
		return r.Trainings.Update(class)
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}

// EnrollLearner inscribe un alumno en una clase no finalizada.
func (s *Store) EnrollLearner(ctx context.Context, trainingID, name string) (*entity.Learner, entity.Snapshot, error) {
	var out *entity.Learner
	snap, err := s.run(ctx, "EnrollLearner", func(r Repos) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return domain.ErrInvalidInput
		}
		class, _ := r.Trainings.GetByID(trainingID)
		if class == nil {
			return domain.ErrNotFound
		}
		if class.Status == entity.TrainingStatusCompleted {
			return domain.ErrInvalidTransition
		}
		out = &entity.Learner{
			ID:         s.newID(),
			TrainingID: trainingID,
			Name:       name,
			CreatedAt:  s.nowFn(),
		}
		return r.Trainings.CreateLearner(out)
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}

// CompleteLearner marca al alumno como finalizado. Es idempotente y nunca revierte.
func (s *Store) CompleteLearner(ctx context.Context, learnerID string) (*entity.Learner, entity.Snapshot, error) {
	var out *entity.Learner
	snap, err := s.run(ctx, "CompleteLearner", func(r Repos) error {
		learner, _ := r.Trainings.GetLearnerByID(learnerID)
		if learner == nil {
			return domain.ErrNotFound
		}
		out = learner
		if learner.Completed {
			return errNoChange
		}
		learner.Completed = true
		return r.Trainings.UpdateLearner(learner)
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}
