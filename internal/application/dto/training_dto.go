package dto

import (
	"time"

	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// ScheduleTrainingRequest body para POST /api/deals/:id/training.
type ScheduleTrainingRequest struct {
	CourseName string `json:"course_name,omitempty"`
	TrainerID  string `json:"trainer_id" validate:"required"`
	Classroom  string `json:"classroom" validate:"required,oneof=1 2 3 4"`
	Hours      int    `json:"hours" validate:"min=0"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// EnrollLearnerRequest body para POST /api/trainings/:id/learners.
type EnrollLearnerRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

// TrainingResponse clase en respuestas.
type TrainingResponse struct {
	ID         string    `json:"id"`
	DealID     string    `json:"deal_id"`
	CourseName string    `json:"course_name"`
	TrainerID  string    `json:"trainer_id"`
	Classroom  string    `json:"classroom"`
	Hours      int       `json:"hours"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewTrainingResponse mapea la entidad.
func NewTrainingResponse(t entity.TrainingClass) TrainingResponse {
	return TrainingResponse{
		ID:         t.ID,
		DealID:     t.DealID,
		CourseName: t.CourseName,
		TrainerID:  t.TrainerID,
		Classroom:  t.Classroom,
		Hours:      t.Hours,
		StartDate:  t.StartDate.Format(DateLayout),
		EndDate:    t.EndDate.Format(DateLayout),
		Status:     t.Status,
		CreatedAt:  t.CreatedAt,
	}
}

// LearnerResponse alumno en respuestas.
type LearnerResponse struct {
	ID         string `json:"id"`
	TrainingID string `json:"training_id"`
	Name       string `json:"name"`
	Completed  bool   `json:"completed"`
}

// NewLearnerResponse mapea la entidad.
func NewLearnerResponse(l entity.Learner) LearnerResponse {
	return LearnerResponse{ID: l.ID, TrainingID: l.TrainingID, Name: l.Name, Completed: l.Completed}
}
