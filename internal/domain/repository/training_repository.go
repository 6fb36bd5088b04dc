package repository

import "github.com/jhoicas/TrainOps-api/internal/domain/entity"

// TrainingRepository define el puerto de persistencia para TrainingClass y Learner.
type TrainingRepository interface {
	Create(class *entity.TrainingClass) error
	GetByID(id string) (*entity.TrainingClass, error)
	GetByDealID(dealID string) (*entity.TrainingClass, error)
	Update(class *entity.TrainingClass) error
	// List devuelve las clases en orden de creación (orden de escaneo del resolver).
	List() ([]*entity.TrainingClass, error)

	CreateLearner(learner *entity.Learner) error
	GetLearnerByID(id string) (*entity.Learner, error)
	UpdateLearner(learner *entity.Learner) error
	ListLearners(trainingID string) ([]*entity.Learner, error)
}
