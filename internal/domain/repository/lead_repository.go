package repository

import "github.com/jhoicas/TrainOps-api/internal/domain/entity"

// LeadRepository define el puerto de persistencia para Lead.
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	Update(lead *entity.Lead) error
	List() ([]*entity.Lead, error)
}
