package repository

import "github.com/jhoicas/TrainOps-api/internal/domain/entity"

// DealRepository define el puerto de persistencia para Deal.
type DealRepository interface {
	Create(deal *entity.Deal) error
	GetByID(id string) (*entity.Deal, error)
	// GetByLeadID devuelve el deal originado por el lead, o nil si no existe.
	GetByLeadID(leadID string) (*entity.Deal, error)
	Update(deal *entity.Deal) error
	List() ([]*entity.Deal, error)
}
