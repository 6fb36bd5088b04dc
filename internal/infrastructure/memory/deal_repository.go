package memory

import (
	"github.com/jhoicas/TrainOps-api/internal/domain"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
	"github.com/jhoicas/TrainOps-api/internal/domain/repository"
)

var _ repository.DealRepository = (*DealRepo)(nil)

// DealRepo implementación en memoria de DealRepository.
type DealRepo struct {
	st *state
}

// Create persiste un deal. Rechaza un segundo deal para el mismo lead (índice único lead_id).
func (r *DealRepo) Create(deal *entity.Deal) error {
	if deal.LeadID != "" {
		if existing, _ := r.GetByLeadID(deal.LeadID); existing != nil {
			return domain.ErrDuplicate
		}
	}
	return r.st.deals.insert(deal.ID, deal)
}

// GetByID obtiene un deal por ID; nil si no existe.
func (r *DealRepo) GetByID(id string) (*entity.Deal, error) {
	return r.st.deals.get(id), nil
}

// GetByLeadID devuelve el deal originado por el lead, o nil.
func (r *DealRepo) GetByLeadID(leadID string) (*entity.Deal, error) {
	if leadID == "" {
		return nil, nil
	}
	return r.st.deals.find(func(d *entity.Deal) bool { return d.LeadID == leadID }), nil
}

// Update reemplaza el deal. El LeadID no puede cambiar una vez asignado.
func (r *DealRepo) Update(deal *entity.Deal) error {
	current := r.st.deals.get(deal.ID)
	if current == nil {
		return domain.ErrNotFound
	}
	if current.LeadID != "" && current.LeadID != deal.LeadID {
		return domain.ErrInvalidTransition
	}
	return r.st.deals.put(deal.ID, deal)
}

// List lista deals en orden de creación.
func (r *DealRepo) List() ([]*entity.Deal, error) {
	return r.st.deals.list(), nil
}
