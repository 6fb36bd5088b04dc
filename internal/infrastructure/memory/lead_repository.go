package memory

import (
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
	"github.com/jhoicas/TrainOps-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación en memoria de LeadRepository.
type LeadRepo struct {
	st *state
}

// Create persiste un nuevo lead.
func (r *LeadRepo) Create(lead *entity.Lead) error {
	return r.st.leads.insert(lead.ID, lead)
}

// GetByID obtiene un lead por ID; nil si no existe.
func (r *LeadRepo) GetByID(id string) (*entity.Lead, error) {
	return r.st.leads.get(id), nil
}

// Update reemplaza el lead.
func (r *LeadRepo) Update(lead *entity.Lead) error {
	return r.st.leads.put(lead.ID, lead)
}

// List lista leads en orden de creación.
func (r *LeadRepo) List() ([]*entity.Lead, error) {
	return r.st.leads.list(), nil
}
