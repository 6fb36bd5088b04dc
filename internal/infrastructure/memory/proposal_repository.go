package memory

import (
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
	"github.com/jhoicas/TrainOps-api/internal/domain/repository"
)

var _ repository.ProposalRepository = (*ProposalRepo)(nil)

// ProposalRepo implementación en memoria de ProposalRepository.
type ProposalRepo struct {
	st *state
}

// Create persiste una propuesta.
func (r *ProposalRepo) Create(proposal *entity.Proposal) error {
	return r.st.proposals.insert(proposal.ID, proposal)
}

// GetByID obtiene una propuesta por ID; nil si no existe.
func (r *ProposalRepo) GetByID(id string) (*entity.Proposal, error) {
	return r.st.proposals.get(id), nil
}

// Update reemplaza la propuesta.
func (r *ProposalRepo) Update(proposal *entity.Proposal) error {
	return r.st.proposals.put(proposal.ID, proposal)
}

// ListByDeal lista las propuestas de un deal.
func (r *ProposalRepo) ListByDeal(dealID string) ([]*entity.Proposal, error) {
	var out []*entity.Proposal
	for _, p := range r.st.proposals.list() {
		if p.DealID == dealID {
			out = append(out, p)
		}
	}
	return out, nil
}
