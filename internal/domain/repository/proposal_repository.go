package repository

import "github.com/jhoicas/TrainOps-api/internal/domain/entity"

// ProposalRepository define el puerto de persistencia para Proposal.
type ProposalRepository interface {
	Create(proposal *entity.Proposal) error
	GetByID(id string) (*entity.Proposal, error)
	Update(proposal *entity.Proposal) error
	ListByDeal(dealID string) ([]*entity.Proposal, error)
}
