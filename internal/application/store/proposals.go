package store

import (
	"context"
	"strings"

	"github.com/jhoicas/TrainOps-api/internal/domain"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

func validateItems(items []entity.LineItem) error {
	if len(items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" || it.Price.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// CreateProposal crea una propuesta Sent para el deal. El total es la suma de las líneas.
func (s *Store) CreateProposal(ctx context.Context, dealID string, items []entity.LineItem) (*entity.Proposal, entity.Snapshot, error) {
	now := s.nowFn()
	proposal := &entity.Proposal{
		ID:        s.newID(),
		DealID:    dealID,
		Items:     entity.CloneItems(items),
		Status:    entity.ProposalStatusSent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	snap, err := s.run(ctx, "CreateProposal", func(r Repos) error {
		if err := validateItems(proposal.Items); err != nil {
			return err
		}
		if deal, _ := r.Deals.GetByID(dealID); deal == nil {
			return domain.ErrNotFound
		}
		return r.Proposals.Create(proposal)
	})
	if err != nil {
		return nil, snap, err
	}
	return proposal, snap, nil
}

// UpdateProposalItems reemplaza las líneas de una propuesta aún no resuelta.
func (s *Store) UpdateProposalItems(ctx context.Context, proposalID string, items []entity.LineItem) (*entity.Proposal, entity.Snapshot, error) {
	var out *entity.Proposal
	snap, err := s.run(ctx, "UpdateProposalItems", func(r Repos) error {
		if err := validateItems(items); err != nil {
			return err
		}
		p, _ := r.Proposals.GetByID(proposalID)
		if p == nil {
			return domain.ErrNotFound
		}
		if p.IsResolved() {
			return domain.ErrInvalidTransition
		}
		p.Items = entity.CloneItems(items)
		p.UpdatedAt = s.nowFn()
		out = p
		return r.Proposals.Update(p)
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}

// AcceptProposal pasa la propuesta a Accepted. Aceptar de nuevo una propuesta
// ya aceptada es un éxito sin cambios (doble envío desde la UI).
func (s *Store) AcceptProposal(ctx context.Context, proposalID string) (*entity.Proposal, entity.Snapshot, error) {
	return s.resolveProposal(ctx, "AcceptProposal", proposalID, entity.ProposalStatusAccepted)
}

// RejectProposal pasa la propuesta a Rejected; repetir el rechazo no cambia nada.
func (s *Store) RejectProposal(ctx context.Context, proposalID string) (*entity.Proposal, entity.Snapshot, error) {
	return s.resolveProposal(ctx, "RejectProposal", proposalID, entity.ProposalStatusRejected)
}

func (s *Store) resolveProposal(ctx context.Context, op, proposalID, target string) (*entity.Proposal, entity.Snapshot, error) {
	var out *entity.Proposal
	snap, err := s.run(ctx, op, func(r Repos) error {
		p, _ := r.Proposals.GetByID(proposalID)
		if p == nil {
			return domain.ErrNotFound
		}
		out = p
		switch p.Status {
		case target:
			return errNoChange
		case entity.ProposalStatusSent:
			p.Status = target
			p.UpdatedAt = s.nowFn()
			return r.Proposals.Update(p)
		default:
			return domain.ErrInvalidTransition
		}
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}
