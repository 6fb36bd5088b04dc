package store

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/TrainOps-api/internal/domain"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// DealInput datos de un deal creado sin lead de origen.
type DealInput struct {
	Title      string
	ClientName string
	Type       string
	Value      decimal.Decimal
	AssignedTo string
}

// CreateDeal registra un deal directo (sin lead) en la etapa inicial.
func (s *Store) CreateDeal(ctx context.Context, in DealInput) (*entity.Deal, entity.Snapshot, error) {
	now := s.nowFn()
	deal := &entity.Deal{
		ID:         s.newID(),
		Title:      strings.TrimSpace(in.Title),
		ClientName: strings.TrimSpace(in.ClientName),
		Type:       in.Type,
		Value:      in.Value,
		Stage:      entity.DealStageOpen,
		AssignedTo: in.AssignedTo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	snap, err := s.run(ctx, "CreateDeal", func(r Repos) error {
		if deal.Title == "" || deal.Value.IsNegative() {
			return domain.ErrInvalidInput
		}
		if deal.AssignedTo != "" {
			if u, _ := r.Users.GetByID(deal.AssignedTo); u == nil {
				return domain.ErrNotFound
			}
		}
		return r.Deals.Create(deal)
	})
	if err != nil {
		return nil, snap, err
	}
	return deal, snap, nil
}

// AdvanceDealStage mueve el deal por el pipeline; Closed-Won y Closed-Lost son finales.
func (s *Store) AdvanceDealStage(ctx context.Context, dealID, stage string) (*entity.Deal, entity.Snapshot, error) {
	var out *entity.Deal
	snap, err := s.run(ctx, "AdvanceDealStage", func(r Repos) error {
		deal, _ := r.Deals.GetByID(dealID)
		if deal == nil {
			return domain.ErrNotFound
		}
		if !deal.CanMoveTo(stage) {
			return domain.ErrInvalidTransition
		}
		deal.Stage = stage
		deal.UpdatedAt = s.nowFn()
		out = deal
		return r.Deals.Update(deal)
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}
