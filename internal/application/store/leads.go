package store

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/TrainOps-api/internal/domain"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// LeadInput datos de captura de un lead.
type LeadInput struct {
	Name       string
	Company    string
	Email      string
	Phone      string
	Source     string
	Type       string
	AssignedTo string
}

// ContactInput campos de presentación editables incluso en leads finales.
type ContactInput struct {
	Name    string
	Company string
	Email   string
	Phone   string
}

// CreateLead registra un lead en estado New.
func (s *Store) CreateLead(ctx context.Context, in LeadInput) (*entity.Lead, entity.Snapshot, error) {
	now := s.nowFn()
	lead := &entity.Lead{
		ID:         s.newID(),
		Name:       strings.TrimSpace(in.Name),
		Company:    strings.TrimSpace(in.Company),
		Email:      in.Email,
		Phone:      in.Phone,
		Source:     in.Source,
		Type:       in.Type,
		Status:     entity.LeadStatusNew,
		AssignedTo: in.AssignedTo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	snap, err := s.run(ctx, "CreateLead", func(r Repos) error {
		if lead.Name == "" || !entity.IsValidLeadType(lead.Type) {
			return domain.ErrInvalidInput
		}
		if lead.AssignedTo != "" {
			u, _ := r.Users.GetByID(lead.AssignedTo)
			if u == nil {
				return domain.ErrNotFound
			}
		}
		return r.Leads.Create(lead)
	})
	if err != nil {
		return nil, snap, err
	}
	return lead, snap, nil
}

// AdvanceLead mueve el lead hacia adelante (o a Lost). Converted solo se alcanza con ConvertLeadToDeal.
func (s *Store) AdvanceLead(ctx context.Context, leadID, status string) (*entity.Lead, entity.Snapshot, error) {
	var out *entity.Lead
	snap, err := s.run(ctx, "AdvanceLead", func(r Repos) error {
		lead, _ := r.Leads.GetByID(leadID)
		if lead == nil {
			return domain.ErrNotFound
		}
		if !lead.CanMoveTo(status) {
			return domain.ErrInvalidTransition
		}
		lead.Status = status
		lead.UpdatedAt = s.nowFn()
		out = lead
		return r.Leads.Update(lead)
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}

// MarkLeadLost descarta el lead (estado final).
func (s *Store) MarkLeadLost(ctx context.Context, leadID string) (*entity.Lead, entity.Snapshot, error) {
	return s.AdvanceLead(ctx, leadID, entity.LeadStatusLost)
}

// UpdateLeadContact edita los campos de presentación; no toca estado ni asignación.
func (s *Store) UpdateLeadContact(ctx context.Context, leadID string, in ContactInput) (*entity.Lead, entity.Snapshot, error) {
	var out *entity.Lead
	snap, err := s.run(ctx, "UpdateLeadContact", func(r Repos) error {
		if strings.TrimSpace(in.Name) == "" {
			return domain.ErrInvalidInput
		}
		lead, _ := r.Leads.GetByID(leadID)
		if lead == nil {
			return domain.ErrNotFound
		}
		lead.Name = strings.TrimSpace(in.Name)
		lead.Company = strings.TrimSpace(in.Company)
		lead.Email = in.Email
		lead.Phone = in.Phone
		lead.UpdatedAt = s.nowFn()
		out = lead
		return r.Leads.Update(lead)
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}

// ConvertLeadToDeal crea el deal originado por el lead y marca el lead como Converted.
//
// Precondiciones: el lead existe, no está Converted ni Lost y ningún deal lo referencia.
// Un segundo intento sobre el mismo lead devuelve ErrInvalidTransition.
func (s *Store) ConvertLeadToDeal(ctx context.Context, leadID string, value decimal.Decimal) (*entity.Deal, entity.Snapshot, error) {
	var out *entity.Deal
	snap, err := s.run(ctx, "ConvertLeadToDeal", func(r Repos) error {
		if value.IsNegative() {
			return domain.ErrInvalidInput
		}
		lead, _ := r.Leads.GetByID(leadID)
		if lead == nil {
			return domain.ErrNotFound
		}
		if lead.IsTerminal() {
			return domain.ErrInvalidTransition
		}
		if existing, _ := r.Deals.GetByLeadID(lead.ID); existing != nil {
			return domain.ErrInvalidTransition
		}

		now := s.nowFn()
		client := lead.Company
		if client == "" {
			client = lead.Name
		}
		deal := &entity.Deal{
			ID:         s.newID(),
			Title:      client + " Training",
			ClientName: client,
			Type:       lead.Type,
			Value:      value,
			Stage:      entity.DealStageOpen,
			AssignedTo: lead.AssignedTo,
			IsPaid:     false,
			LeadID:     lead.ID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := r.Deals.Create(deal); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.ErrInvalidTransition
			}
			return err
		}
		lead.Status = entity.LeadStatusConverted
		lead.UpdatedAt = now
		out = deal
		return r.Leads.Update(lead)
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}
