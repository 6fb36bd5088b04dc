package dto

import (
	"time"

	"github.com/jhoicas/TrainOps-api/internal/application/views"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// SnapshotResponse estado completo para GET /api/snapshot.
type SnapshotResponse struct {
	Version   uint64             `json:"version"`
	TakenAt   time.Time          `json:"taken_at"`
	Users     []UserResponse     `json:"users"`
	Leads     []LeadResponse     `json:"leads"`
	Deals     []DealResponse     `json:"deals"`
	Proposals []ProposalResponse `json:"proposals"`
	Invoices  []InvoiceResponse  `json:"invoices"`
	Trainings []TrainingResponse `json:"trainings"`
	Learners  []LearnerResponse  `json:"learners"`
}

// NewSnapshotResponse mapea todas las colecciones.
func NewSnapshotResponse(s entity.Snapshot) SnapshotResponse {
	out := SnapshotResponse{
		Version:   s.Version,
		TakenAt:   s.TakenAt,
		Users:     make([]UserResponse, 0, len(s.Users)),
		Leads:     make([]LeadResponse, 0, len(s.Leads)),
		Deals:     make([]DealResponse, 0, len(s.Deals)),
		Proposals: make([]ProposalResponse, 0, len(s.Proposals)),
		Invoices:  make([]InvoiceResponse, 0, len(s.Invoices)),
		Trainings: make([]TrainingResponse, 0, len(s.Trainings)),
		Learners:  make([]LearnerResponse, 0, len(s.Learners)),
	}
	for _, u := range s.Users {
		out.Users = append(out.Users, NewUserResponse(u))
	}
	for _, l := range s.Leads {
		out.Leads = append(out.Leads, NewLeadResponse(l))
	}
	for _, d := range s.Deals {
		out.Deals = append(out.Deals, NewDealResponse(d))
	}
	for _, p := range s.Proposals {
		out.Proposals = append(out.Proposals, NewProposalResponse(p))
	}
	for _, i := range s.Invoices {
		out.Invoices = append(out.Invoices, NewInvoiceResponse(i))
	}
	for _, t := range s.Trainings {
		out.Trainings = append(out.Trainings, NewTrainingResponse(t))
	}
	for _, l := range s.Learners {
		out.Learners = append(out.Learners, NewLearnerResponse(l))
	}
	return out
}

// MutationResponse respuesta de una escritura: la entidad afectada y la versión resultante.
type MutationResponse struct {
	Version uint64 `json:"version"`
	Data    any    `json:"data"`
}

// NotificationsResponse feed con el conteo de no leídos del usuario.
type NotificationsResponse struct {
	Items       []views.Notification `json:"items"`
	UnreadCount int                  `json:"unread_count"`
}

// SearchResponse resultados de GET /api/search.
type SearchResponse struct {
	Query   string               `json:"query"`
	Results []views.SearchResult `json:"results"`
}
