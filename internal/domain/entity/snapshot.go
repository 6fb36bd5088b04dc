package entity

import "time"

// Snapshot estado completo y consistente de todas las colecciones en un instante.
// Contiene copias: modificarlo no afecta al store.
type Snapshot struct {
	Version   uint64
	TakenAt   time.Time
	Users     []User
	Leads     []Lead
	Deals     []Deal
	Proposals []Proposal
	Invoices  []Invoice
	Trainings []TrainingClass
	Learners  []Learner
}

// FindUser busca un usuario por ID dentro del snapshot.
func (s *Snapshot) FindUser(id string) (User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// FindDeal busca un deal por ID dentro del snapshot.
func (s *Snapshot) FindDeal(id string) (Deal, bool) {
	for _, d := range s.Deals {
		if d.ID == id {
			return d, true
		}
	}
	return Deal{}, false
}

// FindInvoice busca una factura por ID dentro del snapshot.
func (s *Snapshot) FindInvoice(id string) (Invoice, bool) {
	for _, i := range s.Invoices {
		if i.ID == id {
			return i, true
		}
	}
	return Invoice{}, false
}

// FindProposal busca una propuesta por ID dentro del snapshot.
func (s *Snapshot) FindProposal(id string) (Proposal, bool) {
	for _, p := range s.Proposals {
		if p.ID == id {
			return p, true
		}
	}
	return Proposal{}, false
}

// FindTraining busca una clase por ID dentro del snapshot.
func (s *Snapshot) FindTraining(id string) (TrainingClass, bool) {
	for _, t := range s.Trainings {
		if t.ID == id {
			return t, true
		}
	}
	return TrainingClass{}, false
}
