package memory

import (
	"time"

	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// state colecciones canónicas. Solo TxRunner la reemplaza.
type state struct {
	users      *table[entity.User]
	leads      *table[entity.Lead]
	deals      *table[entity.Deal]
	proposals  *table[entity.Proposal]
	invoices   *table[entity.Invoice]
	trainings  *table[entity.TrainingClass]
	learners   *table[entity.Learner]
	invoiceSeq int
	version    uint64
}

func newState() *state {
	return &state{
		users:     newTable(func(u *entity.User) *entity.User { c := *u; return &c }),
		leads:     newTable(func(l *entity.Lead) *entity.Lead { c := *l; return &c }),
		deals:     newTable(func(d *entity.Deal) *entity.Deal { c := *d; return &c }),
		proposals: newTable(cloneProposal),
		invoices:  newTable(cloneInvoice),
		trainings: newTable(func(t *entity.TrainingClass) *entity.TrainingClass { c := *t; return &c }),
		learners:  newTable(func(l *entity.Learner) *entity.Learner { c := *l; return &c }),
	}
}

func cloneProposal(p *entity.Proposal) *entity.Proposal {
	c := *p
	c.Items = entity.CloneItems(p.Items)
	return &c
}

func cloneInvoice(i *entity.Invoice) *entity.Invoice {
	c := *i
	if i.PaymentDate != nil {
		paid := *i.PaymentDate
		c.PaymentDate = &paid
	}
	return &c
}

func (s *state) clone() *state {
	return &state{
		users:      s.users.clone(),
		leads:      s.leads.clone(),
		deals:      s.deals.clone(),
		proposals:  s.proposals.clone(),
		invoices:   s.invoices.clone(),
		trainings:  s.trainings.clone(),
		learners:   s.learners.clone(),
		invoiceSeq: s.invoiceSeq,
		version:    s.version,
	}
}

func (s *state) snapshot(now time.Time) entity.Snapshot {
	return entity.Snapshot{
		Version:   s.version,
		TakenAt:   now,
		Users:     s.users.values(),
		Leads:     s.leads.values(),
		Deals:     s.deals.values(),
		Proposals: s.proposals.values(),
		Invoices:  s.invoices.values(),
		Trainings: s.trainings.values(),
		Learners:  s.learners.values(),
	}
}
