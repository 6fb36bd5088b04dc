package views

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// DashboardSummary KPIs de la pantalla de inicio.
type DashboardSummary struct {
	OpenLeads         int             `json:"open_leads"`
	OpenDeals         int             `json:"open_deals"`
	PipelineValue     decimal.Decimal `json:"pipeline_value"`
	PaidRevenue       decimal.Decimal `json:"paid_revenue"`
	Outstanding       decimal.Decimal `json:"outstanding"`
	UpcomingClasses   int             `json:"upcoming_classes"`
	OngoingClasses    int             `json:"ongoing_classes"`
	LearnersTotal     int             `json:"learners_total"`
	LearnersCompleted int             `json:"learners_completed"`
	CompletionRate    decimal.Decimal `json:"completion_rate"` // porcentaje 0-100
}

// Dashboard agrega los KPIs del snapshot.
//
//   - PipelineValue: valor de los deals aún abiertos.
//   - PaidRevenue / Outstanding: facturas Paid / Pending.
//   - CompletionRate: alumnos finalizados sobre inscritos.
func Dashboard(snap entity.Snapshot) DashboardSummary {
	sum := DashboardSummary{
		PipelineValue:  decimal.Zero,
		PaidRevenue:    decimal.Zero,
		Outstanding:    decimal.Zero,
		CompletionRate: decimal.Zero,
	}

	for _, l := range snap.Leads {
		if !l.IsTerminal() {
			sum.OpenLeads++
		}
	}
	for _, d := range snap.Deals {
		if !d.IsClosed() {
			sum.OpenDeals++
			sum.PipelineValue = sum.PipelineValue.Add(d.Value)
		}
	}
	for _, i := range snap.Invoices {
		if i.IsPaid() {
			sum.PaidRevenue = sum.PaidRevenue.Add(i.Amount)
		} else {
			sum.Outstanding = sum.Outstanding.Add(i.Amount)
		}
	}
	for _, c := range snap.Trainings {
		switch c.Status {
		case entity.TrainingStatusConfirmed:
			sum.UpcomingClasses++
		case entity.TrainingStatusOngoing:
			sum.OngoingClasses++
		}
	}
	for _, l := range snap.Learners {
		sum.LearnersTotal++
		if l.Completed {
			sum.LearnersCompleted++
		}
	}
	if sum.LearnersTotal > 0 {
		sum.CompletionRate = decimal.NewFromInt(int64(sum.LearnersCompleted)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(sum.LearnersTotal))).
			Round(2)
	}

	sum.PipelineValue = sum.PipelineValue.Round(2)
	sum.PaidRevenue = sum.PaidRevenue.Round(2)
	sum.Outstanding = sum.Outstanding.Round(2)
	return sum
}
