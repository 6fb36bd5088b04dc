package views_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/TrainOps-api/internal/application/views"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 9, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func fixture() entity.Snapshot {
	return entity.Snapshot{
		Version: 7,
		Users: []entity.User{
			{ID: "u1", Name: "Laura Acme", Email: "laura@trainops.dev", Role: entity.RoleDirector, Active: true},
			{ID: "u2", Name: "Pedro", Email: "pedro@acme.test", Role: entity.RoleTrainer, Active: true},
		},
		Leads: []entity.Lead{
			{ID: "l1", Name: "Jane Doe", Company: "Acme Corp", Type: entity.TypeCorporate, Status: entity.LeadStatusConverted, CreatedAt: day(1)},
			{ID: "l2", Name: "John", Company: "Globex", Type: entity.TypeCorporate, Status: entity.LeadStatusNew, CreatedAt: day(2)},
			{ID: "l3", Name: "ACME Retail", Type: entity.TypeRetail, Status: entity.LeadStatusLost, CreatedAt: day(3)},
			{ID: "l4", Name: "Rosa", Type: entity.TypeRetail, Status: entity.LeadStatusContacted, CreatedAt: day(4)},
		},
		Deals: []entity.Deal{
			{ID: "d1", Title: "Acme Corp Training", ClientName: "Acme Corp", Value: decimal.NewFromInt(5000), Stage: entity.DealStageOpen, IsPaid: true},
			{ID: "d2", Title: "Globex Training", ClientName: "Globex", Value: decimal.NewFromInt(1200), Stage: entity.DealStageClosedWon},
			{ID: "d3", Title: "Acme Extra", ClientName: "Acme Corp", Value: decimal.NewFromInt(300), Stage: entity.DealStageProposal},
		},
		Invoices: []entity.Invoice{
			{ID: "i1", DealID: "d1", InvoiceNumber: "INV-0001", Amount: decimal.NewFromInt(5000), Status: entity.InvoiceStatusPaid, PaymentDate: ptr(day(5))},
			{ID: "i2", DealID: "d2", InvoiceNumber: "INV-0002", Amount: decimal.NewFromInt(1200), Status: entity.InvoiceStatusPending},
			{ID: "i3", DealID: "d2", InvoiceNumber: "INV-0003", Amount: decimal.NewFromInt(100), Status: entity.InvoiceStatusPaid, PaymentDate: ptr(day(6))},
			{ID: "i4", DealID: "d3", InvoiceNumber: "INV-0004", Amount: decimal.NewFromInt(50), Status: entity.InvoiceStatusPaid, PaymentDate: ptr(day(4))},
		},
		Trainings: []entity.TrainingClass{
			{ID: "c1", DealID: "d1", CourseName: "Python", Classroom: "1", Status: entity.TrainingStatusConfirmed, StartDate: day(20), EndDate: day(22)},
			{ID: "c2", DealID: "d2", CourseName: "Go", Classroom: "2", Status: entity.TrainingStatusOngoing, StartDate: day(1), EndDate: day(30)},
			{ID: "c3", DealID: "d3", CourseName: "K8s", Classroom: "3", Status: entity.TrainingStatusConfirmed, StartDate: day(20), EndDate: day(21)},
		},
		Learners: []entity.Learner{
			{ID: "a1", TrainingID: "c1", Completed: true},
			{ID: "a2", TrainingID: "c1"},
			{ID: "a3", TrainingID: "c2"},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_DeterministaYOrdenado(t *testing.T) {
	snap := fixture()
	first := views.Search(snap, "acme")
	second := views.Search(snap, "acme")
	require.Equal(t, first, second)

	var kinds []string
	var ids []string
	for _, r := range first {
		kinds = append(kinds, r.Kind)
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"l1", "l3", "d1", "d3", "u1", "u2"}, ids)
	assert.Equal(t, views.KindLead, kinds[0])
	assert.Equal(t, views.TabDeals, first[2].Tab)
	assert.Equal(t, views.TabUsers, first[5].Tab)
}

func TestSearch_ConsultaVaciaNoDevuelveNada(t *testing.T) {
	snap := fixture()
	for _, q := range []string{"", "   "} {
		got := views.Search(snap, q)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestSearch_MaximoSeisResultados(t *testing.T) {
	snap := fixture()
	for i := 0; i < 10; i++ {
		snap.Leads = append(snap.Leads, entity.Lead{ID: "x" + string(rune('a'+i)), Name: "Acme clone"})
	}
	got := views.Search(snap, "ACME")
	assert.Len(t, got, views.MaxSearchResults)
	for _, r := range got {
		assert.Equal(t, views.KindLead, r.Kind, "los leads se recorren primero")
	}
}

func TestSearch_NumeroDeFacturaYEmail(t *testing.T) {
	snap := fixture()
	got := views.Search(snap, "inv-0003")
	require.Len(t, got, 1)
	assert.Equal(t, "i3", got[0].ID)
	assert.Equal(t, views.TabInvoices, got[0].Tab)

	got = views.Search(snap, "pedro@")
	require.Len(t, got, 1)
	assert.Equal(t, views.KindUser, got[0].Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notifications
// ──────────────────────────────────────────────────────────────────────────────

func TestNotifications_ComposicionYOrden(t *testing.T) {
	snap := fixture()
	feed := views.Notifications(snap)

	var ids []string
	for _, n := range feed {
		ids = append(ids, n.ID)
	}
	// c1 y c3 empatan en fecha: desempate por ID.
	assert.Equal(t, []string{"training-c1", "training-c3", "invoice-i3", "invoice-i1", "lead-l4", "lead-l3"}, ids)
	assert.Equal(t, views.SeverityWarning, feed[0].Severity)
	assert.Equal(t, views.SeveritySuccess, feed[2].Severity)
	assert.Equal(t, views.SeverityInfo, feed[4].Severity)
	assert.Equal(t, feed, views.Notifications(snap), "pura: misma entrada, misma salida")
}

func TestUnreadCount_Formula(t *testing.T) {
	feed := views.Notifications(fixture())
	require.NotEmpty(t, feed)

	tests := []struct {
		name string
		read views.ReadSet
		want int
	}{
		{name: "nada leído", read: views.ReadSet{}, want: len(feed)},
		{name: "uno leído", read: views.ReadSet{feed[0].ID: {}}, want: len(feed) - 1},
		{name: "IDs ajenos no cuentan", read: views.ReadSet{"lead-viejo": {}, feed[1].ID: {}}, want: len(feed) - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, views.UnreadCount(feed, tt.read))
		})
	}

	all := views.ReadSet{}
	all.MarkAllRead(feed)
	assert.Equal(t, 0, views.UnreadCount(feed, all))
}

func TestReadTracker_PorUsuario(t *testing.T) {
	snap := fixture()
	feed := views.Notifications(snap)
	tracker := views.NewReadTracker()

	tracker.MarkAllRead("u1", feed)
	assert.Equal(t, 0, tracker.UnreadCount("u1", feed))
	assert.Equal(t, len(feed), tracker.UnreadCount("u2", feed))

	snap.Leads = append(snap.Leads, entity.Lead{ID: "l5", Name: "Nuevo", CreatedAt: day(28)})
	assert.Equal(t, 1, tracker.UnreadCount("u1", views.Notifications(snap)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterInvoices(t *testing.T) {
	snap := fixture()

	rows := views.FilterInvoices(snap, views.InvoiceFilter{Status: entity.InvoiceStatusPaid})
	require.Len(t, rows, 3)
	assert.Equal(t, "Acme Corp", rows[0].ClientName)
	assert.True(t, decimal.NewFromInt(5150).Equal(views.TotalAmount(rows)))

	rows = views.FilterInvoices(snap, views.InvoiceFilter{DealID: "d2"})
	require.Len(t, rows, 2)
	assert.Equal(t, "Globex Training", rows[1].DealTitle)

	assert.Len(t, views.FilterInvoices(snap, views.InvoiceFilter{}), 4)
}

func TestDashboard(t *testing.T) {
	got := views.Dashboard(fixture())

	assert.Equal(t, 2, got.OpenLeads)
	assert.Equal(t, 2, got.OpenDeals)
	assert.True(t, decimal.NewFromInt(5300).Equal(got.PipelineValue))
	assert.True(t, decimal.NewFromInt(5150).Equal(got.PaidRevenue))
	assert.True(t, decimal.NewFromInt(1200).Equal(got.Outstanding))
	assert.Equal(t, 2, got.UpcomingClasses)
	assert.Equal(t, 1, got.OngoingClasses)
	assert.Equal(t, 3, got.LearnersTotal)
	assert.Equal(t, 1, got.LearnersCompleted)
	assert.Equal(t, "33.33", got.CompletionRate.StringFixed(2))

	empty := views.Dashboard(entity.Snapshot{})
	assert.True(t, empty.CompletionRate.IsZero())
}
