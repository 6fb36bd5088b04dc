package store_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/TrainOps-api/internal/application/store"
	"github.com/jhoicas/TrainOps-api/internal/domain"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
	"github.com/jhoicas/TrainOps-api/internal/domain/scheduling"
	"github.com/jhoicas/TrainOps-api/internal/infrastructure/memory"
	"github.com/jhoicas/TrainOps-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	opts = append([]store.Option{store.WithClock(func() time.Time { return fixedNow })}, opts...)
	return store.NewStore(memory.NewTxRunner(), logger.Nop(), opts...)
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func mustUser(t *testing.T, s *store.Store, email, role string) *entity.User {
	t.Helper()
	u, _, err := s.CreateUser(context.Background(), store.UserInput{Name: email, Email: email, Role: role})
	require.NoError(t, err)
	return u
}

func mustLead(t *testing.T, s *store.Store, name, company string) *entity.Lead {
	t.Helper()
	l, _, err := s.CreateLead(context.Background(), store.LeadInput{Name: name, Company: company, Type: entity.TypeCorporate})
	require.NoError(t, err)
	return l
}

// paidDeal recorre lead → deal → factura → pago y devuelve el deal pagado.
func paidDeal(t *testing.T, s *store.Store, company string, value int64) *entity.Deal {
	t.Helper()
	ctx := context.Background()
	lead := mustLead(t, s, "Contacto "+company, company)
	deal, _, err := s.ConvertLeadToDeal(ctx, lead.ID, decimal.NewFromInt(value))
	require.NoError(t, err)
	inv, _, err := s.RaiseInvoice(ctx, deal.ID, decimal.NewFromInt(value), time.Time{})
	require.NoError(t, err)
	_, _, err = s.RecordPayment(ctx, inv.ID)
	require.NoError(t, err)
	return deal
}

func dealIn(snap entity.Snapshot, id string) entity.Deal {
	d, _ := snap.FindDeal(id)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Leads y conversión
// ──────────────────────────────────────────────────────────────────────────────

func TestConvertLeadToDeal_SegundoIntentoEsInvalidTransition(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	lead := mustLead(t, s, "Jane Doe", "Acme Corp")

	deal, snap, err := s.ConvertLeadToDeal(ctx, lead.ID, decimal.NewFromInt(5000))
	require.NoError(t, err)
	assert.Equal(t, lead.ID, deal.LeadID)
	assert.Len(t, snap.Deals, 1)

	_, snap2, err := s.ConvertLeadToDeal(ctx, lead.ID, decimal.NewFromInt(5000))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Len(t, snap2.Deals, 1, "no se crea un segundo deal para el mismo lead")
	assert.Equal(t, snap.Version, snap2.Version, "un fallo no publica versión nueva")
}

func TestConvertLeadToDeal_Precondiciones(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, _, err := s.ConvertLeadToDeal(ctx, "no-existe", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	lost := mustLead(t, s, "Perdido", "Initech")
	_, _, err = s.MarkLeadLost(ctx, lost.ID)
	require.NoError(t, err)
	_, _, err = s.ConvertLeadToDeal(ctx, lost.ID, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	ok := mustLead(t, s, "Válido", "Globex")
	_, _, err = s.ConvertLeadToDeal(ctx, ok.ID, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdvanceLead_SoloHaciaAdelante(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	lead := mustLead(t, s, "Jane", "Acme")

	got, _, err := s.AdvanceLead(ctx, lead.ID, entity.LeadStatusQualified)
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusQualified, got.Status)

	_, _, err = s.AdvanceLead(ctx, lead.ID, entity.LeadStatusContacted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, _, err = s.AdvanceLead(ctx, lead.ID, entity.LeadStatusConverted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "Converted solo vía conversión")
}

func TestUpdateLeadContact_PermitidoEnLeadConvertido(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	lead := mustLead(t, s, "Jane", "Acme")
	_, _, err := s.ConvertLeadToDeal(ctx, lead.ID, decimal.NewFromInt(1))
	require.NoError(t, err)

	got, _, err := s.UpdateLeadContact(ctx, lead.ID, store.ContactInput{Name: "Jane D.", Company: "Acme Corp", Email: "j@acme.test"})
	require.NoError(t, err)
	assert.Equal(t, "Jane D.", got.Name)
	assert.Equal(t, entity.LeadStatusConverted, got.Status)
}

func TestCreateLead_AsignadoDebeExistir(t *testing.T) {
	s := newStore(t)
	_, _, err := s.CreateLead(context.Background(), store.LeadInput{Name: "X", Type: entity.TypeRetail, AssignedTo: "fantasma"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.Snapshot().Leads)
}

// ──────────────────────────────────────────────────────────────────────────────
// Deals y propuestas
// ──────────────────────────────────────────────────────────────────────────────

func TestAdvanceDealStage(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	deal, _, err := s.CreateDeal(ctx, store.DealInput{Title: "Directo", ClientName: "Umbrella", Value: decimal.NewFromInt(100)})
	require.NoError(t, err)
	assert.Empty(t, deal.LeadID)

	_, _, err = s.AdvanceDealStage(ctx, deal.ID, entity.DealStageClosedWon)
	require.NoError(t, err)
	_, _, err = s.AdvanceDealStage(ctx, deal.ID, entity.DealStageNegotiation)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, _, err = s.CreateDeal(ctx, store.DealInput{Title: "Negativo", Value: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProposal_TotalSiempreEsSumaDeLineas(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	deal, _, err := s.CreateDeal(ctx, store.DealInput{Title: "D", Value: decimal.NewFromInt(1)})
	require.NoError(t, err)

	p, snap, err := s.CreateProposal(ctx, deal.ID, []entity.LineItem{
		{Name: "Go", Price: decimal.NewFromInt(3000), Duration: "24 Hours"},
		{Name: "K8s", Price: decimal.NewFromInt(2000), Duration: "16 Hours"},
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5000).Equal(p.TotalValue()))
	stored, _ := snap.FindProposal(p.ID)
	assert.True(t, decimal.NewFromInt(5000).Equal(stored.TotalValue()))

	p, snap, err = s.UpdateProposalItems(ctx, p.ID, []entity.LineItem{{Name: "Go", Price: decimal.NewFromInt(1500)}})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1500).Equal(p.TotalValue()))
	stored, _ = snap.FindProposal(p.ID)
	assert.True(t, decimal.NewFromInt(1500).Equal(stored.TotalValue()))
}

func TestCreateProposal_Validaciones(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	deal, _, err := s.CreateDeal(ctx, store.DealInput{Title: "D", Value: decimal.NewFromInt(1)})
	require.NoError(t, err)

	_, _, err = s.CreateProposal(ctx, deal.ID, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = s.CreateProposal(ctx, deal.ID, []entity.LineItem{{Name: "X", Price: decimal.NewFromInt(-1)}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = s.CreateProposal(ctx, "no-existe", []entity.LineItem{{Name: "X", Price: decimal.NewFromInt(1)}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAcceptProposal_Idempotente(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	deal, _, err := s.CreateDeal(ctx, store.DealInput{Title: "D", Value: decimal.NewFromInt(1)})
	require.NoError(t, err)
	p, _, err := s.CreateProposal(ctx, deal.ID, []entity.LineItem{{Name: "X", Price: decimal.NewFromInt(1)}})
	require.NoError(t, err)

	first, snap1, err := s.AcceptProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProposalStatusAccepted, first.Status)

	second, snap2, err := s.AcceptProposal(ctx, p.ID)
	require.NoError(t, err, "re-aceptar no es error")
	assert.Equal(t, entity.ProposalStatusAccepted, second.Status)
	assert.Equal(t, snap1.Version, snap2.Version, "el segundo accept no cambia el estado")

	_, _, err = s.RejectProposal(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "Accepted es final")
	_, _, err = s.UpdateProposalItems(ctx, p.ID, []entity.LineItem{{Name: "Y", Price: decimal.NewFromInt(2)}})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRejectProposal_NoPuedeAceptarseDespues(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	deal, _, err := s.CreateDeal(ctx, store.DealInput{Title: "D", Value: decimal.NewFromInt(1)})
	require.NoError(t, err)
	p, _, err := s.CreateProposal(ctx, deal.ID, []entity.LineItem{{Name: "X", Price: decimal.NewFromInt(1)}})
	require.NoError(t, err)

	_, _, err = s.RejectProposal(ctx, p.ID)
	require.NoError(t, err)
	_, _, err = s.AcceptProposal(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas y pagos
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordPayment_NoSeAplicaDosVeces(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	deal, _, err := s.CreateDeal(ctx, store.DealInput{Title: "D", Value: decimal.NewFromInt(5000)})
	require.NoError(t, err)
	inv, _, err := s.RaiseInvoice(ctx, deal.ID, decimal.NewFromInt(5000), time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", inv.InvoiceNumber)
	assert.Nil(t, inv.PaymentDate)
	assert.Equal(t, fixedNow.Add(30*24*time.Hour), inv.DueDate)

	paid, snap, err := s.RecordPayment(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, paid.Status)
	require.NotNil(t, paid.PaymentDate)
	assert.Equal(t, fixedNow, *paid.PaymentDate)
	assert.True(t, dealIn(snap, deal.ID).IsPaid)

	_, snap2, err := s.RecordPayment(ctx, inv.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, snap.Version, snap2.Version)
}

func TestRecordPayment_ImporteParcialNoPagaElDeal(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	deal, _, err := s.CreateDeal(ctx, store.DealInput{Title: "D", Value: decimal.NewFromInt(5000)})
	require.NoError(t, err)
	inv, _, err := s.RaiseInvoice(ctx, deal.ID, decimal.NewFromInt(2000), time.Time{})
	require.NoError(t, err)

	_, snap, err := s.RecordPayment(ctx, inv.ID)
	require.NoError(t, err)
	assert.False(t, dealIn(snap, deal.ID).IsPaid)
}

func TestRaiseInvoice_ConsecutivoMonotono(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	deal, _, err := s.CreateDeal(ctx, store.DealInput{Title: "D", Value: decimal.NewFromInt(10)})
	require.NoError(t, err)

	_, _, err = s.RaiseInvoice(ctx, "no-existe", decimal.NewFromInt(1), time.Time{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	a, _, err := s.RaiseInvoice(ctx, deal.ID, decimal.NewFromInt(5), time.Time{})
	require.NoError(t, err)
	_, _, err = s.RaiseInvoice(ctx, deal.ID, decimal.NewFromInt(-5), time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	b, _, err := s.RaiseInvoice(ctx, deal.ID, decimal.NewFromInt(5), time.Time{})
	require.NoError(t, err)

	assert.Equal(t, "INV-0001", a.InvoiceNumber)
	assert.Equal(t, "INV-0002", b.InvoiceNumber, "un intento fallido no consume consecutivo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Programación de clases
// ──────────────────────────────────────────────────────────────────────────────

func TestScheduleTraining_Precondiciones(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	trainer := mustUser(t, s, "trainer@x.test", entity.RoleTrainer)
	finance := mustUser(t, s, "finance@x.test", entity.RoleFinance)
	req := store.ScheduleRequest{TrainerID: trainer.ID, Classroom: "1", Hours: 40, StartDate: date("2024-04-01"), EndDate: date("2024-04-05")}

	unpaid, _, err := s.CreateDeal(ctx, store.DealInput{Title: "Sin pagar", Value: decimal.NewFromInt(10)})
	require.NoError(t, err)
	_, _, err = s.ScheduleTraining(ctx, unpaid.ID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "el deal debe estar pagado")

	deal := paidDeal(t, s, "Acme", 100)

	_, _, err = s.ScheduleTraining(ctx, "no-existe", req)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	bad := req
	bad.TrainerID = finance.ID
	_, _, err = s.ScheduleTraining(ctx, deal.ID, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "solo usuarios con rol Trainer")

	bad = req
	bad.Classroom = "99"
	_, _, err = s.ScheduleTraining(ctx, deal.ID, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bad = req
	bad.StartDate, bad.EndDate = req.EndDate, req.StartDate
	_, _, err = s.ScheduleTraining(ctx, deal.ID, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "startDate > endDate")

	class, _, err := s.ScheduleTraining(ctx, deal.ID, req)
	require.NoError(t, err)
	assert.Equal(t, entity.TrainingStatusConfirmed, class.Status)

	other := req
	other.Classroom = "3"
	other.StartDate, other.EndDate = date("2025-01-01"), date("2025-01-02")
	_, _, err = s.ScheduleTraining(ctx, deal.ID, other)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "una clase por deal")
}

func TestScheduleTraining_ConflictoNoMuta(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	t1 := mustUser(t, s, "t1@x.test", entity.RoleTrainer)
	t2 := mustUser(t, s, "t2@x.test", entity.RoleTrainer)
	d1 := paidDeal(t, s, "A", 10)
	d2 := paidDeal(t, s, "B", 10)
	d3 := paidDeal(t, s, "C", 10)

	first, _, err := s.ScheduleTraining(ctx, d1.ID, store.ScheduleRequest{TrainerID: t1.ID, Classroom: "1", StartDate: date("2024-04-01"), EndDate: date("2024-04-05")})
	require.NoError(t, err)

	before := s.Snapshot()
	_, _, err = s.ScheduleTraining(ctx, d2.ID, store.ScheduleRequest{TrainerID: t2.ID, Classroom: "1", StartDate: date("2024-04-05"), EndDate: date("2024-04-06")})
	var conflict *domain.SchedulingConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, first.ID, conflict.ClassID)
	assert.Equal(t, domain.ConflictRoom, conflict.Kind)

	_, _, err = s.ScheduleTraining(ctx, d3.ID, store.ScheduleRequest{TrainerID: t1.ID, Classroom: "2", StartDate: date("2024-04-03"), EndDate: date("2024-04-04")})
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, domain.ConflictTrainer, conflict.Kind)

	after := s.Snapshot()
	assert.Equal(t, before.Version, after.Version)
	assert.Len(t, after.Trainings, 1)
}

func TestScheduleTraining_CursoPorDefectoDesdePropuesta(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	trainer := mustUser(t, s, "t@x.test", entity.RoleTrainer)
	deal := paidDeal(t, s, "Acme", 10)
	p, _, err := s.CreateProposal(ctx, deal.ID, []entity.LineItem{{Name: "Python Advanced", Price: decimal.NewFromInt(10)}})
	require.NoError(t, err)
	_, _, err = s.AcceptProposal(ctx, p.ID)
	require.NoError(t, err)

	class, _, err := s.ScheduleTraining(ctx, deal.ID, store.ScheduleRequest{TrainerID: trainer.ID, Classroom: "4", StartDate: date("2024-06-01"), EndDate: date("2024-06-01")})
	require.NoError(t, err)
	assert.Equal(t, "Python Advanced", class.CourseName)
}

// Propiedad: tras cualquier secuencia de programaciones exitosas no hay dos clases
// que compartan aula o formador con intervalos solapados.
func TestScheduleTraining_PropiedadSinSolapes(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	trainers := make([]string, 3)
	for i := range trainers {
		trainers[i] = mustUser(t, s, fmt.Sprintf("t%d@x.test", i), entity.RoleTrainer).ID
	}
	base := date("2024-01-01")
	for i := 0; i < 60; i++ {
		deal := paidDeal(t, s, fmt.Sprintf("Cliente %d", i), 100)
		start := base.AddDate(0, 0, rng.Intn(60))
		_, _, err := s.ScheduleTraining(ctx, deal.ID, store.ScheduleRequest{
			TrainerID: trainers[rng.Intn(len(trainers))],
			Classroom: entity.Classrooms[rng.Intn(len(entity.Classrooms))],
			StartDate: start,
			EndDate:   start.AddDate(0, 0, rng.Intn(5)),
		})
		if err != nil {
			require.ErrorIs(t, err, domain.ErrSchedulingConflict)
		}
	}

	classes := s.Snapshot().Trainings
	require.NotEmpty(t, classes)
	for i := range classes {
		for j := i + 1; j < len(classes); j++ {
			a, b := classes[i], classes[j]
			if !scheduling.Overlaps(a.StartDate, a.EndDate, b.StartDate, b.EndDate) {
				continue
			}
			assert.NotEqual(t, a.Classroom, b.Classroom, "aula compartida con solape: %s / %s", a.ID, b.ID)
			assert.NotEqual(t, a.TrainerID, b.TrainerID, "formador compartido con solape: %s / %s", a.ID, b.ID)
		}
	}
}

func TestTrainingLifecycle_YAlumnos(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	t1 := mustUser(t, s, "t1@x.test", entity.RoleTrainer)
	t2 := mustUser(t, s, "t2@x.test", entity.RoleTrainer)
	d1 := paidDeal(t, s, "A", 10)
	d2 := paidDeal(t, s, "B", 10)

	c1, _, err := s.ScheduleTraining(ctx, d1.ID, store.ScheduleRequest{TrainerID: t1.ID, Classroom: "1", StartDate: date("2024-04-01"), EndDate: date("2024-04-02")})
	require.NoError(t, err)
	c2, _, err := s.ScheduleTraining(ctx, d2.ID, store.ScheduleRequest{TrainerID: t2.ID, Classroom: "1", StartDate: date("2024-05-01"), EndDate: date("2024-05-02")})
	require.NoError(t, err)

	_, _, err = s.CompleteTraining(ctx, c1.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "Confirmed no pasa directo a Completed")

	_, _, err = s.StartTraining(ctx, c1.ID)
	require.NoError(t, err)
	_, _, err = s.StartTraining(ctx, c2.ID)
	assert.ErrorIs(t, err, domain.ErrSchedulingConflict, "el aula ya tiene una clase en curso")

	learner, _, err := s.EnrollLearner(ctx, c1.ID, "Alumno")
	require.NoError(t, err)
	done, _, err := s.CompleteLearner(ctx, learner.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	again, _, err := s.CompleteLearner(ctx, learner.ID)
	require.NoError(t, err)
	assert.True(t, again.Completed)

	_, _, err = s.CompleteTraining(ctx, c1.ID)
	require.NoError(t, err)
	_, _, err = s.EnrollLearner(ctx, c1.ID, "Tarde")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, _, err = s.StartTraining(ctx, c2.ID)
	assert.NoError(t, err, "el aula quedó libre")
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestToggleUserActive_NoPropiaSesion(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	me := mustUser(t, s, "me@x.test", entity.RoleDirector)
	other := mustUser(t, s, "other@x.test", entity.RoleHR)

	_, _, err := s.ToggleUserActive(ctx, me.ID, me.ID)
	assert.ErrorIs(t, err, domain.ErrSelfDeactivationForbidden)

	u, _, err := s.ToggleUserActive(ctx, me.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, u.Active)
	u, _, err = s.ToggleUserActive(ctx, me.ID, other.ID)
	require.NoError(t, err)
	assert.True(t, u.Active)

	_, _, err = s.ToggleUserActive(ctx, me.ID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSwitchRole_SoloCambiaElRol(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	u := mustUser(t, s, "u@x.test", entity.RoleSalesRetail)
	lead, _, err := s.CreateLead(ctx, store.LeadInput{Name: "L", Type: entity.TypeRetail, AssignedTo: u.ID})
	require.NoError(t, err)
	before := s.Snapshot()

	got, after, err := s.SwitchRole(ctx, u.ID, entity.RoleFinance)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleFinance, got.Role)
	assert.Equal(t, before.Leads, after.Leads)
	assert.Equal(t, before.Deals, after.Deals)
	assert.Equal(t, lead.AssignedTo, after.Leads[0].AssignedTo)

	_, _, err = s.SwitchRole(ctx, u.ID, "Root")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateUser_EmailUnico(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	mustUser(t, s, "dup@x.test", entity.RoleHR)
	_, _, err := s.CreateUser(ctx, store.UserInput{Name: "Otro", Email: "DUP@x.test", Role: entity.RoleHR})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	other := mustUser(t, s, "b@x.test", entity.RoleHR)
	_, _, err = s.UpdateProfile(ctx, other.ID, "B", "dup@x.test")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	u, _, err := s.UpdateProfile(ctx, other.ID, "Bea", "bea@x.test")
	require.NoError(t, err)
	assert.Equal(t, "Bea", u.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshot, observador y escenario completo
// ──────────────────────────────────────────────────────────────────────────────

func TestSnapshot_EsUnaCopia(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	deal, _, err := s.CreateDeal(ctx, store.DealInput{Title: "D", Value: decimal.NewFromInt(1)})
	require.NoError(t, err)
	_, snap, err := s.CreateProposal(ctx, deal.ID, []entity.LineItem{{Name: "Original", Price: decimal.NewFromInt(1)}})
	require.NoError(t, err)

	snap.Proposals[0].Items[0].Name = "mutado"
	snap.Deals[0].Title = "mutado"

	fresh := s.Snapshot()
	assert.Equal(t, "Original", fresh.Proposals[0].Items[0].Name)
	assert.Equal(t, "D", fresh.Deals[0].Title)
}

type recordingObserver struct {
	ops  []string
	errs []error
}

func (o *recordingObserver) Observe(op string, err error, _ float64) {
	o.ops = append(o.ops, op)
	o.errs = append(o.errs, err)
}

func TestObserver_RecibeCadaOperacion(t *testing.T) {
	obs := &recordingObserver{}
	s := newStore(t, store.WithObserver(obs))
	ctx := context.Background()

	_, _, _ = s.ConvertLeadToDeal(ctx, "no-existe", decimal.NewFromInt(1))
	mustUser(t, s, "x@x.test", entity.RoleHR)

	require.Equal(t, []string{"ConvertLeadToDeal", "CreateUser"}, obs.ops)
	assert.ErrorIs(t, obs.errs[0], domain.ErrNotFound)
	assert.NoError(t, obs.errs[1])
}

func TestEscenarioCompleto_AcmeCorp(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	trainer := mustUser(t, s, "trainer@acme.test", entity.RoleTrainer)
	lead := mustLead(t, s, "Jane Doe", "Acme Corp")

	deal, _, err := s.ConvertLeadToDeal(ctx, lead.ID, decimal.NewFromInt(5000))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5000).Equal(deal.Value))
	assert.False(t, deal.IsPaid)
	assert.Equal(t, entity.DealStageOpen, deal.Stage)

	p, _, err := s.CreateProposal(ctx, deal.ID, []entity.LineItem{
		{Name: "Python Advanced", Price: decimal.NewFromInt(5000), Duration: "40 Hours"},
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5000).Equal(p.TotalValue()))

	p, _, err = s.AcceptProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProposalStatusAccepted, p.Status)

	inv, _, err := s.RaiseInvoice(ctx, deal.ID, decimal.NewFromInt(5000), time.Time{})
	require.NoError(t, err)
	inv, snap, err := s.RecordPayment(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, inv.Status)
	assert.True(t, dealIn(snap, deal.ID).IsPaid)

	class, _, err := s.ScheduleTraining(ctx, deal.ID, store.ScheduleRequest{
		TrainerID: trainer.ID, Classroom: "1", StartDate: date("2024-04-01"), EndDate: date("2024-04-05"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TrainingStatusConfirmed, class.Status)

	otherTrainer := mustUser(t, s, "t2@acme.test", entity.RoleTrainer)
	other := paidDeal(t, s, "Globex", 100)
	_, _, err = s.ScheduleTraining(ctx, other.ID, store.ScheduleRequest{
		TrainerID: otherTrainer.ID, Classroom: "1", StartDate: date("2024-04-03"), EndDate: date("2024-04-08"),
	})
	assert.ErrorIs(t, err, domain.ErrSchedulingConflict)
}

func TestSeedDemo(t *testing.T) {
	s := newStore(t)
	directorID, err := store.SeedDemo(context.Background(), s)
	require.NoError(t, err)

	snap := s.Snapshot()
	director, ok := snap.FindUser(directorID)
	require.True(t, ok)
	assert.Equal(t, entity.RoleDirector, director.Role)
	assert.Len(t, snap.Users, len(entity.Roles)+1)
	assert.Len(t, snap.Trainings, 2)
	assert.Len(t, snap.Invoices, 3)
	assert.Len(t, snap.Learners, 4)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", store.Outcome(nil))
	assert.Equal(t, "conflict_room", store.Outcome(fmt.Errorf("op: %w", &domain.SchedulingConflictError{ClassID: "c1", Kind: domain.ConflictRoom})))
	assert.Equal(t, "invalid_transition", store.Outcome(fmt.Errorf("op: %w", domain.ErrInvalidTransition)))
	assert.Equal(t, "forbidden", store.Outcome(domain.ErrSelfDeactivationForbidden))
	assert.Equal(t, "error", store.Outcome(errors.New("otro")))
}
