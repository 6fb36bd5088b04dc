package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// SeedDemo carga un conjunto de datos de demostración usando las operaciones públicas,
// de modo que todas las invariantes se cumplen igual que en uso normal.
// Devuelve el ID del usuario Director para abrir una sesión.
func SeedDemo(ctx context.Context, s *Store) (string, error) {
	users := map[string]string{}
	for _, u := range []UserInput{
		{Name: "Laura Méndez", Email: "director@trainops.dev", Role: entity.RoleDirector},
		{Name: "Carlos Ruiz", Email: "retail@trainops.dev", Role: entity.RoleSalesRetail},
		{Name: "Ana Torres", Email: "corporate@trainops.dev", Role: entity.RoleSalesCorporate},
		{Name: "Miguel Sanz", Email: "training@trainops.dev", Role: entity.RoleTrainingManager},
		{Name: "Lucía Gómez", Email: "ops@trainops.dev", Role: entity.RoleOperationsManager},
		{Name: "Pedro Díaz", Email: "trainer1@trainops.dev", Role: entity.RoleTrainer},
		{Name: "Sofía León", Email: "trainer2@trainops.dev", Role: entity.RoleTrainer},
		{Name: "Javier Ortiz", Email: "finance@trainops.dev", Role: entity.RoleFinance},
		{Name: "Elena Vidal", Email: "hr@trainops.dev", Role: entity.RoleHR},
	} {
		created, _, err := s.CreateUser(ctx, u)
		if err != nil {
			return "", fmt.Errorf("seed: usuario %s: %w", u.Email, err)
		}
		users[u.Email] = created.ID
	}

	type demoLead struct {
		in    LeadInput
		value int64
		paid  bool
		room  string
		start string
		days  int
	}
	leads := []demoLead{
		{in: LeadInput{Name: "Jane Doe", Company: "Acme Corp", Email: "jane@acme.test", Source: "Website", Type: entity.TypeCorporate, AssignedTo: users["corporate@trainops.dev"]},
			value: 5000, paid: true, room: "1", start: "2024-04-01", days: 4},
		{in: LeadInput{Name: "John Smith", Company: "Globex", Email: "john@globex.test", Source: "Referral", Type: entity.TypeCorporate, AssignedTo: users["corporate@trainops.dev"]},
			value: 12000, paid: true, room: "2", start: "2024-04-08", days: 9},
		{in: LeadInput{Name: "María López", Email: "maria@mail.test", Source: "Instagram", Type: entity.TypeRetail, AssignedTo: users["retail@trainops.dev"]},
			value: 800},
		{in: LeadInput{Name: "Tom Baker", Company: "Initech", Email: "tom@initech.test", Source: "LinkedIn", Type: entity.TypeCorporate, AssignedTo: users["corporate@trainops.dev"]}},
		{in: LeadInput{Name: "Rosa Martín", Email: "rosa@mail.test", Source: "Walk-in", Type: entity.TypeRetail, AssignedTo: users["retail@trainops.dev"]}},
	}
	trainers := []string{users["trainer1@trainops.dev"], users["trainer2@trainops.dev"]}

	for i, dl := range leads {
		lead, _, err := s.CreateLead(ctx, dl.in)
		if err != nil {
			return "", fmt.Errorf("seed: lead %s: %w", dl.in.Name, err)
		}
		if dl.value == 0 {
			continue
		}
		value := decimal.NewFromInt(dl.value)
		deal, _, err := s.ConvertLeadToDeal(ctx, lead.ID, value)
		if err != nil {
			return "", fmt.Errorf("seed: convertir %s: %w", dl.in.Name, err)
		}
		p, _, err := s.CreateProposal(ctx, deal.ID, []entity.LineItem{
			{Name: "Python Advanced", Price: value, Duration: "40 Hours"},
		})
		if err != nil {
			return "", fmt.Errorf("seed: propuesta: %w", err)
		}
		if _, _, err := s.AcceptProposal(ctx, p.ID); err != nil {
			return "", fmt.Errorf("seed: aceptar propuesta: %w", err)
		}
		inv, _, err := s.RaiseInvoice(ctx, deal.ID, value, time.Time{})
		if err != nil {
			return "", fmt.Errorf("seed: factura: %w", err)
		}
		if !dl.paid {
			continue
		}
		if _, _, err := s.RecordPayment(ctx, inv.ID); err != nil {
			return "", fmt.Errorf("seed: pago: %w", err)
		}
		start, _ := time.Parse("2006-01-02", dl.start)
		class, _, err := s.ScheduleTraining(ctx, deal.ID, ScheduleRequest{
			TrainerID: trainers[i%len(trainers)],
			Classroom: dl.room,
			Hours:     40,
			StartDate: start,
			EndDate:   start.AddDate(0, 0, dl.days),
		})
		if err != nil {
			return "", fmt.Errorf("seed: clase: %w", err)
		}
		for _, name := range []string{"Alumno A", "Alumno B"} {
			if _, _, err := s.EnrollLearner(ctx, class.ID, name); err != nil {
				return "", fmt.Errorf("seed: alumno: %w", err)
			}
		}
	}
	return users["director@trainops.dev"], nil
}
