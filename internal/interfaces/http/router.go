package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TrainOps-api/internal/application/store"
	"github.com/jhoicas/TrainOps-api/internal/application/views"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store            *store.Store
	Reads            *views.ReadTracker
	PDF              InvoicePDFGenerator
	Issuer           string // nombre del emisor en los PDF
	JWTSecret        string
	JWTIssuer        string
	JWTExpMinutes    int
	SimulatedLatency time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Reads == nil {
		deps.Reads = views.NewReadTracker()
	}

	api := app.Group("/api", SimulatedLatency(deps.SimulatedLatency))

	// Sesión (público)
	sessionHandler := NewSessionHandler(deps.Store, deps.JWTSecret, deps.JWTIssuer, deps.JWTExpMinutes)
	api.Post("/session", sessionHandler.Open)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Store))

	// Lecturas y proyecciones
	viewHandler := NewViewHandler(deps.Store, deps.Reads)
	protected.Get("/snapshot", viewHandler.Snapshot)
	protected.Get("/search", viewHandler.Search)
	protected.Get("/notifications", viewHandler.Notifications)
	protected.Post("/notifications/read", viewHandler.MarkAllRead)
	protected.Get("/navigation", viewHandler.Navigation)
	protected.Get("/dashboard", viewHandler.Dashboard)

	// Leads
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.Store)
	leads.Post("/", leadHandler.Create)
	leads.Put("/:id", leadHandler.UpdateContact)
	leads.Post("/:id/status", leadHandler.Advance)
	leads.Post("/:id/lost", leadHandler.MarkLost)
	leads.Post("/:id/convert", leadHandler.Convert)

	// Deals
	deals := protected.Group("/deals")
	dealHandler := NewDealHandler(deps.Store)
	deals.Post("/", dealHandler.Create)
	deals.Post("/:id/stage", dealHandler.AdvanceStage)
	deals.Post("/:id/proposals", dealHandler.CreateProposal)
	deals.Post("/:id/invoices", dealHandler.RaiseInvoice)
	deals.Post("/:id/training", dealHandler.ScheduleTraining)

	// Proposals
	proposals := protected.Group("/proposals")
	proposalHandler := NewProposalHandler(deps.Store)
	proposals.Put("/:id", proposalHandler.UpdateItems)
	proposals.Post("/:id/accept", proposalHandler.Accept)
	proposals.Post("/:id/reject", proposalHandler.Reject)

	// Invoices
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Store, deps.PDF, deps.Issuer)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/export.csv", invoiceHandler.ExportCSV)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Post("/:id/payment", invoiceHandler.RecordPayment)

	// Trainings y learners
	trainingHandler := NewTrainingHandler(deps.Store)
	trainings := protected.Group("/trainings")
	trainings.Post("/:id/start", trainingHandler.Start)
	trainings.Post("/:id/complete", trainingHandler.Complete)
	trainings.Post("/:id/learners", trainingHandler.Enroll)
	protected.Post("/learners/:id/complete", trainingHandler.CompleteLearner)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.Store)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.UpdateProfile)
	users.Post("/:id/toggle-active", userHandler.ToggleActive)
	users.Post("/:id/role", userHandler.SwitchRole)
}
