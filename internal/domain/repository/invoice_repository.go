package repository

import "github.com/jhoicas/TrainOps-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	List() ([]*entity.Invoice, error)
	// NextNumber reserva el siguiente consecutivo (monótono, nunca se reutiliza).
	NextNumber() (string, error)
}
