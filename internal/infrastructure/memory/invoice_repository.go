package memory

import (
	"github.com/jhoicas/TrainOps-api/internal/domain"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
	"github.com/jhoicas/TrainOps-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación en memoria de InvoiceRepository.
type InvoiceRepo struct {
	st *state
}

// Create persiste una factura. El número de factura es único.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	dup := r.st.invoices.find(func(i *entity.Invoice) bool {
		return i.InvoiceNumber == invoice.InvoiceNumber
	})
	if dup != nil {
		return domain.ErrDuplicate
	}
	return r.st.invoices.insert(invoice.ID, invoice)
}

// GetByID obtiene una factura por ID; nil si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.st.invoices.get(id), nil
}

// Update reemplaza la factura.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	return r.st.invoices.put(invoice.ID, invoice)
}

// List lista facturas en orden de emisión.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	return r.st.invoices.list(), nil
}

// NextNumber reserva el siguiente consecutivo. Si la transacción se descarta,
// el contador vuelve a su valor anterior junto con el resto del estado.
func (r *InvoiceRepo) NextNumber() (string, error) {
	r.st.invoiceSeq++
	return entity.FormatInvoiceNumber(r.st.invoiceSeq), nil
}
