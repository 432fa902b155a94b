package ticket

import (
	"time"

	"github.com/gestionpme/api-gestion/internal/sale"
)

// Ticket references sales through the sale_ticket junction table. Deleting
// a ticket removes the junction rows only.
type Ticket struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Titre       string      `gorm:"not null" json:"titre"`
	Description string      `gorm:"not null" json:"description"`
	Sales       []sale.Sale `gorm:"many2many:sale_ticket;constraint:OnDelete:CASCADE" json:"sales"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
