package sale

import (
	"time"

	"github.com/gestionpme/api-gestion/internal/customer"
	"github.com/gestionpme/api-gestion/internal/material"
)

// Sale belongs to exactly one Customer and references materials through the
// material_sale junction table. Membership is what matters on that
// relation, not order.
type Sale struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	Titre       string              `gorm:"not null" json:"titre"`
	Description string              `gorm:"not null" json:"description"`
	CustomerID  uint                `gorm:"not null" json:"customer_id"`
	Customer    customer.Customer   `gorm:"constraint:OnDelete:CASCADE" json:"customer"`
	Materials   []material.Material `gorm:"many2many:material_sale;constraint:OnDelete:CASCADE" json:"materials"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
