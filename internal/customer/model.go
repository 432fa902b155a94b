package customer

import (
	"time"

	"github.com/gestionpme/api-gestion/internal/user"
)

// Customer belongs to exactly one User; deleting the user deletes its
// customers through the cascade constraint. Surnom uniqueness is a
// service-level rule only, there is no storage constraint on it.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Surnom    string    `gorm:"not null" json:"surnom"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      user.User `gorm:"constraint:OnDelete:CASCADE" json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
