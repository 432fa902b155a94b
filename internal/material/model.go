package material

import "time"

// Material is a standalone catalogue entry referenced by sales through the
// material_sale junction table.
type Material struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Designation string    `gorm:"not null" json:"designation"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
