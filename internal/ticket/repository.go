package ticket

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gestionpme/api-gestion/internal/sale"
)

type Repository interface {
	ListAll(db *gorm.DB) ([]Ticket, error)
	FindByID(db *gorm.DB, id uint) (*Ticket, error)
	FindByTitre(db *gorm.DB, titre string) (*Ticket, error)
	Create(db *gorm.DB, t *Ticket) error
	Save(db *gorm.DB, t *Ticket) error
	ReplaceSales(db *gorm.DB, t *Ticket, sales []sale.Sale) error
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Ticket, error) {
	var tickets []Ticket
	err := db.Preload("Sales").Preload("Sales.Customer").Find(&tickets).Error
	return tickets, err
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Ticket, error) {
	var t Ticket
	if err := db.Preload("Sales").Preload("Sales.Customer").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repositoryImpl) FindByTitre(db *gorm.DB, titre string) (*Ticket, error) {
	var t Ticket
	if err := db.Where("titre = ?", titre).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts the ticket and its junction rows without touching the
// referenced sale rows.
func (r *repositoryImpl) Create(db *gorm.DB, t *Ticket) error {
	return db.Omit("Sales.*").Create(t).Error
}

func (r *repositoryImpl) Save(db *gorm.DB, t *Ticket) error {
	return db.Omit(clause.Associations).Save(t).Error
}

// ReplaceSales makes the junction rows match exactly the given set.
func (r *repositoryImpl) ReplaceSales(db *gorm.DB, t *Ticket, sales []sale.Sale) error {
	if len(sales) == 0 {
		return db.Model(t).Association("Sales").Clear()
	}
	return db.Model(t).Association("Sales").Replace(&sales)
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Select(clause.Associations).Delete(&Ticket{ID: id}).Error
}
