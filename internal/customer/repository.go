package customer

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	ListAll(db *gorm.DB) ([]Customer, error)
	FindByID(db *gorm.DB, id uint) (*Customer, error)
	FindBySurnom(db *gorm.DB, surnom string) (*Customer, error)
	Save(db *gorm.DB, c *Customer) error
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Customer, error) {
	var customers []Customer
	err := db.Preload("User").Find(&customers).Error
	return customers, err
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Customer, error) {
	var c Customer
	if err := db.Preload("User").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) FindBySurnom(db *gorm.DB, surnom string) (*Customer, error) {
	var c Customer
	if err := db.Where("surnom = ?", surnom).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes the customer row only; the User association is never written
// through this side.
func (r *repositoryImpl) Save(db *gorm.DB, c *Customer) error {
	return db.Omit(clause.Associations).Save(c).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Customer{}, id).Error
}
