package material

import "gorm.io/gorm"

type Repository interface {
	ListAll(db *gorm.DB) ([]Material, error)
	FindByID(db *gorm.DB, id uint) (*Material, error)
	FindByDesignation(db *gorm.DB, designation string) (*Material, error)
	Save(db *gorm.DB, m *Material) error
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Material, error) {
	var materials []Material
	err := db.Find(&materials).Error
	return materials, err
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Material, error) {
	var m Material
	if err := db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repositoryImpl) FindByDesignation(db *gorm.DB, designation string) (*Material, error) {
	var m Material
	if err := db.Where("designation = ?", designation).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repositoryImpl) Save(db *gorm.DB, m *Material) error {
	return db.Save(m).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Material{}, id).Error
}
