package sale

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/gestionpme/api-gestion/internal/apperr"
	"github.com/gestionpme/api-gestion/internal/customer"
	"github.com/gestionpme/api-gestion/internal/material"
	"github.com/gestionpme/api-gestion/internal/user"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&user.User{}, &customer.Customer{}, &material.Material{}, &Sale{}))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, surnom string) customer.Customer {
	t.Helper()
	u := user.User{Name: "Jean", Email: surnom + "@example.com", Password: "hash"}
	require.NoError(t, db.Create(&u).Error)
	c := customer.Customer{Surnom: surnom, UserID: u.ID}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedMaterial(t *testing.T, db *gorm.DB, designation string) material.Material {
	t.Helper()
	m := material.Material{Designation: designation}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func materialIDs(sl *Sale) []uint {
	out := make([]uint, 0, len(sl.Materials))
	for _, m := range sl.Materials {
		out = append(out, m.ID)
	}
	return out
}

func TestCreateSaleKeepsOnlyExistingMaterials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	c := seedCustomer(t, db, "durand")
	m := seedMaterial(t, db, "Perceuse")

	sl, err := svc.Create("Chantier A", "desc", c.ID, []uint{m.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, []uint{m.ID}, materialIDs(sl))
	assert.Equal(t, c.ID, sl.CustomerID)
	assert.Equal(t, "durand", sl.Customer.Surnom, "owning customer must be loaded")
}

func TestCreateSaleDuplicateTitre(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	c := seedCustomer(t, db, "durand")

	_, err := svc.Create("Chantier A", "", c.ID, nil)
	require.NoError(t, err)

	_, err = svc.Create("Chantier A", "", c.ID, nil)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCreateSaleMissingCustomer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	_, err := svc.Create("Chantier A", "", 999, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidReference)

	var count int64
	require.NoError(t, db.Model(&Sale{}).Count(&count).Error)
	assert.Zero(t, count, "nothing must be persisted")
}

func TestCreateSaleDoesNotAlterMaterials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	c := seedCustomer(t, db, "durand")
	m := seedMaterial(t, db, "Perceuse")

	_, err := svc.Create("Chantier A", "", c.ID, []uint{m.ID})
	require.NoError(t, err)

	var got material.Material
	require.NoError(t, db.First(&got, m.ID).Error)
	assert.Equal(t, "Perceuse", got.Designation)

	var count int64
	require.NoError(t, db.Model(&material.Material{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateSalePartialScalars(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	c := seedCustomer(t, db, "durand")

	sl, err := svc.Create("Chantier A", "desc", c.ID, nil)
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(&Sale{}).Where("id = ?", sl.ID).UpdateColumn("updated_at", past).Error)

	titre := "Chantier B"
	updated, err := svc.Update(sl.ID, &titre, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Chantier B", updated.Titre)
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, c.ID, updated.CustomerID)
	assert.True(t, updated.UpdatedAt.After(past), "updatedAt must be refreshed")
}

func TestUpdateSaleOmittedMaterialsClearsRelation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	c := seedCustomer(t, db, "durand")
	m := seedMaterial(t, db, "Perceuse")

	sl, err := svc.Create("Chantier A", "", c.ID, []uint{m.ID})
	require.NoError(t, err)
	require.Len(t, sl.Materials, 1)

	updated, err := svc.Update(sl.ID, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, updated.Materials)

	var junction int64
	require.NoError(t, db.Table("material_sale").Count(&junction).Error)
	assert.Zero(t, junction)
}

func TestUpdateSaleReplacesMaterials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	c := seedCustomer(t, db, "durand")
	m1 := seedMaterial(t, db, "Perceuse")
	m2 := seedMaterial(t, db, "Échelle")

	sl, err := svc.Create("Chantier A", "", c.ID, []uint{m1.ID})
	require.NoError(t, err)

	updated, err := svc.Update(sl.ID, nil, nil, nil, []uint{m2.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, []uint{m2.ID}, materialIDs(updated))
}

func TestUpdateSaleUnknownCustomerIgnored(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	c := seedCustomer(t, db, "durand")

	sl, err := svc.Create("Chantier A", "", c.ID, nil)
	require.NoError(t, err)

	ghost := uint(999)
	updated, err := svc.Update(sl.ID, nil, nil, &ghost, nil)
	require.NoError(t, err)
	assert.Equal(t, c.ID, updated.CustomerID)
}

func TestUpdateSaleNotFound(t *testing.T) {
	svc := NewService(setupTestDB(t))
	_, err := svc.Update(12345, nil, nil, nil, nil)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteSaleKeepsMaterials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	c := seedCustomer(t, db, "durand")
	m := seedMaterial(t, db, "Perceuse")

	sl, err := svc.Create("Chantier A", "", c.ID, []uint{m.ID})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(sl.ID))

	_, err = svc.GetByID(sl.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	var junction int64
	require.NoError(t, db.Table("material_sale").Count(&junction).Error)
	assert.Zero(t, junction, "junction rows must go with the sale")

	var got material.Material
	assert.NoError(t, db.First(&got, m.ID).Error, "the material itself stays")
}

func TestDeleteCustomerCascadesSales(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	c := seedCustomer(t, db, "durand")
	m := seedMaterial(t, db, "Perceuse")

	sl, err := svc.Create("Chantier A", "", c.ID, []uint{m.ID})
	require.NoError(t, err)

	require.NoError(t, customer.NewService(db).Delete(c.ID))

	_, err = svc.GetByID(sl.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound, "deleting a customer must delete its sales")

	var junction int64
	require.NoError(t, db.Table("material_sale").Count(&junction).Error)
	assert.Zero(t, junction, "junction rows must go with the cascaded sale")

	var got material.Material
	assert.NoError(t, db.First(&got, m.ID).Error, "the material itself stays")
}

func TestDeleteSaleNotFound(t *testing.T) {
	svc := NewService(setupTestDB(t))
	assert.ErrorIs(t, svc.Delete(12345), apperr.ErrNotFound)
}
