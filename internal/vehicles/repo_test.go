package vehicle

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/andrebarceloschagas/sistema/pkg/db/models"
	"github.com/andrebarceloschagas/sistema/pkg/enums"
	"github.com/andrebarceloschagas/sistema/pkg/pagination"
)

func setupVehicleTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	vehicles := `
CREATE TABLE IF NOT EXISTS veiculos (
  id TEXT PRIMARY KEY,
  marca INTEGER NOT NULL,
  modelo TEXT NOT NULL,
  ano INTEGER NOT NULL,
  cor INTEGER NOT NULL,
  combustivel INTEGER NOT NULL,
  quilometragem INTEGER NOT NULL DEFAULT 0,
  placa TEXT,
  chassi TEXT UNIQUE,
  foto TEXT,
  observacoes TEXT,
  created_by_id TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	listings := `
CREATE TABLE IF NOT EXISTS anuncios (
  id TEXT PRIMARY KEY,
  usuario_id TEXT NOT NULL,
  veiculo_id TEXT NOT NULL,
  descricao TEXT NOT NULL,
  preco TEXT NOT NULL,
  aceita_troca INTEGER NOT NULL DEFAULT 0,
  telefone_contato TEXT,
  status TEXT NOT NULL DEFAULT 'ativo',
  destaque INTEGER NOT NULL DEFAULT 0,
  visualizacoes INTEGER NOT NULL DEFAULT 0,
  data_expiracao DATE,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(vehicles).Error)
	require.NoError(t, db.Exec(listings).Error)
	return db
}

func mustCreateVehicleRow(t *testing.T, db *gorm.DB, marca enums.VehicleBrand, modelo string, ano, km int, chassi *string) *models.Vehicle {
	t.Helper()

	vehicle := &models.Vehicle{
		ID:            uuid.New(),
		Marca:         marca,
		Modelo:        modelo,
		Ano:           ano,
		Cor:           enums.ColorPreto,
		Combustivel:   enums.FuelFlex,
		Quilometragem: km,
		Chassi:        chassi,
		CreatedByID:   uuid.New(),
	}
	require.NoError(t, db.Create(vehicle).Error)
	return vehicle
}

func stringPtr(s string) *string {
	return &s
}

func TestRepositoryChassiExists(t *testing.T) {
	db := setupVehicleTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	existing := mustCreateVehicleRow(t, db, enums.BrandFiat, "Uno", 2015, 80000, stringPtr("9BWZZZ377VT004251"))

	taken, err := repo.ChassiExists(ctx, "9BWZZZ377VT004251", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ChassiExists(ctx, "9BWZZZ377VT004251", existing.ID)
	require.NoError(t, err)
	assert.False(t, taken, "owning row is excluded on update")

	taken, err = repo.ChassiExists(ctx, "9BWZZZ377VT999999", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestRepositoryHasListingOwnedBy(t *testing.T) {
	db := setupVehicleTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	vehicle := mustCreateVehicleRow(t, db, enums.BrandFiat, "Argo", 2020, 30000, nil)
	sellerID := uuid.New()

	listing := &models.Listing{
		ID:        uuid.New(),
		UsuarioID: sellerID,
		VeiculoID: vehicle.ID,
		Descricao: "Argo 2020",
		Preco:     decimal.RequireFromString("58000.00"),
		Status:    enums.ListingStatusActive,
	}
	require.NoError(t, db.Create(listing).Error)

	owns, err := repo.HasListingOwnedBy(ctx, sellerID, vehicle.ID)
	require.NoError(t, err)
	assert.True(t, owns)

	owns, err = repo.HasListingOwnedBy(ctx, uuid.New(), vehicle.ID)
	require.NoError(t, err)
	assert.False(t, owns)
}

func TestRepositoryDeleteCascadesListings(t *testing.T) {
	db := setupVehicleTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	vehicle := mustCreateVehicleRow(t, db, enums.BrandToyota, "Corolla", 2021, 15000, nil)
	listing := &models.Listing{
		ID:        uuid.New(),
		UsuarioID: uuid.New(),
		VeiculoID: vehicle.ID,
		Descricao: "Corolla 2021",
		Preco:     decimal.RequireFromString("120000.00"),
		Status:    enums.ListingStatusActive,
	}
	require.NoError(t, db.Create(listing).Error)

	require.NoError(t, repo.Delete(ctx, vehicle.ID))

	var vehicleCount, listingCount int64
	require.NoError(t, db.Model(&models.Vehicle{}).Count(&vehicleCount).Error)
	require.NoError(t, db.Model(&models.Listing{}).Where("veiculo_id = ?", vehicle.ID).Count(&listingCount).Error)
	assert.Zero(t, vehicleCount)
	assert.Zero(t, listingCount)
}

func TestRepositoryListFilters(t *testing.T) {
	db := setupVehicleTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	gol := mustCreateVehicleRow(t, db, enums.BrandVolkswagen, "Gol", 2016, 90000, nil)
	onix := mustCreateVehicleRow(t, db, enums.BrandChevrolet, "Onix", 2022, 20000, nil)
	corolla := mustCreateVehicleRow(t, db, enums.BrandToyota, "Corolla", 2024, 5000, nil)

	page := pagination.Params{Page: 1, PageSize: 10}

	t.Run("brand", func(t *testing.T) {
		marca := enums.BrandChevrolet
		rows, total, err := repo.List(ctx, ListInput{
			Filters:    ListFilters{Marca: &marca},
			Pagination: page,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, onix.ID, rows[0].ID)
	})

	t.Run("yearRange", func(t *testing.T) {
		min, max := 2020, 2023
		rows, total, err := repo.List(ctx, ListInput{
			Filters:    ListFilters{AnoMin: &min, AnoMax: &max},
			Pagination: page,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, onix.ID, rows[0].ID)
	})

	t.Run("keywordMatchesModel", func(t *testing.T) {
		rows, total, err := repo.List(ctx, ListInput{
			Filters:    ListFilters{Query: "corolla"},
			Pagination: page,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, corolla.ID, rows[0].ID)
	})

	t.Run("keywordMatchesBrandLabel", func(t *testing.T) {
		rows, total, err := repo.List(ctx, ListInput{
			Filters:    ListFilters{Query: "chevrolet"},
			Pagination: page,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, rows, 1)
		assert.Equal(t, onix.ID, rows[0].ID)
	})

	t.Run("orderByMileage", func(t *testing.T) {
		rows, total, err := repo.List(ctx, ListInput{
			OrderBy:    "quilometragem",
			Pagination: page,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, rows, 3)
		assert.Equal(t, corolla.ID, rows[0].ID)
		assert.Equal(t, gol.ID, rows[2].ID)
	})

	t.Run("orderByYearDescending", func(t *testing.T) {
		rows, _, err := repo.List(ctx, ListInput{
			OrderBy:    "-ano",
			Pagination: page,
		})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, corolla.ID, rows[0].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		rows, total, err := repo.List(ctx, ListInput{
			OrderBy:    "ano",
			Pagination: pagination.Params{Page: 2, PageSize: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, rows, 1)
		assert.Equal(t, corolla.ID, rows[0].ID)
	})
}
