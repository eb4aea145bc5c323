package vehicle

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrebarceloschagas/sistema/pkg/db/models"
	"github.com/andrebarceloschagas/sistema/pkg/enums"
)

// Repository wires together vehicle persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindByID loads the vehicle without associations.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Create inserts a new vehicle row.
func (r *Repository) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Save persists the full vehicle row.
func (r *Repository) Save(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := r.db.WithContext(ctx).Save(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Delete removes a vehicle by ID. Dependent listings go with it.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("veiculo_id = ?", id).Delete(&models.Listing{}).Error; err != nil {
		return err
	}
	return tx.Where("id = ?", id).Delete(&models.Vehicle{}).Error
}

// ChassiExists reports whether another vehicle already uses the chassis.
func (r *Repository) ChassiExists(ctx context.Context, chassi string, excludeID uuid.UUID) (bool, error) {
	var count int64
	qb := r.db.WithContext(ctx).Model(&models.Vehicle{}).Where("chassi = ?", chassi)
	if excludeID != uuid.Nil {
		qb = qb.Where("id <> ?", excludeID)
	}
	if err := qb.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasListingOwnedBy reports whether the user owns a listing referencing the vehicle.
func (r *Repository) HasListingOwnedBy(ctx context.Context, userID, vehicleID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("veiculo_id = ? AND usuario_id = ?", vehicleID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns a filtered, ordered page of vehicles plus the total row count.
func (r *Repository) List(ctx context.Context, input ListInput) ([]models.Vehicle, int64, error) {
	qb := r.db.WithContext(ctx).Model(&models.Vehicle{})

	filter := input.Filters
	if filter.Marca != nil {
		qb = qb.Where("marca = ?", *filter.Marca)
	}
	if filter.AnoMin != nil {
		qb = qb.Where("ano >= ?", *filter.AnoMin)
	}
	if filter.AnoMax != nil {
		qb = qb.Where("ano <= ?", *filter.AnoMax)
	}
	if filter.Combustivel != nil {
		qb = qb.Where("combustivel = ?", *filter.Combustivel)
	}
	if search := strings.TrimSpace(filter.Query); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		if brands := enums.BrandsMatchingKeyword(search); len(brands) > 0 {
			qb = qb.Where("(LOWER(modelo) LIKE ? OR marca IN ?)", pattern, brands)
		} else {
			qb = qb.Where("LOWER(modelo) LIKE ?", pattern)
		}
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Vehicle
	err := qb.
		Order(orderClause(input.OrderBy)).
		Limit(input.Pagination.PageSize).
		Offset(input.Pagination.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
