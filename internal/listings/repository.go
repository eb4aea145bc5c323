package listing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrebarceloschagas/sistema/pkg/db/models"
	"github.com/andrebarceloschagas/sistema/pkg/enums"
	"github.com/andrebarceloschagas/sistema/pkg/visibility"
)

// Repository wires together listing persistence helpers.
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

// ExpireOverdue flips every active listing whose expiration date has passed to
// expired. Runs before every list read; matching zero rows is fine.
func (r *Repository) ExpireOverdue(ctx context.Context, today time.Time) (int64, error) {
	cutoff := today.Format("2006-01-02")
	result := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("status = ? AND data_expiracao IS NOT NULL AND data_expiracao < ?", enums.ListingStatusActive, cutoff).
		UpdateColumn("status", enums.ListingStatusExpired)
	return result.RowsAffected, result.Error
}

// FindByID loads the listing with its vehicle and owner.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	var row models.Listing
	err := r.db.WithContext(ctx).
		Preload("Veiculo").
		Preload("Usuario").
		First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts a new listing row.
func (r *Repository) Create(ctx context.Context, row *models.Listing) (*models.Listing, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Save persists the full listing row.
func (r *Repository) Save(ctx context.Context, row *models.Listing) (*models.Listing, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes a listing by ID.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Listing{}).Error
}

// UpdateStatus persists only the status column.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.ListingStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}

// IncrementViews bumps the view counter by one. A single-column relative
// update keeps concurrent detail reads from clobbering each other's writes,
// though exact counts under race are not guaranteed.
func (r *Repository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ?", id).
		UpdateColumn("visualizacoes", gorm.Expr("visualizacoes + 1")).Error
}

// ListSimilar returns up to limit active listings advertising the same brand,
// excluding the listing itself, newest first.
func (r *Repository) ListSimilar(ctx context.Context, listingID uuid.UUID, marca enums.VehicleBrand, limit int) ([]models.Listing, error) {
	var rows []models.Listing
	err := r.db.WithContext(ctx).
		Preload("Veiculo").
		Joins("JOIN veiculos ON veiculos.id = anuncios.veiculo_id").
		Where("anuncios.id <> ?", listingID).
		Where("anuncios.status = ?", enums.ListingStatusActive).
		Where("veiculos.marca = ?", marca).
		Order("anuncios.created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// List returns a filtered, ordered page of listings plus the total row count.
// The actor shapes visibility: non-staff callers without the view-all grant
// see active listings and their own, and cannot peek at another user's set.
func (r *Repository) List(ctx context.Context, input ListInput, actor visibility.Actor) ([]models.Listing, int64, error) {
	privileged := actor.IsStaff || actor.HasCapability(visibility.CapViewAllListings)

	filter := input.Filters
	if filter.UsuarioID != nil && !privileged {
		if !actor.IsAuthenticated() || *filter.UsuarioID != actor.ID {
			return []models.Listing{}, 0, nil
		}
	}

	qb := r.db.WithContext(ctx).
		Model(&models.Listing{}).
		Joins("JOIN veiculos ON veiculos.id = anuncios.veiculo_id")

	explicitStatus := filter.Status != nil && filter.Status.IsValid()
	if explicitStatus {
		qb = qb.Where("anuncios.status = ?", *filter.Status)
	}

	// Non-staff visibility: active listings plus the caller's own, whatever
	// their status. The default-active filter applies only where that OR
	// clause is absent, otherwise it would swallow the owner branch.
	if !privileged {
		if actor.IsAuthenticated() {
			qb = qb.Where("(anuncios.status = ? OR anuncios.usuario_id = ?)", enums.ListingStatusActive, actor.ID)
		} else {
			qb = qb.Where("anuncios.status = ?", enums.ListingStatusActive)
		}
	} else if !explicitStatus {
		qb = qb.Where("anuncios.status = ?", enums.ListingStatusActive)
	}

	if filter.UsuarioID != nil {
		qb = qb.Where("anuncios.usuario_id = ?", *filter.UsuarioID)
	}
	if filter.PrecoMin != nil {
		qb = qb.Where("anuncios.preco >= ?", *filter.PrecoMin)
	}
	if filter.PrecoMax != nil {
		qb = qb.Where("anuncios.preco <= ?", *filter.PrecoMax)
	}
	if filter.Marca != nil {
		qb = qb.Where("veiculos.marca = ?", *filter.Marca)
	}
	if filter.Ano != nil {
		qb = qb.Where("veiculos.ano = ?", *filter.Ano)
	}
	if search := strings.TrimSpace(filter.Query); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		qb = qb.Where("(LOWER(anuncios.descricao) LIKE ? OR LOWER(veiculos.modelo) LIKE ?)", pattern, pattern)
	}

	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Listing
	err := qb.
		Preload("Veiculo").
		Preload("Usuario").
		Order(orderClause(input.OrderBy)).
		Limit(input.Pagination.PageSize).
		Offset(input.Pagination.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
