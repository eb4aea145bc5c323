package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/andrebarceloschagas/sistema/pkg/config"
	"github.com/andrebarceloschagas/sistema/pkg/db/models"
	"github.com/andrebarceloschagas/sistema/pkg/enums"
	pkgerrors "github.com/andrebarceloschagas/sistema/pkg/errors"
	"github.com/andrebarceloschagas/sistema/pkg/pagination"
	"github.com/andrebarceloschagas/sistema/pkg/visibility"
)

// Service exposes listing management and lifecycle operations.
type Service interface {
	List(ctx context.Context, actor visibility.Actor, input ListInput) (*ListResult, error)
	Get(ctx context.Context, actor visibility.Actor, id uuid.UUID, countView bool) (*ListingDTO, error)
	Create(ctx context.Context, actor visibility.Actor, input ListingInput) (*ListingDTO, error)
	Update(ctx context.Context, actor visibility.Actor, id uuid.UUID, input ListingInput) (*ListingDTO, error)
	Delete(ctx context.Context, actor visibility.Actor, id uuid.UUID) error
	MarkSold(ctx context.Context, actor visibility.Actor, id uuid.UUID) error
	Reactivate(ctx context.Context, actor visibility.Actor, id uuid.UUID) (bool, error)
	Similar(ctx context.Context, id uuid.UUID) ([]ListingDTO, error)
	ExpireOverdue(ctx context.Context) (int64, error)
}

type vehicleLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	HasListingOwnedBy(ctx context.Context, userID, vehicleID uuid.UUID) (bool, error)
}

type service struct {
	repo        *Repository
	vehicleRepo vehicleLoader
	cfg         config.ListingsConfig
	now         func() time.Time
}

// NewService constructs a listing service instance.
func NewService(repo *Repository, vehicleRepo vehicleLoader, cfg config.ListingsConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("listing repository required")
	}
	if vehicleRepo == nil {
		return nil, fmt.Errorf("vehicle repository required")
	}
	if cfg.DefaultExpirationDays <= 0 {
		cfg.DefaultExpirationDays = 30
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = pagination.DefaultPageSize
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = pagination.MaxPageSize
	}
	if cfg.SimilarLimit <= 0 {
		cfg.SimilarLimit = 4
	}
	return &service{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		cfg:         cfg,
		now:         time.Now,
	}, nil
}

// ExpireOverdue runs the bulk lazy-expiration sweep and reports rows flipped.
func (s *service) ExpireOverdue(ctx context.Context) (int64, error) {
	expired, err := s.repo.ExpireOverdue(ctx, s.now())
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: expire overdue listings")
	}
	return expired, nil
}

// List expires overdue listings, then returns the filtered page the actor may see.
func (s *service) List(ctx context.Context, actor visibility.Actor, input ListInput) (*ListResult, error) {
	if _, err := s.ExpireOverdue(ctx); err != nil {
		return nil, err
	}

	input.Pagination = pagination.Normalize(input.Pagination, s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	rows, total, err := s.repo.List(ctx, input, actor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list listings")
	}

	now := s.now()
	dtos := make([]ListingDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *NewListingDTO(&rows[i], now, false))
	}
	return &ListResult{
		Listings: dtos,
		Meta:     pagination.NewMeta(input.Pagination, total),
	}, nil
}

// Get returns a single listing. Active listings are readable by anyone who is
// authenticated; everything else requires owner, staff, or the view-all grant.
// Detail reads optionally bump the view counter.
func (s *service) Get(ctx context.Context, actor visibility.Actor, id uuid.UUID, countView bool) (*ListingDTO, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !visibility.CanReadPublicListing(actor, row) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "access to this listing is not allowed")
	}

	if countView {
		if err := s.repo.IncrementViews(ctx, id); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: increment views")
		}
		row.Visualizacoes++
	}
	return NewListingDTO(row, s.now(), true), nil
}

// Create validates and persists a new listing owned by the actor.
func (s *service) Create(ctx context.Context, actor visibility.Actor, input ListingInput) (*ListingDTO, error) {
	if !actor.IsAuthenticated() {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}

	fields := ValidateInput(&input)
	expiration, expErr := s.parseExpiration(input.DataExpiracao)
	if expErr != nil {
		fields["data_expiracao"] = expErr.Error()
	}
	if len(fields) > 0 {
		return nil, pkgerrors.FieldErrors(fields)
	}

	veh, err := s.vehicleRepo.FindByID(ctx, input.VeiculoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load vehicle")
	}
	if !actor.IsStaff && veh.CreatedByID != actor.ID {
		owns, err := s.vehicleRepo.HasListingOwnedBy(ctx, actor.ID, veh.ID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check listing ownership")
		}
		if !owns {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "vehicle belongs to another user")
		}
	}

	preco, _ := decimal.NewFromString(strings.TrimSpace(input.Preco))
	status := enums.ListingStatusActive
	if input.Status != nil {
		status = enums.ListingStatus(*input.Status)
	}
	if expiration == nil {
		defaulted := s.defaultExpiration()
		expiration = &defaulted
	}

	row := &models.Listing{
		UsuarioID:       actor.ID,
		VeiculoID:       veh.ID,
		Descricao:       strings.TrimSpace(input.Descricao),
		Preco:           preco,
		AceitaTroca:     input.AceitaTroca,
		TelefoneContato: input.TelefoneContato,
		Status:          status,
		Destaque:        actor.IsStaff && input.Destaque != nil && *input.Destaque,
		DataExpiracao:   expiration,
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert listing")
	}
	return s.Get(ctx, actor, created.ID, false)
}

// Update validates and persists changes to an accessible listing.
func (s *service) Update(ctx context.Context, actor visibility.Actor, id uuid.UUID, input ListingInput) (*ListingDTO, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := ensureManageAccess(actor, row); err != nil {
		return nil, err
	}

	fields := ValidateInput(&input)
	expiration, expErr := s.parseExpiration(input.DataExpiracao)
	if expErr != nil {
		fields["data_expiracao"] = expErr.Error()
	}
	if len(fields) > 0 {
		return nil, pkgerrors.FieldErrors(fields)
	}

	preco, _ := decimal.NewFromString(strings.TrimSpace(input.Preco))
	row.Descricao = strings.TrimSpace(input.Descricao)
	row.Preco = preco
	row.AceitaTroca = input.AceitaTroca
	row.TelefoneContato = input.TelefoneContato
	if input.Status != nil {
		row.Status = enums.ListingStatus(*input.Status)
	}
	if actor.IsStaff && input.Destaque != nil {
		row.Destaque = *input.Destaque
	}
	if expiration != nil {
		row.DataExpiracao = expiration
	}

	if _, err := s.repo.Save(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update listing")
	}
	return s.Get(ctx, actor, row.ID, false)
}

// Delete removes an accessible listing.
func (s *service) Delete(ctx context.Context, actor visibility.Actor, id uuid.UUID) error {
	row, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := ensureManageAccess(actor, row); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete listing")
	}
	return nil
}

// MarkSold flips the listing to sold regardless of its prior status,
// persisting only the status column.
func (s *service) MarkSold(ctx context.Context, actor visibility.Actor, id uuid.UUID) error {
	row, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := ensureManageAccess(actor, row); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, enums.ListingStatusSold); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: mark listing sold")
	}
	return nil
}

// Reactivate returns the listing to active when it is paused or expired.
// The boolean reports whether the transition happened.
func (s *service) Reactivate(ctx context.Context, actor visibility.Actor, id uuid.UUID) (bool, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return false, err
	}
	if err := ensureManageAccess(actor, row); err != nil {
		return false, err
	}
	if !row.Status.CanReactivate() {
		return false, nil
	}
	if err := s.repo.UpdateStatus(ctx, id, enums.ListingStatusActive); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: reactivate listing")
	}
	return true, nil
}

// Similar returns active listings advertising the same brand.
func (s *service) Similar(ctx context.Context, id uuid.UUID) ([]ListingDTO, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.Veiculo == nil {
		return []ListingDTO{}, nil
	}
	rows, err := s.repo.ListSimilar(ctx, id, row.Veiculo.Marca, s.cfg.SimilarLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list similar listings")
	}
	now := s.now()
	dtos := make([]ListingDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *NewListingDTO(&rows[i], now, false))
	}
	return dtos, nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "listing not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load listing")
	}
	return row, nil
}

func (s *service) defaultExpiration() time.Time {
	return s.now().AddDate(0, 0, s.cfg.DefaultExpirationDays)
}

func (s *service) parseExpiration(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*raw))
	if err != nil {
		return nil, fmt.Errorf("data de expiração deve estar no formato AAAA-MM-DD")
	}
	return &parsed, nil
}

func ensureManageAccess(actor visibility.Actor, row *models.Listing) error {
	if !actor.IsAuthenticated() {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	if !visibility.CanAccessListing(actor, row) {
		return pkgerrors.New(pkgerrors.CodeForbidden, "access to this listing is not allowed")
	}
	return nil
}
