package vehicle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrebarceloschagas/sistema/pkg/db"
	"github.com/andrebarceloschagas/sistema/pkg/db/models"
	"github.com/andrebarceloschagas/sistema/pkg/enums"
	pkgerrors "github.com/andrebarceloschagas/sistema/pkg/errors"
	"github.com/andrebarceloschagas/sistema/pkg/pagination"
	"github.com/andrebarceloschagas/sistema/pkg/visibility"
)

// Service exposes vehicle management operations.
type Service interface {
	Create(ctx context.Context, actor visibility.Actor, input VehicleInput) (*VehicleDTO, error)
	Update(ctx context.Context, actor visibility.Actor, id uuid.UUID, input VehicleInput) (*VehicleDTO, error)
	Delete(ctx context.Context, actor visibility.Actor, id uuid.UUID) error
	Get(ctx context.Context, actor visibility.Actor, id uuid.UUID) (*VehicleDTO, error)
	List(ctx context.Context, input ListInput) (*ListResult, error)
	Options() OptionsDTO
}

// OptionsDTO carries the enum tables consumed by select widgets.
type OptionsDTO struct {
	Marcas       []enums.Option `json:"marcas"`
	Cores        []enums.Option `json:"cores"`
	Combustiveis []enums.Option `json:"combustiveis"`
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	now      func() time.Time
}

// NewService constructs a vehicle service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("vehicle repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{
		repo:     repo,
		dbClient: dbClient,
		now:      time.Now,
	}, nil
}

// Create validates and persists a new vehicle owned by the actor.
func (s *service) Create(ctx context.Context, actor visibility.Actor, input VehicleInput) (*VehicleDTO, error) {
	if !actor.IsAuthenticated() {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}

	fields, chassi := ValidateInput(&input, s.now())
	if chassi != nil {
		taken, err := s.repo.ChassiExists(ctx, *chassi, uuid.Nil)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check chassi")
		}
		if taken {
			fields["chassi"] = "chassi já cadastrado"
		}
	}
	if len(fields) > 0 {
		return nil, pkgerrors.FieldErrors(fields)
	}

	vehicle := &models.Vehicle{
		Marca:         input.Marca,
		Modelo:        input.Modelo,
		Ano:           input.Ano,
		Cor:           input.Cor,
		Combustivel:   input.Combustivel,
		Quilometragem: input.Quilometragem,
		Placa:         input.Placa,
		Chassi:        chassi,
		Foto:          input.Foto,
		Observacoes:   input.Observacoes,
		CreatedByID:   actor.ID,
	}
	created, err := s.repo.Create(ctx, vehicle)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert vehicle")
	}
	return NewVehicleDTO(created, s.now()), nil
}

// Update validates and persists changes to an accessible vehicle.
func (s *service) Update(ctx context.Context, actor visibility.Actor, id uuid.UUID, input VehicleInput) (*VehicleDTO, error) {
	vehicle, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureAccess(ctx, actor, vehicle); err != nil {
		return nil, err
	}

	fields, chassi := ValidateInput(&input, s.now())
	if chassi != nil {
		taken, err := s.repo.ChassiExists(ctx, *chassi, vehicle.ID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check chassi")
		}
		if taken {
			fields["chassi"] = "chassi já cadastrado"
		}
	}
	if len(fields) > 0 {
		return nil, pkgerrors.FieldErrors(fields)
	}

	vehicle.Marca = input.Marca
	vehicle.Modelo = input.Modelo
	vehicle.Ano = input.Ano
	vehicle.Cor = input.Cor
	vehicle.Combustivel = input.Combustivel
	vehicle.Quilometragem = input.Quilometragem
	vehicle.Placa = input.Placa
	vehicle.Chassi = chassi
	vehicle.Foto = input.Foto
	vehicle.Observacoes = input.Observacoes

	updated, err := s.repo.Save(ctx, vehicle)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update vehicle")
	}
	return NewVehicleDTO(updated, s.now()), nil
}

// Delete removes an accessible vehicle and its dependent listings.
func (s *service) Delete(ctx context.Context, actor visibility.Actor, id uuid.UUID) error {
	vehicle, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ensureAccess(ctx, actor, vehicle); err != nil {
		return err
	}
	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Delete(ctx, id)
	}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete vehicle")
	}
	return nil
}

// Get returns the detailed record when the actor may see it.
func (s *service) Get(ctx context.Context, actor visibility.Actor, id uuid.UUID) (*VehicleDTO, error) {
	vehicle, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureAccess(ctx, actor, vehicle); err != nil {
		return nil, err
	}
	return NewVehicleDTO(vehicle, s.now()), nil
}

// List returns a filtered page of vehicles.
func (s *service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	input.Pagination = pagination.Normalize(input.Pagination, pagination.DefaultPageSize, pagination.MaxPageSize)
	rows, total, err := s.repo.List(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list vehicles")
	}

	now := s.now()
	dtos := make([]VehicleDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *NewVehicleDTO(&rows[i], now))
	}
	return &ListResult{
		Vehicles: dtos,
		Meta:     pagination.NewMeta(input.Pagination, total),
	}, nil
}

// Options exposes the closed brand/color/fuel tables.
func (s *service) Options() OptionsDTO {
	return OptionsDTO{
		Marcas:       enums.BrandOptions(),
		Cores:        enums.ColorOptions(),
		Combustiveis: enums.FuelOptions(),
	}
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load vehicle")
	}
	return vehicle, nil
}

func (s *service) ensureAccess(ctx context.Context, actor visibility.Actor, vehicle *models.Vehicle) error {
	ownsListing := false
	if actor.IsAuthenticated() && actor.ID != vehicle.CreatedByID {
		var err error
		ownsListing, err = s.repo.HasListingOwnedBy(ctx, actor.ID, vehicle.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check listing ownership")
		}
	}
	if !visibility.CanAccessVehicle(actor, vehicle, ownsListing) {
		return pkgerrors.New(pkgerrors.CodeForbidden, "access to this vehicle is not allowed")
	}
	return nil
}
