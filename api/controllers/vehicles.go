package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/andrebarceloschagas/sistema/api/middleware"
	"github.com/andrebarceloschagas/sistema/api/responses"
	"github.com/andrebarceloschagas/sistema/api/validators"
	vehicle "github.com/andrebarceloschagas/sistema/internal/vehicles"
	"github.com/andrebarceloschagas/sistema/pkg/config"
	"github.com/andrebarceloschagas/sistema/pkg/enums"
	pkgerrors "github.com/andrebarceloschagas/sistema/pkg/errors"
	"github.com/andrebarceloschagas/sistema/pkg/logger"
	"github.com/andrebarceloschagas/sistema/pkg/pagination"
)

// VehiclesList serves the filterable, paginated vehicle collection.
func VehiclesList(svc vehicle.Service, cfg config.ListingsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "vehicle service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := parseVehicleListInput(r, cfg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// VehiclesOptions serves the enum tables for select widgets.
func VehiclesOptions(svc vehicle.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "vehicle service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.Options())
	}
}

// VehiclesCreate registers a vehicle owned by the caller.
func VehiclesCreate(svc vehicle.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "vehicle service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body vehicle.VehicleInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actor := middleware.ActorFromContext(r.Context())
		created, err := svc.Create(r.Context(), actor, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// VehiclesDetail returns one vehicle with its derived display fields.
func VehiclesDetail(svc vehicle.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "vehicle service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := vehicleIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actor := middleware.ActorFromContext(r.Context())
		dto, err := svc.Get(r.Context(), actor, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// VehiclesUpdate replaces the mutable fields of a vehicle.
func VehiclesUpdate(svc vehicle.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "vehicle service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := vehicleIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body vehicle.VehicleInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actor := middleware.ActorFromContext(r.Context())
		updated, err := svc.Update(r.Context(), actor, id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, updated)
	}
}

// VehiclesDelete removes a vehicle and every listing that references it.
func VehiclesDelete(svc vehicle.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "vehicle service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := vehicleIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actor := middleware.ActorFromContext(r.Context())
		if err := svc.Delete(r.Context(), actor, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func vehicleIDParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "vehicleID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
	}
	return id, nil
}

func parseVehicleListInput(r *http.Request, cfg config.ListingsConfig) (vehicle.ListInput, error) {
	query := r.URL.Query()

	filters := vehicle.ListFilters{
		Query: validators.SanitizeString(query.Get("search"), maxSearchLen),
	}

	marca, err := validators.ParseQueryInt(r, "marca", 0, 0, 1<<15-1)
	if err != nil {
		return vehicle.ListInput{}, err
	}
	if marca > 0 {
		brand := enums.VehicleBrand(marca)
		if !brand.IsValid() {
			return vehicle.ListInput{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown vehicle brand").WithDetails(map[string]any{"field": "marca"})
		}
		filters.Marca = &brand
	}

	combustivel, err := validators.ParseQueryInt(r, "combustivel", 0, 0, 1<<15-1)
	if err != nil {
		return vehicle.ListInput{}, err
	}
	if combustivel > 0 {
		fuel := enums.FuelType(combustivel)
		if !fuel.IsValid() {
			return vehicle.ListInput{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown fuel type").WithDetails(map[string]any{"field": "combustivel"})
		}
		filters.Combustivel = &fuel
	}

	anoMin, err := validators.ParseQueryInt(r, "ano_min", 0, 0, 9999)
	if err != nil {
		return vehicle.ListInput{}, err
	}
	if anoMin > 0 {
		filters.AnoMin = &anoMin
	}

	anoMax, err := validators.ParseQueryInt(r, "ano_max", 0, 0, 9999)
	if err != nil {
		return vehicle.ListInput{}, err
	}
	if anoMax > 0 {
		filters.AnoMax = &anoMax
	}

	return vehicle.ListInput{
		Filters:    filters,
		OrderBy:    strings.TrimSpace(query.Get("order_by")),
		Pagination: pagination.FromRequest(r, cfg.DefaultPageSize, cfg.MaxPageSize),
	}, nil
}
