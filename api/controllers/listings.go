package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/andrebarceloschagas/sistema/api/middleware"
	"github.com/andrebarceloschagas/sistema/api/responses"
	"github.com/andrebarceloschagas/sistema/api/validators"
	listing "github.com/andrebarceloschagas/sistema/internal/listings"
	"github.com/andrebarceloschagas/sistema/pkg/config"
	"github.com/andrebarceloschagas/sistema/pkg/enums"
	pkgerrors "github.com/andrebarceloschagas/sistema/pkg/errors"
	"github.com/andrebarceloschagas/sistema/pkg/logger"
	"github.com/andrebarceloschagas/sistema/pkg/pagination"
)

// maxSearchLen caps the free-text search parameter before it reaches the
// repository ILIKE clauses.
const maxSearchLen = 120

// listingDetailResponse embeds the similar-listing strip into detail payloads.
type listingDetailResponse struct {
	*listing.ListingDTO
	Similares []listing.ListingDTO `json:"anuncios_similares"`
}

// ListingsList serves the filterable, paginated listing collection.
func ListingsList(svc listing.Service, cfg config.ListingsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "listing service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := parseListingListInput(r, cfg)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actor := middleware.ActorFromContext(r.Context())
		result, err := svc.List(r.Context(), actor, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ListingsCreate publishes a listing for a vehicle the caller may advertise.
func ListingsCreate(svc listing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "listing service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body listing.ListingInput
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

// ListingsDetail returns a single listing with its similar-listing strip and
// counts the read as a view.
func ListingsDetail(svc listing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "listing service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := listingIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actor := middleware.ActorFromContext(r.Context())
		dto, err := svc.Get(r.Context(), actor, id, true)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		similar, err := svc.Similar(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if similar == nil {
			similar = []listing.ListingDTO{}
		}

		responses.WriteSuccess(w, listingDetailResponse{ListingDTO: dto, Similares: similar})
	}
}

// ListingsUpdate replaces the mutable fields of a listing.
func ListingsUpdate(svc listing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "listing service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := listingIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body listing.ListingInput
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

// ListingsDelete removes a listing owned by the caller.
func ListingsDelete(svc listing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "listing service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := listingIDParam(r)
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

// ListingsMarkSold flips a listing to vendido. The response keeps the legacy
// {status, message} body expected by existing clients, so it bypasses the
// standard envelope.
func ListingsMarkSold(svc listing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			writeLegacyStatus(w, http.StatusInternalServerError, "error", "listing service unavailable")
			return
		}

		id, err := listingIDParam(r)
		if err != nil {
			writeLegacyStatus(w, http.StatusNotFound, "error", "listing not found")
			return
		}

		actor := middleware.ActorFromContext(r.Context())
		if err := svc.MarkSold(r.Context(), actor, id); err != nil {
			status := http.StatusInternalServerError
			message := "could not mark listing as sold"
			switch typed := pkgerrors.As(err); typed.Code() {
			case pkgerrors.CodeUnauthorized:
				status = http.StatusUnauthorized
				message = typed.Message()
			case pkgerrors.CodeForbidden:
				status = http.StatusForbidden
				message = typed.Message()
			case pkgerrors.CodeNotFound:
				status = http.StatusNotFound
				message = typed.Message()
			default:
				ctx := logg.WithField(r.Context(), "listing_id", id.String())
				logg.Error(ctx, "mark sold failed", err)
			}
			writeLegacyStatus(w, status, "error", message)
			return
		}

		writeLegacyStatus(w, http.StatusOK, "success", "listing marked as sold")
	}
}

// ListingsReactivate flips a paused or expired listing back to ativo.
func ListingsReactivate(svc listing.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "listing service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := listingIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actor := middleware.ActorFromContext(r.Context())
		reactivated, err := svc.Reactivate(r.Context(), actor, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"reactivated": reactivated})
	}
}

func listingIDParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "listingID")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeNotFound, "listing not found")
	}
	return id, nil
}

func parseListingListInput(r *http.Request, cfg config.ListingsConfig) (listing.ListInput, error) {
	query := r.URL.Query()

	filters := listing.ListFilters{
		Query: validators.SanitizeString(query.Get("search"), maxSearchLen),
	}

	if raw := strings.TrimSpace(query.Get("status")); raw != "" {
		if status, err := enums.ParseListingStatus(raw); err == nil {
			filters.Status = &status
		}
	}
	if raw := strings.TrimSpace(query.Get("preco_min")); raw != "" {
		filters.PrecoMin = &raw
	}
	if raw := strings.TrimSpace(query.Get("preco_max")); raw != "" {
		filters.PrecoMax = &raw
	}
	if raw := strings.TrimSpace(query.Get("user_id")); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return listing.ListInput{}, pkgerrors.New(pkgerrors.CodeValidation, "user_id must be a valid UUID")
		}
		filters.UsuarioID = &userID
	}

	marca, err := validators.ParseQueryInt(r, "marca", 0, 0, 1<<15-1)
	if err != nil {
		return listing.ListInput{}, err
	}
	if marca > 0 {
		brand := enums.VehicleBrand(marca)
		if !brand.IsValid() {
			return listing.ListInput{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown vehicle brand").WithDetails(map[string]any{"field": "marca"})
		}
		filters.Marca = &brand
	}

	ano, err := validators.ParseQueryInt(r, "ano", 0, 0, 9999)
	if err != nil {
		return listing.ListInput{}, err
	}
	if ano > 0 {
		filters.Ano = &ano
	}

	return listing.ListInput{
		Filters:    filters,
		OrderBy:    strings.TrimSpace(query.Get("order_by")),
		Pagination: pagination.FromRequest(r, cfg.DefaultPageSize, cfg.MaxPageSize),
	}, nil
}

func writeLegacyStatus(w http.ResponseWriter, httpStatus int, status, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status, "message": message})
}
