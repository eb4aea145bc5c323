package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	listing "github.com/andrebarceloschagas/sistema/internal/listings"
	"github.com/andrebarceloschagas/sistema/pkg/config"
	pkgerrors "github.com/andrebarceloschagas/sistema/pkg/errors"
	"github.com/andrebarceloschagas/sistema/pkg/logger"
	"github.com/andrebarceloschagas/sistema/pkg/visibility"
)

type stubListingService struct {
	detail     *listing.ListingDTO
	similar    []listing.ListingDTO
	markSoldFn func() error
	reactivate bool
	lastList   listing.ListInput
}

func (s *stubListingService) List(ctx context.Context, actor visibility.Actor, input listing.ListInput) (*listing.ListResult, error) {
	s.lastList = input
	return &listing.ListResult{}, nil
}

func (s *stubListingService) Get(ctx context.Context, actor visibility.Actor, id uuid.UUID, countView bool) (*listing.ListingDTO, error) {
	if s.detail == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "listing not found")
	}
	return s.detail, nil
}

func (s *stubListingService) Create(ctx context.Context, actor visibility.Actor, input listing.ListingInput) (*listing.ListingDTO, error) {
	return s.detail, nil
}

func (s *stubListingService) Update(ctx context.Context, actor visibility.Actor, id uuid.UUID, input listing.ListingInput) (*listing.ListingDTO, error) {
	return s.detail, nil
}

func (s *stubListingService) Delete(ctx context.Context, actor visibility.Actor, id uuid.UUID) error {
	return nil
}

func (s *stubListingService) MarkSold(ctx context.Context, actor visibility.Actor, id uuid.UUID) error {
	if s.markSoldFn != nil {
		return s.markSoldFn()
	}
	return nil
}

func (s *stubListingService) Reactivate(ctx context.Context, actor visibility.Actor, id uuid.UUID) (bool, error) {
	return s.reactivate, nil
}

func (s *stubListingService) Similar(ctx context.Context, id uuid.UUID) ([]listing.ListingDTO, error) {
	return s.similar, nil
}

func (s *stubListingService) ExpireOverdue(ctx context.Context) (int64, error) {
	return 0, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test-controllers", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func requestWithListingID(method, target string, id uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("listingID", id.String())
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestListingsDetailEmbedsSimilar(t *testing.T) {
	id := uuid.New()
	similarID := uuid.New()
	svc := &stubListingService{
		detail:  &listing.ListingDTO{ID: id},
		similar: []listing.ListingDTO{{ID: similarID}},
	}

	resp := httptest.NewRecorder()
	ListingsDetail(svc, testLogger())(resp, requestWithListingID(http.MethodGet, "/api/v1/anuncios/"+id.String(), id))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data struct {
			ID       uuid.UUID `json:"id"`
			Similars []struct {
				ID uuid.UUID `json:"id"`
			} `json:"anuncios_similares"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if envelope.Data.ID != id {
		t.Fatalf("expected listing %s got %s", id, envelope.Data.ID)
	}
	if len(envelope.Data.Similars) != 1 || envelope.Data.Similars[0].ID != similarID {
		t.Fatalf("expected one similar listing, got %+v", envelope.Data.Similars)
	}
}

func TestListingsDetailEmptySimilarStripIsArray(t *testing.T) {
	id := uuid.New()
	svc := &stubListingService{detail: &listing.ListingDTO{ID: id}}

	resp := httptest.NewRecorder()
	ListingsDetail(svc, testLogger())(resp, requestWithListingID(http.MethodGet, "/api/v1/anuncios/"+id.String(), id))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if string(envelope.Data["anuncios_similares"]) != "[]" {
		t.Fatalf("expected empty array got %s", envelope.Data["anuncios_similares"])
	}
}

func TestListingsListSearchParam(t *testing.T) {
	cfg := config.ListingsConfig{DefaultPageSize: 10, MaxPageSize: 50}

	t.Run("trimsWhitespace", func(t *testing.T) {
		svc := &stubListingService{}
		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/anuncios?search="+url.QueryEscape("  moto honda  "), nil)
		ListingsList(svc, cfg, testLogger())(resp, req)

		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 got %d", resp.Code)
		}
		if svc.lastList.Filters.Query != "moto honda" {
			t.Fatalf("expected trimmed keyword, got %q", svc.lastList.Filters.Query)
		}
	})

	t.Run("truncatesByRune", func(t *testing.T) {
		svc := &stubListingService{}
		resp := httptest.NewRecorder()
		long := strings.Repeat("ã", maxSearchLen+30)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/anuncios?search="+url.QueryEscape(long), nil)
		ListingsList(svc, cfg, testLogger())(resp, req)

		got := svc.lastList.Filters.Query
		if utf8.RuneCountInString(got) != maxSearchLen {
			t.Fatalf("expected %d runes, got %d", maxSearchLen, utf8.RuneCountInString(got))
		}
		if !utf8.ValidString(got) {
			t.Fatalf("truncated keyword is not valid UTF-8: %q", got)
		}
	})
}

func TestListingsMarkSoldLegacyBody(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantState  string
	}{
		{name: "success", err: nil, wantStatus: http.StatusOK, wantState: "success"},
		{name: "forbidden", err: pkgerrors.New(pkgerrors.CodeForbidden, "access to this listing is not allowed"), wantStatus: http.StatusForbidden, wantState: "error"},
		{name: "unauthorized", err: pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"), wantStatus: http.StatusUnauthorized, wantState: "error"},
		{name: "notFound", err: pkgerrors.New(pkgerrors.CodeNotFound, "listing not found"), wantStatus: http.StatusNotFound, wantState: "error"},
		{name: "internal", err: pkgerrors.New(pkgerrors.CodeDependency, "db down"), wantStatus: http.StatusInternalServerError, wantState: "error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id := uuid.New()
			svc := &stubListingService{markSoldFn: func() error { return tc.err }}

			resp := httptest.NewRecorder()
			ListingsMarkSold(svc, testLogger())(resp, requestWithListingID(http.MethodPost, "/api/v1/anuncios/"+id.String()+"/marcar-vendido", id))

			if resp.Code != tc.wantStatus {
				t.Fatalf("expected %d got %d", tc.wantStatus, resp.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["status"] != tc.wantState {
				t.Fatalf("expected status %q got %q", tc.wantState, body["status"])
			}
			if body["message"] == "" {
				t.Fatal("expected a message in the legacy body")
			}
		})
	}
}

func TestListingsReactivateBody(t *testing.T) {
	id := uuid.New()
	svc := &stubListingService{reactivate: true}

	resp := httptest.NewRecorder()
	ListingsReactivate(svc, testLogger())(resp, requestWithListingID(http.MethodPost, "/api/v1/anuncios/"+id.String()+"/reativar", id))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data map[string]bool `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !envelope.Data["reactivated"] {
		t.Fatalf("expected reactivated true got %v", envelope.Data)
	}
}
