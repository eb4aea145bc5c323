package listing

import (
	"github.com/google/uuid"

	"github.com/andrebarceloschagas/sistema/pkg/enums"
	"github.com/andrebarceloschagas/sistema/pkg/pagination"
)

// ListFilters describe the supported filter knobs for the listing collection.
// Keyword matches the listing description OR the vehicle model; every other
// filter narrows with AND.
type ListFilters struct {
	Query     string               `json:"search,omitempty"`
	Status    *enums.ListingStatus `json:"status,omitempty"`
	PrecoMin  *string              `json:"preco_min,omitempty"`
	PrecoMax  *string              `json:"preco_max,omitempty"`
	Marca     *enums.VehicleBrand  `json:"marca,omitempty"`
	Ano       *int                 `json:"ano,omitempty"`
	UsuarioID *uuid.UUID           `json:"user_id,omitempty"`
}

// ListInput captures the inputs needed to paginate/filter listings.
type ListInput struct {
	Filters    ListFilters
	OrderBy    string
	Pagination pagination.Params
}

// orderings maps accepted order_by values to SQL order clauses over the
// anuncios table. Unknown values fall back to the default.
var orderings = map[string]string{
	"preco":          "anuncios.preco ASC",
	"-preco":         "anuncios.preco DESC",
	"created_at":     "anuncios.created_at ASC",
	"-created_at":    "anuncios.created_at DESC",
	"visualizacoes":  "anuncios.visualizacoes ASC",
	"-visualizacoes": "anuncios.visualizacoes DESC",
}

const defaultOrdering = "anuncios.destaque DESC, anuncios.created_at DESC"

func orderClause(orderBy string) string {
	if clause, ok := orderings[orderBy]; ok {
		return clause
	}
	return defaultOrdering
}
