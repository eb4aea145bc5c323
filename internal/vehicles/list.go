package vehicle

import (
	"github.com/andrebarceloschagas/sistema/pkg/enums"
	"github.com/andrebarceloschagas/sistema/pkg/pagination"
)

// ListFilters describe the supported filter knobs for the vehicle collection.
type ListFilters struct {
	Query       string              `json:"search,omitempty"`
	Marca       *enums.VehicleBrand `json:"marca,omitempty"`
	AnoMin      *int                `json:"ano_min,omitempty"`
	AnoMax      *int                `json:"ano_max,omitempty"`
	Combustivel *enums.FuelType     `json:"combustivel,omitempty"`
}

// ListInput captures the inputs needed to paginate/filter vehicles.
type ListInput struct {
	Filters    ListFilters
	OrderBy    string
	Pagination pagination.Params
}

// orderings maps the accepted order_by values to SQL order clauses. Unknown
// values fall back to the default.
var orderings = map[string]string{
	"ano":            "ano ASC",
	"-ano":           "ano DESC",
	"quilometragem":  "quilometragem ASC",
	"-quilometragem": "quilometragem DESC",
	"marca":          "marca ASC",
	"-marca":         "marca DESC",
}

const defaultOrdering = "created_at DESC"

func orderClause(orderBy string) string {
	if clause, ok := orderings[orderBy]; ok {
		return clause
	}
	return defaultOrdering
}
