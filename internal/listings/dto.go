package listing

import (
	"time"

	"github.com/google/uuid"

	vehicle "github.com/andrebarceloschagas/sistema/internal/vehicles"
	"github.com/andrebarceloschagas/sistema/pkg/db/models"
	"github.com/andrebarceloschagas/sistema/pkg/pagination"
)

// ListingInput carries the mutable listing attributes submitted by callers.
// The price travels as a string so the decimal survives JSON intact.
type ListingInput struct {
	VeiculoID       uuid.UUID `json:"veiculo_id" validate:"required"`
	Descricao       string    `json:"descricao" validate:"required"`
	Preco           string    `json:"preco" validate:"required"`
	AceitaTroca     bool      `json:"aceita_troca"`
	TelefoneContato *string   `json:"telefone_contato,omitempty"`
	Status          *string   `json:"status,omitempty"`
	Destaque        *bool     `json:"destaque,omitempty"`
	DataExpiracao   *string   `json:"data_expiracao,omitempty"`
}

// OwnerDTO is the compact user embed on listing payloads.
type OwnerDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// ListingDTO is the transport shape with display labels and derived fields.
type ListingDTO struct {
	ID              uuid.UUID                  `json:"id"`
	Descricao       string                     `json:"descricao"`
	Preco           string                     `json:"preco"`
	AceitaTroca     bool                       `json:"aceita_troca"`
	TelefoneContato *string                    `json:"telefone_contato,omitempty"`
	Status          string                     `json:"status"`
	StatusDisplay   string                     `json:"status_display"`
	Destaque        bool                       `json:"destaque"`
	Visualizacoes   int                        `json:"visualizacoes"`
	DataExpiracao   *string                    `json:"data_expiracao,omitempty"`
	DiasAtivo       int                        `json:"dias_ativo"`
	Veiculo         *vehicle.VehicleDTO        `json:"veiculo,omitempty"`
	VeiculoResumo   *vehicle.VehicleSummaryDTO `json:"veiculo_info,omitempty"`
	Usuario         *OwnerDTO                  `json:"usuario_info,omitempty"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

// ListResult is a page of listings plus pagination metadata.
type ListResult struct {
	Listings []ListingDTO    `json:"anuncios"`
	Meta     pagination.Meta `json:"meta"`
}

// NewListingDTO shapes a persisted listing for transport. Detail payloads set
// detailed to include the full vehicle record; list rows embed the summary.
func NewListingDTO(l *models.Listing, now time.Time, detailed bool) *ListingDTO {
	if l == nil {
		return nil
	}
	dto := &ListingDTO{
		ID:              l.ID,
		Descricao:       l.Descricao,
		Preco:           l.Preco.StringFixed(2),
		AceitaTroca:     l.AceitaTroca,
		TelefoneContato: l.TelefoneContato,
		Status:          l.Status.String(),
		StatusDisplay:   l.Status.Label(),
		Destaque:        l.Destaque,
		Visualizacoes:   l.Visualizacoes,
		DiasAtivo:       l.DiasAtivo(now),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
	if l.DataExpiracao != nil {
		formatted := l.DataExpiracao.Format("2006-01-02")
		dto.DataExpiracao = &formatted
	}
	if detailed {
		dto.Veiculo = vehicle.NewVehicleDTO(l.Veiculo, now)
	} else {
		dto.VeiculoResumo = vehicle.NewVehicleSummaryDTO(l.Veiculo)
	}
	if l.Usuario != nil {
		dto.Usuario = &OwnerDTO{
			ID:        l.Usuario.ID,
			Email:     l.Usuario.Email,
			FirstName: l.Usuario.FirstName,
			LastName:  l.Usuario.LastName,
		}
	}
	return dto
}
