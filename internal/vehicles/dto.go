package vehicle

import (
	"time"

	"github.com/google/uuid"

	"github.com/andrebarceloschagas/sistema/pkg/db/models"
	"github.com/andrebarceloschagas/sistema/pkg/pagination"
)

// VehicleDTO is the transport shape with denormalized display labels and
// derived age fields alongside the raw codes.
type VehicleDTO struct {
	ID                 uuid.UUID `json:"id"`
	Marca              int16     `json:"marca"`
	MarcaDisplay       string    `json:"marca_display"`
	Modelo             string    `json:"modelo"`
	Ano                int       `json:"ano"`
	Cor                int16     `json:"cor"`
	CorDisplay         string    `json:"cor_display"`
	Combustivel        int16     `json:"combustivel"`
	CombustivelDisplay string    `json:"combustivel_display"`
	Quilometragem      int       `json:"quilometragem"`
	Placa              *string   `json:"placa,omitempty"`
	Chassi             *string   `json:"chassi,omitempty"`
	Foto               *string   `json:"foto,omitempty"`
	Observacoes        *string   `json:"observacoes,omitempty"`
	TempoUso           int       `json:"tempo_uso"`
	Categoria          string    `json:"categoria"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// VehicleSummaryDTO is the compact shape embedded in listing payloads.
type VehicleSummaryDTO struct {
	ID           uuid.UUID `json:"id"`
	Marca        int16     `json:"marca"`
	MarcaDisplay string    `json:"marca_display"`
	Modelo       string    `json:"modelo"`
	Ano          int       `json:"ano"`
}

// ListResult is a page of vehicles plus pagination metadata.
type ListResult struct {
	Vehicles []VehicleDTO    `json:"veiculos"`
	Meta     pagination.Meta `json:"meta"`
}

// YearsOfUse computes vehicle age in whole model years.
func YearsOfUse(ano int, now time.Time) int {
	years := now.Year() - ano
	if years < 0 {
		return 0
	}
	return years
}

// AgeCategory buckets a vehicle by years of use.
func AgeCategory(years int) string {
	switch {
	case years == 0:
		return "Novo"
	case years <= 3:
		return "Seminovo"
	case years <= 10:
		return "Usado"
	default:
		return "Antigo"
	}
}

// NewVehicleDTO shapes a persisted vehicle for transport.
func NewVehicleDTO(v *models.Vehicle, now time.Time) *VehicleDTO {
	if v == nil {
		return nil
	}
	years := YearsOfUse(v.Ano, now)
	return &VehicleDTO{
		ID:                 v.ID,
		Marca:              int16(v.Marca),
		MarcaDisplay:       v.Marca.Label(),
		Modelo:             v.Modelo,
		Ano:                v.Ano,
		Cor:                int16(v.Cor),
		CorDisplay:         v.Cor.Label(),
		Combustivel:        int16(v.Combustivel),
		CombustivelDisplay: v.Combustivel.Label(),
		Quilometragem:      v.Quilometragem,
		Placa:              v.Placa,
		Chassi:             v.Chassi,
		Foto:               v.Foto,
		Observacoes:        v.Observacoes,
		TempoUso:           years,
		Categoria:          AgeCategory(years),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

// NewVehicleSummaryDTO shapes the compact vehicle embed.
func NewVehicleSummaryDTO(v *models.Vehicle) *VehicleSummaryDTO {
	if v == nil {
		return nil
	}
	return &VehicleSummaryDTO{
		ID:           v.ID,
		Marca:        int16(v.Marca),
		MarcaDisplay: v.Marca.Label(),
		Modelo:       v.Modelo,
		Ano:          v.Ano,
	}
}
