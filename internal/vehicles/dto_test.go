package vehicle

import (
	"testing"
	"time"

	"github.com/andrebarceloschagas/sistema/pkg/db/models"
	"github.com/andrebarceloschagas/sistema/pkg/enums"
)

func TestYearsOfUse(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	if got := YearsOfUse(2026, now); got != 0 {
		t.Fatalf("expected 0 years, got %d", got)
	}
	if got := YearsOfUse(2020, now); got != 6 {
		t.Fatalf("expected 6 years, got %d", got)
	}
	if got := YearsOfUse(2027, now); got != 0 {
		t.Fatalf("expected next model year to clamp at 0, got %d", got)
	}
}

func TestAgeCategory(t *testing.T) {
	cases := map[int]string{
		0:  "Novo",
		1:  "Seminovo",
		3:  "Seminovo",
		4:  "Usado",
		10: "Usado",
		11: "Antigo",
		30: "Antigo",
	}
	for years, want := range cases {
		if got := AgeCategory(years); got != want {
			t.Fatalf("AgeCategory(%d) = %q, want %q", years, got, want)
		}
	}
}

func TestNewVehicleDTO(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	vehicle := &models.Vehicle{
		Marca:       enums.BrandChevrolet,
		Modelo:      "Onix",
		Ano:         2024,
		Cor:         enums.ColorBranco,
		Combustivel: enums.FuelFlex,
	}

	dto := NewVehicleDTO(vehicle, now)
	if dto.MarcaDisplay != "CHEVROLET - GM" {
		t.Fatalf("expected brand label, got %q", dto.MarcaDisplay)
	}
	if dto.CorDisplay != "BRANCO" {
		t.Fatalf("expected color label, got %q", dto.CorDisplay)
	}
	if dto.CombustivelDisplay != "FLEX" {
		t.Fatalf("expected fuel label, got %q", dto.CombustivelDisplay)
	}
	if dto.TempoUso != 2 {
		t.Fatalf("expected 2 years of use, got %d", dto.TempoUso)
	}
	if dto.Categoria != "Seminovo" {
		t.Fatalf("expected Seminovo, got %q", dto.Categoria)
	}
	if NewVehicleDTO(nil, now) != nil {
		t.Fatal("expected nil DTO for nil vehicle")
	}
}
