package vehicle

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/andrebarceloschagas/sistema/pkg/enums"
)

const minYear = 1900

var plateRe = regexp.MustCompile(`^[A-Z]{3}-?[0-9][0-9A-Z][0-9]{2}$`)

// NormalizeChassis uppercases the chassis and strips spaces and hyphens.
func NormalizeChassis(raw string) string {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, " ", "")
	return strings.ReplaceAll(normalized, "-", "")
}

// ValidateChassis checks a normalized chassis: exactly 17 alphanumeric
// characters, never containing I, O, or Q.
func ValidateChassis(normalized string) error {
	if len(normalized) != 17 {
		return fmt.Errorf("chassi deve ter exatamente 17 caracteres")
	}
	for _, r := range normalized {
		switch {
		case r == 'I' || r == 'O' || r == 'Q':
			return fmt.Errorf("chassi não pode conter as letras I, O ou Q")
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z':
		default:
			return fmt.Errorf("chassi deve conter apenas letras e números")
		}
	}
	return nil
}

// ValidatePlate checks the Mercosul/legacy plate pattern.
func ValidatePlate(plate string) error {
	if !plateRe.MatchString(strings.ToUpper(strings.TrimSpace(plate))) {
		return fmt.Errorf("placa inválida, use o formato ABC-1234 ou ABC1D23")
	}
	return nil
}

// ValidateYear bounds the model year to 1900..currentYear+1.
func ValidateYear(year int, now time.Time) error {
	max := now.Year() + 1
	if year < minYear || year > max {
		return fmt.Errorf("ano deve estar entre %d e %d", minYear, max)
	}
	return nil
}

// ValidateInput applies every field rule and collects field-scoped messages.
// The returned chassis is the normalized form to persist.
func ValidateInput(input *VehicleInput, now time.Time) (map[string]string, *string) {
	fields := map[string]string{}

	if !input.Marca.IsValid() {
		fields["marca"] = "marca inválida"
	}
	if strings.TrimSpace(input.Modelo) == "" {
		fields["modelo"] = "modelo é obrigatório"
	}
	if err := ValidateYear(input.Ano, now); err != nil {
		fields["ano"] = err.Error()
	}
	if !input.Cor.IsValid() {
		fields["cor"] = "cor inválida"
	}
	if !input.Combustivel.IsValid() {
		fields["combustivel"] = "combustível inválido"
	}
	if input.Quilometragem < 0 {
		fields["quilometragem"] = "quilometragem não pode ser negativa"
	}
	if input.Placa != nil && strings.TrimSpace(*input.Placa) != "" {
		if err := ValidatePlate(*input.Placa); err != nil {
			fields["placa"] = err.Error()
		}
	}

	var chassi *string
	if input.Chassi != nil && strings.TrimSpace(*input.Chassi) != "" {
		normalized := NormalizeChassis(*input.Chassi)
		if err := ValidateChassis(normalized); err != nil {
			fields["chassi"] = err.Error()
		} else {
			chassi = &normalized
		}
	}

	return fields, chassi
}

// VehicleInput carries the mutable vehicle attributes submitted by callers.
type VehicleInput struct {
	Marca         enums.VehicleBrand `json:"marca" validate:"required"`
	Modelo        string             `json:"modelo" validate:"required,max=100"`
	Ano           int                `json:"ano" validate:"required"`
	Cor           enums.VehicleColor `json:"cor" validate:"required"`
	Combustivel   enums.FuelType     `json:"combustivel" validate:"required"`
	Quilometragem int                `json:"quilometragem"`
	Placa         *string            `json:"placa,omitempty"`
	Chassi        *string            `json:"chassi,omitempty"`
	Foto          *string            `json:"foto,omitempty"`
	Observacoes   *string            `json:"observacoes,omitempty"`
}
