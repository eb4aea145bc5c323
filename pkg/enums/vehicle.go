package enums

import (
	"fmt"
	"strings"
)

// VehicleBrand is the numeric brand code persisted with each vehicle.
type VehicleBrand int16

const (
	BrandAudi       VehicleBrand = 1
	BrandBMW        VehicleBrand = 2
	BrandChevrolet  VehicleBrand = 3
	BrandFerrari    VehicleBrand = 4
	BrandFiat       VehicleBrand = 5
	BrandFord       VehicleBrand = 6
	BrandHonda      VehicleBrand = 7
	BrandHyundai    VehicleBrand = 8
	BrandVolkswagen VehicleBrand = 9
	BrandJaguar     VehicleBrand = 10
	BrandJeep       VehicleBrand = 11
	BrandKia        VehicleBrand = 12
	BrandMercedes   VehicleBrand = 13
	BrandNissan     VehicleBrand = 14
	BrandPeugeot    VehicleBrand = 15
	BrandRenault    VehicleBrand = 16
	BrandSuzuki     VehicleBrand = 17
	BrandToyota     VehicleBrand = 18
	BrandVolvo      VehicleBrand = 19
	BrandBYD        VehicleBrand = 20
)

var vehicleBrandLabels = map[VehicleBrand]string{
	BrandAudi:       "AUDI",
	BrandBMW:        "BMW",
	BrandChevrolet:  "CHEVROLET - GM",
	BrandFerrari:    "FERRARI",
	BrandFiat:       "FIAT",
	BrandFord:       "FORD",
	BrandHonda:      "HONDA",
	BrandHyundai:    "HYUNDAI",
	BrandVolkswagen: "VOLKSWAGEN",
	BrandJaguar:     "JAGUAR",
	BrandJeep:       "JEEP",
	BrandKia:        "KIA",
	BrandMercedes:   "MERCEDES-BENZ",
	BrandNissan:     "NISSAN",
	BrandPeugeot:    "PEUGEOT",
	BrandRenault:    "RENAULT",
	BrandSuzuki:     "SUZUKI",
	BrandToyota:     "TOYOTA",
	BrandVolvo:      "VOLVO",
	BrandBYD:        "BYD",
}

// VehicleColor is the numeric color code persisted with each vehicle.
type VehicleColor int16

const (
	ColorBranco   VehicleColor = 1
	ColorAmarelo  VehicleColor = 2
	ColorAzul     VehicleColor = 3
	ColorPrata    VehicleColor = 4
	ColorPreto    VehicleColor = 5
	ColorVermelho VehicleColor = 6
	ColorVerde    VehicleColor = 7
	ColorRosa     VehicleColor = 8
	ColorRoxo     VehicleColor = 9
	ColorLaranja  VehicleColor = 10
	ColorBege     VehicleColor = 11
	ColorGrafite  VehicleColor = 12
)

var vehicleColorLabels = map[VehicleColor]string{
	1:  "BRANCO",
	2:  "AMARELO",
	3:  "AZUL",
	4:  "PRATA",
	5:  "PRETO",
	6:  "VERMELHO",
	7:  "VERDE",
	8:  "ROSA",
	9:  "ROXO",
	10: "LARANJA",
	11: "BEGE",
	12: "GRAFITE",
}

// FuelType is the numeric fuel code persisted with each vehicle.
type FuelType int16

const (
	FuelEtanol         FuelType = 1
	FuelDiesel         FuelType = 2
	FuelFlex           FuelType = 3
	FuelGasolina       FuelType = 4
	FuelGNV            FuelType = 5
	FuelEletrico       FuelType = 6
	FuelHibrido        FuelType = 7
	FuelBiocombustivel FuelType = 8
)

var fuelTypeLabels = map[FuelType]string{
	1: "ETANOL",
	2: "DIESEL",
	3: "FLEX",
	4: "GASOLINA",
	5: "GNV",
	6: "ELÉTRICO",
	7: "HÍBRIDO",
	8: "BIOCOMBUSTÍVEL",
}

// Label returns the display name for the brand code.
func (b VehicleBrand) Label() string {
	if label, ok := vehicleBrandLabels[b]; ok {
		return label
	}
	return fmt.Sprintf("%d", int16(b))
}

// IsValid reports whether the brand code is recognized.
func (b VehicleBrand) IsValid() bool {
	_, ok := vehicleBrandLabels[b]
	return ok
}

// Label returns the display name for the color code.
func (c VehicleColor) Label() string {
	if label, ok := vehicleColorLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("%d", int16(c))
}

// IsValid reports whether the color code is recognized.
func (c VehicleColor) IsValid() bool {
	_, ok := vehicleColorLabels[c]
	return ok
}

// Label returns the display name for the fuel code.
func (f FuelType) Label() string {
	if label, ok := fuelTypeLabels[f]; ok {
		return label
	}
	return fmt.Sprintf("%d", int16(f))
}

// IsValid reports whether the fuel code is recognized.
func (f FuelType) IsValid() bool {
	_, ok := fuelTypeLabels[f]
	return ok
}

// Option pairs a numeric code with its display label for select-style UIs.
type Option struct {
	Value int16  `json:"value"`
	Label string `json:"label"`
}

// BrandOptions returns every brand ordered by code.
func BrandOptions() []Option {
	return buildOptions(len(vehicleBrandLabels), func(code int16) (string, bool) {
		label, ok := vehicleBrandLabels[VehicleBrand(code)]
		return label, ok
	})
}

// ColorOptions returns every color ordered by code.
func ColorOptions() []Option {
	return buildOptions(len(vehicleColorLabels), func(code int16) (string, bool) {
		label, ok := vehicleColorLabels[VehicleColor(code)]
		return label, ok
	})
}

// FuelOptions returns every fuel type ordered by code.
func FuelOptions() []Option {
	return buildOptions(len(fuelTypeLabels), func(code int16) (string, bool) {
		label, ok := fuelTypeLabels[FuelType(code)]
		return label, ok
	})
}

func buildOptions(count int, lookup func(int16) (string, bool)) []Option {
	options := make([]Option, 0, count)
	for code := int16(1); int(code) <= count; code++ {
		if label, ok := lookup(code); ok {
			options = append(options, Option{Value: code, Label: label})
		}
	}
	return options
}

// BrandsMatchingKeyword returns the brand codes whose labels contain the
// keyword, so free-text search can reach listings by brand name.
func BrandsMatchingKeyword(keyword string) []VehicleBrand {
	needle := strings.ToUpper(strings.TrimSpace(keyword))
	if needle == "" {
		return nil
	}
	var matches []VehicleBrand
	for code := VehicleBrand(1); code <= BrandBYD; code++ {
		if label, ok := vehicleBrandLabels[code]; ok && strings.Contains(label, needle) {
			matches = append(matches, code)
		}
	}
	return matches
}
