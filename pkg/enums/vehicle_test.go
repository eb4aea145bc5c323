package enums

import "testing"

func TestVehicleBrandLabels(t *testing.T) {
	if got := BrandChevrolet.Label(); got != "CHEVROLET - GM" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := BrandBYD.Label(); got != "BYD" {
		t.Fatalf("unexpected label %q", got)
	}
	if VehicleBrand(21).IsValid() {
		t.Fatal("brand 21 should be invalid")
	}
	if !VehicleBrand(1).IsValid() {
		t.Fatal("brand 1 should be valid")
	}
}

func TestOptionsOrdering(t *testing.T) {
	brands := BrandOptions()
	if len(brands) != 20 {
		t.Fatalf("expected 20 brands, got %d", len(brands))
	}
	if brands[0].Value != 1 || brands[0].Label != "AUDI" {
		t.Fatalf("unexpected first brand: %+v", brands[0])
	}

	colors := ColorOptions()
	if len(colors) != 12 {
		t.Fatalf("expected 12 colors, got %d", len(colors))
	}

	fuels := FuelOptions()
	if len(fuels) != 8 {
		t.Fatalf("expected 8 fuels, got %d", len(fuels))
	}
	if fuels[2].Label != "FLEX" {
		t.Fatalf("expected FLEX at code 3, got %q", fuels[2].Label)
	}
}

func TestBrandsMatchingKeyword(t *testing.T) {
	matches := BrandsMatchingKeyword("volks")
	if len(matches) != 1 || matches[0] != BrandVolkswagen {
		t.Fatalf("expected VOLKSWAGEN match, got %v", matches)
	}
	if got := BrandsMatchingKeyword(""); got != nil {
		t.Fatalf("expected nil for empty keyword, got %v", got)
	}
	vol := BrandsMatchingKeyword("VOL")
	if len(vol) != 2 {
		t.Fatalf("expected VOLKSWAGEN and VOLVO, got %v", vol)
	}
}
