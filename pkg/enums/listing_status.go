package enums

import "fmt"

// ListingStatus represents the lifecycle state of a vehicle listing.
type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "ativo"
	ListingStatusSold     ListingStatus = "vendido"
	ListingStatusPaused   ListingStatus = "pausado"
	ListingStatusExpired  ListingStatus = "expirado"
	ListingStatusReserved ListingStatus = "reservado"
)

var validListingStatuses = []ListingStatus{
	ListingStatusActive,
	ListingStatusSold,
	ListingStatusPaused,
	ListingStatusExpired,
	ListingStatusReserved,
}

var listingStatusLabels = map[ListingStatus]string{
	ListingStatusActive:   "Ativo",
	ListingStatusSold:     "Vendido",
	ListingStatusPaused:   "Pausado",
	ListingStatusExpired:  "Expirado",
	ListingStatusReserved: "Reservado",
}

// String implements fmt.Stringer.
func (s ListingStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ListingStatus.
func (s ListingStatus) IsValid() bool {
	for _, candidate := range validListingStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// Label returns the human-readable display text for the status.
func (s ListingStatus) Label() string {
	if label, ok := listingStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// CanReactivate reports whether a listing in this status may return to active.
func (s ListingStatus) CanReactivate() bool {
	return s == ListingStatusPaused || s == ListingStatusExpired
}

// ParseListingStatus converts raw input into a ListingStatus.
func ParseListingStatus(value string) (ListingStatus, error) {
	for _, candidate := range validListingStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid listing status %q", value)
}

// ListingStatuses returns every recognized status in declaration order.
func ListingStatuses() []ListingStatus {
	out := make([]ListingStatus, len(validListingStatuses))
	copy(out, validListingStatuses)
	return out
}
