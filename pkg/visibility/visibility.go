package visibility

import (
	"github.com/google/uuid"

	"github.com/andrebarceloschagas/sistema/pkg/db/models"
	"github.com/andrebarceloschagas/sistema/pkg/enums"
)

// Capability names stored on the user record and carried in access tokens.
const (
	CapViewAllListings         = "can_view_all_anuncios"
	CapViewDetailedVehicleInfo = "can_view_detailed_info"
)

// Actor is the authenticated principal evaluated by the access checks.
type Actor struct {
	ID           uuid.UUID
	IsStaff      bool
	Capabilities []string
}

// ActorFromUser builds an Actor from a persisted user.
func ActorFromUser(user *models.User) Actor {
	if user == nil {
		return Actor{}
	}
	return Actor{
		ID:           user.ID,
		IsStaff:      user.IsStaff,
		Capabilities: user.Capabilities,
	}
}

// HasCapability reports whether the actor carries the named capability.
func (a Actor) HasCapability(name string) bool {
	for _, cap := range a.Capabilities {
		if cap == name {
			return true
		}
	}
	return false
}

// IsAuthenticated reports whether the actor maps to a real user.
func (a Actor) IsAuthenticated() bool {
	return a.ID != uuid.Nil
}

// CanAccessListing reports whether the actor may read or manage a listing.
// Owners, staff, and holders of the view-all capability qualify.
func CanAccessListing(actor Actor, listing *models.Listing) bool {
	if listing == nil {
		return false
	}
	if actor.IsStaff {
		return true
	}
	if actor.IsAuthenticated() && actor.ID == listing.UsuarioID {
		return true
	}
	return actor.HasCapability(CapViewAllListings)
}

// CanReadPublicListing reports whether an actor without management access may
// still read the listing. Active listings are publicly readable.
func CanReadPublicListing(actor Actor, listing *models.Listing) bool {
	if listing == nil {
		return false
	}
	if listing.Status == enums.ListingStatusActive {
		return true
	}
	return CanAccessListing(actor, listing)
}

// CanAccessVehicle reports whether the actor may see a vehicle's detailed
// record. ownsListingForVehicle covers sellers whose ads reference it.
func CanAccessVehicle(actor Actor, vehicle *models.Vehicle, ownsListingForVehicle bool) bool {
	if vehicle == nil {
		return false
	}
	if actor.IsStaff {
		return true
	}
	if actor.IsAuthenticated() && actor.ID == vehicle.CreatedByID {
		return true
	}
	if actor.HasCapability(CapViewDetailedVehicleInfo) {
		return true
	}
	return ownsListingForVehicle
}
