package visibility

import (
	"testing"

	"github.com/google/uuid"

	"github.com/andrebarceloschagas/sistema/pkg/db/models"
	"github.com/andrebarceloschagas/sistema/pkg/enums"
)

func TestCanAccessListing(t *testing.T) {
	owner := uuid.New()
	listing := &models.Listing{UsuarioID: owner, Status: enums.ListingStatusPaused}

	t.Run("owner", func(t *testing.T) {
		if !CanAccessListing(Actor{ID: owner}, listing) {
			t.Fatal("owner must access own listing")
		}
	})
	t.Run("staff", func(t *testing.T) {
		if !CanAccessListing(Actor{ID: uuid.New(), IsStaff: true}, listing) {
			t.Fatal("staff must access any listing")
		}
	})
	t.Run("capability", func(t *testing.T) {
		actor := Actor{ID: uuid.New(), Capabilities: []string{CapViewAllListings}}
		if !CanAccessListing(actor, listing) {
			t.Fatal("view-all capability must grant access")
		}
	})
	t.Run("stranger", func(t *testing.T) {
		if CanAccessListing(Actor{ID: uuid.New()}, listing) {
			t.Fatal("unrelated user must not access a paused listing")
		}
	})
	t.Run("anonymous", func(t *testing.T) {
		if CanAccessListing(Actor{}, listing) {
			t.Fatal("anonymous must not access a paused listing")
		}
	})
	t.Run("nil listing", func(t *testing.T) {
		if CanAccessListing(Actor{IsStaff: true}, nil) {
			t.Fatal("nil listing must never be accessible")
		}
	})
}

func TestCanReadPublicListing(t *testing.T) {
	active := &models.Listing{UsuarioID: uuid.New(), Status: enums.ListingStatusActive}
	if !CanReadPublicListing(Actor{}, active) {
		t.Fatal("active listings are publicly readable")
	}

	sold := &models.Listing{UsuarioID: uuid.New(), Status: enums.ListingStatusSold}
	if CanReadPublicListing(Actor{ID: uuid.New()}, sold) {
		t.Fatal("sold listings are not publicly readable")
	}
	if !CanReadPublicListing(Actor{ID: sold.UsuarioID}, sold) {
		t.Fatal("owner can still read a sold listing")
	}
}

func TestCanAccessVehicle(t *testing.T) {
	creator := uuid.New()
	vehicle := &models.Vehicle{CreatedByID: creator}

	if !CanAccessVehicle(Actor{ID: creator}, vehicle, false) {
		t.Fatal("creator must access own vehicle")
	}
	if !CanAccessVehicle(Actor{ID: uuid.New(), IsStaff: true}, vehicle, false) {
		t.Fatal("staff must access any vehicle")
	}
	detailed := Actor{ID: uuid.New(), Capabilities: []string{CapViewDetailedVehicleInfo}}
	if !CanAccessVehicle(detailed, vehicle, false) {
		t.Fatal("detailed-info capability must grant access")
	}
	if !CanAccessVehicle(Actor{ID: uuid.New()}, vehicle, true) {
		t.Fatal("a seller advertising the vehicle must see it")
	}
	if CanAccessVehicle(Actor{ID: uuid.New()}, vehicle, false) {
		t.Fatal("unrelated user must not see vehicle details")
	}
}

func TestActorFromUser(t *testing.T) {
	user := &models.User{ID: uuid.New(), IsStaff: true, Capabilities: []string{CapViewAllListings}}
	actor := ActorFromUser(user)
	if actor.ID != user.ID || !actor.IsStaff || !actor.HasCapability(CapViewAllListings) {
		t.Fatalf("unexpected actor %+v", actor)
	}

	empty := ActorFromUser(nil)
	if empty.IsAuthenticated() {
		t.Fatal("nil user must map to anonymous actor")
	}
}
