package kernel

import "opspro/internal/pkg/errs"

// ErrActorIsNotConstructed is returned when an Actor was not created through
// one of the constructor functions.
var ErrActorIsNotConstructed = errs.NewAuthError("actor must be created via NewManagerActor or NewPartnerActor")

// Actor is the authenticated identity on whose behalf an operation runs.
// Role gating in the order lifecycle compares the actor against the order's
// assigned partner, so a partner actor always carries its partner ID.
type Actor struct {
	role      Role
	partnerID ID

	isConstructed bool
}

// NewManagerActor creates an actor for a manager session.
func NewManagerActor() Actor {
	return Actor{
		role:          RoleManager,
		isConstructed: true,
	}
}

// NewPartnerActor creates an actor for a partner session.
// The partner ID identifies the DeliveryPartner bound to the session and
// must be a valid persisted identifier.
func NewPartnerActor(partnerID ID) (Actor, error) {
	if err := partnerID.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		role:          RolePartner,
		partnerID:     partnerID,
		isConstructed: true,
	}, nil
}

// Validate ensures the actor was created through a constructor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// Role returns the session role of the actor.
func (a Actor) Role() Role {
	return a.role
}

// PartnerID returns the DeliveryPartner identifier bound to a partner actor.
// For manager actors the zero ID is returned.
func (a Actor) PartnerID() ID {
	return a.partnerID
}

// IsPartner reports whether the actor acts with the partner role as the
// given partner.
func (a Actor) IsPartner(partnerID ID) bool {
	return a.role == RolePartner && a.partnerID.IsEqual(partnerID)
}
