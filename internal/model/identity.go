package model

import "github.com/google/uuid"

// Identity is the calling principal, computed once per request by the
// auth middlewares and passed explicitly into every service call. The
// zero value is the anonymous identity.
type Identity struct {
	UserID uuid.UUID
}

func Authenticated(userID uuid.UUID) Identity {
	return Identity{UserID: userID}
}

func (i Identity) Anonymous() bool {
	return i.UserID == uuid.Nil
}

// Is reports whether the identity is the authenticated user with the
// given id. Always false for anonymous callers.
func (i Identity) Is(userID uuid.UUID) bool {
	return !i.Anonymous() && i.UserID == userID
}
