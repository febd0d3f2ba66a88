package identity

import (
	errors "github.com/frahmantamala/user-management/internal"
)

// ProfileLookup fetches one profile record by id from a single profile
// collection.
type ProfileLookup func(id string) (interface{}, error)

// Resolver joins an identity's profile reference into the collection named
// by its profile kind. Collections register themselves at wiring time.
type Resolver struct {
	lookups map[ProfileKind]ProfileLookup
}

func NewResolver() *Resolver {
	return &Resolver{lookups: make(map[ProfileKind]ProfileLookup)}
}

func (r *Resolver) Register(kind ProfileKind, lookup ProfileLookup) {
	r.lookups[kind] = lookup
}

func (r *Resolver) Resolve(kind ProfileKind, profileID string) (interface{}, error) {
	lookup, ok := r.lookups[kind]
	if !ok {
		return nil, errors.ErrProfileNotFound
	}
	return lookup(profileID)
}
