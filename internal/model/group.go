package model

import "errors"

// Membership errors returned by Group mutators.
var (
	// ErrAlreadyMember indicates the user is already in the group's member list.
	ErrAlreadyMember = errors.New("already a member")

	// ErrNotMember indicates the user is not in the group's member list.
	ErrNotMember = errors.New("not a member")
)

// Group is a named, guild-scoped list of member identifiers used for batch
// addressing. Members is semantically a set but is persisted as a sequence in
// insertion order.
type Group struct {
	ID          string   `json:"_id"`
	CreatorID   string   `json:"creator"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members"`

	// GuildID routes mutations back to the owning guild record. It is set
	// whenever the group is attached to a guild and is never serialized as
	// part of the group payload.
	GuildID string `json:"-"`
}

// HasMember reports whether userID is in the member list.
func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// AddMember appends userID to the member list. It returns ErrAlreadyMember
// instead of silently deduplicating: the join path is expected to surface
// that rejection to the user.
func (g *Group) AddMember(userID string) error {
	if g.HasMember(userID) {
		return ErrAlreadyMember
	}
	g.Members = append(g.Members, userID)
	return nil
}

// RemoveMember removes userID from the member list, preserving the order of
// the remaining entries. It returns ErrNotMember when userID is absent and
// leaves the list untouched.
func (g *Group) RemoveMember(userID string) error {
	for i, m := range g.Members {
		if m == userID {
			g.Members = append(g.Members[:i], g.Members[i+1:]...)
			return nil
		}
	}
	return ErrNotMember
}

// ResolveMembers intersects the stored member identifiers against a set of
// currently-present identities, returning the resolvable ones in the order of
// the present slice. Stored identifiers that no longer resolve (the user left
// the community) are filtered here, never pruned from storage.
func (g *Group) ResolveMembers(present []string) []string {
	stored := make(map[string]struct{}, len(g.Members))
	for _, m := range g.Members {
		stored[m] = struct{}{}
	}
	resolved := make([]string, 0, len(g.Members))
	for _, id := range present {
		if _, ok := stored[id]; ok {
			resolved = append(resolved, id)
		}
	}
	return resolved
}
