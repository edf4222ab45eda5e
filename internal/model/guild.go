package model

import (
	"sort"

	"github.com/forgo/muster/internal/text"
)

// GuildRecord is the persisted document for one guild: its metadata plus the
// full ordered group sequence. The whole record is overwritten on every
// mutation; there are no field-level patches.
type GuildRecord struct {
	ID          string   `json:"_id"`
	CreateRoles []string `json:"create_roles"`
	Groups      []*Group `json:"groups"`
}

// NewGuildRecord synthesizes an empty record for a guild that has no stored
// document yet.
func NewGuildRecord(guildID string) *GuildRecord {
	return &GuildRecord{
		ID:          guildID,
		CreateRoles: []string{},
		Groups:      []*Group{},
	}
}

// AttachGroups wires each group's back-reference to this guild. Called after
// loading from storage and after appending a new group.
func (r *GuildRecord) AttachGroups() {
	for _, g := range r.Groups {
		g.GuildID = r.ID
	}
}

// SortGroups orders groups by normalized name ascending. Loaded records are
// always sorted before being handed out.
func (r *GuildRecord) SortGroups() {
	sort.SliceStable(r.Groups, func(i, j int) bool {
		return text.Normalize(r.Groups[i].Name) < text.Normalize(r.Groups[j].Name)
	})
}

// FindGroup scans the group sequence by ID. The second return value is false
// when no group matches; absence is not an error.
func (r *GuildRecord) FindGroup(groupID string) (*Group, bool) {
	for _, g := range r.Groups {
		if g.ID == groupID {
			return g, true
		}
	}
	return nil, false
}

// HasGroupNamed reports whether any group's name normalizes to the same form
// as name. Uniqueness is enforced here, at the application layer, because
// normalization is domain logic the store should not encode.
func (r *GuildRecord) HasGroupNamed(name string) bool {
	normalized := text.Normalize(name)
	for _, g := range r.Groups {
		if text.Normalize(g.Name) == normalized {
			return true
		}
	}
	return false
}

// RemoveGroup deletes the group with the given ID from the sequence. It
// reports whether a group was removed.
func (r *GuildRecord) RemoveGroup(groupID string) bool {
	for i, g := range r.Groups {
		if g.ID == groupID {
			r.Groups = append(r.Groups[:i], r.Groups[i+1:]...)
			return true
		}
	}
	return false
}
