package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgo/muster/internal/model"
	"github.com/forgo/muster/internal/pager"
)

// Page sizes for the two interactive listings.
const (
	GroupsPerPage  = 5
	MembersPerPage = 12
)

// Detail view actions, encoded into control IDs so a detail view stays
// routable after a restart.
const (
	DetailActionRefresh = "refresh"
	DetailActionJoin    = "join"
	DetailActionLeave   = "leave"
	DetailActionMembers = "members"
)

// SlotControlID returns the control ID for a zero-based detail slot on a
// group listing page.
func SlotControlID(slot int) string {
	return fmt.Sprintf("slot:%d", slot)
}

// ParseSlotControlID extracts the slot index from a slot control ID.
func ParseSlotControlID(controlID string) (int, bool) {
	var slot int
	if _, err := fmt.Sscanf(controlID, "slot:%d", &slot); err != nil {
		return 0, false
	}
	return slot, true
}

// DetailControlID returns the control ID for a detail view action on a group,
// e.g. "groups:join:<group id>".
func DetailControlID(action, groupID string) string {
	return fmt.Sprintf("groups:%s:%s", action, groupID)
}

// ParseDetailControlID splits a detail control ID into action and group ID.
func ParseDetailControlID(controlID string) (action, groupID string, ok bool) {
	parts := strings.SplitN(controlID, ":", 3)
	if len(parts) != 3 || parts[0] != "groups" {
		return "", "", false
	}
	switch parts[1] {
	case DetailActionRefresh, DetailActionJoin, DetailActionLeave, DetailActionMembers:
		return parts[1], parts[2], true
	}
	return "", "", false
}

// GroupPageRenderer renders five groups per page with one "open detail"
// control per slot. Slot labels carry the absolute 1-based entry number;
// slots beyond the total entry count are disabled.
type GroupPageRenderer struct{}

// FormatPage implements pager.PageRenderer.
func (GroupPageRenderer) FormatPage(view pager.View, groups []*model.Group) pager.RenderSpec {
	var b strings.Builder
	start := view.Page * view.PerPage
	for i, g := range groups {
		fmt.Fprintf(&b, "## %d. %s\n%s\n**Members:** %d\n**Creator:** <@%s>\n",
			start+i+1, g.Name, g.Description, len(g.Members), g.CreatorID)
	}
	if view.HasCount && view.PageCount > 1 {
		fmt.Fprintf(&b, "\nPage %d/%d (%d groups)", view.Page+1, view.PageCount, view.Total)
	}

	controls := make([]pager.Control, view.PerPage)
	for slot := range controls {
		number := start + slot + 1
		controls[slot] = pager.Control{
			ID:       SlotControlID(slot),
			Label:    fmt.Sprintf("%d", number),
			Disabled: number > view.Total,
		}
	}

	return pager.RenderSpec{
		Content:  strings.TrimRight(b.String(), "\n"),
		Controls: controls,
	}
}

// BrowseGroups builds a pagination session over the guild's groups. The
// caller starts the session and registers it for idle reaping. An empty guild
// yields ErrNoGroups.
func (s *GroupService) BrowseGroups(ctx context.Context, guildID string, frontend pager.Frontend, opts pager.Options) (*pager.Session[*model.Group], error) {
	record, err := s.GetOrCreateGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if len(record.Groups) == 0 {
		return nil, ErrNoGroups
	}
	source := pager.NewSliceSource(record.Groups, GroupsPerPage)
	return pager.NewSession(source, pager.PageRenderer[*model.Group](GroupPageRenderer{}), frontend, GroupsPerPage, opts), nil
}

// BrowseMembers builds a pagination session over a group's resolvable
// members, twelve per page, numbered. A group nobody joined yields
// ErrNoGroupMembers.
func (s *GroupService) BrowseMembers(ctx context.Context, group *model.Group, resolver IdentityResolver, frontend pager.Frontend, opts pager.Options) (*pager.Session[string], error) {
	present, err := resolver.PresentMembers(ctx, group.GuildID)
	if err != nil {
		return nil, err
	}
	members := group.ResolveMembers(present)
	if len(members) == 0 {
		return nil, ErrNoGroupMembers
	}

	entries := make([]string, len(members))
	for i, id := range members {
		entries[i] = fmt.Sprintf("<@%s> `[%s]`", id, id)
	}
	renderer := pager.IndexedRenderer[string]{
		Header: fmt.Sprintf("**%s Members**", group.Name),
		Format: func(entry string) string { return entry },
		Noun:   "members",
	}
	source := pager.NewSliceSource(entries, MembersPerPage)
	return pager.NewSession(source, pager.PageRenderer[string](renderer), frontend, MembersPerPage, opts), nil
}

// GroupDetail re-reads a group and renders its detail view with the
// refresh/join/leave/members controls. It returns (nil, nil) when the group
// was deleted out from under an open view; the caller closes the view.
func (s *GroupService) GroupDetail(ctx context.Context, guildID, groupID string, resolver IdentityResolver) (*pager.RenderSpec, error) {
	group, err := s.FindGroup(ctx, guildID, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, nil
	}

	present, err := resolver.PresentMembers(ctx, guildID)
	if err != nil {
		return nil, err
	}
	members := group.ResolveMembers(present)

	content := fmt.Sprintf("## %s\n%s\n**Members:** %d\n**Creator:** <@%s>",
		group.Name, group.Description, len(members), group.CreatorID)
	return &pager.RenderSpec{
		Content: content,
		Controls: []pager.Control{
			{ID: DetailControlID(DetailActionRefresh, group.ID), Label: "Refresh"},
			{ID: DetailControlID(DetailActionJoin, group.ID), Label: "Join"},
			{ID: DetailControlID(DetailActionLeave, group.ID), Label: "Leave"},
			{ID: DetailControlID(DetailActionMembers, group.ID), Label: "Members"},
		},
	}, nil
}
