package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/forgo/muster/internal/model"
	"github.com/forgo/muster/internal/pager"
)

// stubFrontend satisfies pager.Frontend for session construction; the
// interesting assertions are on the rendered specs, not delivery.
type stubFrontend struct {
	sent []pager.RenderSpec
}

func (f *stubFrontend) Send(ctx context.Context, spec pager.RenderSpec) (pager.MessageRef, error) {
	f.sent = append(f.sent, spec)
	return "msg-1", nil
}

func (f *stubFrontend) Edit(ctx context.Context, ref pager.MessageRef, spec pager.RenderSpec) error {
	f.sent = append(f.sent, spec)
	return nil
}

func (f *stubFrontend) Notify(ctx context.Context, callerID, message string) error {
	return nil
}

func (f *stubFrontend) PromptPageNumber(ctx context.Context, placeholder string) (string, error) {
	return "", pager.ErrPromptTimeout
}

func TestSlotControlIDRoundTrip(t *testing.T) {
	for slot := 0; slot < GroupsPerPage; slot++ {
		id := SlotControlID(slot)
		got, ok := ParseSlotControlID(id)
		if !ok || got != slot {
			t.Errorf("ParseSlotControlID(%q) = (%d, %v), want (%d, true)", id, got, ok, slot)
		}
	}
	if _, ok := ParseSlotControlID("groups:join:abc"); ok {
		t.Error("expected non-slot control ID to be rejected")
	}
}

func TestDetailControlID(t *testing.T) {
	id := DetailControlID(DetailActionJoin, "group-1")
	if id != "groups:join:group-1" {
		t.Errorf("DetailControlID = %q, want groups:join:group-1", id)
	}

	action, groupID, ok := ParseDetailControlID(id)
	if !ok || action != DetailActionJoin || groupID != "group-1" {
		t.Errorf("ParseDetailControlID(%q) = (%q, %q, %v)", id, action, groupID, ok)
	}

	for _, bad := range []string{"slot:2", "groups:nuke:group-1", "groups:join", "other:join:g"} {
		if _, _, ok := ParseDetailControlID(bad); ok {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestGroupPageRendererFormatPage(t *testing.T) {
	groups := []*model.Group{
		{ID: "a", Name: "Movie-Night", Description: "films", Members: []string{"u1", "u2"}, CreatorID: "u1"},
		{ID: "b", Name: "Raid Team", Description: "weekly raids", Members: []string{"u1"}, CreatorID: "u2"},
	}
	view := pager.View{Page: 1, PerPage: GroupsPerPage, PageCount: 2, HasCount: true, Total: 7}

	spec := GroupPageRenderer{}.FormatPage(view, groups)

	// Second page entries carry absolute numbers 6 and 7.
	if !strings.Contains(spec.Content, "## 6. Movie-Night") {
		t.Errorf("missing numbered heading for first entry:\n%s", spec.Content)
	}
	if !strings.Contains(spec.Content, "## 7. Raid Team") {
		t.Errorf("missing numbered heading for second entry:\n%s", spec.Content)
	}
	if !strings.Contains(spec.Content, "**Members:** 2") {
		t.Errorf("missing member count:\n%s", spec.Content)
	}
	if !strings.Contains(spec.Content, "**Creator:** <@u2>") {
		t.Errorf("missing creator mention:\n%s", spec.Content)
	}
	if !strings.Contains(spec.Content, "Page 2/2 (7 groups)") {
		t.Errorf("missing footer:\n%s", spec.Content)
	}

	if len(spec.Controls) != GroupsPerPage {
		t.Fatalf("expected %d slot controls, got %d", GroupsPerPage, len(spec.Controls))
	}
	// Slots 6 and 7 exist; slots 8..10 run past the total and are disabled.
	if spec.Controls[0].Disabled || spec.Controls[1].Disabled {
		t.Error("expected occupied slots enabled")
	}
	for i := 2; i < GroupsPerPage; i++ {
		if !spec.Controls[i].Disabled {
			t.Errorf("expected empty slot %d disabled", i)
		}
	}
	if spec.Controls[0].Label != "6" {
		t.Errorf("slot 0 label = %q, want 6", spec.Controls[0].Label)
	}
}

func TestGroupPageRendererSinglePageOmitsFooter(t *testing.T) {
	groups := []*model.Group{{ID: "a", Name: "Social", Members: []string{}}}
	view := pager.View{Page: 0, PerPage: GroupsPerPage, PageCount: 1, HasCount: true, Total: 1}

	spec := GroupPageRenderer{}.FormatPage(view, groups)
	if strings.Contains(spec.Content, "Page 1/1") {
		t.Errorf("single-page view should not carry a footer:\n%s", spec.Content)
	}
}

func TestBrowseGroupsEmptyGuild(t *testing.T) {
	svc := NewGroupService(newMemoryGuildStore(), testLogger())

	_, err := svc.BrowseGroups(context.Background(), "guild-1", &stubFrontend{}, pager.Options{OwnerID: "u1"})
	if !errors.Is(err, ErrNoGroups) {
		t.Errorf("expected ErrNoGroups, got %v", err)
	}
}

func TestBrowseGroups(t *testing.T) {
	store := newMemoryGuildStore()
	svc := NewGroupService(store, testLogger())
	ctx := context.Background()

	for _, name := range []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta"} {
		if _, err := svc.CreateGroup(ctx, "guild-1", "u1", name, ""); err != nil {
			t.Fatalf("CreateGroup(%s) failed: %v", name, err)
		}
	}

	session, err := svc.BrowseGroups(ctx, "guild-1", &stubFrontend{}, pager.Options{OwnerID: "u1"})
	if err != nil {
		t.Fatalf("BrowseGroups failed: %v", err)
	}
	if err := session.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Six groups, five per page.
	spec := session.LastRender()
	if !strings.Contains(spec.Content, "Page 1/2 (6 groups)") {
		t.Errorf("unexpected first page footer:\n%s", spec.Content)
	}
}

func TestBrowseMembers(t *testing.T) {
	svc := NewGroupService(newMemoryGuildStore(), testLogger())
	group := &model.Group{
		ID:      "g1",
		Name:    "Raid Team",
		Members: []string{"u1", "u2", "u9"},
		GuildID: "guild-1",
	}
	resolver := &mockResolver{
		presentFunc: func(ctx context.Context, guildID string) ([]string, error) {
			return []string{"u1", "u2"}, nil
		},
	}

	session, err := svc.BrowseMembers(context.Background(), group, resolver, &stubFrontend{}, pager.Options{OwnerID: "u1"})
	if err != nil {
		t.Fatalf("BrowseMembers failed: %v", err)
	}
	if err := session.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	content := session.LastRender().Content
	if !strings.Contains(content, "**Raid Team Members**") {
		t.Errorf("missing header:\n%s", content)
	}
	if !strings.Contains(content, "<@u1> `[u1]`") {
		t.Errorf("missing member entry:\n%s", content)
	}
	if strings.Contains(content, "u9") {
		t.Errorf("stale member listed:\n%s", content)
	}
}

func TestBrowseMembersEmpty(t *testing.T) {
	svc := NewGroupService(newMemoryGuildStore(), testLogger())
	group := &model.Group{ID: "g1", Name: "Raid Team", Members: []string{}, GuildID: "guild-1"}

	_, err := svc.BrowseMembers(context.Background(), group, &mockResolver{}, &stubFrontend{}, pager.Options{OwnerID: "u1"})
	if !errors.Is(err, ErrNoGroupMembers) {
		t.Errorf("expected ErrNoGroupMembers, got %v", err)
	}
}

func TestGroupDetail(t *testing.T) {
	store := newMemoryGuildStore()
	svc := NewGroupService(store, testLogger())
	ctx := context.Background()

	created, err := svc.CreateGroup(ctx, "guild-1", "u1", "Raid Team", "weekly raids")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if _, err := svc.JoinGroup(ctx, "guild-1", created.ID, "u2"); err != nil {
		t.Fatalf("JoinGroup failed: %v", err)
	}
	resolver := &mockResolver{
		presentFunc: func(ctx context.Context, guildID string) ([]string, error) {
			return []string{"u1", "u2"}, nil
		},
	}

	spec, err := svc.GroupDetail(ctx, "guild-1", created.ID, resolver)
	if err != nil {
		t.Fatalf("GroupDetail failed: %v", err)
	}
	if !strings.Contains(spec.Content, "## Raid Team") {
		t.Errorf("missing heading:\n%s", spec.Content)
	}
	if !strings.Contains(spec.Content, "**Members:** 1") {
		t.Errorf("expected one resolvable member:\n%s", spec.Content)
	}

	wantControls := []string{
		DetailControlID(DetailActionRefresh, created.ID),
		DetailControlID(DetailActionJoin, created.ID),
		DetailControlID(DetailActionLeave, created.ID),
		DetailControlID(DetailActionMembers, created.ID),
	}
	if len(spec.Controls) != len(wantControls) {
		t.Fatalf("expected %d controls, got %d", len(wantControls), len(spec.Controls))
	}
	for i, c := range spec.Controls {
		if c.ID != wantControls[i] {
			t.Errorf("control %d = %q, want %q", i, c.ID, wantControls[i])
		}
	}
}

func TestGroupDetailDeletedGroup(t *testing.T) {
	svc := NewGroupService(newMemoryGuildStore(), testLogger())

	spec, err := svc.GroupDetail(context.Background(), "guild-1", "missing", &mockResolver{})
	if err != nil {
		t.Fatalf("GroupDetail errored: %v", err)
	}
	if spec != nil {
		t.Error("expected nil spec for a deleted group")
	}
}
