package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/forgo/muster/internal/model"
	"github.com/forgo/muster/internal/text"
)

// GuildStore defines the interface for guild record storage. Get returns
// (nil, nil) when no record exists; Upsert replaces the whole document.
type GuildStore interface {
	Get(ctx context.Context, guildID string) (*model.GuildRecord, error)
	Upsert(ctx context.Context, record *model.GuildRecord) error
}

// IdentityResolver supplies the set of identities currently present in a
// guild, used to filter stored member IDs that no longer resolve.
type IdentityResolver interface {
	PresentMembers(ctx context.Context, guildID string) ([]string, error)
}

// Mention payload sizing. Platform messages cap at MentionMaxLength; chunks
// reserve MentionReserve for the delivery wrapper.
const (
	MentionMaxLength = 1900
	MentionReserve   = 8
)

// GroupService owns the group registry of every guild: creation with
// normalized-name uniqueness, lookup, deletion and membership mutation. Every
// mutation persists the entire owning guild record.
type GroupService struct {
	store GuildStore
	log   *slog.Logger
}

// NewGroupService creates a new group service.
func NewGroupService(store GuildStore, log *slog.Logger) *GroupService {
	return &GroupService{store: store, log: log}
}

// GetOrCreateGuild loads the stored record for a guild, synthesizing and
// persisting an empty one when none exists. Groups come back sorted by
// normalized name.
func (s *GroupService) GetOrCreateGuild(ctx context.Context, guildID string) (*model.GuildRecord, error) {
	record, err := s.store.Get(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record = model.NewGuildRecord(guildID)
		if err := s.store.Upsert(ctx, record); err != nil {
			return nil, err
		}
		s.log.Info("created guild record", slog.String("guild_id", guildID))
	}
	record.AttachGroups()
	record.SortGroups()
	return record, nil
}

// CreateGroup allocates a new group in the guild. It fails with
// ErrGroupNameExists when an existing group's name normalizes identically.
func (s *GroupService) CreateGroup(ctx context.Context, guildID, creatorID, name, description string) (*model.Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrGroupNameRequired
	}
	if text.Normalize(name) == "" {
		return nil, ErrGroupNameEmpty
	}

	record, err := s.GetOrCreateGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if record.HasGroupNamed(name) {
		return nil, fmt.Errorf("%w: %s", ErrGroupNameExists, name)
	}

	group := &model.Group{
		ID:          uuid.NewString(),
		CreatorID:   creatorID,
		Name:        name,
		Description: description,
		Members:     []string{},
		GuildID:     guildID,
	}
	record.Groups = append(record.Groups, group)
	record.SortGroups()
	if err := s.store.Upsert(ctx, record); err != nil {
		return nil, err
	}

	s.log.Info("created group",
		slog.String("guild_id", guildID),
		slog.String("group_id", group.ID),
		slog.String("name", name),
	)
	return group, nil
}

// FindGroup scans the guild's groups by ID. It returns (nil, nil) when the
// group does not exist; absence is not an error.
func (s *GroupService) FindGroup(ctx context.Context, guildID, groupID string) (*model.Group, error) {
	record, err := s.GetOrCreateGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}
	group, ok := record.FindGroup(groupID)
	if !ok {
		return nil, nil
	}
	return group, nil
}

// DeleteGroup removes a group from its guild and persists the record. It
// returns ErrGroupNotFound when no group matches.
func (s *GroupService) DeleteGroup(ctx context.Context, guildID, groupID string) error {
	record, err := s.GetOrCreateGuild(ctx, guildID)
	if err != nil {
		return err
	}
	if !record.RemoveGroup(groupID) {
		return ErrGroupNotFound
	}
	if err := s.store.Upsert(ctx, record); err != nil {
		return err
	}
	s.log.Info("deleted group",
		slog.String("guild_id", guildID),
		slog.String("group_id", groupID),
	)
	return nil
}

// JoinGroup adds userID to the group's member list and persists the whole
// guild record. Joining twice is rejected with ErrAlreadyGroupMember.
func (s *GroupService) JoinGroup(ctx context.Context, guildID, groupID, userID string) (*model.Group, error) {
	record, err := s.GetOrCreateGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}
	group, ok := record.FindGroup(groupID)
	if !ok {
		return nil, ErrGroupNotFound
	}
	if err := group.AddMember(userID); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyGroupMember, group.Name)
	}
	if err := s.store.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return group, nil
}

// LeaveGroup removes userID from the group's member list and persists the
// whole guild record. Leaving a group the user is not in is rejected with
// ErrNotGroupMember.
func (s *GroupService) LeaveGroup(ctx context.Context, guildID, groupID, userID string) (*model.Group, error) {
	record, err := s.GetOrCreateGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}
	group, ok := record.FindGroup(groupID)
	if !ok {
		return nil, ErrGroupNotFound
	}
	if err := group.RemoveMember(userID); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotGroupMember, group.Name)
	}
	if err := s.store.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return group, nil
}

// SearchGroups returns the guild's groups whose names contain the query,
// case-insensitively. An empty query returns every group. Used for
// autocomplete-style lookups.
func (s *GroupService) SearchGroups(ctx context.Context, guildID, query string) ([]*model.Group, error) {
	record, err := s.GetOrCreateGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(query)
	matches := make([]*model.Group, 0, len(record.Groups))
	for _, g := range record.Groups {
		if query == "" || strings.Contains(strings.ToLower(g.Name), query) {
			matches = append(matches, g)
		}
	}
	return matches, nil
}

// MentionContent builds the batch-mention payload for a group, chunked to fit
// the platform's message size. Only members present in the resolver's view of
// the guild are mentioned; stale stored IDs are skipped (never pruned).
func (s *GroupService) MentionContent(ctx context.Context, callerID string, group *model.Group, resolver IdentityResolver) ([]string, error) {
	present, err := resolver.PresentMembers(ctx, group.GuildID)
	if err != nil {
		return nil, err
	}
	members := group.ResolveMembers(present)
	if len(members) == 0 {
		return nil, ErrNoGroupMembers
	}

	mentions := make([]string, len(members))
	for i, id := range members {
		mentions[i] = "<@" + id + ">"
	}
	content := fmt.Sprintf("**@%s:** **@%s:** %s", callerID, group.Name, strings.Join(mentions, ", "))

	var chunks []string
	for chunk := range text.Chunk(content, []string{", "}, MentionReserve, MentionMaxLength) {
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}
