package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in the platform glue predictable.

// ===== Group Errors =====
var (
	ErrGroupNotFound      = errors.New("group not found")
	ErrNoGroups           = errors.New("guild has no groups")
	ErrGroupNameRequired  = errors.New("group name is required")
	ErrGroupNameEmpty     = errors.New("group name normalizes to nothing")
	ErrGroupNameExists    = errors.New("a group with this name already exists")
	ErrAlreadyGroupMember = errors.New("already a member of this group")
	ErrNotGroupMember     = errors.New("not a member of this group")
	ErrNoGroupMembers     = errors.New("group has no members to mention")
)
