// Package service implements the business logic layer for Muster.
//
// GroupService owns every guild's group registry: creation with
// normalized-name uniqueness, lookup, deletion, membership mutation and the
// batch-mention payload. It also adapts the generic pager engine to the two
// interactive listings (groups five per page with detail slots, members
// twelve per page).
//
// # Persistence model
//
// Every mutation goes through GetOrCreateGuild and ends with one
// GuildStore.Upsert of the entire record. The load-check-append-save sequence
// in CreateGroup is not transactional: two concurrent creators racing on the
// same name can both pass the uniqueness check. The deployment assumes at
// most one writer per guild; see DESIGN.md.
//
// # Error Handling
//
// Service methods return the sentinel errors defined in errors.go, wrapped
// with context where useful. Check with errors.Is(). Absence in lookups
// (FindGroup, GroupDetail) is (nil, nil), not an error.
package service
