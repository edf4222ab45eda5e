// Package model defines domain entities for the Muster service.
//
// The model package contains the persisted document shapes and the pure
// domain logic attached to them. Models are used across all layers of the
// application.
//
// # Domain Entities
//
//   - GuildRecord: a community scope owning an ordered sequence of groups,
//     persisted as a single document keyed by the external guild identifier
//   - Group: a named, guild-scoped member list used for batch mentions
//
// # Invariants
//
// A group's member sequence never contains a duplicate identifier, and no two
// groups in one guild normalize to the same name (see the text package for
// the normalization rules). Both invariants are enforced in this layer, not
// by the store.
//
// # JSON Serialization
//
// Struct tags mirror the persisted document shape:
//
//	{ "_id": "...", "create_roles": [...],
//	  "groups": [ { "_id": "...", "creator": "...", "name": "...",
//	                "description": "...", "members": [...] } ] }
package model
