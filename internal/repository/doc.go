// Package repository implements the data access layer for Muster.
//
// The guild repository persists each guild as one SurrealDB document holding
// the guild metadata and its full nested group sequence. Reads and writes
// operate on whole documents only; there are no field-level patches.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations (Get, Upsert)
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Query Patterns
//
//   - Parameterized queries with $variable syntax for security
//   - type::thing() for safe record ID handling
//   - UPSERT ... CONTENT for whole-document replacement
//
// # Caching
//
// CachedGuildRepository decorates any GuildStore with a short-TTL Redis
// read-through cache. The decorator is optional; wiring happens in main.
//
// # Example Usage
//
//	repo := NewGuildRepository(db)
//	record, err := repo.Get(ctx, guildID)
//	if err != nil {
//	    return err
//	}
//	if record == nil {
//	    // No stored record for this guild yet
//	}
package repository
