// Package config manages application configuration for Muster.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single source
// of truth.
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts)
//   - DatabaseConfig: SurrealDB connection settings
//   - CacheConfig: optional Redis guild-record cache
//   - PagerConfig: pagination session idle timeout and reap interval
//   - OwnerConfig: administrative override identity
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	DB_HOST, DB_PORT     - SurrealDB endpoint
//	DB_NAMESPACE, DB_DATABASE
//	DB_USER, DB_PASSWORD
//	CACHE_ENABLED        - enable the Redis cache (default: false)
//	CACHE_ADDR, CACHE_TTL
//	PAGER_IDLE_TIMEOUT   - session inactivity window (default: 3m)
//	PAGER_REAP_INTERVAL  - reaper tick (default: 30s)
//	OWNER_USER_ID        - identity allowed to drive any session
//
// Sensible defaults are provided for development; Validate reports every
// problem at once via errors.Join.
package config
