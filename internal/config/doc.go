// Package config manages application configuration for the gym API.
//
// Configuration is loaded from environment variables, with an optional .env
// file picked up from the working directory. All configuration is
// centralized here to provide a single source of truth.
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: token signing and lifetime settings
//
// # Key Environment Variables
//
//	SERVER_PORT           - HTTP server port (default: 8080)
//	DB_HOST, DB_PORT      - SurrealDB endpoint
//	DB_NAMESPACE, DB_DATABASE
//	DB_USER, DB_PASSWORD
//	JWT_SECRET            - HMAC signing secret
//	JWT_EXPIRATION_MINS   - access token lifetime
//	REFRESH_EXPIRATION_DAYS - refresh token lifetime
package config
