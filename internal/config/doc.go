// Package config loads decklens runtime configuration.
//
// # Resolution Order
//
// Load layers three sources, later ones winning:
//
//  1. Built-in defaults
//  2. The TOML file at the given path, or ~/.config/decklens/config.toml
//  3. Environment variables, after a .env file in the working directory has
//     been loaded with godotenv
//
// A missing config file is not an error. Empty or whitespace-only values in
// the file keep the default.
//
// # Defaults
//
//   - API base URL: http://localhost:5000/api
//   - Log level: info
//   - Log file: ~/.local/state/decklens/decklens.log
//   - Session file: ~/.config/decklens/session.toml
//   - Chart export dir: ~/.local/share/decklens/charts
//
// # File Format
//
//	api_base_url = "https://decks.example.com/api"
//	log_level = "debug"
//	log_file = "~/decklens.log"
//	session_file = "~/.config/decklens/session.toml"
//	chart_dir = "~/charts"
//
// # Environment
//
//   - DECKLENS_API_BASE_URL overrides api_base_url
//   - DECKLENS_LOG_LEVEL overrides log_level
//
// Paths beginning with ~ are expanded against the user's home directory and
// every path field is made absolute.
package config
