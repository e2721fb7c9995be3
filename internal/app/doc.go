// Package app is the composition root of decklens.
//
// Module registers the providers for the config, the file logger, the
// persisted session, the API client, the dashboard state store and the
// dashboard loader. Run builds the graph with go.uber.org/fx, starts it,
// hands the populated dependencies to ui.Run and stops the graph when the
// TUI exits. Stopping closes the log file through a lifecycle hook.
//
//	Run()
//	  ├─> config.Load()        defaults, TOML file, .env and environment
//	  ├─> logging.Open()       JSON lines to the log file
//	  ├─> session.Open()       restores saved tokens
//	  ├─> royale.NewClient()   API client reading the session
//	  ├─> dashboard.NewLoader()
//	  └─> ui.Run()             blocks until quit
//
// Only a bad config or an invalid API base URL stops startup. A session
// file that cannot be read starts a guest session, and preferences fall
// back to their defaults.
package app
