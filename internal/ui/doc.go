// Package ui provides the decklens terminal interface.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model (Model) that switches between views.
// Every backend call runs as a tea.Cmd and reports back with a message, so
// Update never blocks. Dashboard loads go through state.Store: Begin hands
// out a sequence number and Finish drops results of superseded loads.
//
// # Views
//
//   - Search: tag entry with validation and example tags
//   - Dashboard: player summary, deck grid, analysis tabs and charts
//   - Cards: card catalog with type and rarity filters, statistics and sync
//   - Players: paged player directory and search
//   - Roast: generated roasts with selectable intensity
//   - Logs: the tail of the decklens log file
//
// The login/register modal and the help overlay sit above every view.
//
// # Key Bindings
//
//   - s/d/c/p/r/l: Search, Dashboard, Cards, Players, Roast, Logs
//   - Tab: Cycle views
//   - 1/2/3: Analysis tabs (dashboard)
//   - x: Export charts as HTML (dashboard)
//   - L/O: Log in / log out
//   - T: Cycle theme
//   - h or ?: Help
//   - ESC: Return to search
//   - e or Ctrl+C: Exit
package ui
