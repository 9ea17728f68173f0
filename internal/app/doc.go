// Package app is roster's composition root.
//
// # Startup
//
//  1. Load config (file, then ROSTER_* environment, then flag overrides)
//  2. Build the REST client
//  3. Fetch the full employee list into a fresh state.Store
//  4. If stdout is not a terminal, print the list and return
//  5. Build the view.Controller and command.Coordinator
//  6. Start the optional background reloader
//  7. Run the TUI until the user quits or the context is cancelled
//
// A failed initial fetch is logged and shown in the TUI header; the store
// simply stays empty. In plain listing mode the failure is returned.
//
// # Reloading
//
// StartPoller replaces the whole list every reload_interval. A failed
// reload leaves the store as it was and retries with exponential backoff
// capped at 30 seconds (or the interval itself if that is longer). A reload
// overwrites local edits whose remote calls the server has not applied.
//
// # Shutdown
//
// Run waits up to request_timeout for in-flight remote mutations before it
// returns.
package app
