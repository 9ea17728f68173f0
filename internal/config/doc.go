// Package config loads roster's startup settings.
//
// # Resolution Order
//
//  1. Built-in defaults (see Default)
//  2. The TOML file at the given path, or ~/.config/roster/config.toml
//  3. ROSTER_* environment variables
//
// Command-line flags are applied by the caller on top of the result. A
// missing config file is not an error; roster runs out of the box against
// the public dummy employee API.
//
// # TOML Format
//
//	api_url = "http://dummy.restapiexample.com/api/v1/"
//	page_size = 10
//	request_timeout = "5s"
//	reload_interval = "0s"   # 0 disables periodic reloads
//	log_dir = "~/.local/share/roster/logs"
//
// Every field is optional. Durations use Go syntax ("750ms", "2m").
//
// # Environment
//
//	ROSTER_API_URL, ROSTER_PAGE_SIZE, ROSTER_REQUEST_TIMEOUT,
//	ROSTER_RELOAD_INTERVAL, ROSTER_LOG_DIR
//
// Unset or empty variables leave the file value in place.
//
// # Paths
//
// The config path and log_dir accept "~" for the home directory; relative
// paths are made absolute against the working directory.
package config
