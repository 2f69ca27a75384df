// Package config loads runtime settings for the FeedLink CLI.
//
// Values are layered, later sources overriding earlier ones:
//
//  1. Compiled-in defaults (Config.LoadDefaults).
//  2. A JSON config file passed via -c/-config.
//  3. Command-line flags (-a, -t, -i, -d).
//  4. A base-URL override found in persistent client storage
//     (Config.ApplyStoredBaseURL), mirroring how the web client honored a
//     stored apiBaseUrl value.
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// duration strings ("10s") or integer nanoseconds.
package config
