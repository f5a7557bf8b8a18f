// Package config loads runtime configuration for the blogctl client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-s string   base URL of the blog API, prefix included
//	-f string   path of the session file
//	-t int      request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:5000/api",
//	  "session_file": ".blogctl/session.json",
//	  "request_timeout": "10s"
//	}
package config
