package config

import (
	"path/filepath"
	"time"
)

type Config struct {
	ServerURL      string
	SessionFile    string
	RequestTimeout time.Duration
}

// LoadDefaults points the client at a local server and keeps the session
// next to the working directory.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000/api"
	c.SessionFile = filepath.Join(".blogctl", "session.json")
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig applies defaults, then the JSON file, then flags.
func LoadConfig() *Config {
	config := &Config{}
	config.LoadDefaults()
	parseJson(config)
	parseFlags(config)
	return config
}

// ValueFlags lists the client flags that take a value, so command
// positionals can be told apart from flag values.
func ValueFlags() []string {
	return []string{"-s", "-f", "-t", "-c", "-config"}
}
