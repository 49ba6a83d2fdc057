package config

import "github.com/spf13/pflag"

// AddClientFlags registers the web client's overrides on flagSet. The
// current config values are the defaults, so flags win over the environment.
func (c *Config) AddClientFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.Port, "port", c.Port, "port the web client listens on (all interfaces)")
	flagSet.StringVar(&c.APIBaseURL, "api-base", c.APIBaseURL, "base URL of the events API")
	flagSet.StringVar(&c.SessionStore, "session-store", c.SessionStore, `where the session is persisted: "file" or "postgres"`)
	flagSet.StringVar(&c.SessionFile, "session-file", c.SessionFile, "session document path for the file store")
}

// AddDevAPIFlags registers the development API's overrides on flagSet.
func (c *Config) AddDevAPIFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.DevAPIPort, "port", c.DevAPIPort, "port the development API listens on (all interfaces)")
	flagSet.StringVar(&c.Mail.Provider, "mail-provider", c.Mail.Provider, `welcome mail provider: "noop" or "ses"`)
}
