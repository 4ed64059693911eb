package config

import "os"

type keySpec struct {
	key     string
	env     string
	apply   func(cfg *Config, v string)
	extract func(cfg Config) string
}

var specs = []keySpec{
	{
		key: "user.name", env: "INBOXIQ_USER_NAME",
		apply:   func(cfg *Config, v string) { cfg.User.Name = v },
		extract: func(cfg Config) string { return cfg.User.Name },
	},
	{
		key: "chat.response_delay", env: "INBOXIQ_CHAT_RESPONSE_DELAY",
		apply:   func(cfg *Config, v string) { cfg.Chat.ResponseDelay = v },
		extract: func(cfg Config) string { return cfg.Chat.ResponseDelay },
	},
	{
		key: "chat.fallback", env: "INBOXIQ_CHAT_FALLBACK",
		apply:   func(cfg *Config, v string) { cfg.Chat.Fallback = v },
		extract: func(cfg Config) string { return cfg.Chat.Fallback },
	},
	{
		key: "log.level", env: "INBOXIQ_LOG_LEVEL",
		apply:   func(cfg *Config, v string) { cfg.Log.Level = v },
		extract: func(cfg Config) string { return cfg.Log.Level },
	},
}

func applyEnvOverrides(cfg *Config) {
	for _, s := range specs {
		if v := os.Getenv(s.env); v != "" {
			s.apply(cfg, v)
		}
	}
}

// KeyValue is one effective configuration entry for display.
type KeyValue struct {
	Key   string
	Value string
}

// ShowAll returns the effective scalar config as key/value pairs, in
// declaration order. The rule table is omitted; it is shown by the
// rules command instead.
func ShowAll(cfg Config) []KeyValue {
	out := make([]KeyValue, 0, len(specs))
	for _, s := range specs {
		out = append(out, KeyValue{Key: s.key, Value: s.extract(cfg)})
	}
	return out
}
