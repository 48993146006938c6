package settings

// Known setting keys. Other components of the application look settings up
// by these names.
const (
	KeyPoolName       = "pool_name"
	KeyPoolConfigName = "config_name"
	KeyWalletName     = "wallet_name"
	KeyWalletType     = "wallet_type"
	KeyAgentEndpoint  = "agent_endpoint"
)

// Default values seeded by [Registry.SetDefaults].
const (
	DefaultPoolName       = "pool1"
	DefaultPoolConfigName = "config1"
	DefaultWalletName     = "wallet1"
	DefaultWalletType     = "default"
	DefaultAgentEndpoint  = "http://127.0.0.1:8080"
)

type setting struct {
	key   string
	value string
}

var defaultSettings = []setting{
	{key: KeyPoolName, value: DefaultPoolName},
	{key: KeyPoolConfigName, value: DefaultPoolConfigName},
	{key: KeyWalletName, value: DefaultWalletName},
	{key: KeyWalletType, value: DefaultWalletType},
	{key: KeyAgentEndpoint, value: DefaultAgentEndpoint},
}

// KnownKeys returns the known setting keys in their canonical order.
func KnownKeys() []string {
	keys := make([]string, 0, len(defaultSettings))
	for _, s := range defaultSettings {
		keys = append(keys, s.key)
	}
	return keys
}

// IsKnownKey reports whether key is one of the known setting keys.
func IsKnownKey(key string) bool {
	for _, s := range defaultSettings {
		if s.key == key {
			return true
		}
	}
	return false
}
