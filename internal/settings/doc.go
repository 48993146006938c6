// Package settings implements the process-wide settings registry.
//
// A [Registry] holds flat key/value settings guarded by a reader/writer
// lock. It is seeded with defaults for the known keys ([KeyPoolName],
// [KeyPoolConfigName], [KeyWalletName], [KeyWalletType],
// [KeyAgentEndpoint]), merges values loaded from a settings file and
// validates the known keys after every merge.
//
// The registry is created once at process start with [NewRegistry] and
// passed by pointer to every consumer; the package holds no global state.
//
// Typical startup sequence:
//
//	reg := settings.NewRegistry(settings.WithLogger(log))
//	reg.SetDefaults()
//	if _, err := reg.ProcessConfigFile(path); err != nil {
//	    // report; a validation failure leaves the merge applied
//	}
//	wallet, err := reg.GetConfigValue(settings.KeyWalletName)
package settings
