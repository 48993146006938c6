// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"sync"
	"sync/atomic"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-settings-registry/internal/logger"
	"github.com/MKhiriev/go-settings-registry/internal/metrics"
)

// Registry is the process-wide settings store.
//
// Any number of goroutines may call [Registry.GetConfigValue] concurrently;
// [Registry.SetDefaults] and [Registry.ProcessConfigFile] take the lock
// exclusively for the duration of their update.
//
// A panic that escapes a critical section poisons the registry: the lock is
// released, the panic is propagated, and every later call panics with
// [ErrRegistryPoisoned]. Shared state left behind by an aborted update is
// never handed out.
type Registry struct {
	mu       sync.RWMutex
	values   map[string]string
	poisoned atomic.Bool

	unknownKeys UnknownKeysPolicy
	mergeMode   MergeMode
	parsers     map[string]Parser

	logger  *logger.Logger
	metrics *metrics.Metrics
}

// NewRegistry returns an empty registry configured by opts. Callers normally
// follow it with [Registry.SetDefaults].
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		values:      make(map[string]string),
		unknownKeys: UnknownKeysIgnore,
		mergeMode:   MergeThenValidate,
		parsers:     defaultParsers(),
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// SetDefaults seeds every known key that is not yet present with its
// default value. Keys already set, including ones set to an empty string,
// are left alone. It always returns [StatusSuccess].
func (r *Registry) SetDefaults() StatusCode {
	var seeded int
	r.write(func() {
		for _, s := range defaultSettings {
			if _, ok := r.values[s.key]; ok {
				continue
			}
			r.values[s.key] = s.value
			seeded++
		}
		r.metrics.SetEntries(len(r.values))
	})

	r.logger.Debug().Int("seeded", seeded).Msg("settings defaults applied")
	return StatusSuccess
}

// ProcessConfigFile loads the settings file at path and merges its entries
// into the registry: keys present in the file overwrite existing values,
// keys absent from the file keep theirs. The merged settings are then
// validated.
//
// Errors:
//   - [ErrConfigurationFileNotFound] if path is not an existing regular file;
//     the registry is not touched.
//   - [ErrConfigurationParseFailure] if the file cannot be decoded; the
//     registry is not touched.
//   - a [*ValidationError] (matching [ErrInvalidConfigurationValue]) if
//     validation fails. Under [MergeThenValidate] the merged values stay in
//     the registry; under [ValidateThenMerge] nothing is applied.
func (r *Registry) ProcessConfigFile(path string) (StatusCode, error) {
	log := r.logger.With().Str("path", path).Logger()

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		r.metrics.ObserveLoad(metrics.ResultNotFound)
		log.Warn().Msg("settings file not found")
		return CodeOf(ErrConfigurationFileNotFound), fmt.Errorf("%w: %s", ErrConfigurationFileNotFound, path)
	}

	incoming, err := r.parseFile(path)
	if err != nil {
		r.metrics.ObserveLoad(metrics.ResultParseFailure)
		log.Error().Err(err).Msg("settings file could not be parsed")
		return CodeOf(err), err
	}

	if r.mergeMode == ValidateThenMerge {
		err = r.validateAndCommit(incoming)
	} else {
		err = r.mergeAndValidate(incoming)
	}

	if err != nil {
		r.metrics.ObserveLoad(metrics.ResultInvalid)
		var verr *ValidationError
		if errors.As(err, &verr) {
			log.Warn().Strs("keys", verr.Keys()).Str("merge_mode", string(r.mergeMode)).Msg("settings file failed validation")
		}
		return CodeOf(err), err
	}

	r.metrics.ObserveLoad(metrics.ResultSuccess)
	log.Info().Int("entries", len(incoming)).Msg("settings file merged")
	return StatusSuccess, nil
}

func (r *Registry) mergeAndValidate(incoming map[string]string) error {
	var err error
	r.write(func() {
		err = mergeSettings(&r.values, incoming)
		r.metrics.SetEntries(len(r.values))
	})
	if err != nil {
		return err
	}

	return r.ValidateConfig()
}

func (r *Registry) validateAndCommit(incoming map[string]string) error {
	var err error
	r.write(func() {
		staged := maps.Clone(r.values)
		if err = mergeSettings(&staged, incoming); err != nil {
			return
		}
		if err = validate(staged, r.unknownKeys); err != nil {
			return
		}
		r.values = staged
		r.metrics.SetEntries(len(r.values))
	})

	return err
}

// ValidateConfig checks a snapshot of the registry. Known name keys
// ([KeyPoolName], [KeyPoolConfigName], [KeyWalletName]) must consist of
// letters, digits and underscores only. [KeyWalletType] and
// [KeyAgentEndpoint] are not checked. Unknown keys are handled according to
// the registry's [UnknownKeysPolicy].
//
// It returns nil or a [*ValidationError] naming every rejected setting.
func (r *Registry) ValidateConfig() error {
	return validate(r.Snapshot(), r.unknownKeys)
}

// GetConfigValue returns the value stored under key, or
// [ErrInvalidConfiguration] if the key is not present.
func (r *Registry) GetConfigValue(key string) (string, error) {
	var (
		value string
		ok    bool
	)
	r.read(func() {
		value, ok = r.values[key]
	})

	r.metrics.ObserveLookup(ok)
	if !ok {
		return "", fmt.Errorf("%w: key %q is not set", ErrInvalidConfiguration, key)
	}

	return value, nil
}

// Snapshot returns a copy of all settings taken under the read lock.
func (r *Registry) Snapshot() map[string]string {
	var snapshot map[string]string
	r.read(func() {
		snapshot = maps.Clone(r.values)
	})

	return snapshot
}

// Len returns the number of settings currently stored.
func (r *Registry) Len() int {
	var n int
	r.read(func() {
		n = len(r.values)
	})

	return n
}

func (r *Registry) write(fn func()) {
	r.checkPoisoned()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkPoisoned()
	defer r.poisonOnPanic()

	fn()
}

func (r *Registry) read(fn func()) {
	r.checkPoisoned()

	r.mu.RLock()
	defer r.mu.RUnlock()
	r.checkPoisoned()
	defer r.poisonOnPanic()

	fn()
}

// checkPoisoned is called both before and after the lock is taken: a caller
// that was already waiting when a writer panicked must not see its state.
func (r *Registry) checkPoisoned() {
	if r.poisoned.Load() {
		panic(ErrRegistryPoisoned)
	}
}

// poisonOnPanic must be deferred after the lock is taken so that it runs
// before the unlock.
func (r *Registry) poisonOnPanic() {
	if p := recover(); p != nil {
		r.poisoned.Store(true)
		r.logger.Error().Interface("panic", p).Msg("settings registry poisoned")
		panic(p)
	}
}

// mergeSettings overlays src onto *dst, overwriting values on key collision.
func mergeSettings(dst *map[string]string, src map[string]string) error {
	if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("error merging settings: %w", err)
	}

	return nil
}
