package settings

import (
	"fmt"

	"github.com/MKhiriev/go-settings-registry/internal/logger"
	"github.com/MKhiriev/go-settings-registry/internal/metrics"
)

// UnknownKeysPolicy controls how validation treats keys that are not one of
// the known setting keys.
type UnknownKeysPolicy string

const (
	// UnknownKeysIgnore accepts unknown keys without any check.
	UnknownKeysIgnore UnknownKeysPolicy = "ignore"
	// UnknownKeysReject reports every unknown key as a validation failure.
	UnknownKeysReject UnknownKeysPolicy = "reject"
)

// ParseUnknownKeysPolicy converts s to an [UnknownKeysPolicy]. An empty
// string yields [UnknownKeysIgnore].
func ParseUnknownKeysPolicy(s string) (UnknownKeysPolicy, error) {
	switch UnknownKeysPolicy(s) {
	case "", UnknownKeysIgnore:
		return UnknownKeysIgnore, nil
	case UnknownKeysReject:
		return UnknownKeysReject, nil
	default:
		return "", fmt.Errorf("unknown keys policy %q: want %q or %q", s, UnknownKeysIgnore, UnknownKeysReject)
	}
}

// MergeMode controls whether a settings file is validated before or after
// it is merged into the registry.
type MergeMode string

const (
	// MergeThenValidate applies the merge first and validates the result.
	// A validation failure leaves the merged values in place.
	MergeThenValidate MergeMode = "merge-then-validate"
	// ValidateThenMerge validates a staged copy and commits it only when
	// it passes, so a failed load leaves the registry unchanged.
	ValidateThenMerge MergeMode = "validate-then-merge"
)

// ParseMergeMode converts s to a [MergeMode]. An empty string yields
// [MergeThenValidate].
func ParseMergeMode(s string) (MergeMode, error) {
	switch MergeMode(s) {
	case "", MergeThenValidate:
		return MergeThenValidate, nil
	case ValidateThenMerge:
		return ValidateThenMerge, nil
	default:
		return "", fmt.Errorf("merge mode %q: want %q or %q", s, MergeThenValidate, ValidateThenMerge)
	}
}

// Option configures a [Registry] at construction time.
type Option func(*Registry)

// WithUnknownKeys sets the policy applied to unknown keys during validation.
func WithUnknownKeys(policy UnknownKeysPolicy) Option {
	return func(r *Registry) {
		r.unknownKeys = policy
	}
}

// WithMergeMode sets the order of merge and validation in
// [Registry.ProcessConfigFile].
func WithMergeMode(mode MergeMode) Option {
	return func(r *Registry) {
		r.mergeMode = mode
	}
}

// WithLogger sets the logger used for load and validation events.
func WithLogger(l *logger.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation of loads and lookups.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithParser registers p for files with the given extension (including the
// leading dot), replacing any built-in parser for it.
func WithParser(ext string, p Parser) Option {
	return func(r *Registry) {
		r.parsers[ext] = p
	}
}
