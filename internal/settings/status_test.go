package settings

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want StatusCode
	}{
		{name: "nil", err: nil, want: StatusSuccess},
		{name: "not found", err: fmt.Errorf("%w: x", ErrConfigurationFileNotFound), want: StatusInvalidConfiguration},
		{name: "parse failure", err: ErrConfigurationParseFailure, want: StatusInvalidConfiguration},
		{name: "validation", err: &ValidationError{Settings: []InvalidSetting{{Key: "k"}}}, want: StatusInvalidConfiguration},
		{name: "lookup", err: ErrInvalidConfiguration, want: StatusInvalidConfiguration},
		{name: "other", err: errors.New("disk on fire"), want: StatusUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestKnownKeys(t *testing.T) {
	assert.Equal(t, []string{KeyPoolName, KeyPoolConfigName, KeyWalletName, KeyWalletType, KeyAgentEndpoint}, KnownKeys())

	for _, key := range KnownKeys() {
		assert.True(t, IsKnownKey(key), key)
	}
	assert.False(t, IsKnownKey("garbage"))
}

func TestParseUnknownKeysPolicy(t *testing.T) {
	p, err := ParseUnknownKeysPolicy("")
	assert.NoError(t, err)
	assert.Equal(t, UnknownKeysIgnore, p)

	p, err = ParseUnknownKeysPolicy("reject")
	assert.NoError(t, err)
	assert.Equal(t, UnknownKeysReject, p)

	_, err = ParseUnknownKeysPolicy("maybe")
	assert.Error(t, err)
}

func TestParseMergeMode(t *testing.T) {
	m, err := ParseMergeMode("")
	assert.NoError(t, err)
	assert.Equal(t, MergeThenValidate, m)

	m, err = ParseMergeMode("validate-then-merge")
	assert.NoError(t, err)
	assert.Equal(t, ValidateThenMerge, m)

	_, err = ParseMergeMode("rollback")
	assert.Error(t, err)
}
