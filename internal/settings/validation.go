package settings

import (
	"slices"
	"unicode"
)

// Reasons attached to an [InvalidSetting].
const (
	reasonInvalidSetting = "has invalid setting: "
	reasonUnknownKey     = "is not a known setting"
)

// nameKeys are the known keys whose values must pass [IsValidName].
var nameKeys = map[string]struct{}{
	KeyPoolName:       {},
	KeyPoolConfigName: {},
	KeyWalletName:     {},
}

// IsValidName reports whether every rune of value is alphabetic, a number or
// an underscore. Alphabetic follows the Unicode Alphabetic property, so vowel
// signs such as Devanagari U+093F count while combining accents do not. The
// empty string is valid.
func IsValidName(value string) bool {
	for _, c := range value {
		if !isAlphabetic(c) && !unicode.IsNumber(c) && c != '_' {
			return false
		}
	}
	return true
}

func isAlphabetic(c rune) bool {
	return unicode.IsLetter(c) || unicode.Is(unicode.Nl, c) || unicode.Is(unicode.Other_Alphabetic, c)
}

func validate(values map[string]string, unknownKeys UnknownKeysPolicy) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var invalid []InvalidSetting
	for _, key := range keys {
		value := values[key]

		switch {
		case isNameKey(key):
			if !IsValidName(value) {
				invalid = append(invalid, InvalidSetting{Key: key, Value: value, Reason: reasonInvalidSetting + value})
			}
		case key == KeyAgentEndpoint, key == KeyWalletType:
			// TODO: validate KeyAgentEndpoint as an absolute http(s) URL.
		case unknownKeys == UnknownKeysReject:
			invalid = append(invalid, InvalidSetting{Key: key, Value: value, Reason: reasonUnknownKey})
		}
	}

	if len(invalid) > 0 {
		return &ValidationError{Settings: invalid}
	}

	return nil
}

func isNameKey(key string) bool {
	_, ok := nameKeys[key]
	return ok
}
