package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain_text", "Toyota", "Toyota"},
		{"underscore", "Test_Data", "Test[_]Data"},
		{"percent", "50%", "50[%]"},
		{"bracket", "a[b", "a[[b"},
		{"bracket_then_percent", "[%", "[[[%]"},
		{"all_metacharacters", "a[b%c_d", "a[[b[%]c[_]d"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EscapeLikePattern(tc.input))
		})
	}
}

func TestEscapeLikeBackslash(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain_text", "Toyota", "Toyota"},
		{"underscore", "Test_Data", `Test\_Data`},
		{"percent", "50%", `50\%`},
		{"backslash", `a\b`, `a\\b`},
		{"backslash_then_percent", `\%`, `\\\%`},
		{"all_metacharacters", `a\b%c_d`, `a\\b\%c\_d`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, escapeLikeBackslash(tc.input))
		})
	}
}

func TestToContainsPattern(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty_matches_everything", "", "%"},
		{"whitespace_only_matches_everything", "   ", "%"},
		{"plain_text", "Toyota", "%Toyota%"},
		{"trims_surrounding_whitespace", "  Civic  ", "%Civic%"},
		{"escapes_metacharacters", "Test_Data", `%Test\_Data%`},
		{"escapes_percent", "50%", `%50\%%`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ToContainsPattern(tc.input))
		})
	}
}
