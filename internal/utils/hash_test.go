package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test constants
const (
	testPassword      = "SecurePassword123!"
	testWrongPassword = "WrongPassword456!"
)

func TestGenerateSalt_Success(t *testing.T) {
	// Act
	salt, err := GenerateSalt()

	// Assert
	require.NoError(t, err, "GenerateSalt should not return error")
	assert.NotEmpty(t, salt, "Salt should not be empty")
}

func TestGenerateSalt_Unique(t *testing.T) {
	// Act
	salt1, err1 := GenerateSalt()
	salt2, err2 := GenerateSalt()

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEqual(t, salt1, salt2, "Two generated salts should differ")
}

func TestHashPassword_Success(t *testing.T) {
	// Arrange
	salt, err := GenerateSalt()
	require.NoError(t, err, "Setup: GenerateSalt should not fail")

	// Act
	hash, err := HashPassword(testPassword, salt)

	// Assert
	require.NoError(t, err, "HashPassword should not return error for valid input")
	assert.NotEmpty(t, hash, "Hash should not be empty")
	assert.NotEqual(t, testPassword, hash, "Hash should be different from password")
}

func TestHashPassword_Deterministic(t *testing.T) {
	// Arrange
	salt, err := GenerateSalt()
	require.NoError(t, err)

	// Act
	hash1, err1 := HashPassword(testPassword, salt)
	hash2, err2 := HashPassword(testPassword, salt)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, hash1, hash2, "Same password and salt should produce the same hash")
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	// Arrange
	salt1, err := GenerateSalt()
	require.NoError(t, err)
	salt2, err := GenerateSalt()
	require.NoError(t, err)

	// Act
	hash1, err1 := HashPassword(testPassword, salt1)
	hash2, err2 := HashPassword(testPassword, salt2)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEqual(t, hash1, hash2, "Same password with different salts should produce different hashes")
}

func TestHashPassword_EmptyInput(t *testing.T) {
	// Arrange
	salt, err := GenerateSalt()
	require.NoError(t, err)

	// Act
	_, errEmptyPassword := HashPassword("", salt)
	_, errEmptySalt := HashPassword(testPassword, "")

	// Assert
	assert.ErrorIs(t, errEmptyPassword, ErrEmptyInput, "Empty password should be rejected")
	assert.ErrorIs(t, errEmptySalt, ErrEmptyInput, "Empty salt should be rejected")
}

func TestHashPassword_MalformedSalt(t *testing.T) {
	// Act
	hash, err := HashPassword(testPassword, "not-valid-base64!!!")

	// Assert
	assert.Error(t, err, "Malformed salt should return error")
	assert.Empty(t, hash)
}

func TestVerifyPassword_Correct(t *testing.T) {
	// Arrange
	salt, err := GenerateSalt()
	require.NoError(t, err)
	hash, err := HashPassword(testPassword, salt)
	require.NoError(t, err, "Setup: HashPassword should not fail")

	// Act
	match := VerifyPassword(testPassword, salt, hash)

	// Assert
	assert.True(t, match, "Password should match its hash")
}

func TestVerifyPassword_Incorrect(t *testing.T) {
	// Arrange
	salt, err := GenerateSalt()
	require.NoError(t, err)
	hash, err := HashPassword(testPassword, salt)
	require.NoError(t, err, "Setup: HashPassword should not fail")

	// Act
	match := VerifyPassword(testWrongPassword, salt, hash)

	// Assert
	assert.False(t, match, "Wrong password should not match hash")
}

func TestVerifyPassword_MalformedSalt(t *testing.T) {
	// Act
	match := VerifyPassword(testPassword, "%%%not-base64%%%", "whatever")

	// Assert
	assert.False(t, match, "Malformed salt should yield false, not panic or error")
}

func TestVerifyPassword_TableDriven(t *testing.T) {
	testCases := []struct {
		name        string
		password    string
		testPass    string
		expectMatch bool
	}{
		{"correct_password", testPassword, testPassword, true},
		{"incorrect_password", testPassword, testWrongPassword, false},
		{"case_sensitive", "Password123", "password123", false},
		{"whitespace_matters", "Password123 ", "Password123", false},
		{"unicode_password", "Şifre123!", "Şifre123!", true},
		{"very_long_password", strings.Repeat("a", 1000), strings.Repeat("a", 1000), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			salt, err := GenerateSalt()
			require.NoError(t, err)
			hash, err := HashPassword(tc.password, salt)
			require.NoError(t, err, "Setup: HashPassword should not fail")

			// Act
			match := VerifyPassword(tc.testPass, salt, hash)

			// Assert
			assert.Equal(t, tc.expectMatch, match)
		})
	}
}

func BenchmarkHashPassword(b *testing.B) {
	salt, _ := GenerateSalt()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword(testPassword, salt)
	}
}
