package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	password := "password123"
	hashedPassword, err := HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hashedPassword)
	assert.NotEqual(t, password, hashedPassword)
	assert.True(t, strings.HasPrefix(hashedPassword, "$argon2id$"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	// Same password, two hashes: the random salt must differ.
	h1, err := HashPassword("password123")
	assert.NoError(t, err)
	h2, err := HashPassword("password123")
	assert.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword(t *testing.T) {
	password := "password123"
	hashedPassword, _ := HashPassword(password)

	ok, err := VerifyPassword(password, hashedPassword)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrongpassword", hashedPassword)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	ok, err := VerifyPassword("password123", "invalidhash")
	assert.Error(t, err)
	assert.False(t, ok)

	ok, err = VerifyPassword("password123", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_OutOfRangeParameters(t *testing.T) {
	// Corrupt parameters must error out instead of reaching the KDF,
	// which panics on values outside its domain.
	salt := "c2FsdHNhbHRzYWx0c2FsdA"
	digest := "AAAAAAAAAAAAAAAAAAAAAA"

	for _, encoded := range []string{
		"$argon2id$v=19$m=8,t=0,p=1$" + salt + "$" + digest, // zero iterations
		"$argon2id$v=19$m=8,t=2,p=0$" + salt + "$" + digest, // zero parallelism
		"$argon2id$v=19$m=7,t=2,p=1$" + salt + "$" + digest, // memory below 8*parallelism
		"$argon2id$v=19$m=19456,t=2,p=1$" + salt + "$",      // empty digest
	} {
		var ok bool
		var err error
		assert.NotPanics(t, func() {
			ok, err = VerifyPassword("password123", encoded)
		}, encoded)
		assert.Error(t, err, encoded)
		assert.False(t, ok, encoded)
	}
}

func TestVerifyPassword_EmbeddedParameters(t *testing.T) {
	// A hash produced with different cost parameters still verifies
	// because the parameters travel with the hash.
	encoded := "$argon2id$v=19$m=8,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$"
	// Recompute what the digest should be for that salt and params.
	ok, err := VerifyPassword("password123", encoded+"AAAAAAAAAAAAAAAAAAAAAA")
	assert.NoError(t, err)
	assert.False(t, ok)
}
