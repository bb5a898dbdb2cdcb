package argon2id

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/srec-coin/coin-backend/internal/errors"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	h := NewForTest()

	digest, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$"))

	ok, err := h.Verify("correct horse battery staple", digest)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_WrongPassword(t *testing.T) {
	h := NewForTest()

	digest, err := h.Hash("password-one")
	require.NoError(t, err)

	ok, err := h.Verify("password-two", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHash_SaltedDigestsDiffer(t *testing.T) {
	h := NewForTest()

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, digest := range []string{first, second} {
		ok, verifyErr := h.Verify("same-password", digest)
		require.NoError(t, verifyErr)
		assert.True(t, ok)
	}
}

func TestVerify_MalformedDigest(t *testing.T) {
	h := NewForTest()

	cases := map[string]string{
		"empty":             "",
		"not a phc string":  "plaintext",
		"wrong variant":     "$bcrypt$v=19$m=8192,t=1,p=1$c2FsdA$a2V5",
		"missing sections":  "$argon2id$v=19$m=8192,t=1,p=1",
		"bad base64 salt":   "$argon2id$v=19$m=8192,t=1,p=1$!!!$a2V5",
		"zero cost":         "$argon2id$v=19$m=0,t=0,p=0$c2FsdA$a2V5",
		"garbage params":    "$argon2id$v=19$m=abc,t=1,p=1$c2FsdA$a2V5",
		"unsupported vers.": "$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$a2V5",
	}

	for name, digest := range cases {
		t.Run(name, func(t *testing.T) {
			ok, err := h.Verify("whatever", digest)
			assert.False(t, ok)
			require.Error(t, err)
			assert.True(t, apperrors.IsHashing(err), "expected a hashing error, got %v", err)
			assert.True(t, errors.Is(err, ErrMalformedDigest))
		})
	}
}

func TestVerify_ParamsFromDigestNotHasher(t *testing.T) {
	// Digests hashed under old cost settings must keep verifying after the
	// hasher's parameters change.
	old := &Hasher{Time: 1, Memory: 8 * 1024, Threads: 1}
	digest, err := old.Hash("migrating-password")
	require.NoError(t, err)

	current := &Hasher{Time: 2, Memory: 16 * 1024, Threads: 2}
	ok, err := current.Verify("migrating-password", digest)
	require.NoError(t, err)
	assert.True(t, ok)
}
