package argon2id

// Package argon2id hashes passwords with Argon2id and encodes them in the
// standard PHC string format, so each digest carries its own salt and cost
// parameters.

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	apperrors "github.com/srec-coin/coin-backend/internal/errors"
)

// ErrMalformedDigest is returned when a stored digest cannot be parsed.
// Callers must not treat it as a wrong password.
var ErrMalformedDigest = errors.New("malformed password digest")

const (
	saltLength = 16
	keyLength  = 32
	phcVariant = "argon2id"
)

// Hasher is an Argon2id password hasher. The cost parameters are fields so
// tests can lower them; the zero value is not usable, construct with New.
type Hasher struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// New returns a Hasher with the production cost parameters
// (t=3, m=64 MiB, p=2).
func New() *Hasher {
	return &Hasher{Time: 3, Memory: 64 * 1024, Threads: 2}
}

// NewForTest returns a Hasher with minimal cost parameters. Test-only.
func NewForTest() *Hasher {
	return &Hasher{Time: 1, Memory: 8 * 1024, Threads: 1}
}

// Hash derives an Argon2id digest from password with a fresh random salt
// and returns the encoded PHC string, e.g.
//
//	$argon2id$v=19$m=65536,t=3,p=2$<b64 salt>$<b64 key>
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", apperrors.Hashing(err, "password hashing failed")
	}

	key := argon2.IDKey([]byte(password), salt, h.Time, h.Memory, h.Threads, keyLength)

	encoded := fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		phcVariant,
		argon2.Version,
		h.Memory,
		h.Time,
		h.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Verify reports whether password matches the encoded digest. The digest's
// embedded parameters are used for recomputation, so digests produced with
// older cost settings keep verifying. A mismatch returns (false, nil); a
// digest that cannot be parsed returns a hashing error.
func (h *Hasher) Verify(password, digest string) (bool, error) {
	params, salt, key, err := decodeDigest(digest)
	if err != nil {
		return false, apperrors.Hashing(err, "invalid password digest")
	}

	computed := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(computed, key) == 1, nil
}

type digestParams struct {
	time    uint32
	memory  uint32
	threads uint8
}

func decodeDigest(digest string) (digestParams, []byte, []byte, error) {
	var p digestParams

	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, nil, nil, ErrMalformedDigest
	}
	if parts[1] != phcVariant {
		return p, nil, nil, fmt.Errorf("%w: unsupported variant %q", ErrMalformedDigest, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, ErrMalformedDigest
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedDigest, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return p, nil, nil, ErrMalformedDigest
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return p, nil, nil, ErrMalformedDigest
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, ErrMalformedDigest
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return p, nil, nil, ErrMalformedDigest
	}

	return p, salt, key, nil
}
