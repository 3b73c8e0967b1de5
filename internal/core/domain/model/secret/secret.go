package secret

import (
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"keygen/internal/pkg/errs"
)

var (
	// ErrSecretIsNotConstructed is returned when a Secret instance was not created
	// through one of the factory methods. This ensures all secrets are validated.
	ErrSecretIsNotConstructed = errors.New("Secret must be created via NewSecret, NewSecretWithKey, or RestoreSecret")
)

// MaxKeyLength is the maximum length of a stored key.
const MaxKeyLength = 50

// keyLength is the length of generated keys. Matches MaxKeyLength so a
// generated key always fills the column.
const keyLength = 50

// keyCharset is the alphabet used for key generation. Letters, digits, and a
// set of punctuation characters safe for use in configuration files.
const keyCharset = "abcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*(-_=+)"

// Secret is the aggregate root of this application: a generated key string
// together with its creation timestamp.
//
// Secret follows these invariants:
//   - Key must be non-empty and at most MaxKeyLength characters
//   - Created is set once and never changes
//   - Secrets are immutable after creation; there is no update path
//   - Can only be created through the factory functions
//
// The surrogate id is assigned by the database on insert; an unsaved Secret
// reports an id of zero.
type Secret struct {
	// id is the database-assigned surrogate identifier (0 until persisted)
	id int64

	// created is the insertion timestamp, immutable after construction
	created time.Time

	// key is the secret value, at most MaxKeyLength characters
	key string

	// isConstructed ensures the secret was created via a factory function
	isConstructed bool
}

// GenerateKey produces a new random key of keyLength characters drawn from
// keyCharset using a cryptographically secure source.
func GenerateKey() (string, error) {
	charsetLen := big.NewInt(int64(len(keyCharset)))
	buf := make([]byte, keyLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", err
		}
		buf[i] = keyCharset[n.Int64()]
	}
	return string(buf), nil
}

// NewSecret creates a Secret with a freshly generated random key and the
// current time as its creation timestamp.
//
// Example:
//
//	s, err := secret.NewSecret()
//	if err != nil {
//	    return fmt.Errorf("failed to generate secret: %w", err)
//	}
//	fmt.Println(s.Key())
func NewSecret() (*Secret, error) {
	key, err := GenerateKey()
	if err != nil {
		return nil, err
	}
	return NewSecretWithKey(key)
}

// NewSecretWithKey creates a Secret holding the supplied key.
// The key must be non-empty and at most MaxKeyLength characters.
func NewSecretWithKey(key string) (*Secret, error) {
	s := &Secret{
		created:       time.Now().UTC(),
		isConstructed: true,
	}

	if err := s.setKey(key); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSecret reconstructs a Secret from its persisted state.
// Used by the persistence layer when loading rows from the database.
func RestoreSecret(id int64, created time.Time, key string) (*Secret, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if created.IsZero() {
		return nil, errs.NewValueIsRequiredError("created")
	}

	s := &Secret{
		id:            id,
		created:       created,
		isConstructed: true,
	}

	if err := s.setKey(key); err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the database-assigned identifier, or 0 if the secret has not
// been persisted yet.
func (s *Secret) ID() int64 {
	return s.id
}

// Created returns the creation timestamp.
func (s *Secret) Created() time.Time {
	return s.created
}

// Key returns the secret key value.
func (s *Secret) Key() string {
	return s.key
}

// Validate ensures the secret was created through a factory function and
// still satisfies its invariants.
func (s *Secret) Validate() error {
	if !s.isConstructed {
		return ErrSecretIsNotConstructed
	}
	if s.key == "" {
		return errs.NewValueIsRequiredError("key")
	}
	if len(s.key) > MaxKeyLength {
		return errs.NewValueIsOutOfRangeError("key length", len(s.key), 1, MaxKeyLength)
	}
	return nil
}

func (s *Secret) setKey(key string) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}
	if len(key) > MaxKeyLength {
		return errs.NewValueIsOutOfRangeError("key length", len(key), 1, MaxKeyLength)
	}
	s.key = key
	return nil
}
