package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher defines the interface for hashing and verifying passwords.
type PasswordHasher interface {
	// Hash computes a one-way, salted hash of the plaintext password.
	Hash(password string) (string, error)

	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on success, or an error on failure
	// (mismatch or malformed stored hash).
	Compare(hashedPassword, password string) error
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a new BcryptHasher with the given cost factor.
// A cost of zero selects bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash implements the PasswordHasher interface using bcrypt.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncateForBcrypt(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare implements the PasswordHasher interface using bcrypt.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), truncateForBcrypt(password))
}

// truncateForBcrypt caps the input at 72 bytes. bcrypt only consumes the
// first 72 bytes of a password, and GenerateFromPassword rejects longer
// inputs outright, so anything beyond that must be dropped before hashing.
// Hash and Compare apply the same truncation, so longer passwords still
// round-trip.
func truncateForBcrypt(password string) []byte {
	b := []byte(password)
	if len(b) > 72 {
		b = b[:72]
	}
	return b
}
