package password

import "golang.org/x/crypto/bcrypt"

// Cost 12: slower than the default 10, still acceptable for an
// interactive login flow.
const cost = 12

// Hash returns a salted bcrypt hash of the plaintext password.
// The plaintext is never stored or logged anywhere.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored hash.
// bcrypt.CompareHashAndPassword is constant-time.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
