// Package password wraps bcrypt hashing for credential storage. The cost
// factor is fixed and embedded in the produced hash, so verification needs
// nothing beyond the hash string itself.
package password

import "golang.org/x/crypto/bcrypt"

// hashCost matches bcrypt's default work factor of 10.
const hashCost = bcrypt.DefaultCost

// Hash derives a salted bcrypt hash from the plaintext. The plaintext is
// never logged or stored.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored hash. A malformed hash
// string yields false rather than an error: the caller only ever needs a
// yes/no answer on the login path.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
