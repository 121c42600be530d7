package auth

import "golang.org/x/crypto/bcrypt"

// HashCost matches the original deployment so existing hashes stay valid.
const HashCost = 10

// HashPassword derives a salted one-way hash from a plaintext password.
// Callers invoke this exactly once per plaintext change.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
