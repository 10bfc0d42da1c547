package service

import "golang.org/x/crypto/bcrypt"

// hashPassword produces a salted bcrypt digest. The salt is random, so the
// same plaintext yields a different digest on every call.
func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword reports whether plaintext matches the stored digest.
// A malformed digest is a verification failure, not an error.
func verifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
