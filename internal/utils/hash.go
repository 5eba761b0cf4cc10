package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyAPIKey is returned when an empty api key is hashed.
var ErrEmptyAPIKey = errors.New("api key is empty")

// HashAPIKey hashes key with bcrypt so the plain key does not have to be kept
// in memory by request handlers.
//
// Example usage:
//
//	hash, err := utils.HashAPIKey("secret")
func HashAPIKey(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyAPIKey
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash api key: %w", err)
	}

	return hash, nil
}

// CompareAPIKey reports whether key matches hash produced by [HashAPIKey].
// The comparison takes the same time for every wrong key of equal length.
func CompareAPIKey(hash []byte, key string) bool {
	if len(hash) == 0 || key == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword(hash, []byte(key)) == nil
}
