package crypto

import "github.com/pkg/errors"

var (
	// ErrSigning is returned when the signature primitive cannot produce a
	// signature, e.g. for malformed key material.
	ErrSigning = errors.New("signing failed")

	// ErrVerification is the single outcome of every failed verification.
	// A bad signature, a wrong payload, a wrong intent and a wrong identity
	// all yield this same value.
	ErrVerification = errors.New("signature verification failed")
)
