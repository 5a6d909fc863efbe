package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"
)

// Algorithm represents the keyed-hash function used for OTP generation.
//
// SHA1 is the algorithm mandated by RFC 4226 and RFC 6238 for
// interoperability; SHA256 and SHA512 are the extensions defined by
// RFC 6238. Note that not all authenticator apps support SHA256 and
// SHA512.
type Algorithm string

const (
	// AlgorithmSHA1 uses HMAC-SHA1 (default, widely supported).
	AlgorithmSHA1 Algorithm = "SHA1"
	// AlgorithmSHA256 uses HMAC-SHA256.
	AlgorithmSHA256 Algorithm = "SHA256"
	// AlgorithmSHA512 uses HMAC-SHA512.
	AlgorithmSHA512 Algorithm = "SHA512"
)

// ParseAlgorithm converts an otpauth algorithm token into an Algorithm.
// Matching is case-insensitive. An empty string selects the default
// SHA1; any other unrecognized token returns ErrUnknownAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	if s == "" {
		return AlgorithmSHA1, nil
	}
	switch alg := Algorithm(strings.ToUpper(s)); alg {
	case AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512:
		return alg, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Sum computes the HMAC of message keyed with secret, returning the
// full digest output (20 bytes for SHA1, 32 for SHA256, 64 for SHA512).
// Any secret and message, including empty ones, are valid inputs.
func (a Algorithm) Sum(secret, message []byte) []byte {
	mac := hmac.New(a.hash(), secret)
	mac.Write(message)
	return mac.Sum(nil)
}

func (a Algorithm) hash() func() hash.Hash {
	switch a {
	case AlgorithmSHA256:
		return sha256.New
	case AlgorithmSHA512:
		return sha512.New
	default:
		return sha1.New
	}
}
