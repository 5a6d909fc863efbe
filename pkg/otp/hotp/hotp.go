// Package hotp generates counter-based one-time passwords per RFC 4226.
package hotp

import (
	"crypto/subtle"
	"encoding/binary"
	"fmt"

	"github.com/jeremyhahn/go-otp/pkg/otp"
)

// HOTP generates counter-based one-time passwords.
// It is immutable after construction and safe for concurrent use.
type HOTP struct {
	secret    []byte
	algorithm otp.Algorithm
}

// Option configures an HOTP generator.
type Option func(*HOTP)

// WithAlgorithm selects a non-default hash algorithm. RFC 4226
// specifies SHA1; other algorithms break interoperability with
// verifiers that expect it.
func WithAlgorithm(algorithm otp.Algorithm) Option {
	return func(h *HOTP) {
		h.algorithm = algorithm
	}
}

// New creates an HOTP generator from raw secret bytes. The secret is
// copied; the caller's slice is never retained.
func New(secret []byte, opts ...Option) *HOTP {
	h := &HOTP{
		secret:    make([]byte, len(secret)),
		algorithm: otp.AlgorithmSHA1,
	}
	copy(h.secret, secret)
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// FromText creates an HOTP generator from a UTF-8 text secret,
// using the text's byte representation as the key.
func FromText(secret string, opts ...Option) *HOTP {
	return New([]byte(secret), opts...)
}

// FromBase32 creates an HOTP generator from a base32-encoded secret
// (RFC 4648 alphabet, case-insensitive, padding optional), the
// encoding used in otpauth URIs.
func FromBase32(secret string, opts ...Option) (*HOTP, error) {
	decoded, err := otp.DecodeBase32Secret(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", otp.ErrInvalidSecret, err)
	}
	return New(decoded, opts...), nil
}

// FromKey creates an HOTP generator from a parsed otpauth key.
// The key must be of type hotp; its digit count and current counter
// remain available through the key's accessors.
func FromKey(key *otp.Key) (*HOTP, error) {
	if key.Type() != otp.TypeHOTP {
		return nil, fmt.Errorf("%w: %q", otp.ErrWrongType, key.Type())
	}
	return New(key.Secret(), WithAlgorithm(key.Algorithm())), nil
}

// Algorithm returns the configured hash algorithm.
func (h *HOTP) Algorithm() otp.Algorithm {
	return h.algorithm
}

// GenerateCode computes the OTP for the given counter value and digit
// count, following RFC 4226 §5.3/5.4: the counter is encoded as an
// 8-byte big-endian message, HMACed with the secret, dynamically
// truncated to a 31-bit value, and reduced modulo 10^digits.
//
// There is no error path: every counter is valid, and digits outside
// the practical 1..10 range merely degenerate (digits=0 always yields
// code 0).
func (h *HOTP) GenerateCode(counter uint64, digits int) otp.Result {
	var message [8]byte
	binary.BigEndian.PutUint64(message[:], counter)

	mac := h.algorithm.Sum(h.secret, message[:])

	// Dynamic truncation: the low nibble of the final byte selects a
	// 4-byte window, and the window's sign bit is cleared to keep the
	// value within 31 bits.
	offset := mac[len(mac)-1] & 0x0f
	binCode := binary.BigEndian.Uint32(mac[offset:offset+4]) & 0x7fffffff

	return otp.NewResult(uint32(uint64(binCode)%pow10(digits)), digits)
}

// Validate reports whether code matches the OTP for the given counter
// and digit count. The comparison is constant-time. No look-ahead
// window is applied; counter resynchronization is the caller's policy.
func (h *HOTP) Validate(code string, counter uint64, digits int) bool {
	want := h.GenerateCode(counter, digits).String()
	return subtle.ConstantTimeCompare([]byte(code), []byte(want)) == 1
}

// pow10 returns 10^n as a uint64, so that the modulo reduction stays
// exact for every digit count up to and including 10 (10^10 overflows
// uint32 but not uint64).
func pow10(n int) uint64 {
	result := uint64(1)
	for i := 0; i < n; i++ {
		result *= 10
	}
	return result
}
