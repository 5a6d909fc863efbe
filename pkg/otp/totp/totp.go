// Package totp generates time-based one-time passwords per RFC 6238.
package totp

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/jeremyhahn/go-otp/pkg/otp"
	"github.com/jeremyhahn/go-otp/pkg/otp/hotp"
)

// Default TOTP parameters per RFC 6238.
const (
	// DefaultPeriod is the default time step in seconds.
	DefaultPeriod uint64 = 30
	// DefaultStartTime is the default epoch offset (T0) in Unix seconds.
	DefaultStartTime uint64 = 0
)

// TOTP generates time-based one-time passwords by deriving a counter
// from wall-clock time and delegating to the HOTP algorithm.
// It is immutable after construction and safe for concurrent use.
type TOTP struct {
	hotp      *hotp.HOTP
	algorithm otp.Algorithm
	period    uint64
	start     uint64
}

// Option configures a TOTP generator.
type Option func(*TOTP)

// WithAlgorithm selects a non-default hash algorithm.
func WithAlgorithm(algorithm otp.Algorithm) Option {
	return func(t *TOTP) {
		t.algorithm = algorithm
	}
}

// WithPeriod sets the time step in seconds. Default: 30.
func WithPeriod(period uint64) Option {
	return func(t *TOTP) {
		t.period = period
	}
}

// WithStartTime sets the epoch offset (T0) in Unix seconds from which
// time steps are counted. Default: 0.
func WithStartTime(start uint64) Option {
	return func(t *TOTP) {
		t.start = start
	}
}

// New creates a TOTP generator from raw secret bytes. The secret is
// copied; the caller's slice is never retained.
func New(secret []byte, opts ...Option) *TOTP {
	t := &TOTP{
		algorithm: otp.AlgorithmSHA1,
		period:    DefaultPeriod,
		start:     DefaultStartTime,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.hotp = hotp.New(secret, hotp.WithAlgorithm(t.algorithm))
	return t
}

// FromText creates a TOTP generator from a UTF-8 text secret,
// using the text's byte representation as the key.
func FromText(secret string, opts ...Option) *TOTP {
	return New([]byte(secret), opts...)
}

// FromBase32 creates a TOTP generator from a base32-encoded secret
// (RFC 4648 alphabet, case-insensitive, padding optional).
func FromBase32(secret string, opts ...Option) (*TOTP, error) {
	decoded, err := otp.DecodeBase32Secret(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", otp.ErrInvalidSecret, err)
	}
	return New(decoded, opts...), nil
}

// FromKey creates a TOTP generator from a parsed otpauth key, adopting
// the key's algorithm and period. The key must be of type totp.
func FromKey(key *otp.Key) (*TOTP, error) {
	if key.Type() != otp.TypeTOTP {
		return nil, fmt.Errorf("%w: %q", otp.ErrWrongType, key.Type())
	}
	return New(key.Secret(),
		WithAlgorithm(key.Algorithm()),
		WithPeriod(key.Period()),
	), nil
}

// Algorithm returns the configured hash algorithm.
func (t *TOTP) Algorithm() otp.Algorithm {
	return t.hotp.Algorithm()
}

// Period returns the configured time step in seconds.
func (t *TOTP) Period() uint64 {
	return t.period
}

// StartTime returns the configured epoch offset in Unix seconds.
func (t *TOTP) StartTime() uint64 {
	return t.start
}

// GenerateCode computes the OTP for the given Unix time using the
// generator's configured period and start time.
func (t *TOTP) GenerateCode(unixSeconds uint64, digits int) (otp.Result, error) {
	return t.GenerateCodeCustom(unixSeconds, t.period, t.start, digits)
}

// GenerateCodeCustom computes the OTP for the given Unix time with an
// explicit time step and start time: the elapsed seconds since start
// are floor-divided by step to obtain the HOTP counter.
//
// A time before the start time is a caller contract violation and
// returns ErrTimeBeforeStart rather than wrapping into a nonsensical
// counter. A zero step returns ErrInvalidPeriod.
func (t *TOTP) GenerateCodeCustom(unixSeconds, step, start uint64, digits int) (otp.Result, error) {
	counter, err := counterAt(unixSeconds, step, start)
	if err != nil {
		return otp.Result{}, err
	}
	return t.hotp.GenerateCode(counter, digits), nil
}

// TimeUntilRefresh returns the duration until the code for the given
// Unix time changes, using the generator's configured period and start
// time. The result is always in the half-open range (0, period].
func (t *TOTP) TimeUntilRefresh(unixSeconds uint64) (time.Duration, error) {
	return t.TimeUntilRefreshCustom(unixSeconds, t.period, t.start)
}

// TimeUntilRefreshCustom returns the duration until the code changes
// with an explicit time step and start time.
func (t *TOTP) TimeUntilRefreshCustom(unixSeconds, step, start uint64) (time.Duration, error) {
	if _, err := counterAt(unixSeconds, step, start); err != nil {
		return 0, err
	}
	remaining := step - ((unixSeconds - start) % step)
	return time.Duration(remaining) * time.Second, nil
}

// Validate reports whether code matches the OTP for the given Unix
// time and digit count. The comparison is constant-time and applies no
// clock-skew window; drift tolerance is the caller's policy.
func (t *TOTP) Validate(code string, unixSeconds uint64, digits int) (bool, error) {
	want, err := t.GenerateCode(unixSeconds, digits)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(want.String())) == 1, nil
}

// counterAt derives the HOTP counter for a point in time, guarding the
// unsigned subtraction and division.
func counterAt(unixSeconds, step, start uint64) (uint64, error) {
	if step == 0 {
		return 0, fmt.Errorf("%w: step must be positive", otp.ErrInvalidPeriod)
	}
	if unixSeconds < start {
		return 0, fmt.Errorf("%w: time %d precedes start %d", otp.ErrTimeBeforeStart, unixSeconds, start)
	}
	return (unixSeconds - start) / step, nil
}
