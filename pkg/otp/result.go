package otp

import "fmt"

// Result holds a generated one-time password: the numeric code and the
// digit count it was generated with. The digit count is carried so the
// code can be formatted with its leading zeros intact; the numeric
// value alone is not a valid OTP.
//
// A Result is immutable and always satisfies 0 <= Uint32() < 10^Digits().
type Result struct {
	value  uint32
	digits int
}

// NewResult returns a Result for the given code value and digit count.
func NewResult(value uint32, digits int) Result {
	return Result{value: value, digits: digits}
}

// Uint32 returns the raw numeric code value.
func (r Result) Uint32() uint32 {
	return r.value
}

// Digits returns the digit count the code was generated with.
func (r Result) Digits() int {
	return r.digits
}

// String returns the code as a decimal string, left-padded with zeros
// to exactly Digits() characters. This is the canonical user-facing
// form of the OTP.
func (r Result) String() string {
	return fmt.Sprintf("%0*d", r.digits, r.value)
}
