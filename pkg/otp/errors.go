package otp

import "errors"

// Common errors returned by the otp packages.
var (
	// ErrInvalidURI indicates the otpauth URI could not be parsed.
	ErrInvalidURI = errors.New("otp: invalid otpauth uri")
	// ErrInvalidScheme indicates a URI scheme other than "otpauth".
	ErrInvalidScheme = errors.New("otp: invalid uri scheme")
	// ErrUnknownType indicates a missing or unrecognized OTP type segment.
	ErrUnknownType = errors.New("otp: unknown otp type")
	// ErrMissingSecret indicates the required secret parameter is absent.
	ErrMissingSecret = errors.New("otp: missing secret")
	// ErrInvalidSecret indicates the secret is not valid base32.
	ErrInvalidSecret = errors.New("otp: secret must be valid base32")
	// ErrUnknownAlgorithm indicates an unrecognized algorithm token.
	ErrUnknownAlgorithm = errors.New("otp: unknown algorithm")
	// ErrInvalidDigits indicates a zero or non-numeric digits parameter.
	ErrInvalidDigits = errors.New("otp: invalid digits")
	// ErrInvalidCounter indicates a non-numeric counter parameter.
	ErrInvalidCounter = errors.New("otp: invalid counter")
	// ErrInvalidPeriod indicates a zero or non-numeric period.
	ErrInvalidPeriod = errors.New("otp: invalid period")
	// ErrTimeBeforeStart indicates a TOTP time argument that precedes
	// the configured start time.
	ErrTimeBeforeStart = errors.New("otp: time precedes start time")
	// ErrWrongType indicates a Key of the wrong OTP type was used to
	// construct an engine.
	ErrWrongType = errors.New("otp: wrong otp type for engine")
)
