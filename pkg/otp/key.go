package otp

import (
	"encoding/base32"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Type represents the OTP algorithm type.
type Type string

const (
	// TypeTOTP represents Time-based OTP (RFC 6238).
	TypeTOTP Type = "totp"
	// TypeHOTP represents Counter-based OTP (RFC 4226).
	TypeHOTP Type = "hotp"
)

// Key holds the parameters exchanged through an otpauth:// URI: the
// shared secret plus everything a generator needs to reproduce the
// codes of the issuing party. Label and issuer are descriptive
// metadata only and take no part in code computation.
//
// A Key is immutable once constructed.
type Key struct {
	typ         Type
	secret      []byte
	algorithm   Algorithm
	digits      int
	counter     uint64
	period      uint64
	issuer      string
	accountName string
}

// KeyConfig holds the parameters for constructing a Key directly,
// without going through an otpauth URI.
type KeyConfig struct {
	// Type specifies the OTP type (TOTP or HOTP).
	Type Type
	// Secret is the raw shared secret key (required).
	Secret []byte
	// Issuer is the name of the issuing organization (e.g., "MyApp").
	Issuer string
	// AccountName is the account identifier (e.g., "user@example.com").
	AccountName string
	// Algorithm specifies the hash algorithm to use.
	// Default: SHA1
	Algorithm Algorithm
	// Digits specifies the number of digits in the OTP code.
	// Default: 6
	Digits int
	// Counter specifies the current counter value for HOTP.
	// Default: 0
	Counter uint64
	// Period specifies the time step in seconds for TOTP.
	// Default: 30
	Period uint64
}

// validate checks that the configuration is valid.
func (c KeyConfig) validate() error {
	if c.Type != TypeTOTP && c.Type != TypeHOTP {
		return fmt.Errorf("%w: type must be 'totp' or 'hotp'", ErrUnknownType)
	}

	if len(c.Secret) == 0 {
		return ErrMissingSecret
	}

	if c.Algorithm != "" && c.Algorithm != AlgorithmSHA1 &&
		c.Algorithm != AlgorithmSHA256 && c.Algorithm != AlgorithmSHA512 {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, c.Algorithm)
	}

	if c.Digits < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDigits, c.Digits)
	}

	return nil
}

// NewKey creates a Key from an explicit configuration. The
// configuration is validated and defaults are applied for the
// algorithm (SHA1), digits (6), and TOTP period (30).
func NewKey(cfg KeyConfig) (*Key, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmSHA1
	}
	if cfg.Digits == 0 {
		cfg.Digits = 6
	}
	if cfg.Period == 0 {
		cfg.Period = 30
	}

	secret := make([]byte, len(cfg.Secret))
	copy(secret, cfg.Secret)

	return &Key{
		typ:         cfg.Type,
		secret:      secret,
		algorithm:   cfg.Algorithm,
		digits:      cfg.Digits,
		counter:     cfg.Counter,
		period:      cfg.Period,
		issuer:      cfg.Issuer,
		accountName: cfg.AccountName,
	}, nil
}

// ParseURI parses an otpauth:// provisioning URI into a Key.
//
// The expected shape is the de facto standard used by authenticator
// apps:
//
//	otpauth://TYPE/LABEL?secret=BASE32&issuer=ISSUER&algorithm=ALG&digits=N&counter=N|period=N
//
// TYPE is "hotp" or "totp". The secret parameter is mandatory and
// base32-encoded (RFC 4648, case-insensitive, padding optional).
// Optional parameters default to SHA1, 6 digits, counter 0 (hotp) and
// period 30 (totp). Either a fully valid Key is returned or a
// descriptive error; no partially applied parameter set escapes.
func ParseURI(uri string) (*Key, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}

	if u.Scheme == "" {
		return nil, fmt.Errorf("%w: missing scheme", ErrInvalidURI)
	}
	if u.Scheme != "otpauth" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidScheme, u.Scheme)
	}

	query, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}

	typ := Type(u.Host)
	if typ != TypeHOTP && typ != TypeTOTP {
		if u.Host == "" {
			return nil, fmt.Errorf("%w: missing type segment", ErrUnknownType)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, u.Host)
	}

	encoded := query.Get("secret")
	if encoded == "" {
		return nil, ErrMissingSecret
	}
	secret, err := DecodeBase32Secret(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}

	algorithm, err := ParseAlgorithm(query.Get("algorithm"))
	if err != nil {
		return nil, err
	}

	digits := 6
	if s := query.Get("digits"); s != "" {
		digits, err = strconv.Atoi(s)
		if err != nil || digits <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDigits, s)
		}
	}

	key := &Key{
		typ:       typ,
		secret:    secret,
		algorithm: algorithm,
		digits:    digits,
		period:    30,
	}
	key.issuer, key.accountName = splitLabel(strings.TrimPrefix(u.Path, "/"))
	if issuer := query.Get("issuer"); issuer != "" {
		key.issuer = issuer
	}

	switch typ {
	case TypeHOTP:
		if s := query.Get("counter"); s != "" {
			key.counter, err = strconv.ParseUint(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidCounter, s)
			}
		}
	case TypeTOTP:
		if s := query.Get("period"); s != "" {
			key.period, err = strconv.ParseUint(s, 10, 64)
			if err != nil || key.period == 0 {
				return nil, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
			}
		}
	}

	return key, nil
}

// Type returns the OTP type (hotp or totp).
func (k *Key) Type() Type { return k.typ }

// Secret returns a copy of the raw shared secret bytes.
func (k *Key) Secret() []byte {
	secret := make([]byte, len(k.secret))
	copy(secret, k.secret)
	return secret
}

// Base32Secret returns the secret encoded as unpadded base32, the form
// carried in otpauth URIs.
func (k *Key) Base32Secret() string {
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(k.secret)
}

// Algorithm returns the configured hash algorithm.
func (k *Key) Algorithm() Algorithm { return k.algorithm }

// Digits returns the configured code digit count.
func (k *Key) Digits() int { return k.digits }

// Counter returns the HOTP counter value. Zero for TOTP keys.
func (k *Key) Counter() uint64 { return k.counter }

// Period returns the TOTP time step in seconds.
func (k *Key) Period() uint64 { return k.period }

// Issuer returns the issuing organization, taken from the issuer
// parameter or the label prefix.
func (k *Key) Issuer() string { return k.issuer }

// AccountName returns the account identifier from the URI label.
func (k *Key) AccountName() string { return k.accountName }

// URI returns the otpauth:// provisioning URI for the key. The URI can
// be encoded as a QR code and scanned by authenticator apps, and it
// round-trips through ParseURI.
func (k *Key) URI() string {
	v := url.Values{}
	v.Set("secret", k.Base32Secret())
	if k.issuer != "" {
		v.Set("issuer", k.issuer)
	}
	v.Set("algorithm", string(k.algorithm))
	v.Set("digits", strconv.Itoa(k.digits))

	if k.typ == TypeHOTP {
		v.Set("counter", strconv.FormatUint(k.counter, 10))
	} else {
		v.Set("period", strconv.FormatUint(k.period, 10))
	}

	label := k.accountName
	if k.issuer != "" {
		label = fmt.Sprintf("%s:%s", k.issuer, k.accountName)
	}

	return fmt.Sprintf("otpauth://%s/%s?%s", k.typ, url.PathEscape(label), v.Encode())
}

// splitLabel separates an "Issuer:account" URI label into its parts.
func splitLabel(label string) (issuer, accountName string) {
	if issuer, accountName, ok := strings.Cut(label, ":"); ok {
		return strings.TrimSpace(issuer), strings.TrimSpace(accountName)
	}
	return "", label
}

// DecodeBase32Secret decodes an RFC 4648 base32 secret, tolerating
// lowercase input and missing padding, the common variations among
// provisioning tools.
func DecodeBase32Secret(s string) ([]byte, error) {
	clean := strings.ToUpper(strings.TrimRight(s, "="))
	return base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(clean)
}
