package otp

import (
	"bytes"
	"errors"
	"testing"
)

// TestParseURIErrors tests rejection of malformed otpauth URIs
func TestParseURIErrors(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		wantErr error
	}{
		{
			name:    "empty uri",
			uri:     "",
			wantErr: ErrInvalidURI,
		},
		{
			name:    "wrong scheme",
			uri:     "auth://totp/Example:alice@google.com?secret=JBSWY3DPEHPK3PXP&issuer=Example",
			wantErr: ErrInvalidScheme,
		},
		{
			name:    "missing type",
			uri:     "otpauth:///Example:alice@google.com?secret=JBSWY3DPEHPK3PXP&issuer=Example",
			wantErr: ErrUnknownType,
		},
		{
			name:    "unknown type",
			uri:     "otpauth://foo/Example:alice@google.com?secret=JBSWY3DPEHPK3PXP&issuer=Example",
			wantErr: ErrUnknownType,
		},
		{
			name:    "missing secret",
			uri:     "otpauth://totp/Example:alice@google.com?issuer=Example",
			wantErr: ErrMissingSecret,
		},
		{
			name:    "invalid base32 secret",
			uri:     "otpauth://totp/Example:alice@google.com?secret=invalid@secret!&issuer=Example",
			wantErr: ErrInvalidSecret,
		},
		{
			name:    "zero digits",
			uri:     "otpauth://totp/Example:alice@google.com?secret=JBSWY3DPEHPK3PXP&digits=0",
			wantErr: ErrInvalidDigits,
		},
		{
			name:    "non-numeric digits",
			uri:     "otpauth://totp/Example:alice@google.com?secret=JBSWY3DPEHPK3PXP&digits=abc",
			wantErr: ErrInvalidDigits,
		},
		{
			name:    "unknown algorithm",
			uri:     "otpauth://totp/Example:alice@google.com?secret=JBSWY3DPEHPK3PXP&algorithm=SHA1024",
			wantErr: ErrUnknownAlgorithm,
		},
		{
			name:    "zero period",
			uri:     "otpauth://totp/Example:alice@google.com?secret=JBSWY3DPEHPK3PXP&period=0",
			wantErr: ErrInvalidPeriod,
		},
		{
			name:    "non-numeric period",
			uri:     "otpauth://totp/Example:alice@google.com?secret=JBSWY3DPEHPK3PXP&period=abc",
			wantErr: ErrInvalidPeriod,
		},
		{
			name:    "non-numeric counter",
			uri:     "otpauth://hotp/Example:alice@google.com?secret=JBSWY3DPEHPK3PXP&counter=abc",
			wantErr: ErrInvalidCounter,
		},
		{
			name:    "negative counter",
			uri:     "otpauth://hotp/Example:alice@google.com?secret=JBSWY3DPEHPK3PXP&counter=-1",
			wantErr: ErrInvalidCounter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseURI(tt.uri)
			if err == nil {
				t.Fatalf("expected error %v, got key %+v", tt.wantErr, key)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestParseURITOTPDefaults tests default parameters for a minimal TOTP URI
func TestParseURITOTPDefaults(t *testing.T) {
	key, err := ParseURI("otpauth://totp/Example:alice@google.com?secret=JBSWY3DPEHPK3PXP&issuer=Example")
	if err != nil {
		t.Fatalf("ParseURI: %v", err)
	}

	if key.Type() != TypeTOTP {
		t.Errorf("expected type totp, got %v", key.Type())
	}
	if key.Algorithm() != AlgorithmSHA1 {
		t.Errorf("expected SHA1, got %v", key.Algorithm())
	}
	if key.Digits() != 6 {
		t.Errorf("expected 6 digits, got %d", key.Digits())
	}
	if key.Period() != 30 {
		t.Errorf("expected period 30, got %d", key.Period())
	}
	if key.Issuer() != "Example" {
		t.Errorf("expected issuer Example, got %q", key.Issuer())
	}
	if key.AccountName() != "alice@google.com" {
		t.Errorf("expected account alice@google.com, got %q", key.AccountName())
	}
	if !bytes.Equal(key.Secret(), []byte("Hello!\xde\xad\xbe\xef")) {
		t.Errorf("unexpected secret bytes %q", key.Secret())
	}
}

// TestParseURITOTPSpecified tests a fully specified TOTP URI
func TestParseURITOTPSpecified(t *testing.T) {
	key, err := ParseURI("otpauth://totp/ACME%20Co:john.doe@email.com?secret=HXDMVJECJJWSRB3HWIZR4IFUGFTMXBOZ&issuer=ACME%20Co&algorithm=SHA256&digits=8&period=60")
	if err != nil {
		t.Fatalf("ParseURI: %v", err)
	}

	if key.Algorithm() != AlgorithmSHA256 {
		t.Errorf("expected SHA256, got %v", key.Algorithm())
	}
	if key.Digits() != 8 {
		t.Errorf("expected 8 digits, got %d", key.Digits())
	}
	if key.Period() != 60 {
		t.Errorf("expected period 60, got %d", key.Period())
	}
	if key.Issuer() != "ACME Co" {
		t.Errorf("expected issuer %q, got %q", "ACME Co", key.Issuer())
	}
	if key.AccountName() != "john.doe@email.com" {
		t.Errorf("expected account john.doe@email.com, got %q", key.AccountName())
	}
}

// TestParseURIHOTP tests HOTP URIs with and without a counter
func TestParseURIHOTP(t *testing.T) {
	key, err := ParseURI("otpauth://hotp/Example:alice@google.com?secret=JBSWY3DPEHPK3PXP&counter=42")
	if err != nil {
		t.Fatalf("ParseURI: %v", err)
	}
	if key.Type() != TypeHOTP {
		t.Errorf("expected type hotp, got %v", key.Type())
	}
	if key.Counter() != 42 {
		t.Errorf("expected counter 42, got %d", key.Counter())
	}

	// Counter is optional and defaults to zero.
	key, err = ParseURI("otpauth://hotp/Example:alice@google.com?secret=JBSWY3DPEHPK3PXP")
	if err != nil {
		t.Fatalf("ParseURI: %v", err)
	}
	if key.Counter() != 0 {
		t.Errorf("expected counter 0, got %d", key.Counter())
	}
}

// TestParseURIIssuerFromLabel tests the label-prefix issuer fallback
func TestParseURIIssuerFromLabel(t *testing.T) {
	key, err := ParseURI("otpauth://totp/BigCorp:bob?secret=JBSWY3DPEHPK3PXP")
	if err != nil {
		t.Fatalf("ParseURI: %v", err)
	}
	if key.Issuer() != "BigCorp" {
		t.Errorf("expected issuer BigCorp, got %q", key.Issuer())
	}
	if key.AccountName() != "bob" {
		t.Errorf("expected account bob, got %q", key.AccountName())
	}
}

// TestParseURICaseInsensitiveSecret tests tolerance of lowercase and
// padded base32 secrets
func TestParseURICaseInsensitiveSecret(t *testing.T) {
	upper, err := ParseURI("otpauth://totp/Example?secret=JBSWY3DPEHPK3PXP")
	if err != nil {
		t.Fatalf("ParseURI: %v", err)
	}
	lower, err := ParseURI("otpauth://totp/Example?secret=jbswy3dpehpk3pxp")
	if err != nil {
		t.Fatalf("ParseURI: %v", err)
	}
	if !bytes.Equal(upper.Secret(), lower.Secret()) {
		t.Error("lowercase secret decoded differently")
	}
}

// TestNewKey tests direct key construction with defaults
func TestNewKey(t *testing.T) {
	key, err := NewKey(KeyConfig{
		Type:        TypeTOTP,
		Secret:      []byte("12345678901234567890"),
		Issuer:      "MyApp",
		AccountName: "user@example.com",
	})
	if err != nil {
		t.Fatalf("NewKey: %v", err)
	}

	if key.Algorithm() != AlgorithmSHA1 {
		t.Errorf("expected SHA1 default, got %v", key.Algorithm())
	}
	if key.Digits() != 6 {
		t.Errorf("expected 6 digits default, got %d", key.Digits())
	}
	if key.Period() != 30 {
		t.Errorf("expected period 30 default, got %d", key.Period())
	}
}

// TestNewKeyErrors tests key configuration validation
func TestNewKeyErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     KeyConfig
		wantErr error
	}{
		{
			name:    "missing type",
			cfg:     KeyConfig{Secret: []byte("secret")},
			wantErr: ErrUnknownType,
		},
		{
			name:    "invalid type",
			cfg:     KeyConfig{Type: "motp", Secret: []byte("secret")},
			wantErr: ErrUnknownType,
		},
		{
			name:    "missing secret",
			cfg:     KeyConfig{Type: TypeTOTP},
			wantErr: ErrMissingSecret,
		},
		{
			name:    "unknown algorithm",
			cfg:     KeyConfig{Type: TypeTOTP, Secret: []byte("secret"), Algorithm: "MD5"},
			wantErr: ErrUnknownAlgorithm,
		},
		{
			name:    "negative digits",
			cfg:     KeyConfig{Type: TypeTOTP, Secret: []byte("secret"), Digits: -1},
			wantErr: ErrInvalidDigits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewKey(tt.cfg); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestKeyURIRoundTrip tests that URI building and parsing are inverses
func TestKeyURIRoundTrip(t *testing.T) {
	for _, cfg := range []KeyConfig{
		{
			Type:        TypeTOTP,
			Secret:      []byte("12345678901234567890"),
			Issuer:      "ACME Co",
			AccountName: "john.doe@email.com",
			Algorithm:   AlgorithmSHA256,
			Digits:      8,
			Period:      60,
		},
		{
			Type:        TypeHOTP,
			Secret:      []byte("12345678901234567890"),
			Issuer:      "MyApp",
			AccountName: "user@example.com",
			Counter:     7,
		},
	} {
		key, err := NewKey(cfg)
		if err != nil {
			t.Fatalf("NewKey: %v", err)
		}

		parsed, err := ParseURI(key.URI())
		if err != nil {
			t.Fatalf("ParseURI(%q): %v", key.URI(), err)
		}

		if parsed.Type() != key.Type() {
			t.Errorf("type changed: %v -> %v", key.Type(), parsed.Type())
		}
		if !bytes.Equal(parsed.Secret(), key.Secret()) {
			t.Errorf("secret changed: %x -> %x", key.Secret(), parsed.Secret())
		}
		if parsed.Algorithm() != key.Algorithm() {
			t.Errorf("algorithm changed: %v -> %v", key.Algorithm(), parsed.Algorithm())
		}
		if parsed.Digits() != key.Digits() {
			t.Errorf("digits changed: %d -> %d", key.Digits(), parsed.Digits())
		}
		if parsed.Counter() != key.Counter() {
			t.Errorf("counter changed: %d -> %d", key.Counter(), parsed.Counter())
		}
		if parsed.Period() != key.Period() {
			t.Errorf("period changed: %d -> %d", key.Period(), parsed.Period())
		}
		if parsed.Issuer() != key.Issuer() {
			t.Errorf("issuer changed: %q -> %q", key.Issuer(), parsed.Issuer())
		}
		if parsed.AccountName() != key.AccountName() {
			t.Errorf("account changed: %q -> %q", key.AccountName(), parsed.AccountName())
		}
	}
}
