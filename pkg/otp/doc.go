// Package otp provides the shared building blocks for TOTP (RFC 6238)
// and HOTP (RFC 4226) one-time password generation.
//
// The package itself carries no generation logic; it defines the
// Algorithm digest selector, the Result code value, the error taxonomy,
// and the Key type that parses and builds otpauth:// provisioning URIs.
// The generators live in the hotp and totp subpackages.
//
// # Provisioning URIs
//
// Authenticator apps exchange OTP parameters through the de facto
// standard otpauth:// URI scheme, usually rendered as a QR code:
//
//	key, err := otp.ParseURI(
//	    "otpauth://totp/Example:alice@google.com?secret=JBSWY3DPEHPK3PXP&issuer=Example")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Build a generator from the parsed parameters
//	gen, err := totp.FromKey(key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	code, err := gen.GenerateCode(uint64(time.Now().Unix()), key.Digits())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(code) // e.g. "005924"
//
// A Key can also be constructed directly and rendered back into a URI:
//
//	key, err := otp.NewKey(otp.KeyConfig{
//	    Type:        otp.TypeTOTP,
//	    Secret:      secret,
//	    Issuer:      "MyApp",
//	    AccountName: "user@example.com",
//	})
//	uri := key.URI()
//	// Display uri as QR code for user to scan
//
// # Codes
//
// Both generators return a Result pairing the numeric code with its
// digit count. Always present codes with Result.String: the numeric
// value alone drops leading zeros and is not a valid OTP.
//
// # Hash Algorithms
//
// The package supports the digest algorithms of RFC 6238:
//   - AlgorithmSHA1 (default, widely supported)
//   - AlgorithmSHA256
//   - AlgorithmSHA512
//
// Note that not all authenticator apps support SHA256 and SHA512.
//
// # Thread Safety
//
// Every type in this package and its subpackages is immutable after
// construction; all operations are pure computations over the
// receiver's state plus caller-supplied arguments. Instances are safe
// for concurrent use without synchronization.
package otp
