// Package secret implements the password obfuscation scheme used by the
// persisted account collection.
//
// The scheme is a fixed suffix concatenation followed by standard base64
// encoding. It is trivially reversible and carries no per-account salt:
// it is NOT a security boundary and must not be treated as one. It is kept
// bit-for-bit identical to the legacy data format so that collections
// written by earlier releases keep authenticating. Swapping in a real
// salted hash only requires replacing this package; no call site encodes
// or compares passwords directly.
package secret

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// suffix is the fixed literal appended to every password before encoding.
// Changing it invalidates every stored credential.
const suffix = "_autoescola_2024"

// Obfuscate transforms a plaintext password into its stored representation.
func Obfuscate(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password + suffix))
}

// Verify reports whether password matches the stored representation.
func Verify(password, stored string) bool {
	return Obfuscate(password) == stored
}

// Deobfuscate recovers the plaintext password from its stored
// representation. It exists because the scheme is reversible; nothing in
// the application calls it outside of diagnostics and tests.
func Deobfuscate(stored string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", fmt.Errorf("decode stored password: %w", err)
	}

	decoded := string(raw)
	if !strings.HasSuffix(decoded, suffix) {
		return "", fmt.Errorf("stored password is missing the expected suffix")
	}

	return strings.TrimSuffix(decoded, suffix), nil
}
