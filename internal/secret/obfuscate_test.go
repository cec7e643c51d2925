package secret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObfuscate_MatchesLegacyEncoding(t *testing.T) {
	// base64("Admin" + "_autoescola_2024") as written by the legacy tool.
	assert.Equal(t, "QWRtaW5fYXV0b2VzY29sYV8yMDI0", Obfuscate("Admin"))
	assert.Equal(t, "YWJjMTIzX2F1dG9lc2NvbGFfMjAyNA==", Obfuscate("abc123"))
}

func TestObfuscate_RoundTrip(t *testing.T) {
	tests := []string{"", "Admin", "abc123", "s3nh@ cömplic4da", "_autoescola_2024"}

	for _, password := range tests {
		stored := Obfuscate(password)

		plain, err := Deobfuscate(stored)
		require.NoError(t, err)
		assert.Equal(t, password, plain)

		// re-obfuscating the recovered plaintext is stable
		assert.Equal(t, stored, Obfuscate(plain))
	}
}

func TestVerify(t *testing.T) {
	stored := Obfuscate("abc123")

	assert.True(t, Verify("abc123", stored))
	assert.False(t, Verify("abc124", stored))
	assert.False(t, Verify("", stored))
}

func TestDeobfuscate_Invalid(t *testing.T) {
	_, err := Deobfuscate("not-base64!!!")
	assert.Error(t, err)

	// valid base64, but not produced by Obfuscate
	_, err = Deobfuscate("cGxhaW4=")
	assert.Error(t, err)
}
