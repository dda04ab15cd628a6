package locator

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testName(seed string) [NameSize]byte {
	return sha256.Sum256([]byte(seed))
}

func TestEncodeParseRoundTrip(t *testing.T) {
	loc := New(FilesContainer, File, testName("round-trip"), 42)

	parsed, err := Parse(loc.Encode())
	require.NoError(t, err)
	assert.Equal(t, loc, parsed)
}

func TestEncodeParseWithVersion(t *testing.T) {
	anchor := sha256.Sum256([]byte("v1"))
	loc := New(NrsMapContainer, Register, testName("versioned"), 1500).WithVersion(hex.EncodeToString(anchor[:]))

	encoded := loc.Encode()
	assert.Contains(t, encoded, "?v=")

	parsed, err := Parse(encoded)
	require.NoError(t, err)
	assert.Equal(t, loc, parsed)
	assert.True(t, parsed.HasVersion())
}

func TestEncodeIsDeterministic(t *testing.T) {
	loc := New(Raw, Bytes, testName("stable"), 0)
	assert.Equal(t, loc.Encode(), loc.Encode())
	assert.True(t, strings.HasPrefix(loc.Encode(), Scheme+"://"))
}

func TestWithVersionCopies(t *testing.T) {
	anchorName := testName("anchor")
	anchor := hex.EncodeToString(anchorName[:])
	loc := New(Raw, Register, testName("copy"), 7)
	pinned := loc.WithVersion(anchor)

	assert.False(t, loc.HasVersion())
	assert.True(t, pinned.HasVersion())
	assert.Equal(t, anchor, pinned.VersionHash)
}

func TestVersionable(t *testing.T) {
	assert.True(t, FilesContainer.Versionable())
	assert.True(t, NrsMapContainer.Versionable())
	assert.False(t, Raw.Versionable())
	assert.False(t, Wallet.Versionable())
	assert.False(t, Multimap.Versionable())

	assert.True(t, Register.Versionable())
	assert.False(t, Bytes.Versionable())
	assert.False(t, File.Versionable())

	assert.True(t, New(FilesContainer, Bytes, testName("a"), 0).Versionable())
	assert.True(t, New(Raw, Register, testName("b"), 0).Versionable())
	assert.False(t, New(Raw, Bytes, testName("c"), 0).Versionable())
}

func TestParseRejectsBadInput(t *testing.T) {
	valid := New(Raw, Bytes, testName("valid"), 1).Encode()

	cases := []string{
		"",
		"example.com",
		"http://example.com",
		"nrs://",
		"nrs://notbase32!!!",
		"nrs://" + payloadEncoding.EncodeToString([]byte{1, 2, 3}), // truncated payload
		valid + "?v=nothex",
		valid + "?v=abcd", // version hash too short
	}

	for _, link := range cases {
		_, err := Parse(link)
		assert.Error(t, err, "%q", link)
	}
}

func TestParseRejectsUnknownCodes(t *testing.T) {
	loc := New(Raw, Bytes, testName("codes"), 1)
	encoded := loc.Encode()

	// Corrupt the classification bytes inside the payload.
	payload, err := payloadEncoding.DecodeString(strings.TrimPrefix(encoded, Scheme+"://"))
	require.NoError(t, err)

	badContent := append([]byte(nil), payload...)
	badContent[1] = 99
	_, err = Parse(Scheme + "://" + payloadEncoding.EncodeToString(badContent))
	assert.Error(t, err)

	badData := append([]byte(nil), payload...)
	badData[2] = 99
	_, err = Parse(Scheme + "://" + payloadEncoding.EncodeToString(badData))
	assert.Error(t, err)

	badVersion := append([]byte(nil), payload...)
	badVersion[0] = 0
	_, err = Parse(Scheme + "://" + payloadEncoding.EncodeToString(badVersion))
	assert.Error(t, err)
}

func TestTypeStrings(t *testing.T) {
	assert.Equal(t, "FilesContainer", FilesContainer.String())
	assert.Equal(t, "NrsMapContainer", NrsMapContainer.String())
	assert.Equal(t, "Register", Register.String())
	assert.Equal(t, "Raw", Raw.String())
}
