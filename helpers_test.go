package nrs

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/aweris/nrs/locator"
)

// testLink builds an encoded locator whose network name is derived
// from seed. Versioned links are pinned to a synthetic entry hash.
func testLink(seed string, ct locator.ContentType, dt locator.DataType, versioned bool) string {
	name := sha256.Sum256([]byte(seed))
	loc := locator.New(ct, dt, name, 1)
	if versioned {
		anchor := sha256.Sum256([]byte(seed + "/v0"))
		loc = loc.WithVersion(hex.EncodeToString(anchor[:]))
	}
	return loc.Encode()
}

// rawLink is an immutable-content link that always passes validation.
func rawLink(seed string) string {
	return testLink(seed, locator.Raw, locator.Bytes, false)
}
