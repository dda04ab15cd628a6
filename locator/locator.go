// Package locator implements the wire encoding of content locators.
//
// A locator is an opaque address into the content-addressed network.
// Its encoded form is a URL:
//
//	nrs://<base32 payload>[?v=<hex entry hash>]
//
// The payload carries a codec version byte, the content-type and
// data-type classification bytes, the 32-byte network name of the
// target and its 64-bit type tag. The optional v query parameter pins
// the locator to one immutable version of the target.
package locator

import (
	"encoding/base32"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
)

// Scheme is the URL scheme of encoded locators.
const Scheme = "nrs"

const (
	codecVersion = 1
	payloadLen   = 1 + 1 + 1 + NameSize + 8
)

// NameSize is the length of a network name in bytes.
const NameSize = 32

// VersionHashSize is the length of a decoded version hash in bytes.
const VersionHashSize = 32

var payloadEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

// ContentType classifies what the addressed content represents to
// applications.
type ContentType byte

const (
	Raw ContentType = iota
	Wallet
	FilesContainer
	NrsMapContainer
	Multimap
)

// Versionable reports whether content of this type evolves over time
// and can therefore be pinned to a version.
func (c ContentType) Versionable() bool {
	return c == FilesContainer || c == NrsMapContainer
}

func (c ContentType) String() string {
	switch c {
	case Raw:
		return "Raw"
	case Wallet:
		return "Wallet"
	case FilesContainer:
		return "FilesContainer"
	case NrsMapContainer:
		return "NrsMapContainer"
	case Multimap:
		return "Multimap"
	default:
		return fmt.Sprintf("ContentType(%d)", byte(c))
	}
}

// DataType classifies the underlying network primitive holding the
// content.
type DataType byte

const (
	Bytes DataType = iota
	File
	Register
)

// Versionable reports whether the underlying primitive is mutable and
// keeps a version history.
func (d DataType) Versionable() bool {
	return d == Register
}

func (d DataType) String() string {
	switch d {
	case Bytes:
		return "Bytes"
	case File:
		return "File"
	case Register:
		return "Register"
	default:
		return fmt.Sprintf("DataType(%d)", byte(d))
	}
}

// Locator is a decoded content locator.
type Locator struct {
	ContentType ContentType
	DataType    DataType
	XorName     [NameSize]byte
	TypeTag     uint64

	// VersionHash is the hex-encoded entry hash pinning the locator to
	// one version of the target, or "" when unversioned.
	VersionHash string
}

// New creates an unversioned locator.
func New(ct ContentType, dt DataType, name [NameSize]byte, typeTag uint64) *Locator {
	return &Locator{ContentType: ct, DataType: dt, XorName: name, TypeTag: typeTag}
}

// WithVersion returns a copy of the locator pinned to the given entry
// hash.
func (l *Locator) WithVersion(hash string) *Locator {
	c := *l
	c.VersionHash = hash
	return &c
}

// HasVersion reports whether the locator carries a version hash.
func (l *Locator) HasVersion() bool {
	return l.VersionHash != ""
}

// Versionable reports whether the addressed content can evolve and
// therefore supports version pinning.
func (l *Locator) Versionable() bool {
	return l.ContentType.Versionable() || l.DataType.Versionable()
}

// Encode returns the URL form of the locator.
func (l *Locator) Encode() string {
	payload := make([]byte, payloadLen)
	payload[0] = codecVersion
	payload[1] = byte(l.ContentType)
	payload[2] = byte(l.DataType)
	copy(payload[3:], l.XorName[:])
	binary.BigEndian.PutUint64(payload[3+NameSize:], l.TypeTag)

	s := Scheme + "://" + payloadEncoding.EncodeToString(payload)
	if l.VersionHash != "" {
		s += "?v=" + l.VersionHash
	}
	return s
}

// String is the URL form of the locator.
func (l *Locator) String() string {
	return l.Encode()
}

// Parse decodes a locator from its URL form.
func Parse(link string) (*Locator, error) {
	u, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("invalid locator %q: %w", link, err)
	}
	if u.Scheme != Scheme {
		return nil, fmt.Errorf("invalid locator %q: unknown scheme %q", link, u.Scheme)
	}

	encoded := u.Host
	if encoded == "" {
		encoded = strings.TrimPrefix(u.Opaque, "//")
	}
	payload, err := payloadEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid locator %q: %w", link, err)
	}
	if len(payload) != payloadLen {
		return nil, fmt.Errorf("invalid locator %q: payload is %d bytes, want %d", link, len(payload), payloadLen)
	}
	if payload[0] != codecVersion {
		return nil, fmt.Errorf("invalid locator %q: unsupported codec version %d", link, payload[0])
	}
	if payload[1] > byte(Multimap) {
		return nil, fmt.Errorf("invalid locator %q: unknown content type %d", link, payload[1])
	}
	if payload[2] > byte(Register) {
		return nil, fmt.Errorf("invalid locator %q: unknown data type %d", link, payload[2])
	}

	l := &Locator{
		ContentType: ContentType(payload[1]),
		DataType:    DataType(payload[2]),
		TypeTag:     binary.BigEndian.Uint64(payload[3+NameSize:]),
	}
	copy(l.XorName[:], payload[3:3+NameSize])

	if v := u.Query().Get("v"); v != "" {
		raw, err := hex.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid locator %q: bad version hash: %w", link, err)
		}
		if len(raw) != VersionHashSize {
			return nil, fmt.Errorf("invalid locator %q: version hash is %d bytes, want %d", link, len(raw), VersionHashSize)
		}
		l.VersionHash = v
	}

	return l, nil
}
