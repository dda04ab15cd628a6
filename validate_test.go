package nrs

import (
	"errors"
	"testing"

	"github.com/aweris/nrs/locator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLink(t *testing.T) {
	cases := []struct {
		desc      string
		ct        locator.ContentType
		dt        locator.DataType
		versioned bool
		wantErr   bool
	}{
		{"raw bytes unversioned", locator.Raw, locator.Bytes, false, false},
		{"wallet unversioned", locator.Wallet, locator.Bytes, false, false},
		{"files container unversioned", locator.FilesContainer, locator.File, false, true},
		{"files container versioned", locator.FilesContainer, locator.File, true, false},
		{"nrs container unversioned", locator.NrsMapContainer, locator.Register, false, true},
		{"nrs container versioned", locator.NrsMapContainer, locator.Register, true, false},
		{"register unversioned", locator.Raw, locator.Register, false, true},
		{"register versioned", locator.Raw, locator.Register, true, false},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := ValidateLink(testLink(tc.desc, tc.ct, tc.dt, tc.versioned))
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrVersionRequired)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLinkErrorDetail(t *testing.T) {
	link := testLink("detail", locator.FilesContainer, locator.File, false)
	err := ValidateLink(link)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "FilesContainer", verr.Classification)
	assert.Equal(t, link, verr.Link)
	assert.Contains(t, verr.Error(), link)
}

func TestValidateLinkUnparsable(t *testing.T) {
	err := ValidateLink("http://example.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrVersionRequired)
}

func TestValidateLinkRegisterScenario(t *testing.T) {
	// A register link without a version anchor is rejected; the same
	// link with one is accepted and retrievable.
	m := NewMap()

	unversioned := testLink("reg", locator.Raw, locator.Register, false)
	_, err := m.Update("example", unversioned)
	assert.ErrorIs(t, err, ErrVersionRequired)

	versioned := testLink("reg", locator.Raw, locator.Register, true)
	_, err = m.Update("example", versioned)
	require.NoError(t, err)

	link, err := m.DefaultLink()
	require.NoError(t, err)
	assert.Equal(t, versioned, link)
}
