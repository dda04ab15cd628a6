package nrs

import (
	"context"
	"testing"

	"github.com/aweris/nrs/locator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFreshTopname(t *testing.T) {
	s, err := Open("dave", WithStoreDir(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, "dave", s.Topname())
	assert.Equal(t, "", s.Head())
	assert.False(t, s.Dirty())
	assert.Equal(t, 0, s.Map().Len())

	_, err = s.ResolveDefault()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenRejectsMultiLabelTopname(t *testing.T) {
	_, err := Open("blog.dave", WithStoreDir(t.TempDir()))
	assert.ErrorIs(t, err, ErrMalformedName)
}

func TestSessionCommitAndReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	link := rawLink("default")
	blogLink := rawLink("blog")

	s, err := Open("dave", WithStoreDir(dir))
	require.NoError(t, err)

	_, err = s.Add("dave", link)
	require.NoError(t, err)
	_, err = s.Add("blog.dave", blogLink)
	require.NoError(t, err)
	assert.True(t, s.Dirty())

	entry, err := s.Commit(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, entry)
	assert.False(t, s.Dirty())
	assert.Equal(t, entry, s.Head())

	// A clean commit is a no-op.
	again, err := s.Commit(ctx)
	require.NoError(t, err)
	assert.Equal(t, entry, again)

	// A fresh session hydrates from the committed head.
	reopened, err := Open("dave", WithStoreDir(dir))
	require.NoError(t, err)
	assert.Equal(t, entry, reopened.Head())

	got, err := reopened.Resolve("blog.dave")
	require.NoError(t, err)
	assert.Equal(t, blogLink, got)

	got, err = reopened.ResolveDefault()
	require.NoError(t, err)
	assert.Equal(t, link, got)
}

func TestSessionPinnedVersion(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	oldLink := rawLink("v1")
	newLink := rawLink("v2")

	s, err := Open("dave", WithStoreDir(dir))
	require.NoError(t, err)

	_, err = s.Add("dave", oldLink)
	require.NoError(t, err)
	v1, err := s.Commit(ctx)
	require.NoError(t, err)

	_, err = s.Add("dave", newLink)
	require.NoError(t, err)
	v2, err := s.Commit(ctx)
	require.NoError(t, err)
	require.NotEqual(t, v1, v2)

	head, err := Open("dave", WithStoreDir(dir))
	require.NoError(t, err)
	got, err := head.ResolveDefault()
	require.NoError(t, err)
	assert.Equal(t, newLink, got)

	pinned, err := Open("dave", WithStoreDir(dir), WithVersion(v1))
	require.NoError(t, err)
	got, err = pinned.ResolveDefault()
	require.NoError(t, err)
	assert.Equal(t, oldLink, got)
}

func TestSessionAddRejectsForeignName(t *testing.T) {
	s, err := Open("dave", WithStoreDir(t.TempDir()))
	require.NoError(t, err)

	_, err = s.Add("blog.erin", rawLink("x"))
	assert.ErrorIs(t, err, ErrMalformedName)
	assert.False(t, s.Dirty())
}

func TestSessionRemove(t *testing.T) {
	s, err := Open("dave", WithStoreDir(t.TempDir()))
	require.NoError(t, err)

	link := rawLink("blog")
	_, err = s.Add("blog.dave", link)
	require.NoError(t, err)

	removed, err := s.Remove("blog")
	require.NoError(t, err)
	assert.Equal(t, link, removed)

	_, err = s.Remove("blog")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionContainerLocator(t *testing.T) {
	s, err := Open("dave", WithStoreDir(t.TempDir()))
	require.NoError(t, err)

	_, err = s.ContainerLocator()
	assert.Error(t, err)

	_, err = s.Add("dave", rawLink("default"))
	require.NoError(t, err)

	_, err = s.ContainerLocator()
	assert.Error(t, err)

	head, err := s.Commit(context.Background())
	require.NoError(t, err)

	loc, err := s.ContainerLocator()
	require.NoError(t, err)
	assert.Equal(t, locator.NrsMapContainer, loc.ContentType)
	assert.Equal(t, locator.Register, loc.DataType)
	assert.Equal(t, uint64(NrsTypeTag), loc.TypeTag)
	assert.Equal(t, head, loc.VersionHash)

	// The container locator itself passes link validation.
	assert.NoError(t, ValidateLink(loc.Encode()))
}

func TestSessionHistory(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open("dave", WithStoreDir(dir))
	require.NoError(t, err)

	_, err = s.Add("dave", rawLink("v1"))
	require.NoError(t, err)
	v1, err := s.Commit(ctx)
	require.NoError(t, err)

	_, err = s.Add("blog.dave", rawLink("v2"))
	require.NoError(t, err)
	v2, err := s.Commit(ctx)
	require.NoError(t, err)

	history, err := s.History(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{v2, v1}, history)
}

func TestSessionPushPullRequireRemote(t *testing.T) {
	s, err := Open("dave", WithStoreDir(t.TempDir()))
	require.NoError(t, err)

	assert.ErrorIs(t, s.Push(context.Background()), ErrNoRemote)
	assert.ErrorIs(t, s.Pull(context.Background()), ErrNoRemote)
}

func TestSessionCloseCommits(t *testing.T) {
	dir := t.TempDir()

	s, err := Open("dave", WithStoreDir(dir))
	require.NoError(t, err)
	_, err = s.Add("dave", rawLink("default"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open("dave", WithStoreDir(dir))
	require.NoError(t, err)
	_, err = reopened.ResolveDefault()
	assert.NoError(t, err)
}
