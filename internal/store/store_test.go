package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/readmekit/pkg/api"
)

func setupTestStore(t *testing.T) (*Store, context.Context) {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, ctx
}

func testDoc(name string) api.Document {
	return api.Document{
		Name: name,
		Elements: []api.Element{
			{ID: "e1", Kind: api.KindHeader, Text: "Hello", Level: 1},
			{ID: "e2", Kind: api.KindList, Items: []string{"one", "two"}},
		},
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	s, ctx := setupTestStore(t)

	saved, changed, err := s.Save(ctx, testDoc("profile"))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := s.Get(ctx, "profile")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, saved.Elements, got.Elements)
}

func TestSaveUnchangedIsNoOp(t *testing.T) {
	s, ctx := setupTestStore(t)

	first, changed, err := s.Save(ctx, testDoc("profile"))
	require.NoError(t, err)
	require.True(t, changed)

	again, changed, err := s.Save(ctx, testDoc("profile"))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, first.UpdatedAt, again.UpdatedAt)
}

func TestSaveUpsertKeepsIdentity(t *testing.T) {
	s, ctx := setupTestStore(t)

	first, _, err := s.Save(ctx, testDoc("profile"))
	require.NoError(t, err)

	edited := testDoc("profile")
	edited.Elements[0].Text = "Hello again"
	second, changed, err := s.Save(ctx, edited)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	got, err := s.Get(ctx, "profile")
	require.NoError(t, err)
	assert.Equal(t, "Hello again", got.Elements[0].Text)
}

func TestListOrder(t *testing.T) {
	s, ctx := setupTestStore(t)

	_, _, err := s.Save(ctx, testDoc("alpha"))
	require.NoError(t, err)
	_, _, err = s.Save(ctx, testDoc("beta"))
	require.NoError(t, err)

	docs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	// beta saved last, so it sorts first
	assert.Equal(t, "beta", docs[0].Name)
	assert.Equal(t, "alpha", docs[1].Name)
}

func TestGetAndDeleteMissing(t *testing.T) {
	s, ctx := setupTestStore(t)

	_, err := s.Get(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "ghost"), ErrNotFound)

	_, _, err = s.Save(ctx, testDoc("real"))
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, "real"))
	_, err = s.Get(ctx, "real")
	assert.ErrorIs(t, err, ErrNotFound)
}
