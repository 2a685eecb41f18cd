package db

import (
	"context"
	"testing"

	"github.com/TASVideos/wikimark/util"
	"github.com/stretchr/testify/require"
)

func createRandomForumPost(t *testing.T) ForumPost {
	t.Helper()

	arg := CreateForumPostParams{
		AuthorID:     util.RandomInt(1, 1000),
		Subject:      util.RandomString(8),
		Markup:       "[b]" + util.RandomString(10) + "[/b]",
		EnableBBCode: true,
	}

	post, err := testStore.CreateForumPost(context.Background(), arg)
	require.NoError(t, err)

	require.NotZero(t, post.ID)
	require.Equal(t, arg.AuthorID, post.AuthorID)
	require.Equal(t, arg.Subject, post.Subject)
	require.Equal(t, arg.Markup, post.Markup)
	require.True(t, post.EnableBBCode)
	require.False(t, post.EnableHTML)
	require.NotZero(t, post.CreatedAt)

	return post
}

func TestCreateForumPost(t *testing.T) {
	requireStore(t)
	createRandomForumPost(t)
}

func TestGetForumPost(t *testing.T) {
	requireStore(t)

	created := createRandomForumPost(t)

	post, err := testStore.GetForumPost(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Markup, post.Markup)
	require.Equal(t, created.Dialect(), post.Dialect())

	_, err = testStore.GetForumPost(context.Background(), -1)
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	require.Equal(t, KindNotFound, kind)
}
