package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/meera/app/services"
)

func TestPostCreateWithImage(t *testing.T) {
	store := newFakePostStore()
	disk := newFakeDisk()
	svc := services.NewPostService(store, disk, "local")

	image := uploadedFiles(t, "cover.png")[0]
	post, err := svc.Create(context.Background(), services.PostInput{
		Title:   "Festive Collection",
		Content: "New arrivals for the season.",
		Author:  "Asha",
	}, image)
	require.NoError(t, err)

	assert.False(t, post.ID.IsZero())
	assert.False(t, post.CreatedAt.IsZero())
	assert.True(t, strings.HasPrefix(post.ImageURL, "/uploads/posts/"), "got %q", post.ImageURL)
	assert.True(t, strings.HasSuffix(post.ImageURL, ".png"), "got %q", post.ImageURL)
	assert.Equal(t, 1, disk.count())
}

func TestPostCreateWithoutImage(t *testing.T) {
	svc := services.NewPostService(newFakePostStore(), newFakeDisk(), "local")

	post, err := svc.Create(context.Background(), services.PostInput{Title: "t", Content: "c"}, nil)
	require.NoError(t, err)
	assert.Empty(t, post.ImageURL)
}

func TestPostUpdateKeepsImageWhenNoneUploaded(t *testing.T) {
	store := newFakePostStore()
	svc := services.NewPostService(store, newFakeDisk(), "local")

	created, err := svc.Create(context.Background(), services.PostInput{Title: "t", Content: "c"},
		uploadedFiles(t, "cover.png")[0])
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID.Hex(),
		services.PostInput{Title: "t2", Content: "c2"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "t2", updated.Title)
	assert.Equal(t, created.ImageURL, updated.ImageURL, "image survives an update without a new file")
}

func TestPostUpdateReplacesImage(t *testing.T) {
	store := newFakePostStore()
	svc := services.NewPostService(store, newFakeDisk(), "local")

	created, err := svc.Create(context.Background(), services.PostInput{Title: "t", Content: "c"},
		uploadedFiles(t, "old.png")[0])
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID.Hex(),
		services.PostInput{Title: "t", Content: "c"}, uploadedFiles(t, "new.jpg")[0])
	require.NoError(t, err)

	assert.NotEqual(t, created.ImageURL, updated.ImageURL)
	assert.True(t, strings.HasSuffix(updated.ImageURL, ".jpg"))
}

func TestPostDeleteUnknownID(t *testing.T) {
	svc := services.NewPostService(newFakePostStore(), newFakeDisk(), "local")
	assert.ErrorIs(t, svc.Delete(context.Background(), "656565656565656565656565"), services.ErrNotFound)
}

func TestPostGetRoundTrip(t *testing.T) {
	svc := services.NewPostService(newFakePostStore(), newFakeDisk(), "local")

	created, err := svc.Create(context.Background(), services.PostInput{Title: "t", Content: "c"}, nil)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)

	all, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
