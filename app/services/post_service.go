package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/shashiranjanraj/meera/app/models"
	"github.com/shashiranjanraj/meera/pkg/metrics"
	"github.com/shashiranjanraj/meera/pkg/storage"
)

// PostInput is the typed command decoded from the multipart post forms.
type PostInput struct {
	Title   string `form:"title" json:"title" validate:"required,max=255"`
	Content string `form:"content" json:"content" validate:"required"`
	Author  string `form:"author" json:"author"`
}

// PostService implements the blog post CRUD. Post images always land on the
// local disk, independent of where product media goes.
type PostService struct {
	posts    PostStore
	disk     storage.Disk
	diskName string
}

func NewPostService(posts PostStore, disk storage.Disk, diskName string) *PostService {
	return &PostService{posts: posts, disk: disk, diskName: diskName}
}

// Create stores the optional cover image and persists the post.
func (s *PostService) Create(ctx context.Context, in PostInput, image *multipart.FileHeader) (models.Post, error) {
	imageURL, err := s.storeImage(image)
	if err != nil {
		return models.Post{}, err
	}

	return s.posts.Create(ctx, models.Post{
		Title:     in.Title,
		Content:   in.Content,
		Author:    in.Author,
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC(),
	})
}

// All returns every post.
func (s *PostService) All(ctx context.Context) ([]models.Post, error) {
	return s.posts.All(ctx)
}

// Get returns one post by id.
func (s *PostService) Get(ctx context.Context, id string) (models.Post, error) {
	return s.posts.FindByID(ctx, id)
}

// Update overwrites the post's fields and returns the updated document. The
// cover image is replaced only when a new file was uploaded; otherwise the
// stored URL is carried forward.
func (s *PostService) Update(ctx context.Context, id string, in PostInput, image *multipart.FileHeader) (models.Post, error) {
	imageURL, err := s.storeImage(image)
	if err != nil {
		return models.Post{}, err
	}
	if image == nil {
		current, err := s.posts.FindByID(ctx, id)
		if err != nil {
			return models.Post{}, err
		}
		imageURL = current.ImageURL
	}

	return s.posts.Update(ctx, id, models.Post{
		Title:    in.Title,
		Content:  in.Content,
		Author:   in.Author,
		ImageURL: imageURL,
	})
}

// Delete removes a post by id.
func (s *PostService) Delete(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}

// storeImage writes the upload under posts/ and returns its URL. A nil
// header means no image was submitted and yields an empty URL.
func (s *PostService) storeImage(image *multipart.FileHeader) (string, error) {
	if image == nil {
		return "", nil
	}

	start := time.Now()
	src, err := image.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %s", ErrUploadFailed, image.Filename, err)
	}
	defer src.Close()

	path := "posts/" + storage.Filename(image.Filename)
	if err := s.disk.PutStream(path, src); err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrUploadFailed, image.Filename, err)
	}

	metrics.ObserveUpload(s.diskName, start)
	return s.disk.URL(path), nil
}
