package services_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"sync"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/meera/app/models"
	"github.com/shashiranjanraj/meera/app/repositories"
)

// uploadedFiles builds real multipart.FileHeaders by writing and re-parsing
// a multipart body, so header.Open() works like it does in a live request.
func uploadedFiles(t *testing.T, names ...string) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, name := range names {
		fw, err := w.CreateFormFile("file", name)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write([]byte("bytes of " + name)) //nolint:errcheck
	}
	w.Close() //nolint:errcheck

	r := httptest.NewRequest("POST", "/", &body)
	r.Header.Set("Content-Type", w.FormDataContentType())
	if err := r.ParseMultipartForm(4 << 20); err != nil {
		t.Fatal(err)
	}
	return r.MultipartForm.File["file"]
}

// fakeDisk records uploads in memory and can be told to fail the nth call.
type fakeDisk struct {
	mu     sync.Mutex
	files  map[string][]byte
	calls  int
	failOn int // 1-based PutStream call to fail; 0 means never
}

func newFakeDisk() *fakeDisk {
	return &fakeDisk{files: map[string][]byte{}}
}

func (d *fakeDisk) Put(path string, content []byte) error {
	return d.PutStream(path, bytes.NewReader(content))
}

func (d *fakeDisk) PutStream(path string, r io.Reader) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.calls++
	if d.failOn > 0 && d.calls == d.failOn {
		return fmt.Errorf("disk full")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	d.files[path] = data
	return nil
}

func (d *fakeDisk) Get(path string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, ok := d.files[path]
	if !ok {
		return nil, fmt.Errorf("not found: %s", path)
	}
	return data, nil
}

func (d *fakeDisk) Exists(path string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.files[path]
	return ok
}

func (d *fakeDisk) Delete(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.files, path)
	return nil
}

func (d *fakeDisk) URL(path string) string { return "/uploads/" + path }

func (d *fakeDisk) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.files)
}

// fakeProductStore is an in-memory ProductStore.
type fakeProductStore struct {
	mu       sync.Mutex
	products map[string]models.Product
	allCalls int
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: map[string]models.Product{}}
}

func (s *fakeProductStore) Create(_ context.Context, product models.Product) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product.ID = primitive.NewObjectID()
	id := product.ID.Hex()
	s.products[id] = product
	return id, nil
}

func (s *fakeProductStore) All(_ context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allCalls++
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeProductStore) FindByID(_ context.Context, id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return models.Product{}, repositories.ErrNotFound
	}
	return p, nil
}

func (s *fakeProductStore) Update(_ context.Context, id string, product models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.products[id]
	if !ok {
		return repositories.ErrNotFound
	}
	product.ID = current.ID
	if len(product.Images) == 0 {
		product.Images = current.Images
	}
	product.Date = current.Date
	s.products[id] = product
	return nil
}

func (s *fakeProductStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *fakeProductStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User // by hex id
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return u, nil
}

func (s *fakeUserStore) Create(_ context.Context, user models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = primitive.NewObjectID()
	id := user.ID.Hex()
	s.users[id] = user
	return id, nil
}

func (s *fakeUserStore) All(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) UpdateCart(_ context.Context, id string, cart map[string]map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	u.CartData = cart
	s.users[id] = u
	return nil
}

// fakePostStore is an in-memory PostStore.
type fakePostStore struct {
	mu    sync.Mutex
	posts map[string]models.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[string]models.Post{}}
}

func (s *fakePostStore) Create(_ context.Context, post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post.ID = primitive.NewObjectID()
	s.posts[post.ID.Hex()] = post
	return post, nil
}

func (s *fakePostStore) All(_ context.Context) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakePostStore) FindByID(_ context.Context, id string) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return models.Post{}, repositories.ErrNotFound
	}
	return p, nil
}

func (s *fakePostStore) Update(_ context.Context, id string, post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.posts[id]
	if !ok {
		return models.Post{}, repositories.ErrNotFound
	}
	post.ID = current.ID
	post.CreatedAt = current.CreatedAt
	s.posts[id] = post
	return post, nil
}

func (s *fakePostStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

// fakeOrderStore is an in-memory OrderStore.
type fakeOrderStore struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: map[string]models.Order{}}
}

func (s *fakeOrderStore) Create(_ context.Context, order models.Order) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = primitive.NewObjectID()
	id := order.ID.Hex()
	s.orders[id] = order
	return id, nil
}

func (s *fakeOrderStore) All(_ context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (s *fakeOrderStore) FindByUser(_ context.Context, userID string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *fakeOrderStore) UpdateStatus(_ context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	o.Status = status
	s.orders[id] = o
	return nil
}
