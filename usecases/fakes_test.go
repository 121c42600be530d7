package usecases

import (
	"blog-server/entities"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// In-memory repositories for testing. They mimic the persistence layer's
// behavior: id/timestamp assignment on create and unique-constraint
// enforcement on the declared unique columns.

var errRecordNotFound = errors.New("record not found")

type fakeUserRepo struct {
	users []*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{}
}

func (r *fakeUserRepo) Create(user *entities.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("duplicate key value violates unique constraint on email")
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now().Format(time.RFC3339)
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errRecordNotFound
}

func (r *fakeUserRepo) GetAll() ([]entities.User, error) {
	out := make([]entities.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) DeleteAll() error {
	r.users = nil
	return nil
}

type fakeCategoryRepo struct {
	categories []*entities.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{}
}

func (r *fakeCategoryRepo) Create(category *entities.Category) error {
	for _, c := range r.categories {
		if c.Name == category.Name || c.Slug == category.Slug {
			return fmt.Errorf("duplicate key value violates unique constraint on categories")
		}
	}
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	category.CreatedAt = time.Now().Format(time.RFC3339)
	category.UpdatedAt = category.CreatedAt
	copied := *category
	r.categories = append(r.categories, &copied)
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entities.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, errRecordNotFound
}

func (r *fakeCategoryRepo) GetBySlug(slug string) (*entities.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			copied := *c
			return &copied, nil
		}
	}
	return nil, errRecordNotFound
}

func (r *fakeCategoryRepo) GetAll() ([]entities.Category, error) {
	out := make([]entities.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) DeleteAll() error {
	r.categories = nil
	return nil
}

type fakePostRepo struct {
	posts []*entities.Post // insertion order; List returns newest first
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{}
}

func (r *fakePostRepo) Create(post *entities.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	post.CreatedAt = time.Now().Format(time.RFC3339)
	post.UpdatedAt = post.CreatedAt
	copied := *post
	r.posts = append(r.posts, &copied)
	return nil
}

func (r *fakePostRepo) GetByID(id string) (*entities.Post, error) {
	for _, p := range r.posts {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, errRecordNotFound
}

func (r *fakePostRepo) GetBySlug(slug string) (*entities.Post, error) {
	// oldest first, matching the repository's collision behavior
	for _, p := range r.posts {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, errRecordNotFound
}

func (r *fakePostRepo) List(offset, limit int) ([]entities.Post, error) {
	out := make([]entities.Post, 0, limit)
	for i := len(r.posts) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, *r.posts[i])
	}
	return out, nil
}

func (r *fakePostRepo) Count() (int64, error) {
	return int64(len(r.posts)), nil
}

func (r *fakePostRepo) Update(post *entities.Post) error {
	for i, p := range r.posts {
		if p.ID == post.ID {
			post.UpdatedAt = time.Now().Format(time.RFC3339)
			copied := *post
			r.posts[i] = &copied
			return nil
		}
	}
	return errRecordNotFound
}

func (r *fakePostRepo) Delete(id string) error {
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return errRecordNotFound
}

func (r *fakePostRepo) DeleteAll() error {
	r.posts = nil
	return nil
}

func (r *fakePostRepo) AddViews(id string, views int64) error {
	for _, p := range r.posts {
		if p.ID == id {
			p.ViewCount += views
			return nil
		}
	}
	return errRecordNotFound
}
