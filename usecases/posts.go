package usecases

import (
	"blog-server/cache"
	"blog-server/entities"
	"blog-server/repositories"
	"blog-server/slug"

	"github.com/google/uuid"
)

const (
	DefaultPage  = 1
	DefaultLimit = 6
)

// Pagination describes one page of the post listing.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalPosts  int64 `json:"totalPosts"`
}

// PostUpdate carries a partial-field replacement. Empty fields are absent
// from the payload and leave the stored value untouched. The author is not
// part of an update: it is fixed at creation.
type PostUpdate struct {
	Title         string
	Content       string
	CategoryID    string
	FeaturedImage string
}

type PostUseCase struct {
	PostRepo     repositories.PostRepository
	CategoryRepo repositories.CategoryRepository
	Views        *cache.ViewCounter
}

func NewPostUseCase(postRepo repositories.PostRepository, categoryRepo repositories.CategoryRepository, views *cache.ViewCounter) *PostUseCase {
	return &PostUseCase{
		PostRepo:     postRepo,
		CategoryRepo: categoryRepo,
		Views:        views,
	}
}

// CreatePost validates and stores a new post. The slug is derived from the
// title; the author must already be stamped by the caller from the verified
// request identity.
func (uc *PostUseCase) CreatePost(post *entities.Post) error {
	if len(post.Title) < 5 {
		return validationErr("Title must be at least 5 characters long.")
	}
	if len(post.Content) < 20 {
		return validationErr("Content must be at least 20 characters long.")
	}
	if post.AuthorID == "" {
		return validationErr("Author is required.")
	}
	if post.CategoryID == "" {
		return validationErr("Category is required.")
	}
	if _, err := uc.CategoryRepo.GetByID(post.CategoryID); err != nil {
		return validationErr("Invalid category ID.")
	}

	post.Slug = slug.Make(post.Title)
	return uc.PostRepo.Create(post)
}

// GetPostByIdentifier looks a post up by opaque id when the identifier parses
// as a UUID, otherwise by slug.
func (uc *PostUseCase) GetPostByIdentifier(identifier string) (*entities.Post, error) {
	if identifier == "" {
		return nil, ErrNotFound
	}

	var (
		post *entities.Post
		err  error
	)
	if _, parseErr := uuid.Parse(identifier); parseErr == nil {
		post, err = uc.PostRepo.GetByID(identifier)
	} else {
		post, err = uc.PostRepo.GetBySlug(identifier)
	}
	if err != nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// ListPosts returns one page of posts, newest first.
func (uc *PostUseCase) ListPosts(page, limit int) ([]entities.Post, Pagination, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total, err := uc.PostRepo.Count()
	if err != nil {
		return nil, Pagination{}, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	posts, err := uc.PostRepo.List((page-1)*limit, limit)
	if err != nil {
		return nil, Pagination{}, err
	}

	return posts, Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalPosts:  total,
	}, nil
}

// UpdatePost applies a partial update. The slug is recomputed only when the
// payload carries a new title.
func (uc *PostUseCase) UpdatePost(identifier string, update PostUpdate) (*entities.Post, error) {
	post, err := uc.GetPostByIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	if update.Title != "" {
		if len(update.Title) < 5 {
			return nil, validationErr("Title must be at least 5 characters long.")
		}
		post.Title = update.Title
		post.Slug = slug.Make(update.Title)
	}
	if update.Content != "" {
		if len(update.Content) < 20 {
			return nil, validationErr("Content must be at least 20 characters long.")
		}
		post.Content = update.Content
	}
	if update.CategoryID != "" {
		if _, err := uc.CategoryRepo.GetByID(update.CategoryID); err != nil {
			return nil, validationErr("Invalid category ID.")
		}
		post.CategoryID = update.CategoryID
		post.Category = nil
	}
	if update.FeaturedImage != "" {
		post.FeaturedImage = update.FeaturedImage
	}

	if err := uc.PostRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post outright; there is no soft delete.
func (uc *PostUseCase) DeletePost(identifier string) error {
	post, err := uc.GetPostByIdentifier(identifier)
	if err != nil {
		return err
	}
	return uc.PostRepo.Delete(post.ID)
}

// RecordView counts a read against the post. Views accumulate in memory and
// reach the database when the flusher drains the counter.
func (uc *PostUseCase) RecordView(postID string) {
	if uc.Views != nil {
		uc.Views.Add(postID)
	}
}
