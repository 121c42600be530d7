package usecases

import (
	"blog-server/auth"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	userRepo := newFakeUserRepo()
	categoryRepo := newFakeCategoryRepo()
	postRepo := newFakePostRepo()

	uc := NewSeederUseCase(userRepo, categoryRepo, postRepo)

	result, err := uc.Seed()
	require.NoError(t, err)
	assert.Equal(t, 6, result.Categories)
	assert.Equal(t, 6, result.Users)
	assert.Equal(t, 50, result.Posts)

	categories, err := categoryRepo.GetAll()
	require.NoError(t, err)
	for _, c := range categories {
		assert.NotEmpty(t, c.Slug)
	}

	// fixture accounts can log in with the shared password
	user, err := userRepo.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(user.Password, "password123"))

	// a post slug drops the '#' from the title
	post, err := postRepo.GetBySlug("sample-post-1")
	require.NoError(t, err)
	assert.Equal(t, "Sample Post #1", post.Title)

	// seeding twice replaces rather than accumulates
	result, err = uc.Seed()
	require.NoError(t, err)
	total, err := postRepo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(result.Posts), total)
}
