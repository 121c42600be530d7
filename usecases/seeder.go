package usecases

import (
	"blog-server/auth"
	"blog-server/entities"
	"blog-server/repositories"
	"blog-server/slug"
	"fmt"
	"log"
)

// SeedResult reports how many records the seeder inserted.
type SeedResult struct {
	Categories int `json:"categories"`
	Users      int `json:"users"`
	Posts      int `json:"posts"`
}

type SeederUseCase struct {
	UserRepo     repositories.UserRepository
	CategoryRepo repositories.CategoryRepository
	PostRepo     repositories.PostRepository
}

func NewSeederUseCase(userRepo repositories.UserRepository, categoryRepo repositories.CategoryRepository, postRepo repositories.PostRepository) *SeederUseCase {
	return &SeederUseCase{
		UserRepo:     userRepo,
		CategoryRepo: categoryRepo,
		PostRepo:     postRepo,
	}
}

var seedCategoryNames = []string{
	"Technology", "Health", "Lifestyle", "Travel", "Finance", "Programming",
}

var seedUsers = []struct {
	Name  string
	Email string
}{
	{"Alice", "alice@example.com"},
	{"Bob", "bob@example.com"},
	{"Charlie", "charlie@example.com"},
	{"David", "david@example.com"},
	{"Eve", "eve@example.com"},
	{"Frank", "frankie@example.com"},
}

var seedContents = []string{
	"This is the content for the post. It is a sample to demonstrate seeding a larger number of posts. We can add more variations later.",
	"Learning about backend development is a journey. This post explores the key concepts and best practices.",
	"A discussion on the importance of state management in modern web applications. We compare different approaches.",
	"Exploring the latest language features and how they can improve your code.",
}

// Seed wipes all three tables and refills them with fixture data: six
// categories, six users (shared password "password123") and fifty posts.
// Development use only; it is wired behind the auth gate.
func (uc *SeederUseCase) Seed() (*SeedResult, error) {
	log.Println("Clearing existing data...")
	if err := uc.PostRepo.DeleteAll(); err != nil {
		return nil, fmt.Errorf("failed to clear posts: %w", err)
	}
	if err := uc.CategoryRepo.DeleteAll(); err != nil {
		return nil, fmt.Errorf("failed to clear categories: %w", err)
	}
	if err := uc.UserRepo.DeleteAll(); err != nil {
		return nil, fmt.Errorf("failed to clear users: %w", err)
	}

	log.Println("Inserting categories and users...")
	categories := make([]*entities.Category, 0, len(seedCategoryNames))
	for _, name := range seedCategoryNames {
		category := &entities.Category{
			Name: name,
			Slug: slug.Make(name),
		}
		if err := uc.CategoryRepo.Create(category); err != nil {
			return nil, fmt.Errorf("failed to seed category %q: %w", name, err)
		}
		categories = append(categories, category)
	}

	// One hash shared across fixtures; every seed account uses the same
	// password anyway and bcrypt is not cheap.
	hash, err := auth.HashPassword("password123")
	if err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		user := &entities.User{
			Name:     su.Name,
			Email:    su.Email,
			Password: hash,
		}
		if err := uc.UserRepo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to seed user %q: %w", su.Email, err)
		}
		users = append(users, user)
	}

	log.Println("Inserting 50 posts...")
	postCount := 50
	for i := 1; i <= postCount; i++ {
		user := users[i%len(users)]
		category := categories[i%len(categories)]
		content := seedContents[i%len(seedContents)]
		title := fmt.Sprintf("Sample Post #%d", i)

		post := &entities.Post{
			Title:      title,
			Slug:       slug.Make(title),
			Content:    fmt.Sprintf("<h2>This is a Sub-Heading</h2><p>%s This is post number %d.</p>", content, i),
			CategoryID: category.ID,
			AuthorID:   user.ID,
		}
		if err := uc.PostRepo.Create(post); err != nil {
			return nil, fmt.Errorf("failed to seed post %d: %w", i, err)
		}
	}
	log.Println("Database seeded successfully.")

	return &SeedResult{
		Categories: len(categories),
		Users:      len(users),
		Posts:      postCount,
	}, nil
}
