package usecases

import (
	"blog-server/auth"
	"blog-server/entities"
	"blog-server/repositories"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

type AuthUseCase struct {
	UserRepo repositories.UserRepository
}

func NewAuthUseCase(userRepo repositories.UserRepository) *AuthUseCase {
	return &AuthUseCase{UserRepo: userRepo}
}

// Register creates a user account. The plaintext password is hashed here,
// exactly once, before anything is persisted.
func (uc *AuthUseCase) Register(name, email, password string) (*entities.User, error) {
	if name == "" {
		return nil, validationErr("Please add a name")
	}
	if email == "" || !emailPattern.MatchString(email) {
		return nil, validationErr("Please add a valid email")
	}
	if len(password) < 6 {
		return nil, validationErr("Password must be at least 6 characters long")
	}

	if _, err := uc.UserRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:     name,
		Email:    email,
		Password: hash,
	}
	if err := uc.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and returns the matching user. Lookup failure and
// password mismatch are indistinguishable to the caller.
func (uc *AuthUseCase) Login(email, password string) (*entities.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := uc.UserRepo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser resolves an id from a verified token to a stored user.
func (uc *AuthUseCase) GetUser(id string) (*entities.User, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	user, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return user, nil
}
