package service

import (
	"errors"
	"strings"

	"github.com/thoughtsblog/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("required sign-up fields are missing")
)

// Defaults applied to a freshly registered writer profile.
const (
	defaultBio       = "Novo escritor"
	defaultAvatarURL = "/static/img/avatar-placeholder.svg"
)

// AuthService owns account creation and credential checks.
type AuthService struct {
	db *gorm.DB
}

// NewAuthService creates an AuthService instance.
func NewAuthService(gdb *gorm.DB) *AuthService {
	return &AuthService{db: gdb}
}

// SignUp registers a new account with a bcrypt-hashed password and the
// default profile fields. The email must be unused.
func (s *AuthService) SignUp(name, email, password string) (*db.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	var existing db.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := db.User{
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		Bio:       defaultBio,
		AvatarURL: defaultAvatarURL,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies the credentials and returns the matching user.
func (s *AuthService) Authenticate(email, password string) (*db.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user db.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
