package service

import (
	"errors"
	"strings"

	"github.com/thoughtsblog/internal/db"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNameRequired    = errors.New("name is required")
)

// ProfileService maps an identity to its display profile.
type ProfileService struct {
	db *gorm.DB
}

// ProfileInput represents the fields a user may change on their own profile.
type ProfileInput struct {
	Name      string
	Bio       string
	AvatarURL string
}

// NewProfileService creates a ProfileService instance.
func NewProfileService(gdb *gorm.DB) *ProfileService {
	return &ProfileService{db: gdb}
}

// Get fetches the profile for a user id.
func (s *ProfileService) Get(userID uint) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Update applies profile changes for the owning user only.
func (s *ProfileService) Update(userID uint, input ProfileInput) (*db.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Bio = strings.TrimSpace(input.Bio)
	user.AvatarURL = strings.TrimSpace(input.AvatarURL)

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
