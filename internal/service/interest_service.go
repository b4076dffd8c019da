package service

import (
	"github.com/thoughtsblog/internal/db"
	"gorm.io/gorm"
)

// InterestService owns the category reference data and a user's declared
// interests.
type InterestService struct {
	db *gorm.DB
}

// NewInterestService creates an InterestService instance.
func NewInterestService(gdb *gorm.DB) *InterestService {
	return &InterestService{db: gdb}
}

// Categories returns all categories ordered by name.
func (s *InterestService) Categories() ([]db.Category, error) {
	var categories []db.Category
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// InterestIDs returns the category ids the user declared interest in.
func (s *InterestService) InterestIDs(userID uint) ([]uint, error) {
	var ids []uint
	if err := s.db.Model(&db.Interest{}).
		Where("user_id = ?", userID).
		Pluck("category_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ReplaceInterests swaps the user's whole interest set for the given
// category ids. Delete and insert run in one transaction so a failure
// never leaves the user with an empty set.
func (s *InterestService) ReplaceInterests(userID uint, categoryIDs []uint) error {
	unique := make([]uint, 0, len(categoryIDs))
	seen := make(map[uint]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&db.Interest{}).Error; err != nil {
			return err
		}
		if len(unique) == 0 {
			return nil
		}
		interests := make([]db.Interest, 0, len(unique))
		for _, id := range unique {
			interests = append(interests, db.Interest{UserID: userID, CategoryID: id})
		}
		return tx.Create(&interests).Error
	})
}
