// services/category_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbook-backend/models"
	"salonbook-backend/utils"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
)

// CategoryPatch carries a field-level category merge. Image, when set, is a
// freshly stored filename that replaces (and deletes) the previous one.
type CategoryPatch struct {
	Name        *string
	Description *string
	Image       *string
}

// CategoryService owns the category/subcategory lifecycle and the stored
// image files each record points at. File removal always happens after the
// record write has committed and is never fatal.
type CategoryService struct {
	db        *gorm.DB
	uploadDir string
}

func NewCategoryService(db *gorm.DB, uploadDir string) *CategoryService {
	return &CategoryService{db: db, uploadDir: uploadDir}
}

// ActiveCategories lists the salon's categories, excluding soft-deleted ones.
func (s *CategoryService) ActiveCategories(salonID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Where("salon_id = ? AND is_active = ?", salonID, true).
		Order("created_at").Find(&categories).Error
	return categories, err
}

// Find loads a category regardless of its active flag, so soft-deleted
// categories stay reachable for permanent deletion.
func (s *CategoryService) Find(salonID, categoryID uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("salon_id = ? AND id = ?", salonID, categoryID).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Create(category *models.Category) error {
	return s.db.Create(category).Error
}

// Update merges the patch into the category. When a new image was stored the
// previous file is removed once the row update has gone through.
func (s *CategoryService) Update(category *models.Category, patch CategoryPatch) error {
	oldImage := ""
	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Description != nil {
		category.Description = *patch.Description
	}
	if patch.Image != nil {
		oldImage = category.ImageURL
		category.ImageURL = *patch.Image
	}

	if err := s.db.Save(category).Error; err != nil {
		return err
	}

	if oldImage != "" && oldImage != category.ImageURL {
		utils.RemoveStoredImage(s.uploadDir, oldImage)
	}
	return nil
}

// SoftDelete flags the category inactive. Stored files are kept.
func (s *CategoryService) SoftDelete(category *models.Category) error {
	return s.db.Model(category).Update("is_active", false).Error
}

// PermanentDelete removes the category row and then every image file it
// owned, its own and each subcategory's.
func (s *CategoryService) PermanentDelete(category *models.Category) error {
	if err := s.db.Delete(category).Error; err != nil {
		return err
	}

	utils.RemoveStoredImage(s.uploadDir, category.ImageURL)
	for _, sub := range category.Subcategories {
		utils.RemoveStoredImage(s.uploadDir, sub.ImageURL)
	}
	return nil
}

// AddSubcategory appends a subcategory with a generated id and persists the
// sequence.
func (s *CategoryService) AddSubcategory(category *models.Category, sub models.Subcategory) (*models.Subcategory, error) {
	sub.ID = uuid.NewString()
	category.Subcategories = append(category.Subcategories, sub)

	if err := s.db.Model(category).Update("subcategories", category.Subcategories).Error; err != nil {
		return nil, err
	}
	return &category.Subcategories[len(category.Subcategories)-1], nil
}

// UpdateSubcategory merges the patch into the matching entry. A replaced
// image file is removed after the row update succeeds.
func (s *CategoryService) UpdateSubcategory(category *models.Category, subID string, patch models.SubcategoryPatch) (*models.Subcategory, error) {
	oldImage := ""
	if i := category.FindSubcategory(subID); i >= 0 {
		oldImage = category.Subcategories[i].ImageURL
	}

	sub, ok := category.MergeSubcategory(subID, patch)
	if !ok {
		return nil, ErrSubcategoryNotFound
	}

	if err := s.db.Model(category).Update("subcategories", category.Subcategories).Error; err != nil {
		return nil, err
	}

	if patch.ImageURL != nil && oldImage != "" && oldImage != sub.ImageURL {
		utils.RemoveStoredImage(s.uploadDir, oldImage)
	}
	return sub, nil
}

// DeleteSubcategory removes exactly the matching entry and its image file.
// An unknown id leaves the sequence untouched.
func (s *CategoryService) DeleteSubcategory(category *models.Category, subID string) error {
	removed, ok := category.RemoveSubcategory(subID)
	if !ok {
		return ErrSubcategoryNotFound
	}

	if err := s.db.Model(category).Update("subcategories", category.Subcategories).Error; err != nil {
		return err
	}

	utils.RemoveStoredImage(s.uploadDir, removed.ImageURL)
	return nil
}
