// controllers/category.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"
)

func categoryService() *services.CategoryService {
	return services.NewCategoryService(config.DB, config.Cfg.UploadDir)
}

// storeCategoryImage saves an uploaded "image" file, if any, and returns the
// stored filename. ok is false when the upload was rejected.
func storeCategoryImage(c *gin.Context) (name string, ok bool) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", true
	}
	name, err = utils.SaveUploadedImage(file, config.Cfg.UploadDir)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return "", false
	}
	return name, true
}

func findCategory(c *gin.Context) (*services.CategoryService, *models.Category, bool) {
	salonUUID, err := uuid.Parse(c.Param("salonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return nil, nil, false
	}

	categoryUUID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
		return nil, nil, false
	}

	svc := categoryService()
	category, err := svc.Find(salonUUID, categoryUUID)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, nil, false
	}
	return svc, category, true
}

// GetCategories lists a salon's active categories. Soft-deleted ones are
// hidden here but stay reachable for permanent deletion.
func GetCategories(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("salonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	categories, err := categoryService().ActiveCategories(salonUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory creates a category from a multipart form with an optional
// image stored under the upload directory.
func CreateCategory(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("salonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	name := c.PostForm("name")
	if name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "name is required")
		return
	}

	var existing models.Category
	if err := config.DB.Where("salon_id = ? AND name = ?", salonUUID, name).
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Category with this name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	imageName, ok := storeCategoryImage(c)
	if !ok {
		return
	}

	category := models.Category{
		SalonID:     salonUUID,
		Name:        name,
		Description: c.PostForm("description"),
		ImageURL:    imageName,
		IsActive:    true,
	}

	if err := categoryService().Create(&category); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory merges the provided fields; a new image replaces and
// removes the previously stored file.
func UpdateCategory(c *gin.Context) {
	svc, category, ok := findCategory(c)
	if !ok {
		return
	}

	var patch services.CategoryPatch
	if name, ok := c.GetPostForm("name"); ok {
		patch.Name = &name
	}
	if description, ok := c.GetPostForm("description"); ok {
		patch.Description = &description
	}

	imageName, ok := storeCategoryImage(c)
	if !ok {
		return
	}
	if imageName != "" {
		patch.Image = &imageName
	}

	if err := svc.Update(category, patch); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory soft deletes a category. Stored files are kept.
func DeleteCategory(c *gin.Context) {
	svc, category, ok := findCategory(c)
	if !ok {
		return
	}

	if err := svc.SoftDelete(category); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deactivated successfully"})
}

// PermanentDeleteCategory hard deletes a category together with its image
// and every subcategory image.
func PermanentDeleteCategory(c *gin.Context) {
	svc, category, ok := findCategory(c)
	if !ok {
		return
	}

	if err := svc.PermanentDelete(category); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted permanently"})
}

// AddSubcategory appends a subcategory with a generated id.
func AddSubcategory(c *gin.Context) {
	svc, category, ok := findCategory(c)
	if !ok {
		return
	}

	name := c.PostForm("name")
	if name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "name is required")
		return
	}

	imageName, ok := storeCategoryImage(c)
	if !ok {
		return
	}

	sub, err := svc.AddSubcategory(category, models.Subcategory{
		Name:        name,
		Description: c.PostForm("description"),
		ImageURL:    imageName,
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add subcategory")
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// UpdateSubcategory merges only the provided fields into the matching entry.
func UpdateSubcategory(c *gin.Context) {
	svc, category, ok := findCategory(c)
	if !ok {
		return
	}

	var patch models.SubcategoryPatch
	if name, ok := c.GetPostForm("name"); ok {
		patch.Name = &name
	}
	if description, ok := c.GetPostForm("description"); ok {
		patch.Description = &description
	}

	imageName, ok := storeCategoryImage(c)
	if !ok {
		return
	}
	if imageName != "" {
		patch.ImageURL = &imageName
	}

	sub, err := svc.UpdateSubcategory(category, c.Param("subId"), patch)
	if err != nil {
		if errors.Is(err, services.ErrSubcategoryNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Subcategory not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update subcategory")
		}
		return
	}

	c.JSON(http.StatusOK, sub)
}

// DeleteSubcategory removes the matching entry and its stored image.
func DeleteSubcategory(c *gin.Context) {
	svc, category, ok := findCategory(c)
	if !ok {
		return
	}

	if err := svc.DeleteSubcategory(category, c.Param("subId")); err != nil {
		if errors.Is(err, services.ErrSubcategoryNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Subcategory not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete subcategory")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully"})
}
