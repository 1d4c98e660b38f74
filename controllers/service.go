// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"
)

func serviceResponse(s *models.Service) gin.H {
	return gin.H{
		"id":            s.ID,
		"salonId":       s.SalonID,
		"categoryId":    s.CategoryID,
		"subcategoryId": s.SubcategoryID,
		"name":          s.Name,
		"description":   s.Description,
		"price":         s.Price,
		"type":          s.Type,
		"image":         s.ImageDataURI(),
		"createdAt":     s.CreatedAt,
		"updatedAt":     s.UpdatedAt,
	}
}

func serviceListResponse(services []models.Service) []gin.H {
	out := make([]gin.H, 0, len(services))
	for i := range services {
		out = append(out, serviceResponse(&services[i]))
	}
	return out
}

// SearchServices lists all services, optionally filtered by a case-insensitive
// name substring via ?service=.
func SearchServices(c *gin.Context) {
	query := config.DB.Model(&models.Service{})
	if term := c.Query("service"); term != "" {
		query = query.Where("lower(name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, serviceListResponse(services))
}

// GetServicesBySalon lists every service offered by a salon.
func GetServicesBySalon(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var services []models.Service
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, serviceListResponse(services))
}

// CreateService adds a service from a multipart form with an optional inline
// image.
func CreateService(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.PostForm("salonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	name := c.PostForm("name")
	if name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "name is required")
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price")
		return
	}

	service := models.Service{
		SalonID:       salonUUID,
		Name:          name,
		Description:   c.PostForm("description"),
		Price:         price,
		Type:          c.PostForm("type"),
		SubcategoryID: c.PostForm("subcategoryId"),
	}

	if categoryID := c.PostForm("categoryId"); categoryID != "" {
		categoryUUID, err := uuid.Parse(categoryID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
			return
		}
		service.CategoryID = categoryUUID
	}

	if file, err := c.FormFile("image"); err == nil {
		data, mime, err := utils.ReadUploadedImage(file)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		service.Image = data
		service.ImageType = mime
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, serviceResponse(&service))
}

// UpdateService overwrites only the fields present in the multipart form.
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if name, ok := c.GetPostForm("name"); ok {
		service.Name = name
	}
	if description, ok := c.GetPostForm("description"); ok {
		service.Description = description
	}
	if priceStr, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid price")
			return
		}
		service.Price = price
	}
	if typ, ok := c.GetPostForm("type"); ok {
		service.Type = typ
	}
	if subcategoryID, ok := c.GetPostForm("subcategoryId"); ok {
		service.SubcategoryID = subcategoryID
	}
	if categoryID, ok := c.GetPostForm("categoryId"); ok {
		categoryUUID, err := uuid.Parse(categoryID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid category ID format")
			return
		}
		service.CategoryID = categoryUUID
	}

	if file, err := c.FormFile("image"); err == nil {
		data, mime, err := utils.ReadUploadedImage(file)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		service.Image = data
		service.ImageType = mime
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, serviceResponse(&service))
}

// DeleteService removes a service.
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Delete(&models.Service{}, "id = ?", serviceUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
