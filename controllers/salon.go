// controllers/salon.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"
)

// salonResponse renders a salon with its image as a base64 data URI and
// without the password hash.
func salonResponse(s *models.Salon) gin.H {
	return gin.H{
		"id":          s.ID,
		"name":        s.Name,
		"location":    s.Location,
		"coordinates": s.Coordinates.Data(),
		"phone":       s.Phone,
		"email":       s.Email,
		"image":       s.ImageDataURI(),
		"createdAt":   s.CreatedAt,
		"updatedAt":   s.UpdatedAt,
	}
}

// CreateSalon registers a new salon from a multipart form with an optional
// inline image.
func CreateSalon(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	if name == "" || email == "" || password == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "name, email and password are required")
		return
	}

	phone := c.PostForm("phone")
	if phone != "" && !utils.ValidatePhone(phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	var existing models.Salon
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	salon := models.Salon{
		Name:     name,
		Location: c.PostForm("location"),
		Phone:    phone,
		Email:    email,
		Password: password, // Hashed in BeforeCreate hook
	}

	lat, latErr := strconv.ParseFloat(c.PostForm("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.PostForm("lng"), 64)
	if latErr == nil && lngErr == nil {
		salon.Coordinates = datatypes.NewJSONType(models.Coordinates{Lat: lat, Lng: lng})
	}

	if file, err := c.FormFile("image"); err == nil {
		data, mime, err := utils.ReadUploadedImage(file)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		salon.Image = data
		salon.ImageType = mime
	}

	if err := config.DB.Create(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create salon")
		return
	}

	c.JSON(http.StatusCreated, salonResponse(&salon))
}

// GetSalons lists every salon.
func GetSalons(c *gin.Context) {
	var salons []models.Salon
	if err := config.DB.Find(&salons).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve salons")
		return
	}

	out := make([]gin.H, 0, len(salons))
	for i := range salons {
		out = append(out, salonResponse(&salons[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetSalon retrieves a single salon by ID.
func GetSalon(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var salon models.Salon
	if err := config.DB.First(&salon, "id = ?", salonUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, salonResponse(&salon))
}

// UpdateSalon overwrites only the fields present in the multipart form.
func UpdateSalon(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var salon models.Salon
	if err := config.DB.First(&salon, "id = ?", salonUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if name, ok := c.GetPostForm("name"); ok {
		salon.Name = name
	}
	if location, ok := c.GetPostForm("location"); ok {
		salon.Location = location
	}
	if phone, ok := c.GetPostForm("phone"); ok {
		if !utils.ValidatePhone(phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		salon.Phone = phone
	}
	if email, ok := c.GetPostForm("email"); ok && email != salon.Email {
		var existing models.Salon
		if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Email already registered")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		salon.Email = email
	}
	if password, ok := c.GetPostForm("password"); ok {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
			return
		}
		salon.Password = hashed
	}

	lat, latErr := strconv.ParseFloat(c.PostForm("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.PostForm("lng"), 64)
	if latErr == nil && lngErr == nil {
		salon.Coordinates = datatypes.NewJSONType(models.Coordinates{Lat: lat, Lng: lng})
	}

	if file, err := c.FormFile("image"); err == nil {
		data, mime, err := utils.ReadUploadedImage(file)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		salon.Image = data
		salon.ImageType = mime
	}

	if err := config.DB.Save(&salon).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update salon")
		return
	}

	c.JSON(http.StatusOK, salonResponse(&salon))
}

// DeleteSalon removes a salon.
func DeleteSalon(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	result := config.DB.Delete(&models.Salon{}, "id = ?", salonUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete salon")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Salon deleted successfully"})
}
