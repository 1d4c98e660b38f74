// controllers/staff.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"
)

func staffResponse(s *models.Staff) gin.H {
	return gin.H{
		"id":        s.ID,
		"salonId":   s.SalonID,
		"name":      s.Name,
		"email":     s.Email,
		"specialty": s.Specialty,
		"image":     s.ImageDataURI(),
		"createdAt": s.CreatedAt,
		"updatedAt": s.UpdatedAt,
	}
}

// GetStaffBySalon lists all staff members of a salon.
func GetStaffBySalon(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("salonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var staff []models.Staff
	if err := config.DB.Where("salon_id = ?", salonUUID).Find(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}

	out := make([]gin.H, 0, len(staff))
	for i := range staff {
		out = append(out, staffResponse(&staff[i]))
	}
	c.JSON(http.StatusOK, out)
}

// CreateStaff adds a staff member to a salon from a multipart form.
func CreateStaff(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("salonId"))
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

	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	if name == "" || email == "" || password == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "name, email and password are required")
		return
	}

	var existing models.Staff
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	staff := models.Staff{
		SalonID:   salonUUID,
		Name:      name,
		Email:     email,
		Password:  password, // Hashed in BeforeCreate hook
		Specialty: c.PostForm("specialty"),
	}

	if file, err := c.FormFile("image"); err == nil {
		data, mime, err := utils.ReadUploadedImage(file)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		staff.Image = data
		staff.ImageType = mime
	}

	if err := config.DB.Create(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create staff")
		return
	}

	c.JSON(http.StatusCreated, staffResponse(&staff))
}

// UpdateStaff overwrites only the fields present in the multipart form.
func UpdateStaff(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("salonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	staffUUID, err := uuid.Parse(c.Param("staffId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	var staff models.Staff
	if err := config.DB.Where("salon_id = ? AND id = ?", salonUUID, staffUUID).
		First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Staff not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if name, ok := c.GetPostForm("name"); ok {
		staff.Name = name
	}
	if specialty, ok := c.GetPostForm("specialty"); ok {
		staff.Specialty = specialty
	}
	if email, ok := c.GetPostForm("email"); ok && email != staff.Email {
		var existing models.Staff
		if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Email already registered")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		staff.Email = email
	}
	if password, ok := c.GetPostForm("password"); ok {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update password")
			return
		}
		staff.Password = hashed
	}

	if file, err := c.FormFile("image"); err == nil {
		data, mime, err := utils.ReadUploadedImage(file)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		staff.Image = data
		staff.ImageType = mime
	}

	if err := config.DB.Save(&staff).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update staff")
		return
	}

	c.JSON(http.StatusOK, staffResponse(&staff))
}

// DeleteStaff removes a staff member.
func DeleteStaff(c *gin.Context) {
	salonUUID, err := uuid.Parse(c.Param("salonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	staffUUID, err := uuid.Parse(c.Param("staffId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid staff ID format")
		return
	}

	result := config.DB.Where("salon_id = ? AND id = ?", salonUUID, staffUUID).
		Delete(&models.Staff{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete staff")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Staff not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff deleted successfully"})
}
