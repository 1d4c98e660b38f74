package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Subcategory is a nested child record stored inside the category row.
// Its ID is generated when the subcategory is added and is unique within
// the owning category.
type Subcategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// SubcategoryPatch carries a field-level merge: only non-nil fields are
// applied to the existing subcategory.
type SubcategoryPatch struct {
	Name        *string
	Description *string
	ImageURL    *string
}

type Category struct {
	ID            uuid.UUID                        `gorm:"type:uuid;primary_key" json:"id"`
	SalonID       uuid.UUID                        `gorm:"type:uuid;uniqueIndex:idx_salon_category,priority:1;not null" json:"salonId"`
	Name          string                           `gorm:"not null;uniqueIndex:idx_salon_category,priority:2" json:"name"`
	Description   string                           `json:"description"`
	ImageURL      string                           `json:"imageUrl"`
	IsActive      bool                             `gorm:"default:true" json:"isActive"`
	Subcategories datatypes.JSONSlice[Subcategory] `json:"subcategories"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

// FindSubcategory returns the index of the subcategory with the given id,
// or -1 when it does not exist.
func (c *Category) FindSubcategory(id string) int {
	for i := range c.Subcategories {
		if c.Subcategories[i].ID == id {
			return i
		}
	}
	return -1
}

// MergeSubcategory applies the patch to the subcategory with the given id
// and returns the updated entry. Only fields set on the patch are changed.
func (c *Category) MergeSubcategory(id string, patch SubcategoryPatch) (*Subcategory, bool) {
	i := c.FindSubcategory(id)
	if i < 0 {
		return nil, false
	}
	sub := &c.Subcategories[i]
	if patch.Name != nil {
		sub.Name = *patch.Name
	}
	if patch.Description != nil {
		sub.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		sub.ImageURL = *patch.ImageURL
	}
	return sub, true
}

// RemoveSubcategory deletes the subcategory with the given id from the
// sequence and returns the removed entry. The sequence is left untouched
// when the id is unknown.
func (c *Category) RemoveSubcategory(id string) (Subcategory, bool) {
	i := c.FindSubcategory(id)
	if i < 0 {
		return Subcategory{}, false
	}
	removed := c.Subcategories[i]
	c.Subcategories = append(c.Subcategories[:i], c.Subcategories[i+1:]...)
	return removed, true
}
