package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"salonbook-backend/models"
)

func writeStoredFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
}

func fileExists(t *testing.T, dir, name string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

func createTestCategory(t *testing.T, db *gorm.DB, subs ...models.Subcategory) models.Category {
	t.Helper()

	category := models.Category{
		SalonID:       uuid.New(),
		Name:          "Hair",
		Description:   "Hair services",
		ImageURL:      "hair.jpg",
		IsActive:      true,
		Subcategories: datatypes.NewJSONSlice(subs),
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return category
}

func TestDeleteSubcategory_RemovesEntryAndFile(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	svc := NewCategoryService(db, dir)

	subA := models.Subcategory{ID: uuid.NewString(), Name: "Cut", ImageURL: "cut.png"}
	subB := models.Subcategory{ID: uuid.NewString(), Name: "Color", ImageURL: "color.png"}
	category := createTestCategory(t, db, subA, subB)

	writeStoredFile(t, dir, "cut.png")
	writeStoredFile(t, dir, "color.png")

	if err := svc.DeleteSubcategory(&category, subA.ID); err != nil {
		t.Fatalf("failed to delete subcategory: %v", err)
	}

	var reloaded models.Category
	if err := db.First(&reloaded, "id = ?", category.ID).Error; err != nil {
		t.Fatalf("failed to reload category: %v", err)
	}
	if len(reloaded.Subcategories) != 1 {
		t.Fatalf("expected exactly one subcategory left, got %d", len(reloaded.Subcategories))
	}
	if reloaded.Subcategories[0].ID != subB.ID {
		t.Fatalf("wrong subcategory removed, %q survived", reloaded.Subcategories[0].ID)
	}

	if fileExists(t, dir, "cut.png") {
		t.Fatal("expected cut.png to be removed")
	}
	if !fileExists(t, dir, "color.png") {
		t.Fatal("expected color.png to survive")
	}
}

func TestDeleteSubcategory_UnknownIDLeavesSequence(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db, t.TempDir())

	subA := models.Subcategory{ID: uuid.NewString(), Name: "Cut"}
	subB := models.Subcategory{ID: uuid.NewString(), Name: "Color"}
	category := createTestCategory(t, db, subA, subB)

	err := svc.DeleteSubcategory(&category, "does-not-exist")
	if !errors.Is(err, ErrSubcategoryNotFound) {
		t.Fatalf("expected ErrSubcategoryNotFound, got %v", err)
	}

	var reloaded models.Category
	if err := db.First(&reloaded, "id = ?", category.ID).Error; err != nil {
		t.Fatalf("failed to reload category: %v", err)
	}
	if len(reloaded.Subcategories) != 2 {
		t.Fatalf("sequence mutated on missing id, got %d entries", len(reloaded.Subcategories))
	}
}

func TestUpdateSubcategory_MergesProvidedFieldsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db, t.TempDir())

	sub := models.Subcategory{
		ID:          uuid.NewString(),
		Name:        "Cut",
		Description: "classic cuts",
		ImageURL:    "cut.png",
	}
	category := createTestCategory(t, db, sub)

	name := "Premium Cut"
	updated, err := svc.UpdateSubcategory(&category, sub.ID, models.SubcategoryPatch{Name: &name})
	if err != nil {
		t.Fatalf("failed to update subcategory: %v", err)
	}
	if updated.Name != "Premium Cut" {
		t.Fatalf("expected renamed subcategory, got %q", updated.Name)
	}
	if updated.Description != "classic cuts" || updated.ImageURL != "cut.png" {
		t.Fatalf("unprovided fields were overwritten: %+v", updated)
	}
}

func TestUpdateSubcategory_ImageReplacementDeletesOldFile(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	svc := NewCategoryService(db, dir)

	sub := models.Subcategory{ID: uuid.NewString(), Name: "Cut", ImageURL: "old.png"}
	category := createTestCategory(t, db, sub)
	writeStoredFile(t, dir, "old.png")
	writeStoredFile(t, dir, "new.png")

	image := "new.png"
	updated, err := svc.UpdateSubcategory(&category, sub.ID, models.SubcategoryPatch{ImageURL: &image})
	if err != nil {
		t.Fatalf("failed to update subcategory: %v", err)
	}
	if updated.ImageURL != "new.png" {
		t.Fatalf("expected new image, got %q", updated.ImageURL)
	}
	if fileExists(t, dir, "old.png") {
		t.Fatal("expected replaced image file to be removed")
	}
	if !fileExists(t, dir, "new.png") {
		t.Fatal("expected new image file to survive")
	}
}

func TestSoftDelete_HiddenFromListingButRetrievable(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	svc := NewCategoryService(db, dir)

	category := createTestCategory(t, db)
	writeStoredFile(t, dir, category.ImageURL)

	other := models.Category{SalonID: category.SalonID, Name: "Nails", IsActive: true}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("failed to create second category: %v", err)
	}

	if err := svc.SoftDelete(&category); err != nil {
		t.Fatalf("failed to soft delete: %v", err)
	}

	active, err := svc.ActiveCategories(category.SalonID)
	if err != nil {
		t.Fatalf("failed to list categories: %v", err)
	}
	if len(active) != 1 || active[0].ID != other.ID {
		t.Fatalf("soft-deleted category still listed: %+v", active)
	}

	// Still reachable for permanent deletion, files untouched.
	found, err := svc.Find(category.SalonID, category.ID)
	if err != nil {
		t.Fatalf("expected soft-deleted category to stay retrievable, got %v", err)
	}
	if found.IsActive {
		t.Fatal("expected category to be inactive")
	}
	if !fileExists(t, dir, category.ImageURL) {
		t.Fatal("soft delete must not remove stored files")
	}
}

func TestPermanentDelete_RemovesRowAndFiles(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	svc := NewCategoryService(db, dir)

	sub := models.Subcategory{ID: uuid.NewString(), Name: "Cut", ImageURL: "cut.png"}
	category := createTestCategory(t, db, sub)
	writeStoredFile(t, dir, "hair.jpg")
	writeStoredFile(t, dir, "cut.png")

	if err := svc.PermanentDelete(&category); err != nil {
		t.Fatalf("failed to permanently delete: %v", err)
	}

	if _, err := svc.Find(category.SalonID, category.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected category row to be gone, got %v", err)
	}
	if fileExists(t, dir, "hair.jpg") || fileExists(t, dir, "cut.png") {
		t.Fatal("expected every owned image file to be removed")
	}
}

func TestUpdate_CategoryImageReplacementDeletesOldFile(t *testing.T) {
	db := newTestDB(t)
	dir := t.TempDir()
	svc := NewCategoryService(db, dir)

	category := createTestCategory(t, db)
	writeStoredFile(t, dir, "hair.jpg")
	writeStoredFile(t, dir, "hair-new.jpg")

	image := "hair-new.jpg"
	if err := svc.Update(&category, CategoryPatch{Image: &image}); err != nil {
		t.Fatalf("failed to update category: %v", err)
	}

	if category.ImageURL != "hair-new.jpg" {
		t.Fatalf("expected new image, got %q", category.ImageURL)
	}
	if fileExists(t, dir, "hair.jpg") {
		t.Fatal("expected replaced image file to be removed")
	}
}
