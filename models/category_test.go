package models

import (
	"testing"

	"gorm.io/datatypes"
)

func sampleCategory() Category {
	return Category{
		Subcategories: datatypes.NewJSONSlice([]Subcategory{
			{ID: "a", Name: "Cut", Description: "classic cuts", ImageURL: "cut.png"},
			{ID: "b", Name: "Color", Description: "coloring", ImageURL: "color.png"},
			{ID: "c", Name: "Style"},
		}),
	}
}

func TestFindSubcategory(t *testing.T) {
	c := sampleCategory()

	if i := c.FindSubcategory("b"); i != 1 {
		t.Fatalf("expected index 1, got %d", i)
	}
	if i := c.FindSubcategory("missing"); i != -1 {
		t.Fatalf("expected -1 for unknown id, got %d", i)
	}
}

func TestMergeSubcategory(t *testing.T) {
	c := sampleCategory()

	name := "Balayage"
	sub, ok := c.MergeSubcategory("b", SubcategoryPatch{Name: &name})
	if !ok {
		t.Fatal("expected merge to find the subcategory")
	}
	if sub.Name != "Balayage" {
		t.Fatalf("expected merged name, got %q", sub.Name)
	}
	if sub.Description != "coloring" || sub.ImageURL != "color.png" {
		t.Fatalf("unpatched fields changed: %+v", sub)
	}

	if _, ok := c.MergeSubcategory("missing", SubcategoryPatch{Name: &name}); ok {
		t.Fatal("expected merge to miss unknown id")
	}
}

func TestRemoveSubcategory(t *testing.T) {
	c := sampleCategory()

	removed, ok := c.RemoveSubcategory("b")
	if !ok {
		t.Fatal("expected removal to find the subcategory")
	}
	if removed.ID != "b" {
		t.Fatalf("removed wrong entry: %q", removed.ID)
	}
	if len(c.Subcategories) != 2 {
		t.Fatalf("expected 2 entries left, got %d", len(c.Subcategories))
	}
	if c.Subcategories[0].ID != "a" || c.Subcategories[1].ID != "c" {
		t.Fatalf("remaining order broken: %+v", c.Subcategories)
	}

	if _, ok := c.RemoveSubcategory("missing"); ok {
		t.Fatal("expected removal to miss unknown id")
	}
	if len(c.Subcategories) != 2 {
		t.Fatalf("sequence mutated on missing id, got %d entries", len(c.Subcategories))
	}
}
