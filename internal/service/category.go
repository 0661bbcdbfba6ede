package service

import (
	"fmt"
	"strings"

	"github.com/jamundie/FoodTrackerApp/internal/model"
)

// CategoryPolicy decides which food categories a form accepts. The two
// implementations cover the looser and stricter takes on categories so the
// form code stays agnostic to which one is active.
type CategoryPolicy interface {
	Validate(category string) error
}

// FreeTextCategory accepts any non-empty category text.
type FreeTextCategory struct{}

func (FreeTextCategory) Validate(category string) error {
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("category is required")
	}
	return nil
}

// EnumeratedCategory accepts only a fixed set of categories.
type EnumeratedCategory struct {
	Allowed []model.FoodCategory
}

func (p EnumeratedCategory) Validate(category string) error {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return fmt.Errorf("category is required")
	}
	for _, allowed := range p.Allowed {
		if model.FoodCategory(trimmed) == allowed {
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", trimmed)
}

// DefaultCategoryPolicy is the built-in nine-category closed set.
func DefaultCategoryPolicy() CategoryPolicy {
	return EnumeratedCategory{Allowed: model.FoodCategories}
}
