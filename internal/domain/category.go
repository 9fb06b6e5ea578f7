package domain

import "time"

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Secondary-locale translation flattened onto the row for dashboard views.
	NameAr        string `json:"name_ar,omitempty"`
	DescriptionAr string `json:"description_ar,omitempty"`
}

// Translation is a localized name/description pair attached to a category or
// menu item. At most one row exists per (parent, locale).
type Translation struct {
	Locale      string `json:"locale"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
