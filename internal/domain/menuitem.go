package domain

import "time"

type MenuItem struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"category_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	Availability bool      `json:"availability"`
	IsActive     bool      `json:"is_active"`
	ImageKey     string    `json:"image_key,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	NameAr        string `json:"name_ar,omitempty"`
	DescriptionAr string `json:"description_ar,omitempty"`
	CategoryName  string `json:"category_name,omitempty"`

	Sizes []MenuItemSize `json:"sizes,omitempty"`
}

// MenuItemSize is a named, priced variant of a menu item. The labels live in
// per-locale translation rows; Name carries the primary locale, NameAr the
// secondary one when present.
type MenuItemSize struct {
	ID         string `json:"id"`
	MenuItemID string `json:"menu_item_id"`
	Price      int64  `json:"price"`
	IsActive   bool   `json:"is_active"`
	Name       string `json:"name"`
	NameAr     string `json:"name_ar,omitempty"`
}

// MenuItemPrice is the legacy count-per-unit pricing row, unique per
// (menu_item_id, type). Superseded by sizes but still written by the
// legacy workflow.
type MenuItemPrice struct {
	ID         string `json:"id"`
	MenuItemID string `json:"menu_item_id"`
	Type       string `json:"type"`
	Count      int    `json:"count"`
	Price      int64  `json:"price"`
}

// MenuItemMaxOrderLimit caps orderable quantity per unit, unique per
// (menu_item_id, unit).
type MenuItemMaxOrderLimit struct {
	MenuItemID string `json:"menu_item_id"`
	Unit       string `json:"unit"`
	LimitValue int    `json:"limit_value"`
}

// SellUnits are the valid values for MenuItemPrice.Type and
// MenuItemMaxOrderLimit.Unit.
var SellUnits = []string{"gram", "box"}

func ValidSellUnit(u string) bool {
	for _, v := range SellUnits {
		if u == v {
			return true
		}
	}
	return false
}

// PublicMenuItem is the localized projection served to the marketing site.
type PublicMenuItem struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Availability bool           `json:"availability"`
	ImageKey     string         `json:"image_key,omitempty"`
	CategoryID   string         `json:"category_id,omitempty"`
	CategoryName string         `json:"category_name,omitempty"`
	Sizes        []MenuItemSize `json:"sizes,omitempty"`
}
