package validate

import (
	"fmt"
	"strings"

	"menu-admin-api/internal/domain"
)

// SizeForm is one size entry of a menu item form.
type SizeForm struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NameAr   string `json:"name_ar"`
	Price    any    `json:"price"`
	IsActive any    `json:"is_active"`
}

// MenuItemForm is the raw menu item payload as submitted by the dashboard.
// The legacy price/limit fields are optional and feed the superseded
// count-per-unit model.
type MenuItemForm struct {
	CategoryID    string     `json:"category_id"`
	Name          string     `json:"name"`
	NameAr        string     `json:"name_ar"`
	Description   string     `json:"description"`
	DescriptionAr string     `json:"description_ar"`
	ImageKey      string     `json:"image_key"`
	Availability  any        `json:"availability"`
	IsActive      any        `json:"is_active"`
	Sizes         []SizeForm `json:"sizes"`

	MaxOrderLimitUnit  string `json:"max_order_limit_unit"`
	MaxOrderLimitValue any    `json:"max_order_limit_value"`
	PriceType          string `json:"price_type"`
	PriceCount         any    `json:"price_count"`
	PriceAmount        any    `json:"price_amount"`
}

// SizeInput is a normalized size entry. ID is kept only so update forms can
// echo existing rows; the workflow assigns fresh identifiers on write.
type SizeInput struct {
	ID       string
	Name     string
	NameAr   string
	Price    int64
	IsActive bool
}

// OrderLimitInput is a normalized legacy max-order-limit entry.
type OrderLimitInput struct {
	Unit  string
	Value int
}

// PriceInput is a normalized legacy count-per-unit price entry.
type PriceInput struct {
	Type  string
	Count int
	Price int64
}

// MenuItemInput is the normalized menu item mutation input.
type MenuItemInput struct {
	CategoryID    string
	Name          string
	NameAr        string
	Description   string
	DescriptionAr string
	ImageKey      string
	Availability  bool
	IsActive      bool
	Sizes         []SizeInput
	Limit         *OrderLimitInput
	Price         *PriceInput
}

// MenuItem validates and normalizes a menu item form. At least one size is
// required; each size needs a primary-locale name and a non-negative integer
// price. The legacy limit/price blocks validate only when present.
func MenuItem(form MenuItemForm) (MenuItemInput, Errors) {
	errs := Errors{}

	in := MenuItemInput{
		CategoryID:    strings.TrimSpace(form.CategoryID),
		Name:          strings.TrimSpace(form.Name),
		NameAr:        optionalText(form.NameAr),
		Description:   optionalText(form.Description),
		DescriptionAr: optionalText(form.DescriptionAr),
		ImageKey:      optionalText(form.ImageKey),
		Availability:  flag(form.Availability, true),
		IsActive:      flag(form.IsActive, true),
	}

	if in.CategoryID == "" {
		errs.add("category_id", "category is required")
	}
	if in.Name == "" {
		errs.add("name", "name is required")
	}
	pairedDescriptions(errs, in.Description, in.DescriptionAr)

	if len(form.Sizes) == 0 {
		errs.add("sizes", "at least one size is required")
	}
	for i, sf := range form.Sizes {
		size := SizeInput{
			ID:       strings.TrimSpace(sf.ID),
			Name:     strings.TrimSpace(sf.Name),
			NameAr:   optionalText(sf.NameAr),
			IsActive: flag(sf.IsActive, true),
		}
		if size.Name == "" {
			errs.add(fmt.Sprintf("sizes[%d].name", i), "size name is required")
		}
		price, err := integer(sf.Price)
		switch {
		case err != nil:
			errs.add(fmt.Sprintf("sizes[%d].price", i), err.Error())
		case price < 0:
			errs.add(fmt.Sprintf("sizes[%d].price", i), "price must not be negative")
		default:
			size.Price = price
		}
		in.Sizes = append(in.Sizes, size)
	}

	if limit := orderLimit(form, errs); limit != nil {
		in.Limit = limit
	}
	if price := legacyPrice(form, errs); price != nil {
		in.Price = price
	}

	if len(errs) > 0 {
		return MenuItemInput{}, errs
	}
	return in, nil
}

func orderLimit(form MenuItemForm, errs Errors) *OrderLimitInput {
	unit := strings.TrimSpace(form.MaxOrderLimitUnit)
	if unit == "" && form.MaxOrderLimitValue == nil {
		return nil
	}
	if !domain.ValidSellUnit(unit) {
		errs.add("max_order_limit_unit", "unit must be gram or box")
		return nil
	}
	value, err := integer(form.MaxOrderLimitValue)
	if err != nil {
		errs.add("max_order_limit_value", err.Error())
		return nil
	}
	if value <= 0 {
		errs.add("max_order_limit_value", "limit must be positive")
		return nil
	}
	return &OrderLimitInput{Unit: unit, Value: int(value)}
}

func legacyPrice(form MenuItemForm, errs Errors) *PriceInput {
	typ := strings.TrimSpace(form.PriceType)
	if typ == "" && form.PriceCount == nil && form.PriceAmount == nil {
		return nil
	}
	if !domain.ValidSellUnit(typ) {
		errs.add("price_type", "type must be gram or box")
		return nil
	}
	count, err := integer(form.PriceCount)
	if err != nil {
		errs.add("price_count", err.Error())
		return nil
	}
	if count <= 0 {
		errs.add("price_count", "count must be positive")
		return nil
	}
	amount, err := integer(form.PriceAmount)
	if err != nil {
		errs.add("price_amount", err.Error())
		return nil
	}
	if amount < 0 {
		errs.add("price_amount", "price must not be negative")
		return nil
	}
	return &PriceInput{Type: typ, Count: int(count), Price: amount}
}
