package validate

import "strings"

// CategoryForm is the raw category payload as submitted by the dashboard.
type CategoryForm struct {
	Name          string `json:"name"`
	NameAr        string `json:"name_ar"`
	Description   string `json:"description"`
	DescriptionAr string `json:"description_ar"`
	IsActive      any    `json:"is_active"`
}

// CategoryInput is the normalized category mutation input.
type CategoryInput struct {
	Name          string
	NameAr        string
	Description   string
	DescriptionAr string
	IsActive      bool
}

// Category validates and normalizes a category form. Optional text fields
// collapse to empty when blank; the description pair must be supplied
// together or not at all.
func Category(form CategoryForm) (CategoryInput, Errors) {
	errs := Errors{}

	in := CategoryInput{
		Name:          strings.TrimSpace(form.Name),
		NameAr:        optionalText(form.NameAr),
		Description:   optionalText(form.Description),
		DescriptionAr: optionalText(form.DescriptionAr),
		IsActive:      flag(form.IsActive, true),
	}

	if in.Name == "" {
		errs.add("name", "name is required")
	}
	pairedDescriptions(errs, in.Description, in.DescriptionAr)

	if len(errs) > 0 {
		return CategoryInput{}, errs
	}
	return in, nil
}
