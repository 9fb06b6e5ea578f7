package validate

import "testing"

func TestCategory_RequiresName(t *testing.T) {
	_, errs := Category(CategoryForm{Name: "   "})
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Fatalf("expected name error, got %v", errs)
	}
}

func TestCategory_PairedDescriptions(t *testing.T) {
	cases := []struct {
		desc   string
		descAr string
		ok     bool
	}{
		{"", "", true},
		{"x", "y", true},
		{"x", "", false},
		{"", "y", false},
		{"x", "   ", false},
	}
	for _, tc := range cases {
		_, errs := Category(CategoryForm{Name: "Sweets", Description: tc.desc, DescriptionAr: tc.descAr})
		if tc.ok && errs != nil {
			t.Errorf("desc=%q descAr=%q: unexpected errors %v", tc.desc, tc.descAr, errs)
		}
		if !tc.ok {
			if errs == nil {
				t.Errorf("desc=%q descAr=%q: expected failure", tc.desc, tc.descAr)
				continue
			}
			if _, ok := errs["description"]; !ok {
				t.Errorf("expected error on description field, got %v", errs)
			}
		}
	}
}

func TestCategory_NormalizesAndCoerces(t *testing.T) {
	in, errs := Category(CategoryForm{
		Name:          "  Sweets ",
		NameAr:        " حلويات ",
		Description:   "   ",
		DescriptionAr: "",
		IsActive:      "on",
	})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if in.Name != "Sweets" || in.NameAr != "حلويات" {
		t.Fatalf("names not trimmed: %+v", in)
	}
	if in.Description != "" {
		t.Fatalf("whitespace description not normalized to absent: %q", in.Description)
	}
	if !in.IsActive {
		t.Fatal("expected is_active coerced to true")
	}
}

func TestCategory_ActiveDefaultsTrue(t *testing.T) {
	in, errs := Category(CategoryForm{Name: "Sweets"})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !in.IsActive {
		t.Fatal("expected is_active default true")
	}

	in, errs = Category(CategoryForm{Name: "Sweets", IsActive: "false"})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if in.IsActive {
		t.Fatal("expected is_active false")
	}
}
