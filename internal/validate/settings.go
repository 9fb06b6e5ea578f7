package validate

import (
	"strings"

	"menu-admin-api/internal/domain"
)

// SettingsForm is the raw site settings payload.
type SettingsForm struct {
	HeroImageKey        string   `json:"hero_image_key"`
	CallPhoneNumber     string   `json:"call_phone_number"`
	WhatsappPhoneNumber string   `json:"whatsapp_phone_number"`
	OpeningHoursEn      string   `json:"opening_hours_en"`
	OpeningHoursAr      string   `json:"opening_hours_ar"`
	ClosedDays          []string `json:"closed_days"`
}

// Settings validates the site settings form. Closed days are checked against
// the weekday enumeration and de-duplicated, preserving first occurrence.
func Settings(form SettingsForm) (domain.SiteSettings, Errors) {
	errs := Errors{}

	out := domain.SiteSettings{
		HeroImageKey:        optionalText(form.HeroImageKey),
		CallPhoneNumber:     strings.TrimSpace(form.CallPhoneNumber),
		WhatsappPhoneNumber: strings.TrimSpace(form.WhatsappPhoneNumber),
		OpeningHoursEn:      strings.TrimSpace(form.OpeningHoursEn),
		OpeningHoursAr:      strings.TrimSpace(form.OpeningHoursAr),
		ClosedDays:          []string{},
	}

	if out.CallPhoneNumber == "" {
		errs.add("call_phone_number", "call phone number is required")
	}
	if out.WhatsappPhoneNumber == "" {
		errs.add("whatsapp_phone_number", "whatsapp phone number is required")
	}
	if out.OpeningHoursEn == "" {
		errs.add("opening_hours_en", "english opening hours are required")
	}
	if out.OpeningHoursAr == "" {
		errs.add("opening_hours_ar", "arabic opening hours are required")
	}

	seen := make(map[string]bool, len(form.ClosedDays))
	for _, day := range form.ClosedDays {
		day = strings.ToLower(strings.TrimSpace(day))
		if !domain.ValidWeekDay(day) {
			errs.add("closed_days", "invalid closed day: "+day)
			continue
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		out.ClosedDays = append(out.ClosedDays, day)
	}

	if len(errs) > 0 {
		return domain.SiteSettings{}, errs
	}
	return out, nil
}
