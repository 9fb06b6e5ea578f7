package domain

// WeekDays are the valid closed-day values, lowercase English day names.
var WeekDays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

func ValidWeekDay(d string) bool {
	for _, v := range WeekDays {
		if d == v {
			return true
		}
	}
	return false
}

// SiteSettings is the single-row site configuration behind the public pages.
type SiteSettings struct {
	HeroImageKey        string   `json:"hero_image_key,omitempty"`
	CallPhoneNumber     string   `json:"call_phone_number"`
	WhatsappPhoneNumber string   `json:"whatsapp_phone_number"`
	OpeningHoursEn      string   `json:"opening_hours_en"`
	OpeningHoursAr      string   `json:"opening_hours_ar"`
	ClosedDays          []string `json:"closed_days"`
}

// DefaultSiteSettings is served when no settings row exists yet.
var DefaultSiteSettings = SiteSettings{
	CallPhoneNumber:     "+961 81 484 472",
	WhatsappPhoneNumber: "+961 81 484 472",
	OpeningHoursEn:      "7:30 AM - 2:30 PM, 6:00 PM - 10:00 PM",
	OpeningHoursAr:      "٧:٣٠ ص - ٢:٣٠ م، ٦:٠٠ م - ١٠:٠٠ م",
	ClosedDays:          []string{},
}
