package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-admin-api/internal/domain"
	"menu-admin-api/internal/filestore"
	"menu-admin-api/internal/validate"
)

type settingsResponse struct {
	domain.SiteSettings
	HeroImageURL string `json:"hero_image_url,omitempty"`
}

func getSettingsHandler(svc SettingsService, files filestore.Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := svc.Get(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		resp := settingsResponse{SiteSettings: *settings}
		if files != nil && settings.HeroImageKey != "" {
			resp.HeroImageURL = files.URL(settings.HeroImageKey)
		}
		respondData(c, http.StatusOK, resp)
	}
}

func updateSettingsHandler(svc SettingsService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form validate.SettingsForm
		if err := c.ShouldBindJSON(&form); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		if err := svc.Update(c.Request.Context(), currentUser(c), form); err != nil {
			respondError(c, logger, err)
			return
		}
		respondMessage(c, http.StatusOK, "settings updated")
	}
}
