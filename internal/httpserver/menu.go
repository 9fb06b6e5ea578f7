package httpserver

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"menu-admin-api/internal/cache"
	"menu-admin-api/internal/domain"
)

// publicMenuHandler serves the localized menu for the marketing site. The
// ETag is derived from the menu tag version, so clients revalidate cheaply
// and only re-download after a dashboard mutation.
func publicMenuHandler(svc MenuItemService, tags *cache.Tags, defaultLocale string, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := c.Query("locale")
		if locale == "" {
			locale = defaultLocale
		}
		if locale != domain.LocaleEN && locale != domain.LocaleAR {
			respondBadRequest(c, "locale must be en or ar")
			return
		}

		limit := 0
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				respondBadRequest(c, "limit must be a positive integer")
				return
			}
			limit = n
		}

		// The limit is part of the cache key: a truncated response must
		// not validate a request for a different page size.
		var etag string
		if tags != nil {
			etag = fmt.Sprintf("\"menu-%s-%d-%d\"", locale, limit, tags.Version(cache.TagMenu))
			if c.GetHeader("If-None-Match") == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}

		items, err := svc.PublicMenu(c.Request.Context(), locale, limit)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if etag != "" {
			c.Header("ETag", etag)
		}
		respondData(c, http.StatusOK, items)
	}
}
