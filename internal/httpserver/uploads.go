package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-admin-api/internal/filestore"
)

// maxUploadBytes caps menu imagery at 10 MiB.
const maxUploadBytes = 10 << 20

func uploadHandler(files filestore.Store, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			respondBadRequest(c, "file is required")
			return
		}
		if header.Size > maxUploadBytes {
			respondBadRequest(c, "file exceeds the 10 MiB limit")
			return
		}
		src, err := header.Open()
		if err != nil {
			respondError(c, logger, err)
			return
		}
		defer src.Close()

		folder := c.DefaultPostForm("folder", "menu")
		upload, err := files.Put(c.Request.Context(), folder, header.Filename, src)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		respondData(c, http.StatusCreated, upload)
	}
}
