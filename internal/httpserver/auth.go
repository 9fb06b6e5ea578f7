package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-admin-api/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
}

func loginHandler(staff StaffService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "email and password are required")
			return
		}
		user, access, refresh, err := staff.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		respondData(c, http.StatusOK, loginResponse{
			User:         user,
			AccessToken:  access,
			RefreshToken: refresh,
			ExpiresIn:    staff.AccessTTLSeconds(),
		})
	}
}
