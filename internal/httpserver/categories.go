package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-admin-api/internal/validate"
)

type setActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func listCategoriesHandler(svc CategoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.List(c.Request.Context(), currentUser(c), c.Query("search"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		respondData(c, http.StatusOK, categories)
	}
}

func getCategoryHandler(svc CategoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := svc.Get(c.Request.Context(), currentUser(c), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		respondData(c, http.StatusOK, category)
	}
}

func createCategoryHandler(svc CategoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form validate.CategoryForm
		if err := c.ShouldBindJSON(&form); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		category, err := svc.Create(c.Request.Context(), currentUser(c), form)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		respondData(c, http.StatusCreated, category)
	}
}

func updateCategoryHandler(svc CategoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form validate.CategoryForm
		if err := c.ShouldBindJSON(&form); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		if err := svc.Update(c.Request.Context(), currentUser(c), c.Param("id"), form); err != nil {
			respondError(c, logger, err)
			return
		}
		respondMessage(c, http.StatusOK, "category updated")
	}
}

func deleteCategoryHandler(svc CategoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}
		respondMessage(c, http.StatusOK, "category deleted")
	}
}

func setCategoryActiveHandler(svc CategoryService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setActiveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "is_active is required")
			return
		}
		if err := svc.SetActive(c.Request.Context(), currentUser(c), c.Param("id"), *req.IsActive); err != nil {
			respondError(c, logger, err)
			return
		}
		respondMessage(c, http.StatusOK, "category updated")
	}
}
