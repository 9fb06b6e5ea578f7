package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	menuitemsvc "menu-admin-api/internal/service/menuitem"
	"menu-admin-api/internal/validate"
)

func listMenuItemsHandler(svc MenuItemService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := menuitemsvc.ListFilter{
			CategoryIDs: c.QueryArray("category_id"),
			Search:      c.Query("search"),
		}
		for _, raw := range c.QueryArray("is_active") {
			active, err := strconv.ParseBool(raw)
			if err != nil {
				respondBadRequest(c, "is_active must be true or false")
				return
			}
			filter.ActiveStatuses = append(filter.ActiveStatuses, active)
		}
		items, err := svc.List(c.Request.Context(), currentUser(c), filter)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		respondData(c, http.StatusOK, items)
	}
}

func getMenuItemHandler(svc MenuItemService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.Get(c.Request.Context(), currentUser(c), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		respondData(c, http.StatusOK, item)
	}
}

func createMenuItemHandler(svc MenuItemService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form validate.MenuItemForm
		if err := c.ShouldBindJSON(&form); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		item, err := svc.Create(c.Request.Context(), currentUser(c), form)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		respondData(c, http.StatusCreated, item)
	}
}

func updateMenuItemHandler(svc MenuItemService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form validate.MenuItemForm
		if err := c.ShouldBindJSON(&form); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
		if err := svc.Update(c.Request.Context(), currentUser(c), c.Param("id"), form); err != nil {
			respondError(c, logger, err)
			return
		}
		respondMessage(c, http.StatusOK, "menu item updated")
	}
}

func deleteMenuItemHandler(svc MenuItemService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}
		respondMessage(c, http.StatusOK, "menu item deleted")
	}
}

func setMenuItemActiveHandler(svc MenuItemService, logger *log.Logger) gin.HandlerFunc {
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
		respondMessage(c, http.StatusOK, "menu item updated")
	}
}

func deleteMenuItemPriceHandler(svc MenuItemService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeletePrice(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
			respondError(c, logger, err)
			return
		}
		respondMessage(c, http.StatusOK, "price deleted")
	}
}
