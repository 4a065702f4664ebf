package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	minio "littlelemon/internal/app/minio"
	"littlelemon/internal/app/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API: Categories

// ApiListCategories godoc
// @Summary      List categories
// @Description  Get all menu categories ordered by title
// @Tags         Categories
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} map[string]string
// @Router       /api/categories [get]
func (h *Handler) ApiListCategories(c *gin.Context) {
	cats, err := h.Repository.GetCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": cats})
}

// ApiGetCategory godoc
// @Summary      Get category by ID
// @Tags         Categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} repository.Category
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/categories/{id} [get]
func (h *Handler) ApiGetCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	cat, err := h.Repository.GetCategory(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

type categoryCreateDTO struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title" binding:"required"`
}

// ApiCreateCategory godoc
// @Summary      Create category
// @Description  Create menu category (staff only)
// @Tags         Categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body categoryCreateDTO true "Category data"
// @Success      201 {object} map[string]int
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Router       /api/categories [post]
func (h *Handler) ApiCreateCategory(c *gin.Context) {
	if bad, key, err := checkForbiddenJSONKeys(c, []string{"id"}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	} else if bad {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden field", "field": key})
		return
	}
	var in categoryCreateDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	id, err := h.Repository.CreateCategory(in.Slug, in.Title)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type categoryUpdateDTO struct {
	Slug  *string `json:"slug"`
	Title *string `json:"title"`
}

// ApiUpdateCategory godoc
// @Summary      Update category
// @Tags         Categories
// @Security     BearerAuth
// @Accept       json
// @Param        id path int true "Category ID"
// @Param        request body categoryUpdateDTO true "Update data"
// @Success      204
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/categories/{id} [put]
func (h *Handler) ApiUpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in categoryUpdateDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	if err := h.Repository.UpdateCategory(id, in.Slug, in.Title); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ApiDeleteCategory godoc
// @Summary      Delete category
// @Description  Delete category, menu items are detached (staff only)
// @Tags         Categories
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Success      204
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/categories/{id} [delete]
func (h *Handler) ApiDeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Repository.DeleteCategory(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

// API: Menu items

// parseMenuFilter reads list query params into a repository filter.
func parseMenuFilter(c *gin.Context) repository.MenuFilter {
	f := repository.MenuFilter{
		Search:  strings.TrimSpace(c.Query("search")),
		OrderBy: strings.TrimSpace(c.Query("ordering")),
	}
	if v := c.Query("category"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			f.CategoryID = &id
		}
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true" || v == "1"
		f.Featured = &featured
	}
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			f.Page = p
		}
	}
	if v := c.Query("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 {
			f.PageSize = ps
		}
	}
	return f
}

// ApiListMenuItems godoc
// @Summary      List menu items
// @Description  Get menu items with category/featured filters, search over title and description, ordering by price or title, pagination
// @Tags         Menu
// @Produce      json
// @Param        category query int false "Filter by category ID"
// @Param        featured query bool false "Filter by featured flag"
// @Param        search query string false "Substring search"
// @Param        ordering query string false "price, -price, title, -title"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} map[string]string
// @Router       /api/menu-items [get]
func (h *Handler) ApiListMenuItems(c *gin.Context) {
	items, total, err := h.Repository.GetMenuItems(parseMenuFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

// ApiGetMenuItem godoc
// @Summary      Get menu item by ID
// @Tags         Menu
// @Produce      json
// @Param        id path int true "Menu item ID"
// @Success      200 {object} repository.MenuItem
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/menu-items/{id} [get]
func (h *Handler) ApiGetMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	item, err := h.Repository.GetMenuItem(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

type menuItemCreateDTO struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	CategoryID  *int64  `json:"categoryId"`
	Featured    bool    `json:"featured"`
}

// ApiCreateMenuItem godoc
// @Summary      Create menu item
// @Description  Create menu item (staff only)
// @Tags         Menu
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body menuItemCreateDTO true "Menu item data"
// @Success      201 {object} map[string]int
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/menu-items [post]
func (h *Handler) ApiCreateMenuItem(c *gin.Context) {
	if bad, key, err := checkForbiddenJSONKeys(c, []string{"id", "is_deleted", "image_url"}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	} else if bad {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden field", "field": key})
		return
	}
	var in menuItemCreateDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	id, err := h.Repository.CreateMenuItem(in.Title, in.Description, in.Price, in.CategoryID, in.Featured)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type menuItemUpdateDTO struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *int64   `json:"categoryId"`
	Featured    *bool    `json:"featured"`
}

// ApiUpdateMenuItem godoc
// @Summary      Update menu item
// @Description  Update menu item fields (staff only)
// @Tags         Menu
// @Security     BearerAuth
// @Accept       json
// @Param        id path int true "Menu item ID"
// @Param        request body menuItemUpdateDTO true "Update data"
// @Success      204
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/menu-items/{id} [put]
func (h *Handler) ApiUpdateMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if bad, key, err := checkForbiddenJSONKeys(c, []string{"id", "is_deleted", "image_url"}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	} else if bad {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden field", "field": key})
		return
	}
	var in menuItemUpdateDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	if err := h.Repository.UpdateMenuItem(id, in.Title, in.Description, in.Price, in.CategoryID, in.Featured); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ApiDeleteMenuItem godoc
// @Summary      Delete menu item
// @Description  Soft delete menu item, stored image removed (staff only)
// @Tags         Menu
// @Security     BearerAuth
// @Param        id path int true "Menu item ID"
// @Success      204
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/menu-items/{id} [delete]
func (h *Handler) ApiDeleteMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	oldURL, _ := h.Repository.GetMenuItemImageURL(id)
	if oldURL != "" {
		if mc, err := minio.New(); err == nil {
			_ = mc.DeleteByURL(c, oldURL)
		}
	}
	if err := h.Repository.SoftDeleteMenuItem(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

type featuredUpdateDTO struct {
	Featured *bool `json:"featured"`
}

// ApiUpdateFeatured godoc
// @Summary      Update item of the day
// @Description  Set or clear the featured flag (manager only)
// @Tags         Menu
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Menu item ID"
// @Param        request body featuredUpdateDTO true "Featured flag"
// @Success      200 {object} repository.MenuItem
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/menu-items/{id}/update-featured [patch]
func (h *Handler) ApiUpdateFeatured(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in featuredUpdateDTO
	if err := c.ShouldBindJSON(&in); err != nil || in.Featured == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "featured field is required"})
		return
	}
	if err := h.Repository.UpdateFeatured(id, *in.Featured); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	item, err := h.Repository.GetMenuItem(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// ApiMenuItemUploadImage godoc
// @Summary      Upload menu item image
// @Description  Upload image for menu item into object storage (manager only)
// @Tags         Menu
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "Menu item ID"
// @Param        file formData file true "Image file"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Failure      403 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/menu-items/{id}/image [post]
func (h *Handler) ApiMenuItemUploadImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	safeName := regexp.MustCompile(`[^a-zA-Z0-9._-]`).ReplaceAllString(file.Filename, "_")
	objectName := strconv.Itoa(id) + "_" + safeName
	oldURL, _ := h.Repository.GetMenuItemImageURL(id)
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file open failed"})
		return
	}
	defer f.Close()
	minioClient, err := minio.New()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage init failed"})
		return
	}
	uploadedURL, err := minioClient.Upload(c, objectName, f, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	if err := h.Repository.UpdateMenuItemImageURL(id, uploadedURL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	_ = minioClient.DeleteByURL(c, oldURL)
	c.JSON(http.StatusOK, gin.H{"imageURL": uploadedURL})
}
