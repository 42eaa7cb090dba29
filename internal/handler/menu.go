package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"savora-be/internal/identity"
	"savora-be/internal/menu"
	"savora-be/internal/restaurant"
	"savora-be/internal/storage"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type MenuHandler struct {
	menus       menu.Service
	restaurants restaurant.Service
	files       storage.Storage
}

func NewMenuHandler(menus menu.Service, restaurants restaurant.Service, files storage.Storage) *MenuHandler {
	return &MenuHandler{menus: menus, restaurants: restaurants, files: files}
}

type menuItemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageRef    string  `json:"imageRef,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
}

type menuResponse struct {
	ID           int64              `json:"id"`
	RestaurantID int64              `json:"restaurantId"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	FileRef      string             `json:"fileRef,omitempty"`
	Items        []menuItemResponse `json:"items"`
}

func toMenuResponse(m *menu.Menu) menuResponse {
	items := make([]menuItemResponse, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, menuItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			ImageRef:    it.ImageRef,
			IsAvailable: it.IsAvailable,
		})
	}
	return menuResponse{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		FileRef:      m.FileRef,
		Items:        items,
	}
}

// GetForRestaurant returns the restaurant's active menu with its items.
func (h *MenuHandler) GetForRestaurant(c *gin.Context) {
	restID, ok := pathID(c, "id")
	if !ok {
		return
	}

	m, err := h.menus.GetForRestaurant(c.Request.Context(), restID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuResponse(m))
}

// menuFileKind classifies an upload by extension. PDFs and images are the only
// accepted representations.
func menuFileKind(filename string) (restaurant.MenuFileKind, string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return restaurant.MenuFilePDF, ext, true
	case ".png", ".jpg", ".jpeg", ".webp":
		return restaurant.MenuFileImage, ext, true
	}
	return restaurant.MenuFileNone, "", false
}

// Upload stores a PDF or image menu for the caller's restaurant. A new upload
// replaces the previous file reference regardless of kind.
func (h *MenuHandler) Upload(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	menuID, ok := pathID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	kind, ext, ok := menuFileKind(fileHeader.Filename)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only pdf and image menus are accepted"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		respondError(c, err)
		return
	}

	ref, err := h.files.Save(data, ext)
	if err != nil {
		respondError(c, err)
		return
	}

	m, err := h.menus.Get(c.Request.Context(), menuID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.menus.AttachFile(c.Request.Context(), menuID, id.UserID, ref); err != nil {
		respondError(c, err)
		return
	}
	if err := h.restaurants.AttachMenuFile(c.Request.Context(), m.RestaurantID, id.UserID, restaurant.MenuFile{
		Kind: kind,
		Ref:  ref,
	}); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"fileRef": ref, "kind": string(kind)})
}

// File serves a previously uploaded menu file.
func (h *MenuHandler) File(c *gin.Context) {
	ref := c.Param("ref")
	path, err := h.files.Path(ref)
	if err != nil {
		respondError(c, err)
		return
	}
	c.File(path)
}

type menuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageRef    *string  `json:"imageRef"`
	IsAvailable *bool    `json:"isAvailable"`
}

func (r menuItemRequest) params() menu.ItemParams {
	return menu.ItemParams{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageRef:    r.ImageRef,
		IsAvailable: r.IsAvailable,
	}
}

func (h *MenuHandler) AddItem(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	menuID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.menus.AddItem(c.Request.Context(), menuID, id.UserID, req.params())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, menuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		ImageRef:    item.ImageRef,
		IsAvailable: item.IsAvailable,
	})
}

func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	menuID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.menus.UpdateItem(c.Request.Context(), menuID, itemID, id.UserID, req.params())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, menuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		ImageRef:    item.ImageRef,
		IsAvailable: item.IsAvailable,
	})
}

func (h *MenuHandler) RemoveItem(c *gin.Context) {
	id, _ := identity.FromContext(c.Request.Context())

	menuID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	if err := h.menus.RemoveItem(c.Request.Context(), menuID, itemID, id.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item removed"})
}
