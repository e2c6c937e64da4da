package handler

import (
	"net/http"

	"fest-proposal-service/internal/identity"
	"fest-proposal-service/internal/storage"

	"github.com/gin-gonic/gin"
)

type PosterHandler struct {
	storage storage.PosterStorage
}

func NewPosterHandler(storage storage.PosterStorage) *PosterHandler {
	return &PosterHandler{storage: storage}
}

func (h *PosterHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("posters", h.Upload)
	}
}

// Upload stores a poster image and returns its id and view URL. This is the
// pre-step of proposal creation: the client resolves the URL here, then
// sends it inside the proposal payload. An upload whose proposal never
// follows leaves an orphaned object, reaped out of band.
func (h *PosterHandler) Upload(c *gin.Context) {
	if _, ok := identity.FromRequest(c.Request); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	file, err := c.FormFile("poster")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing poster file"})
		return
	}

	src, err := file.Open()
	if err != nil {
		handleError(c, err, "Upload")
		return
	}
	defer src.Close()

	id, err := h.storage.Upload(c, file.Filename, src)
	if err != nil {
		handleError(c, err, "Upload")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":  id,
		"url": h.storage.ViewURL(id),
	})
}
