package handler

import (
	"net/http"

	"fest-proposal-service/internal/service"
	apperrors "fest-proposal-service/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClubHandler struct {
	service service.ClubService
}

func NewClubHandler(service service.ClubService) *ClubHandler {
	return &ClubHandler{service: service}
}

func (h *ClubHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("clubs/:clubId", h.GetByID)
		router.GET("clubs", h.GetByName)
	}
}

func (h *ClubHandler) GetByID(c *gin.Context) {
	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club uuid"})
		return
	}
	club, err := h.service.GetByID(c, clubID)
	if err != nil {
		handleError(c, err, "GetClubByID")
		return
	}
	c.JSON(http.StatusOK, club)
}

// GetByName resolves ?name= for coordinator dashboards, whose profiles
// store the club name rather than the id.
func (h *ClubHandler) GetByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		handleError(c, apperrors.ErrInvalidInput, "GetClubByName")
		return
	}
	club, err := h.service.GetByName(c, name)
	if err != nil {
		handleError(c, err, "GetClubByName")
		return
	}
	c.JSON(http.StatusOK, club)
}
