package handler

import (
	"net/http"

	"fest-proposal-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("clubs/:clubId/events", h.ListByClub)
		router.GET("events/:uuid", h.GetByID)
	}
}

func (h *EventHandler) ListByClub(c *gin.Context) {
	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club uuid"})
		return
	}
	events, err := h.service.ListByClub(c, clubID)
	if err != nil {
		handleError(c, err, "ListByClub")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return
	}
	event, err := h.service.GetByID(c, eventID)
	if err != nil {
		handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, event)
}
