package handler

import (
	"net/http"
	"time"

	"fest-proposal-service/internal/dashboard"
	"fest-proposal-service/internal/identity"
	"fest-proposal-service/internal/schema"
	"fest-proposal-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RegistrationHandler struct {
	service      service.RegistrationService
	eventService service.EventService
}

func NewRegistrationHandler(service service.RegistrationService, eventService service.EventService) *RegistrationHandler {
	return &RegistrationHandler{service: service, eventService: eventService}
}

func (h *RegistrationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:uuid/registrations", h.Submit)
		router.GET("clubs/:clubId/registrations", h.ListByClub)
	}
}

type SubmitRegistrationRequest struct {
	FormData schema.Values `json:"formData"`
}

// ListRegistrationsQuery are the dashboard table controls: free-text search,
// event filter ("all" or an event uuid) and pagination.
type ListRegistrationsQuery struct {
	Search   string `form:"search"`
	EventID  string `form:"eventId,default=all"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"pageSize,default=50"`
}

type RegistrationRow struct {
	ID        uuid.UUID     `json:"id"`
	EventID   uuid.UUID     `json:"eventId"`
	EventName string        `json:"eventName"`
	UserEmail string        `json:"userEmail"`
	FormData  schema.Values `json:"formData"`
	CreatedAt time.Time     `json:"createdAt"`
}

type ListRegistrationsResponse struct {
	Registrations []RegistrationRow `json:"registrations"`
	Columns       []string          `json:"columns"`
	Page          int               `json:"page"`
	TotalPages    int               `json:"totalPages"`
}

func (h *RegistrationHandler) Submit(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return
	}

	var user *identity.User
	if u, ok := identity.FromRequest(c.Request); ok {
		user = &u
	}

	var req SubmitRegistrationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	registration, err := h.service.Submit(c, eventID, user, req.FormData)
	if err != nil {
		handleError(c, err, "Submit")
		return
	}
	c.JSON(http.StatusCreated, registration)
}

// ListByClub serves the dashboard table: fetch once, then filter, clamp and
// paginate in memory.
func (h *RegistrationHandler) ListByClub(c *gin.Context) {
	clubID, err := uuid.Parse(c.Param("clubId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid club uuid"})
		return
	}

	var query ListRegistrationsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}

	registrations, err := h.service.ListByClub(c, clubID)
	if err != nil {
		handleError(c, err, "ListByClub")
		return
	}
	events, err := h.eventService.ListByClub(c, clubID)
	if err != nil {
		handleError(c, err, "ListByClub")
		return
	}

	filtered := dashboard.Filter(registrations, query.Search, query.EventID)
	_, totalPages := dashboard.Paginate(filtered, 1, query.PageSize)
	page := dashboard.ClampPage(query.Page, totalPages)
	pageSlice, _ := dashboard.Paginate(filtered, page, query.PageSize)

	rows := make([]RegistrationRow, 0, len(pageSlice))
	for _, reg := range pageSlice {
		rows = append(rows, RegistrationRow{
			ID:        reg.ID,
			EventID:   reg.EventID,
			EventName: dashboard.EventName(events, reg.EventID),
			UserEmail: reg.UserEmail,
			FormData:  reg.FormData,
			CreatedAt: reg.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, ListRegistrationsResponse{
		Registrations: rows,
		Columns:       dashboard.Columns(pageSlice),
		Page:          page,
		TotalPages:    totalPages,
	})
}
