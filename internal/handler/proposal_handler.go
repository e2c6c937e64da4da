package handler

import (
	"net/http"

	"fest-proposal-service/internal/identity"
	"fest-proposal-service/internal/model"
	"fest-proposal-service/internal/schema"
	"fest-proposal-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProposalHandler struct {
	service service.ProposalService
}

func NewProposalHandler(service service.ProposalService) *ProposalHandler {
	return &ProposalHandler{service: service}
}

func (h *ProposalHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("events/:uuid/proposals", h.Create)
		router.GET("proposals/pending", h.ListPending)
		router.POST("proposals/:uuid/approve", h.Approve)
		router.POST("proposals/:uuid/reject", h.Reject)
	}
}

// CreateProposalRequest carries the coordinator's edited event. The poster
// URL must already be resolved; uploading happens against the poster
// endpoint first.
type CreateProposalRequest struct {
	Name               string        `json:"name" binding:"required"`
	PosterURL          string        `json:"posterUrl"`
	RegistrationFee    float64       `json:"registrationFee"`
	RegistrationMethod string        `json:"registrationMethod" binding:"required"`
	RegistrationLink   string        `json:"registrationLink"`
	FormFields         schema.Schema `json:"formFields"`
}

func (h *ProposalHandler) Create(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event uuid"})
		return
	}

	coordinator, ok := identity.FromRequest(c.Request)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req CreateProposalRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	edits := model.EventEdits{
		Name:               req.Name,
		PosterURL:          req.PosterURL,
		RegistrationFee:    req.RegistrationFee,
		RegistrationMethod: model.RegistrationMethod(req.RegistrationMethod),
		RegistrationLink:   req.RegistrationLink,
		FormFields:         req.FormFields,
	}
	created, err := h.service.Create(c, eventID, edits, coordinator)
	if err != nil {
		handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProposalHandler) ListPending(c *gin.Context) {
	proposals, err := h.service.ListPending(c)
	if err != nil {
		handleError(c, err, "ListPending")
		return
	}
	c.JSON(http.StatusOK, proposals)
}

func (h *ProposalHandler) Approve(c *gin.Context) {
	proposalID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal uuid"})
		return
	}

	admin, ok := identity.FromRequest(c.Request)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	event, err := h.service.Approve(c, proposalID, admin.ID)
	if err != nil {
		handleError(c, err, "Approve")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *ProposalHandler) Reject(c *gin.Context) {
	proposalID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal uuid"})
		return
	}

	admin, ok := identity.FromRequest(c.Request)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	proposal, err := h.service.Reject(c, proposalID, admin.ID)
	if err != nil {
		handleError(c, err, "Reject")
		return
	}
	c.JSON(http.StatusOK, proposal)
}
