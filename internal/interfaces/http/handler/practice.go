package handler

import (
	appPractice "github.com/dentalkiosk/backend/internal/application/practice"
	"github.com/gin-gonic/gin"
)

// UpdatePracticeRequest is the admin settings form. Omitted fields are
// left unchanged.
type UpdatePracticeRequest struct {
	Name                *string `json:"name" binding:"omitempty,min=1,max=100"`
	PrimaryColor        *string `json:"primary_color" binding:"omitempty,max=7"`
	KioskTimeoutSeconds *int    `json:"kiosk_timeout_seconds"`
	AllowAnonymous      *bool   `json:"allow_anonymous"`
}

// PracticeHandler handles admin practice settings endpoints
type PracticeHandler struct {
	BaseHandler
	practiceService *appPractice.Service
}

// NewPracticeHandler creates a new practice handler
func NewPracticeHandler(practiceService *appPractice.Service) *PracticeHandler {
	return &PracticeHandler{
		practiceService: practiceService,
	}
}

// Get returns the current practice settings
func (h *PracticeHandler) Get(c *gin.Context) {
	settings, err := h.practiceService.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// Update applies changed practice settings
func (h *PracticeHandler) Update(c *gin.Context) {
	var req UpdatePracticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.practiceService.Update(c.Request.Context(), appPractice.UpdateInput{
		Name:                req.Name,
		PrimaryColor:        req.PrimaryColor,
		KioskTimeoutSeconds: req.KioskTimeoutSeconds,
		AllowAnonymous:      req.AllowAnonymous,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}
