package handler

import (
	"strconv"

	"github.com/dentalkiosk/backend/internal/application/dashboard"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardHandler handles the authenticated staff dashboard endpoints
type DashboardHandler struct {
	BaseHandler
	dashboardService *dashboard.Service
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Stats returns the headline dashboard numbers
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// ListResponses returns a page of completed responses, newest first
func (h *DashboardHandler) ListResponses(c *gin.Context) {
	input := dashboard.ListResponsesInput{
		Limit:  queryInt(c, "limit", 50),
		Offset: queryInt(c, "offset", 0),
	}
	if raw := c.Query("survey_id"); raw != "" {
		surveyID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid survey ID")
			return
		}
		input.SurveyID = &surveyID
	}

	items, err := h.dashboardService.ListResponses(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, input.Limit, input.Offset)
}

// GetResponse returns one response with its decoded answers
func (h *DashboardHandler) GetResponse(c *gin.Context) {
	responseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid response ID")
		return
	}

	detail, err := h.dashboardService.ResponseDetails(c.Request.Context(), responseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, detail)
}

// ListSurveys returns every survey with its completed-response count
func (h *DashboardHandler) ListSurveys(c *gin.Context) {
	overviews, err := h.dashboardService.SurveysWithCounts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, overviews)
}

// Chart returns completed-response counts per day for a trailing window
func (h *DashboardHandler) Chart(c *gin.Context) {
	points, err := h.dashboardService.Chart(c.Request.Context(), queryInt(c, "days", 0))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, points)
}

// Ratings returns each star question's mean answer and count
func (h *DashboardHandler) Ratings(c *gin.Context) {
	items, err := h.dashboardService.Ratings(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// queryInt parses an integer query parameter with a fallback
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
