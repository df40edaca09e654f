package handler

import (
	"errors"
	"net/http"

	"github.com/dentalkiosk/backend/internal/application/kiosk"
	appPractice "github.com/dentalkiosk/backend/internal/application/practice"
	"github.com/dentalkiosk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KioskHandler handles the unauthenticated patient-facing endpoints
type KioskHandler struct {
	BaseHandler
	kioskService      *kiosk.Service
	practiceService   *appPractice.Service
	defaultDeviceType string
}

// NewKioskHandler creates a new kiosk handler. defaultDeviceType is recorded
// on responses whose start request does not name a device.
func NewKioskHandler(kioskService *kiosk.Service, practiceService *appPractice.Service, defaultDeviceType string) *KioskHandler {
	return &KioskHandler{
		kioskService:      kioskService,
		practiceService:   practiceService,
		defaultDeviceType: defaultDeviceType,
	}
}

// ListSurveys returns the surveys offered on the kiosk picker
func (h *KioskHandler) ListSurveys(c *gin.Context) {
	surveys, err := h.kioskService.ListSurveys(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, surveys)
}

// GetSurvey returns one survey with its questions for taking
func (h *KioskHandler) GetSurvey(c *gin.Context) {
	surveyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid survey ID")
		return
	}

	detail, err := h.kioskService.GetSurvey(c.Request.Context(), surveyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, detail)
}

// StartResponse creates a response at survey start
func (h *KioskHandler) StartResponse(c *gin.Context) {
	var req StartResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	surveyID, err := uuid.Parse(req.SurveyID)
	if err != nil {
		h.BadRequest(c, "Invalid survey ID")
		return
	}

	deviceType := req.DeviceType
	if deviceType == "" {
		deviceType = h.defaultDeviceType
	}

	result, err := h.kioskService.StartResponse(c.Request.Context(), kiosk.StartResponseInput{
		SurveyID:     surveyID,
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		DeviceType:   deviceType,
		IPAddress:    c.ClientIP(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, StartResponseResponse{
		ResponseID:  result.ResponseID.String(),
		IsAnonymous: result.IsAnonymous,
		StartedAt:   result.StartedAt,
	})
}

// SaveAnswer stores one answer, overwriting any previous value for the
// same question
func (h *KioskHandler) SaveAnswer(c *gin.Context) {
	responseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid response ID")
		return
	}
	questionID, err := uuid.Parse(c.Param("questionID"))
	if err != nil {
		h.BadRequest(c, "Invalid question ID")
		return
	}

	var req SaveAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	err = h.kioskService.SaveAnswer(c.Request.Context(), kiosk.SaveAnswerInput{
		ResponseID:   responseID,
		QuestionID:   questionID,
		NumericValue: req.NumericValue,
		TextValue:    req.TextValue,
		Choices:      req.Choices,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"saved": true})
}

// ResumePosition reports where a reloaded kiosk should pick a partially
// answered response back up
func (h *KioskHandler) ResumePosition(c *gin.Context) {
	responseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid response ID")
		return
	}

	result, err := h.kioskService.ResumePosition(c.Request.Context(), responseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp := ResumePositionResponse{
		ResponseID:     result.ResponseID.String(),
		QuestionIndex:  result.QuestionIndex,
		TotalQuestions: result.TotalQuestions,
		CanComplete:    result.CanComplete,
	}
	if result.QuestionID != nil {
		id := result.QuestionID.String()
		resp.QuestionID = &id
	}
	h.Success(c, resp)
}

// CompleteResponse submits a response after required-answer validation
func (h *KioskHandler) CompleteResponse(c *gin.Context) {
	responseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid response ID")
		return
	}

	result, err := h.kioskService.CompleteResponse(c.Request.Context(), responseID)
	if err != nil {
		var missing *kiosk.MissingRequiredError
		if errors.As(err, &missing) {
			details := make([]dto.ValidationDetail, len(missing.QuestionIDs))
			for i, id := range missing.QuestionIDs {
				details[i] = dto.ValidationDetail{Field: id.String(), Message: "An answer is required"}
			}
			c.JSON(http.StatusUnprocessableEntity, dto.Response{
				Success: false,
				Error: &dto.ErrorInfo{
					Code:      dto.ErrCodeMissingRequired,
					Message:   "Required questions are unanswered",
					RequestID: getRequestID(c),
					Details:   details,
				},
			})
			return
		}
		h.HandleError(c, err)
		return
	}

	h.Success(c, CompleteResponseResponse{
		ResponseID:      result.ResponseID.String(),
		CompletedAt:     result.CompletedAt,
		ThankYouMessage: result.ThankYouMessage,
	})
}

// GetPractice returns the practice branding for the kiosk welcome screen
func (h *KioskHandler) GetPractice(c *gin.Context) {
	settings, err := h.practiceService.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, KioskPracticeResponse{
		Name:                settings.Name,
		PrimaryColor:        settings.PrimaryColor,
		KioskTimeoutSeconds: settings.KioskTimeoutSeconds,
		AllowAnonymous:      settings.AllowAnonymous,
	})
}
