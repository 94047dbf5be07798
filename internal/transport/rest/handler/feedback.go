package handler

import (
	"net/http"

	"creatorlab/internal/logger"
	"creatorlab/internal/service"
)

// FeedbackHandler serves the AI feedback and category suggestion flows
type FeedbackHandler struct {
	feedback *service.FeedbackService
	insights *service.InsightService
	log      *logger.Logger
}

func NewFeedbackHandler(feedback *service.FeedbackService, insights *service.InsightService, log *logger.Logger) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback, insights: insights, log: log}
}

// Generate handles POST /v1/feedback
func (h *FeedbackHandler) Generate(w http.ResponseWriter, r *http.Request) {
	raw, err := decodePayload(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, service.FeedbackResponse{Success: false, Error: "invalid request body"})
		return
	}

	resp := h.feedback.GetAIFeedback(r.Context(), raw)
	if !resp.Success {
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// SuggestCategories handles POST /v1/ai/categories
func (h *FeedbackHandler) SuggestCategories(w http.ResponseWriter, r *http.Request) {
	raw, err := decodePayload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.insights.SuggestCategories(r.Context(), raw)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
