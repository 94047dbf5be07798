package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"creatorlab/internal/logger"
	"creatorlab/internal/model"
	"creatorlab/internal/service"
	"creatorlab/internal/transport/rest/middleware"
	"creatorlab/internal/validation"
)

// ContentHandler handles content and community endpoints
type ContentHandler struct {
	contents *service.ContentService
	insights *service.InsightService
	log      *logger.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(contents *service.ContentService, insights *service.InsightService, log *logger.Logger) *ContentHandler {
	return &ContentHandler{contents: contents, insights: insights, log: log}
}

type publishRequest struct {
	Request  validation.Payload `json:"request"`
	Feedback *model.AIFeedback  `json:"feedback"`
}

type commentRequest struct {
	Comment string `json:"comment"`
}

// List handles GET /v1/contents
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.contents.List(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /v1/contents/{id}
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.contents.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// ListByAuthor handles GET /v1/authors/{name}/contents
func (h *ContentHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	list, err := h.contents.ListByAuthor(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Publish handles POST /v1/contents
func (h *ContentHandler) Publish(w http.ResponseWriter, r *http.Request) {
	author, ok := middleware.GetAuthor(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing author")
		return
	}

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Request == nil {
		writeJSON(w, http.StatusBadRequest, service.PublishResponse{Success: false, Error: "invalid request body"})
		return
	}

	resp := h.contents.PublishContent(r.Context(), req.Request, req.Feedback, author)
	switch {
	case resp.Success:
		writeJSON(w, http.StatusCreated, resp)
	case resp.Fields != nil:
		writeJSON(w, http.StatusBadRequest, resp)
	default:
		writeJSON(w, http.StatusInternalServerError, resp)
	}
}

// AddComment handles POST /v1/contents/{id}/comments
func (h *ContentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	author, ok := middleware.GetAuthor(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing author")
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.contents.AddComment(r.Context(), mux.Vars(r)["id"], author, req.Comment)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

// CommunitySummary handles GET /v1/contents/{id}/community-summary
func (h *ContentHandler) CommunitySummary(w http.ResponseWriter, r *http.Request) {
	out, err := h.insights.SummarizeCommunityFeedback(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
