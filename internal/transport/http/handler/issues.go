package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fixithub/universe/internal/application/issue"
	"github.com/fixithub/universe/internal/domain"
	"github.com/fixithub/universe/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// IssueHandler handles issue report endpoints and the admin dashboard.
type IssueHandler struct {
	svc issue.Service
}

func NewIssueHandler(svc issue.Service) *IssueHandler { return &IssueHandler{svc: svc} }

func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	issues, err := h.svc.List(r.Context(), issue.ListFilter{
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Query:    q.Get("q"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issues)
}

func (h *IssueHandler) Get(w http.ResponseWriter, r *http.Request) {
	i, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, i)
}

func (h *IssueHandler) Categories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.IssueCategories)
}

func (h *IssueHandler) Report(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CreateIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	i, err := h.svc.Report(r.Context(), req, claims.UserID, claims.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, i)
}

func (h *IssueHandler) AttachPhoto(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	f, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing photo field")
		return
	}
	defer f.Close()

	isAdmin := claims.Role == domain.RoleAdmin
	i, err := h.svc.AttachPhoto(r.Context(), chi.URLParam(r, "id"), claims.UserID, isAdmin,
		f, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, i)
}

func (h *IssueHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateIssueStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	i, err := h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, i)
}

func (h *IssueHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
