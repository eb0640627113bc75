package handler

import (
	"net/http"

	"github.com/fixithub/universe/internal/application/docket"
	"github.com/go-chi/chi/v5"
)

// DocketHandler handles public docket browsing endpoints.
type DocketHandler struct {
	svc docket.Service
}

func NewDocketHandler(svc docket.Service) *DocketHandler { return &DocketHandler{svc: svc} }

func (h *DocketHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dockets, err := h.svc.List(r.Context(), docket.ListFilter{
		Category: q.Get("category"),
		Query:    q.Get("q"),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dockets)
}

func (h *DocketHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *DocketHandler) Categories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Categories())
}
