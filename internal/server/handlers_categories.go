package server

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"envelope/internal/ledger"
)

type createCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "category name is required")
		return
	}

	cat, err := s.engine.CreateCategory(req.Name)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories := s.engine.Categories()
	if categories == nil {
		categories = []ledger.CategoryBalance{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	name, _ := url.PathUnescape(chi.URLParam(r, "name"))
	if err := s.engine.DeleteCategory(name); err != nil {
		writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listCategoryTransactions(w http.ResponseWriter, r *http.Request) {
	name, _ := url.PathUnescape(chi.URLParam(r, "name"))
	entries, err := s.engine.Ledger(name)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if entries == nil {
		entries = []ledger.Transaction{}
	}
	writeJSON(w, http.StatusOK, entries)
}
