package api

import (
	"net/http"

	"github.com/tragkas/portfolio/internal/domain"
)

// listCategories handles GET /api/categories
func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.ListCategories(r.Context())
	if err != nil {
		s.writeStoreError(w, r, "list categories", err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	writeJSON(w, http.StatusOK, categories)
}

// createCategory handles POST /api/categories
func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := s.store.CreateCategory(r.Context(), req.Title, req.Subtitle, req.Emoji)
	if err != nil {
		s.writeStoreError(w, r, "create category", err)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// updateCategory handles PUT /api/categories/{id}
func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.UpdateCategory(r.Context(), r.PathValue("id"), req.Title, req.Subtitle, req.Emoji); err != nil {
		s.writeStoreError(w, r, "update category", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Category updated"})
}

// deleteCategory handles DELETE /api/categories/{id}
func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		s.writeStoreError(w, r, "delete category", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
}
