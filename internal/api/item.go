package api

import "net/http"

// createItem handles POST /api/items
func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := s.store.CreateItem(r.Context(), req.CategoryID, req.fields())
	if err != nil {
		s.writeStoreError(w, r, "create item", err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// updateItem handles PUT /api/items/{id}
func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.UpdateItem(r.Context(), r.PathValue("id"), req.fields()); err != nil {
		s.writeStoreError(w, r, "update item", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Item updated"})
}

// deleteItem handles DELETE /api/items/{id}
func (s *Server) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteItem(r.Context(), r.PathValue("id")); err != nil {
		s.writeStoreError(w, r, "delete item", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

// reorderItems handles PUT /api/items/reorder
func (s *Server) reorderItems(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.ReorderItems(r.Context(), req.CategoryID, req.Items); err != nil {
		s.writeStoreError(w, r, "reorder items", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Items reordered"})
}
