package handlers

import (
	"fmt"
	"net/http"
)

func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	countTables, err := h.TablesService.GetCountTablesBD()
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]string{
		"tables": fmt.Sprintf("%d", countTables),
	}, http.StatusOK)
}
