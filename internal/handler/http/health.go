package http

import (
	"net/http"

	"github.com/JegankarthiMCA/i/internal/utils"
)

// health reports that the server is up and answering requests.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "Started"}, http.StatusOK)
}
