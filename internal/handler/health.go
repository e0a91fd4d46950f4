package handler

import (
	"net/http"

	"github.com/gymkit/api/internal/database"
	"github.com/gymkit/api/internal/model"
)

// Health returns a handler for GET /health that pings the database.
func Health(db database.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			WriteError(w, model.NewInternalError("database unreachable"))
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
