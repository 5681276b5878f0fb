package www

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/angas/elspot-go/regions"
)

func NewRegionsHandler(logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(regions.Supported()); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
		}
	})
}
