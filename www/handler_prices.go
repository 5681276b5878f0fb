package www

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/angas/elspot-go/database"
	"github.com/angas/elspot-go/hours"
	"github.com/angas/elspot-go/regions"
)

type priceEntry struct {
	Region   string `json:"region"`
	From     string `json:"from"`
	To       string `json:"to"`
	Value    string `json:"value"`
	Currency string `json:"currency"`
	Fraction bool   `json:"fraction"`
	Power    string `json:"power"`
}

type pricesResponse struct {
	Region string       `json:"region"`
	Date   string       `json:"date"`
	Prices []priceEntry `json:"prices"`
}

func NewPricesHandler(logger *slog.Logger, db *database.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		region := r.URL.Query().Get("region")
		if !regions.IsSupported(region) {
			http.Error(w, "unknown or missing region", http.StatusBadRequest)
			return
		}

		date := r.URL.Query().Get("date")
		if date == "" {
			date = hours.FromNow().Date
		} else if _, err := time.Parse("2006-01-02", date); err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		rows, err := db.GetDayAheadPrices(r.Context(), region, date)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			logger.Error("failed to fetch prices", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := pricesResponse{Region: region, Date: date, Prices: make([]priceEntry, 0, len(rows))}
		for _, row := range rows {
			resp.Prices = append(resp.Prices, priceEntry{
				Region:   row.Region,
				From:     row.From.UTC().Format(time.RFC3339),
				To:       row.To.UTC().Format(time.RFC3339),
				Value:    row.Value,
				Currency: row.Currency,
				Fraction: row.Fraction,
				Power:    row.Power,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error("failed to encode response", slog.Any("error", err))
		}
	})
}
