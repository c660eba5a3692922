package registration

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type accountResponse struct {
	ID        ID        `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type fieldErrorsResponse struct {
	Errors []FieldError `json:"errors"`
}

func RegisterAccountHandler(svc Service, logger *slog.Logger, metrics *Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		payload, err := decodeRegistrationPayload(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorResponse{Error: "invalid request body"})
			return
		}

		outcome := svc.Register(r.Context(), payload)
		metrics.ObserveOutcome(outcome.Kind)
		encodeOutcome(w, r, outcome, logger)
	})
}

func encodeOutcome(w http.ResponseWriter, r *http.Request, outcome RegistrationOutcome, logger *slog.Logger) {
	switch outcome.Kind {
	case OutcomeCreated:
		acc := outcome.Account
		logger.Info("account created", "id", acc.ID, "email", acc.Email)
		w.Header().Set("Location", fmt.Sprintf("%s/%s", r.URL.Path, acc.ID))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(accountResponse{
			ID:        acc.ID,
			Email:     acc.Email,
			Name:      acc.Name,
			CreatedAt: acc.CreatedAt,
		})
	case OutcomeValidationFailed:
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(fieldErrorsResponse{Errors: outcome.Errors})
	case OutcomeEmailTaken:
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(fieldErrorsResponse{
			Errors: []FieldError{{Field: "email", Message: "Email is already registered"}},
		})
	default:
		// The cause stays in the server log; clients get a generic message.
		logger.Error("registration storage failure", "error", outcome.Cause)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(errorResponse{Error: "internal server error"})
	}
}

func decodeRegistrationPayload(r *http.Request) (RegistrationPayload, error) {
	p := RegistrationPayload{}
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return RegistrationPayload{}, err
	}
	return p, nil
}

type healthResponse struct {
	Status   string `json:"status"`
	Backend  string `json:"backend"`
	Accounts int64  `json:"accounts"`
}

// HealthHandler reports aggregate store statistics. Read-only.
func HealthHandler(store AccountStore, backend string, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		n, err := store.Count(r.Context())
		if err != nil {
			logger.Error("health check store failure", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(healthResponse{Status: "degraded", Backend: backend})
			return
		}
		json.NewEncoder(w).Encode(healthResponse{Status: "ok", Backend: backend, Accounts: n})
	})
}
