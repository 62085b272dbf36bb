package notification

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// User-facing response messages.
const (
	msgBodyRequired  = "Se requiere un cuerpo JSON"
	msgMissingFields = "Campos requeridos faltantes: %s"
	msgSent          = "Notificacion enviada a %s"
	msgSendFailed    = "Error al enviar correo: %s"
)

// Handler exposes the notification dispatch over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler creates the HTTP handler for payment notifications.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Routes declares the handler's routes on a router.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/send-payment-notification", h.sendPaymentNotification)
}

// sendPaymentNotification maps the dispatch outcome onto the HTTP response.
// Every failure becomes a JSON body with a single "error" key; no error
// escapes to produce a bare framework page.
func (h *Handler) sendPaymentNotification(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload == nil {
		writeJSON(w, http.StatusBadRequest, errorBody(msgBodyRequired))
		return
	}

	recipient, err := h.svc.Dispatch(r.Context(), payload)
	if err == nil {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf(msgSent, recipient),
		})
		return
	}

	var ve *ValidationError
	switch {
	case errors.Is(err, ErrEmptyPayload):
		writeJSON(w, http.StatusBadRequest, errorBody(msgBodyRequired))
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest,
			errorBody(fmt.Sprintf(msgMissingFields, strings.Join(ve.Missing, ", "))))
	default:
		// Delivery failures keep the upstream detail for operator diagnosis.
		writeJSON(w, http.StatusInternalServerError,
			errorBody(fmt.Sprintf(msgSendFailed, err.Error())))
	}
}

func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
