package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wordkeep/internal/domain"
	"github.com/heartmarshall/wordkeep/internal/service/settings"
)

type settingsService interface {
	Current() domain.Settings
	Update(ctx context.Context, input settings.UpdateSettingsInput) (domain.Settings, error)
}

// SettingsHandler serves /api/settings.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type updateSettingsRequest struct {
	TranslationLang *string  `json:"translation_lang" validate:"omitempty,max=10"`
	DailyGoal       *int     `json:"daily_goal"`
	QuizModes       []string `json:"quiz_modes" validate:"omitempty,max=3"`
	NotifyHour      *int     `json:"notify_hour"`
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSettingsResponse(h.svc.Current()))
}

// Update handles PATCH /api/settings. Absent fields are left unchanged.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := settings.UpdateSettingsInput{
		TranslationLang: req.TranslationLang,
		DailyGoal:       req.DailyGoal,
		NotifyHour:      req.NotifyHour,
	}
	if req.QuizModes != nil {
		input.QuizModes = make([]domain.QuizMode, 0, len(req.QuizModes))
		for _, raw := range req.QuizModes {
			// Unknown names pass through and are rejected by the store.
			m, _ := domain.ParseQuizMode(raw)
			input.QuizModes = append(input.QuizModes, m)
		}
	}

	updated, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(updated))
}
