package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/wordkeep/internal/domain"
	"github.com/heartmarshall/wordkeep/internal/service/review"
)

const defaultPageSize = 50

type wordService interface {
	AddWord(ctx context.Context, input review.AddWordInput) (review.AddWordResult, error)
	CheckDuplicate(ctx context.Context, term string) (*domain.Word, error)
	ListWords(ctx context.Context, limit, offset int) ([]domain.Word, error)
	GetWordDetail(ctx context.Context, id uuid.UUID) (*domain.WordDetail, error)
	WatchWord(ctx context.Context, id uuid.UUID) (<-chan domain.WordDetail, error)
	DeleteWord(ctx context.Context, id uuid.UUID) (bool, error)
	EnsureEnriched(ctx context.Context, wordID uuid.UUID, targetLang string) (bool, error)
}

type settingsReader interface {
	Current() domain.Settings
}

// WordHandler serves /api/words.
type WordHandler struct {
	svc   wordService
	prefs settingsReader
	log   *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc wordService, prefs settingsReader, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, prefs: prefs, log: logger.With("handler", "words")}
}

type addWordRequest struct {
	Term     string   `json:"term" validate:"required,max=200"`
	Notes    *string  `json:"notes" validate:"omitempty,max=2000"`
	Tags     []string `json:"tags" validate:"max=20,dive,max=50"`
	BaseLang string   `json:"base_lang" validate:"omitempty,max=10"`
}

type addWordResponse struct {
	ID uuid.UUID `json:"id"`
}

// Add handles POST /api/words.
func (h *WordHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addWordRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.AddWord(r.Context(), review.AddWordInput{
		Term:     req.Term,
		Notes:    req.Notes,
		Tags:     req.Tags,
		BaseLang: req.BaseLang,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if res.Duplicate {
		id := res.ID
		writeJSON(w, http.StatusConflict, errorResponse{Error: "already exists", ExistingID: &id})
		return
	}

	writeJSON(w, http.StatusCreated, addWordResponse{ID: res.ID})
}

type duplicateResponse struct {
	Duplicate  bool       `json:"duplicate"`
	ExistingID *uuid.UUID `json:"existing_id,omitempty"`
}

// Check handles GET /api/words/check?term=.
func (h *WordHandler) Check(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	if strings.TrimSpace(term) == "" {
		handleError(w, r, h.log, domain.NewValidationError("term", "required"))
		return
	}

	existing, err := h.svc.CheckDuplicate(r.Context(), term)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusOK, duplicateResponse{})
		return
	}
	writeJSON(w, http.StatusOK, duplicateResponse{Duplicate: true, ExistingID: &existing.ID})
}

// List handles GET /api/words?limit&offset.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit", defaultPageSize)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	offset, err := intQuery(r, "offset", 0)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	words, err := h.svc.ListWords(r.Context(), limit, offset)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]wordResponse, 0, len(words))
	for _, wd := range words {
		out = append(out, toWordResponse(wd))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	detail, err := h.svc.GetWordDetail(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWordDetailResponse(detail))
}

// Delete handles DELETE /api/words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	removed, err := h.svc.DeleteWord(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type enrichResponse struct {
	Changed bool `json:"changed"`
}

// Enrich handles POST /api/words/{id}/enrich. The target language is the
// lang query parameter or the configured translation language.
func (h *WordHandler) Enrich(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	lang := r.URL.Query().Get("lang")
	if strings.TrimSpace(lang) == "" {
		lang = h.prefs.Current().TranslationLang
	}

	changed, err := h.svc.EnsureEnriched(r.Context(), id, lang)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, enrichResponse{Changed: changed})
}

// Events handles GET /api/words/{id}/events, streaming the word detail as
// server-sent events until the client leaves or the word is deleted.
func (h *WordHandler) Events(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updates, err := h.svc.WatchWord(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rc := http.NewResponseController(w)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	for detail := range updates {
		if err := writeEvent(w, "word", toWordDetailResponse(&detail)); err != nil {
			return
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
	if r.Context().Err() != nil {
		return
	}
	_ = writeEvent(w, "deleted", addWordResponse{ID: id})
	_ = rc.Flush()
}

func writeEvent(w http.ResponseWriter, event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}

func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, fmt.Sprintf("must be an integer, got %q", raw))
	}
	return n, nil
}
