package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/wordkeep/internal/domain"
	"github.com/heartmarshall/wordkeep/internal/service/review"
	"github.com/heartmarshall/wordkeep/internal/service/review/srs"
)

type reviewService interface {
	GenerateDailyQueue(ctx context.Context, targetSize int, today time.Time) ([]uuid.UUID, error)
	StartSession(ctx context.Context, today time.Time) (*review.Session, error)
	SubmitAnswer(ctx context.Context, sess *review.Session, input review.SubmitAnswerInput) (*review.AnswerResult, error)
	RecordReview(ctx context.Context, input review.RecordReviewInput) (*domain.ScheduleState, error)
}

// ReviewHandler serves the queue, session and review endpoints.
type ReviewHandler struct {
	svc      reviewService
	prefs    settingsReader
	sessions *sessionStore
	log      *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, prefs settingsReader, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		svc:      svc,
		prefs:    prefs,
		sessions: newSessionStore(),
		log:      logger.With("handler", "reviews"),
	}
}

type queueResponse struct {
	Day string      `json:"day,omitempty"`
	IDs []uuid.UUID `json:"ids"`
}

// Queue handles GET /api/queue?size&date. Size defaults to the daily goal.
func (h *ReviewHandler) Queue(w http.ResponseWriter, r *http.Request) {
	size, err := intQuery(r, "size", h.prefs.Current().DailyGoal)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	day, err := dateQuery(r, "date")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ids, err := h.svc.GenerateDailyQueue(r.Context(), size, day)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	resp := queueResponse{IDs: ids}
	if !day.IsZero() {
		resp.Day = day.Format(dateLayout)
	}
	writeJSON(w, http.StatusOK, resp)
}

// StartSession handles POST /api/sessions?date.
func (h *ReviewHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	day, err := dateQuery(r, "date")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sess, err := h.svc.StartSession(r.Context(), day)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.sessions.put(sess)

	writeJSON(w, http.StatusCreated, toSessionResponse(sess))
}

// GetSession handles GET /api/sessions/{id}.
func (h *ReviewHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(sess))
}

type answerRequest struct {
	Answer string `json:"answer" validate:"max=500"`
	Choice *int   `json:"choice" validate:"omitempty,min=0"`
	TimeMs int64  `json:"time_ms" validate:"min=0"`
}

// Answer handles POST /api/sessions/{id}/answers.
func (h *ReviewHandler) Answer(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req answerRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.SubmitAnswer(r.Context(), sess, review.SubmitAnswerInput{
		Answer: req.Answer,
		Choice: req.Choice,
		TimeMs: req.TimeMs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnswerResponse(res))
}

type reviewRequest struct {
	WordID  string `json:"word_id" validate:"required,uuid"`
	Mode    string `json:"mode" validate:"required,oneof=MCQ TYPE CLOZE"`
	Correct bool   `json:"correct"`
	TimeMs  int64  `json:"time_ms" validate:"min=0"`
	Grade   *int   `json:"grade" validate:"omitempty,min=0,max=5"`
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// Record handles POST /api/reviews. Without an explicit grade the answer
// is graded 5 when correct and 2 otherwise.
func (h *ReviewHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	st, err := h.svc.RecordReview(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleResponse(st))
}

func (h *ReviewHandler) session(w http.ResponseWriter, r *http.Request) (*review.Session, bool) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return nil, false
	}
	sess, ok := h.sessions.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return sess, true
}

// toInput converts a decoded request without trusting validator tags.
func (req reviewRequest) toInput() (review.RecordReviewInput, error) {
	wordID, err := uuid.Parse(req.WordID)
	if err != nil {
		return review.RecordReviewInput{}, domain.NewValidationError("word_id", "must be a UUID")
	}
	day, err := parseDate("date", req.Date)
	if err != nil {
		return review.RecordReviewInput{}, err
	}

	grade := srs.GradeFor(req.Correct)
	if req.Grade != nil {
		grade = *req.Grade
	}
	return review.RecordReviewInput{
		WordID:  wordID,
		Mode:    domain.QuizMode(req.Mode),
		Correct: req.Correct,
		TimeMs:  req.TimeMs,
		Grade:   grade,
		Today:   day,
	}, nil
}

func dateQuery(r *http.Request, name string) (time.Time, error) {
	return parseDate(name, r.URL.Query().Get(name))
}

// parseDate parses a YYYY-MM-DD value. Empty means zero.
func parseDate(name, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	day, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError(name, "must be YYYY-MM-DD")
	}
	return day, nil
}
