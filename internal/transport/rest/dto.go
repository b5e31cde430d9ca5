package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordkeep/internal/domain"
	"github.com/heartmarshall/wordkeep/internal/service/quiz"
	"github.com/heartmarshall/wordkeep/internal/service/review"
)

const dateLayout = "2006-01-02"

type wordResponse struct {
	ID             uuid.UUID `json:"id"`
	Term           string    `json:"term"`
	NormalizedTerm string    `json:"normalized_term"`
	BaseLang       string    `json:"base_lang"`
	Notes          *string   `json:"notes,omitempty"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type senseResponse struct {
	ID           uuid.UUID `json:"id"`
	PartOfSpeech *string   `json:"part_of_speech,omitempty"`
	Definition   string    `json:"definition"`
	IPA          *string   `json:"ipa,omitempty"`
	Examples     []string  `json:"examples"`
	Synonyms     []string  `json:"synonyms"`
	Antonyms     []string  `json:"antonyms"`
	AudioURLs    []string  `json:"audio_urls"`
}

type translationResponse struct {
	LanguageCode string `json:"language_code"`
	Text         string `json:"text"`
}

type scheduleResponse struct {
	Easiness     float64 `json:"easiness"`
	IntervalDays int     `json:"interval_days"`
	Repetitions  int     `json:"repetitions"`
	DueDate      string  `json:"due_date"`
	Lapses       int     `json:"lapses"`
	History      []int   `json:"history"`
}

type wordDetailResponse struct {
	wordResponse
	Senses       []senseResponse       `json:"senses"`
	Translations []translationResponse `json:"translations"`
	Schedule     *scheduleResponse     `json:"schedule"`
}

// questionResponse never carries the answer.
type questionResponse struct {
	WordID  uuid.UUID `json:"word_id"`
	Mode    string    `json:"mode"`
	Prompt  string    `json:"prompt"`
	Options []string  `json:"options,omitempty"`
}

type summaryResponse struct {
	ID           uuid.UUID `json:"id"`
	Total        int       `json:"total"`
	Answered     int       `json:"answered"`
	CorrectCount int       `json:"correct_count"`
	ElapsedMs    int64     `json:"elapsed_ms"`
	Finished     bool      `json:"finished"`
}

type sessionResponse struct {
	ID        uuid.UUID          `json:"id"`
	Day       string             `json:"day"`
	Questions []questionResponse `json:"questions"`
	Current   *questionResponse  `json:"current"`
	Summary   summaryResponse    `json:"summary"`
}

type answerResponse struct {
	Correct     bool              `json:"correct"`
	CorrectText string            `json:"correct_text"`
	Grade       int               `json:"grade"`
	Schedule    *scheduleResponse `json:"schedule"`
	Next        *questionResponse `json:"next"`
	Summary     summaryResponse   `json:"summary"`
}

type settingsResponse struct {
	TranslationLang string   `json:"translation_lang"`
	DailyGoal       int      `json:"daily_goal"`
	QuizModes       []string `json:"quiz_modes"`
	NotifyHour      int      `json:"notify_hour"`
}

func toWordResponse(w domain.Word) wordResponse {
	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}
	return wordResponse{
		ID:             w.ID,
		Term:           w.Term,
		NormalizedTerm: w.NormalizedTerm,
		BaseLang:       w.BaseLang,
		Notes:          w.Notes,
		Tags:           tags,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
}

func toWordDetailResponse(d *domain.WordDetail) wordDetailResponse {
	resp := wordDetailResponse{
		wordResponse: toWordResponse(d.Word),
		Senses:       make([]senseResponse, 0, len(d.Senses)),
		Translations: make([]translationResponse, 0, len(d.Translations)),
		Schedule:     toScheduleResponse(d.Schedule),
	}
	for _, s := range d.Senses {
		resp.Senses = append(resp.Senses, senseResponse{
			ID:           s.ID,
			PartOfSpeech: s.PartOfSpeech,
			Definition:   s.Definition,
			IPA:          s.IPA,
			Examples:     orEmpty(s.Examples),
			Synonyms:     orEmpty(s.Synonyms),
			Antonyms:     orEmpty(s.Antonyms),
			AudioURLs:    orEmpty(s.AudioURLs),
		})
	}
	for _, t := range d.Translations {
		resp.Translations = append(resp.Translations, translationResponse{LanguageCode: t.LanguageCode, Text: t.Text})
	}
	return resp
}

func toScheduleResponse(s *domain.ScheduleState) *scheduleResponse {
	if s == nil {
		return nil
	}
	history := s.History
	if history == nil {
		history = []int{}
	}
	return &scheduleResponse{
		Easiness:     s.Easiness,
		IntervalDays: s.IntervalDays,
		Repetitions:  s.Repetitions,
		DueDate:      s.DueDate.Format(dateLayout),
		Lapses:       s.Lapses,
		History:      history,
	}
}

func toQuestionResponse(q quiz.Question) questionResponse {
	return questionResponse{WordID: q.WordID, Mode: q.Mode.String(), Prompt: q.Prompt, Options: q.Options}
}

func toSummaryResponse(s review.SessionSummary) summaryResponse {
	return summaryResponse{
		ID:           s.ID,
		Total:        s.Total,
		Answered:     s.Index,
		CorrectCount: s.CorrectCount,
		ElapsedMs:    s.ElapsedMs,
		Finished:     s.Finished,
	}
}

func toSessionResponse(sess *review.Session) sessionResponse {
	qs := sess.Questions()
	resp := sessionResponse{
		ID:        sess.ID,
		Day:       sess.Day.Format(dateLayout),
		Questions: make([]questionResponse, 0, len(qs)),
		Summary:   toSummaryResponse(sess.Summary()),
	}
	for _, q := range qs {
		resp.Questions = append(resp.Questions, toQuestionResponse(q))
	}
	if q, ok := sess.Current(); ok {
		cur := toQuestionResponse(q)
		resp.Current = &cur
	}
	return resp
}

func toAnswerResponse(res *review.AnswerResult) answerResponse {
	resp := answerResponse{
		Correct:     res.Correct,
		CorrectText: res.CorrectText,
		Grade:       res.Grade,
		Schedule:    toScheduleResponse(res.Schedule),
		Summary:     toSummaryResponse(res.Summary),
	}
	if res.Next != nil {
		next := toQuestionResponse(*res.Next)
		resp.Next = &next
	}
	return resp
}

func toSettingsResponse(s domain.Settings) settingsResponse {
	modes := make([]string, len(s.QuizModes))
	for i, m := range s.QuizModes {
		modes[i] = m.String()
	}
	return settingsResponse{
		TranslationLang: s.TranslationLang,
		DailyGoal:       s.DailyGoal,
		QuizModes:       modes,
		NotifyHour:      s.NotifyHour,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
