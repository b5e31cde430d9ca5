// Package quiz turns queued words into review questions and grades answers.
package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordkeep/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Word, error)
	RandomTerms(ctx context.Context, excludeID uuid.UUID, n int) ([]string, error)
}

type senseRepo interface {
	ListByWords(ctx context.Context, wordIDs []uuid.UUID) (map[uuid.UUID][]domain.Sense, error)
	RandomDefinitions(ctx context.Context, excludeWordID uuid.UUID, n int) ([]string, error)
}

// ---------------------------------------------------------------------------
// Generator
// ---------------------------------------------------------------------------

const (
	// DistractorCount is the number of wrong options in a multiple-choice question.
	DistractorCount = 3
	// Blank replaces the term in cloze sentences.
	Blank = "____"
)

var placeholderDistractors = [DistractorCount]string{
	"An unrelated meaning A",
	"An unrelated meaning B",
	"An unrelated meaning C",
}

// Question is one generated review question.
type Question struct {
	WordID uuid.UUID
	Term   string
	Mode   domain.QuizMode
	Prompt string
	// Options holds the shuffled choices for MCQ and the word bank for CLOZE.
	Options      []string
	CorrectIndex int
	CorrectText  string
}

// Generator builds questions from stored words. It is safe for concurrent use.
type Generator struct {
	words  wordRepo
	senses senseRepo
	log    *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator. rng drives option shuffling; pass a
// seeded source for reproducible output.
func NewGenerator(log *slog.Logger, words wordRepo, senses senseRepo, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{
		words:  words,
		senses: senses,
		log:    log.With("service", "quiz"),
		rng:    rng,
	}
}

// Build creates one question per usable word. The mode of the word at
// position i is modes[i%len(modes)]; skipped words still consume their
// position. Words that are gone or have no senses are skipped. A repeated
// id yields one question per occurrence.
func (g *Generator) Build(ctx context.Context, ids []uuid.UUID, modes []domain.QuizMode) ([]Question, error) {
	if len(modes) == 0 {
		return nil, domain.NewValidationError("modes", "at least one quiz mode is required")
	}
	for _, m := range modes {
		if !m.IsValid() {
			return nil, domain.NewValidationError("modes", fmt.Sprintf("unknown quiz mode %q", m))
		}
	}

	words, err := g.words.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get words: %w", err)
	}
	senses, err := g.senses.ListByWords(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list senses: %w", err)
	}
	byID := make(map[uuid.UUID]*domain.Word, len(words))
	for i := range words {
		byID[words[i].ID] = &words[i]
	}

	out := make([]Question, 0, len(ids))
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		word, ok := byID[id]
		if !ok || len(senses[id]) == 0 {
			g.log.DebugContext(ctx, "word skipped", slog.String("word_id", id.String()))
			continue
		}

		q, err := g.build(ctx, word, senses[id][0], modes[i%len(modes)])
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

func (g *Generator) build(ctx context.Context, word *domain.Word, first domain.Sense, mode domain.QuizMode) (Question, error) {
	switch mode {
	case domain.QuizModeMCQ:
		return g.multipleChoice(ctx, word, first.Definition)
	case domain.QuizModeType:
		return Question{
			WordID:       word.ID,
			Term:         word.Term,
			Mode:         mode,
			Prompt:       "Type the word for this definition:\n" + first.Definition,
			CorrectIndex: -1,
			CorrectText:  word.Term,
		}, nil
	default:
		return g.cloze(ctx, word, first)
	}
}

func (g *Generator) multipleChoice(ctx context.Context, word *domain.Word, definition string) (Question, error) {
	sampled, err := g.senses.RandomDefinitions(ctx, word.ID, DistractorCount)
	if err != nil {
		return Question{}, fmt.Errorf("sample distractors: %w", err)
	}

	seen := map[string]bool{domain.NormalizeText(definition): true}
	options := make([]string, 0, DistractorCount+1)
	for _, d := range sampled {
		key := domain.NormalizeText(d)
		if key == "" || seen[key] || len(options) == DistractorCount {
			continue
		}
		seen[key] = true
		options = append(options, d)
	}
	for _, p := range placeholderDistractors {
		if len(options) == DistractorCount {
			break
		}
		if !seen[domain.NormalizeText(p)] {
			options = append(options, p)
		}
	}
	options = append(options, definition)

	idx := g.shuffle(options, len(options)-1)
	return Question{
		WordID:       word.ID,
		Term:         word.Term,
		Mode:         domain.QuizModeMCQ,
		Prompt:       "Pick the correct definition for: " + word.Term,
		Options:      options,
		CorrectIndex: idx,
		CorrectText:  definition,
	}, nil
}

func (g *Generator) cloze(ctx context.Context, word *domain.Word, sense domain.Sense) (Question, error) {
	sentence := "The word " + word.Term + " means: " + sense.Definition
	if len(sense.Examples) > 0 && strings.TrimSpace(sense.Examples[0]) != "" {
		sentence = sense.Examples[0]
	}

	others, err := g.words.RandomTerms(ctx, word.ID, DistractorCount)
	if err != nil {
		return Question{}, fmt.Errorf("sample word bank: %w", err)
	}
	bank := make([]string, 0, len(others)+1)
	for _, t := range others {
		if !strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(word.Term)) {
			bank = append(bank, t)
		}
	}
	bank = append(bank, word.Term)
	idx := g.shuffle(bank, len(bank)-1)

	return Question{
		WordID:       word.ID,
		Term:         word.Term,
		Mode:         domain.QuizModeCloze,
		Prompt:       BlankOut(sentence, word.Term),
		Options:      bank,
		CorrectIndex: idx,
		CorrectText:  word.Term,
	}, nil
}

// shuffle permutes s in place and returns the new index of s[track].
func (g *Generator) shuffle(s []string, track int) int {
	pos := make([]int, len(s))
	for i := range pos {
		pos[i] = i
	}

	g.mu.Lock()
	g.rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
		pos[i], pos[j] = pos[j], pos[i]
	})
	g.mu.Unlock()

	for i, p := range pos {
		if p == track {
			return i
		}
	}
	return -1
}

// BlankOut replaces every case-insensitive occurrence of term in sentence
// with Blank.
func BlankOut(sentence, term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return sentence
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term))
	return re.ReplaceAllLiteralString(sentence, Blank)
}
