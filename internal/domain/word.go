package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultBaseLang is the language words are assumed to be written in.
const DefaultBaseLang = "en"

// Word is a vocabulary item owned by the user. NormalizedTerm is unique
// across all words.
type Word struct {
	ID             uuid.UUID
	Term           string
	NormalizedTerm string
	BaseLang       string
	Notes          *string
	Tags           []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Sense is one dictionary meaning of a word. Senses are only created by
// enrichment.
type Sense struct {
	ID           uuid.UUID
	WordID       uuid.UUID
	PartOfSpeech *string
	Definition   string
	IPA          *string
	Examples     []string
	Synonyms     []string
	Antonyms     []string
	AudioURLs    []string
	Position     int
}

// Translation holds the word translated into one language. Unique per
// (WordID, LanguageCode).
type Translation struct {
	ID           uuid.UUID
	WordID       uuid.UUID
	LanguageCode string
	Text         string
	UpdatedAt    time.Time
}

// WordDetail is the read-only composed view of a word and everything it owns.
type WordDetail struct {
	Word         Word
	Senses       []Sense
	Translations []Translation
	Schedule     *ScheduleState
}

// FirstSense returns the first sense or nil.
func (d *WordDetail) FirstSense() *Sense {
	if len(d.Senses) == 0 {
		return nil
	}
	return &d.Senses[0]
}

// TranslationFor returns the translation for lang or nil.
func (d *WordDetail) TranslationFor(lang string) *Translation {
	for i := range d.Translations {
		if d.Translations[i].LanguageCode == lang {
			return &d.Translations[i]
		}
	}
	return nil
}
