package provider

// LookupResult is the structured result of a dictionary lookup. An empty
// Senses slice means the term is unknown to the dictionary.
type LookupResult struct {
	Senses []SenseResult
	// IPA is the entry-level transcription, used when a sense has none.
	IPA *string
}

// SenseResult represents a single word sense from an external dictionary.
type SenseResult struct {
	PartOfSpeech *string
	Definition   string
	IPA          *string
	Examples     []string
	Synonyms     []string
	Antonyms     []string
	AudioURLs    []string
}
