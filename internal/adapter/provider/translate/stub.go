package translate

import "context"

// Stub is a translator that never produces a translation. It stands in when
// translation is disabled.
type Stub struct{}

func NewStub() *Stub { return &Stub{} }

// Translate returns an empty string, which callers treat as "no translation".
func (s *Stub) Translate(ctx context.Context, text, target, source string) (string, error) {
	return "", nil
}
