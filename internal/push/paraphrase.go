package push

import "context"

// Paraphraser rewrites a rendered template into a final push text. The
// returned text is untrusted and is always re-validated by the caller.
// An error or empty result means "no paraphrase"; it is never fatal.
type Paraphraser interface {
	Paraphrase(ctx context.Context, instruction, text string) (string, error)
	Close() error
}

// NoopParaphraser is used when AI paraphrasing is disabled or not
// configured; the deterministic template is then always used.
type NoopParaphraser struct{}

func NewNoopParaphraser() *NoopParaphraser { return &NoopParaphraser{} }

func (n *NoopParaphraser) Paraphrase(_ context.Context, _, _ string) (string, error) {
	return "", nil
}

func (n *NoopParaphraser) Close() error { return nil }
