package ask

import "context"

// Generator is the external text-completion service: one opaque prompt in,
// one completion out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
