package flows

import (
	"context"
	"errors"
)

// stubGenerator returns a canned model response for flow tests.
type stubGenerator struct {
	output string
	err    error
}

func (s stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.output, s.err
}

var errGeneratorDown = errors.New("model backend unreachable")
