package mock

import "github.com/imsaksham-c/webchat"

var _ webchat.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of webchat.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*webchat.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*webchat.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ webchat.Converter = (*Converter)(nil)

// Converter is a mock implementation of webchat.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
