package mock

import "github.com/clauscan/clauscan"

var _ clauscan.Converter = (*Converter)(nil)

// Converter is a mock implementation of clauscan.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
