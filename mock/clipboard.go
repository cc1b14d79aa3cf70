package mock

import "github.com/fwojciec/madlibs"

// Compile-time interface verification.
var _ madlibs.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of madlibs.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
