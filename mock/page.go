// Package mock provides test doubles for madlibs interfaces.
package mock

import "github.com/fwojciec/madlibs"

// Compile-time interface verification.
var _ madlibs.Page = (*Page)(nil)

// Page is a mock implementation of madlibs.Page.
type Page struct {
	FieldValueFn    func(field string) string
	SetFieldValueFn func(field, value string)
	SetSlotFn       func(slot, content string)
	SetVisibleFn    func(region madlibs.Region, visible bool)
}

func (p *Page) FieldValue(field string) string {
	return p.FieldValueFn(field)
}

func (p *Page) SetFieldValue(field, value string) {
	p.SetFieldValueFn(field, value)
}

func (p *Page) SetSlot(slot, content string) {
	p.SetSlotFn(slot, content)
}

func (p *Page) SetVisible(region madlibs.Region, visible bool) {
	p.SetVisibleFn(region, visible)
}
