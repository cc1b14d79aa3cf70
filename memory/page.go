// Package memory provides an in-memory Page for scripted use and tests.
package memory

import (
	"maps"
	"slices"

	"github.com/fwojciec/madlibs"
)

// Compile-time interface verification.
var (
	_ madlibs.Page      = (*Page)(nil)
	_ madlibs.Inspector = (*Page)(nil)
)

// Page holds form inputs, story slots and region visibility in maps.
// Only ids passed to NewPage exist; writes to other ids are dropped.
type Page struct {
	fields  map[string]string
	slots   map[string]string
	visible map[madlibs.Region]bool
}

// NewPage creates a Page with the given input fields and story slots, all empty.
func NewPage(fields, slots []string) *Page {
	p := &Page{
		fields:  make(map[string]string, len(fields)),
		slots:   make(map[string]string, len(slots)),
		visible: make(map[madlibs.Region]bool, 2),
	}
	for _, f := range fields {
		p.fields[f] = ""
	}
	for _, s := range slots {
		p.slots[s] = ""
	}
	return p
}

// NewStoryPage creates a Page holding every bound field and every slot of story.
func NewStoryPage(story madlibs.Story) *Page {
	var fields []string
	for _, b := range madlibs.Bindings() {
		fields = append(fields, b.Field)
	}
	return NewPage(fields, story.Slots())
}

// FieldValue returns the value of field, or "" if it does not exist.
func (p *Page) FieldValue(field string) string {
	return p.fields[field]
}

// SetFieldValue replaces the value of an existing field.
func (p *Page) SetFieldValue(field, value string) {
	if _, ok := p.fields[field]; ok {
		p.fields[field] = value
	}
}

// Slot returns the content of slot.
func (p *Page) Slot(slot string) string {
	return p.slots[slot]
}

// SetSlot replaces the content of an existing slot.
func (p *Page) SetSlot(slot, content string) {
	if _, ok := p.slots[slot]; ok {
		p.slots[slot] = content
	}
}

// Visible reports whether region is shown.
func (p *Page) Visible(region madlibs.Region) bool {
	return p.visible[region]
}

// SetVisible shows or hides region.
func (p *Page) SetVisible(region madlibs.Region, visible bool) {
	p.visible[region] = visible
}

// Fields returns the field ids held by the page, sorted.
func (p *Page) Fields() []string {
	return slices.Sorted(maps.Keys(p.fields))
}

// Slots returns the slot ids held by the page, sorted.
func (p *Page) Slots() []string {
	return slices.Sorted(maps.Keys(p.slots))
}

// SlotContents returns a copy of every slot's content keyed by slot id.
func (p *Page) SlotContents() map[string]string {
	return maps.Clone(p.slots)
}

// Fill sets each field in values. Unknown fields are ignored.
func (p *Page) Fill(values map[string]string) {
	for f, v := range values {
		p.SetFieldValue(f, v)
	}
}
