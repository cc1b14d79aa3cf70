package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/fwojciec/madlibs"
)

// Compile-time interface verification.
var (
	_ madlibs.Page      = (*page)(nil)
	_ madlibs.Inspector = (*page)(nil)
)

// page is the terminal rendition of the question form and story.
// It is shared by pointer so the controller and every copy of Model see one state.
type page struct {
	fields  []string // field ids in form order
	inputs  []textinput.Model
	index   map[string]int
	slots   map[string]string
	visible map[madlibs.Region]bool
	focus   int
}

func newPage(story madlibs.Story) *page {
	p := &page{
		index:   make(map[string]int),
		slots:   make(map[string]string),
		visible: make(map[madlibs.Region]bool, 2),
	}
	for i, b := range madlibs.Bindings() {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholder(b.Field)
		p.fields = append(p.fields, b.Field)
		p.inputs = append(p.inputs, ti)
		p.index[b.Field] = i
	}
	for _, s := range story.Slots() {
		p.slots[s] = ""
	}
	return p
}

func placeholder(field string) string {
	if label, ok := madlibs.Labels[field]; ok {
		return strings.ToLower(label)
	}
	return field
}

func (p *page) FieldValue(field string) string {
	i, ok := p.index[field]
	if !ok {
		return ""
	}
	return p.inputs[i].Value()
}

func (p *page) SetFieldValue(field, value string) {
	if i, ok := p.index[field]; ok {
		p.inputs[i].SetValue(value)
	}
}

func (p *page) SetSlot(slot, content string) {
	if _, ok := p.slots[slot]; ok {
		p.slots[slot] = content
	}
}

func (p *page) SetVisible(region madlibs.Region, visible bool) {
	p.visible[region] = visible
}

func (p *page) Fields() []string {
	return append([]string(nil), p.fields...)
}

func (p *page) Slots() []string {
	slots := make([]string, 0, len(p.slots))
	for s := range p.slots {
		slots = append(slots, s)
	}
	return slots
}

func (p *page) slot(id string) string {
	return p.slots[id]
}

// focusOn moves focus to input i, wrapping around the ends of the form.
func (p *page) focusOn(i int) {
	n := len(p.inputs)
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n
	p.inputs[p.focus].Blur()
	p.focus = i
	p.inputs[p.focus].Focus()
}

func (p *page) onLastField() bool {
	return p.focus == len(p.inputs)-1
}

func (p *page) setWidth(w int) {
	for i := range p.inputs {
		p.inputs[i].Width = w
	}
}
