// Package madlibs provides domain types for filling a story from a question form.
package madlibs

import (
	"context"
	"errors"
)

// Input field ids.
const (
	FieldPerson     = "person"
	FieldAdjective  = "adjective"
	FieldNoun       = "noun"
	FieldInsect     = "insect"
	FieldPluralNoun = "plural-noun"
	FieldVerb       = "verb"
)

// Story slot ids.
const (
	SlotPerson    = "person"
	SlotAdjective = "adjective"
	SlotNoun      = "noun"
	SlotInsect    = "insect"
	SlotNoun2     = "noun2"
	SlotVerb      = "verb"
)

// Errors returned by Verify when a page cannot hold every binding.
var (
	ErrMissingField = errors.New("missing input field")
	ErrMissingSlot  = errors.New("missing story slot")
)

// FieldBinding connects an input field to the story slot that displays its value.
type FieldBinding struct {
	Field string // Input field the value is read from
	Slot  string // Story slot the value is written to
}

var bindings = [...]FieldBinding{
	{Field: FieldPerson, Slot: SlotPerson},
	{Field: FieldAdjective, Slot: SlotAdjective},
	{Field: FieldNoun, Slot: SlotNoun},
	{Field: FieldInsect, Slot: SlotInsect},
	{Field: FieldPluralNoun, Slot: SlotNoun2},
	{Field: FieldVerb, Slot: SlotVerb},
}

// Bindings returns the fixed field-to-slot bindings in form order.
// The returned slice is a copy.
func Bindings() []FieldBinding {
	out := make([]FieldBinding, len(bindings))
	copy(out, bindings[:])
	return out
}

// Labels maps each input field to the prompt shown next to it.
var Labels = map[string]string{
	FieldPerson:     "Person",
	FieldAdjective:  "Adjective",
	FieldNoun:       "Noun",
	FieldInsect:     "Insect",
	FieldPluralNoun: "Plural noun",
	FieldVerb:       "Verb",
}

// ViewMode is the region currently shown to the user.
type ViewMode int

// View modes.
const (
	Asking ViewMode = iota
	Displaying
)

func (m ViewMode) String() string {
	switch m {
	case Asking:
		return "asking"
	case Displaying:
		return "displaying"
	default:
		return "unknown"
	}
}

// Region identifies one of the two mutually exclusive page regions.
type Region string

// Page regions.
const (
	RegionQuestions Region = "questions"
	RegionStory     Region = "story"
)

// Page is the presentation layer the controller reads from and writes to.
type Page interface {
	// FieldValue returns the text typed into an input field.
	// Unknown fields read as the empty string.
	FieldValue(field string) string
	// SetFieldValue replaces the text of an input field.
	SetFieldValue(field, value string)
	// SetSlot replaces the whole content of a story slot.
	SetSlot(slot, content string)
	// SetVisible shows or hides a region.
	SetVisible(region Region, visible bool)
}

// Inspector is implemented by pages that can list the ids they hold.
type Inspector interface {
	Fields() []string
	Slots() []string
}

// Player runs an interactive session and blocks until the user exits.
type Player interface {
	Play(ctx context.Context) error
}

// Clipboard provides access to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}
