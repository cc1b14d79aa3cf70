package madlibs

import "strings"

// Segment is one piece of a story: either fixed text or a slot reference.
type Segment struct {
	Text string // Literal text, used when Slot is empty
	Slot string // Slot id whose content is shown here
}

// Story is a fixed template made of literal text and slots.
type Story struct {
	Title    string
	Segments []Segment
}

// DefaultStory returns the built-in story. Every slot appears at least once.
func DefaultStory() Story {
	return Story{
		Title: "The Picnic",
		Segments: []Segment{
			{Text: "One sunny morning "},
			{Slot: SlotPerson},
			{Text: " packed a "},
			{Slot: SlotAdjective},
			{Text: " basket and a "},
			{Slot: SlotNoun},
			{Text: " and set off for the park. Halfway through lunch a giant "},
			{Slot: SlotInsect},
			{Text: " landed on the blanket, followed by a crowd of noisy "},
			{Slot: SlotNoun2},
			{Text: ". There was nothing left to do but "},
			{Slot: SlotVerb},
			{Text: " all the way home."},
		},
	}
}

// Slots returns the distinct slot ids used by the story, in order of first use.
func (s Story) Slots() []string {
	var slots []string
	seen := make(map[string]bool)
	for _, seg := range s.Segments {
		if seg.Slot != "" && !seen[seg.Slot] {
			slots = append(slots, seg.Slot)
			seen[seg.Slot] = true
		}
	}
	return slots
}

// Render writes the story as plain text, asking content for each slot.
func (s Story) Render(content func(slot string) string) string {
	return s.RenderFunc(func(text string) string { return text }, content)
}

// RenderFunc writes the story, passing literal text through text and
// slot ids through slot. Renderers use it to style the two differently.
func (s Story) RenderFunc(text, slot func(string) string) string {
	var sb strings.Builder
	for _, seg := range s.Segments {
		if seg.Slot != "" {
			sb.WriteString(slot(seg.Slot))
			continue
		}
		sb.WriteString(text(seg.Text))
	}
	return sb.String()
}
