package madlibs_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/madlibs"
	"github.com/stretchr/testify/assert"
)

func TestDefaultStory_UsesEveryBoundSlot(t *testing.T) {
	t.Parallel()

	slots := madlibs.DefaultStory().Slots()

	for _, b := range madlibs.Bindings() {
		assert.Contains(t, slots, b.Slot)
	}
}

func TestStory_Slots(t *testing.T) {
	t.Parallel()

	story := madlibs.Story{Segments: []madlibs.Segment{
		{Slot: "a"},
		{Text: " and "},
		{Slot: "b"},
		{Text: " and "},
		{Slot: "a"},
	}}

	assert.Equal(t, []string{"a", "b"}, story.Slots())
}

func TestStory_Render(t *testing.T) {
	t.Parallel()

	t.Run("interleaves text and slot content", func(t *testing.T) {
		t.Parallel()

		story := madlibs.Story{Segments: []madlibs.Segment{
			{Text: "Hello, "},
			{Slot: madlibs.SlotPerson},
			{Text: "!"},
		}}

		out := story.Render(func(slot string) string {
			return strings.ToUpper(slot)
		})

		assert.Equal(t, "Hello, PERSON!", out)
	})

	t.Run("empty slots render as nothing", func(t *testing.T) {
		t.Parallel()

		story := madlibs.Story{Segments: []madlibs.Segment{
			{Text: "["},
			{Slot: madlibs.SlotVerb},
			{Text: "]"},
		}}

		out := story.Render(func(string) string { return "" })

		assert.Equal(t, "[]", out)
	})
}

func TestStory_RenderFunc(t *testing.T) {
	t.Parallel()

	story := madlibs.Story{Segments: []madlibs.Segment{
		{Text: "a "},
		{Slot: madlibs.SlotNoun},
	}}

	out := story.RenderFunc(
		func(text string) string { return "(" + text + ")" },
		func(slot string) string { return "<" + slot + ">" },
	)

	assert.Equal(t, "(a )<noun>", out)
}
