package memory_test

import (
	"testing"

	"github.com/fwojciec/madlibs"
	"github.com/fwojciec/madlibs/memory"
	"github.com/stretchr/testify/assert"
)

func TestNewStoryPage(t *testing.T) {
	t.Parallel()

	page := memory.NewStoryPage(madlibs.DefaultStory())

	assert.Equal(t,
		[]string{"adjective", "insect", "noun", "person", "plural-noun", "verb"},
		page.Fields())
	assert.Equal(t,
		[]string{"adjective", "insect", "noun", "noun2", "person", "verb"},
		page.Slots())
}

func TestPage_Fields(t *testing.T) {
	t.Parallel()

	t.Run("unknown field reads as empty", func(t *testing.T) {
		t.Parallel()

		page := memory.NewPage(nil, nil)

		assert.Equal(t, "", page.FieldValue("nope"))
	})

	t.Run("writes to unknown field are dropped", func(t *testing.T) {
		t.Parallel()

		page := memory.NewPage([]string{"a"}, nil)
		page.SetFieldValue("b", "x")

		assert.Equal(t, []string{"a"}, page.Fields())
		assert.Equal(t, "", page.FieldValue("b"))
	})

	t.Run("fill ignores unknown fields", func(t *testing.T) {
		t.Parallel()

		page := memory.NewPage([]string{"a"}, nil)
		page.Fill(map[string]string{"a": "1", "z": "2"})

		assert.Equal(t, "1", page.FieldValue("a"))
		assert.Equal(t, []string{"a"}, page.Fields())
	})
}

func TestPage_Slots(t *testing.T) {
	t.Parallel()

	t.Run("set replaces content", func(t *testing.T) {
		t.Parallel()

		page := memory.NewPage(nil, []string{"s"})
		page.SetSlot("s", "one")
		page.SetSlot("s", "two")

		assert.Equal(t, "two", page.Slot("s"))
	})

	t.Run("contents are a copy", func(t *testing.T) {
		t.Parallel()

		page := memory.NewPage(nil, []string{"s"})
		page.SetSlot("s", "one")

		contents := page.SlotContents()
		contents["s"] = "changed"

		assert.Equal(t, "one", page.Slot("s"))
	})
}

func TestPage_Visible(t *testing.T) {
	t.Parallel()

	page := memory.NewPage(nil, nil)
	assert.False(t, page.Visible(madlibs.RegionStory), "regions start hidden")

	page.SetVisible(madlibs.RegionStory, true)
	assert.True(t, page.Visible(madlibs.RegionStory))

	page.SetVisible(madlibs.RegionStory, false)
	assert.False(t, page.Visible(madlibs.RegionStory))
}
