package madlibs_test

import (
	"testing"

	"github.com/fwojciec/madlibs"
	"github.com/stretchr/testify/assert"
)

func TestColorPair(t *testing.T) {
	t.Parallel()

	t.Run("stores foreground and background colors", func(t *testing.T) {
		t.Parallel()

		cp := madlibs.ColorPair{
			Foreground: "#00ff00",
			Background: "#000000",
		}

		assert.Equal(t, "#00ff00", cp.Foreground)
		assert.Equal(t, "#000000", cp.Background)
	})
}

func TestStyles(t *testing.T) {
	t.Parallel()

	t.Run("zero value has no color overrides", func(t *testing.T) {
		t.Parallel()

		var styles madlibs.Styles

		assert.Empty(t, styles.Slot.Foreground)
		assert.Empty(t, styles.Story.Background)
	})
}
