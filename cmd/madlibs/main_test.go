package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/madlibs"
	main "github.com/fwojciec/madlibs/cmd/madlibs"
	"github.com/fwojciec/madlibs/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samStory = "The Picnic\n\nOne sunny morning Sam packed a silly basket and a lamp and set off for the park. " +
	"Halfway through lunch a giant bee landed on the blanket, followed by a crowd of noisy ducks. " +
	"There was nothing left to do but jump all the way home.\n"

func samValues() map[string]string {
	return map[string]string{
		madlibs.FieldPerson:     "Sam",
		madlibs.FieldAdjective:  "silly",
		madlibs.FieldNoun:       "lamp",
		madlibs.FieldInsect:     "bee",
		madlibs.FieldPluralNoun: "ducks",
		madlibs.FieldVerb:       "jump",
	}
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	t.Run("plays until the player returns", func(t *testing.T) {
		t.Parallel()

		played := false
		app := &main.App{
			Player: &mock.Player{
				PlayFn: func(ctx context.Context) error {
					played = true
					return nil
				},
			},
		}

		require.NoError(t, app.Run(context.Background()))
		assert.True(t, played)
	})

	t.Run("returns player error", func(t *testing.T) {
		t.Parallel()

		playErr := errors.New("terminal error")
		app := &main.App{
			Player: &mock.Player{
				PlayFn: func(ctx context.Context) error { return playErr },
			},
		}

		err := app.Run(context.Background())

		assert.Equal(t, playErr, err)
	})
}

func TestTeller_Tell(t *testing.T) {
	t.Parallel()

	t.Run("prints the filled story", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		teller := &main.Teller{Out: &out, Story: madlibs.DefaultStory()}

		require.NoError(t, teller.Tell(samValues()))
		assert.Equal(t, samStory, out.String())
	})

	t.Run("blank words leave blank slots", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		story := madlibs.Story{
			Title: "T",
			Segments: []madlibs.Segment{
				{Text: "["}, {Slot: madlibs.SlotPerson}, {Text: "]"},
				{Slot: madlibs.SlotAdjective}, {Slot: madlibs.SlotNoun}, {Slot: madlibs.SlotInsect},
				{Slot: madlibs.SlotNoun2}, {Slot: madlibs.SlotVerb},
			},
		}
		teller := &main.Teller{Out: &out, Story: story}

		require.NoError(t, teller.Tell(nil))
		assert.Equal(t, "T\n\n[]\n", out.String())
	})

	t.Run("rejects a story missing a slot", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		story := madlibs.Story{Segments: []madlibs.Segment{{Slot: madlibs.SlotPerson}}}
		teller := &main.Teller{Out: &out, Story: story}

		err := teller.Tell(samValues())

		require.ErrorIs(t, err, madlibs.ErrMissingSlot)
		assert.Empty(t, out.String())
	})
}

func TestRootCmd_Tell(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := main.NewRootCmd(main.Config{Theme: "dark", LogLevel: "info"}, &out)
	cmd.SetArgs([]string{"tell",
		"--person", "Sam", "--adjective", "silly", "--noun", "lamp",
		"--insect", "bee", "--plural-noun", "ducks", "--verb", "jump",
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, samStory, out.String())
}

func TestRootCmd_TellRejectsArgs(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := main.NewRootCmd(main.Config{Theme: "dark", LogLevel: "info"}, &out)
	cmd.SetArgs([]string{"tell", "extra"})

	assert.Error(t, cmd.Execute())
}

func TestRootCmd_UnknownTheme(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cmd := main.NewRootCmd(main.Config{Theme: "dark", LogLevel: "info"}, &out)
	cmd.SetArgs([]string{"--theme", "neon"})

	err := cmd.Execute()

	require.ErrorIs(t, err, main.ErrUnknownTheme)
}

func TestRootCmd_TellLogsToFile(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "logs", "madlibs.log")
	var out bytes.Buffer
	cmd := main.NewRootCmd(main.Config{Theme: "dark", LogLevel: "info"}, &out)
	cmd.SetArgs([]string{"tell", "--verbose", "--log-file", logPath, "--person", "Sam"})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"submit"`)
}
