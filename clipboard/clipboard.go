// Package clipboard provides clipboard operations via platform-specific commands.
package clipboard

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/fwojciec/madlibs"
)

// ErrUnavailable is returned by Detect when no clipboard command is installed.
var ErrUnavailable = errors.New("no clipboard command found")

// Ensure Command implements the Clipboard interface.
var _ madlibs.Clipboard = (*Command)(nil)

// Command implements Clipboard by piping content into an external command.
type Command struct {
	Name string
	Args []string
}

// NewPBCopy returns a clipboard backed by the macOS pbcopy command.
func NewPBCopy() *Command {
	return &Command{Name: "pbcopy"}
}

// candidates lists the supported commands in order of preference.
var candidates = []Command{
	{Name: "pbcopy"},
	{Name: "wl-copy"},
	{Name: "xclip", Args: []string{"-selection", "clipboard"}},
	{Name: "xsel", Args: []string{"--clipboard", "--input"}},
}

// Detect returns the first clipboard command found on PATH.
func Detect() (*Command, error) {
	for _, c := range candidates {
		if _, err := exec.LookPath(c.Name); err == nil {
			return &Command{Name: c.Name, Args: c.Args}, nil
		}
	}
	return nil, ErrUnavailable
}

// Copy writes content to the system clipboard.
func (c *Command) Copy(content string) error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdin = strings.NewReader(content)
	return cmd.Run()
}
