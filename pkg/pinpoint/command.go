package pinpoint

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultPlaceholder is the token in command templates which gets replaced by
// the current item's value.
const DefaultPlaceholder = "{}"

// ExpandTemplate replaces every occurrence of placeholder in template with
// value. An empty placeholder falls back to [DefaultPlaceholder].
func ExpandTemplate(template, placeholder, value string) string {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return strings.ReplaceAll(template, placeholder, value)
}

// An Action is an external command template which gets run once per tested
// item, with the placeholder token expanded to the item's value.
type Action struct {
	Template    string // The command template, run through the shell
	Placeholder string // The token replaced by the item's value, [DefaultPlaceholder] if empty

	Stdout io.Writer // Where the command's stdout goes, os.Stdout if nil
	Stderr io.Writer // Where the command's stderr goes, os.Stderr if nil
}

// Run expands the action's template for the passed item and executes it.
// The returned error reflects a non-zero exit or a failure to start. Callers
// surface it as a warning only, since the verdict is owned by the oracle and
// a crashing test command is itself useful bisection information.
func (a Action) Run(item string) error {
	command := ExpandTemplate(a.Template, a.Placeholder, item)

	cmd := exec.Command("sh", "-c", command)
	cmd.Stdout = a.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = a.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return errors.Join(fmt.Errorf("command %q failed", command), err)
	}
	return nil
}
