package actions

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via SVNPICK_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (SVNPICK_TEST_NO_INTERACTIVE is set)")

// stdoutIsTerminal reports whether stdout is attached to a terminal
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// promptConfirm asks a yes/no question. It returns ErrInteractiveDisabled
// when prompts are suppressed for tests, and answers yes without asking
// when stdout is not a terminal (unattended runs).
func promptConfirm(message string) (bool, error) {
	if os.Getenv("SVNPICK_TEST_NO_INTERACTIVE") != "" {
		return false, ErrInteractiveDisabled
	}
	if !stdoutIsTerminal() {
		return true, nil
	}

	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("canceled")
	}
	return confirmed, nil
}
