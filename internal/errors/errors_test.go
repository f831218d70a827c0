package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	svnpickerrors "svnpick.dev/svnpick/internal/errors"
)

func TestConfigErrorMatchesItsKind(t *testing.T) {
	err := svnpickerrors.NewConfigError(svnpickerrors.ErrConfigNotFound, "config.json", nil)
	require.ErrorIs(t, err, svnpickerrors.ErrConfigNotFound)
	require.NotErrorIs(t, err, svnpickerrors.ErrConfigMalformed)
}

func TestSVNCommandErrorMessage(t *testing.T) {
	err := svnpickerrors.NewSVNCommandError(
		"svn", []string{"merge", "-c", "42", "/branches/feature", "--accept", "theirs-full"},
		1, "some output", "svn: E155015: conflict", errors.New("exit status 1"),
	)

	msg := err.Error()
	require.Contains(t, msg, "command failed: svn merge -c 42 /branches/feature --accept theirs-full")
	require.Contains(t, msg, "return code: 1")
	require.Contains(t, msg, "output: some output")
	require.Contains(t, msg, "error: svn: E155015: conflict")
}

func TestSVNCommandErrorUnwrap(t *testing.T) {
	cause := errors.New("exit status 1")
	err := svnpickerrors.NewSVNCommandError("svn", nil, 1, "", "", cause)
	require.ErrorIs(t, err, cause)
}
