// Package errors provides sentinel errors and custom error types for svnpick.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrConfigNotFound indicates that the plan file does not exist
	ErrConfigNotFound = errors.New("plan file not found")

	// ErrConfigMalformed indicates that the plan file could not be parsed
	ErrConfigMalformed = errors.New("plan file malformed")

	// ErrConfigInvalid indicates that the plan is missing required fields
	ErrConfigInvalid = errors.New("plan invalid")

	// ErrToolUnavailable indicates that the interactive resolution tool
	// could not be located on the system
	ErrToolUnavailable = errors.New("conflict resolution tool not found")
)

// ConfigError represents a problem with the merge plan file.
// Kind is one of the config sentinel errors above.
type ConfigError struct {
	Kind error
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Kind, e.Path)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Is returns true if the target matches the error's kind
func (e *ConfigError) Is(target error) bool {
	return target == e.Kind
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError with the given kind
func NewConfigError(kind error, path string, err error) *ConfigError {
	return &ConfigError{Kind: kind, Path: path, Err: err}
}

// SVNCommandError represents an error from an svn command execution
type SVNCommandError struct {
	Command  string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *SVNCommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s %s", e.Command, strings.Join(e.Args, " "))
	msg += fmt.Sprintf("\nreturn code: %d", e.ExitCode)
	if e.Stdout != "" {
		msg += fmt.Sprintf("\noutput: %s", e.Stdout)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nerror: %s", e.Stderr)
	}
	return msg
}

func (e *SVNCommandError) Unwrap() error {
	return e.Err
}

// NewSVNCommandError creates a new SVNCommandError
func NewSVNCommandError(command string, args []string, exitCode int, stdout, stderr string, err error) *SVNCommandError {
	return &SVNCommandError{
		Command:  command,
		Args:     args,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Err:      err,
	}
}

// ToolFailedError represents a non-zero exit from the interactive
// conflict resolution tool
type ToolFailedError struct {
	Tool string
	Err  error
}

func (e *ToolFailedError) Error() string {
	return fmt.Sprintf("error launching %s: %v", e.Tool, e.Err)
}

func (e *ToolFailedError) Unwrap() error {
	return e.Err
}

// NewToolFailedError creates a new ToolFailedError
func NewToolFailedError(tool string, err error) *ToolFailedError {
	return &ToolFailedError{Tool: tool, Err: err}
}
