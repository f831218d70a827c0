// Package runtime provides a context type that holds the svn client,
// resolver and logger for use throughout the application. This avoids
// passing multiple parameters.
package runtime

import (
	"svnpick.dev/svnpick/internal/output"
	"svnpick.dev/svnpick/internal/resolve"
	"svnpick.dev/svnpick/internal/svn"
)

// Context provides access to the svn client and output for commands
type Context struct {
	Client   svn.Client
	Resolver resolve.Resolver
	Splog    *output.Splog
}

// NewContext creates a new context with the given client
func NewContext(client svn.Client) *Context {
	return &Context{
		Client: client,
		Splog:  output.NewSplog(),
	}
}

// NewContextForWorkingDir creates a context with a real svn client
// rooted at the given working copy and a TortoiseSVN resolver.
// tortoisePath may be empty to use the default executable.
func NewContextForWorkingDir(workingDir, tortoisePath string) *Context {
	return &Context{
		Client:   svn.NewClient(workingDir),
		Resolver: resolve.NewTortoiseResolver(tortoisePath),
		Splog:    output.NewSplog(),
	}
}
