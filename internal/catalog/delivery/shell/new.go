package shell

import (
	"io"

	"catalog-manager/internal/catalog"
	"catalog-manager/pkg/log"
)

// Shell is a line-oriented front-end for a single local user. It owns that
// user's view parameters and re-renders the list after every mutation.
type Shell struct {
	l   log.Logger
	uc  catalog.UseCase
	in  io.Reader
	out io.Writer

	view catalog.ViewParams
	// listed holds the ids of the last rendered list, so items can be
	// referenced by their 1-based position.
	listed []string
}

// New creates a Shell reading commands from in and writing to out.
func New(l log.Logger, uc catalog.UseCase, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		l:    l,
		uc:   uc,
		in:   in,
		out:  out,
		view: catalog.DefaultViewParams(),
	}
}
