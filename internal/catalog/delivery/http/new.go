package http

import (
	"catalog-manager/internal/catalog"
	"catalog-manager/internal/catalog/session"
	"catalog-manager/pkg/log"
)

// SessionCookieName keys the caller's held view parameters.
const SessionCookieName = "catalog_session"

type handler struct {
	l        log.Logger
	uc       catalog.UseCase
	sessions session.Registry
}

// New creates a new HTTP handler for the catalog domain.
func New(l log.Logger, uc catalog.UseCase, sessions session.Registry) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
	}
}
