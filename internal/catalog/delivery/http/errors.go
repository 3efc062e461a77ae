package http

import (
	"errors"
	"net/http"

	"catalog-manager/internal/catalog"
	pkgErrors "catalog-manager/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var vErr *catalog.ValidationError
	if errors.As(err, &vErr) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "please fill in all required fields").
			WithDetail("field", vErr.Field)
	}

	var pErr *catalog.ViewParamError
	if errors.As(err, &pErr) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, pErr.Error()).
			WithDetail("param", pErr.Param)
	}

	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		return pkgErrors.ErrNotFound
	default:
		return pkgErrors.ErrInternalServerError
	}
}
