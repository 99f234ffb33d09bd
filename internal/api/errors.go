// Gamescout - Video Game Recommendation and Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamescout

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/gamescout/internal/catalog"
	"github.com/tomtom215/gamescout/internal/validation"
)

// Outcome labels shared by the recommendation and search metrics.
const (
	outcomeOK               = "ok"
	outcomeNotFound         = "not_found"
	outcomeAmbiguous        = "ambiguous"
	outcomeInsufficientData = "insufficient_data"
	outcomeInvalid          = "invalid"
	outcomeError            = "error"
)

// errorMapping is the HTTP rendering of a domain error.
type errorMapping struct {
	status  int
	code    string
	outcome string
}

// classifyError maps catalog, engine and validation errors onto HTTP
// status codes, envelope codes and metric outcomes.
func classifyError(err error) errorMapping {
	var verr *validation.RequestValidationError
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return errorMapping{http.StatusNotFound, ErrCodeNotFound, outcomeNotFound}
	case errors.Is(err, catalog.ErrAmbiguousMatch):
		return errorMapping{http.StatusConflict, ErrCodeAmbiguousMatch, outcomeAmbiguous}
	case errors.Is(err, catalog.ErrInsufficientData):
		return errorMapping{http.StatusUnprocessableEntity, ErrCodeInsufficientData, outcomeInsufficientData}
	case errors.As(err, &verr):
		return errorMapping{http.StatusBadRequest, ErrCodeValidationFailed, outcomeInvalid}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return errorMapping{http.StatusServiceUnavailable, ErrCodeServiceUnavailable, outcomeError}
	default:
		return errorMapping{http.StatusInternalServerError, ErrCodeInternalError, outcomeError}
	}
}

// respondDomainError writes err using classifyError and returns the metric
// outcome. Internal errors are logged and never echoed to the client.
func respondDomainError(rw *ResponseWriter, r *http.Request, err error) string {
	m := classifyError(err)

	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		apiErr := verr.ToAPIError()
		rw.ErrorWithDetails(m.status, apiErr.Code, apiErr.Message, apiErr.Details)
	case m.status >= http.StatusInternalServerError:
		logRequestError(r, err, m.code)
		rw.Error(m.status, m.code, http.StatusText(m.status))
	default:
		rw.Error(m.status, m.code, err.Error())
	}
	return m.outcome
}
