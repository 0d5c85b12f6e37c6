// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/Azure/go-autorest/autorest"
	"github.com/pkg/errors"
)

// ErrNoBody is returned by DecodeBody when the failed response carried no body.
var ErrNoBody = errors.New("error response has no body")

func detailed(err error) (autorest.DetailedError, bool) {
	var de autorest.DetailedError
	if stderrors.As(err, &de) {
		return de, true
	}
	var pde *autorest.DetailedError
	if stderrors.As(err, &pde) && pde != nil {
		return *pde, true
	}
	return autorest.DetailedError{}, false
}

// StatusCode returns the HTTP status carried by err, or 0 when err did not come
// from an HTTP response.
func StatusCode(err error) int {
	de, ok := detailed(err)
	if !ok {
		return 0
	}
	if code, ok := de.StatusCode.(int); ok {
		return code
	}
	return 0
}

// IsHTTPError reports whether err is an unexpected status from the service
// rather than a transport, encoding or validation failure.
func IsHTTPError(err error) bool {
	return StatusCode(err) != 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}

// Body returns the raw body of the failed response.
func Body(err error) []byte {
	de, ok := detailed(err)
	if !ok {
		return nil
	}
	return de.ServiceError
}

// DecodeBody decodes the body of a failed response into v, typically one of
// the services' ErrorResponse models.
func DecodeBody(err error, v interface{}) error {
	body := Body(err)
	if len(body) == 0 {
		return ErrNoBody
	}
	return errors.Wrap(json.Unmarshal(body, v), "failed to decode error response")
}
