// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package core

import (
	"context"
	"net/http"
	"strings"

	"github.com/Azure/go-autorest/autorest"
)

// Target picks where an accepted response body is decoded. A nil result means
// the body is discarded.
type Target func(statusCode int) interface{}

// Into decodes every accepted response into v.
func Into(v interface{}) Target {
	return func(int) interface{} {
		return v
	}
}

// ByStatus decodes a response into the value registered for its status code.
func ByStatus(targets map[int]interface{}) Target {
	return func(statusCode int) interface{} {
		return targets[statusCode]
	}
}

// Respond accepts only the listed status codes and decodes the body through
// target. Any other status yields an autorest.DetailedError carrying the status
// and the raw body. The body is always closed.
func Respond(resp *http.Response, target Target, codes ...int) error {
	decorators := []autorest.RespondDecorator{
		autorest.WithErrorUnlessStatusCode(codes...),
	}
	if target != nil && resp != nil {
		if v := target(resp.StatusCode); v != nil {
			decorators = append(decorators, autorest.ByUnmarshallingJSON(v))
		}
	}
	decorators = append(decorators, autorest.ByClosing())
	return autorest.Respond(resp, decorators...)
}

// Send dispatches through the pipeline. Retries on retryable status codes
// happen here and nowhere else.
func (c Client) Send(req *http.Request) (*http.Response, error) {
	decorators := make([]autorest.SendDecorator, 0, len(c.decorators)+1)
	decorators = append(decorators, c.decorators...)
	decorators = append(decorators, autorest.DoRetryForStatusCodes(c.RetryAttempts, c.RetryDuration, autorest.StatusCodesForRetry...))
	return autorest.SendWithSender(c.Client, req, decorators...)
}

// Call runs one operation: one request, one response, mapped by status code.
func (c Client) Call(ctx context.Context, r Request, target Target, codes ...int) (*http.Response, error) {
	return c.do(ctx, r.Operation, func(ctx context.Context) (*http.Request, error) {
		return c.Prepare(ctx, r)
	}, target, codes...)
}

func (c Client) do(ctx context.Context, operation string, prepare func(context.Context) (*http.Request, error), target Target, codes ...int) (resp *http.Response, err error) {
	ctx, end := startSpan(ctx, operation)
	defer func() { end(resp, err) }()

	packageType, method := splitOperation(operation)

	req, err := prepare(ctx)
	if err != nil {
		return nil, autorest.NewErrorWithError(err, packageType, method, nil, "Failure preparing request")
	}

	resp, err = c.Send(req)
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = autorest.Respond(resp, autorest.ByDiscardingBody(), autorest.ByClosing())
		}
		return resp, autorest.NewErrorWithError(err, packageType, method, nil, "Failure sending request")
	}

	if err = Respond(resp, target, codes...); err != nil {
		if de, ok := err.(autorest.DetailedError); ok {
			c.log.V(1).Info("unexpected status", "operation", operation, "status", resp.StatusCode)
			de.PackageType = packageType
			de.Method = method
			return resp, de
		}
		// decoding failures carry no status
		return resp, autorest.NewErrorWithError(err, packageType, method, nil, "Failure responding to request")
	}
	return resp, nil
}

func splitOperation(operation string) (string, string) {
	i := strings.LastIndex(operation, ".")
	if i < 0 {
		return operation, ""
	}
	return operation[:i], operation[i+1:]
}
