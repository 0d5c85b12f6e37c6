// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package core

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Azure/go-autorest/autorest"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Azure/azure-arm-clients-go/pkg/constants"
)

// Request describes one REST operation before it is bound to an endpoint.
type Request struct {
	// Operation names the call in spans and errors, e.g. relay.NamespacesClient.Get.
	Operation  string
	Method     string
	APIVersion string
	// Path is a template such as /subscriptions/{subscriptionId}; placeholders
	// are replaced by the escaped PathParameters.
	Path           string
	PathParameters map[string]string
	// RawPathParameters are substituted verbatim, for segments that may
	// themselves contain slashes.
	RawPathParameters map[string]string
	// Query holds optional parameters; api-version is always added.
	Query   map[string]interface{}
	Headers map[string]string
	// Body is encoded as JSON when non-nil.
	Body interface{}
}

// Prepare binds r to the client endpoint.
func (c Client) Prepare(ctx context.Context, r Request) (*http.Request, error) {
	pathParameters := make(map[string]interface{}, len(r.PathParameters)+len(r.RawPathParameters))
	for k, v := range r.PathParameters {
		pathParameters[k] = autorest.Encode("path", v)
	}
	for k, v := range r.RawPathParameters {
		pathParameters[k] = v
	}

	queryParameters := map[string]interface{}{
		constants.APIVersionParameter: r.APIVersion,
	}
	for k, v := range r.Query {
		queryParameters[k] = autorest.Encode("query", v)
	}

	decorators := []autorest.PrepareDecorator{
		autorest.WithMethod(r.Method),
		autorest.WithBaseURL(c.Endpoint),
		autorest.WithPathParameters(r.Path, pathParameters),
		autorest.WithQueryParameters(queryParameters),
		autorest.WithHeader(constants.ClientRequestIDHeader, uuid.New().String()),
	}
	for k, v := range r.Headers {
		decorators = append(decorators, autorest.WithHeader(k, v))
	}
	if r.Body != nil {
		decorators = append(decorators,
			autorest.AsContentType("application/json; charset=utf-8"),
			autorest.WithJSON(r.Body))
	}

	return autorest.CreatePreparer(decorators...).Prepare((&http.Request{}).WithContext(ctx))
}

// PrepareNext builds the follow-up request for a continuation link. The link
// is resolved against the endpoint with its path cleared, so both absolute and
// host-relative links work. The api-version is added only when the link lacks it.
func (c Client) PrepareNext(ctx context.Context, method, nextLink, apiVersion string) (*http.Request, error) {
	next, err := ResolveNextLink(c.Endpoint, nextLink)
	if err != nil {
		return nil, err
	}

	decorators := []autorest.PrepareDecorator{
		autorest.WithMethod(method),
		autorest.WithBaseURL(next.String()),
		autorest.WithHeader(constants.ClientRequestIDHeader, uuid.New().String()),
	}
	if !next.Query().Has(constants.APIVersionParameter) {
		decorators = append(decorators, autorest.WithQueryParameters(map[string]interface{}{
			constants.APIVersionParameter: apiVersion,
		}))
	}

	return autorest.CreatePreparer(decorators...).Prepare((&http.Request{}).WithContext(ctx))
}

// ResolveNextLink joins a continuation link onto the endpoint with the path cleared.
func ResolveNextLink(endpoint, nextLink string) (*url.URL, error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid endpoint %q", endpoint)
	}
	base.Path = ""
	base.RawPath = ""
	base.RawQuery = ""

	next, err := base.Parse(nextLink)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid next link %q", nextLink)
	}
	return next, nil
}
