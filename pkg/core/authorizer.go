// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package core

import (
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/adal"
)

// TokenAuthorizer adapts an azcore token credential to the autorest pipeline.
// A token is requested for every prepared request; caching is left to the credential.
type TokenAuthorizer struct {
	credential azcore.TokenCredential
	scopes     []string
}

var _ autorest.Authorizer = &TokenAuthorizer{}

// NewTokenAuthorizer returns an authorizer that requests tokens for scopes from credential.
func NewTokenAuthorizer(credential azcore.TokenCredential, scopes []string) *TokenAuthorizer {
	return &TokenAuthorizer{
		credential: credential,
		scopes:     scopes,
	}
}

// WithAuthorization sets the Authorization header to a bearer token for the configured scopes.
func (a *TokenAuthorizer) WithAuthorization() autorest.PrepareDecorator {
	return func(p autorest.Preparer) autorest.Preparer {
		return autorest.PreparerFunc(func(r *http.Request) (*http.Request, error) {
			r, err := p.Prepare(r)
			if err != nil {
				return r, err
			}
			token, err := a.credential.GetToken(r.Context(), policy.TokenRequestOptions{Scopes: a.scopes})
			if err != nil {
				return r, tokenError{err: err}
			}
			return autorest.Prepare(r, autorest.WithBearerAuthorization(token.Token))
		})
	}
}

// tokenError is a failed token request. It satisfies adal.TokenRefreshError so
// the retry decorator gives up on the first attempt.
type tokenError struct {
	err error
}

var _ adal.TokenRefreshError = tokenError{}

func (e tokenError) Error() string {
	return "failed to acquire token: " + e.err.Error()
}

// Response is always nil: the credential failed before any request was sent.
func (e tokenError) Response() *http.Response {
	return nil
}

func (e tokenError) Cause() error {
	return e.err
}

func (e tokenError) Unwrap() error {
	return e.err
}
