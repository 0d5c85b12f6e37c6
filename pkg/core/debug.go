// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package core

import (
	"net/http"
	"net/http/httputil"

	"github.com/Azure/go-autorest/autorest"
	"github.com/go-logr/logr"
)

const redacted = "REDACTED"

// logRequest logs full autorest requests with the bearer token removed.
func logRequest(log logr.Logger) autorest.PrepareDecorator {
	return func(p autorest.Preparer) autorest.Preparer {
		return autorest.PreparerFunc(func(r *http.Request) (*http.Request, error) {
			r, err := p.Prepare(r)
			if err != nil {
				log.Error(err, "failed to prepare request")
				return r, err
			}
			token := r.Header.Get("Authorization")
			if token != "" {
				r.Header.Set("Authorization", redacted)
			}
			dump, _ := httputil.DumpRequestOut(r, true)
			if token != "" {
				r.Header.Set("Authorization", token)
			}
			log.Info("request", "dump", string(dump))
			return r, err
		})
	}
}

// logResponse logs full autorest responses.
func logResponse(log logr.Logger) autorest.RespondDecorator {
	return func(p autorest.Responder) autorest.Responder {
		return autorest.ResponderFunc(func(r *http.Response) error {
			err := p.Respond(r)
			if err != nil {
				log.Error(err, "failed to inspect response")
			}
			dump, _ := httputil.DumpResponse(r, true)
			log.Info("response", "dump", string(dump))
			return err
		})
	}
}
