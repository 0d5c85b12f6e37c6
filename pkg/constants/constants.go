// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package constants

const (
	// UserAgent is appended to the user agent of every client.
	UserAgent = "azure-arm-clients-go"

	// APIVersionParameter is the query parameter carrying the fixed service API version.
	APIVersionParameter = "api-version"

	// ClientRequestIDHeader correlates a request with service-side logs.
	ClientRequestIDHeader = "x-ms-client-request-id"

	// CacheControlHeader is accepted by the management groups read operations.
	CacheControlHeader = "Cache-Control"

	// DefaultScopeSuffix is appended to the endpoint to form the default token scope.
	DefaultScopeSuffix = "/.default"

	// DefaultCloud names the go-autorest environment used when no endpoint is given.
	DefaultCloud = "AzurePublicCloud"
)
