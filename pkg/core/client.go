// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package core

import (
	"net/url"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/alexeldeib/stringslice"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/Azure/azure-arm-clients-go/pkg/constants"
	"github.com/Azure/azure-arm-clients-go/pkg/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDuration = 5 * time.Second
)

// Client is the pipeline shared by every service client. It is safe for
// concurrent use once constructed; operations never mutate it.
type Client struct {
	autorest.Client

	// Endpoint is the resource manager base URL without a trailing slash.
	Endpoint string
	// Scopes are requested from the credential for every call.
	Scopes []string

	log        logr.Logger
	decorators []autorest.SendDecorator
}

type options struct {
	endpoint      string
	scopes        []string
	retryAttempts int
	retryDuration time.Duration
	sender        autorest.Sender
	authorizer    autorest.Authorizer
	userAgent     string
	log           logr.Logger
	debug         bool
	recorder      *metrics.Recorder
	err           error
}

// Option configures a Client.
type Option func(*options) *options

func defaultOptions() *options {
	return &options{
		endpoint:      strings.TrimSuffix(azure.PublicCloud.ResourceManagerEndpoint, "/"),
		retryAttempts: defaultRetryAttempts,
		retryDuration: defaultRetryDuration,
		log:           logf.Log.WithName("arm"),
	}
}

// WithEndpoint overrides the resource manager endpoint.
func WithEndpoint(endpoint string) Option {
	return func(o *options) *options {
		o.endpoint = strings.TrimSuffix(endpoint, "/")
		return o
	}
}

// WithCloud selects the endpoint of a named go-autorest environment, e.g. AzureUSGovernmentCloud.
func WithCloud(name string) Option {
	return func(o *options) *options {
		env, err := azure.EnvironmentFromName(name)
		if err != nil {
			o.err = errors.Wrapf(err, "unknown cloud %q", name)
			return o
		}
		o.endpoint = strings.TrimSuffix(env.ResourceManagerEndpoint, "/")
		return o
	}
}

// WithScopes replaces the default token scope. Duplicates are dropped.
func WithScopes(scopes ...string) Option {
	return func(o *options) *options {
		o.scopes = nil
		for _, scope := range scopes {
			if scope == "" || stringslice.Has(o.scopes, scope) {
				continue
			}
			o.scopes = append(o.scopes, scope)
		}
		return o
	}
}

// WithRetry sets how many times a retryable status is retried and the delay between attempts.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(o *options) *options {
		o.retryAttempts = attempts
		o.retryDuration = delay
		return o
	}
}

// WithSender replaces the transport.
func WithSender(sender autorest.Sender) Option {
	return func(o *options) *options {
		o.sender = sender
		return o
	}
}

// WithAuthorizer uses a ready-made authorizer instead of the token credential.
func WithAuthorizer(authorizer autorest.Authorizer) Option {
	return func(o *options) *options {
		o.authorizer = authorizer
		return o
	}
}

// WithUserAgent appends to the default user agent.
func WithUserAgent(agent string) Option {
	return func(o *options) *options {
		o.userAgent = agent
		return o
	}
}

// WithLogger sets the logger operations and debug dumps report to.
func WithLogger(log logr.Logger) Option {
	return func(o *options) *options {
		o.log = log
		return o
	}
}

// WithDebug dumps every request and response to the logger.
func WithDebug() Option {
	return func(o *options) *options {
		o.debug = true
		return o
	}
}

// WithMetrics records request counts and latencies on every attempt.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(o *options) *options {
		o.recorder = recorder
		return o
	}
}

// New builds the shared pipeline. Either credential or WithAuthorizer must be supplied.
func New(credential azcore.TokenCredential, opts ...Option) (Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		o = opt(o)
	}
	if o.err != nil {
		return Client{}, o.err
	}

	endpoint, err := url.Parse(o.endpoint)
	if err != nil {
		return Client{}, errors.Wrapf(err, "invalid endpoint %q", o.endpoint)
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		return Client{}, errors.Errorf("endpoint %q must be an absolute URL", o.endpoint)
	}

	if len(o.scopes) == 0 {
		o.scopes = []string{o.endpoint + constants.DefaultScopeSuffix}
	}

	c := Client{
		Client:   autorest.NewClientWithUserAgent(constants.UserAgent),
		Endpoint: o.endpoint,
		Scopes:   o.scopes,
		log:      o.log,
	}
	if o.userAgent != "" {
		if err := c.AddToUserAgent(o.userAgent); err != nil {
			return Client{}, err
		}
	}

	switch {
	case o.authorizer != nil:
		c.Authorizer = o.authorizer
	case credential != nil:
		c.Authorizer = NewTokenAuthorizer(credential, o.scopes)
	default:
		return Client{}, errors.New("a token credential or an authorizer is required")
	}

	c.RetryAttempts = o.retryAttempts
	c.RetryDuration = o.retryDuration
	if o.sender != nil {
		c.Sender = o.sender
	}
	if o.debug {
		c.RequestInspector = logRequest(o.log)
		c.ResponseInspector = logResponse(o.log)
	}
	if o.recorder != nil {
		c.decorators = append(c.decorators, o.recorder.WithMetrics())
	}
	return c, nil
}

// Logger returns the logger operations report to.
func (c Client) Logger() logr.Logger {
	return c.log
}
