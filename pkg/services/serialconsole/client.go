// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.

// Package serialconsole implements clients for the Microsoft.SerialConsole
// resource provider.
package serialconsole

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

const (
	// APIVersion is the version of the Microsoft.SerialConsole API this package targets.
	APIVersion = "2018-05-01"

	// DefaultConsole is the only console service name the provider accepts.
	DefaultConsole = "default"

	consolePath = "/subscriptions/{subscriptionId}/providers/Microsoft.SerialConsole/consoleServices/{default}"
)

// Client is the base client for Microsoft.SerialConsole. It serves the
// subscription level console operations.
type Client struct {
	core.Client
}

// New wraps an existing pipeline.
func New(pipeline core.Client) Client {
	return Client{pipeline}
}

// NewClient builds a pipeline for credential and wraps it.
func NewClient(credential azcore.TokenCredential, opts ...core.Option) (Client, error) {
	pipeline, err := core.New(credential, opts...)
	if err != nil {
		return Client{}, err
	}
	return New(pipeline), nil
}

func (c Client) SerialPorts() SerialPortsClient {
	return SerialPortsClient{c}
}

// ListOperations gets a list of Serial Console API operations.
func (c Client) ListOperations(ctx context.Context) (result SerialConsoleOperations, err error) {
	_, err = c.call(ctx, core.Request{
		Operation: "serialconsole.Client.ListOperations",
		Method:    http.MethodGet,
		Path:      "/providers/Microsoft.SerialConsole/operations",
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// GetConsoleStatus gets whether or not Serial Console is disabled for a
// subscription. An unknown subscription is a 404 whose body decodes into
// GetSerialConsoleSubscriptionNotFound.
func (c Client) GetConsoleStatus(ctx context.Context, subscriptionID, consoleName string) (result SerialConsoleStatus, err error) {
	_, err = c.call(ctx, core.Request{
		Operation:      "serialconsole.Client.GetConsoleStatus",
		Method:         http.MethodGet,
		Path:           consolePath,
		PathParameters: consoleParameters(subscriptionID, consoleName),
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// DisableConsole disables the Serial Console service for all VMs and VM
// scale sets in the subscription.
func (c Client) DisableConsole(ctx context.Context, subscriptionID, consoleName string) (result DisableSerialConsoleResult, err error) {
	_, err = c.call(ctx, core.Request{
		Operation:      "serialconsole.Client.DisableConsole",
		Method:         http.MethodPost,
		Path:           consolePath + "/disableConsole",
		PathParameters: consoleParameters(subscriptionID, consoleName),
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// EnableConsole enables the Serial Console service for all VMs and VM scale
// sets in the subscription.
func (c Client) EnableConsole(ctx context.Context, subscriptionID, consoleName string) (result EnableSerialConsoleResult, err error) {
	_, err = c.call(ctx, core.Request{
		Operation:      "serialconsole.Client.EnableConsole",
		Method:         http.MethodPost,
		Path:           consolePath + "/enableConsole",
		PathParameters: consoleParameters(subscriptionID, consoleName),
	}, core.Into(&result), http.StatusOK)
	return result, err
}

func (c Client) call(ctx context.Context, r core.Request, target core.Target, codes ...int) (*http.Response, error) {
	r.APIVersion = APIVersion
	return c.Client.Call(ctx, r, target, codes...)
}

func consoleParameters(subscriptionID, consoleName string) map[string]string {
	return map[string]string{
		"subscriptionId": subscriptionID,
		"default":        consoleName,
	}
}
