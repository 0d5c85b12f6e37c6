// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.

// Package relay implements clients for the Microsoft.Relay resource provider.
package relay

import (
	"context"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/go-autorest/autorest/validation"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

const (
	// APIVersion is the version of the Microsoft.Relay API this package targets.
	APIVersion = "2021-11-01"

	namespacePath = "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Relay/namespaces/{namespaceName}"
)

// Client is the base client for Microsoft.Relay. Sub-clients share its pipeline.
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

func (c Client) Namespaces() NamespacesClient {
	return NamespacesClient{c}
}

func (c Client) HybridConnections() HybridConnectionsClient {
	return HybridConnectionsClient{c}
}

func (c Client) WCFRelays() WCFRelaysClient {
	return WCFRelaysClient{c}
}

func (c Client) PrivateEndpointConnections() PrivateEndpointConnectionsClient {
	return PrivateEndpointConnectionsClient{c}
}

func (c Client) PrivateLinkResources() PrivateLinkResourcesClient {
	return PrivateLinkResourcesClient{c}
}

func (c Client) Operations() OperationsClient {
	return OperationsClient{c}
}

// OperationsClient lists the operations of the provider.
type OperationsClient struct {
	Client
}

// List lists all available Relay REST API operations.
func (c OperationsClient) List() *core.Pager[OperationListResult] {
	return newPager[OperationListResult](c.Client, core.Request{
		Operation: "relay.OperationsClient.List",
		Method:    http.MethodGet,
		Path:      "/providers/Microsoft.Relay/operations",
	})
}

func (c Client) call(ctx context.Context, r core.Request, target core.Target, codes ...int) (*http.Response, error) {
	r.APIVersion = APIVersion
	return c.Client.Call(ctx, r, target, codes...)
}

func newPager[T core.Continuable](c Client, r core.Request) *core.Pager[T] {
	r.APIVersion = APIVersion
	return core.NewPager[T](c.Client, r)
}

func namespaceParameters(subscriptionID, resourceGroupName, namespaceName string) map[string]string {
	return map[string]string{
		"subscriptionId":    subscriptionID,
		"resourceGroupName": resourceGroupName,
		"namespaceName":     namespaceName,
	}
}

func with(parameters map[string]string, keyValues ...string) map[string]string {
	for i := 0; i+1 < len(keyValues); i += 2 {
		parameters[keyValues[i]] = keyValues[i+1]
	}
	return parameters
}

func validResourceGroup(name string) validation.Validation {
	return validation.Validation{TargetValue: name,
		Constraints: []validation.Constraint{{Target: "resourceGroupName", Name: validation.MaxLength, Rule: 90, Chain: nil},
			{Target: "resourceGroupName", Name: validation.MinLength, Rule: 1, Chain: nil}}}
}

func validNamespace(name string) validation.Validation {
	return validation.Validation{TargetValue: name,
		Constraints: []validation.Constraint{{Target: "namespaceName", Name: validation.MaxLength, Rule: 50, Chain: nil},
			{Target: "namespaceName", Name: validation.MinLength, Rule: 6, Chain: nil}}}
}

func validName(target, name string) validation.Validation {
	return validation.Validation{TargetValue: name,
		Constraints: []validation.Constraint{{Target: target, Name: validation.MinLength, Rule: 1, Chain: nil}}}
}

func validate(operation string, v ...validation.Validation) error {
	if err := validation.Validate(v); err != nil {
		i := strings.LastIndex(operation, ".")
		return validation.NewError(operation[:i], operation[i+1:], err.Error())
	}
	return nil
}
