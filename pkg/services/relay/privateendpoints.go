// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package relay

import (
	"context"
	"net/http"

	"github.com/Azure/go-autorest/autorest"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

const privateEndpointConnectionPath = namespacePath + "/privateEndpointConnections/{privateEndpointConnectionName}"

// PrivateEndpointConnectionsClient manages private endpoint connections of a namespace.
type PrivateEndpointConnectionsClient struct {
	Client
}

// PrivateEndpointConnectionsCreateOrUpdateResponse carries the connection on 200, 201 and 202.
type PrivateEndpointConnectionsCreateOrUpdateResponse struct {
	autorest.Response `json:"-"`
	Connection        PrivateEndpointConnection
}

// PrivateEndpointConnectionsDeleteResponse is 200, 202 or 204.
type PrivateEndpointConnectionsDeleteResponse struct {
	autorest.Response
}

func privateEndpointConnectionParameters(subscriptionID, resourceGroupName, namespaceName, connectionName string) map[string]string {
	return with(namespaceParameters(subscriptionID, resourceGroupName, namespaceName), "privateEndpointConnectionName", connectionName)
}

// List gets the available private endpoint connections within a namespace.
func (c PrivateEndpointConnectionsClient) List(subscriptionID, resourceGroupName, namespaceName string) *core.Pager[PrivateEndpointConnectionListResult] {
	return newPager[PrivateEndpointConnectionListResult](c.Client, core.Request{
		Operation:      "relay.PrivateEndpointConnectionsClient.List",
		Method:         http.MethodGet,
		Path:           namespacePath + "/privateEndpointConnections",
		PathParameters: namespaceParameters(subscriptionID, resourceGroupName, namespaceName),
	})
}

// Get gets a description for the specified private endpoint connection.
func (c PrivateEndpointConnectionsClient) Get(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, privateEndpointConnectionName string) (result PrivateEndpointConnection, err error) {
	const operation = "relay.PrivateEndpointConnectionsClient.Get"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName)); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodGet,
		Path:           privateEndpointConnectionPath,
		PathParameters: privateEndpointConnectionParameters(subscriptionID, resourceGroupName, namespaceName, privateEndpointConnectionName),
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// CreateOrUpdate creates or updates a private endpoint connection with a namespace.
func (c PrivateEndpointConnectionsClient) CreateOrUpdate(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, privateEndpointConnectionName string, parameters PrivateEndpointConnection) (result PrivateEndpointConnectionsCreateOrUpdateResponse, err error) {
	const operation = "relay.PrivateEndpointConnectionsClient.CreateOrUpdate"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName)); err != nil {
		return result, err
	}
	result.Response.Response, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodPut,
		Path:           privateEndpointConnectionPath,
		PathParameters: privateEndpointConnectionParameters(subscriptionID, resourceGroupName, namespaceName, privateEndpointConnectionName),
		Body:           parameters,
	}, core.Into(&result.Connection), http.StatusOK, http.StatusCreated, http.StatusAccepted)
	return result, err
}

// Delete deletes an existing private endpoint connection.
func (c PrivateEndpointConnectionsClient) Delete(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, privateEndpointConnectionName string) (result PrivateEndpointConnectionsDeleteResponse, err error) {
	const operation = "relay.PrivateEndpointConnectionsClient.Delete"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName)); err != nil {
		return result, err
	}
	result.Response.Response, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodDelete,
		Path:           privateEndpointConnectionPath,
		PathParameters: privateEndpointConnectionParameters(subscriptionID, resourceGroupName, namespaceName, privateEndpointConnectionName),
	}, nil, http.StatusOK, http.StatusAccepted, http.StatusNoContent)
	return result, err
}

// PrivateLinkResourcesClient reads the private link resources of a namespace.
type PrivateLinkResourcesClient struct {
	Client
}

// Get gets a description for the specified private link resource.
func (c PrivateLinkResourcesClient) Get(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, privateLinkResourceName string) (result PrivateLinkResource, err error) {
	const operation = "relay.PrivateLinkResourcesClient.Get"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName)); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodGet,
		Path:           namespacePath + "/privateLinkResources/{privateLinkResourceName}",
		PathParameters: with(namespaceParameters(subscriptionID, resourceGroupName, namespaceName), "privateLinkResourceName", privateLinkResourceName),
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// List gets the private link resources of a namespace in a single response.
func (c PrivateLinkResourcesClient) List(ctx context.Context, subscriptionID, resourceGroupName, namespaceName string) (result PrivateLinkResourcesListResult, err error) {
	const operation = "relay.PrivateLinkResourcesClient.List"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName)); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodGet,
		Path:           namespacePath + "/privateLinkResources",
		PathParameters: namespaceParameters(subscriptionID, resourceGroupName, namespaceName),
	}, core.Into(&result), http.StatusOK)
	return result, err
}
