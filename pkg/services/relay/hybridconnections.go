// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package relay

import (
	"context"
	"net/http"

	"github.com/Azure/go-autorest/autorest"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

const hybridConnectionPath = namespacePath + "/hybridConnections/{hybridConnectionName}"

// HybridConnectionsClient manages hybrid connections within a namespace.
type HybridConnectionsClient struct {
	Client
}

// HybridConnectionsDeleteResponse is 200 when the connection was removed and 204 when it did not exist.
type HybridConnectionsDeleteResponse struct {
	autorest.Response
}

func hybridConnectionParameters(subscriptionID, resourceGroupName, namespaceName, hybridConnectionName string) map[string]string {
	return with(namespaceParameters(subscriptionID, resourceGroupName, namespaceName), "hybridConnectionName", hybridConnectionName)
}

func (c HybridConnectionsClient) rules() authorizationRules {
	return authorizationRules{Client: c.Client, operation: "relay.HybridConnectionsClient", path: hybridConnectionPath}
}

// ListAuthorizationRules lists the authorization rules of a hybrid connection.
func (c HybridConnectionsClient) ListAuthorizationRules(subscriptionID, resourceGroupName, namespaceName, hybridConnectionName string) *core.Pager[AuthorizationRuleListResult] {
	return c.rules().list(hybridConnectionParameters(subscriptionID, resourceGroupName, namespaceName, hybridConnectionName))
}

// GetAuthorizationRule gets a hybrid connection authorization rule.
func (c HybridConnectionsClient) GetAuthorizationRule(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, hybridConnectionName, authorizationRuleName string) (AuthorizationRule, error) {
	return c.rules().get(ctx, hybridConnectionParameters(subscriptionID, resourceGroupName, namespaceName, hybridConnectionName), authorizationRuleName,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("hybridConnectionName", hybridConnectionName))
}

// CreateOrUpdateAuthorizationRule creates or updates an authorization rule for a hybrid connection.
func (c HybridConnectionsClient) CreateOrUpdateAuthorizationRule(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, hybridConnectionName, authorizationRuleName string, parameters AuthorizationRule) (AuthorizationRule, error) {
	return c.rules().createOrUpdate(ctx, hybridConnectionParameters(subscriptionID, resourceGroupName, namespaceName, hybridConnectionName), authorizationRuleName, parameters,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("hybridConnectionName", hybridConnectionName))
}

// DeleteAuthorizationRule deletes a hybrid connection authorization rule.
func (c HybridConnectionsClient) DeleteAuthorizationRule(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, hybridConnectionName, authorizationRuleName string) (AuthorizationRuleDeleteResponse, error) {
	return c.rules().delete(ctx, hybridConnectionParameters(subscriptionID, resourceGroupName, namespaceName, hybridConnectionName), authorizationRuleName,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("hybridConnectionName", hybridConnectionName))
}

// ListKeys gets the connection strings of a hybrid connection rule.
func (c HybridConnectionsClient) ListKeys(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, hybridConnectionName, authorizationRuleName string) (AccessKeys, error) {
	return c.rules().listKeys(ctx, hybridConnectionParameters(subscriptionID, resourceGroupName, namespaceName, hybridConnectionName), authorizationRuleName,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("hybridConnectionName", hybridConnectionName))
}

// RegenerateKeys regenerates the primary or secondary connection strings of a hybrid connection rule.
func (c HybridConnectionsClient) RegenerateKeys(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, hybridConnectionName, authorizationRuleName string, parameters RegenerateAccessKeyParameters) (AccessKeys, error) {
	return c.rules().regenerateKeys(ctx, hybridConnectionParameters(subscriptionID, resourceGroupName, namespaceName, hybridConnectionName), authorizationRuleName, parameters,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("hybridConnectionName", hybridConnectionName))
}

// ListByNamespace lists the hybrid connections within a namespace.
func (c HybridConnectionsClient) ListByNamespace(subscriptionID, resourceGroupName, namespaceName string) *core.Pager[HybridConnectionListResult] {
	return newPager[HybridConnectionListResult](c.Client, core.Request{
		Operation:      "relay.HybridConnectionsClient.ListByNamespace",
		Method:         http.MethodGet,
		Path:           namespacePath + "/hybridConnections",
		PathParameters: namespaceParameters(subscriptionID, resourceGroupName, namespaceName),
	})
}

// Get returns the description for the specified hybrid connection.
func (c HybridConnectionsClient) Get(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, hybridConnectionName string) (result HybridConnection, err error) {
	const operation = "relay.HybridConnectionsClient.Get"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("hybridConnectionName", hybridConnectionName)); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodGet,
		Path:           hybridConnectionPath,
		PathParameters: hybridConnectionParameters(subscriptionID, resourceGroupName, namespaceName, hybridConnectionName),
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// CreateOrUpdate creates or updates a service hybrid connection. This operation is idempotent.
func (c HybridConnectionsClient) CreateOrUpdate(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, hybridConnectionName string, parameters HybridConnection) (result HybridConnection, err error) {
	const operation = "relay.HybridConnectionsClient.CreateOrUpdate"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("hybridConnectionName", hybridConnectionName)); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodPut,
		Path:           hybridConnectionPath,
		PathParameters: hybridConnectionParameters(subscriptionID, resourceGroupName, namespaceName, hybridConnectionName),
		Body:           parameters,
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// Delete deletes a hybrid connection.
func (c HybridConnectionsClient) Delete(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, hybridConnectionName string) (result HybridConnectionsDeleteResponse, err error) {
	const operation = "relay.HybridConnectionsClient.Delete"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("hybridConnectionName", hybridConnectionName)); err != nil {
		return result, err
	}
	result.Response.Response, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodDelete,
		Path:           hybridConnectionPath,
		PathParameters: hybridConnectionParameters(subscriptionID, resourceGroupName, namespaceName, hybridConnectionName),
	}, nil, http.StatusOK, http.StatusNoContent)
	return result, err
}
