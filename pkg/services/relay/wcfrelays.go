// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package relay

import (
	"context"
	"net/http"

	"github.com/Azure/go-autorest/autorest"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

const wcfRelayPath = namespacePath + "/wcfRelays/{relayName}"

// WCFRelaysClient manages WCF relays within a namespace.
type WCFRelaysClient struct {
	Client
}

// WCFRelaysGetResponse holds the relay on 200. On 204 the relay does not exist and Relay is nil.
type WCFRelaysGetResponse struct {
	autorest.Response
	Relay *WcfRelay
}

// WCFRelaysDeleteResponse is 200 when the relay was removed and 204 when it did not exist.
type WCFRelaysDeleteResponse struct {
	autorest.Response
}

func wcfRelayParameters(subscriptionID, resourceGroupName, namespaceName, relayName string) map[string]string {
	return with(namespaceParameters(subscriptionID, resourceGroupName, namespaceName), "relayName", relayName)
}

func (c WCFRelaysClient) rules() authorizationRules {
	return authorizationRules{Client: c.Client, operation: "relay.WCFRelaysClient", path: wcfRelayPath}
}

// ListAuthorizationRules lists the authorization rules of a WCF relay.
func (c WCFRelaysClient) ListAuthorizationRules(subscriptionID, resourceGroupName, namespaceName, relayName string) *core.Pager[AuthorizationRuleListResult] {
	return c.rules().list(wcfRelayParameters(subscriptionID, resourceGroupName, namespaceName, relayName))
}

// GetAuthorizationRule gets a WCF relay authorization rule.
func (c WCFRelaysClient) GetAuthorizationRule(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, relayName, authorizationRuleName string) (AuthorizationRule, error) {
	return c.rules().get(ctx, wcfRelayParameters(subscriptionID, resourceGroupName, namespaceName, relayName), authorizationRuleName,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("relayName", relayName))
}

// CreateOrUpdateAuthorizationRule creates or updates an authorization rule for a WCF relay.
func (c WCFRelaysClient) CreateOrUpdateAuthorizationRule(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, relayName, authorizationRuleName string, parameters AuthorizationRule) (AuthorizationRule, error) {
	return c.rules().createOrUpdate(ctx, wcfRelayParameters(subscriptionID, resourceGroupName, namespaceName, relayName), authorizationRuleName, parameters,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("relayName", relayName))
}

// DeleteAuthorizationRule deletes a WCF relay authorization rule.
func (c WCFRelaysClient) DeleteAuthorizationRule(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, relayName, authorizationRuleName string) (AuthorizationRuleDeleteResponse, error) {
	return c.rules().delete(ctx, wcfRelayParameters(subscriptionID, resourceGroupName, namespaceName, relayName), authorizationRuleName,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("relayName", relayName))
}

// ListKeys gets the connection strings of a WCF relay rule.
func (c WCFRelaysClient) ListKeys(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, relayName, authorizationRuleName string) (AccessKeys, error) {
	return c.rules().listKeys(ctx, wcfRelayParameters(subscriptionID, resourceGroupName, namespaceName, relayName), authorizationRuleName,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("relayName", relayName))
}

// RegenerateKeys regenerates the primary or secondary connection strings of a WCF relay rule.
func (c WCFRelaysClient) RegenerateKeys(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, relayName, authorizationRuleName string, parameters RegenerateAccessKeyParameters) (AccessKeys, error) {
	return c.rules().regenerateKeys(ctx, wcfRelayParameters(subscriptionID, resourceGroupName, namespaceName, relayName), authorizationRuleName, parameters,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("relayName", relayName))
}

// ListByNamespace lists the WCF relays within a namespace.
func (c WCFRelaysClient) ListByNamespace(subscriptionID, resourceGroupName, namespaceName string) *core.Pager[WcfRelaysListResult] {
	return newPager[WcfRelaysListResult](c.Client, core.Request{
		Operation:      "relay.WCFRelaysClient.ListByNamespace",
		Method:         http.MethodGet,
		Path:           namespacePath + "/wcfRelays",
		PathParameters: namespaceParameters(subscriptionID, resourceGroupName, namespaceName),
	})
}

// Get returns the description for the specified WCF relay.
func (c WCFRelaysClient) Get(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, relayName string) (result WCFRelaysGetResponse, err error) {
	const operation = "relay.WCFRelaysClient.Get"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("relayName", relayName)); err != nil {
		return result, err
	}
	var relay WcfRelay
	result.Response.Response, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodGet,
		Path:           wcfRelayPath,
		PathParameters: wcfRelayParameters(subscriptionID, resourceGroupName, namespaceName, relayName),
	}, core.ByStatus(map[int]interface{}{http.StatusOK: &relay}), http.StatusOK, http.StatusNoContent)
	if err == nil && result.StatusCode == http.StatusOK {
		result.Relay = &relay
	}
	return result, err
}

// CreateOrUpdate creates or updates a WCF relay. This operation is idempotent.
func (c WCFRelaysClient) CreateOrUpdate(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, relayName string, parameters WcfRelay) (result WcfRelay, err error) {
	const operation = "relay.WCFRelaysClient.CreateOrUpdate"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("relayName", relayName)); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodPut,
		Path:           wcfRelayPath,
		PathParameters: wcfRelayParameters(subscriptionID, resourceGroupName, namespaceName, relayName),
		Body:           parameters,
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// Delete deletes a WCF relay.
func (c WCFRelaysClient) Delete(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, relayName string) (result WCFRelaysDeleteResponse, err error) {
	const operation = "relay.WCFRelaysClient.Delete"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName), validName("relayName", relayName)); err != nil {
		return result, err
	}
	result.Response.Response, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodDelete,
		Path:           wcfRelayPath,
		PathParameters: wcfRelayParameters(subscriptionID, resourceGroupName, namespaceName, relayName),
	}, nil, http.StatusOK, http.StatusNoContent)
	return result, err
}
