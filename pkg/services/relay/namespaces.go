// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package relay

import (
	"context"
	"net/http"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/validation"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

// NamespacesClient manages relay namespaces.
type NamespacesClient struct {
	Client
}

// NamespacesCreateOrUpdateResponse carries the namespace for both 200 (updated) and 201 (created).
type NamespacesCreateOrUpdateResponse struct {
	autorest.Response `json:"-"`
	Namespace         RelayNamespace
}

// Created reports whether the namespace did not exist before the call.
func (r NamespacesCreateOrUpdateResponse) Created() bool {
	return r.Response.Response != nil && r.StatusCode == http.StatusCreated
}

// NamespacesUpdateResponse carries the namespace for both 200 and 201.
type NamespacesUpdateResponse struct {
	autorest.Response `json:"-"`
	Namespace         RelayNamespace
}

// NamespacesDeleteResponse is 200, 202 (deletion continues in the background) or 204 (nothing to delete).
type NamespacesDeleteResponse struct {
	autorest.Response
}

// Accepted reports whether the deletion is still in progress.
func (r NamespacesDeleteResponse) Accepted() bool {
	return r.Response.Response != nil && r.StatusCode == http.StatusAccepted
}

func (c NamespacesClient) rules() authorizationRules {
	return authorizationRules{Client: c.Client, operation: "relay.NamespacesClient", path: namespacePath}
}

// ListAuthorizationRules lists the authorization rules of a namespace.
func (c NamespacesClient) ListAuthorizationRules(subscriptionID, resourceGroupName, namespaceName string) *core.Pager[AuthorizationRuleListResult] {
	return c.rules().list(namespaceParameters(subscriptionID, resourceGroupName, namespaceName))
}

// GetAuthorizationRule gets an authorization rule of a namespace by rule name.
func (c NamespacesClient) GetAuthorizationRule(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, authorizationRuleName string) (AuthorizationRule, error) {
	return c.rules().get(ctx, namespaceParameters(subscriptionID, resourceGroupName, namespaceName), authorizationRuleName,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName))
}

// CreateOrUpdateAuthorizationRule creates or updates an authorization rule for a namespace.
func (c NamespacesClient) CreateOrUpdateAuthorizationRule(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, authorizationRuleName string, parameters AuthorizationRule) (AuthorizationRule, error) {
	return c.rules().createOrUpdate(ctx, namespaceParameters(subscriptionID, resourceGroupName, namespaceName), authorizationRuleName, parameters,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName))
}

// DeleteAuthorizationRule deletes a namespace authorization rule.
func (c NamespacesClient) DeleteAuthorizationRule(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, authorizationRuleName string) (AuthorizationRuleDeleteResponse, error) {
	return c.rules().delete(ctx, namespaceParameters(subscriptionID, resourceGroupName, namespaceName), authorizationRuleName,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName))
}

// ListKeys gets the primary and secondary connection strings of a namespace rule.
func (c NamespacesClient) ListKeys(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, authorizationRuleName string) (AccessKeys, error) {
	return c.rules().listKeys(ctx, namespaceParameters(subscriptionID, resourceGroupName, namespaceName), authorizationRuleName,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName))
}

// RegenerateKeys regenerates the primary or secondary connection strings of a namespace rule.
func (c NamespacesClient) RegenerateKeys(ctx context.Context, subscriptionID, resourceGroupName, namespaceName, authorizationRuleName string, parameters RegenerateAccessKeyParameters) (AccessKeys, error) {
	return c.rules().regenerateKeys(ctx, namespaceParameters(subscriptionID, resourceGroupName, namespaceName), authorizationRuleName, parameters,
		validResourceGroup(resourceGroupName), validNamespace(namespaceName))
}

// CheckNameAvailability checks the availability of a namespace name.
func (c NamespacesClient) CheckNameAvailability(ctx context.Context, subscriptionID string, parameters CheckNameAvailability) (result CheckNameAvailabilityResult, err error) {
	const operation = "relay.NamespacesClient.CheckNameAvailability"
	if err = validate(operation, validation.Validation{TargetValue: parameters.Name,
		Constraints: []validation.Constraint{{Target: "parameters.Name", Name: validation.MaxLength, Rule: 50, Chain: nil},
			{Target: "parameters.Name", Name: validation.MinLength, Rule: 6, Chain: nil}}}); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodPost,
		Path:           "/subscriptions/{subscriptionId}/providers/Microsoft.Relay/checkNameAvailability",
		PathParameters: map[string]string{"subscriptionId": subscriptionID},
		Body:           parameters,
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// List lists all the namespaces within the subscription regardless of resource group.
func (c NamespacesClient) List(subscriptionID string) *core.Pager[RelayNamespaceListResult] {
	return newPager[RelayNamespaceListResult](c.Client, core.Request{
		Operation:      "relay.NamespacesClient.List",
		Method:         http.MethodGet,
		Path:           "/subscriptions/{subscriptionId}/providers/Microsoft.Relay/namespaces",
		PathParameters: map[string]string{"subscriptionId": subscriptionID},
	})
}

// ListByResourceGroup lists all the namespaces within a resource group.
func (c NamespacesClient) ListByResourceGroup(subscriptionID, resourceGroupName string) *core.Pager[RelayNamespaceListResult] {
	return newPager[RelayNamespaceListResult](c.Client, core.Request{
		Operation: "relay.NamespacesClient.ListByResourceGroup",
		Method:    http.MethodGet,
		Path:      "/subscriptions/{subscriptionId}/resourceGroups/{resourceGroupName}/providers/Microsoft.Relay/namespaces",
		PathParameters: map[string]string{
			"subscriptionId":    subscriptionID,
			"resourceGroupName": resourceGroupName,
		},
	})
}

// Get returns the description for the specified namespace.
func (c NamespacesClient) Get(ctx context.Context, subscriptionID, resourceGroupName, namespaceName string) (result RelayNamespace, err error) {
	const operation = "relay.NamespacesClient.Get"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName)); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodGet,
		Path:           namespacePath,
		PathParameters: namespaceParameters(subscriptionID, resourceGroupName, namespaceName),
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// CreateOrUpdate creates or updates a namespace. Once created, the namespace's
// resource manifest is immutable.
func (c NamespacesClient) CreateOrUpdate(ctx context.Context, subscriptionID, resourceGroupName, namespaceName string, parameters RelayNamespace) (result NamespacesCreateOrUpdateResponse, err error) {
	const operation = "relay.NamespacesClient.CreateOrUpdate"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName),
		validName("parameters.Location", parameters.Location)); err != nil {
		return result, err
	}
	result.Response.Response, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodPut,
		Path:           namespacePath,
		PathParameters: namespaceParameters(subscriptionID, resourceGroupName, namespaceName),
		Body:           parameters,
	}, core.Into(&result.Namespace), http.StatusOK, http.StatusCreated)
	return result, err
}

// Update updates the properties of a namespace. Tags are replaced, not merged.
func (c NamespacesClient) Update(ctx context.Context, subscriptionID, resourceGroupName, namespaceName string, parameters RelayUpdateParameters) (result NamespacesUpdateResponse, err error) {
	const operation = "relay.NamespacesClient.Update"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName)); err != nil {
		return result, err
	}
	result.Response.Response, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodPatch,
		Path:           namespacePath,
		PathParameters: namespaceParameters(subscriptionID, resourceGroupName, namespaceName),
		Body:           parameters,
	}, core.Into(&result.Namespace), http.StatusOK, http.StatusCreated)
	return result, err
}

// Delete deletes an existing namespace, including all of its resources.
func (c NamespacesClient) Delete(ctx context.Context, subscriptionID, resourceGroupName, namespaceName string) (result NamespacesDeleteResponse, err error) {
	const operation = "relay.NamespacesClient.Delete"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName)); err != nil {
		return result, err
	}
	result.Response.Response, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodDelete,
		Path:           namespacePath,
		PathParameters: namespaceParameters(subscriptionID, resourceGroupName, namespaceName),
	}, nil, http.StatusOK, http.StatusAccepted, http.StatusNoContent)
	return result, err
}

// GetNetworkRuleSet gets the network rule set of a namespace.
func (c NamespacesClient) GetNetworkRuleSet(ctx context.Context, subscriptionID, resourceGroupName, namespaceName string) (result NetworkRuleSet, err error) {
	const operation = "relay.NamespacesClient.GetNetworkRuleSet"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName)); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodGet,
		Path:           namespacePath + "/networkRuleSets/default",
		PathParameters: namespaceParameters(subscriptionID, resourceGroupName, namespaceName),
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// CreateOrUpdateNetworkRuleSet creates or updates the network rule set of a namespace.
func (c NamespacesClient) CreateOrUpdateNetworkRuleSet(ctx context.Context, subscriptionID, resourceGroupName, namespaceName string, parameters NetworkRuleSet) (result NetworkRuleSet, err error) {
	const operation = "relay.NamespacesClient.CreateOrUpdateNetworkRuleSet"
	if err = validate(operation, validResourceGroup(resourceGroupName), validNamespace(namespaceName)); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodPut,
		Path:           namespacePath + "/networkRuleSets/default",
		PathParameters: namespaceParameters(subscriptionID, resourceGroupName, namespaceName),
		Body:           parameters,
	}, core.Into(&result), http.StatusOK)
	return result, err
}
