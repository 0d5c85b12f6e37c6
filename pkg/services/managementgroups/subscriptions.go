// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package managementgroups

import (
	"context"
	"net/http"

	"github.com/Azure/go-autorest/autorest"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

// SubscriptionsClient moves subscriptions between management groups.
type SubscriptionsClient struct {
	Client
}

// SubscriptionDeleteResponse is 200 when the subscription was detached and
// 204 when it was not under the group.
type SubscriptionDeleteResponse struct {
	autorest.Response
}

const subscriptionPath = groupPath + "/subscriptions/{subscriptionId}"

func subscriptionParameters(groupID, subscriptionID string) map[string]string {
	return map[string]string{"groupId": groupID, "subscriptionId": subscriptionID}
}

// GetSubscription gets the details of a subscription under a management group.
func (c SubscriptionsClient) GetSubscription(ctx context.Context, groupID, subscriptionID, cacheControlValue string) (result SubscriptionUnderManagementGroup, err error) {
	const operation = "managementgroups.SubscriptionsClient.GetSubscription"
	if err = validate(operation, validGroup(groupID)); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodGet,
		Path:           subscriptionPath,
		PathParameters: subscriptionParameters(groupID, subscriptionID),
		Headers:        cacheControl(cacheControlValue),
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// Create associates an existing subscription with a management group.
func (c SubscriptionsClient) Create(ctx context.Context, groupID, subscriptionID, cacheControlValue string) (result SubscriptionUnderManagementGroup, err error) {
	const operation = "managementgroups.SubscriptionsClient.Create"
	if err = validate(operation, validGroup(groupID)); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodPut,
		Path:           subscriptionPath,
		PathParameters: subscriptionParameters(groupID, subscriptionID),
		Headers:        cacheControl(cacheControlValue),
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// Delete de-associates a subscription from a management group.
func (c SubscriptionsClient) Delete(ctx context.Context, groupID, subscriptionID, cacheControlValue string) (result SubscriptionDeleteResponse, err error) {
	const operation = "managementgroups.SubscriptionsClient.Delete"
	if err = validate(operation, validGroup(groupID)); err != nil {
		return result, err
	}
	result.Response.Response, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodDelete,
		Path:           subscriptionPath,
		PathParameters: subscriptionParameters(groupID, subscriptionID),
		Headers:        cacheControl(cacheControlValue),
	}, nil, http.StatusOK, http.StatusNoContent)
	return result, err
}

// GetSubscriptionsUnderManagementGroup lists the subscriptions directly under a management group.
func (c SubscriptionsClient) GetSubscriptionsUnderManagementGroup(groupID, skiptoken string) *core.Pager[ListSubscriptionUnderManagementGroup] {
	return newPager[ListSubscriptionUnderManagementGroup](c.Client, core.Request{
		Operation:      "managementgroups.SubscriptionsClient.GetSubscriptionsUnderManagementGroup",
		Method:         http.MethodGet,
		Path:           groupPath + "/subscriptions",
		PathParameters: groupParameters(groupID),
		Query:          query("$skiptoken", skiptoken),
	})
}
