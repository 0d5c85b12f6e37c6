// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.

// Package managementgroups implements clients for the Microsoft.Management
// resource provider. All operations are tenant level.
package managementgroups

import (
	"context"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/go-autorest/autorest/validation"

	"github.com/Azure/azure-arm-clients-go/pkg/constants"
	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

const (
	// APIVersion is the version of the Microsoft.Management API this package targets.
	APIVersion = "2020-05-01"

	groupPath = "/providers/Microsoft.Management/managementGroups/{groupId}"
)

// Client is the base client for Microsoft.Management. It also serves the
// provider level operations.
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

func (c Client) ManagementGroups() ManagementGroupsClient {
	return ManagementGroupsClient{c}
}

func (c Client) Subscriptions() SubscriptionsClient {
	return SubscriptionsClient{c}
}

func (c Client) HierarchySettings() HierarchySettingsClient {
	return HierarchySettingsClient{c}
}

func (c Client) Entities() EntitiesClient {
	return EntitiesClient{c}
}

func (c Client) Operations() OperationsClient {
	return OperationsClient{c}
}

// CheckNameAvailability checks if the specified management group name is valid and unique.
func (c Client) CheckNameAvailability(ctx context.Context, request CheckNameAvailabilityRequest) (result CheckNameAvailabilityResult, err error) {
	_, err = c.call(ctx, core.Request{
		Operation: "managementgroups.Client.CheckNameAvailability",
		Method:    http.MethodPost,
		Path:      "/providers/Microsoft.Management/checkNameAvailability",
		Body:      request,
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// StartTenantBackfill starts backfilling subscriptions for the tenant.
func (c Client) StartTenantBackfill(ctx context.Context) (result TenantBackfillStatusResult, err error) {
	_, err = c.call(ctx, core.Request{
		Operation: "managementgroups.Client.StartTenantBackfill",
		Method:    http.MethodPost,
		Path:      "/providers/Microsoft.Management/startTenantBackfill",
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// TenantBackfillStatus gets the status of the tenant backfill.
func (c Client) TenantBackfillStatus(ctx context.Context) (result TenantBackfillStatusResult, err error) {
	_, err = c.call(ctx, core.Request{
		Operation: "managementgroups.Client.TenantBackfillStatus",
		Method:    http.MethodPost,
		Path:      "/providers/Microsoft.Management/tenantBackfillStatus",
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// OperationsClient lists the operations of the provider.
type OperationsClient struct {
	Client
}

// List lists all of the available Management REST API operations.
func (c OperationsClient) List() *core.Pager[OperationListResult] {
	return newPager[OperationListResult](c.Client, core.Request{
		Operation: "managementgroups.OperationsClient.List",
		Method:    http.MethodGet,
		Path:      "/providers/Microsoft.Management/operations",
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

// query collects optional query parameters given as key/value pairs. Empty
// strings and nil pointers are left out.
func query(keyValues ...interface{}) map[string]interface{} {
	q := map[string]interface{}{}
	for i := 0; i+1 < len(keyValues); i += 2 {
		key := keyValues[i].(string)
		switch v := keyValues[i+1].(type) {
		case string:
			if v != "" {
				q[key] = v
			}
		case *bool:
			if v != nil {
				q[key] = *v
			}
		case *int32:
			if v != nil {
				q[key] = *v
			}
		}
	}
	return q
}

func cacheControl(value string) map[string]string {
	if value == "" {
		return nil
	}
	return map[string]string{constants.CacheControlHeader: value}
}

func validGroup(groupID string) validation.Validation {
	return validation.Validation{TargetValue: groupID,
		Constraints: []validation.Constraint{{Target: "groupId", Name: validation.MinLength, Rule: 1, Chain: nil}}}
}

func validate(operation string, v ...validation.Validation) error {
	if err := validation.Validate(v); err != nil {
		i := strings.LastIndex(operation, ".")
		return validation.NewError(operation[:i], operation[i+1:], err.Error())
	}
	return nil
}
