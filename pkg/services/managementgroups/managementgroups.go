// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package managementgroups

import (
	"context"
	"net/http"

	"github.com/Azure/go-autorest/autorest"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

// ManagementGroupsClient manages management groups.
type ManagementGroupsClient struct {
	Client
}

// ListOptions are the optional parameters of ManagementGroupsClient.List.
type ListOptions struct {
	// CacheControl set to "no-cache" bypasses existing caches.
	CacheControl string
	// Skiptoken continues a previous listing from the given entity.
	Skiptoken string
}

// GetOptions are the optional parameters of ManagementGroupsClient.Get.
type GetOptions struct {
	// Expand includes the children, path or ancestors of the group.
	Expand Expand
	// Recurse requests the whole hierarchy when Expand is children.
	Recurse *bool
	// Filter restricts the children, e.g. "children.childType ne Subscription".
	Filter       string
	CacheControl string
}

// DescendantsOptions are the optional parameters of ManagementGroupsClient.GetDescendants.
type DescendantsOptions struct {
	Skiptoken string
	// Top is the number of descendants per page.
	Top *int32
}

// CreateOrUpdateResponse is 200 with the management group or 202 with the
// status of the asynchronous creation. Exactly one of Group and Operation is set.
type CreateOrUpdateResponse struct {
	autorest.Response
	Group     *ManagementGroup
	Operation *AzureAsyncOperationResults
}

// Accepted reports whether the change continues in the background.
func (r CreateOrUpdateResponse) Accepted() bool {
	return r.Response.Response != nil && r.StatusCode == http.StatusAccepted
}

// DeleteResponse is 202 with the status of the asynchronous deletion, or 204
// when there was nothing to delete.
type DeleteResponse struct {
	autorest.Response
	Operation *AzureAsyncOperationResults
}

// Accepted reports whether the deletion continues in the background.
func (r DeleteResponse) Accepted() bool {
	return r.Response.Response != nil && r.StatusCode == http.StatusAccepted
}

func groupParameters(groupID string) map[string]string {
	return map[string]string{"groupId": groupID}
}

// List lists the management groups the caller can see.
func (c ManagementGroupsClient) List(opts *ListOptions) *core.Pager[ListResult] {
	if opts == nil {
		opts = &ListOptions{}
	}
	return newPager[ListResult](c.Client, core.Request{
		Operation: "managementgroups.ManagementGroupsClient.List",
		Method:    http.MethodGet,
		Path:      "/providers/Microsoft.Management/managementGroups",
		Query:     query("$skiptoken", opts.Skiptoken),
		Headers:   cacheControl(opts.CacheControl),
	})
}

// Get gets the details of a management group.
func (c ManagementGroupsClient) Get(ctx context.Context, groupID string, opts *GetOptions) (result ManagementGroup, err error) {
	const operation = "managementgroups.ManagementGroupsClient.Get"
	if err = validate(operation, validGroup(groupID)); err != nil {
		return result, err
	}
	if opts == nil {
		opts = &GetOptions{}
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodGet,
		Path:           groupPath,
		PathParameters: groupParameters(groupID),
		Query:          query("$expand", string(opts.Expand), "$recurse", opts.Recurse, "$filter", opts.Filter),
		Headers:        cacheControl(opts.CacheControl),
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// CreateOrUpdate creates or updates a management group. A new group may be
// created asynchronously, in which case the service answers 202.
func (c ManagementGroupsClient) CreateOrUpdate(ctx context.Context, groupID string, request CreateManagementGroupRequest, cacheControlValue string) (result CreateOrUpdateResponse, err error) {
	const operation = "managementgroups.ManagementGroupsClient.CreateOrUpdate"
	if err = validate(operation, validGroup(groupID)); err != nil {
		return result, err
	}
	var (
		group ManagementGroup
		async AzureAsyncOperationResults
	)
	result.Response.Response, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodPut,
		Path:           groupPath,
		PathParameters: groupParameters(groupID),
		Headers:        cacheControl(cacheControlValue),
		Body:           request,
	}, core.ByStatus(map[int]interface{}{
		http.StatusOK:       &group,
		http.StatusAccepted: &async,
	}), http.StatusOK, http.StatusAccepted)
	if err != nil {
		return result, err
	}
	switch result.StatusCode {
	case http.StatusOK:
		result.Group = &group
	case http.StatusAccepted:
		result.Operation = &async
	}
	return result, nil
}

// Update patches the display name or parent of a management group.
func (c ManagementGroupsClient) Update(ctx context.Context, groupID string, request PatchManagementGroupRequest, cacheControlValue string) (result ManagementGroup, err error) {
	const operation = "managementgroups.ManagementGroupsClient.Update"
	if err = validate(operation, validGroup(groupID)); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodPatch,
		Path:           groupPath,
		PathParameters: groupParameters(groupID),
		Headers:        cacheControl(cacheControlValue),
		Body:           request,
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// Delete deletes a management group. The group must have no children.
func (c ManagementGroupsClient) Delete(ctx context.Context, groupID string, cacheControlValue string) (result DeleteResponse, err error) {
	const operation = "managementgroups.ManagementGroupsClient.Delete"
	if err = validate(operation, validGroup(groupID)); err != nil {
		return result, err
	}
	var async AzureAsyncOperationResults
	result.Response.Response, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodDelete,
		Path:           groupPath,
		PathParameters: groupParameters(groupID),
		Headers:        cacheControl(cacheControlValue),
	}, core.ByStatus(map[int]interface{}{http.StatusAccepted: &async}), http.StatusAccepted, http.StatusNoContent)
	if err == nil && result.StatusCode == http.StatusAccepted {
		result.Operation = &async
	}
	return result, err
}

// GetDescendants lists all entities that descend from a management group.
func (c ManagementGroupsClient) GetDescendants(groupID string, opts *DescendantsOptions) *core.Pager[DescendantListResult] {
	if opts == nil {
		opts = &DescendantsOptions{}
	}
	return newPager[DescendantListResult](c.Client, core.Request{
		Operation:      "managementgroups.ManagementGroupsClient.GetDescendants",
		Method:         http.MethodGet,
		Path:           groupPath + "/descendants",
		PathParameters: groupParameters(groupID),
		Query:          query("$skiptoken", opts.Skiptoken, "$top", opts.Top),
	})
}
