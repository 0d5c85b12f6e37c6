// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package managementgroups

import (
	"context"
	"net/http"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

// HierarchySettingsClient manages the settings of a management group hierarchy.
// Settings are only accepted on the root management group.
type HierarchySettingsClient struct {
	Client
}

const settingsPath = groupPath + "/settings/default"

// List gets all the hierarchy settings defined at the management group level.
// The service returns every setting in one response.
func (c HierarchySettingsClient) List(ctx context.Context, groupID string) (result HierarchySettingsList, err error) {
	const operation = "managementgroups.HierarchySettingsClient.List"
	if err = validate(operation, validGroup(groupID)); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodGet,
		Path:           groupPath + "/settings",
		PathParameters: groupParameters(groupID),
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// Get gets the hierarchy settings of a management group.
func (c HierarchySettingsClient) Get(ctx context.Context, groupID string) (result HierarchySettings, err error) {
	return c.send(ctx, "managementgroups.HierarchySettingsClient.Get", http.MethodGet, groupID, nil)
}

// CreateOrUpdate creates or replaces the hierarchy settings.
func (c HierarchySettingsClient) CreateOrUpdate(ctx context.Context, groupID string, request CreateOrUpdateSettingsRequest) (HierarchySettings, error) {
	return c.send(ctx, "managementgroups.HierarchySettingsClient.CreateOrUpdate", http.MethodPut, groupID, request)
}

// Update patches the hierarchy settings.
func (c HierarchySettingsClient) Update(ctx context.Context, groupID string, request CreateOrUpdateSettingsRequest) (HierarchySettings, error) {
	return c.send(ctx, "managementgroups.HierarchySettingsClient.Update", http.MethodPatch, groupID, request)
}

// Delete removes the hierarchy settings.
func (c HierarchySettingsClient) Delete(ctx context.Context, groupID string) error {
	const operation = "managementgroups.HierarchySettingsClient.Delete"
	if err := validate(operation, validGroup(groupID)); err != nil {
		return err
	}
	_, err := c.call(ctx, core.Request{
		Operation:      operation,
		Method:         http.MethodDelete,
		Path:           settingsPath,
		PathParameters: groupParameters(groupID),
	}, nil, http.StatusOK)
	return err
}

func (c HierarchySettingsClient) send(ctx context.Context, operation, method, groupID string, body interface{}) (result HierarchySettings, err error) {
	if err = validate(operation, validGroup(groupID)); err != nil {
		return result, err
	}
	_, err = c.call(ctx, core.Request{
		Operation:      operation,
		Method:         method,
		Path:           settingsPath,
		PathParameters: groupParameters(groupID),
		Body:           body,
	}, core.Into(&result), http.StatusOK)
	return result, err
}
