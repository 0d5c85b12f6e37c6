// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package managementgroups

import (
	"github.com/Azure/go-autorest/autorest/date"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

// AzureAsyncOperationResults - The results of an asynchronous operation.
type AzureAsyncOperationResults struct {
	core.ProxyResource
	// Status - The current status of the asynchronous operation performed.
	Status     *string         `json:"status,omitempty"`
	Properties *InfoProperties `json:"properties,omitempty"`
}

// OperationResults - The results of a management group create or update operation.
type OperationResults struct {
	core.ProxyResource
	Properties *InfoProperties `json:"properties,omitempty"`
}

// CheckNameAvailabilityRequest - Management group name availability check parameters.
type CheckNameAvailabilityRequest struct {
	Name *string      `json:"name,omitempty"`
	Type ResourceType `json:"type,omitempty"`
}

// CheckNameAvailabilityResult - Describes the result of the request to check management group name availability.
type CheckNameAvailabilityResult struct {
	NameAvailable *bool                       `json:"nameAvailable,omitempty"`
	Reason        CheckNameAvailabilityReason `json:"reason,omitempty"`
	Message       *string                     `json:"message,omitempty"`
}

// CreateManagementGroupChildInfo - The child information of a management group used during creation.
type CreateManagementGroupChildInfo struct {
	Type        ChildType                        `json:"type,omitempty"`
	ID          *string                          `json:"id,omitempty"`
	Name        *string                          `json:"name,omitempty"`
	DisplayName *string                          `json:"displayName,omitempty"`
	Children    []CreateManagementGroupChildInfo `json:"children,omitempty"`
}

// CreateManagementGroupDetails - The details of a management group used during creation.
type CreateManagementGroupDetails struct {
	// Version - READ-ONLY; The version number of the object.
	Version *float64 `json:"version,omitempty"`
	// UpdatedTime - READ-ONLY
	UpdatedTime *date.Time             `json:"updatedTime,omitempty"`
	UpdatedBy   *string                `json:"updatedBy,omitempty"`
	Parent      *CreateParentGroupInfo `json:"parent,omitempty"`
}

// CreateManagementGroupProperties - The generic properties of a management group used during creation.
type CreateManagementGroupProperties struct {
	// TenantID - READ-ONLY; The AAD Tenant ID associated with the management group.
	TenantID    *string                          `json:"tenantId,omitempty"`
	DisplayName *string                          `json:"displayName,omitempty"`
	Details     *CreateManagementGroupDetails    `json:"details,omitempty"`
	Children    []CreateManagementGroupChildInfo `json:"children,omitempty"`
}

// CreateManagementGroupRequest - Management group creation parameters.
type CreateManagementGroupRequest struct {
	core.ProxyResource
	Properties *CreateManagementGroupProperties `json:"properties,omitempty"`
}

// CreateOrUpdateSettingsProperties - The properties of the request to create or update hierarchy settings.
type CreateOrUpdateSettingsProperties struct {
	// RequireAuthorizationForGroupCreation - Indicates whether RBAC access is required upon group creation under the root management group.
	RequireAuthorizationForGroupCreation *bool `json:"requireAuthorizationForGroupCreation,omitempty"`
	// DefaultManagementGroup - Settings that sets the default management group under which new subscriptions get added in this tenant.
	DefaultManagementGroup *string `json:"defaultManagementGroup,omitempty"`
}

// CreateOrUpdateSettingsRequest - Parameters for creating or updating management group settings.
type CreateOrUpdateSettingsRequest struct {
	Properties *CreateOrUpdateSettingsProperties `json:"properties,omitempty"`
}

// CreateParentGroupInfo - The parent of a management group used during creation.
type CreateParentGroupInfo struct {
	// ID - The fully qualified ID for the parent management group.
	ID *string `json:"id,omitempty"`
	// Name - READ-ONLY
	Name *string `json:"name,omitempty"`
	// DisplayName - READ-ONLY
	DisplayName *string `json:"displayName,omitempty"`
}

// DescendantInfo - The descendant.
type DescendantInfo struct {
	core.ProxyResource
	Properties *DescendantInfoProperties `json:"properties,omitempty"`
}

// DescendantInfoProperties - The generic properties of a descendant.
type DescendantInfoProperties struct {
	DisplayName *string                    `json:"displayName,omitempty"`
	Parent      *DescendantParentGroupInfo `json:"parent,omitempty"`
}

// DescendantListResult - Describes the result of the request to view descendants.
type DescendantListResult struct {
	Value []DescendantInfo `json:"value,omitempty"`
	// NextLink - READ-ONLY; The URL to use for getting the next set of results.
	NextLink *string `json:"nextLink,omitempty"`
}

func (r DescendantListResult) Continuation() string { return continuation(r.NextLink) }

// DescendantParentGroupInfo - The ID of the parent management group.
type DescendantParentGroupInfo struct {
	ID *string `json:"id,omitempty"`
}

// EntityHierarchyItem - The management group details for the hierarchy view.
type EntityHierarchyItem struct {
	core.ProxyResource
	Properties *EntityHierarchyItemProperties `json:"properties,omitempty"`
}

// EntityHierarchyItemProperties - The generic properties of a management group.
type EntityHierarchyItemProperties struct {
	DisplayName *string               `json:"displayName,omitempty"`
	Permissions Permissions           `json:"permissions,omitempty"`
	Children    []EntityHierarchyItem `json:"children,omitempty"`
}

// EntityInfo - The entity.
type EntityInfo struct {
	core.ProxyResource
	Properties *EntityInfoProperties `json:"properties,omitempty"`
}

// EntityInfoProperties - The generic properties of an entity.
type EntityInfoProperties struct {
	TenantID               *string                `json:"tenantId,omitempty"`
	DisplayName            *string                `json:"displayName,omitempty"`
	Parent                 *EntityParentGroupInfo `json:"parent,omitempty"`
	Permissions            Permissions            `json:"permissions,omitempty"`
	InheritedPermissions   Permissions            `json:"inheritedPermissions,omitempty"`
	NumberOfDescendants    *int64                 `json:"numberOfDescendants,omitempty"`
	NumberOfChildren       *int64                 `json:"numberOfChildren,omitempty"`
	NumberOfChildGroups    *int64                 `json:"numberOfChildGroups,omitempty"`
	ParentDisplayNameChain []string               `json:"parentDisplayNameChain,omitempty"`
	ParentNameChain        []string               `json:"parentNameChain,omitempty"`
}

// EntityListResult - Describes the result of the request to view entities.
type EntityListResult struct {
	Value []EntityInfo `json:"value,omitempty"`
	// Count - READ-ONLY; Total count of records that match the filter.
	Count *int64 `json:"count,omitempty"`
	// NextLink - READ-ONLY; The URL to use for getting the next set of results.
	NextLink *string `json:"nextLink,omitempty"`
}

func (r EntityListResult) Continuation() string { return continuation(r.NextLink) }

// EntityParentGroupInfo - (Optional) The ID of the parent management group.
type EntityParentGroupInfo struct {
	ID *string `json:"id,omitempty"`
}

// ErrorDetails - The details of the error.
type ErrorDetails struct {
	Code    *string `json:"code,omitempty"`
	Message *string `json:"message,omitempty"`
	Details *string `json:"details,omitempty"`
}

// ErrorResponse - The error object.
type ErrorResponse struct {
	Error *ErrorDetails `json:"error,omitempty"`
}

// HierarchySettings - Settings defined at the management group scope.
type HierarchySettings struct {
	core.ProxyResource
	Properties *HierarchySettingsProperties `json:"properties,omitempty"`
}

// HierarchySettingsInfo - Hierarchy settings as returned in a list.
type HierarchySettingsInfo struct {
	core.ProxyResource
	Properties *HierarchySettingsProperties `json:"properties,omitempty"`
}

// HierarchySettingsList - Lists all hierarchy settings. The list is returned in one response.
type HierarchySettingsList struct {
	Value []HierarchySettingsInfo `json:"value,omitempty"`
	// NextLink - READ-ONLY
	NextLink *string `json:"nextLink,omitempty"`
}

// HierarchySettingsProperties - The generic properties of hierarchy settings.
type HierarchySettingsProperties struct {
	TenantID                             *string `json:"tenantId,omitempty"`
	RequireAuthorizationForGroupCreation *bool   `json:"requireAuthorizationForGroupCreation,omitempty"`
	DefaultManagementGroup               *string `json:"defaultManagementGroup,omitempty"`
}

// ListSubscriptionUnderManagementGroup - The details of all subscriptions under a management group.
type ListSubscriptionUnderManagementGroup struct {
	Value []SubscriptionUnderManagementGroup `json:"value,omitempty"`
	// NextLink - READ-ONLY; The URL to use for getting the next set of results.
	NextLink *string `json:"nextLink,omitempty"`
}

func (r ListSubscriptionUnderManagementGroup) Continuation() string {
	return continuation(r.NextLink)
}

// ManagementGroup - The management group details.
type ManagementGroup struct {
	core.ProxyResource
	Properties *Properties `json:"properties,omitempty"`
}

// ChildInfo - The child information of a management group.
type ChildInfo struct {
	Type        ChildType   `json:"type,omitempty"`
	ID          *string     `json:"id,omitempty"`
	Name        *string     `json:"name,omitempty"`
	DisplayName *string     `json:"displayName,omitempty"`
	Children    []ChildInfo `json:"children,omitempty"`
}

// Details - The details of a management group.
type Details struct {
	Version     *float64         `json:"version,omitempty"`
	UpdatedTime *date.Time       `json:"updatedTime,omitempty"`
	UpdatedBy   *string          `json:"updatedBy,omitempty"`
	Parent      *ParentGroupInfo `json:"parent,omitempty"`
	// Path - The path from the root to the current group.
	Path []PathElement `json:"path,omitempty"`
}

// Info - The management group resource as returned by List.
type Info struct {
	core.ProxyResource
	Properties *InfoProperties `json:"properties,omitempty"`
}

// InfoProperties - The generic properties of a management group.
type InfoProperties struct {
	TenantID    *string `json:"tenantId,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
}

// ListResult - Describes the result of the request to list management groups.
type ListResult struct {
	Value []Info `json:"value,omitempty"`
	// NextLink - READ-ONLY; The URL to use for getting the next set of results.
	NextLink *string `json:"nextLink,omitempty"`
}

func (r ListResult) Continuation() string { return continuation(r.NextLink) }

// PathElement - A path element of a management group ancestor.
type PathElement struct {
	Name        *string `json:"name,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
}

// Properties - The generic properties of a management group.
type Properties struct {
	TenantID    *string     `json:"tenantId,omitempty"`
	DisplayName *string     `json:"displayName,omitempty"`
	Details     *Details    `json:"details,omitempty"`
	Children    []ChildInfo `json:"children,omitempty"`
}

// Operation - Operation supported by the Microsoft.Management resource provider.
type Operation struct {
	// Name - READ-ONLY; Operation name: {provider}/{resource}/{operation}.
	Name    *string                     `json:"name,omitempty"`
	Display *OperationDisplayProperties `json:"display,omitempty"`
}

// OperationDisplayProperties - The object that represents the operation.
type OperationDisplayProperties struct {
	Provider    *string `json:"provider,omitempty"`
	Resource    *string `json:"resource,omitempty"`
	Operation   *string `json:"operation,omitempty"`
	Description *string `json:"description,omitempty"`
}

// OperationListResult - Describes the result of the request to list Microsoft.Management operations.
type OperationListResult struct {
	Value []Operation `json:"value,omitempty"`
	// NextLink - READ-ONLY; URL to get the next set of operation list results if there are any.
	NextLink *string `json:"nextLink,omitempty"`
}

func (r OperationListResult) Continuation() string { return continuation(r.NextLink) }

// ParentGroupInfo - (Optional) The ID of the parent management group.
type ParentGroupInfo struct {
	ID          *string `json:"id,omitempty"`
	Name        *string `json:"name,omitempty"`
	DisplayName *string `json:"displayName,omitempty"`
}

// PatchManagementGroupRequest - Management group patch parameters.
type PatchManagementGroupRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
	// ParentGroupID - (Optional) The fully qualified ID for the parent management group.
	ParentGroupID *string `json:"parentGroupId,omitempty"`
}

// SubscriptionUnderManagementGroup - The details of a subscription under a management group.
type SubscriptionUnderManagementGroup struct {
	core.ProxyResource
	Properties *SubscriptionUnderManagementGroupProperties `json:"properties,omitempty"`
}

// SubscriptionUnderManagementGroupProperties - The generic properties of a subscription attached to a management group.
type SubscriptionUnderManagementGroupProperties struct {
	Tenant      *string                    `json:"tenant,omitempty"`
	DisplayName *string                    `json:"displayName,omitempty"`
	Parent      *DescendantParentGroupInfo `json:"parent,omitempty"`
	// State - The state of the subscription.
	State *string `json:"state,omitempty"`
}

// TenantBackfillStatusResult - The tenant backfill status.
type TenantBackfillStatusResult struct {
	// TenantID - READ-ONLY; The AAD Tenant ID associated with the management group.
	TenantID *string              `json:"tenantId,omitempty"`
	Status   TenantBackfillStatus `json:"status,omitempty"`
}

func continuation(nextLink *string) string {
	if nextLink == nil {
		return ""
	}
	return *nextLink
}
