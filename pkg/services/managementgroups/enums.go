// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package managementgroups

import (
	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

// CheckNameAvailabilityReason enumerates why a name is unavailable.
type CheckNameAvailabilityReason string

const (
	AlreadyExists CheckNameAvailabilityReason = "AlreadyExists"
	Invalid       CheckNameAvailabilityReason = "Invalid"
)

// PossibleCheckNameAvailabilityReasonValues returns an array of possible values for the CheckNameAvailabilityReason const type.
func PossibleCheckNameAvailabilityReasonValues() []CheckNameAvailabilityReason {
	return []CheckNameAvailabilityReason{AlreadyExists, Invalid}
}

func (v CheckNameAvailabilityReason) IsKnown() bool {
	return core.IsKnown(v, PossibleCheckNameAvailabilityReasonValues())
}

// ResourceType is the fully qualified resource type checked for name availability.
type ResourceType string

const (
	ResourceTypeManagementGroups ResourceType = "Microsoft.Management/managementGroups"
)

func PossibleResourceTypeValues() []ResourceType {
	return []ResourceType{ResourceTypeManagementGroups}
}

func (v ResourceType) IsKnown() bool { return core.IsKnown(v, PossibleResourceTypeValues()) }

// ChildType is the type of a child in the hierarchy.
type ChildType string

const (
	ChildTypeManagementGroup ChildType = "Microsoft.Management/managementGroups"
	ChildTypeSubscription    ChildType = "/subscriptions"
)

func PossibleChildTypeValues() []ChildType {
	return []ChildType{ChildTypeManagementGroup, ChildTypeSubscription}
}

func (v ChildType) IsKnown() bool { return core.IsKnown(v, PossibleChildTypeValues()) }

// Permissions enumerates the caller's permissions on an entity.
type Permissions string

const (
	Delete   Permissions = "delete"
	Edit     Permissions = "edit"
	Noaccess Permissions = "noaccess"
	View     Permissions = "view"
)

// PossiblePermissionsValues returns an array of possible values for the Permissions const type.
func PossiblePermissionsValues() []Permissions {
	return []Permissions{Delete, Edit, Noaccess, View}
}

func (v Permissions) IsKnown() bool { return core.IsKnown(v, PossiblePermissionsValues()) }

// TenantBackfillStatus enumerates the states of a tenant backfill.
type TenantBackfillStatus string

const (
	Cancelled                TenantBackfillStatus = "Cancelled"
	Completed                TenantBackfillStatus = "Completed"
	Failed                   TenantBackfillStatus = "Failed"
	NotStarted               TenantBackfillStatus = "NotStarted"
	NotStartedButGroupsExist TenantBackfillStatus = "NotStartedButGroupsExist"
	Started                  TenantBackfillStatus = "Started"
)

// PossibleTenantBackfillStatusValues returns an array of possible values for the TenantBackfillStatus const type.
func PossibleTenantBackfillStatusValues() []TenantBackfillStatus {
	return []TenantBackfillStatus{Cancelled, Completed, Failed, NotStarted, NotStartedButGroupsExist, Started}
}

func (v TenantBackfillStatus) IsKnown() bool {
	return core.IsKnown(v, PossibleTenantBackfillStatusValues())
}

// Expand selects which related groups Get returns.
type Expand string

const (
	ExpandAncestors Expand = "ancestors"
	ExpandChildren  Expand = "children"
	ExpandPath      Expand = "path"
)

func PossibleExpandValues() []Expand {
	return []Expand{ExpandAncestors, ExpandChildren, ExpandPath}
}

func (v Expand) IsKnown() bool { return core.IsKnown(v, PossibleExpandValues()) }

// EntityView filters the entities returned by Entities.List.
type EntityView string

const (
	EntityViewAudit             EntityView = "Audit"
	EntityViewFullHierarchy     EntityView = "FullHierarchy"
	EntityViewGroupsOnly        EntityView = "GroupsOnly"
	EntityViewSubscriptionsOnly EntityView = "SubscriptionsOnly"
)

func PossibleEntityViewValues() []EntityView {
	return []EntityView{EntityViewAudit, EntityViewFullHierarchy, EntityViewGroupsOnly, EntityViewSubscriptionsOnly}
}

func (v EntityView) IsKnown() bool { return core.IsKnown(v, PossibleEntityViewValues()) }
