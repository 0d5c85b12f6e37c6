// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package relay

import (
	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

// AccessRights enumerates the values for access rights.
type AccessRights string

const (
	Listen AccessRights = "Listen"
	Manage AccessRights = "Manage"
	Send   AccessRights = "Send"
)

// PossibleAccessRightsValues returns an array of possible values for the AccessRights const type.
func PossibleAccessRightsValues() []AccessRights {
	return []AccessRights{Listen, Manage, Send}
}

func (v AccessRights) IsKnown() bool { return core.IsKnown(v, PossibleAccessRightsValues()) }

// ConnectionStatus enumerates the values for private link service connection status.
type ConnectionStatus string

const (
	ConnectionStatusApproved     ConnectionStatus = "Approved"
	ConnectionStatusDisconnected ConnectionStatus = "Disconnected"
	ConnectionStatusPending      ConnectionStatus = "Pending"
	ConnectionStatusRejected     ConnectionStatus = "Rejected"
)

func PossibleConnectionStatusValues() []ConnectionStatus {
	return []ConnectionStatus{ConnectionStatusApproved, ConnectionStatusDisconnected, ConnectionStatusPending, ConnectionStatusRejected}
}

func (v ConnectionStatus) IsKnown() bool { return core.IsKnown(v, PossibleConnectionStatusValues()) }

// DefaultAction enumerates the values for the network rule set default action.
type DefaultAction string

const (
	DefaultActionAllow DefaultAction = "Allow"
	DefaultActionDeny  DefaultAction = "Deny"
)

func PossibleDefaultActionValues() []DefaultAction {
	return []DefaultAction{DefaultActionAllow, DefaultActionDeny}
}

func (v DefaultAction) IsKnown() bool { return core.IsKnown(v, PossibleDefaultActionValues()) }

// NetworkRuleIPAction enumerates the values for IP filter actions.
type NetworkRuleIPAction string

const (
	NetworkRuleIPActionAllow NetworkRuleIPAction = "Allow"
)

func PossibleNetworkRuleIPActionValues() []NetworkRuleIPAction {
	return []NetworkRuleIPAction{NetworkRuleIPActionAllow}
}

func (v NetworkRuleIPAction) IsKnown() bool { return core.IsKnown(v, PossibleNetworkRuleIPActionValues()) }

// PrivateEndpointConnectionProvisioningState enumerates the provisioning states of a private endpoint connection.
type PrivateEndpointConnectionProvisioningState string

const (
	PrivateEndpointConnectionProvisioningStateCanceled  PrivateEndpointConnectionProvisioningState = "Canceled"
	PrivateEndpointConnectionProvisioningStateCreating  PrivateEndpointConnectionProvisioningState = "Creating"
	PrivateEndpointConnectionProvisioningStateDeleting  PrivateEndpointConnectionProvisioningState = "Deleting"
	PrivateEndpointConnectionProvisioningStateFailed    PrivateEndpointConnectionProvisioningState = "Failed"
	PrivateEndpointConnectionProvisioningStateSucceeded PrivateEndpointConnectionProvisioningState = "Succeeded"
	PrivateEndpointConnectionProvisioningStateUpdating  PrivateEndpointConnectionProvisioningState = "Updating"
)

func PossiblePrivateEndpointConnectionProvisioningStateValues() []PrivateEndpointConnectionProvisioningState {
	return []PrivateEndpointConnectionProvisioningState{
		PrivateEndpointConnectionProvisioningStateCanceled,
		PrivateEndpointConnectionProvisioningStateCreating,
		PrivateEndpointConnectionProvisioningStateDeleting,
		PrivateEndpointConnectionProvisioningStateFailed,
		PrivateEndpointConnectionProvisioningStateSucceeded,
		PrivateEndpointConnectionProvisioningStateUpdating,
	}
}

func (v PrivateEndpointConnectionProvisioningState) IsKnown() bool {
	return core.IsKnown(v, PossiblePrivateEndpointConnectionProvisioningStateValues())
}

// KeyType enumerates the keys that can be regenerated.
type KeyType string

const (
	PrimaryKey   KeyType = "PrimaryKey"
	SecondaryKey KeyType = "SecondaryKey"
)

func PossibleKeyTypeValues() []KeyType {
	return []KeyType{PrimaryKey, SecondaryKey}
}

func (v KeyType) IsKnown() bool { return core.IsKnown(v, PossibleKeyTypeValues()) }

// PublicNetworkAccess enumerates whether a namespace is reachable from public networks.
type PublicNetworkAccess string

const (
	PublicNetworkAccessDisabled           PublicNetworkAccess = "Disabled"
	PublicNetworkAccessEnabled            PublicNetworkAccess = "Enabled"
	PublicNetworkAccessSecuredByPerimeter PublicNetworkAccess = "SecuredByPerimeter"
)

func PossiblePublicNetworkAccessValues() []PublicNetworkAccess {
	return []PublicNetworkAccess{PublicNetworkAccessDisabled, PublicNetworkAccessEnabled, PublicNetworkAccessSecuredByPerimeter}
}

func (v PublicNetworkAccess) IsKnown() bool { return core.IsKnown(v, PossiblePublicNetworkAccessValues()) }

// RelayType enumerates the WCF relay types.
type RelayType string

const (
	HTTP   RelayType = "Http"
	NetTCP RelayType = "NetTcp"
)

func PossibleRelayTypeValues() []RelayType {
	return []RelayType{HTTP, NetTCP}
}

func (v RelayType) IsKnown() bool { return core.IsKnown(v, PossibleRelayTypeValues()) }

// SKUName enumerates the namespace SKU names.
type SKUName string

const (
	SKUNameStandard SKUName = "Standard"
)

func PossibleSKUNameValues() []SKUName {
	return []SKUName{SKUNameStandard}
}

func (v SKUName) IsKnown() bool { return core.IsKnown(v, PossibleSKUNameValues()) }

// SKUTier enumerates the namespace SKU tiers.
type SKUTier string

const (
	SKUTierStandard SKUTier = "Standard"
)

func PossibleSKUTierValues() []SKUTier {
	return []SKUTier{SKUTierStandard}
}

func (v SKUTier) IsKnown() bool { return core.IsKnown(v, PossibleSKUTierValues()) }

// UnavailableReason enumerates why a namespace name is unavailable.
type UnavailableReason string

const (
	UnavailableReasonInvalidName                           UnavailableReason = "InvalidName"
	UnavailableReasonNameInLockdown                        UnavailableReason = "NameInLockdown"
	UnavailableReasonNameInUse                             UnavailableReason = "NameInUse"
	UnavailableReasonNone                                  UnavailableReason = "None"
	UnavailableReasonSubscriptionIsDisabled                UnavailableReason = "SubscriptionIsDisabled"
	UnavailableReasonTooManyNamespaceInCurrentSubscription UnavailableReason = "TooManyNamespaceInCurrentSubscription"
)

func PossibleUnavailableReasonValues() []UnavailableReason {
	return []UnavailableReason{
		UnavailableReasonInvalidName,
		UnavailableReasonNameInLockdown,
		UnavailableReasonNameInUse,
		UnavailableReasonNone,
		UnavailableReasonSubscriptionIsDisabled,
		UnavailableReasonTooManyNamespaceInCurrentSubscription,
	}
}

func (v UnavailableReason) IsKnown() bool { return core.IsKnown(v, PossibleUnavailableReasonValues()) }
