// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package relay

import (
	"encoding/json"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/Azure/go-autorest/autorest/to"
	"github.com/pkg/errors"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

// ProxyResource is a child resource of a namespace. The service echoes the
// parent location on it.
type ProxyResource struct {
	core.ProxyResource
	// Location - READ-ONLY; The geo-location where the resource lives.
	Location *string `json:"location,omitempty"`
}

// AccessKeys - Namespace, hybrid connection or WCF relay connection strings and keys.
type AccessKeys struct {
	PrimaryConnectionString   *string `json:"primaryConnectionString,omitempty"`
	SecondaryConnectionString *string `json:"secondaryConnectionString,omitempty"`
	PrimaryKey                *string `json:"primaryKey,omitempty"`
	SecondaryKey              *string `json:"secondaryKey,omitempty"`
	KeyName                   *string `json:"keyName,omitempty"`
}

// AuthorizationRule - Single item in a List or Get AuthorizationRule operation.
type AuthorizationRule struct {
	ProxyResource
	Properties *AuthorizationRuleProperties `json:"properties,omitempty"`
	SystemData *core.SystemData             `json:"systemData,omitempty"`
}

// AuthorizationRuleProperties - Properties of an authorization rule.
type AuthorizationRuleProperties struct {
	// Rights - The rights associated with the rule.
	Rights []AccessRights `json:"rights"`
}

// AuthorizationRuleListResult - The response from the list namespace operation.
type AuthorizationRuleListResult struct {
	Value    []AuthorizationRule `json:"value,omitempty"`
	NextLink *string             `json:"nextLink,omitempty"`
}

func (r AuthorizationRuleListResult) Continuation() string { return to.String(r.NextLink) }

// CheckNameAvailability - Description of the check name availability request properties.
type CheckNameAvailability struct {
	// Name - The namespace name to check for availability.
	Name string `json:"name"`
}

// CheckNameAvailabilityResult - Description of the check name availability request properties.
type CheckNameAvailabilityResult struct {
	// Message - READ-ONLY; The detailed info regarding the reason associated with the namespace.
	Message       *string           `json:"message,omitempty"`
	NameAvailable *bool             `json:"nameAvailable,omitempty"`
	Reason        UnavailableReason `json:"reason,omitempty"`
}

// ConnectionState - State of the private endpoint connection.
type ConnectionState struct {
	Status      ConnectionStatus `json:"status,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// ErrorAdditionalInfo - The resource management error additional info.
type ErrorAdditionalInfo struct {
	// Type - READ-ONLY
	Type *string `json:"type,omitempty"`
	// Info - READ-ONLY
	Info interface{} `json:"info,omitempty"`
}

// ErrorDetail - The error detail.
type ErrorDetail struct {
	Code           *string               `json:"code,omitempty"`
	Message        *string               `json:"message,omitempty"`
	Target         *string               `json:"target,omitempty"`
	Details        []ErrorDetail         `json:"details,omitempty"`
	AdditionalInfo []ErrorAdditionalInfo `json:"additionalInfo,omitempty"`
}

// ErrorResponse - Common error response for all Azure Resource Manager APIs.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error,omitempty"`
}

// HybridConnection - Description of the hybrid connection resource.
type HybridConnection struct {
	ProxyResource
	Properties *HybridConnectionProperties `json:"properties,omitempty"`
	SystemData *core.SystemData            `json:"systemData,omitempty"`
}

// HybridConnectionProperties - Properties of the HybridConnection.
type HybridConnectionProperties struct {
	// CreatedAt - READ-ONLY
	CreatedAt *date.Time `json:"createdAt,omitempty"`
	// UpdatedAt - READ-ONLY
	UpdatedAt *date.Time `json:"updatedAt,omitempty"`
	// ListenerCount - READ-ONLY; The number of listeners for this hybrid connection.
	ListenerCount               *int32  `json:"listenerCount,omitempty"`
	RequiresClientAuthorization *bool   `json:"requiresClientAuthorization,omitempty"`
	UserMetadata                *string `json:"userMetadata,omitempty"`
}

// HybridConnectionListResult - The response of the list hybrid connection operation.
type HybridConnectionListResult struct {
	Value    []HybridConnection `json:"value,omitempty"`
	NextLink *string            `json:"nextLink,omitempty"`
}

func (r HybridConnectionListResult) Continuation() string { return to.String(r.NextLink) }

// NWRuleSetIPRules - The IP filter rule.
type NWRuleSetIPRules struct {
	// IPMask - IP Mask
	IPMask *string             `json:"ipMask,omitempty"`
	Action NetworkRuleIPAction `json:"action,omitempty"`
}

// NetworkRuleSet - Description of the network rule set.
type NetworkRuleSet struct {
	core.Resource
	Properties *NetworkRuleSetProperties `json:"properties,omitempty"`
	SystemData *core.SystemData          `json:"systemData,omitempty"`
}

// NetworkRuleSetProperties - NetworkRuleSet properties.
type NetworkRuleSetProperties struct {
	DefaultAction DefaultAction      `json:"defaultAction,omitempty"`
	IPRules       []NWRuleSetIPRules `json:"ipRules,omitempty"`
}

// Operation - A Relay REST API operation.
type Operation struct {
	// Name - READ-ONLY; Operation name: {provider}/{resource}/{operation}
	Name         *string           `json:"name,omitempty"`
	IsDataAction *bool             `json:"isDataAction,omitempty"`
	Display      *OperationDisplay `json:"display,omitempty"`
	Origin       *string           `json:"origin,omitempty"`
	Properties   interface{}       `json:"properties,omitempty"`
}

// OperationDisplay - The object that represents the operation.
type OperationDisplay struct {
	Provider    *string `json:"provider,omitempty"`
	Resource    *string `json:"resource,omitempty"`
	Operation   *string `json:"operation,omitempty"`
	Description *string `json:"description,omitempty"`
}

// OperationListResult - Result of the request to list Relay operations.
type OperationListResult struct {
	Value    []Operation `json:"value,omitempty"`
	NextLink *string     `json:"nextLink,omitempty"`
}

func (r OperationListResult) Continuation() string { return to.String(r.NextLink) }

// PrivateEndpoint information.
type PrivateEndpoint struct {
	ID *string `json:"id,omitempty"`
}

// PrivateEndpointConnection - Private endpoint connection resource.
type PrivateEndpointConnection struct {
	ProxyResource
	Properties *PrivateEndpointConnectionProperties `json:"properties,omitempty"`
	SystemData *core.SystemData                     `json:"systemData,omitempty"`
}

// PrivateEndpointConnectionProperties - Properties of the private endpoint connection resource.
type PrivateEndpointConnectionProperties struct {
	PrivateEndpoint                   *PrivateEndpoint                           `json:"privateEndpoint,omitempty"`
	PrivateLinkServiceConnectionState *ConnectionState                           `json:"privateLinkServiceConnectionState,omitempty"`
	ProvisioningState                 PrivateEndpointConnectionProvisioningState `json:"provisioningState,omitempty"`
}

// PrivateEndpointConnectionListResult - Result of the list of all private endpoint connections operation.
type PrivateEndpointConnectionListResult struct {
	Value    []PrivateEndpointConnection `json:"value,omitempty"`
	NextLink *string                     `json:"nextLink,omitempty"`
}

func (r PrivateEndpointConnectionListResult) Continuation() string { return to.String(r.NextLink) }

// PrivateLinkResource - Information of the private link resource.
type PrivateLinkResource struct {
	core.Resource
	Properties *PrivateLinkResourceProperties `json:"properties,omitempty"`
}

// PrivateLinkResourceProperties - Properties of the private link resource.
type PrivateLinkResourceProperties struct {
	GroupID           *string  `json:"groupId,omitempty"`
	RequiredMembers   []string `json:"requiredMembers,omitempty"`
	RequiredZoneNames []string `json:"requiredZoneNames,omitempty"`
}

// PrivateLinkResourcesListResult - Result of the List private link resources operation.
// The service returns it in a single response.
type PrivateLinkResourcesListResult struct {
	Value    []PrivateLinkResource `json:"value,omitempty"`
	NextLink *string               `json:"nextLink,omitempty"`
}

// RegenerateAccessKeyParameters - Parameters supplied to the regenerate authorization rule operation.
type RegenerateAccessKeyParameters struct {
	// KeyType - The access key to regenerate.
	KeyType KeyType `json:"keyType"`
	// Key - Optional. If the key value is provided, this is set to key type, or autogenerated key value set for key type.
	Key *string `json:"key,omitempty"`
}

// RelayNamespace - Description of a namespace resource.
type RelayNamespace struct {
	core.TrackedResource
	SKU        *SKU                      `json:"sku,omitempty"`
	SystemData *core.SystemData          `json:"systemData,omitempty"`
	Properties *RelayNamespaceProperties `json:"properties,omitempty"`
}

// UnmarshalJSON rejects namespaces without a location.
func (n *RelayNamespace) UnmarshalJSON(data []byte) error {
	if err := core.RequireProperties(data, "location"); err != nil {
		return errors.Wrap(err, "relay namespace")
	}
	type alias RelayNamespace
	return json.Unmarshal(data, (*alias)(n))
}

// RelayNamespaceListResult - The response from the list namespace operation.
type RelayNamespaceListResult struct {
	Value    []RelayNamespace `json:"value,omitempty"`
	NextLink *string          `json:"nextLink,omitempty"`
}

func (r RelayNamespaceListResult) Continuation() string { return to.String(r.NextLink) }

// RelayNamespaceProperties - Properties of the namespace.
type RelayNamespaceProperties struct {
	// ProvisioningState - READ-ONLY; Provisioning state of the Namespace.
	ProvisioningState *string `json:"provisioningState,omitempty"`
	// Status - READ-ONLY; Status of the Namespace.
	Status *string `json:"status,omitempty"`
	// CreatedAt - READ-ONLY; The time the namespace was created.
	CreatedAt *date.Time `json:"createdAt,omitempty"`
	// UpdatedAt - READ-ONLY; The time the namespace was updated.
	UpdatedAt *date.Time `json:"updatedAt,omitempty"`
	// ServiceBusEndpoint - READ-ONLY; Endpoint you can use to perform Service Bus operations.
	ServiceBusEndpoint *string `json:"serviceBusEndpoint,omitempty"`
	// MetricID - READ-ONLY; Identifier for Azure Insights metrics.
	MetricID                   *string                     `json:"metricId,omitempty"`
	PrivateEndpointConnections []PrivateEndpointConnection `json:"privateEndpointConnections,omitempty"`
	PublicNetworkAccess        PublicNetworkAccess         `json:"publicNetworkAccess,omitempty"`
}

// ResourceNamespacePatch - Definition of resource.
type ResourceNamespacePatch struct {
	core.Resource
	Tags map[string]*string `json:"tags,omitempty"`
}

// RelayUpdateParameters - Description of a namespace resource.
type RelayUpdateParameters struct {
	ResourceNamespacePatch
	SKU        *SKU                      `json:"sku,omitempty"`
	Properties *RelayNamespaceProperties `json:"properties,omitempty"`
}

// SKU of the namespace.
type SKU struct {
	// Name - Name of this SKU.
	Name SKUName `json:"name"`
	// Tier - The tier of this SKU.
	Tier SKUTier `json:"tier,omitempty"`
}

// WcfRelay - Description of the WCF relay resource.
type WcfRelay struct {
	ProxyResource
	Properties *WcfRelayProperties `json:"properties,omitempty"`
	SystemData *core.SystemData    `json:"systemData,omitempty"`
}

// WcfRelayProperties - Properties of the WCF relay.
type WcfRelayProperties struct {
	// IsDynamic - READ-ONLY; Returns true if the relay is dynamic; otherwise, false.
	IsDynamic *bool `json:"isDynamic,omitempty"`
	// CreatedAt - READ-ONLY
	CreatedAt *date.Time `json:"createdAt,omitempty"`
	// UpdatedAt - READ-ONLY
	UpdatedAt *date.Time `json:"updatedAt,omitempty"`
	// ListenerCount - READ-ONLY
	ListenerCount               *int32    `json:"listenerCount,omitempty"`
	RelayType                   RelayType `json:"relayType,omitempty"`
	RequiresClientAuthorization *bool     `json:"requiresClientAuthorization,omitempty"`
	RequiresTransportSecurity   *bool     `json:"requiresTransportSecurity,omitempty"`
	UserMetadata                *string   `json:"userMetadata,omitempty"`
}

// WcfRelaysListResult - The response of the list WCF relay operation.
type WcfRelaysListResult struct {
	Value    []WcfRelay `json:"value,omitempty"`
	NextLink *string    `json:"nextLink,omitempty"`
}

func (r WcfRelaysListResult) Continuation() string { return to.String(r.NextLink) }
