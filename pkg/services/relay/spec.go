// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package relay

import (
	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

type specOption func(*NamespaceSpec) *NamespaceSpec

// NamespaceSpec is the desired state of a relay namespace.
type NamespaceSpec struct {
	subscriptionID string
	group          string
	internal       RelayNamespace
}

func defaultSpec() *NamespaceSpec {
	result := &NamespaceSpec{
		internal: RelayNamespace{
			TrackedResource: core.TrackedResource{
				Tags: map[string]*string{},
			},
			SKU: &SKU{
				Name: SKUNameStandard,
				Tier: SKUTierStandard,
			},
			Properties: &RelayNamespaceProperties{},
		},
	}
	return result
}

// NewNamespaceSpec returns a Standard namespace spec with options applied.
func NewNamespaceSpec(options ...specOption) *NamespaceSpec {
	spec := defaultSpec()
	spec.Set(options...)
	return spec
}

func (s *NamespaceSpec) Set(options ...specOption) {
	for _, option := range options {
		s = option(s)
	}
}

func (s *NamespaceSpec) Exists() bool {
	return s.internal.ID != nil
}

// Namespace returns the last known state of the namespace.
func (s *NamespaceSpec) Namespace() RelayNamespace {
	return s.internal
}

func (s *NamespaceSpec) ServiceBusEndpoint() *string {
	if s.internal.Properties == nil {
		return nil
	}
	return s.internal.Properties.ServiceBusEndpoint
}

func (s *NamespaceSpec) ProvisioningState() *string {
	if s.internal.Properties == nil {
		return nil
	}
	return s.internal.Properties.ProvisioningState
}

func Name(name string) specOption {
	return func(o *NamespaceSpec) *NamespaceSpec {
		o.internal.Name = &name
		return o
	}
}

func Location(location string) specOption {
	return func(o *NamespaceSpec) *NamespaceSpec {
		o.internal.Location = location
		return o
	}
}

func SubscriptionID(sub string) specOption {
	return func(o *NamespaceSpec) *NamespaceSpec {
		o.subscriptionID = sub
		return o
	}
}

func ResourceGroup(group string) specOption {
	return func(o *NamespaceSpec) *NamespaceSpec {
		o.group = group
		return o
	}
}

func Tag(key, value string) specOption {
	return func(o *NamespaceSpec) *NamespaceSpec {
		if o.internal.Tags == nil {
			o.internal.Tags = map[string]*string{}
		}
		o.internal.Tags[key] = &value
		return o
	}
}

func Tier(tier SKUTier) specOption {
	return func(o *NamespaceSpec) *NamespaceSpec {
		if o.internal.SKU == nil {
			o.internal.SKU = &SKU{Name: SKUNameStandard}
		}
		o.internal.SKU.Tier = tier
		return o
	}
}

func NetworkAccess(access PublicNetworkAccess) specOption {
	return func(o *NamespaceSpec) *NamespaceSpec {
		if o.internal.Properties == nil {
			o.internal.Properties = &RelayNamespaceProperties{}
		}
		o.internal.Properties.PublicNetworkAccess = access
		return o
	}
}
