// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package core

import (
	"bytes"
	"encoding/json"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
)

// Resource holds the fields common to every ARM resource.
//
// The base types carry no methods so that JSON hooks defined on concrete
// resources are not shadowed by promotion.
type Resource struct {
	// ID - READ-ONLY; Fully qualified resource ID.
	ID *string `json:"id,omitempty"`
	// Name - READ-ONLY; The name of the resource.
	Name *string `json:"name,omitempty"`
	// Type - READ-ONLY; The type of the resource.
	Type *string `json:"type,omitempty"`
}

// ProxyResource is a resource nested under a tracked resource. It has no location or tags.
type ProxyResource struct {
	Resource
}

// TrackedResource is a top level resource with a required location.
// Concrete types call RequireProperties(data, "location") when decoding.
type TrackedResource struct {
	Resource
	// Location - The geo-location where the resource lives.
	Location string `json:"location"`
	// Tags - Resource tags.
	Tags map[string]*string `json:"tags,omitempty"`
}

// CreatedByType is the kind of identity that created or modified a resource.
type CreatedByType string

const (
	CreatedByTypeApplication     CreatedByType = "Application"
	CreatedByTypeKey             CreatedByType = "Key"
	CreatedByTypeManagedIdentity CreatedByType = "ManagedIdentity"
	CreatedByTypeUser            CreatedByType = "User"
)

func PossibleCreatedByTypeValues() []CreatedByType {
	return []CreatedByType{CreatedByTypeApplication, CreatedByTypeKey, CreatedByTypeManagedIdentity, CreatedByTypeUser}
}

func (c CreatedByType) IsKnown() bool {
	return IsKnown(c, PossibleCreatedByTypeValues())
}

// SystemData - Metadata pertaining to creation and last modification of the resource.
type SystemData struct {
	CreatedBy          *string       `json:"createdBy,omitempty"`
	CreatedByType      CreatedByType `json:"createdByType,omitempty"`
	CreatedAt          *date.Time    `json:"createdAt,omitempty"`
	LastModifiedBy     *string       `json:"lastModifiedBy,omitempty"`
	LastModifiedByType CreatedByType `json:"lastModifiedByType,omitempty"`
	LastModifiedAt     *date.Time    `json:"lastModifiedAt,omitempty"`
}

// RequireProperties fails when the JSON object in data lacks any of names or
// holds null for one of them. A null document is accepted and left to the caller.
func RequireProperties(data []byte, names ...string) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, name := range names {
		if raw, ok := fields[name]; !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return errors.Errorf("missing required property %q", name)
		}
	}
	return nil
}
