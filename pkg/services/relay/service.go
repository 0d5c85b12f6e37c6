// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package relay

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	azerr "github.com/Azure/azure-arm-clients-go/pkg/errors"
)

// NamespaceService reconciles namespaces from a NamespaceSpec.
type NamespaceService struct {
	client NamespacesClient
	log    logr.Logger
}

func NewNamespaceService(client Client) *NamespaceService {
	return &NamespaceService{
		client: client.Namespaces(),
		log:    client.Logger().WithName("namespaces"),
	}
}

// Ensure creates the namespace or brings it in line with resource.
func (s *NamespaceService) Ensure(ctx context.Context, resource *NamespaceSpec) error {
	if resource.internal.Name == nil {
		return errors.New("namespace spec has no name")
	}
	log := s.log.WithValues("namespace", *resource.internal.Name, "group", resource.group)

	result, err := s.client.CreateOrUpdate(ctx, resource.subscriptionID, resource.group, *resource.internal.Name, resource.internal)
	if err != nil {
		return errors.Wrapf(err, "failed to ensure namespace %s", *resource.internal.Name)
	}
	log.V(1).Info("ensured namespace", "created", result.Created())

	resource.internal = result.Namespace
	return nil
}

// Get returns the current state of a namespace, or a default spec that does not
// exist yet when the service reports 404.
func (s *NamespaceService) Get(ctx context.Context, subscriptionID, resourceGroup, name string) (*NamespaceSpec, error) {
	result, err := s.client.Get(ctx, subscriptionID, resourceGroup, name)
	if err != nil {
		if azerr.IsNotFound(err) {
			spec := defaultSpec()
			spec.Set(SubscriptionID(subscriptionID), ResourceGroup(resourceGroup), Name(name))
			return spec, nil
		}
		return nil, err
	}

	return &NamespaceSpec{
		subscriptionID: subscriptionID,
		group:          resourceGroup,
		internal:       result,
	}, nil
}

// Delete removes a namespace. A namespace that is already gone is not an error.
func (s *NamespaceService) Delete(ctx context.Context, subscriptionID, resourceGroup, name string) error {
	result, err := s.client.Delete(ctx, subscriptionID, resourceGroup, name)
	if err != nil && azerr.IsNotFound(err) {
		return nil
	}
	if err == nil && result.Accepted() {
		s.log.V(1).Info("namespace deletion accepted", "namespace", name)
	}
	return err
}
