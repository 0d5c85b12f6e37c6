// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package managementgroups

import (
	"net/http"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

// EntitiesClient lists the groups and subscriptions visible to the caller.
type EntitiesClient struct {
	Client
}

// EntitiesListOptions are the optional parameters of EntitiesClient.List.
type EntitiesListOptions struct {
	Skiptoken string
	// Skip is the number of entities to skip over.
	Skip *int32
	// Top is the number of entities per page.
	Top *int32
	// Select limits the fields returned, e.g. "Name,DisplayName".
	Select string
	// Search is one of AllowedParents, AllowedChildren, ParentAndFirstLevelChildren,
	// ParentOnly or ChildrenOnly.
	Search string
	Filter string
	View   EntityView
	// GroupName scopes Search to a management group.
	GroupName    string
	CacheControl string
}

// List lists all entities (management groups, subscriptions, etc.) for the
// authenticated user. Every page, including continuations, is a POST.
func (c EntitiesClient) List(opts *EntitiesListOptions) *core.Pager[EntityListResult] {
	if opts == nil {
		opts = &EntitiesListOptions{}
	}
	return newPager[EntityListResult](c.Client, core.Request{
		Operation: "managementgroups.EntitiesClient.List",
		Method:    http.MethodPost,
		Path:      "/providers/Microsoft.Management/getEntities",
		Query: query(
			"$skiptoken", opts.Skiptoken,
			"$skip", opts.Skip,
			"$top", opts.Top,
			"$select", opts.Select,
			"$search", opts.Search,
			"$filter", opts.Filter,
			"$view", string(opts.View),
			"groupName", opts.GroupName,
		),
		Headers: cacheControl(opts.CacheControl),
	})
}
