// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package cli

import (
	"io"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
	"github.com/Azure/azure-arm-clients-go/pkg/services/managementgroups"
)

type managementGroupsCmd struct {
	out      io.Writer
	settings *Settings
	expand   string
	recurse  bool
	noCache  bool
	top      int32
}

func (m *managementGroupsCmd) init() (managementgroups.Client, printer, error) {
	pipeline, err := m.settings.client()
	if err != nil {
		return managementgroups.Client{}, printer{}, err
	}
	return managementgroups.New(pipeline), printer{out: m.out, format: m.settings.Output}, nil
}

func (m *managementGroupsCmd) cacheControl() string {
	if m.noCache {
		return "no-cache"
	}
	return ""
}

func newManagementGroupsCmd(settings *Settings, out io.Writer) *cobra.Command {
	m := &managementGroupsCmd{out: out, settings: settings}
	cmd := &cobra.Command{
		Use:     "managementgroups",
		Aliases: []string{"mg"},
		Short:   "Inspect the management group hierarchy of the tenant",
	}
	cmd.PersistentFlags().BoolVar(&m.noCache, "no-cache", false, "bypass the service cache")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the management groups visible to the caller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, p, err := m.init()
			if err != nil {
				return err
			}
			groups, err := core.AllPages(cmd.Context(), client.ManagementGroups().List(&managementgroups.ListOptions{CacheControl: m.cacheControl()}),
				func(page managementgroups.ListResult) []managementgroups.Info { return page.Value })
			if err != nil {
				return errors.Wrap(err, "failed to list management groups")
			}
			rows := make([][]string, 0, len(groups))
			for _, g := range groups {
				row := []string{to.String(g.Name), "", ""}
				if g.Properties != nil {
					row[1] = to.String(g.Properties.DisplayName)
					row[2] = to.String(g.Properties.TenantID)
				}
				rows = append(rows, row)
			}
			return p.print(groups, []string{"NAME", "DISPLAY NAME", "TENANT"}, rows)
		},
	})

	get := &cobra.Command{
		Use:   "get GROUP",
		Short: "Get a management group and optionally its children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, p, err := m.init()
			if err != nil {
				return err
			}
			opts := &managementgroups.GetOptions{
				Expand:       managementgroups.Expand(m.expand),
				CacheControl: m.cacheControl(),
			}
			if m.recurse {
				opts.Recurse = to.BoolPtr(true)
			}
			group, err := client.ManagementGroups().Get(cmd.Context(), args[0], opts)
			if err != nil {
				return errors.Wrapf(err, "failed to get management group %s", args[0])
			}
			var rows [][]string
			if group.Properties != nil {
				rows = append(rows, []string{to.String(group.Name), string(managementgroups.ChildTypeManagementGroup), to.String(group.Properties.DisplayName)})
				rows = appendChildren(rows, group.Properties.Children, "  ")
			}
			return p.print(group, []string{"NAME", "TYPE", "DISPLAY NAME"}, rows)
		},
	}
	get.Flags().StringVar(&m.expand, "expand", "", "include children, path or ancestors")
	get.Flags().BoolVar(&m.recurse, "recurse", false, "with --expand children, include the whole hierarchy")
	cmd.AddCommand(get)

	descendants := &cobra.Command{
		Use:   "descendants GROUP",
		Short: "List every group and subscription below a management group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, p, err := m.init()
			if err != nil {
				return err
			}
			opts := &managementgroups.DescendantsOptions{}
			if m.top > 0 {
				opts.Top = to.Int32Ptr(m.top)
			}
			all, err := core.AllPages(cmd.Context(), client.ManagementGroups().GetDescendants(args[0], opts),
				func(page managementgroups.DescendantListResult) []managementgroups.DescendantInfo { return page.Value })
			if err != nil {
				return errors.Wrapf(err, "failed to list descendants of %s", args[0])
			}
			rows := make([][]string, 0, len(all))
			for _, d := range all {
				row := []string{to.String(d.Name), to.String(d.Type), "", ""}
				if d.Properties != nil {
					row[2] = to.String(d.Properties.DisplayName)
					if d.Properties.Parent != nil {
						row[3] = to.String(d.Properties.Parent.ID)
					}
				}
				rows = append(rows, row)
			}
			return p.print(all, []string{"NAME", "TYPE", "DISPLAY NAME", "PARENT"}, rows)
		},
	}
	descendants.Flags().Int32Var(&m.top, "page-size", 0, "number of descendants per page")
	cmd.AddCommand(descendants)
	return cmd
}

func appendChildren(rows [][]string, children []managementgroups.ChildInfo, indent string) [][]string {
	for _, child := range children {
		rows = append(rows, []string{indent + to.String(child.Name), string(child.Type), to.String(child.DisplayName)})
		rows = appendChildren(rows, child.Children, indent+"  ")
	}
	return rows
}
