// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package cli

import (
	"fmt"
	"io"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
	"github.com/Azure/azure-arm-clients-go/pkg/services/relay"
)

func newRelayCmd(settings *Settings, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Manage Azure Relay namespaces and hybrid connections",
	}
	cmd.AddCommand(
		newNamespacesCmd(settings, out),
		newHybridConnectionsCmd(settings, out),
	)
	return cmd
}

// relayCmd carries what every relay subcommand needs once flags are parsed.
type relayCmd struct {
	out           io.Writer
	settings      *Settings
	resourceGroup string
	namespace     string
}

func (r *relayCmd) init() (relay.Client, string, printer, error) {
	pipeline, err := r.settings.client()
	if err != nil {
		return relay.Client{}, "", printer{}, err
	}
	subscriptionID, err := r.settings.subscription()
	if err != nil {
		return relay.Client{}, "", printer{}, err
	}
	return relay.New(pipeline), subscriptionID, printer{out: r.out, format: r.settings.Output}, nil
}

func newNamespacesCmd(settings *Settings, out io.Writer) *cobra.Command {
	r := &relayCmd{out: out, settings: settings}
	cmd := &cobra.Command{
		Use:     "namespaces",
		Aliases: []string{"ns"},
		Short:   "Manage relay namespaces",
	}
	addResourceGroupFlag(cmd.PersistentFlags(), &r.resourceGroup)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List namespaces in the subscription or resource group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, subscriptionID, p, err := r.init()
			if err != nil {
				return err
			}
			pager := client.Namespaces().List(subscriptionID)
			if r.resourceGroup != "" {
				pager = client.Namespaces().ListByResourceGroup(subscriptionID, r.resourceGroup)
			}
			namespaces, err := core.AllPages(cmd.Context(), pager, func(page relay.RelayNamespaceListResult) []relay.RelayNamespace {
				return page.Value
			})
			if err != nil {
				return errors.Wrap(err, "failed to list namespaces")
			}
			return printNamespaces(p, namespaces)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get NAME...",
		Short: "Get one or more namespaces",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if r.resourceGroup == "" {
				return errors.New("--resource-group is required")
			}
			client, subscriptionID, p, err := r.init()
			if err != nil {
				return err
			}
			namespaces := make([]relay.RelayNamespace, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, name := range args {
				i, name := i, name
				g.Go(func() error {
					ns, err := client.Namespaces().Get(ctx, subscriptionID, r.resourceGroup, name)
					if err != nil {
						return errors.Wrapf(err, "failed to get namespace %s", name)
					}
					namespaces[i] = ns
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			return printNamespaces(p, namespaces)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a namespace and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if r.resourceGroup == "" {
				return errors.New("--resource-group is required")
			}
			client, subscriptionID, _, err := r.init()
			if err != nil {
				return err
			}
			result, err := client.Namespaces().Delete(cmd.Context(), subscriptionID, r.resourceGroup, args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to delete namespace %s", args[0])
			}
			if result.Accepted() {
				fmt.Fprintf(r.out, "deletion of namespace %s accepted\n", args[0])
				return nil
			}
			fmt.Fprintf(r.out, "namespace %s deleted\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check-name NAME",
		Short: "Check whether a namespace name is available",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, subscriptionID, p, err := r.init()
			if err != nil {
				return err
			}
			result, err := client.Namespaces().CheckNameAvailability(cmd.Context(), subscriptionID, relay.CheckNameAvailability{Name: args[0]})
			if err != nil {
				return errors.Wrap(err, "failed to check name availability")
			}
			return p.print(result, []string{"NAME", "AVAILABLE", "REASON", "MESSAGE"}, [][]string{{
				args[0],
				fmt.Sprint(to.Bool(result.NameAvailable)),
				string(result.Reason),
				to.String(result.Message),
			}})
		},
	})
	return cmd
}

func addResourceGroupFlag(fs *pflag.FlagSet, group *string) {
	fs.StringVarP(group, "resource-group", "g", "", "resource group of the namespace")
}

func printNamespaces(p printer, namespaces []relay.RelayNamespace) error {
	rows := make([][]string, 0, len(namespaces))
	for _, ns := range namespaces {
		row := []string{to.String(ns.Name), ns.Location, "", "", ""}
		if ns.SKU != nil {
			row[2] = string(ns.SKU.Tier)
		}
		if ns.Properties != nil {
			row[3] = state(ns.Properties.ProvisioningState)
			row[4] = to.String(ns.Properties.ServiceBusEndpoint)
		}
		rows = append(rows, row)
	}
	return p.print(namespaces, []string{"NAME", "LOCATION", "TIER", "STATE", "ENDPOINT"}, rows)
}

func newHybridConnectionsCmd(settings *Settings, out io.Writer) *cobra.Command {
	r := &relayCmd{out: out, settings: settings}
	cmd := &cobra.Command{
		Use:     "hybrid-connections",
		Aliases: []string{"hc"},
		Short:   "Manage hybrid connections of a namespace",
	}
	addResourceGroupFlag(cmd.PersistentFlags(), &r.resourceGroup)
	cmd.PersistentFlags().StringVarP(&r.namespace, "namespace", "n", "", "relay namespace")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the hybrid connections of a namespace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if r.resourceGroup == "" || r.namespace == "" {
				return errors.New("--resource-group and --namespace are required")
			}
			client, subscriptionID, p, err := r.init()
			if err != nil {
				return err
			}
			connections, err := core.AllPages(cmd.Context(), client.HybridConnections().ListByNamespace(subscriptionID, r.resourceGroup, r.namespace),
				func(page relay.HybridConnectionListResult) []relay.HybridConnection { return page.Value })
			if err != nil {
				return errors.Wrap(err, "failed to list hybrid connections")
			}

			rows := make([][]string, 0, len(connections))
			for _, hc := range connections {
				row := []string{to.String(hc.Name), "", "", ""}
				if hc.Properties != nil {
					row[1] = fmt.Sprint(to.Int32(hc.Properties.ListenerCount))
					row[2] = fmt.Sprint(to.Bool(hc.Properties.RequiresClientAuthorization))
					row[3] = to.String(hc.Properties.UserMetadata)
				}
				rows = append(rows, row)
			}
			return p.print(connections, []string{"NAME", "LISTENERS", "CLIENT AUTH", "METADATA"}, rows)
		},
	})
	return cmd
}
