// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package cli

import (
	"io"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-arm-clients-go/pkg/services/serialconsole"
)

func newSerialConsoleCmd(settings *Settings, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serialconsole",
		Short: "Show or toggle Serial Console for the subscription",
	}

	run := func(action string, call func(cmd *cobra.Command, client serialconsole.Client, subscriptionID string) (*serialconsole.SerialConsoleProperties, interface{}, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			pipeline, err := settings.client()
			if err != nil {
				return err
			}
			subscriptionID, err := settings.subscription()
			if err != nil {
				return err
			}
			props, result, err := call(cmd, serialconsole.New(pipeline), subscriptionID)
			if err != nil {
				return errors.Wrapf(err, "failed to %s serial console", action)
			}
			disabled := props != nil && to.Bool(props.Disabled)
			status := "Enabled"
			if disabled {
				status = "Disabled"
			}
			p := printer{out: out, format: settings.Output}
			return p.print(result, []string{"SUBSCRIPTION", "SERIAL CONSOLE"}, [][]string{{subscriptionID, status}})
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show whether Serial Console is disabled",
			Args:  cobra.NoArgs,
			RunE: run("read", func(cmd *cobra.Command, client serialconsole.Client, subscriptionID string) (*serialconsole.SerialConsoleProperties, interface{}, error) {
				result, err := client.GetConsoleStatus(cmd.Context(), subscriptionID, serialconsole.DefaultConsole)
				return result.Properties, result, err
			}),
		},
		&cobra.Command{
			Use:   "enable",
			Short: "Enable Serial Console for every VM in the subscription",
			Args:  cobra.NoArgs,
			RunE: run("enable", func(cmd *cobra.Command, client serialconsole.Client, subscriptionID string) (*serialconsole.SerialConsoleProperties, interface{}, error) {
				result, err := client.EnableConsole(cmd.Context(), subscriptionID, serialconsole.DefaultConsole)
				return result.Properties, result, err
			}),
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Disable Serial Console for every VM in the subscription",
			Args:  cobra.NoArgs,
			RunE: run("disable", func(cmd *cobra.Command, client serialconsole.Client, subscriptionID string) (*serialconsole.SerialConsoleProperties, interface{}, error) {
				result, err := client.DisableConsole(cmd.Context(), subscriptionID, serialconsole.DefaultConsole)
				return result.Properties, result, err
			}),
		},
	)
	return cmd
}
