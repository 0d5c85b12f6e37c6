// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.

// Package cli implements armctl, a command line client for the resource
// providers in this module.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/Azure/go-autorest/autorest/azure/auth"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
	"github.com/Azure/azure-arm-clients-go/pkg/metrics"
)

const authLocationEnv = "AZURE_AUTH_LOCATION"

const globalUsage = `armctl calls the Azure Resource Manager REST API for the Relay,
Management Groups and Serial Console resource providers.

Credentials come from the file named by AZURE_AUTH_LOCATION when it is set,
and from the default Azure credential chain otherwise.`

// Settings are the flags shared by every command.
type Settings struct {
	Subscription string
	Endpoint     string
	Cloud        string
	Output       string
	Debug        bool
	Metrics      bool

	registry *prometheus.Registry
	pipeline func(s *Settings, opts ...core.Option) (core.Client, error)
}

// NewRootCmd returns the armctl command tree writing results to out and
// diagnostics to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	return newRootCmd(&Settings{pipeline: defaultPipeline}, out, errOut)
}

func newRootCmd(settings *Settings, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "armctl",
		Short:        "Manage Azure resources through the resource manager",
		Long:         globalUsage,
		SilenceUsage: true,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if settings.registry == nil {
				return nil
			}
			return metrics.WriteText(errOut, settings.registry)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&settings.Subscription, "subscription", "s", "", "subscription ID; defaults to the credential settings")
	flags.StringVar(&settings.Endpoint, "endpoint", "", "resource manager endpoint")
	flags.StringVar(&settings.Cloud, "cloud", "", "named Azure environment, e.g. AzureUSGovernmentCloud")
	flags.StringVarP(&settings.Output, "output", "o", outputTable, "output format: table, json, yaml or dump")
	flags.BoolVar(&settings.Debug, "debug", false, "log every request and response")
	flags.BoolVar(&settings.Metrics, "metrics", false, "print request metrics in the Prometheus text format on exit")

	cmd.AddCommand(
		newRelayCmd(settings, out),
		newManagementGroupsCmd(settings, out),
		newSerialConsoleCmd(settings, out),
	)
	return cmd
}

// client builds the pipeline for one command invocation.
func (s *Settings) client() (core.Client, error) {
	if !isOutput(s.Output) {
		return core.Client{}, errors.Errorf("unknown output format %q", s.Output)
	}
	opts := []core.Option{core.WithLogger(logf.Log.WithName("armctl"))}
	if s.Cloud != "" {
		opts = append(opts, core.WithCloud(s.Cloud))
	}
	if s.Endpoint != "" {
		opts = append(opts, core.WithEndpoint(s.Endpoint))
	}
	if s.Debug {
		opts = append(opts, core.WithDebug())
	}
	if s.Metrics {
		s.registry = prometheus.NewRegistry()
		recorder, err := metrics.NewRecorder(s.registry)
		if err != nil {
			return core.Client{}, err
		}
		opts = append(opts, core.WithMetrics(recorder))
	}
	return s.pipeline(s, opts...)
}

func (s *Settings) subscription() (string, error) {
	if s.Subscription == "" {
		return "", errors.New("no subscription: pass --subscription or set AZURE_SUBSCRIPTION_ID")
	}
	return s.Subscription, nil
}

// resource is the token audience for file based credentials.
func (s *Settings) resource() (string, error) {
	endpoint := azure.PublicCloud.ResourceManagerEndpoint
	if s.Cloud != "" {
		env, err := azure.EnvironmentFromName(s.Cloud)
		if err != nil {
			return "", err
		}
		endpoint = env.ResourceManagerEndpoint
	}
	if s.Endpoint != "" {
		endpoint = s.Endpoint
	}
	return strings.TrimSuffix(endpoint, "/") + "/", nil
}

func defaultPipeline(s *Settings, opts ...core.Option) (core.Client, error) {
	if os.Getenv(authLocationEnv) != "" {
		fileSettings, err := auth.GetSettingsFromFile()
		if err != nil {
			return core.Client{}, errors.Wrap(err, "failed to read auth file")
		}
		if s.Subscription == "" {
			s.Subscription = fileSettings.GetSubscriptionID()
		}
		resource, err := s.resource()
		if err != nil {
			return core.Client{}, err
		}
		authorizer, err := auth.NewAuthorizerFromFile(resource)
		if err != nil {
			return core.Client{}, errors.Wrap(err, "failed to create authorizer from file")
		}
		return core.New(nil, append(opts, core.WithAuthorizer(authorizer))...)
	}

	envSettings, err := auth.GetSettingsFromEnvironment()
	if err != nil {
		return core.Client{}, err
	}
	if s.Subscription == "" {
		s.Subscription = envSettings.GetSubscriptionID()
	}
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return core.Client{}, errors.Wrap(err, "failed to create default credential")
	}
	return core.New(credential, opts...)
}
