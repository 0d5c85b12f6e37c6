// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package main

import (
	"os"

	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/Azure/azure-arm-clients-go/pkg/cli"
)

var setupLog = ctrl.Log.WithName("setup")

func main() {
	ctrl.SetLogger(zap.New(func(o *zap.Options) {
		o.Development = true
		o.DestWriter = os.Stderr
	}))

	if err := cli.NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "command failed")
		os.Exit(1)
	}
}
