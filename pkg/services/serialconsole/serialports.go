// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package serialconsole

import (
	"context"
	"net/http"

	"github.com/Azure/go-autorest/autorest"

	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

const (
	portsPath = "/subscriptions/{subscriptionId}/resourcegroups/{resourceGroupName}/providers/{resourceProviderNamespace}/{parentResourceType}/{parentResource}/providers/Microsoft.SerialConsole/serialPorts"
	portPath  = portsPath + "/{serialPort}"
)

// Parent identifies the resource that owns a serial port, e.g.
// Parent{"my-rg", "Microsoft.Compute", "virtualMachines", "my-vm"}.
type Parent struct {
	ResourceGroup     string
	ProviderNamespace string
	// Type is the parent resource type, e.g. virtualMachines or virtualMachineScaleSets.
	Type string
	// Name may be a subordinate path such as "my-vmss/virtualMachines/0" and is
	// not escaped.
	Name string
}

// SerialPortsClient manages the serial ports of VMs and VM scale set instances.
type SerialPortsClient struct {
	Client
}

// SerialPortDeleteResponse is 200 when the port was deleted and 204 when it did not exist.
type SerialPortDeleteResponse struct {
	autorest.Response
}

func (p Parent) request(operation, method, path, subscriptionID, serialPort string) core.Request {
	parameters := map[string]string{
		"subscriptionId":            subscriptionID,
		"resourceGroupName":         p.ResourceGroup,
		"resourceProviderNamespace": p.ProviderNamespace,
		"parentResourceType":        p.Type,
	}
	if serialPort != "" {
		parameters["serialPort"] = serialPort
	}
	return core.Request{
		Operation:         operation,
		Method:            method,
		Path:              path,
		PathParameters:    parameters,
		RawPathParameters: map[string]string{"parentResource": p.Name},
	}
}

// List lists all of the configured serial ports for a parent resource. The
// result is not paged.
func (c SerialPortsClient) List(ctx context.Context, subscriptionID string, parent Parent) (result SerialPortListResult, err error) {
	_, err = c.call(ctx, parent.request("serialconsole.SerialPortsClient.List", http.MethodGet, portsPath, subscriptionID, ""),
		core.Into(&result), http.StatusOK)
	return result, err
}

// Get gets the configured settings for a serial port.
func (c SerialPortsClient) Get(ctx context.Context, subscriptionID string, parent Parent, serialPort string) (result SerialPort, err error) {
	_, err = c.call(ctx, parent.request("serialconsole.SerialPortsClient.Get", http.MethodGet, portPath, subscriptionID, serialPort),
		core.Into(&result), http.StatusOK)
	return result, err
}

// Create creates or updates a serial port. The service answers 201 in both cases.
func (c SerialPortsClient) Create(ctx context.Context, subscriptionID string, parent Parent, serialPort string, parameters SerialPort) (result SerialPort, err error) {
	r := parent.request("serialconsole.SerialPortsClient.Create", http.MethodPut, portPath, subscriptionID, serialPort)
	r.Body = parameters
	_, err = c.call(ctx, r, core.Into(&result), http.StatusCreated)
	return result, err
}

// Delete deletes a serial port.
func (c SerialPortsClient) Delete(ctx context.Context, subscriptionID string, parent Parent, serialPort string) (result SerialPortDeleteResponse, err error) {
	result.Response.Response, err = c.call(ctx, parent.request("serialconsole.SerialPortsClient.Delete", http.MethodDelete, portPath, subscriptionID, serialPort),
		nil, http.StatusOK, http.StatusNoContent)
	return result, err
}

// ListBySubscriptions lists all serial ports in a subscription.
func (c SerialPortsClient) ListBySubscriptions(ctx context.Context, subscriptionID string) (result SerialPortListResult, err error) {
	_, err = c.call(ctx, core.Request{
		Operation:      "serialconsole.SerialPortsClient.ListBySubscriptions",
		Method:         http.MethodGet,
		Path:           "/subscriptions/{subscriptionId}/providers/Microsoft.SerialConsole/serialPorts",
		PathParameters: map[string]string{"subscriptionId": subscriptionID},
	}, core.Into(&result), http.StatusOK)
	return result, err
}

// Connect returns a connection string to the serial port of the parent resource.
func (c SerialPortsClient) Connect(ctx context.Context, subscriptionID string, parent Parent, serialPort string) (result SerialPortConnectResult, err error) {
	_, err = c.call(ctx, parent.request("serialconsole.SerialPortsClient.Connect", http.MethodPost, portPath+"/connect", subscriptionID, serialPort),
		core.Into(&result), http.StatusOK)
	return result, err
}
