// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package serialconsole

import (
	"github.com/Azure/azure-arm-clients-go/pkg/core"
)

// SerialPortState enumerates the states of a serial port.
type SerialPortState string

const (
	Disabled SerialPortState = "disabled"
	Enabled  SerialPortState = "enabled"
)

// PossibleSerialPortStateValues returns an array of possible values for the SerialPortState const type.
func PossibleSerialPortStateValues() []SerialPortState {
	return []SerialPortState{Disabled, Enabled}
}

func (v SerialPortState) IsKnown() bool { return core.IsKnown(v, PossibleSerialPortStateValues()) }

// SerialConsoleOperations - Serial Console operations.
type SerialConsoleOperations struct {
	Value []SerialConsoleOperationsValue `json:"value,omitempty"`
}

// SerialConsoleOperationsValue - A Serial Console operation.
type SerialConsoleOperationsValue struct {
	Name *string `json:"name,omitempty"`
	// IsDataAction is sent by the service as a string.
	IsDataAction *string                              `json:"isDataAction,omitempty"`
	Display      *SerialConsoleOperationsValueDisplay `json:"display,omitempty"`
}

type SerialConsoleOperationsValueDisplay struct {
	Provider    *string `json:"provider,omitempty"`
	Resource    *string `json:"resource,omitempty"`
	Operation   *string `json:"operation,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SerialConsoleProperties - The properties of the serial console service.
type SerialConsoleProperties struct {
	// Disabled - Whether or not Serial Console is disabled.
	Disabled *bool `json:"disabled,omitempty"`
}

// SerialConsoleStatus - Returns whether or not Serial Console is disabled.
type SerialConsoleStatus struct {
	Properties *SerialConsoleProperties `json:"properties,omitempty"`
}

// DisableSerialConsoleResult - Returns whether or not Serial Console is disabled.
type DisableSerialConsoleResult struct {
	Properties *SerialConsoleProperties `json:"properties,omitempty"`
}

// EnableSerialConsoleResult - Returns whether or not Serial Console is disabled (enabled).
type EnableSerialConsoleResult struct {
	Properties *SerialConsoleProperties `json:"properties,omitempty"`
}

// GetSerialConsoleSubscriptionNotFound is the error body returned when the
// subscription is unknown to the serial console service.
type GetSerialConsoleSubscriptionNotFound struct {
	Code    *string `json:"code,omitempty"`
	Message *string `json:"message,omitempty"`
}

// SerialPort - Represents the serial port of the parent resource.
type SerialPort struct {
	core.ProxyResource
	Properties *SerialPortProperties `json:"properties,omitempty"`
}

// SerialPortProperties - The properties of the serial port.
type SerialPortProperties struct {
	// State - Specifies whether the port is enabled for a serial console connection.
	State SerialPortState `json:"state,omitempty"`
}

// SerialPortListResult - The list serial ports operation response. It is not paged.
type SerialPortListResult struct {
	Value []SerialPort `json:"value,omitempty"`
}

// SerialPortConnectResult - Returns a connection string to the serial port of the resource.
type SerialPortConnectResult struct {
	// ConnectionString - Connection string to the serial port of the resource.
	ConnectionString *string `json:"connectionString,omitempty"`
}
