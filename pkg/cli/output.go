// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT license.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sanity-io/litter"
	"sigs.k8s.io/yaml"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
	outputDump  = "dump"
)

func isOutput(format string) bool {
	switch format {
	case outputTable, outputJSON, outputYAML, outputDump:
		return true
	}
	return false
}

// printer renders v in the selected format. header and rows are only used
// for table output.
type printer struct {
	out    io.Writer
	format string
}

func (p printer) print(v interface{}, header []string, rows [][]string) error {
	switch p.format {
	case outputJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.out, string(b))
		return err
	case outputYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = p.out.Write(b)
		return err
	case outputDump:
		_, err := fmt.Fprintln(p.out, litter.Sdump(v))
		return err
	}

	table := tablewriter.NewWriter(p.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.AppendBulk(rows)
	table.Render()
	return nil
}

// state colours a provisioning state: green when done, red when failed.
func state(s *string) string {
	switch v := to.String(s); v {
	case "":
		return ""
	case "Succeeded", "Active", "Completed":
		return color.GreenString("%s", v)
	case "Failed", "Canceled", "Cancelled", "Deleting":
		return color.RedString("%s", v)
	default:
		return color.YellowString("%s", v)
	}
}
