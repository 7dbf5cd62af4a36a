package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vearutop/cheese"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file.cheese]",
	Short: "Print and validate a CHEESE container header",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	h, err := cheese.ParseHeader(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", h.Width, h.Height)
	fmt.Fprintf(out, "File size:  %d bytes\n", len(data))

	expected, err := h.PayloadLen()
	if err != nil {
		fmt.Fprintf(out, "Payload:    invalid: %v\n", err)

		return err
	}

	fmt.Fprintf(out, "Payload:    %d bytes at offset %d (expected %d)\n",
		len(data)-cheese.PayloadOffset, cheese.PayloadOffset, expected)

	if _, err := cheese.DecodeContainer(data, 0); err != nil {
		fmt.Fprintf(out, "Status:     invalid: %v\n", err)

		return err
	}

	fmt.Fprintln(out, "Status:     ok")

	return nil
}
