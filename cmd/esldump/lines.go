package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-esl/internal/output"
	"github.com/shapestone/shape-esl/pkg/esl"
)

func (a *app) newLinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lines [file]",
		Short: "Classify the physical lines of one event",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return output.WriteLines(cmd.OutOrStdout(), esl.Classify(string(data)), a.cfg.Color)
		},
	}
}
