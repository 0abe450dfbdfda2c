package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shapestone/shape-esl/pkg/esl"
)

func (a *app) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate every event in a stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			dec := esl.NewDecoder(in)
			dec.SetMaxFrameSize(a.cfg.MaxFrameSize)

			ok := color.New(color.FgGreen)
			if !a.cfg.Color {
				ok.DisableColor()
			}

			var count int
			for {
				frame, err := dec.ReadFrame()
				if errors.Is(err, io.EOF) {
					break
				}
				if err == nil {
					err = esl.Validate(string(frame))
				}
				if err != nil {
					slog.Error("invalid event", "event", count+1, "error", err)
					return fmt.Errorf("event %d: %w", count+1, err)
				}
				count++
			}

			_, err = ok.Fprintf(cmd.OutOrStdout(), "ok: %d events\n", count)
			return err
		},
	}
}
