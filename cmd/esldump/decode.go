package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/destel/rill"
	"github.com/spf13/cobra"

	"github.com/shapestone/shape-esl/internal/output"
	"github.com/shapestone/shape-esl/pkg/esl"
)

func (a *app) newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode every event in a stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			f, err := output.New(a.cfg.Format, a.cfg.Color)
			if err != nil {
				return err
			}

			dec := esl.NewDecoder(in)
			dec.SetMaxFrameSize(a.cfg.MaxFrameSize)

			var count int
			if a.cfg.Lenient {
				count, err = decodeLenient(dec, f, cmd.OutOrStdout())
			} else {
				count, err = decodeStrict(dec, f, cmd.OutOrStdout())
			}
			slog.Debug("decode finished", "events", count)
			return err
		},
	}
	cmd.Flags().StringVar(&a.format, "format", output.FormatText, "Output format: text, json, pretty, yaml, cbor")
	cmd.Flags().BoolVar(&a.lenient, "lenient", false, "Decode best-effort and log warnings instead of failing")
	return cmd
}

func decodeStrict(dec *esl.Decoder, f output.Formatter, w io.Writer) (int, error) {
	events := dec.Stream()
	defer rill.Drain(events)

	var count int
	for item := range events {
		if item.Error != nil {
			return count, fmt.Errorf("event %d: %w", count+1, item.Error)
		}
		count++
		if err := f.Format(w, item.Value); err != nil {
			return count, fmt.Errorf("failed to write event %d: %w", count, err)
		}
	}
	return count, nil
}

func decodeLenient(dec *esl.Decoder, f output.Formatter, w io.Writer) (int, error) {
	var count int
	for {
		frame, err := dec.ReadFrame()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("event %d: %w", count+1, err)
		}
		count++

		result := esl.ParseLenientBytes(frame)
		for _, warning := range result.Warnings {
			slog.Warn("lenient decode", "event", count, "warning", warning)
		}
		if result.Partial {
			slog.Warn("partial event", "event", count)
		}
		if err := f.Format(w, result.Event); err != nil {
			return count, fmt.Errorf("failed to write event %d: %w", count, err)
		}
	}
}
