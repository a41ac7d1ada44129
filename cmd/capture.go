package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bnema/obdlog/internal/adapters/render/report"
	"github.com/bnema/obdlog/internal/application"
	"github.com/spf13/cobra"
)

const capturedFileMode = 0o600

func newCaptureCmd(app *app) *cobra.Command {
	var (
		address string
		timeout time.Duration
		outPath string
		raw     bool
	)

	cmd := &cobra.Command{
		Use:   "capture [command...]",
		Short: "Record a live session from an ELM327 Wi-Fi adapter",
		Long: `Connect to an ELM327 Wi-Fi adapter over telnet, reset it with ATZ, send each
command and record the transcript. Without commands a default set of AT
commands and mode 01 PIDs is sent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result application.CaptureResult
			err := runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Connecting to adapter...", func(ctx context.Context, status statusFunc) error {
				service := app.captureService(address, timeout, func(step, total int, command string) {
					status(fmt.Sprintf("Sending %s (%d/%d)", command, step, total))
				})

				var captureErr error
				result, captureErr = service.Capture(ctx, args)
				return captureErr
			})
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(result.Transcript), capturedFileMode); err != nil {
					return fmt.Errorf("write transcript: %w", err)
				}
				app.logger.Info().Str("path", outPath).Msg("transcript written")
			}

			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), result.Transcript)
				return err
			}

			return writeRendered(cmd, func() (string, error) { return report.RenderSession(result.Session) })
		},
	}

	cmd.Flags().StringVar(&address, "addr", "", "Adapter address host:port (default from capture.address)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-command timeout (default from capture.timeout)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the raw transcript to this file")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the raw transcript instead of the session report")

	return cmd
}
