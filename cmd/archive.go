package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bnema/obdlog/internal/adapters/render/report"
	"github.com/bnema/obdlog/internal/application"
	"github.com/bnema/obdlog/internal/domain"
	"github.com/spf13/cobra"
)

func newArchiveCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Store parsed sessions and compare PID responses across them",
	}

	cmd.AddCommand(
		newArchiveIngestCmd(app),
		newArchiveHistoryCmd(app),
	)

	return cmd
}

func newArchiveIngestCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <file>...",
		Short: "Parse session logs and add them to the archive",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			archive, closer, err := app.openArchive(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := closer.Close(); closeErr != nil {
					err = errors.Join(err, fmt.Errorf("close archive: %w", closeErr))
				}
			}()

			sessions := make([]domain.ArchivedSession, 0, len(args))
			err = runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Opening archive...", func(ctx context.Context, status statusFunc) error {
				for i, path := range args {
					status(fmt.Sprintf("Archiving %s (%d/%d)", filepath.Base(path), i+1, len(args)))
					session, err := archive.Ingest(ctx, path)
					if err != nil {
						return err
					}
					sessions = append(sessions, session)
				}
				return nil
			})
			if err != nil {
				return err
			}

			for i, session := range sessions {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d responses\n", session.ID, args[i], len(session.Responses)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newArchiveHistoryCmd(app *app) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history <pid>",
		Short: "Show archived responses to a PID request, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			archive, closer, err := app.openArchive(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := closer.Close(); closeErr != nil {
					err = errors.Join(err, fmt.Errorf("close archive: %w", closeErr))
				}
			}()

			history, err := archive.History(cmd.Context(), application.HistoryQuery{PID: args[0], Limit: limit})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, history)
			}

			return writeRendered(cmd, func() (string, error) { return report.RenderHistory(args[0], history) })
		},
	}

	cmd.Flags().IntVar(&limit, "limit", application.DefaultHistoryLimit, "Maximum number of responses to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print history as JSON")

	return cmd
}
