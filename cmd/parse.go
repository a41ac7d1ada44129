package cmd

import (
	"github.com/bnema/obdlog/internal/adapters/render/report"
	"github.com/spf13/cobra"
)

func newParseCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a session log and show commands, protocol and PID responses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.service.Analyze(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, session)
			}

			return writeRendered(cmd, func() (string, error) { return report.RenderSession(session) })
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the parsed session as JSON")

	return cmd
}

func newPIDsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "pids <file>",
		Short: "List every PID request and its latest response in order of first appearance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.service.Analyze(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			records := session.PIDResponses.Entries()
			if asJSON {
				return writeJSON(cmd, records)
			}

			return writeRendered(cmd, func() (string, error) { return report.RenderPIDs(records) })
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the PID responses as JSON")

	return cmd
}
