package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "obdlog",
		Short:         "obdlog: inspect ELM327 session logs and decode PID payloads",
		Long:          "obdlog parses OBD-II adapter transcripts, evaluates byte expressions against PID responses, keeps a library of formulas and archives sessions for later comparison.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newParseCmd(app),
		newPIDsCmd(app),
		newEvalCmd(app),
		newFormulaCmd(app),
		newArchiveCmd(app),
		newCaptureCmd(app),
	)

	return rootCmd
}
