package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"medpractice/doctor-dashboard/internal/service"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the seed dataset in the dashboard's import/export format",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			store, err := service.NewStore(service.Options{})
			if err != nil {
				return err
			}
			data, err := store.ExportData()
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			data = append(data, '\n')

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", out, len(data))
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	return cmd
}
