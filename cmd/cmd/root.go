package cmd

import (
	"github.com/spf13/cobra"
)

const AppName = "mime-detective"

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: AppName + " - magic-number MIME type detection",
	}

	rootCmd.PersistentFlags().String("config", "", "path to a YAML configuration file")

	rootCmd.AddCommand(DefineDetectCommand())
	rootCmd.AddCommand(DefineScanCommand())
	rootCmd.AddCommand(DefineFormatsCommand())
	rootCmd.AddCommand(DefineOrganizeCommand())
	rootCmd.AddCommand(DefineMountCommand())

	return rootCmd.Execute()
}
