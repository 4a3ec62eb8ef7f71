package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "mailhdr",
	Short: "Tools for inspecting parsed message headers",
}

func Execute() error {
	return rootCmd.Execute()
}
