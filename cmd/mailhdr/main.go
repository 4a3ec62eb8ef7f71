package main

import (
	"github.com/spf13/cobra"

	"github.com/cwinters/go-mailheader/cmd/mailhdr/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
