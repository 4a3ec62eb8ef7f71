package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwinters/go-mailheader/header"
)

var showCmd = &cobra.Command{
	Use:   "show [header-file]",
	Short: "Parse a header block and print its structured form",
	Long: `Reads a raw message header block from the given file, or from standard
input when no file is given, and prints each header's primary value and
parameters along with the resolved date and address lists.`,
	Args: cobra.MaximumNArgs(1),
	Run:  RunShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func RunShow(cmd *cobra.Command, args []string) {
	in := os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			panic(err)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		panic(err)
	}

	h := header.Parse(string(raw))

	for _, name := range h.Names() {
		v := h.Get(name)
		fmt.Printf("%s: %s\n", name, v.Value())
		for _, p := range v.Parameters().Keys() {
			if p == "" {
				continue
			}
			fmt.Printf("    %s=%s\n", p, v.Parameters().Get(p))
		}
	}

	if d := h.GetDate(); !d.IsZero() {
		fmt.Printf("\ndate: %s\n", d)
	}
	if b := h.GetBoundary(); b != "" {
		fmt.Printf("boundary: %s\n", b)
	}
	for _, name := range []string{header.From, header.To, header.Cc} {
		for _, a := range h.GetAddresses(name) {
			fmt.Printf("%s address: %s\n", name, a.Address())
		}
	}
}
