package main

import (
	"archive/zip"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rgdias/xlsq/xmltree"
)

// xmlCmd dumps the XML tree of a single entry inside a zip archive.
// Handy for poking at the raw parts of a spreadsheet package.
var xmlCmd = &cobra.Command{
	Use:   "xml archive entry",
	Short: "Dump the XML tree of an entry inside a zip archive",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		zr, err := zip.OpenReader(args[0])
		if err != nil {
			fmt.Println("[✗]", err)
			os.Exit(1)
		}
		defer zr.Close()

		root, err := xmltree.RootAt(&zr.Reader, args[1])
		if err != nil {
			fmt.Println("[✗]", err)
			os.Exit(1)
		}

		xmltree.Dump(os.Stdout, root)
	},
}

func init() {
	rootCmd.AddCommand(xmlCmd)
}
