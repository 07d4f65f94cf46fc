package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rgdias/xlsq/xlsx"
)

// dumpCmd prints the decoded grid of a document.
var dumpCmd = &cobra.Command{
	Use:   "dump file.xlsx",
	Short: "Print the decoded data grid of a spreadsheet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := xlsx.Open(args[0])
		if err != nil {
			fmt.Println("[✗]", err)
			os.Exit(1)
		}

		fmt.Printf("%4s", "")
		for i := 0; i < doc.Cols(); i++ {
			fmt.Printf("%13s%03d", "C", i)
		}
		fmt.Println()

		doc.ForEachRow(func(row []xlsx.Cell, n int) bool {
			fmt.Printf("R%03d", n)

			for col := range row {
				value := &row[col]

				switch value.Type {
				case xlsx.TypeNull:
					fmt.Printf("%16s", "")
				case xlsx.TypeSharedRef:
					fmt.Printf("%16s", doc.Str(value))
				case xlsx.TypeInt:
					fmt.Printf("%16d", value.Int)
				case xlsx.TypeFloat:
					fmt.Printf("%16f", value.Float)
				case xlsx.TypeLiteral:
					fmt.Printf("%16s", value.Str)
				}
			}

			fmt.Println()
			return true
		})
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
