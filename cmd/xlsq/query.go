package main

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/rgdias/xlsq/xlsx"
)

// Flags
var (
	namesHeader string
	defsHeader  string
)

// queryCmd treats the spreadsheet as a dictionary: one column holds the
// keys, another the definitions, and the user looks keys up interactively.
var queryCmd = &cobra.Command{
	Use:   "query file.xlsx",
	Short: "Interactively look up rows by a key column",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := query(args[0]); err != nil {
			fmt.Println("[✗]", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVarP(&namesHeader, "names", "n", "", "Header of the key column")
	queryCmd.Flags().StringVarP(&defsHeader, "defs", "d", "", "Header of the definition column")
}

func query(path string) error {
	doc, err := xlsx.Open(path)
	if err != nil {
		return err
	}
	if doc.Rows() < 2 {
		return fmt.Errorf("document %s has no data rows", path)
	}

	headers := make([]string, doc.Cols())
	for col, cell := range doc.Row(0) {
		headers[col] = doc.Str(&cell)
	}

	names := findColumn(headers, namesHeader, "Select the key column")
	defs := findColumn(headers, defsHeader, "Select the definition column")
	if names < 0 || defs < 0 {
		return fmt.Errorf("missing names or definitions column")
	}

	prompt := promptui.Prompt{Label: "Query"}
	for {
		term, err := prompt.Run()
		if err != nil {
			// Ctrl-C or EOF ends the session.
			return nil
		}

		if !lookup(doc, term, names, defs) {
			fmt.Println("No records found.")
		}
	}
}

// lookup prints every row whose key column equals term. Reports whether
// anything matched.
func lookup(doc *xlsx.Document, term string, names, defs int) bool {
	matches := 0

	doc.IterCol(names, func(c *xlsx.Cell, row int) bool {
		if row == 0 || doc.Str(c) != term {
			return true
		}
		matches++

		fmt.Printf("Found '%s' at row %d.\n", term, row+1)
		def := &doc.Row(row)[defs]
		if def.Type != xlsx.TypeNull {
			fmt.Printf("Definition %d:\n%s\n", matches, doc.Str(def))
		}
		return true
	})

	return matches > 0
}
