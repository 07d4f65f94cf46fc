package main

import (
	"fmt"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rgdias/xlsq"
	"github.com/rgdias/xlsq/progress"
	"github.com/rgdias/xlsq/xlsx"
)

// Flags
var (
	force     bool
	tableName string
	typesFile string
)

// convertCmd loads a spreadsheet into a single sqlite table, column names
// taken from the first row.
var convertCmd = &cobra.Command{
	Use:   "convert [-f] input.xlsx output.db",
	Short: "Convert a spreadsheet into a sqlite database table",
	Long: `Convert creates a sqlite database with a single table whose columns are
named after the first row of the spreadsheet and typed from its values.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := convert(args[0], args[1]); err != nil {
			progress.Error(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite the output database if it exists")
	convertCmd.Flags().StringVarP(&tableName, "table", "t", "", "Table name (defaults to the output file name)")
	convertCmd.Flags().StringVar(&typesFile, "types", "", "YAML file mapping column headers to SQL types")
}

func convert(in, out string) error {
	if force {
		if err := os.Remove(out); err != nil && !os.IsNotExist(err) {
			return err
		}
	} else if _, err := os.Stat(out); err == nil {
		return fmt.Errorf("file already exists at path %s", out)
	}

	overrides := map[string]string{}
	if typesFile == "" {
		typesFile = viper.GetString("types")
	}
	if typesFile != "" {
		var err error
		overrides, err = xlsq.LoadTypeOverrides(typesFile)
		if err != nil {
			return err
		}
	}

	log := xlsq.NewLogger(os.Stderr)

	progress.Running("decoding " + in)
	doc, err := xlsx.Open(in, xlsx.WithLogger(log))
	if err != nil {
		progress.RunFail()
		return err
	}
	progress.RunOK()

	db, err := xlsq.OpenDatabase(out)
	if err != nil {
		return err
	}
	defer db.Close()

	if tableName == "" {
		tableName = xlsq.TableName(out)
	}

	progress.Running("loading table " + tableName)
	n, err := xlsq.Convert(db, doc, tableName, overrides, log)
	if err != nil {
		progress.RunFail()
		return err
	}
	progress.RunOK()

	progress.Status("Inserted %s rows into table '%s'", humanize.Comma(int64(n)), tableName)
	return nil
}
