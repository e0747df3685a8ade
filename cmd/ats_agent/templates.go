package main

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [id]",
	Short: "List resume templates or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplates,
}

var (
	templatesCategory string
	templatesFormat   string
)

func init() {
	templatesCmd.Flags().StringVarP(&templatesCategory, "category", "c", catalog.AllCategory, "Only list templates in this category")
	templatesCmd.Flags().StringVarP(&templatesFormat, "format", "f", formatText, "Output format: text or json")

	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	var list []types.Template
	if len(args) == 1 {
		tmpl, ok := catalog.Lookup(args[0])
		if !ok {
			return fmt.Errorf("template not found: %s", args[0])
		}
		if templatesFormat == formatJSON {
			return writeJSON(cmd.OutOrStdout(), tmpl)
		}
		list = []types.Template{tmpl}
	} else {
		if !knownCategory(templatesCategory) {
			return fmt.Errorf("unknown category %q", templatesCategory)
		}
		list = catalog.ByCategory(templatesCategory)
		if templatesFormat == formatJSON {
			return writeJSON(cmd.OutOrStdout(), list)
		}
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintTemplates(list)
	return nil
}

func knownCategory(id string) bool {
	for _, c := range catalog.Categories() {
		if c.ID == id {
			return true
		}
	}
	return false
}
