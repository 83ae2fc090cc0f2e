package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tagresolve/tagresolve/model"
)

var typesSchema string

func init() {
	typesCmd.Flags().StringVar(&typesSchema, "schema", "schema.json", "Path to the model schema file")
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the types declared in a model schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := model.LoadFile(typesSchema)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		for _, t := range reg.Types() {
			bold.Printf("%s", t.Name)
			faint.Printf("  (%s)", t.Kind)
			if t.Super != nil {
				faint.Printf("  extends %s", t.Super.Name)
			}
			fmt.Println()
			for _, tg := range t.Tags {
				fmt.Printf("    @%s\n", tg.Kind)
			}
			for _, m := range t.Methods {
				fmt.Printf("    %s\n", m.Signature())
				for _, tg := range m.Tags {
					fmt.Printf("        @%s\n", tg.Kind)
				}
			}
		}
		return nil
	},
}
