package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tagresolve/tagresolve/model"
	"github.com/tagresolve/tagresolve/resolver"
)

var (
	declaringSchema string
	declaringType   string
	declaringKinds  []string
)

func init() {
	declaringCmd.Flags().StringVar(&declaringSchema, "schema", "schema.json", "Path to the model schema file")
	declaringCmd.Flags().StringVar(&declaringType, "type", "", "Type whose hierarchy to search")
	declaringCmd.Flags().StringSliceVar(&declaringKinds, "kind", nil, "Tag kind to locate (repeatable; tested in order)")
	declaringCmd.MarkFlagRequired("type")
	declaringCmd.MarkFlagRequired("kind")
}

var declaringCmd = &cobra.Command{
	Use:   "declaring",
	Short: "Find the class in a hierarchy that locally declares a tag kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := model.LoadFile(declaringSchema)
		if err != nil {
			return err
		}
		res := resolver.New(reg)

		t, ok := reg.Type(declaringType)
		if !ok {
			return fmt.Errorf("unknown type: %s", declaringType)
		}
		kinds := make([]*model.Type, 0, len(declaringKinds))
		for _, name := range declaringKinds {
			kind, found := reg.TagKind(name)
			if !found {
				return fmt.Errorf("unknown tag kind: %s", name)
			}
			kinds = append(kinds, kind)
		}

		declaring, err := res.DeclaringClassForAny(kinds, t)
		if err != nil {
			return err
		}
		if declaring == nil {
			color.Yellow("no class in the hierarchy of %s declares the requested kinds", t.Name)
			return nil
		}
		color.Green("declared by %s", declaring.Name)
		return nil
	},
}
