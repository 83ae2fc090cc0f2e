package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tagresolve/tagresolve/model"
	"github.com/tagresolve/tagresolve/resolver"
)

var (
	resolveSchema string
	resolveType   string
	resolveMethod string
	resolveParams string
	resolveKind   string
)

func init() {
	resolveCmd.Flags().StringVar(&resolveSchema, "schema", "schema.json", "Path to the model schema file")
	resolveCmd.Flags().StringVar(&resolveType, "type", "", "Type to resolve against")
	resolveCmd.Flags().StringVar(&resolveMethod, "method", "", "Method name (resolves on the method instead of the type)")
	resolveCmd.Flags().StringVar(&resolveParams, "params", "", "Comma-separated parameter type names of the method")
	resolveCmd.Flags().StringVar(&resolveKind, "kind", "", "Tag kind to resolve")
	resolveCmd.MarkFlagRequired("type")
	resolveCmd.MarkFlagRequired("kind")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a tag kind for a type or method",
	Long: `Resolve whether a tag kind applies to a type or method, searching
direct tags, meta-tags, implemented interfaces, and the superclass chain.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := model.LoadFile(resolveSchema)
		if err != nil {
			return err
		}
		res := resolver.New(reg)

		t, ok := reg.Type(resolveType)
		if !ok {
			return fmt.Errorf("unknown type: %s", resolveType)
		}
		kind, ok := reg.TagKind(resolveKind)
		if !ok {
			return fmt.Errorf("unknown tag kind: %s", resolveKind)
		}

		var tag *model.Tag
		subject := t.Name
		if resolveMethod != "" {
			ref := &model.Method{Name: resolveMethod, Params: splitParams(resolveParams)}
			m, found := reg.EquivalentMethod(t, ref)
			if !found {
				return fmt.Errorf("unknown method: %s.%s", t.Name, ref.Signature())
			}
			subject = t.Name + "." + m.Signature()
			tag, err = res.ResolveMethodTag(m, kind)
		} else {
			tag, err = res.ResolveTypeTag(t, kind)
		}
		if err != nil {
			return err
		}

		if tag == nil {
			color.Yellow("%s: @%s does not apply", subject, kind.Name)
			return nil
		}

		color.Green("%s: @%s applies", subject, kind.Name)
		for name, value := range tag.Attributes() {
			fmt.Printf("    %s = %v\n", name, value)
		}
		return nil
	},
}

func splitParams(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
