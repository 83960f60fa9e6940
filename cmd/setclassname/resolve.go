package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/setclassname/internal/recipe"
	"github.com/vango-dev/setclassname/pkg/classname"
)

// ErrBadProp is returned for a property argument without "=".
var ErrBadProp = errors.New("property must be key=value")

func newResolveCmd() *cobra.Command {
	var (
		props     []string
		prefix    string
		debug     bool
		recipes   string
		component string
	)

	cmd := &cobra.Command{
		Use:   "resolve [flags] CONDITION...",
		Short: "Print the class string for a list of conditions",
		Long: `Print the class string for a list of conditions.

A condition is either plain class text, or a predicate and class text
separated by the first colon, where the predicate is a comma-separated
list of key=value pairs:

  setclassname resolve --prop variant=primary \
    "inline-flex items-center" \
    "variant=primary:bg-primary hover:bg-primary/90"

Values are typed: true/false are booleans, null is null, numbers are
numbers, and anything else is a string.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseProps(props)
			if err != nil {
				return err
			}

			var conds []classname.Condition
			if recipes != "" {
				set, err := recipe.Load(recipes)
				if err != nil {
					return err
				}
				c, err := set.Get(component)
				if err != nil {
					return err
				}
				conds = append(conds, c.Conditions...)
			}
			for _, arg := range args {
				c, err := parseCondition(arg)
				if err != nil {
					return err
				}
				conds = append(conds, c)
			}

			r := classname.NewCache().Resolver(p, classname.Config{Prefix: prefix, Debug: debug})
			fmt.Fprintln(cmd.OutOrStdout(), r.Resolve(conds))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&props, "prop", "p", nil, "property as key=value (repeatable)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix applied to base class names")
	cmd.Flags().BoolVar(&debug, "debug", false, "print the annotated trace instead of the class string")
	cmd.Flags().StringVar(&recipes, "recipes", "", "recipe file to take conditions from")
	cmd.Flags().StringVar(&component, "component", "", "component name within --recipes")
	cmd.MarkFlagsRequiredTogether("recipes", "component")

	return cmd
}

func parseProps(pairs []string) (classname.Props, error) {
	props := make(classname.Props, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadProp, pair)
		}
		props[key] = classname.ParseValue(value)
	}
	return props, nil
}

// parseCondition reads "text" or "k=v,k2=v2:text". Text before the first
// colon is only treated as a predicate when it contains '=', so variant
// classes such as "hover:bar" stay literal.
func parseCondition(arg string) (classname.Condition, error) {
	head, text, ok := strings.Cut(arg, ":")
	if !ok || !strings.Contains(head, "=") {
		return classname.Use(arg), nil
	}

	when, err := parseProps(strings.Split(head, ","))
	if err != nil {
		return classname.Condition{}, err
	}
	return classname.When(when, text), nil
}
