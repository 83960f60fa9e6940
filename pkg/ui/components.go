package ui

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/setclassname/pkg/classname"
)

// BadgeVariant selects the badge color scheme.
type BadgeVariant string

const (
	BadgeVariantDefault     BadgeVariant = "default"
	BadgeVariantSecondary   BadgeVariant = "secondary"
	BadgeVariantDestructive BadgeVariant = "destructive"
	BadgeVariantOutline     BadgeVariant = "outline"
)

// BadgeProps configures Kit.Badge.
type BadgeProps struct {
	Base
	Variant BadgeVariant `class:"variant"`
}

var badgeClasses = []classname.Condition{
	classname.Use("inline-flex items-center rounded-full border px-2.5 py-0.5 text-xs font-semibold transition-colors"),
	classname.When(is("variant", "default"), "border-transparent bg-primary text-primary-foreground"),
	classname.When(is("variant", "secondary"), "border-transparent bg-secondary text-secondary-foreground"),
	classname.When(is("variant", "destructive"), "border-transparent bg-destructive text-destructive-foreground"),
	classname.When(is("variant", "outline"), "text-foreground"),
}

func renderBadge(p BadgeProps, setClassName SetClassName) templ.Component {
	return element("span", withClass(setClassName(badgeClasses...), p.Class), p.Attrs, p.Children)
}

// CardProps configures Kit.Card.
type CardProps struct {
	Base
	Elevated bool `class:"elevated"`
	Compact  bool `class:"compact"`
}

var cardClasses = []classname.Condition{
	classname.Use("rounded-lg border bg-card text-card-foreground"),
	classname.When(classname.Props{"elevated": classname.Bool(true)}, "shadow-md"),
	classname.When(classname.Props{"elevated": classname.Bool(false)}, "shadow-sm"),
	classname.When(classname.Props{"compact": classname.Bool(true)}, "p-3"),
	classname.When(classname.Props{"compact": classname.Bool(false)}, "p-6"),
}

func renderCard(p CardProps, setClassName SetClassName) templ.Component {
	return element("div", withClass(setClassName(cardClasses...), p.Class), p.Attrs, p.Children)
}

// LabelProps configures Kit.Label. For is rendered as the for attribute.
type LabelProps struct {
	Base
	For      string `class:"-"`
	Disabled bool   `class:"disabled"`
}

var labelClasses = []classname.Condition{
	classname.Use("text-sm font-medium leading-none"),
	classname.When(classname.Props{"disabled": classname.Bool(true)}, "cursor-not-allowed opacity-70"),
}

func renderLabel(p LabelProps, setClassName SetClassName) templ.Component {
	a := templ.Attributes{}
	if p.For != "" {
		a["for"] = p.For
	}
	return element("label", withClass(setClassName(labelClasses...), p.Class), attrs(a, p.Attrs), p.Children)
}

// ElementProps renders an arbitrary tag whose classes come from Conditions
// evaluated against Props.
type ElementProps struct {
	Base
	Tag        string
	Props      map[string]any
	Conditions []classname.Condition
}
