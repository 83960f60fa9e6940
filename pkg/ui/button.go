package ui

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/setclassname/pkg/classname"
)

// ButtonVariant selects the button color scheme.
type ButtonVariant string

const (
	ButtonVariantDefault     ButtonVariant = "default"
	ButtonVariantPrimary     ButtonVariant = "primary"
	ButtonVariantDestructive ButtonVariant = "destructive"
	ButtonVariantOutline     ButtonVariant = "outline"
	ButtonVariantSecondary   ButtonVariant = "secondary"
	ButtonVariantGhost       ButtonVariant = "ghost"
	ButtonVariantLink        ButtonVariant = "link"
)

// ButtonSize selects the button height and padding.
type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSm      ButtonSize = "sm"
	ButtonSizeLg      ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

// ButtonProps configures Kit.Button.
type ButtonProps struct {
	Base
	Variant  ButtonVariant `class:"variant"`
	Size     ButtonSize    `class:"size"`
	Disabled bool          `class:"disabled"`
	Type     string        `class:"-"`
}

var buttonClasses = []classname.Condition{
	classname.Use(`
		inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium
		ring-offset-background transition-colors
		focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2
	`),
	classname.When(is("variant", "default"), "bg-primary text-primary-foreground hover:bg-primary/90"),
	classname.When(is("variant", "primary"), "bg-primary text-primary-foreground hover:bg-primary/90"),
	classname.When(is("variant", "destructive"), "bg-destructive text-destructive-foreground hover:bg-destructive/90"),
	classname.When(is("variant", "outline"), "border border-input bg-background hover:bg-accent hover:text-accent-foreground"),
	classname.When(is("variant", "secondary"), "bg-secondary text-secondary-foreground hover:bg-secondary/80"),
	classname.When(is("variant", "ghost"), "hover:bg-accent hover:text-accent-foreground"),
	classname.When(is("variant", "link"), "text-primary underline-offset-4 hover:underline"),
	classname.When(is("size", "default"), "h-10 px-4 py-2"),
	classname.When(is("size", "sm"), "h-9 rounded-md px-3"),
	classname.When(is("size", "lg"), "h-11 rounded-md px-8"),
	classname.When(is("size", "icon"), "h-10 w-10"),
	classname.When(classname.Props{"disabled": classname.Bool(true)}, "pointer-events-none opacity-50"),
}

func renderButton(p ButtonProps, setClassName SetClassName) templ.Component {
	typ := p.Type
	if typ == "" {
		typ = "button"
	}
	return element("button",
		withClass(setClassName(buttonClasses...), p.Class),
		attrs(templ.Attributes{"type": typ, "disabled": p.Disabled}, p.Attrs),
		p.Children,
	)
}
