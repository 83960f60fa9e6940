package ui

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/setclassname/pkg/classname"
)

// Base is embedded in every component's props.
type Base struct {
	// Class is appended after the resolved classes.
	Class    string           `class:"-"`
	Attrs    templ.Attributes `class:"-"`
	Children templ.Component  `class:"-"`
}

// Kit is a component set bound to one Binder and Config.
type Kit struct {
	binder Binder
	config classname.Config

	button func(ButtonProps) templ.Component
	badge  func(BadgeProps) templ.Component
	card   func(CardProps) templ.Component
	label  func(LabelProps) templ.Component
}

// NewKit wraps every component with binder and cfg.
func NewKit(binder Binder, cfg classname.Config) *Kit {
	return &Kit{
		binder: binder,
		config: cfg,
		button: WithSetClassName(binder, renderButton, cfg),
		badge:  WithSetClassName(binder, renderBadge, cfg),
		card:   WithSetClassName(binder, renderCard, cfg),
		label:  WithSetClassName(binder, renderLabel, cfg),
	}
}

// Button renders a button. An empty variant or size uses the default.
func (k *Kit) Button(p ButtonProps) templ.Component {
	if p.Variant == "" {
		p.Variant = ButtonVariantDefault
	}
	if p.Size == "" {
		p.Size = ButtonSizeDefault
	}
	return k.button(p)
}

// Badge renders an inline badge. An empty variant uses the default.
func (k *Kit) Badge(p BadgeProps) templ.Component {
	if p.Variant == "" {
		p.Variant = BadgeVariantDefault
	}
	return k.badge(p)
}

// Card renders a bordered container.
func (k *Kit) Card(p CardProps) templ.Component { return k.card(p) }

// Label renders a form label.
func (k *Kit) Label(p LabelProps) templ.Component { return k.label(p) }

// Element renders p.Tag (div by default) with p.Conditions resolved against
// the scalar entries of p.Props.
func (k *Kit) Element(p ElementProps) templ.Component {
	tag := p.Tag
	if tag == "" {
		tag = "div"
	}
	setClassName := k.binder.Bind(classname.PropsOf(p.Props), k.config)
	return element(tag, withClass(setClassName(p.Conditions...), p.Class), p.Attrs, p.Children)
}

// is is shorthand for a single-key string predicate.
func is(key, value string) classname.Props {
	return classname.Props{key: classname.String(value)}
}

func attrs(base templ.Attributes, extra templ.Attributes) templ.Attributes {
	if len(extra) == 0 {
		return base
	}
	out := make(templ.Attributes, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
