package ui

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// CN merges class lists, dropping exact duplicates. It is meant for user
// overrides appended after a resolved class string.
func CN(inputs ...string) string {
	seen := make(map[string]struct{})
	classes := make([]string, 0, len(inputs))
	for _, input := range inputs {
		for _, class := range strings.Fields(input) {
			if _, ok := seen[class]; ok {
				continue
			}
			seen[class] = struct{}{}
			classes = append(classes, class)
		}
	}
	return strings.Join(classes, " ")
}

// withClass appends user classes to a resolved class string without
// reflowing it, so debug traces keep their line breaks.
func withClass(resolved, extra string) string {
	extra = CN(extra)
	switch {
	case extra == "":
		return resolved
	case resolved == "":
		return extra
	}
	return resolved + " " + extra
}

// element writes <tag class="..." attrs...>children</tag>.
func element(tag, class string, attrs templ.Attributes, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<")
		b.WriteString(tag)
		if class != "" {
			b.WriteString(` class="`)
			b.WriteString(templ.EscapeString(class))
			b.WriteString(`"`)
		}
		writeAttrs(&b, attrs)
		b.WriteString(">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

func writeAttrs(b *strings.Builder, attrs templ.Attributes) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k == "class" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			if v {
				b.WriteString(" ")
				b.WriteString(templ.EscapeString(k))
			}
		case string:
			b.WriteString(" ")
			b.WriteString(templ.EscapeString(k))
			b.WriteString(`="`)
			b.WriteString(templ.EscapeString(v))
			b.WriteString(`"`)
		}
	}
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Fragment renders components one after another.
func Fragment(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range children {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
