package ui

import (
	"reflect"

	"github.com/vango-dev/setclassname/pkg/classname"
)

// PropsFromStruct derives a property map from a component's props.
//
// Exported scalar fields are kept under their `class:"name"` tag, or the
// field name when untagged. Pointers are followed; a nil pointer becomes
// Null. Fields holding structs, slices, maps, funcs, channels or non-scalar
// interfaces are dropped, as are fields tagged `class:"-"`. Embedded structs
// are flattened. A map[string]any is converted with classname.PropsOf.
func PropsFromStruct(v any) classname.Props {
	if m, ok := v.(map[string]any); ok {
		return classname.PropsOf(m)
	}
	props := classname.Props{}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return props
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return props
	}
	collect(props, rv)
	return props
}

func collect(props classname.Props, rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag := field.Tag.Get("class")
		if tag == "-" {
			continue
		}

		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if field.Anonymous && fv.Kind() == reflect.Struct && tag == "" {
			collect(props, fv)
			continue
		}

		name := field.Name
		if tag != "" {
			name = tag
		}
		if val, ok := scalar(fv); ok {
			props[name] = val
		}
	}
}

func scalar(fv reflect.Value) (classname.Value, bool) {
	switch fv.Kind() {
	case reflect.Pointer:
		if fv.IsNil() {
			return classname.NullValue(), true
		}
		return scalar(fv.Elem())
	case reflect.Interface:
		if fv.IsNil() {
			return classname.Value{}, false
		}
		return scalar(fv.Elem())
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map,
		reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return classname.Value{}, false
	}
	return classname.ValueOf(fv.Interface())
}
