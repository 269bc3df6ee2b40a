package inject

import "reflect"

// Structural construction: producing a value for an unbound type by treating
// a struct's composite literal as its sole constructor and resolving each
// field from the container.
//
// Go has no runtime constructor enumeration, so constructor accessibility
// maps onto field accessibility: a struct whose fields are all exported has
// exactly one usable constructor; interfaces, non-struct kinds and structs
// with unexported fields have none.

// construct builds a value of t with every field recursively resolved.
// t may be a struct type or a pointer to one; the field list is re-inspected
// on every call, never cached.
func (c *Container) construct(t reflect.Type) (any, error) {
	elem := t
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return nil, errNoConstructor(t)
	}

	// Accessibility is checked up front: a single unexported field rules
	// the whole literal out before any dependency is resolved.
	for i := 0; i < elem.NumField(); i++ {
		if elem.Field(i).PkgPath != "" {
			return nil, errNoConstructor(t)
		}
	}

	value := reflect.New(elem).Elem()
	for i := 0; i < elem.NumField(); i++ {
		// Fields resolve in declaration order; the first failure aborts
		// the rest and propagates as-is, with no extra wrapping — the
		// failing dependency's own resolution already identified it.
		dep, err := c.MakeType(elem.Field(i).Type)
		if err != nil {
			return nil, err
		}
		value.Field(i).Set(reflect.ValueOf(dep))
	}

	if t.Kind() == reflect.Ptr {
		return value.Addr().Interface(), nil
	}
	return value.Interface(), nil
}

func errNoConstructor(t reflect.Type) error {
	return &InjectionError{Type: t, Reason: "unable to find a valid constructor"}
}
