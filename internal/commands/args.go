package commands

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Verb arguments are declared as structs and filled positionally:
//
//	Count int `form:"count" title:"count" optional:"true" default:"2" validate:"min=1,max=999"`
//
// Fields without a form tag are ignored. Extra tokens are ignored.

type themeArgs struct {
	Name string `form:"name" title:"theme" optional:"true"`
}

type animateArgs struct {
	Season string `form:"season" title:"season" optional:"true"`
}

type upgradeArgs struct {
	Count int `form:"count" title:"count" optional:"true" validate:"min=1,max=999"`
}

type exportArgs struct {
	Target string `form:"target" title:"target" optional:"true" default:"csv"`
}

type soundArgs struct {
	Name string `form:"name" title:"sound theme" optional:"true"`
}

// ParseArgs populates the struct pointed to by dest from positional tokens.
// Optional fields without a token take their default tag, if any.
func ParseArgs(dest any, args []string) error {
	val := reflect.ValueOf(dest)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("args must be a pointer to struct")
	}
	val = val.Elem()
	typ := val.Type()

	next := 0
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Tag.Get("form") == "" {
			continue
		}
		title := field.Tag.Get("title")
		if title == "" {
			title = field.Name
		}

		var raw string
		switch {
		case next < len(args):
			raw = args[next]
			next++
		case field.Tag.Get("optional") == "true":
			raw = field.Tag.Get("default")
			if raw == "" {
				continue
			}
		default:
			return fmt.Errorf("missing required argument: %s", title)
		}

		if err := setFieldValue(val.Field(i), raw); err != nil {
			return fmt.Errorf("invalid value for %s: %w", title, err)
		}
		if rules := field.Tag.Get("validate"); rules != "" {
			if err := validateField(val.Field(i), rules); err != nil {
				return fmt.Errorf("invalid value for %s: %w", title, err)
			}
		}
	}

	return nil
}

// ArgPattern renders the argument list for help text, e.g. " [count]".
func ArgPattern(args any) string {
	if args == nil {
		return ""
	}
	typ := reflect.TypeOf(args)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	var b strings.Builder
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		name := field.Tag.Get("form")
		if name == "" {
			continue
		}
		if field.Tag.Get("optional") == "true" {
			fmt.Fprintf(&b, " [%s]", name)
		} else {
			fmt.Fprintf(&b, " <%s>", name)
		}
	}
	return b.String()
}

func setFieldValue(fieldVal reflect.Value, value string) error {
	switch fieldVal.Kind() {
	case reflect.String:
		fieldVal.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("must be an integer")
		}
		fieldVal.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("must be true or false")
		}
		fieldVal.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type: %s", fieldVal.Kind())
	}
	return nil
}

// validateField supports min= and max= on integer fields.
func validateField(fieldVal reflect.Value, rules string) error {
	if !fieldVal.CanInt() {
		return nil
	}
	for _, rule := range strings.Split(rules, ",") {
		name, arg, ok := strings.Cut(strings.TrimSpace(rule), "=")
		if !ok {
			continue
		}
		limit, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			continue
		}
		switch name {
		case "min":
			if fieldVal.Int() < limit {
				return fmt.Errorf("must be >= %d", limit)
			}
		case "max":
			if fieldVal.Int() > limit {
				return fmt.Errorf("must be <= %d", limit)
			}
		}
	}
	return nil
}
