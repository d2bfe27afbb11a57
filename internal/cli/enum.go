// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue is a string flag restricted to a fixed set; the first option is the default.
type enumValue struct {
	options []string
	value   string
}

var _ pflag.Value = (*enumValue)(nil)

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Set(v string) error {
	if !slices.Contains(e.options, v) {
		return fmt.Errorf("must be one of %s", strings.Join(e.options, ", "))
	}
	e.value = v

	return nil
}

func (e *enumValue) Type() string { return "enum" }

// enumVar registers an enum flag on fs.
func enumVar(fs *pflag.FlagSet, name, short string, options []string, usage string) {
	v := &enumValue{options: options, value: options[0]}
	fs.VarP(v, name, short, fmt.Sprintf("%s (%s)", usage, strings.Join(options, ", ")))
}

// enumGet returns the current value of an enum flag.
func enumGet(fs *pflag.FlagSet, name string) (string, error) {
	f := fs.Lookup(name)
	if f == nil {
		return "", fmt.Errorf("flag %q not defined", name)
	}
	if _, ok := f.Value.(*enumValue); !ok {
		return "", fmt.Errorf("flag %q is not an enum", name)
	}

	return f.Value.String(), nil
}
