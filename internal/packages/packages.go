package packages

import (
	"slices"
	"strings"
)

// Defaults is the runtime dependency set installed into every project.
var Defaults = []string{
	"tailwindcss",
	"postcss",
	"autoprefixer",
	"@tanstack/react-query",
	"axios",
	"react-router",
	"react-router-dom",
	"@tailwindcss/vite",
	"zod",
	"qs",
}

// DevDefaults is the development dependency set. It does not depend on user input.
var DevDefaults = []string{
	"vitest",
	"jsdom",
	"test-utils",
	"@testing-library/dom",
	"@testing-library/react",
	"@testing-library/jest-dom",
	"@testing-library/user-event",
	"@types/qs",
	"@vitejs/plugin-react",
}

// Selection is the outcome of reconciling requested packages against a
// default set. It is not modified after Reconcile returns.
type Selection struct {
	Defaults        []string
	Requested       []string
	AlreadyIncluded []string
	NotIncluded     []string
}

// Reconcile splits requested on whitespace and partitions the tokens into
// those already in defaults and those that are not. Input order is kept and
// repeated extras are passed through as-is.
func Reconcile(defaults []string, requested string) Selection {
	set := make(map[string]struct{}, len(defaults))
	for _, d := range defaults {
		set[d] = struct{}{}
	}

	sel := Selection{
		Defaults:  slices.Clone(defaults),
		Requested: strings.Fields(requested),
	}
	for _, tok := range sel.Requested {
		if _, ok := set[tok]; ok {
			sel.AlreadyIncluded = append(sel.AlreadyIncluded, tok)
			continue
		}
		sel.NotIncluded = append(sel.NotIncluded, tok)
	}
	return sel
}

// Additional returns the packages to pass to the installer beyond the
// defaults, space-joined.
func (s Selection) Additional() string {
	return strings.Join(s.NotIncluded, " ")
}

// RuntimeArgs returns the full runtime install list: defaults first, then
// the additional packages.
func (s Selection) RuntimeArgs() []string {
	out := make([]string, 0, len(s.Defaults)+len(s.NotIncluded))
	out = append(out, s.Defaults...)
	return append(out, s.NotIncluded...)
}
