package packages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name            string
		requested       string
		alreadyIncluded []string
		notIncluded     []string
	}{
		{"empty", "", nil, nil},
		{"whitespace only", "  \t ", nil, nil},
		{"all new", "lodash moment", nil, []string{"lodash", "moment"}},
		{"all defaults", "tailwindcss zod", []string{"tailwindcss", "zod"}, nil},
		{"mixed keeps order", "lodash axios dayjs qs", []string{"axios", "qs"}, []string{"lodash", "dayjs"}},
		{"duplicate extras pass through", "lodash lodash", nil, []string{"lodash", "lodash"}},
		{"extra spacing", "  lodash \n\tmoment  ", nil, []string{"lodash", "moment"}},
		{"versioned default is not a member", "zod@3", nil, []string{"zod@3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := Reconcile(Defaults, tt.requested)
			assert.Equal(t, tt.alreadyIncluded, sel.AlreadyIncluded)
			assert.Equal(t, tt.notIncluded, sel.NotIncluded)
		})
	}
}

func TestReconcilePartitionInvariants(t *testing.T) {
	inputs := []string{
		"",
		"lodash moment",
		"tailwindcss zod lodash axios lodash",
		"@scope/pkg react-router react-router-dom postcss",
	}

	for _, in := range inputs {
		sel := Reconcile(Defaults, in)
		tokens := strings.Fields(in)

		assert.Len(t, tokens, len(sel.AlreadyIncluded)+len(sel.NotIncluded), "partition must cover every token of %q", in)
		for _, tok := range sel.NotIncluded {
			assert.NotContains(t, Defaults, tok)
			assert.NotContains(t, sel.AlreadyIncluded, tok)
		}
		for _, tok := range sel.AlreadyIncluded {
			assert.Contains(t, Defaults, tok)
		}
	}
}

func TestSelectionAdditional(t *testing.T) {
	sel := Reconcile(Defaults, "lodash tailwindcss moment")
	assert.Equal(t, "lodash moment", sel.Additional())

	assert.Equal(t, "", Reconcile(Defaults, "").Additional())
}

func TestSelectionRuntimeArgs(t *testing.T) {
	sel := Reconcile(Defaults, "lodash moment")
	args := sel.RuntimeArgs()

	assert.Equal(t, Defaults, args[:len(Defaults)])
	assert.Equal(t, []string{"lodash", "moment"}, args[len(Defaults):])
}

func TestReconcileDoesNotAliasDefaults(t *testing.T) {
	defaults := []string{"a", "b"}
	sel := Reconcile(defaults, "c")
	sel.Defaults[0] = "changed"
	assert.Equal(t, "a", defaults[0])
}

func TestDefaultSetsHaveNoDuplicates(t *testing.T) {
	for name, set := range map[string][]string{"Defaults": Defaults, "DevDefaults": DevDefaults} {
		seen := map[string]bool{}
		for _, p := range set {
			assert.False(t, seen[p], "%s lists %s twice", name, p)
			seen[p] = true
		}
	}
}
