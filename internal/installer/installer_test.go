package installer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jjarrett21/kitchensink/internal/packages"
	"github.com/jjarrett21/kitchensink/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupManager(t *testing.T) {
	m, err := LookupManager("")
	require.NoError(t, err)
	assert.Equal(t, "npm", m.Name)

	m, err = LookupManager("bun")
	require.NoError(t, err)
	assert.Equal(t, []string{"add", "-d"}, m.AddDev)

	_, err = LookupManager("pip")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pip")
}

func TestManagerNames(t *testing.T) {
	assert.Equal(t, []string{"bun", "npm", "pnpm", "yarn"}, ManagerNames())
}

func TestInstallOrderAndArgs(t *testing.T) {
	rec := &runner.Recorder{}
	inst, err := New(rec, "npm")
	require.NoError(t, err)

	sel := packages.Reconcile(packages.Defaults, "lodash moment")
	require.NoError(t, inst.Install(context.Background(), "/work/test-project", sel))

	calls := rec.Calls()
	require.Len(t, calls, 2)

	assert.Equal(t,
		"npm install tailwindcss postcss autoprefixer @tanstack/react-query axios react-router react-router-dom @tailwindcss/vite zod qs lodash moment",
		calls[0].CommandLine())
	assert.Equal(t,
		"npm install -D vitest jsdom test-utils @testing-library/dom @testing-library/react @testing-library/jest-dom @testing-library/user-event @types/qs @vitejs/plugin-react",
		calls[1].CommandLine())

	for _, c := range calls {
		assert.Equal(t, "/work/test-project", c.Dir)
	}
}

func TestInstallExtrasAppearOnce(t *testing.T) {
	rec := &runner.Recorder{}
	inst, err := New(rec, "")
	require.NoError(t, err)

	sel := packages.Reconcile(packages.Defaults, "tailwindcss lodash zod")
	require.NoError(t, inst.Install(context.Background(), "/p", sel))

	args := rec.Calls()[0].Args
	assert.Equal(t, 1, count(args, "tailwindcss"))
	assert.Equal(t, 1, count(args, "zod"))
	assert.Equal(t, 1, count(args, "lodash"))
}

func TestInstallWithPnpm(t *testing.T) {
	rec := &runner.Recorder{}
	inst, err := New(rec, "pnpm")
	require.NoError(t, err)

	require.NoError(t, inst.Install(context.Background(), "/p", packages.Reconcile(packages.Defaults, "")))

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.True(t, strings.HasPrefix(calls[0].CommandLine(), "pnpm add tailwindcss"))
	assert.True(t, strings.HasPrefix(calls[1].CommandLine(), "pnpm add -D vitest"))
}

func TestInstallRuntimeFailureSkipsDev(t *testing.T) {
	rec := &runner.Recorder{FailAt: 1}
	inst, err := New(rec, "npm")
	require.NoError(t, err)

	err = inst.Install(context.Background(), "/p", packages.Reconcile(packages.Defaults, ""))
	require.Error(t, err)

	var exitErr *runner.ExitError
	assert.True(t, errors.As(err, &exitErr))
	assert.Contains(t, err.Error(), "runtime dependencies")
	assert.Len(t, rec.Calls(), 1)
}

func TestInstallDevFailure(t *testing.T) {
	rec := &runner.Recorder{FailAt: 2}
	inst, err := New(rec, "npm")
	require.NoError(t, err)

	err = inst.Install(context.Background(), "/p", packages.Reconcile(packages.Defaults, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "development dependencies")
	assert.Len(t, rec.Calls(), 2)
}

func count(list []string, s string) int {
	n := 0
	for _, v := range list {
		if v == s {
			n++
		}
	}
	return n
}
