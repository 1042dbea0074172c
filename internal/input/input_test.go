package input

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Request
	}{
		{"no args", nil, Request{}},
		{"name only", []string{"test-project"}, Request{Name: "test-project"}},
		{"name and packages", []string{"test-project", "lodash", "moment"}, Request{Name: "test-project", Packages: "lodash moment"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromArgs(tt.args))
		})
	}
}

func TestInteractive(t *testing.T) {
	in := strings.NewReader("test-project\nlodash moment\n")
	var out bytes.Buffer

	req, err := Interactive(in, &out)
	require.NoError(t, err)

	assert.Equal(t, Request{Name: "test-project", Packages: "lodash moment"}, req)
	assert.Equal(t, NamePrompt+PackagesPrompt, out.String())
}

func TestInteractiveTrimsAndToleratesCRLF(t *testing.T) {
	in := strings.NewReader("  my-app \r\n  zod  \r\n")

	req, err := Interactive(in, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "my-app", req.Name)
	assert.Equal(t, "zod", req.Packages)
}

func TestInteractiveEOFDegradesToEmpty(t *testing.T) {
	t.Run("no input at all", func(t *testing.T) {
		req, err := Interactive(strings.NewReader(""), io.Discard)
		require.NoError(t, err)
		assert.Equal(t, Request{}, req)
	})

	t.Run("name without trailing newline", func(t *testing.T) {
		req, err := Interactive(strings.NewReader("solo"), io.Discard)
		require.NoError(t, err)
		assert.Equal(t, Request{Name: "solo"}, req)
	})
}

// stepReader serves its lines in order and records what had been written to
// out each time it starts serving a new line, so the test can observe that
// the second prompt is only written after the first answer was consumed.
type stepReader struct {
	lines []string
	cur   string
	out   *bytes.Buffer
	seen  []string
}

func (s *stepReader) Read(p []byte) (int, error) {
	if s.cur == "" {
		if len(s.lines) == 0 {
			return 0, io.EOF
		}
		s.seen = append(s.seen, s.out.String())
		s.cur, s.lines = s.lines[0], s.lines[1:]
	}
	n := copy(p, s.cur)
	s.cur = s.cur[n:]
	return n, nil
}

func TestInteractiveAsksSequentially(t *testing.T) {
	var out bytes.Buffer
	r := &stepReader{lines: []string{"first\n", "second\n"}, out: &out}

	req, err := Interactive(r, &out)
	require.NoError(t, err)

	assert.Equal(t, Request{Name: "first", Packages: "second"}, req)
	require.Len(t, r.seen, 2)
	assert.Equal(t, NamePrompt, r.seen[0])
	assert.Equal(t, NamePrompt+PackagesPrompt, r.seen[1])
}

func TestInteractiveLeavesGeneratorInput(t *testing.T) {
	in := strings.NewReader("app\nlodash\ny\n")

	req, err := Interactive(in, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Request{Name: "app", Packages: "lodash"}, req)

	rest, err := io.ReadAll(in)
	require.NoError(t, err)
	assert.Equal(t, "y\n", string(rest))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestInteractiveReadError(t *testing.T) {
	_, err := Interactive(failingReader{}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading project name")
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("interactive")
	require.NoError(t, err)
	assert.Equal(t, ModeInteractive, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeArgs, m)

	_, err = ParseMode("gui")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	req, err := Resolve(ModeArgs, []string{"a", "b"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Request{Name: "a", Packages: "b"}, req)

	req, err = Resolve(ModeInteractive, nil, strings.NewReader("x\ny z\n"), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Request{Name: "x", Packages: "y z"}, req)
}
