package gocalc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOps(t *testing.T) {
	fns, err := filepath.Glob("testdata/*.calc")
	if err != nil {
		t.Fatal(err)
	}
	if len(fns) == 0 {
		t.Fatal("no testdata")
	}

	for _, fn := range fns {
		t.Log(fn)
		f, err := os.Open(fn)
		if err != nil {
			t.Fatal(err)
		}
		base := strings.TrimSuffix(fn, ".calc")

		var out, errOut bytes.Buffer
		repl := NewRepl(f, DefaultConfig())
		repl.SetOutput(&out, &errOut)
		err = repl.Run()
		f.Close()
		if err != nil {
			b, err2 := os.ReadFile(base + ".err")
			if err2 != nil || err.Error() != strings.TrimSpace(string(b)) {
				t.Errorf("%s: %v", fn, err)
			}
		} else if _, err2 := os.Stat(base + ".err"); err2 == nil {
			t.Errorf("%s: want error but got none", fn)
		}

		b, err := os.ReadFile(base + ".out")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(string(b), out.String()); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", fn, diff)
		}
	}
}

func TestReplReportAndContinue(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.OnError = ReportAndContinue

	var out, errOut bytes.Buffer
	repl := NewRepl(strings.NewReader("1+a\n2+2\n1 2\n\n7\n"), cfg)
	repl.SetOutput(&out, &errOut)
	require.NoError(t, repl.Run())

	assert.Equal(t, "4\n7\n", out.String())
	assert.Equal(t, strings.Join([]string{
		"error: lexical error: invalid character 'a' at position 2",
		"error: grammar error: expected PLUS or MINUS, got NUMBER at position 2",
		"error: grammar error: expected NUMBER, got EOF at position 0",
	}, "\n")+"\n", errOut.String())
}

func TestReplAbort(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	repl := NewRepl(strings.NewReader("3-1\n1+\n5\n"), nil)
	repl.SetOutput(&out, &errOut)
	err := repl.Run()
	assert.True(t, errors.Is(err, ErrGrammar))
	assert.Equal(t, "2\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestReplInteractive(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	repl := NewRepl(strings.NewReader("1+1\n"), nil)
	repl.SetOutput(&out, &errOut)
	repl.Interactive = true
	require.NoError(t, repl.Run())
	assert.Equal(t, "calc> 2\ncalc> \n", out.String())
}

func TestReplPrompt(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Prompt = "> "

	var out, errOut bytes.Buffer
	repl := NewRepl(strings.NewReader("8\n"), cfg)
	repl.SetOutput(&out, &errOut)
	repl.Interactive = true
	require.NoError(t, repl.Run())
	assert.Equal(t, "> 8\n> \n", out.String())
}

func TestReplTrace(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Trace = true

	var out, errOut bytes.Buffer
	repl := NewRepl(strings.NewReader("12+3\n"), cfg)
	repl.SetOutput(&out, &errOut)
	require.NoError(t, repl.Run())

	assert.Equal(t, "15\n", out.String())
	want := `trace: line: |12+3|
trace: token: NUMBER "12"
trace: token: PLUS "+"
trace: token: NUMBER "3"
trace: token: EOF "EOF"
`
	if diff := cmp.Diff(want, errOut.String()); diff != "" {
		t.Error(diff)
	}
}

func TestEvalLineTrim(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"4+4", "4+4\n", "4+4\r\n", "4+4\r"} {
		var out, errOut bytes.Buffer
		repl := NewRepl(strings.NewReader(""), nil)
		repl.SetOutput(&out, &errOut)
		require.NoError(t, repl.EvalLine(line), "%q", line)
		assert.Equal(t, "8\n", out.String(), "%q", line)
	}
}

func TestReplLongLines(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.OnError = ReportAndContinue

	input := strings.Repeat("1+", 40000) + "1\n" +
		strings.Repeat("1", 70000) + "+a\n" +
		"2+2\n" +
		"1+1"

	var out, errOut bytes.Buffer
	repl := NewRepl(strings.NewReader(input), cfg)
	repl.SetOutput(&out, &errOut)
	require.NoError(t, repl.Run())

	assert.Equal(t, "40001\n4\n2\n", out.String())
	assert.Equal(t, "error: lexical error: invalid character 'a' at position 70001\n", errOut.String())
}

func TestReplTraceLexicalError(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Trace = true
	cfg.OnError = ReportAndContinue

	var out, errOut bytes.Buffer
	repl := NewRepl(strings.NewReader("1+a\n"), cfg)
	repl.SetOutput(&out, &errOut)
	require.NoError(t, repl.Run())

	assert.Empty(t, out.String())
	want := `trace: line: |1+a|
trace: token: NUMBER "1"
trace: token: PLUS "+"
trace: token error: lexical error: invalid character 'a' at position 2
error: lexical error: invalid character 'a' at position 2
`
	if diff := cmp.Diff(want, errOut.String()); diff != "" {
		t.Error(diff)
	}
}
