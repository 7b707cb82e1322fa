package gocalc

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Repl reads one expression per line and prints its value.
type Repl struct {
	cfg         *Config
	buf         *bufio.Reader
	out         io.Writer
	errOut      io.Writer
	trace       *log.Logger
	Interactive bool
}

func NewRepl(r io.Reader, cfg *Config) *Repl {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Repl{
		cfg:     cfg,
		buf:     bufio.NewReader(r),
		out:     os.Stdout,
		errOut:  os.Stderr,
		trace:   log.New(os.Stderr, "trace: ", 0),
	}
}

// SetOutput redirects results and reported errors. Trace lines go to errOut.
func (r *Repl) SetOutput(out, errOut io.Writer) {
	r.out = out
	r.errOut = errOut
	r.trace.SetOutput(errOut)
}

func trimLine(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

func (r *Repl) traceLine(line string) {
	r.trace.Printf("line: |%s|", line)
	tokens, err := Tokenize(line)
	for _, tok := range tokens {
		r.trace.Printf("token: %v %q", tok.Kind(), tok.String())
	}
	if err != nil {
		r.trace.Printf("token error: %v", err)
	}
}

// EvalLine evaluates a single line and writes its result. Errors are returned
// untouched; the policy is applied by Run.
func (r *Repl) EvalLine(line string) error {
	line = trimLine(line)
	if r.cfg.Trace {
		r.traceLine(line)
	}
	v, err := Eval(line)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, FormatResult(v))
	return nil
}

// Run loops until input is exhausted. Lines have no length limit. With the
// Abort policy the first failing line ends the loop and its error is returned.
func (r *Repl) Run() error {
	for {
		if r.Interactive {
			fmt.Fprint(r.out, r.cfg.Prompt)
		}
		line, readErr := r.buf.ReadString('\n')
		if line == "" && readErr != nil {
			if readErr == io.EOF {
				break
			}
			return readErr
		}
		if err := r.EvalLine(line); err != nil {
			if r.cfg.OnError != ReportAndContinue {
				return err
			}
			fmt.Fprintf(r.errOut, "error: %v\n", err)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return readErr
		}
	}
	if r.Interactive {
		fmt.Fprintln(r.out)
	}
	return nil
}
