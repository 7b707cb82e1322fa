package gocalc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const DefaultPrompt = "calc> "

// ErrorPolicy decides what the Repl does once a line fails to evaluate.
type ErrorPolicy string

const (
	Abort             ErrorPolicy = "abort"
	ReportAndContinue ErrorPolicy = "report_and_continue"
)

func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch p := ErrorPolicy(s); p {
	case Abort, ReportAndContinue:
		return p, nil
	}
	return "", fmt.Errorf("unknown error policy %q (want %q or %q)", s, Abort, ReportAndContinue)
}

func (p *ErrorPolicy) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseErrorPolicy(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*p = v
	return nil
}

type Config struct {
	Prompt  string      `yaml:"prompt"`
	OnError ErrorPolicy `yaml:"on_error"`
	Trace   bool        `yaml:"trace"`
}

func DefaultConfig() *Config {
	return &Config{
		Prompt:  DefaultPrompt,
		OnError: Abort,
	}
}

// DecodeConfig reads YAML from r on top of the defaults. Unknown keys are an
// error.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}
	return cfg, nil
}

func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	return cfg, nil
}
