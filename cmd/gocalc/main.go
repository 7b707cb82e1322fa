package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
)

func newFlagSet(name string, handling flag.ErrorHandling) *flag.FlagSet {
	fs := flag.NewFlagSet(name, handling)
	fs.String("config", "", "path to a YAML config file")
	fs.String("on-error", "", "abort or report_and_continue")
	fs.Bool("trace", false, "log each line and its tokens to stderr")
	fs.String("prompt", gocalc.DefaultPrompt, "interactive prompt")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] [file]\n", name)
		fs.PrintDefaults()
	}
	return fs
}

// applyFlags overrides cfg with the flags that were set explicitly.
func applyFlags(cfg *gocalc.Config, fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.String()
		switch f.Name {
		case "on-error":
			p, perr := gocalc.ParseErrorPolicy(v)
			if perr != nil {
				err = fmt.Errorf("-on-error: %w", perr)
				return
			}
			cfg.OnError = p
		case "trace":
			cfg.Trace = v == "true"
		case "prompt":
			cfg.Prompt = v
		}
	})
	return err
}

func loadConfig(fs *flag.FlagSet) (*gocalc.Config, error) {
	cfg := gocalc.DefaultConfig()
	if path := fs.Lookup("config").Value.String(); path != "" {
		var err error
		cfg, err = gocalc.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}
	if err := applyFlags(cfg, fs); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	fs := newFlagSet(os.Args[0], flag.ExitOnError)
	fs.Parse(os.Args[1:])
	log.SetFlags(0)

	if fs.NArg() > 1 {
		fs.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(fs)
	if err != nil {
		log.Fatal(err)
	}

	f := os.Stdin
	if fs.NArg() == 1 {
		f, err = os.Open(fs.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	repl := gocalc.NewRepl(f, cfg)
	repl.Interactive = fs.NArg() == 0 && isatty.IsTerminal(os.Stdin.Fd())
	if err := repl.Run(); err != nil {
		log.Fatal(err)
	}
}
