package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	scribe "github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/editor"
)

type options struct {
	configPath string
	logPath    string
	version    bool
	file       string
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet(scribe.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "config file (default: <user config dir>/scribe/config.toml)")
	fs.StringVar(&o.logPath, "log", os.Getenv("SCRIBE_LOG"), "write debug log to `file`")
	fs.BoolVar(&o.version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] [file]\n", scribe.Name)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 1 {
		return o, fmt.Errorf("usage: %s [flags] [file]", scribe.Name)
	}
	o.file = fs.Arg(0)
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if o.version {
		_, err := fmt.Fprintf(stdout, "%s %s\n", scribe.Name, scribe.VersionTag())
		return err
	}

	if o.logPath != "" {
		f, err := tea.LogToFile(o.logPath, scribe.Name)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	in, out := int(os.Stdin.Fd()), int(os.Stdout.Fd())
	if !term.IsTerminal(in) || !term.IsTerminal(out) {
		return errors.New("scribe: stdin and stdout must be a terminal")
	}
	if w, h, err := term.GetSize(out); err == nil {
		log.Printf("terminal %dx%d", w, h)
	}

	cfgPath := o.configPath
	if cfgPath == "" {
		if p, err := editor.DefaultConfigPath(); err == nil {
			cfgPath = p
		}
	}
	cfg, err := editor.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	log.Printf("config %q loaded", cfgPath)

	p := tea.NewProgram(editor.New(cfg, o.file), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
