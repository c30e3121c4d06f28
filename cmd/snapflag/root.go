package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dzonerzy/go-snapflag/internal/schemafile"
	snapio "github.com/dzonerzy/go-snapflag/io"
	"github.com/dzonerzy/go-snapflag/snapflag"
)

// schemaEnvVar names the schema file used when neither --schema nor --flags is given
const schemaEnvVar = "SNAPFLAG_SCHEMA"

type cli struct {
	io     *snapio.IOManager
	log    *snapio.Logger
	exits  *snapflag.ExitCodeManager
	getenv func(string) string

	schemaPath string
	inline     string
	noColor    bool
	verbose    bool
	logTime    string
}

func newCLI(stdout, stderr io.Writer, getenv func(string) string) *cli {
	m := snapio.New().WithOut(stdout).WithErr(stderr)
	return &cli{
		io:     m,
		log:    snapio.NewLogger(m),
		exits:  snapflag.NewExitCodeManager(),
		getenv: getenv,
	}
}

// run executes the command tree and returns the process exit code
func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	c := newCLI(stdout, stderr, getenv)
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil {
		c.report(err)
	}
	return c.exits.Resolve(err)
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "snapflag",
		Short:         "Parse typed flags against a declared schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if c.noColor {
				c.io.NoColor()
			}
			if c.verbose {
				c.log.SetLevel(snapio.LevelDebug)
			}
			if c.logTime != "" {
				c.log.WithTimestamp(true).WithTimeFormat(c.logTime)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&c.schemaPath, "schema", "s", "", "schema file (.json, .yaml, .yml, .toml); defaults to $"+schemaEnvVar)
	pf.StringVarP(&c.inline, "flags", "f", "", "inline schema, e.g. l:bool,p:int32,d:string")
	pf.BoolVar(&c.noColor, "no-color", false, "disable coloured diagnostics")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&c.logTime, "log-time", "", "prefix diagnostics with a timestamp in this Go time layout, e.g. 15:04:05")

	root.AddCommand(c.parseCommand(), c.schemaCommand())
	return root
}

// loadSchema resolves the schema with precedence --flags > --schema > $SNAPFLAG_SCHEMA
func (c *cli) loadSchema() (*snapflag.Schema, error) {
	if c.inline != "" {
		c.log.Debug("using inline schema %q", c.inline)
		return schemafile.ParseInline(c.inline)
	}

	path := c.schemaPath
	if path == "" {
		path = c.getenv(schemaEnvVar)
		if path != "" {
			c.log.Debug("using schema from $%s: %s", schemaEnvVar, path)
		}
	}
	if path == "" {
		return nil, fmt.Errorf("%w: no schema given (use --schema, --flags or $%s)", snapflag.ErrInvalidSchema, schemaEnvVar)
	}
	return schemafile.Load(path)
}

// report logs err on stderr, adding the flag suggestion when there is one
func (c *cli) report(err error) {
	c.log.Error("%s", err)

	var pe *snapflag.ParseError
	if errors.As(err, &pe) {
		if hint := pe.Hint(); hint != "" {
			c.log.Warning("%s", hint)
		}
		if pe.Position > 0 {
			c.log.Debug("failed at token %d (%q)", pe.Position, pe.Token)
		}
	}
}
