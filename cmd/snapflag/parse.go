package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	snapio "github.com/dzonerzy/go-snapflag/io"
	"github.com/dzonerzy/go-snapflag/snapflag"
)

type parseOptions struct {
	text        string
	output      string
	suggest     bool
	maxDistance int
	trace       bool
}

func (c *cli) parseCommand() *cobra.Command {
	opts := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [flags] -- ARGS...",
		Short: "Parse ARGS (or --text) against the schema and print the values",
		Example: `  snapflag parse -f l:bool,p:int32,d:string -- -l -p 1080 -d /hola/mundo
  snapflag parse -s flags.yaml -o json --text "-p 8080"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd, opts, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&opts.text, "text", "t", "", "argument text to parse instead of ARGS (not both)")
	fs.StringVarP(&opts.output, "output", "o", "text", "output format: text, json, yaml or toml")
	fs.BoolVar(&opts.suggest, "suggest", true, "suggest the closest flag for unknown flags")
	fs.IntVar(&opts.maxDistance, "max-distance", 2, "maximum edit distance for suggestions")
	fs.BoolVar(&opts.trace, "trace", false, "log every parser state transition")
	return cmd
}

func (c *cli) runParse(cmd *cobra.Command, opts *parseOptions, args []string) error {
	enc, err := encoderFor(opts.output)
	if err != nil {
		return err
	}

	schema, err := c.loadSchema()
	if err != nil {
		return err
	}

	text := opts.text
	switch {
	case text != "" && len(args) > 0:
		return &snapflag.ExitError{
			Code: c.exits.Defaults().MisusageError,
			Err:  errors.New("--text and ARGS are mutually exclusive"),
		}
	case text == "":
		text = strings.Join(args, " ")
	}

	var parserOpts []snapflag.Option
	if opts.suggest {
		parserOpts = append(parserOpts, snapflag.WithSuggestions(opts.maxDistance))
	}
	if opts.trace {
		c.log.SetLevel(snapio.LevelDebug)
		parserOpts = append(parserOpts, snapflag.WithTrace(func(t snapflag.Transition) {
			c.log.Debug("%s -> %s token=%q flag=%q", t.From, t.To, t.Token, t.Flag)
		}))
	}

	values, err := snapflag.NewParser(schema, parserOpts...).Parse(text)
	if err != nil {
		return err
	}
	return enc.encodeValues(cmd.OutOrStdout(), schema, values)
}
