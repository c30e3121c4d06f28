package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dzonerzy/go-snapflag/internal/schemafile"
	"github.com/dzonerzy/go-snapflag/snapflag"
)

type encoder string

const (
	outputText encoder = "text"
	outputJSON encoder = "json"
	outputYAML encoder = "yaml"
	outputTOML encoder = "toml"
)

func encoderFor(name string) (encoder, error) {
	switch e := encoder(name); e {
	case outputText, outputJSON, outputYAML, outputTOML:
		return e, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, yaml or toml)", name)
	}
}

// encodeValues writes the parsed values. The text form is one
// "name<TAB>type<TAB>value" row per flag, sorted by name.
func (e encoder) encodeValues(w io.Writer, schema *snapflag.Schema, values *snapflag.FlagValues) error {
	switch e {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(values.Map())
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(values.Map()); err != nil {
			return err
		}
		return enc.Close()
	case outputTOML:
		return toml.NewEncoder(w).Encode(values.Map())
	case outputText:
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range values.Names() {
		v, _ := values.Get(name)
		typ, _ := schema.Lookup(name)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, typ, v)
	}
	return tw.Flush()
}

func (e encoder) encodeSchema(w io.Writer, schema *snapflag.Schema) error {
	if e == outputText {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, name := range schema.Names() {
			typ, _ := schema.Lookup(name)
			fmt.Fprintf(tw, "-%s\t%s\n", name, typ)
		}
		return tw.Flush()
	}
	data, err := schemafile.Encode(schema, schemafile.Format(e))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
