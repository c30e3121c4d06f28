// Package schemafile loads snapflag schemas from JSON, YAML or TOML
// documents and from compact inline specs such as "l:bool,p:int32".
package schemafile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dzonerzy/go-snapflag/snapflag"
)

// Format identifies a schema document encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Document is the on-disk shape shared by every format:
//
//	flags:
//	  l: bool
//	  p: int32
//	  d: string
type Document struct {
	Flags map[string]string `json:"flags" yaml:"flags" toml:"flags"`
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: schema file %s: unsupported extension %q", snapflag.ErrInvalidSchema, path, filepath.Ext(path))
	}
}

// Load reads and decodes the schema file at path. Every failure, including
// an unreadable file, wraps snapflag.ErrInvalidSchema.
func Load(path string) (*snapflag.Schema, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read schema file: %w", snapflag.ErrInvalidSchema, err)
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}
	return s, nil
}

// Decode parses data in the given format into a Schema.
// Errors wrap snapflag.ErrInvalidSchema.
func Decode(data []byte, format Format) (*snapflag.Schema, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decode json: %w", snapflag.ErrInvalidSchema, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: decode yaml: %w", snapflag.ErrInvalidSchema, err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("%w: decode toml: %w", snapflag.ErrInvalidSchema, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: decode toml: unknown key %s", snapflag.ErrInvalidSchema, undecoded[0])
		}
	default:
		return nil, fmt.Errorf("%w: unsupported schema format %q", snapflag.ErrInvalidSchema, format)
	}
	return doc.Schema()
}

// Schema converts the document into a validated Schema
func (d Document) Schema() (*snapflag.Schema, error) {
	b := snapflag.NewSchemaBuilder()
	for name, typeName := range d.Flags {
		typ, err := snapflag.ParseFlagType(typeName)
		if err != nil {
			return nil, fmt.Errorf("%w: flag %q: %w", snapflag.ErrInvalidSchema, name, err)
		}
		b.Flag(name, typ)
	}
	return b.Build()
}

// ParseInline parses a comma separated list of name:type pairs.
// An empty spec yields an empty schema.
func ParseInline(spec string) (*snapflag.Schema, error) {
	b := snapflag.NewSchemaBuilder()
	for _, decl := range strings.Split(spec, ",") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, typeName, ok := strings.Cut(decl, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not name:type", snapflag.ErrInvalidSchema, decl)
		}
		typ, err := snapflag.ParseFlagType(typeName)
		if err != nil {
			return nil, fmt.Errorf("%w: flag %q: %w", snapflag.ErrInvalidSchema, name, err)
		}
		b.Flag(strings.TrimSpace(name), typ)
	}
	return b.Build()
}

// Encode renders a schema as a document in the given format
func Encode(s *snapflag.Schema, format Format) ([]byte, error) {
	doc := Document{Flags: make(map[string]string, s.Len())}
	for _, name := range s.Names() {
		typ, _ := s.Lookup(name)
		doc.Flags[name] = typ.String()
	}

	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported schema format %q", format)
	}
	return buf.Bytes(), nil
}
