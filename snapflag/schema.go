package snapflag

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Schema is an immutable mapping from flag name to declared type.
// A *Schema may be shared by any number of concurrent Parse calls.
type Schema struct {
	flags map[string]FlagType
}

// NewSchema validates and copies flags into a new Schema.
// Names must be non-empty and every type must be a known FlagType.
func NewSchema(flags map[string]FlagType) (*Schema, error) {
	s := &Schema{flags: make(map[string]FlagType, len(flags))}
	for name, typ := range flags {
		if err := validateDecl(name, typ); err != nil {
			return nil, err
		}
		s.flags[name] = typ
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on an invalid declaration.
// Intended for package-level schema variables.
func MustSchema(flags map[string]FlagType) *Schema {
	s, err := NewSchema(flags)
	if err != nil {
		panic(err)
	}
	return s
}

func validateDecl(name string, typ FlagType) error {
	if name == "" {
		return fmt.Errorf("%w: empty flag name", ErrInvalidSchema)
	}
	if !typ.Valid() {
		return fmt.Errorf("%w: flag %q has unknown type %q", ErrInvalidSchema, name, typ)
	}
	return nil
}

// Lookup returns the declared type of name, or false if the flag is unknown.
func (s *Schema) Lookup(name string) (FlagType, bool) {
	if s == nil {
		return "", false
	}
	t, ok := s.flags[name]
	return t, ok
}

// Has reports whether name is declared
func (s *Schema) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Len returns the number of declared flags
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.flags)
}

// Names returns the declared flag names in sorted order
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}
	names := lo.Keys(s.flags)
	slices.Sort(names)
	return names
}

// defaults seeds a fresh FlagValues with the zero value of every declared flag
func (s *Schema) defaults() *FlagValues {
	fv := newFlagValues(s.Len())
	if s == nil {
		return fv
	}
	for name, typ := range s.flags {
		fv.values[name] = DefaultValue(typ)
	}
	return fv
}

// SchemaBuilder provides a fluent API for declaring a Schema
type SchemaBuilder struct {
	flags map[string]FlagType
	errs  []error
}

// NewSchemaBuilder creates an empty builder
func NewSchemaBuilder() *SchemaBuilder {
	return &SchemaBuilder{flags: make(map[string]FlagType)}
}

// Bool declares a boolean flag
func (b *SchemaBuilder) Bool(name string) *SchemaBuilder {
	return b.Flag(name, FlagTypeBool)
}

// Int32 declares an integer flag
func (b *SchemaBuilder) Int32(name string) *SchemaBuilder {
	return b.Flag(name, FlagTypeInt32)
}

// String declares a string flag
func (b *SchemaBuilder) String(name string) *SchemaBuilder {
	return b.Flag(name, FlagTypeString)
}

// Flag declares name with an explicit type. Declaring the same name twice is
// an error reported by Build.
func (b *SchemaBuilder) Flag(name string, typ FlagType) *SchemaBuilder {
	if err := validateDecl(name, typ); err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	if _, dup := b.flags[name]; dup {
		b.errs = append(b.errs, fmt.Errorf("%w: flag %q declared twice", ErrInvalidSchema, name))
		return b
	}
	b.flags[name] = typ
	return b
}

// Build returns the Schema, or every declaration error joined together.
func (b *SchemaBuilder) Build() (*Schema, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return NewSchema(b.flags)
}

// MustBuild is like Build but panics on error
func (b *SchemaBuilder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
