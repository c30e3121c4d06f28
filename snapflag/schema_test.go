package snapflag

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSchemaLookup(t *testing.T) {
	schema := MustSchema(map[string]FlagType{
		"l":    FlagTypeBool,
		"port": FlagTypeInt32,
		"dir":  FlagTypeString,
	})

	tests := []struct {
		name   string
		want   FlagType
		wantOK bool
	}{
		{"l", FlagTypeBool, true},
		{"port", FlagTypeInt32, true},
		{"dir", FlagTypeString, true},
		{"Port", "", false},
		{"-port", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := schema.Lookup(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Lookup(%q) = (%q, %v), expected (%q, %v)", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}

	if !schema.Has("dir") || schema.Has("nope") {
		t.Error("Has returned an unexpected result")
	}
	if schema.Len() != 3 {
		t.Errorf("Expected Len()=3, got %d", schema.Len())
	}
	if diff := cmp.Diff([]string{"dir", "l", "port"}, schema.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

// TestSchemaImmutable tests that mutating the source map does not affect the schema
func TestSchemaImmutable(t *testing.T) {
	src := map[string]FlagType{"p": FlagTypeInt32}
	schema, err := NewSchema(src)
	if err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}

	src["p"] = FlagTypeString
	src["x"] = FlagTypeBool

	if typ, _ := schema.Lookup("p"); typ != FlagTypeInt32 {
		t.Errorf("Expected p to stay int32, got %s", typ)
	}
	if schema.Has("x") {
		t.Error("Expected x to be absent")
	}
}

func TestNewSchemaRejectsInvalid(t *testing.T) {
	tests := map[string]map[string]FlagType{
		"empty name":   {"": FlagTypeBool},
		"unknown type": {"p": FlagType("float64")},
		"missing type": {"p": ""},
	}
	for name, flags := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := NewSchema(flags); !errors.Is(err, ErrInvalidSchema) {
				t.Errorf("Expected ErrInvalidSchema, got %v", err)
			}
		})
	}
}

func TestSchemaBuilderErrors(t *testing.T) {
	_, err := NewSchemaBuilder().
		Bool("v").
		Int32("v").
		String("").
		Build()
	if !errors.Is(err, ErrInvalidSchema) {
		t.Fatalf("Expected ErrInvalidSchema, got %v", err)
	}

	// Both problems are reported
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Errorf("Expected two joined errors, got %v", err)
	}
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustBuild to panic")
		}
	}()
	NewSchemaBuilder().Flag("x", "nope").MustBuild()
}

func TestNilSchema(t *testing.T) {
	var s *Schema
	if _, ok := s.Lookup("x"); ok {
		t.Error("Expected nil schema lookup to fail")
	}
	if s.Len() != 0 || s.Names() != nil {
		t.Error("Expected nil schema to be empty")
	}

	values, err := Parse(nil, "")
	if err != nil || values.Len() != 0 {
		t.Errorf("Expected empty success, got %v, %v", values, err)
	}
}
