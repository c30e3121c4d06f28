package snapflag

import (
	"fmt"
	"strconv"
	"strings"
)

// FlagType represents the declared value type of a flag
type FlagType string

const (
	FlagTypeBool   FlagType = "bool"
	FlagTypeInt32  FlagType = "int32"
	FlagTypeString FlagType = "string"
)

// flagTypeAliases accepts the spellings commonly found in schema files
var flagTypeAliases = map[string]FlagType{
	"bool":    FlagTypeBool,
	"boolean": FlagTypeBool,
	"int":     FlagTypeInt32,
	"int32":   FlagTypeInt32,
	"integer": FlagTypeInt32,
	"string":  FlagTypeString,
	"str":     FlagTypeString,
}

// ParseFlagType converts a textual type name (case insensitive) into a FlagType.
func ParseFlagType(s string) (FlagType, error) {
	if t, ok := flagTypeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown flag type %q", s)
}

// Valid reports whether t is one of the declared flag types
func (t FlagType) Valid() bool {
	switch t {
	case FlagTypeBool, FlagTypeInt32, FlagTypeString:
		return true
	default:
		return false
	}
}

// RequiresValue returns true if the flag type consumes a value token
func (t FlagType) RequiresValue() bool {
	return t != FlagTypeBool
}

func (t FlagType) String() string {
	return string(t)
}

// Value is a typed flag value. Only the field matching Type is meaningful.
type Value struct {
	Type FlagType
	b    bool
	i    int32
	s    string
}

// BoolValue, Int32Value and StringValue build typed values.
func BoolValue(v bool) Value     { return Value{Type: FlagTypeBool, b: v} }
func Int32Value(v int32) Value   { return Value{Type: FlagTypeInt32, i: v} }
func StringValue(v string) Value { return Value{Type: FlagTypeString, s: v} }

// DefaultValue returns the zero value for the given type (false, 0, "").
func DefaultValue(t FlagType) Value {
	return Value{Type: t}
}

// Bool returns the boolean payload
func (v Value) Bool() bool { return v.b }

// Int32 returns the integer payload
func (v Value) Int32() int32 { return v.i }

// Str returns the string payload
func (v Value) Str() string { return v.s }

// Interface returns the payload boxed in an interface, for encoders.
func (v Value) Interface() any {
	switch v.Type {
	case FlagTypeBool:
		return v.b
	case FlagTypeInt32:
		return v.i
	case FlagTypeString:
		return v.s
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.Type {
	case FlagTypeBool:
		return strconv.FormatBool(v.b)
	case FlagTypeInt32:
		return strconv.FormatInt(int64(v.i), 10)
	case FlagTypeString:
		return v.s
	default:
		return ""
	}
}

// coerceFunc converts a raw value token into a typed Value
type coerceFunc func(token string) (Value, error)

// coercers holds one entry per value-taking type. Bool flags never consume a
// value token and therefore have no entry.
var coercers = map[FlagType]coerceFunc{
	FlagTypeInt32:  coerceInt32,
	FlagTypeString: coerceString,
}

// coerceInt32 parses the whole token as a base-10 signed integer. Trailing
// garbage and out-of-range values are rejected.
func coerceInt32(token string) (Value, error) {
	n, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return Value{}, err
	}
	return Int32Value(int32(n)), nil
}

func coerceString(token string) (Value, error) {
	return StringValue(token), nil
}
