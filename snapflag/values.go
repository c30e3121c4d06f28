package snapflag

import (
	"slices"

	"github.com/samber/lo"
)

// FlagValues holds the typed result of a successful parse: one entry per
// declared flag, defaulted when the flag did not appear in the input.
type FlagValues struct {
	values map[string]Value
}

func newFlagValues(capacity int) *FlagValues {
	return &FlagValues{values: make(map[string]Value, capacity)}
}

// set overwrites the value of name; a repeated flag keeps its last value
func (fv *FlagValues) set(name string, v Value) {
	fv.values[name] = v
}

// Get returns the raw typed value for name
func (fv *FlagValues) Get(name string) (Value, bool) {
	if fv == nil {
		return Value{}, false
	}
	v, ok := fv.values[name]
	return v, ok
}

// Method-based API - ok is false when the flag is undeclared or of another type

// GetBool retrieves a boolean flag value
func (fv *FlagValues) GetBool(name string) (bool, bool) {
	v, ok := fv.Get(name)
	if !ok || v.Type != FlagTypeBool {
		return false, false
	}
	return v.b, true
}

// GetInt32 retrieves an integer flag value
func (fv *FlagValues) GetInt32(name string) (int32, bool) {
	v, ok := fv.Get(name)
	if !ok || v.Type != FlagTypeInt32 {
		return 0, false
	}
	return v.i, true
}

// GetString retrieves a string flag value
func (fv *FlagValues) GetString(name string) (string, bool) {
	v, ok := fv.Get(name)
	if !ok || v.Type != FlagTypeString {
		return "", false
	}
	return v.s, true
}

// Convenience methods with defaults (Must pattern)

// MustGetBool retrieves a bool flag value or returns the default
func (fv *FlagValues) MustGetBool(name string, defaultValue bool) bool {
	if v, ok := fv.GetBool(name); ok {
		return v
	}
	return defaultValue
}

// MustGetInt32 retrieves an int32 flag value or returns the default
func (fv *FlagValues) MustGetInt32(name string, defaultValue int32) int32 {
	if v, ok := fv.GetInt32(name); ok {
		return v
	}
	return defaultValue
}

// MustGetString retrieves a string flag value or returns the default
func (fv *FlagValues) MustGetString(name, defaultValue string) string {
	if v, ok := fv.GetString(name); ok {
		return v
	}
	return defaultValue
}

// Type returns the type of the stored value for name
func (fv *FlagValues) Type(name string) (FlagType, bool) {
	v, ok := fv.Get(name)
	return v.Type, ok
}

// Has reports whether name has an entry
func (fv *FlagValues) Has(name string) bool {
	_, ok := fv.Get(name)
	return ok
}

// Len returns the number of entries
func (fv *FlagValues) Len() int {
	if fv == nil {
		return 0
	}
	return len(fv.values)
}

// Names returns the flag names in sorted order
func (fv *FlagValues) Names() []string {
	if fv == nil {
		return nil
	}
	names := lo.Keys(fv.values)
	slices.Sort(names)
	return names
}

// Map returns a copy of the values with payloads boxed as bool, int32 or
// string. Suitable for JSON/YAML/TOML encoders.
func (fv *FlagValues) Map() map[string]any {
	if fv == nil {
		return map[string]any{}
	}
	return lo.MapValues(fv.values, func(v Value, _ string) any {
		return v.Interface()
	})
}
