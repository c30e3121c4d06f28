package snapflag

import "testing"

func TestParseFlagType(t *testing.T) {
	tests := map[string]FlagType{
		"bool":    FlagTypeBool,
		"Boolean": FlagTypeBool,
		"int":     FlagTypeInt32,
		" INT32 ": FlagTypeInt32,
		"integer": FlagTypeInt32,
		"string":  FlagTypeString,
		"str":     FlagTypeString,
	}
	for in, want := range tests {
		got, err := ParseFlagType(in)
		if err != nil || got != want {
			t.Errorf("ParseFlagType(%q) = %q, %v; expected %q", in, got, err, want)
		}
	}

	for _, bad := range []string{"", "float64", "[]string"} {
		if _, err := ParseFlagType(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestDefaultValue(t *testing.T) {
	if v := DefaultValue(FlagTypeBool); v.Bool() || v.Interface() != false {
		t.Errorf("Expected false, got %v", v)
	}
	if v := DefaultValue(FlagTypeInt32); v.Int32() != 0 || v.Interface() != int32(0) {
		t.Errorf("Expected 0, got %v", v)
	}
	if v := DefaultValue(FlagTypeString); v.Str() != "" || v.Interface() != "" {
		t.Errorf("Expected empty string, got %v", v)
	}
}

func TestRequiresValue(t *testing.T) {
	if FlagTypeBool.RequiresValue() {
		t.Error("bool flags take no value token")
	}
	if !FlagTypeInt32.RequiresValue() || !FlagTypeString.RequiresValue() {
		t.Error("int32 and string flags take a value token")
	}
	// Every value-taking type has a coercer
	for _, typ := range []FlagType{FlagTypeBool, FlagTypeInt32, FlagTypeString} {
		if _, ok := coercers[typ]; ok != typ.RequiresValue() {
			t.Errorf("coercer table out of sync for %s", typ)
		}
	}
}
