package jsonutil

import (
	"encoding/json"
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`[{"id":"a"}]`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
		{
			name:    "truncated",
			data:    []byte(`[{"id":`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v interface{}
			err := UnmarshalWithContext(tt.data, &v, "decode layout")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && len(err.Error()) < len("decode layout") {
				t.Errorf("error should carry context, got %q", err)
			}
		})
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		data string
		want string
	}{
		{`[]`, "array"},
		{`{"a":1}`, "object"},
		{`"s"`, "string"},
		{`3`, "number"},
		{`true`, "bool"},
		{`null`, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var v interface{}
			if err := json.Unmarshal([]byte(tt.data), &v); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := Kind(v); got != tt.want {
				t.Errorf("Kind(%s) = %q, want %q", tt.data, got, tt.want)
			}
		})
	}
}

func TestField(t *testing.T) {
	m := map[string]interface{}{
		"str":    "value",
		"num":    42.0,
		"bool":   true,
		"nil":    nil,
		"obj":    map[string]interface{}{"x": 1.0},
		"arr":    []interface{}{1.0},
	}

	tests := []struct {
		key  string
		want string
	}{
		{"str", "value"},
		{"num", "42"},
		{"bool", "true"},
		{"nil", ""},
		{"obj", ""},
		{"arr", ""},
		{"missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := Field(m, tt.key); got != tt.want {
				t.Errorf("Field() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want string
	}{
		{"string", "hello", "hello"},
		{"float64 whole", 42.0, "42"},
		{"float64 decimal", 3.14, "3.14"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"nil", nil, ""},
		{"int", 123, "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.v); got != tt.want {
				t.Errorf("ToString() = %q, want %q", got, tt.want)
			}
		})
	}
}
