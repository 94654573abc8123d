package postgres

import (
	"reflect"
	"testing"
	"time"
)

func TestStringValue(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want string
	}{
		{name: "string", v: "practica", want: "practica"},
		{name: "bytes", v: []byte("practica"), want: "practica"},
		{name: "nil", v: nil, want: ""},
		{name: "other type", v: 42, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringValue(tt.v); got != tt.want {
				t.Errorf("StringValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBytesValue(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want []byte
	}{
		{name: "bytes", v: []byte(`[]`), want: []byte(`[]`)},
		{name: "string", v: `[]`, want: []byte(`[]`)},
		{name: "nil", v: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BytesValue(tt.v); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BytesValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeValue(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	if got := TimeValue(now); !got.Equal(now) {
		t.Errorf("TimeValue() = %v, want %v", got, now)
	}
	if got := TimeValue(nil); !got.IsZero() {
		t.Errorf("TimeValue(nil) = %v, want zero time", got)
	}
}

func TestBoolValue(t *testing.T) {
	if !BoolValue(true) {
		t.Error("BoolValue(true) = false, want true")
	}
	if BoolValue(nil) {
		t.Error("BoolValue(nil) = true, want false")
	}
	if BoolValue("true") {
		t.Error("BoolValue(string) = true, want false")
	}
}
