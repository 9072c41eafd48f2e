package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSlice_Value(t *testing.T) {
	v, err := StringSlice(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringSlice{"Newton", "Kepler's \"laws\""}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Newton","Kepler's \"laws\""]`, v)
}

func TestStringSlice_Scan(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    StringSlice
		wantErr bool
	}{
		{name: "nil", value: nil, want: StringSlice{}},
		{name: "empty string", value: "", want: StringSlice{}},
		{name: "json null", value: "null", want: StringSlice{}},
		{name: "string", value: `["a","b"]`, want: StringSlice{"a", "b"}},
		{name: "bytes", value: []byte(`["x"]`), want: StringSlice{"x"}},
		{name: "unsupported type", value: 42, wantErr: true},
		{name: "invalid json", value: "{", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringSlice
			err := s.Scan(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}
