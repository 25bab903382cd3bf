package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nicoster/chrome-devtools-cli-sub002/internal/schema"
)

func TestCoerceOptionValue(t *testing.T) {
	tests := []struct {
		name    string
		opt     schema.OptionDefinition
		raw     string
		want    schema.Value
		wantErr string
	}{
		{
			name: "string passthrough",
			opt:  schema.OptionDefinition{Name: "s", Type: schema.OptionString},
			raw:  "hello world",
			want: schema.StringValue("hello world"),
		},
		{
			name: "integer number",
			opt:  schema.OptionDefinition{Name: "n", Type: schema.OptionNumber},
			raw:  "9222",
			want: schema.NumberValue(9222),
		},
		{
			name: "float number",
			opt:  schema.OptionDefinition{Name: "n", Type: schema.OptionNumber},
			raw:  "1.5",
			want: schema.NumberValue(1.5),
		},
		{
			name:    "non-numeric",
			opt:     schema.OptionDefinition{Name: "n", Type: schema.OptionNumber},
			raw:     "9222x",
			wantErr: "must be a number",
		},
		{
			name: "array splits and trims",
			opt:  schema.OptionDefinition{Name: "a", Type: schema.OptionArray},
			raw:  " one, two ,three",
			want: schema.ArrayValue{"one", "two", "three"},
		},
		{
			name: "array single element",
			opt:  schema.OptionDefinition{Name: "a", Type: schema.OptionArray},
			raw:  "solo",
			want: schema.ArrayValue{"solo"},
		},
		{
			name: "boolean mixed case",
			opt:  schema.OptionDefinition{Name: "b", Type: schema.OptionBool},
			raw:  "True",
			want: schema.BoolValue(true),
		},
		{
			name:    "boolean garbage",
			opt:     schema.OptionDefinition{Name: "b", Type: schema.OptionBool},
			raw:     "2",
			wantErr: "must be a boolean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceOptionValue(&tt.opt, tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
