package rop

import (
	"testing"

	"github.com/ib-77/outcome/pkg/rop/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalYAML(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
		want map[string]any
	}{
		{"success", Success(3), map[string]any{"success": true, "value": 3}},
		{"zero value kept", Success(""), map[string]any{"success": true, "value": ""}},
		{"unit", OK(), map[string]any{"success": true}},
		{"failure", Fail[int](errs.Validation("bad input")), map[string]any{
			"success": false,
			"error":   map[string]any{"name": "ValidationError", "message": "Validation Error: bad input"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := yaml.Marshal(tc.in)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, yaml.Unmarshal(b, &got))
			assert.Equal(t, tc.want, got)
		})
	}
}
