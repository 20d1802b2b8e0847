package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	testCases := []struct {
		description string
		env         map[string]string
		input       string
		expected    string
	}{
		{description: "no expressions", input: "printStyle: fancy", expected: "printStyle: fancy"},
		{description: "single expression", env: map[string]string{"FT_STYLE": "line1"}, input: "printStyle: ${env.FT_STYLE}", expected: "printStyle: line1"},
		{description: "repeated expressions", env: map[string]string{"FT_A": "1", "FT_B": "2"}, input: "${env.FT_A}-${env.FT_B}-${env.FT_A}", expected: "1-2-1"},
		{description: "unset variable", input: "seed: ${env.FT_UNSET}0", expected: "seed: 0"},
		{description: "unclosed expression", env: map[string]string{"FT_X": "x"}, input: "url: ${env.FT_X and ${env.FT_Y} end", expected: "url: ${env.FT_X and  end"},
		{description: "empty key", input: "oops ${env.} done", expected: "oops  done"},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			t.Setenv("FT_UNSET", "")
			t.Setenv("FT_Y", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tc.expected, expandEnv(tc.input))
		})
	}
}
