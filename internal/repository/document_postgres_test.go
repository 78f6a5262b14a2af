package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"lịch họp", "lịch họp"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`C:\temp`, `C:\\temp`},
		{`\%_`, `\\\%\_`},
		{"a.b*c", "a.b*c"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, escapeLike(tc.in), "input %q", tc.in)
	}
}
