package posts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTagString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "go,postgres", []string{"go", "postgres"}},
		{"trims whitespace", " go , postgres ", []string{"go", "postgres"}},
		{"lowercases", "Go,POSTGRES", []string{"go", "postgres"}},
		{"drops empties", "go,,postgres,", []string{"go", "postgres"}},
		{"dedupes keeping first order", "go,Postgres,GO,postgres", []string{"go", "postgres"}},
		{"empty string", "", nil},
		{"only separators", ",,,", nil},
		{"single tag", "infra", []string{"infra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTagString(tt.input))
		})
	}
}
