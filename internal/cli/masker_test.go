package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hbjs97/aictx/internal/cli"
)

func TestMaskKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"anthropic", "sk-ant-api03-abcdef", "sk-ant-****"},
		{"openai", "sk-proj-abcdef", "sk-****"},
		{"google", "AIzaSyAbCdEf", "AIza****"},
		{"groq", "gsk_abcdef", "gsk_****"},
		{"unknown long", "token-12345678", "toke****"},
		{"unknown short", "abc", "****"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.MaskKey(tt.in))
		})
	}
}
