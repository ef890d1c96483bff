package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cases := map[string]string{
		"":               "",
		"~":              "/home/tester",
		"~/.421sh":       filepath.Join("/home/tester", ".421sh"),
		"/var/log/x":     "/var/log/x",
		".421sh":         ".421sh",
		"./logs/../h.db": "h.db",
	}
	for in, want := range cases {
		assert.Equal(t, want, ExpandPath(in), in)
	}
}
