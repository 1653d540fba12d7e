package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFileList(t *testing.T) {
	out := []byte("config.py\x00src/main.go\x00docs/api.md\x00")
	assert.Equal(t, []string{"config.py", "src/main.go", "docs/api.md"}, parseFileList(out))
}

func TestParseFileListEmpty(t *testing.T) {
	assert.Empty(t, parseFileList(nil))
	assert.Empty(t, parseFileList([]byte{0}))
}

func TestParseFileListKeepsOrder(t *testing.T) {
	out := []byte("z.py\x00a.py\x00m.py\x00")
	assert.Equal(t, []string{"z.py", "a.py", "m.py"}, parseFileList(out))
}
