package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBinaryPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"b.png", true},
		{"/abs/dir/photo.JPG", true},
		{"assets/font.woff2", true},
		{"release/app.tar.gz", true},
		{"a.txt", false},
		{"src/main.go", false},
		{"Makefile", false},
		{".png", false},
		{".config/settings.json", false},
		{"archive.zip", true},
		{"dir.zip/readme.md", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBinaryPath(tt.path))
		})
	}
}

func TestClassifiers(t *testing.T) {
	var c Classifier = ExtensionClassifier{}
	assert.True(t, c.IsBinary("x.pdf"))
	assert.False(t, c.IsBinary("x.md"))

	c = ClassifierFunc(func(string) bool { return true })
	assert.True(t, c.IsBinary("x.md"))
}
