package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetMatch(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{"globstar matches top level file", []string{"**/*"}, "a.txt", true},
		{"globstar matches nested file", []string{"**/*"}, "src/pkg/a.go", true},
		{"extension at any depth", []string{"**/*.ts"}, "index.ts", true},
		{"extension nested", []string{"**/*.ts"}, "src/lib/index.ts", true},
		{"extension mismatch", []string{"**/*.ts"}, "src/lib/index.tsx", false},
		{"star stays in segment", []string{"*.go"}, "cmd/main.go", false},
		{"star top level", []string{"*.go"}, "main.go", true},
		{"dir prefix", []string{"dist/**"}, "dist/bundle/app.js", true},
		{"dir prefix other dir", []string{"dist/**"}, "src/dist.js", false},
		{"middle globstar zero dirs", []string{"src/**/*.go"}, "src/main.go", true},
		{"middle globstar many dirs", []string{"src/**/*.go"}, "src/a/b/c.go", true},
		{"braces", []string{"**/*.{ts,tsx}"}, "ui/App.tsx", true},
		{"leading dot slash", []string{"./docs/*.md"}, "docs/README.md", true},
		{"question mark", []string{"file?.txt"}, "file1.txt", true},
		{"test suffix", []string{"**/*.test.ts"}, "src/a.test.ts", true},
		{"any of several", []string{"*.md", "*.txt"}, "notes.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Compile(tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Match(tt.path))
		})
	}
}

func TestSetMatchDir(t *testing.T) {
	s := MustCompile("dist/**", "**/node_modules/**", "**/*.log")

	assert.True(t, s.MatchDir("dist"))
	assert.True(t, s.MatchDir("node_modules"))
	assert.True(t, s.MatchDir("web/node_modules"))
	assert.False(t, s.MatchDir("src"))
	assert.False(t, s.MatchDir("logs"))
}

func TestSetMatchDirByName(t *testing.T) {
	s := MustCompile("dist", "**/node_modules")

	assert.True(t, s.MatchDir("dist"))
	assert.True(t, s.MatchDir("node_modules"))
	assert.True(t, s.MatchDir("web/app/node_modules"))
	assert.False(t, s.MatchDir("web/dist"))
	assert.False(t, s.MatchDir("src"))
}

func TestEmptySet(t *testing.T) {
	s, err := Compile([]string{"", "   "})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Match("a.txt"))
	assert.False(t, s.MatchDir("a"))

	var nilSet *Set
	assert.False(t, nilSet.Match("a.txt"))
	assert.Equal(t, 0, nilSet.Len())
}

func TestCompileInvalid(t *testing.T) {
	_, err := Compile([]string{"[abc"})
	assert.Error(t, err)
}

func TestPartition(t *testing.T) {
	pos, neg := Partition([]string{"**/*.go", "!**/*_test.go", "!", " src/** "})
	assert.Equal(t, []string{"**/*.go", "src/**"}, pos)
	assert.Equal(t, []string{"**/*_test.go"}, neg)
}

func TestExpand(t *testing.T) {
	assert.ElementsMatch(t, []string{"**/*", "*"}, expand("**/*"))
	assert.ElementsMatch(t, []string{"a/**/b", "a/b"}, expand("a/**/b"))
	assert.Equal(t, []string{"a**/b"}, expand("a**/b"))
	assert.Len(t, expand("**/x/**/y"), 4)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "src/*.go", Normalize("./src/*.go"))
	assert.Equal(t, "src/*.go", Normalize("/src/*.go"))
	assert.Equal(t, "*.go", Normalize("  *.go "))
}
