package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHashOfIsStableAndSensitiveToContent(t *testing.T) {
	a := ContentHashOf([]byte("func main() {}"))
	b := ContentHashOf([]byte("func main() {}"))
	c := ContentHashOf([]byte("func main() { }"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32) // hex-encoded MD5
}

func TestContentHashOfEmptyInput(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", ContentHashOf(nil))
}

func TestSnippetLessOrdersByPathThenLines(t *testing.T) {
	a := &Snippet{Path: "a.go", LineStart: 10, LineEnd: 20}
	b := &Snippet{Path: "b.go", LineStart: 1, LineEnd: 2}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestSnippetLessOrdersByLineStartWithinSamePath(t *testing.T) {
	a := &Snippet{Path: "a.go", LineStart: 5, LineEnd: 10}
	b := &Snippet{Path: "a.go", LineStart: 15, LineEnd: 20}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestSnippetLessOrdersByLineEndWhenLineStartTies(t *testing.T) {
	a := &Snippet{Path: "a.go", LineStart: 5, LineEnd: 10}
	b := &Snippet{Path: "a.go", LineStart: 5, LineEnd: 20}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestSnippetLessEqualIsNeitherLess(t *testing.T) {
	a := &Snippet{Path: "a.go", LineStart: 5, LineEnd: 10}
	b := &Snippet{Path: "a.go", LineStart: 5, LineEnd: 10}
	assert.False(t, a.Less(b))
	assert.False(t, b.Less(a))
}
