package revisions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffSingleLineReplacement(t *testing.T) {
	got := Diff("a\nb\nc", "a\nx\nc")

	assert.Equal(t, "-b\n+x\n", got)
	assert.NotContains(t, got, "a")
	assert.NotContains(t, got, "c")
}

func TestDiffIdenticalBodiesProducesNoOutput(t *testing.T) {
	assert.Empty(t, Diff("a\nb\nc", "a\nb\nc"))
	assert.Empty(t, Diff("", ""))
}

func TestDiffPureAddition(t *testing.T) {
	assert.Equal(t, "+b\n+c\n", Diff("a", "a\nb\nc"))
}

func TestDiffPureRemoval(t *testing.T) {
	assert.Equal(t, "-a\n-b\n", Diff("a\nb\nc", "c"))
}

func TestDiffRemovalsPrecedeAdditionsWithinRegion(t *testing.T) {
	got := Diff("head\nold1\nold2\ntail", "head\nnew1\nnew2\ntail")

	assert.Equal(t, "-old1\n-old2\n+new1\n+new2\n", got)
}

func TestLinesTagsUnchangedLines(t *testing.T) {
	script := Lines("a\nb", "a\nc")

	require.Len(t, script, 3)
	assert.Equal(t, Line{Text: "a", Op: Unchanged}, script[0])
	assert.Equal(t, Line{Text: "b", Op: Removed}, script[1])
	assert.Equal(t, Line{Text: "c", Op: Added}, script[2])
}

func TestDiffIsDeterministic(t *testing.T) {
	oldBody := "one\ntwo\nthree\nfour"
	newBody := "one\n2\nthree\n4\nfive"

	first := Diff(oldBody, newBody)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Diff(oldBody, newBody))
	}
}

func TestDiffEmptyOldBody(t *testing.T) {
	// Splitting "" yields a single empty line, which the script keeps
	// as a removal against a non-empty new body.
	got := Diff("", "hello")
	assert.Equal(t, "-\n+hello\n", got)
}
