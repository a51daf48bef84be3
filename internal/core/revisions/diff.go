package revisions

import "strings"

// Op classifies a single line of an edit script.
type Op int

const (
	// Unchanged lines appear in both bodies and are omitted from
	// rendered output
	Unchanged Op = iota
	// Removed lines appear only in the old body
	Removed
	// Added lines appear only in the new body
	Added
)

// Line is one entry of a line-level edit script.
type Line struct {
	Text string
	Op   Op
}

// Lines computes a minimal line-level edit script between two post
// bodies using longest-common-subsequence backtracking. Within a
// changed region removals are emitted before additions. The result is
// deterministic: the same two inputs always produce the same script.
func Lines(oldBody, newBody string) []Line {
	a := strings.Split(oldBody, "\n")
	b := strings.Split(newBody, "\n")
	m, n := len(a), len(b)

	// lcs[i][j] holds the LCS length of a[i:] and b[j:]
	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	script := make([]Line, 0, m+n)
	i, j := 0, 0
	for i < m && j < n {
		switch {
		case a[i] == b[j]:
			script = append(script, Line{Text: a[i], Op: Unchanged})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			script = append(script, Line{Text: a[i], Op: Removed})
			i++
		default:
			script = append(script, Line{Text: b[j], Op: Added})
			j++
		}
	}
	for ; i < m; i++ {
		script = append(script, Line{Text: a[i], Op: Removed})
	}
	for ; j < n; j++ {
		script = append(script, Line{Text: b[j], Op: Added})
	}

	return script
}

// Render formats an edit script for human consumption: removed lines
// prefixed "-", added lines prefixed "+", unchanged lines dropped,
// each emitted line newline-terminated.
func Render(script []Line) string {
	var sb strings.Builder
	for _, line := range script {
		switch line.Op {
		case Removed:
			sb.WriteByte('-')
		case Added:
			sb.WriteByte('+')
		default:
			continue
		}
		sb.WriteString(line.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Diff is the composition the update-notification path uses: compute
// the edit script between the stored body and the incoming one and
// render it as change text.
func Diff(oldBody, newBody string) string {
	return Render(Lines(oldBody, newBody))
}
