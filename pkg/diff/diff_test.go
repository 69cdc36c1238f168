package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	body := []byte("line1\nline2\nline3\n")
	require.Empty(t, Unified(body, body, "expected", "actual"))
	require.Zero(t, Changed(body, body))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	expected := []byte("line1\nline2\nline3\n")
	actual := []byte("line1\nmodified\nline3\n")

	result := Unified(expected, actual, "golden.txt", "render")
	require.Contains(t, result, "--- golden.txt\n")
	require.Contains(t, result, "+++ render\n")
	require.Contains(t, result, "@@ -1,3 +1,3 @@\n")
	require.Contains(t, result, "\n line1\n")
	require.Contains(t, result, "\n-line2\n")
	require.Contains(t, result, "\n+modified\n")
	require.Contains(t, result, "\n line3\n")
	require.Equal(t, 2, Changed(expected, actual))
}

func TestUnifiedComparesWholeLines(t *testing.T) {
	expected := []byte("[ Wi-Fi ●  ]\n")
	actual := []byte("[ Wi-Fi  ● ]\n")

	result := Unified(expected, actual, "a", "b")
	require.Contains(t, result, "-[ Wi-Fi ●  ]\n")
	require.Contains(t, result, "+[ Wi-Fi  ● ]\n")
}

func TestUnifiedAddedTrailingLines(t *testing.T) {
	expected := []byte("a\n")
	actual := []byte("a\nb\nc\n")

	result := Unified(expected, actual, "a", "b")
	require.Contains(t, result, "+b\n+c\n")
	require.Equal(t, 2, Changed(expected, actual))
}

func TestUnifiedTruncatesLargeDiffs(t *testing.T) {
	var expected, actual strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		expected.WriteString("old\n")
		actual.WriteString("new\n")
	}

	result := Unified([]byte(expected.String()), []byte(actual.String()), "a", "b")
	require.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
}
