//go:build e2e && unix

package main

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var singleItem = regexp.MustCompile(`items=1\b`)

func TestFilterNarrowsList(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")

	require.True(t, tf.Press(KeyFilter), "Opening the filter should change output")
	require.True(t, tf.SeePlain("Filter:"))

	require.NoError(t, tf.SendKeys("berry"))
	require.True(t, tf.SeePlain("items=2"), "Only elderberry and huckleberry match")

	require.NoError(t, tf.SendKeys(KeyEnter))
	require.True(t, tf.SeePlain("focus=0"), "Focus should land on elderberry")
}

func TestFilterEscapeRestoresList(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")

	require.True(t, tf.Press(KeyFilter), "Opening the filter should change output")
	require.NoError(t, tf.SendKeys("kiwi"))
	require.True(t, tf.WaitFor(func(s string) bool {
		return singleItem.MatchString(ansiRe.ReplaceAllString(s, ""))
	}, 2*time.Second), "Only kiwi matches")

	seen := len(tf.SnapshotPlain())

	require.NoError(t, tf.SendKeys(KeyEsc))
	require.True(t, tf.WaitFor(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return len(plain) > seen && strings.Contains(plain[seen:], "items=10")
	}, 2*time.Second), "Escape should clear the filter")
}
