//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyboardNavigationSkipsDisabled(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")
	require.True(t, tf.SeePlain("focus=0"), "Cursor should start on the first item")

	require.True(t, tf.Press(KeyDown), "Navigation should change output")
	require.True(t, tf.SeePlain("focus=1"))

	// cherry at 2 is disabled by default
	require.True(t, tf.Press(KeyDown), "Navigation should change output")
	require.True(t, tf.SeePlain("focus=3"), "Cursor should skip the disabled item")

	require.True(t, tf.Press(KeyUp), "Navigation should change output")
	require.True(t, tf.SeePlain("focus=1"))
}

func TestKeyboardNavigationWraps(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")

	// The default list loops, so up from the first item lands on the last
	require.True(t, tf.Press(KeyUp), "Navigation should change output")
	require.True(t, tf.SeePlain("focus=9"), "Cursor should wrap to the last item")
}

func TestGridNavigation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("-d", workspace, "-grid")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")
	require.True(t, tf.SeePlain("focus=(0,0)"), "Cursor should start on the first cell")

	// (0,1) is disabled by default, right skips it
	require.True(t, tf.Press("l"), "Navigation should change output")
	require.True(t, tf.SeePlain("focus=(0,2)"))

	require.True(t, tf.Press(KeyMode), "Switching mode should change output")
	require.True(t, tf.SeePlain("list  focus=0"), "List keeps its own cursor")
}
