//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRowCursorMovesWithVimKeys(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	err := tf.StartPeopleApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("alice"), "rows should load")

	// Down twice, up once: the cursor sits on row one. Toggling marks
	// the row the cursor is on, which pins down where it landed.
	err = tf.Down()
	require.NoError(t, err, "Failed to move down")
	err = tf.Down()
	require.NoError(t, err, "Failed to move down")
	err = tf.SendKeys(KeyUp)
	require.NoError(t, err, "Failed to move up")

	err = tf.Select()
	require.NoError(t, err, "Failed to send space")
	require.True(t, tf.OutputContainsPlain("[x]  1  alice", 3*time.Second),
		"cursor should be back on the first row")
}

func TestRowCursorClampsAtPageEdges(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	err := tf.StartPeopleApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("carol"), "page one should load")

	// Six downs on a three-row page stop at the last row
	for i := 0; i < 6; i++ {
		err = tf.Down()
		require.NoError(t, err, "Failed to move down")
	}
	err = tf.Select()
	require.NoError(t, err, "Failed to send space")
	require.True(t, tf.OutputContainsPlain("[x]  3  carol", 3*time.Second),
		"cursor should clamp to the last visible row")

	// And six ups stop at the first
	for i := 0; i < 6; i++ {
		err = tf.SendKeys(KeyUp)
		require.NoError(t, err, "Failed to move up")
	}
	err = tf.Select()
	require.NoError(t, err, "Failed to send space")
	require.True(t, tf.OutputContainsPlain("[x]  1  alice", 3*time.Second),
		"cursor should clamp to the first row")
	require.True(t, tf.SeePlain("2 selected"), "both toggles should have landed")
}

func TestColumnCursorClampsAtLastColumn(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	err := tf.StartPeopleApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("city ↕"), "city column should render")

	// Five rights on a three-column table park the cursor on city
	for i := 0; i < 5; i++ {
		err = tf.Right()
		require.NoError(t, err, "Failed to move right")
	}
	err = tf.Sort()
	require.NoError(t, err, "Failed to send sort key")
	require.True(t, tf.OutputContainsPlain("city ↑", 3*time.Second),
		"cursor should clamp to the last column")

	// Still clamped: another right and sort toggles the same column
	err = tf.Right()
	require.NoError(t, err, "Failed to move right")
	err = tf.Sort()
	require.NoError(t, err, "Failed to send sort key")
	require.True(t, tf.OutputContainsPlain("city ↓", 3*time.Second),
		"sort should toggle on the clamped column")
}
