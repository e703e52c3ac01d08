package keypad4x4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow records how the scanner drives one row line.
type fakeRow struct {
	level bool
	highs int
}

func (r *fakeRow) High() {
	r.level = true
	r.highs++
}

func (r *fakeRow) Low() {
	r.level = false
}

// fakeCol simulates a key bridging one column to one row. The column reads
// high only while its row is driven and the key is still held; holdFor is
// how many high reads happen before the simulated release.
type fakeCol struct {
	row     *fakeRow
	holdFor int
	reads   int
}

func (c *fakeCol) Get() bool {
	if c.row == nil || !c.row.level {
		return false
	}
	if c.reads < c.holdFor {
		c.reads++
		return true
	}
	return false
}

func newFakeMatrix() ([Rows]*fakeRow, [Cols]*fakeCol, Device) {
	var rows [Rows]*fakeRow
	var cols [Cols]*fakeCol
	var rowPins [Rows]RowPin
	var colPins [Cols]ColPin
	for i := range rows {
		rows[i] = &fakeRow{}
		rowPins[i] = rows[i]
	}
	for i := range cols {
		cols[i] = &fakeCol{}
		colPins[i] = cols[i]
	}
	return rows, cols, New(rowPins, colPins)
}

func TestScanNoKey(t *testing.T) {
	rows, _, d := newFakeMatrix()

	_, _, ok := d.Scan()

	assert.False(t, ok)
	for i, r := range rows {
		assert.Equal(t, 1, r.highs, "row %d should be driven exactly once", i)
		assert.False(t, r.level, "row %d should be left low", i)
	}
}

func TestScanReportsPressedKey(t *testing.T) {
	rows, cols, d := newFakeMatrix()
	cols[2].row = rows[1]
	cols[2].holdFor = 1

	row, col, ok := d.Scan()

	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)
	assert.Equal(t, 0, rows[2].highs, "rows after the match should not be driven")
	assert.Equal(t, 0, rows[3].highs, "rows after the match should not be driven")
	for i, r := range rows {
		assert.False(t, r.level, "row %d should be left low", i)
	}
}

func TestScanRowMajorTieBreak(t *testing.T) {
	rows, cols, d := newFakeMatrix()
	cols[3].row = rows[0] // key at (0,3)
	cols[3].holdFor = 1
	cols[0].row = rows[1] // key at (1,0)
	cols[0].holdFor = 1

	row, col, ok := d.Scan()

	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 3, col)
	assert.Equal(t, 0, rows[1].highs, "row 1 should never be scanned once row 0 matched")
}

func TestScanFirstColumnWinsWithinRow(t *testing.T) {
	rows, cols, d := newFakeMatrix()
	cols[1].row = rows[2]
	cols[1].holdFor = 1
	cols[3].row = rows[2]
	cols[3].holdFor = 1

	row, col, ok := d.Scan()

	require.True(t, ok)
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)
	assert.Equal(t, 0, cols[3].reads, "columns after the match should not be sampled")
}

func TestScanBlocksUntilRelease(t *testing.T) {
	rows, cols, d := newFakeMatrix()
	cols[2].row = rows[1]
	cols[2].holdFor = 4 // detection read plus three release polls

	row, col, ok := d.Scan()

	require.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)
	// The fake only reads high while its row is driven, so a full count
	// proves the scanner held the row active until it observed the release.
	assert.Equal(t, 4, cols[2].reads)
	assert.False(t, rows[1].level, "row should be driven low after the release")
}
