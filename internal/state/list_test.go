package state

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordSurface captures replayed surface calls as strings so lists can be
// compared by what they would draw.
type recordSurface struct {
	calls []string
}

func (r *recordSurface) Reset() {
	r.calls = append(r.calls, "reset")
}

func (r *recordSurface) StrokeSegment(p1, p2 Point, c color.Color, width float32) {
	cr, cg, cb, ca := c.RGBA()
	r.calls = append(r.calls, fmt.Sprintf("seg (%g,%g)-(%g,%g) rgba(%d,%d,%d,%d) w%g",
		p1.X, p1.Y, p2.X, p2.Y, cr, cg, cb, ca, width))
}

func (r *recordSurface) PlaceGlyph(glyph string, at Point, size float32) {
	r.calls = append(r.calls, fmt.Sprintf("glyph %q at (%g,%g) size %g", glyph, at.X, at.Y, size))
}

func replayCalls(d *DisplayList) []string {
	surf := &recordSurface{}
	d.Replay(surf)
	return surf.calls
}

func drawStroke(d *DisplayList, pts ...Point) {
	d.Begin(NewStroke(pts[0], color.Black, 2))
	for _, p := range pts[1:] {
		d.Extend(p)
	}
}

func TestUndoThenRedoRestoresList(t *testing.T) {
	d := NewDisplayList()
	drawStroke(d, Point{0, 0}, Point{5, 5}, Point{10, 0})
	d.Begin(NewSticker("*", Point{20, 20}, 24))

	before := replayCalls(d)

	require.True(t, d.Undo())
	assert.NotEqual(t, before, replayCalls(d))

	require.True(t, d.Redo())
	assert.Equal(t, before, replayCalls(d))
	assert.Equal(t, 0, d.RedoLen())
}

func TestUndoRedoEmptyAreNoops(t *testing.T) {
	d := NewDisplayList()
	assert.False(t, d.Undo())
	assert.False(t, d.Redo())
	assert.Equal(t, 0, d.Len())
}

func TestNewStrokeEmptiesRedoStack(t *testing.T) {
	d := NewDisplayList()
	drawStroke(d, Point{0, 0}, Point{1, 1})
	drawStroke(d, Point{2, 2}, Point{3, 3})

	require.True(t, d.Undo())
	require.Equal(t, 1, d.RedoLen())

	drawStroke(d, Point{4, 4}, Point{5, 5})
	assert.Equal(t, 0, d.RedoLen())
	assert.False(t, d.Redo())
}

func TestClearEmptiesRedoStack(t *testing.T) {
	d := NewDisplayList()
	drawStroke(d, Point{0, 0}, Point{1, 1})
	require.True(t, d.Undo())
	require.Equal(t, 1, d.RedoLen())

	d.Clear()
	assert.Equal(t, 0, d.RedoLen())
}

func TestConsecutiveClearsCoalesce(t *testing.T) {
	d := NewDisplayList()
	drawStroke(d, Point{0, 0}, Point{1, 1})

	d.Clear()
	n := d.Len()
	d.Clear()
	d.Clear()
	assert.Equal(t, n, d.Len())

	// a stroke in between makes the next clear a new item again
	drawStroke(d, Point{2, 2}, Point{3, 3})
	d.Clear()
	assert.Equal(t, n+2, d.Len())
}

func TestClearWipesEarlierItemsOnReplay(t *testing.T) {
	d := NewDisplayList()
	drawStroke(d, Point{0, 0}, Point{1, 1})
	d.Clear()
	drawStroke(d, Point{2, 2}, Point{3, 3})

	calls := replayCalls(d)
	// initial reset, one segment, clear reset, one segment
	require.Len(t, calls, 4)
	assert.Equal(t, "reset", calls[0])
	assert.Equal(t, "reset", calls[2])
}

func TestUndoOfClearRestoresDrawing(t *testing.T) {
	d := NewDisplayList()
	drawStroke(d, Point{0, 0}, Point{1, 1})
	before := replayCalls(d)

	d.Clear()
	require.True(t, d.Undo())
	assert.Equal(t, before, replayCalls(d))
}

func TestReplayIsDeterministic(t *testing.T) {
	d := NewDisplayList()
	drawStroke(d, Point{0, 0}, Point{5, 5}, Point{10, 0})
	d.Begin(NewSticker("@", Point{30, 30}, 32))

	assert.Equal(t, replayCalls(d), replayCalls(d))
}

func TestExtendOnEmptyListIsNoop(t *testing.T) {
	d := NewDisplayList()
	d.Extend(Point{1, 1})
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, []string{"reset"}, replayCalls(d))
}

func TestLogLinesNameItems(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	d := NewDisplayList()
	s := NewStroke(Point{0, 0}, color.Black, 2)
	d.Begin(s)
	d.Undo()
	d.Redo()
	d.Clear()
	d.Undo() // undo of the clear-marker

	out := buf.String()
	assert.Contains(t, out, "Begin "+s.ID)
	assert.Contains(t, out, "Undo "+s.ID)
	assert.Contains(t, out, "Redo "+s.ID)
	assert.Contains(t, out, "Undo clear")
}

func TestOnChangeFires(t *testing.T) {
	d := NewDisplayList()
	fired := 0
	d.OnChange = func() { fired++ }

	drawStroke(d, Point{0, 0}, Point{1, 1}) // Begin + Extend
	d.Clear()
	d.Undo()
	d.Redo()
	assert.Equal(t, 5, fired)
}
