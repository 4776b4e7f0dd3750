// SPDX-License-Identifier: MIT

package movement_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/katona/clock"
	"github.com/katalvlaran/katona/event"
	"github.com/katalvlaran/katona/grid"
	"github.com/katalvlaran/katona/movement"
)

// fiveSquare is the default five-square cross.
var fiveSquare = []grid.Index{
	{Row: -1, Col: -1}, {Row: 0, Col: -1}, {Row: 1, Col: -1},
	{Row: -2, Col: 0}, {Row: -3, Col: 0}, {Row: -2, Col: 1},
	{Row: 0, Col: 0}, {Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1},
	{Row: -1, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1},
	{Row: 2, Col: 0}, {Row: 3, Col: 0}, {Row: 2, Col: 1},
}

const centrePiece = 6 // home (0,0)

type fixture struct {
	g      *grid.Grid
	clk    *clock.Manual
	mover  *movement.Mover
	pieces []*movement.Piece
	cells  []grid.Element
}

func newFixture(t *testing.T, opts ...movement.Option) *fixture {
	t.Helper()
	g, err := grid.New(grid.DefaultOptions())
	require.NoError(t, err)
	clk := clock.NewManual(0)
	m, err := movement.NewMover(g, clk, opts...)
	require.NoError(t, err)
	pieces, err := movement.NewPieces(g, fiveSquare)
	require.NoError(t, err)
	return &fixture{g: g, clk: clk, mover: m, pieces: pieces, cells: g.Elements()}
}

func (f *fixture) cell(t *testing.T, idx grid.Index) grid.Element {
	t.Helper()
	e, err := f.g.Lookup(idx)
	require.NoError(t, err)
	return e
}

// click delivers a release tick followed by a press tick at pos.
func (f *fixture) click(pos grid.Point) {
	f.mover.OnTick(movement.Pointer{Position: pos}, f.pieces, f.cells)
	f.mover.OnTick(movement.Pointer{Position: pos, Pressed: true}, f.pieces, f.cells)
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNewMover_Errors(t *testing.T) {
	g, err := grid.New(grid.DefaultOptions())
	require.NoError(t, err)

	_, err = movement.NewMover(nil, clock.NewManual(0))
	assert.ErrorIs(t, err, movement.ErrNilGrid)
	_, err = movement.NewMover(g, nil)
	assert.ErrorIs(t, err, movement.ErrNilClock)
	assert.Panics(t, func() { movement.WithLogger(nil) })
}

func TestNewPieces(t *testing.T) {
	g, err := grid.New(grid.DefaultOptions())
	require.NoError(t, err)

	pieces, err := movement.NewPieces(g, fiveSquare)
	require.NoError(t, err)
	require.Len(t, pieces, len(fiveSquare))
	for i, p := range pieces {
		e, err := g.Lookup(fiveSquare[i])
		require.NoError(t, err)
		assert.Equal(t, i, p.ID)
		assert.Equal(t, e.Position, p.Position)
		assert.Equal(t, e.Orientation, p.Orientation)
		assert.Equal(t, p.Home, p.Cell)
	}

	_, err = movement.NewPieces(g, []grid.Index{{Row: 0, Col: 0}, {Row: 0, Col: 0}})
	assert.ErrorIs(t, err, movement.ErrDuplicateHome)
	_, err = movement.NewPieces(g, []grid.Index{{Row: 40, Col: 0}})
	assert.ErrorIs(t, err, grid.ErrIndexOutOfRange)
	_, err = movement.NewPieces(nil, fiveSquare)
	assert.ErrorIs(t, err, movement.ErrNilGrid)
}

//----------------------------------------------------------------------------//
// Pick and place
//----------------------------------------------------------------------------//

func TestOnTick_ChooseAndRelocate(t *testing.T) {
	f := newFixture(t)
	home := f.cell(t, grid.Index{Row: 0, Col: 0})
	dest := f.cell(t, grid.Index{Row: 0, Col: -3})

	f.clk.Set(2 * time.Second)
	f.click(home.Position)
	assert.Equal(t, movement.Holding, f.mover.State())
	held, ok := f.mover.Held()
	require.True(t, ok)
	assert.Equal(t, centrePiece, held.ID)

	ev, ok := f.mover.LastEvent()
	require.True(t, ok)
	assert.Equal(t, event.Event{Kind: event.StickChosen, Stick: centrePiece, Place: home.Index, Time: 2 * time.Second}, ev)

	// The piece follows the pointer while held.
	mid := grid.Point{X: -60, Y: 10}
	f.mover.OnTick(movement.Pointer{Position: mid, Pressed: true}, f.pieces, f.cells)
	assert.Equal(t, mid, f.pieces[centrePiece].Position)

	f.clk.Set(3 * time.Second)
	near := grid.Point{X: dest.Position.X + 3, Y: dest.Position.Y - 10}
	f.click(near)
	assert.Equal(t, movement.Idle, f.mover.State())
	assert.Equal(t, dest.Position, f.pieces[centrePiece].Position, "snapped onto the cell")
	assert.Equal(t, dest.Index, f.pieces[centrePiece].Cell)

	ev, ok = f.mover.LastEvent()
	require.True(t, ok)
	assert.Equal(t, event.Event{Kind: event.StickPlaced, Stick: centrePiece, Place: dest.Index, Time: 3 * time.Second}, ev)
	assert.True(t, f.mover.MoveMade())
	assert.False(t, f.mover.MoveMade(), "consume-once")
}

func TestOnTick_ReplaceOnOriginIsNoOp(t *testing.T) {
	f := newFixture(t)
	home := f.cell(t, grid.Index{Row: 0, Col: 0})

	f.click(home.Position)
	f.click(home.Position)
	ev, ok := f.mover.LastEvent()
	require.True(t, ok)
	assert.Equal(t, event.StickPlaced, ev.Kind)
	assert.Equal(t, home.Index, ev.Place)
	assert.False(t, f.mover.MoveMade())
	assert.Equal(t, movement.Idle, f.mover.State())
}

func TestOnTick_RisingEdgeOnly(t *testing.T) {
	f := newFixture(t)
	home := f.cell(t, grid.Index{Row: 0, Col: 0})
	dest := f.cell(t, grid.Index{Row: 0, Col: -3})

	f.click(home.Position)
	_, _ = f.mover.LastEvent()

	// Keeping the button down over a free cell does not place.
	for i := 0; i < 3; i++ {
		f.mover.OnTick(movement.Pointer{Position: dest.Position, Pressed: true}, f.pieces, f.cells)
	}
	assert.Equal(t, movement.Holding, f.mover.State())
	_, ok := f.mover.LastEvent()
	assert.False(t, ok)
}

func TestOnTick_InitialPressIsAnEdge(t *testing.T) {
	f := newFixture(t)
	home := f.cell(t, grid.Index{Row: 0, Col: 0})

	f.mover.OnTick(movement.Pointer{Position: home.Position, Pressed: true}, f.pieces, f.cells)
	assert.Equal(t, movement.Holding, f.mover.State())
}

func TestOnTick_OccupiedCellRejected(t *testing.T) {
	f := newFixture(t)
	home := f.cell(t, grid.Index{Row: 0, Col: 0})
	taken := f.cell(t, grid.Index{Row: 0, Col: 1})

	f.click(home.Position)
	_, _ = f.mover.LastEvent()

	f.click(taken.Position)
	assert.Equal(t, movement.Holding, f.mover.State(), "piece stays held")
	_, ok := f.mover.LastEvent()
	assert.False(t, ok)
	assert.False(t, f.mover.MoveMade())

	// Resting pieces never share a position.
	seen := make(map[grid.Point]int)
	for _, p := range f.pieces {
		if p.ID != centrePiece {
			seen[p.Position]++
		}
	}
	for pos, n := range seen {
		assert.Equal(t, 1, n, "position %v", pos)
	}
	assert.Equal(t, taken.Position, f.pieces[9].Position)
}

func TestOnTick_ClickOnEmptySpace(t *testing.T) {
	f := newFixture(t)
	f.click(grid.Point{X: 1000, Y: 1000})
	assert.Equal(t, movement.Idle, f.mover.State())
	_, ok := f.mover.LastEvent()
	assert.False(t, ok)
}

func TestOnTick_WheelRotates(t *testing.T) {
	f := newFixture(t)
	home := f.cell(t, grid.Index{Row: 0, Col: 0})
	vertical := f.cell(t, grid.Index{Row: 0, Col: -3})
	horizontal := f.cell(t, grid.Index{Row: -5, Col: 0})
	require.Equal(t, grid.Vertical, vertical.Orientation)
	require.Equal(t, grid.Horizontal, horizontal.Orientation)

	f.click(home.Position)
	f.mover.OnTick(movement.Pointer{Position: home.Position, Pressed: true, Wheel: -1}, f.pieces, f.cells)
	assert.Equal(t, grid.Horizontal, f.pieces[centrePiece].Orientation)

	// Orientation must match the destination cell.
	f.click(vertical.Position)
	assert.Equal(t, movement.Holding, f.mover.State())

	f.click(horizontal.Position)
	assert.Equal(t, movement.Idle, f.mover.State())
	assert.Equal(t, horizontal.Position, f.pieces[centrePiece].Position)
	assert.True(t, f.mover.MoveMade())
}

func TestRelease(t *testing.T) {
	f := newFixture(t)
	home := f.cell(t, grid.Index{Row: 0, Col: 0})

	f.mover.Release()
	assert.Equal(t, movement.Idle, f.mover.State())
	_, ok := f.mover.LastEvent()
	assert.False(t, ok, "release when idle emits nothing")

	f.click(home.Position)
	_, _ = f.mover.LastEvent()
	f.mover.Release()
	f.mover.Release()
	assert.Equal(t, movement.Idle, f.mover.State())
	_, ok = f.mover.LastEvent()
	assert.False(t, ok)
}

func TestLastEvent_OnlyLatestKept(t *testing.T) {
	f := newFixture(t)
	home := f.cell(t, grid.Index{Row: 0, Col: 0})

	f.click(home.Position)
	f.click(home.Position)
	ev, ok := f.mover.LastEvent()
	require.True(t, ok)
	assert.Equal(t, event.StickPlaced, ev.Kind)
	_, ok = f.mover.LastEvent()
	assert.False(t, ok)
}

func TestRestore(t *testing.T) {
	f := newFixture(t)
	home := f.cell(t, grid.Index{Row: 0, Col: 0})
	horizontal := f.cell(t, grid.Index{Row: -5, Col: 0})

	f.click(home.Position)
	f.mover.OnTick(movement.Pointer{Position: home.Position, Pressed: true, Wheel: 1}, f.pieces, f.cells)
	f.click(horizontal.Position)
	require.Equal(t, horizontal.Position, f.pieces[centrePiece].Position)

	require.NoError(t, movement.Restore(f.g, f.pieces))
	assert.Equal(t, home.Position, f.pieces[centrePiece].Position)
	assert.Equal(t, home.Orientation, f.pieces[centrePiece].Orientation)
	assert.Equal(t, home.Index, f.pieces[centrePiece].Cell)
}

func TestMover_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	f := newFixture(t, movement.WithLogger(zap.New(core)))
	home := f.cell(t, grid.Index{Row: 0, Col: 0})
	taken := f.cell(t, grid.Index{Row: 0, Col: 1})

	f.click(home.Position)
	f.click(taken.Position)

	assert.Equal(t, 1, logs.FilterMessage("stick chosen").Len())
	assert.Equal(t, 1, logs.FilterMessage("placement rejected: cell occupied").Len())
}
