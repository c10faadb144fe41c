// pkg/render/terminal.go
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/event"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// explosionFrames is how many presented frames an explosion marker
// stays on screen.
const explosionFrames = 30

// TerminalRenderer draws the arena as an ASCII grid on an io.Writer.
// World coordinates are mapped onto a fixed character grid centered on
// the origin; entities outside the mapped extent are simply off screen.
type TerminalRenderer struct {
	out    io.Writer
	cols   int
	rows   int
	extent float64 // world units from center to the horizontal edge

	cells      [][]byte
	explosions []explosionMarker
}

type explosionMarker struct {
	position physics.Vector2D
	frames   int
}

// NewTerminalRenderer creates a terminal renderer with the given grid
// size. extent is the world distance mapped to half the grid width.
func NewTerminalRenderer(out io.Writer, cols, rows int, extent float64) *TerminalRenderer {
	r := &TerminalRenderer{
		out:    out,
		cols:   cols,
		rows:   rows,
		extent: extent,
	}
	r.cells = make([][]byte, rows)
	for i := range r.cells {
		r.cells[i] = make([]byte, cols)
	}
	return r
}

// Clear resets the grid for a new frame
func (r *TerminalRenderer) Clear() {
	for _, row := range r.cells {
		for i := range row {
			row[i] = ' '
		}
	}
	r.drawExplosions()
}

// Present writes the composed frame and ages explosion markers
func (r *TerminalRenderer) Present() {
	var b strings.Builder
	b.WriteString(strings.Repeat("-", r.cols+2))
	b.WriteByte('\n')
	for _, row := range r.cells {
		b.WriteByte('|')
		b.Write(row)
		b.WriteString("|\n")
	}
	b.WriteString(strings.Repeat("-", r.cols+2))
	b.WriteByte('\n')
	fmt.Fprint(r.out, b.String())

	live := r.explosions[:0]
	for _, e := range r.explosions {
		e.frames--
		if e.frames > 0 {
			live = append(live, e)
		}
	}
	r.explosions = live
}

// RenderCraft plots a craft as the first letter of its name
func (r *TerminalRenderer) RenderCraft(craft *entity.Craft) {
	glyph := byte('A')
	if craft.Name != "" {
		glyph = craft.Name[0]
	}
	r.plot(craft.Position, glyph)
}

// RenderBullet plots a bullet as a dot
func (r *TerminalRenderer) RenderBullet(bullet *entity.Bullet) {
	r.plot(bullet.Position, '.')
}

// RenderBody plots the central body as a filled disc of '@'
func (r *TerminalRenderer) RenderBody(body physics.CentralBody) {
	margin := body.CollisionRadius
	for dy := -margin; dy <= margin; dy += r.worldPerRow() {
		for dx := -margin; dx <= margin; dx += r.worldPerCol() {
			offset := physics.Vector2D{X: dx, Y: dy}
			if offset.Length() <= margin {
				r.plot(body.Position.Add(offset), '@')
			}
		}
	}
}

// Trigger implements the engine's effect sink by queueing a transient
// explosion marker. Color is ignored on a monochrome grid.
func (r *TerminalRenderer) Trigger(position physics.Vector2D, color event.Color) {
	r.explosions = append(r.explosions, explosionMarker{
		position: position,
		frames:   explosionFrames,
	})
}

// drawExplosions stamps live markers into the fresh grid
func (r *TerminalRenderer) drawExplosions() {
	for _, e := range r.explosions {
		r.plot(e.position, '*')
	}
}

// plot maps a world position to a cell and writes the glyph, clipping
// anything outside the grid. World +Y is up; terminal rows grow down.
func (r *TerminalRenderer) plot(position physics.Vector2D, glyph byte) {
	col := int((position.X/r.extent)*float64(r.cols)/2) + r.cols/2
	row := r.rows/2 - int((position.Y/r.extent)*float64(r.rows)/2)
	if col < 0 || col >= r.cols || row < 0 || row >= r.rows {
		return
	}
	r.cells[row][col] = glyph
}

func (r *TerminalRenderer) worldPerCol() float64 {
	return r.extent * 2 / float64(r.cols)
}

func (r *TerminalRenderer) worldPerRow() float64 {
	return r.extent * 2 / float64(r.rows)
}
