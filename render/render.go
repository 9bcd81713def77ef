// Package render draws a Position for humans: a plain-text grid and an
// SVG diagram. Spec §6 is explicit that position output is "exposition
// only, not a compatibility contract" — nothing here is consumed by the
// core, only by the cmd/showboard driver.
package render

import (
	"fmt"
	"io"

	"github.com/ajstarks/svgo"

	"github.com/brackenfield/chessmg/coord"
	"github.com/brackenfield/chessmg/position"
)

// Text returns the same 8x8 grid as Position.String; kept here too so
// callers that only import render get both output forms from one place.
func Text(pos *position.Position) string {
	return pos.String()
}

const squareSize = 48

var pieceGlyph = map[coord.Kind]string{
	coord.Pawn:   "P",
	coord.Knight: "N",
	coord.Bishop: "B",
	coord.Rook:   "R",
	coord.Queen:  "Q",
	coord.King:   "K",
}

// SVG draws pos as an 8x8 board to w, one square per board square plus a
// letter glyph for each occupied square. It favors legibility over
// fidelity: there is no piece artwork, just labeled squares.
func SVG(w io.Writer, pos *position.Position) {
	canvas := svg.New(w)
	dim := squareSize * 8
	canvas.Start(dim, dim)
	defer canvas.End()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			x := file * squareSize
			y := (7 - rank) * squareSize

			fill := "#f0d9b5"
			if (file+rank)%2 == 0 {
				fill = "#b58863"
			}
			canvas.Rect(x, y, squareSize, squareSize, fmt.Sprintf("fill:%s", fill))

			k, c, ok := pos.PieceAt(sq)
			if !ok {
				continue
			}
			glyph := pieceGlyph[k]
			textColor := "black"
			if c == coord.White {
				textColor = "white"
				canvas.Text(x+squareSize/2, y+squareSize/2+6, glyph,
					"text-anchor:middle;font-size:24px;fill:"+textColor+";stroke:black;stroke-width:0.5")
				continue
			}
			canvas.Text(x+squareSize/2, y+squareSize/2+6, glyph,
				"text-anchor:middle;font-size:24px;fill:"+textColor)
		}
	}
}
