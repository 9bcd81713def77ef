// Command showboard renders a FEN position as text or SVG.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/brackenfield/chessmg/fen"
	"github.com/brackenfield/chessmg/render"
)

func main() {
	fenFlag := flag.String("fen", fen.StartPos, "FEN position to render")
	svgOut := flag.String("svg", "", "write an SVG diagram to this path instead of printing text")
	flag.Parse()

	var log logr.Logger = stdr.New(nil).WithName("showboard")

	pos, err := fen.Parse(*fenFlag)
	if err != nil {
		log.Error(err, "failed to parse FEN", "fen", *fenFlag)
		os.Exit(1)
	}

	if *svgOut == "" {
		fmt.Println(render.Text(pos))
		return
	}

	f, err := os.Create(*svgOut)
	if err != nil {
		log.Error(err, "failed to create SVG output file", "path", *svgOut)
		os.Exit(1)
	}
	defer f.Close()
	render.SVG(f, pos)
	log.Info("wrote board diagram", "path", *svgOut)
}
