package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tkalvik/ironspear/internal/game"
)

func main() {
	ebiten.SetWindowTitle("Ironspear")
	ebiten.SetWindowSize(960, 600)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
