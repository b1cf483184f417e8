// Program colorscheme renders the Ryguy colour scheme card: an
// 800×600 PNG with a background fill, a frame rectangle and an
// overlay string, driven by an optional JSON config with built-in
// defaults.
package main

import (
	"flag"
	"log"

	"github.com/ryguy/colorscheme/internal/config"
	"github.com/ryguy/colorscheme/internal/palette"
	"github.com/ryguy/colorscheme/internal/render"
)

const outputPath = "./custom_image.png"

func main() {
	configPath := flag.String("config", "./config.json", "path to the JSON colour/text config")
	lang := flag.String("lang", "en", "language code for the overlay text")
	flag.Parse()

	cfg := config.Load(*configPath)

	card := render.Card{
		Background: palette.FromSlice(cfg.BackgroundColor).Nudge(palette.BackgroundOffset).Color(),
		Frame:      palette.FromSlice(cfg.FrameColor).Nudge(palette.FrameOffset).Color(),
		Text:       palette.FromSlice(cfg.TextColor).Nudge(palette.TextOffset).Color(),
		Overlay:    cfg.ResolveText(*lang),
	}

	if err := card.Save(outputPath); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", outputPath)
}
