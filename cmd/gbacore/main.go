package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/arinoir/gbacore/core"
	"github.com/arinoir/gbacore/video"
)

const stepsPerFrame = 280896 // one GBA frame's worth of scheduler cycles

func main() {
	biosPath := flag.String("bios", "gba_bios.bin", "path to the BIOS file")
	romPath := flag.String("rom", "", "path to the ROM file")
	sramPath := flag.String("sram", "", "path to a save file to load at startup")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("gbacore: -rom is required")
	}

	bios := loadBios(*biosPath)
	cart := loadRom(*romPath)

	machine := core.NewMachine(bios, cart)

	if *sramPath != "" {
		if f, err := os.Open(*sramPath); err == nil {
			defer f.Close()
			if err := machine.LoadSRAM(f); err != nil {
				log.Printf("gbacore: failed to load save file: %v", err)
			}
		}
	}

	game := &gameLoop{machine: machine, sink: video.NewEbitenFrameSink()}

	ebiten.SetWindowSize(core.FrameWidth*3, core.FrameHeight*3)
	ebiten.SetWindowTitle("gbacore")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// gameLoop is a minimal ebiten.Game driving the machine one frame's worth
// of scheduler cycles per Update tick and presenting whatever the PPU
// stub's framebuffer holds.
type gameLoop struct {
	machine *core.Machine
	sink    *video.EbitenFrameSink
}

func (g *gameLoop) Update() error {
	target := g.machine.Scheduler.Cycles + stepsPerFrame
	g.machine.RunUntil(target)
	g.sink.Present(g.machine.Ppu.Frame())
	return nil
}

func (g *gameLoop) Draw(screen *ebiten.Image) {
	g.sink.Draw(screen)
}

func (g *gameLoop) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.FrameWidth, core.FrameHeight
}

func loadBios(path string) *core.Bios {
	log.Printf("loading bios \"%s\"", path)
	start := time.Now()

	file, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	bios, err := core.LoadBios(file)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("loaded bios in %s", time.Since(start))
	return bios
}

func loadRom(path string) *core.Cartridge {
	log.Printf("loading rom \"%s\"", path)
	start := time.Now()

	file, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	cart, err := core.LoadRom(file)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("loaded rom in %s", time.Since(start))
	return cart
}
