// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Command thumbygraydemo drives a Thumby-style SSD1306 grayscale panel: it
// draws a short animated scene, streams it through the sub-frame grayscale
// engine, and optionally mirrors each frame to the terminal or, instead of
// animating, writes a single PNG calibration snapshot. It follows the same host.Init/spireg/gpioreg
// wiring waveshare2in13v2's and inky's Example functions use.
package main

import (
	"flag"
	"log"
	"os"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/thumbygray/grayscale/calibration"
	"github.com/thumbygray/grayscale/config"
	"github.com/thumbygray/grayscale/console"
	"github.com/thumbygray/grayscale/grayscale"
)

func main() {
	spiPort := flag.String("spi", "", "SPI port name, empty for the first available")
	dcPin := flag.String("dc", "22", "D/C GPIO pin name")
	csPin := flag.String("cs", "8", "CS GPIO pin name")
	resPin := flag.String("res", "27", "RES GPIO pin name")
	configPath := flag.String("config", "thumbygray.cfg", "calibration config path")
	preview := flag.Bool("preview", false, "mirror every frame to the terminal")
	snapshot := flag.String("snapshot", "", "write one PNG calibration snapshot to this path and exit")
	frames := flag.Int("frames", 150, "number of frames to animate before exiting")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatalf("host.Init: %v", err)
	}

	cfg := loadConfig(*configPath)
	log.Printf("using display_refresh_time_us=%d", cfg.DisplayRefreshTimeUs)

	port, err := spireg.Open(*spiPort)
	if err != nil {
		log.Fatalf("spireg.Open: %v", err)
	}
	defer port.Close()

	dc := gpioreg.ByName(*dcPin)
	cs := gpioreg.ByName(*csPin)
	res := gpioreg.ByName(*resPin)
	if dc == nil || cs == nil || res == nil {
		log.Fatal("one or more GPIO pins not found")
	}

	err = grayscale.Run(port, grayscale.Opts{DC: dc, CS: cs, RES: res, Logger: log.Default()}, func(e *grayscale.Engine) error {
		if *snapshot != "" {
			drawScene(e.Planes(), 0)
			return calibration.SaveFile(*snapshot, e.Planes(), calibration.DefaultScale, "thumbygraydemo")
		}

		var dev *console.Dev
		if *preview {
			dev = console.New(console.Opts{})
		}

		e.SetFrameRate(30)
		for i := 0; i < *frames; i++ {
			drawScene(e.Planes(), i)
			if err := e.Tick(); err != nil {
				return err
			}
			if dev != nil {
				if err := dev.Show(e.Planes()); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path string) config.Config {
	f, err := os.Open(path)
	if err != nil {
		return config.Default()
	}
	defer f.Close()
	return config.Load(f)
}

// drawScene paints a White box with a LightGray outline bouncing across a
// DarkGray background, one frame of a looping animation driven by frame
// index i.
func drawScene(p *grayscale.Planes, i int) {
	p.Fill(grayscale.Black)
	p.DrawFilledRect(0, 0, grayscale.Width, grayscale.Height, grayscale.DarkGray)

	const boxW, boxH = 12, 12
	period := 2 * (grayscale.Width - boxW)
	pos := i % period
	if pos > grayscale.Width-boxW {
		pos = period - pos
	}
	p.DrawFilledRect(pos, (grayscale.Height-boxH)/2, boxW, boxH, grayscale.White)
	p.DrawRect(pos, (grayscale.Height-boxH)/2, boxW, boxH, grayscale.LightGray)
}
