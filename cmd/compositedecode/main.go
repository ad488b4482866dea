// main.go - composite video decoder CLI entry point
//
// (c) 2024 - 2026 Zayn Otley
// https://github.com/zaynotley/compositedecode
// License: GPLv3 or later

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zaynotley/compositedecode/internal/display"
	"github.com/zaynotley/compositedecode/internal/sampleio"
	"github.com/zaynotley/compositedecode/internal/video"
)

func boilerPlate() {
	fmt.Println("compositedecode - streaming composite video decoder")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/zaynotley/compositedecode")
	fmt.Println("License: GPLv3 or later")
}

func main() {
	boilerPlate()

	debugSync := flag.Bool("debug-sync", false, "print a trace line for every classified sync pulse")
	maxSamples := flag.Uint64("max-samples", 0, "stop after this many input samples (0 = unbounded)")
	flag.Usage = func() {
		fmt.Println("Usage: compositedecode [-debug-sync] [-max-samples N] <input-file>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	file, err := os.Open(inputPath)
	if err != nil {
		fmt.Printf("Error opening input file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	surface, err := display.NewSurface(display.Config{
		Width:  video.ScreenWidth,
		Height: video.ScreenHeight,
		Title:  "compositedecode",
	})
	if err != nil {
		fmt.Printf("Failed to initialize display: %v\n", err)
		os.Exit(1)
	}

	if err := surface.Start(); err != nil {
		fmt.Printf("Failed to start display: %v\n", err)
		os.Exit(1)
	}
	defer surface.Close()

	var opts []video.Option
	if *debugSync {
		opts = append(opts, video.WithDebugSync(true))
	}
	decoder := video.NewDecoder(surface, opts...)

	reader := sampleio.NewReader(file, sampleio.DefaultChunkSamples)

	var consumed uint64
	for {
		if *maxSamples != 0 && consumed >= *maxSamples {
			break
		}

		chunk, err := reader.Next()
		if *maxSamples != 0 && consumed+uint64(len(chunk)) > *maxSamples {
			chunk = chunk[:*maxSamples-consumed]
		}
		if len(chunk) > 0 {
			decoder.Push(chunk)
			consumed += uint64(len(chunk))
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			fmt.Printf("Error reading input samples: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Decoded %d samples from %s\n", consumed, inputPath)
}
