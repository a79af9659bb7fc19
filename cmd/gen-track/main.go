package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"racing-line-reward/internal/track"
)

func main() {
	out := flag.String("out", "assets/track.png", "output PNG path")
	width := flag.Int("width", 800, "image width in pixels")
	height := flag.Int("height", 600, "image height in pixels")
	flag.Parse()

	if err := write(*out, *width, *height); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func write(path string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, track.GenerateOval(width, height)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
