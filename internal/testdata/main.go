package testdata

import (
	"os"
	"path/filepath"
)

const Slides = `; sample deck
title: status panel

#SLIDE: Network
eth0 up
wlan0 down

#SLIDE: Disk
; usage in percent
root 42%

#SLIDE:   Uptime  
3 days
`

// WriteSlides writes Slides into dir and returns the file path
func WriteSlides(dir string) (string, error) {
	file := filepath.Join(dir, "deck.slides")
	if err := os.WriteFile(file, []byte(Slides), 0o644); nil != err {
		return "", err
	}
	return file, nil
}
