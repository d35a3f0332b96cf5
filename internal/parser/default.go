package parser

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"git.lost.host/meutraa/frameui/internal/slides"
)

// ErrNoSlides is returned for files without a single #SLIDE: section
var ErrNoSlides = errors.New("no #SLIDE: sections found")

const header = "#SLIDE:"

// DefaultParser reads slides files:
//
//	; comments start with a semicolon
//	#SLIDE: Title
//	first line
//	second line
//
// Anything before the first header is ignored.
type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) ([]*slides.Slide, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, err
	}
	ss, err := p.ParseString(string(data))
	if nil != err {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return ss, nil
}

func (p *DefaultParser) ParseString(data string) ([]*slides.Slide, error) {
	str := strings.ReplaceAll(data, "\r", "")
	sections := strings.Split(str, "\n"+header)
	if strings.HasPrefix(str, header) {
		sections[0] = strings.TrimPrefix(sections[0], header)
	} else {
		sections = sections[1:]
	}

	ss := []*slides.Slide{}
	for _, section := range sections {
		lines := strings.Split(section, "\n")
		slide := &slides.Slide{Title: strings.TrimSpace(lines[0])}
		for _, l := range lines[1:] {
			if strings.HasPrefix(strings.TrimSpace(l), ";") {
				continue
			}
			slide.Lines = append(slide.Lines, strings.TrimRight(l, " \t"))
		}
		// Drop the blank lines between sections
		for len(slide.Lines) > 0 && slide.Lines[len(slide.Lines)-1] == "" {
			slide.Lines = slide.Lines[:len(slide.Lines)-1]
		}
		ss = append(ss, slide)
	}

	if len(ss) == 0 {
		return nil, ErrNoSlides
	}
	return ss, nil
}
