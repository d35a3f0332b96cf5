package parser

import "git.lost.host/meutraa/frameui/internal/slides"

type Parser interface {
	Parse(file string) ([]*slides.Slide, error)
}
