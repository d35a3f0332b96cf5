package main

import (
	"log"
	"os"

	"git.lost.host/meutraa/frameui/internal/config"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
}

func run(args []string) error {
	if err := config.Parse(args); nil != err {
		return err
	}

	p := &Program{}
	if err := p.Init(); nil != err {
		return err
	}
	defer p.Deinit()

	return p.Run()
}
