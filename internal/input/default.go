package input

import (
	"log"

	"github.com/eiannone/keyboard"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

type Command uint8

const (
	None Command = iota
	Next
	Previous
	ToggleAuto
	Quit
)

// Listen reads the keyboard until Close and sends every recognised key to
// commands. Keys are dropped if commands is full.
func Listen(commands chan<- Command) error {
	keys, err := keyboard.GetKeys(16)
	if nil != err {
		return errors.Wrap(err, "unable to open keyboard")
	}
	go func() {
		for key := range keys {
			if nil != key.Err {
				log.Println("unable to read keyboard", key.Err)
				return
			}
			send(commands, FromKey(key.Key, key.Rune))
		}
	}()
	return nil
}

func Close() {
	if err := keyboard.Close(); nil != err {
		log.Println("unable to close keyboard", err)
	}
}

// FromKey maps a keyboard key, or a rune when key is zero, to a command
func FromKey(key keyboard.Key, r rune) Command {
	switch key {
	case keyboard.KeyArrowRight:
		return Next
	case keyboard.KeyArrowLeft:
		return Previous
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Quit
	case 0:
		return fromRune(r)
	}
	return None
}

// FromEvent maps a tcell event to a command
func FromEvent(ev tcell.Event) Command {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return None
	}
	switch key.Key() {
	case tcell.KeyRight:
		return Next
	case tcell.KeyLeft:
		return Previous
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyRune:
		return fromRune(key.Rune())
	}
	return None
}

// ListenScreen forwards key events of a tcell screen until it is finalised
func ListenScreen(screen tcell.Screen, commands chan<- Command) {
	go func() {
		for {
			ev := screen.PollEvent()
			if nil == ev {
				return
			}
			send(commands, FromEvent(ev))
		}
	}()
}

func fromRune(r rune) Command {
	switch r {
	case 'l', 'n', ' ':
		return Next
	case 'h', 'p':
		return Previous
	case 'a':
		return ToggleAuto
	case 'q':
		return Quit
	}
	return None
}

func send(commands chan<- Command, c Command) {
	if c == None {
		return
	}
	select {
	case commands <- c:
	default:
	}
}
