package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
)

// Delay paces every printed line so that bot turns can be followed.
var Delay = consts.DefaultDelay

func Printfln(format string, args ...interface{}) {
	Println(fmt.Sprintf(format, args...))
}

func Println(args ...interface{}) {
	fmt.Fprintln(color.Stdout, args...)
	time.Sleep(Delay)
}

// Print writes text that already ends in a line break, such as msg lines.
func Print(text string) {
	fmt.Fprint(color.Stdout, text)
	time.Sleep(Delay)
}

// Output paces writes the same way as Println. Renderers print through it.
var Output io.Writer = pacedWriter{}

type pacedWriter struct{}

func (pacedWriter) Write(p []byte) (int, error) {
	n, err := color.Stdout.Write(p)
	time.Sleep(Delay)
	return n, err
}
