package console

import (
	"fmt"
	"io"
)

const (
	infoPrefix    = "ℹ️  "
	successPrefix = "✅ "
	errorPrefix   = "❌ "
	promptPrefix  = "👉 "
)

// printer decorates operator-facing lines the same way on every screen.
type printer struct {
	w io.Writer
}

func (p printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

func (p printer) linef(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p printer) info(s string) {
	fmt.Fprintln(p.w, infoPrefix+s)
}

func (p printer) success(s string) {
	fmt.Fprintln(p.w, successPrefix+s)
}

func (p printer) failure(s string) {
	fmt.Fprintln(p.w, errorPrefix+s)
}

// prompt writes s without a trailing newline.
func (p printer) prompt(s string) {
	fmt.Fprint(p.w, promptPrefix+s)
}

func (p printer) block(s string) {
	fmt.Fprint(p.w, s)
}
