// Package demo walks through the copy-on-write consumers and prints what
// each step produced and whether it had to copy.
package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/AdrianWangs/go-cow/config"
	"github.com/AdrianWangs/go-cow/internal/buffer"
	"github.com/AdrianWangs/go-cow/internal/text"
	"github.com/AdrianWangs/go-cow/internal/user"
	"github.com/AdrianWangs/go-cow/pkg/cow"
	"github.com/AdrianWangs/go-cow/pkg/logger"
)

// Printer writes demo lines, tagging values with their variant
type Printer struct {
	w        io.Writer
	borrowed *color.Color
	owned    *color.Color
}

// NewPrinter creates a Printer. mode is "auto", "on" or "off".
func NewPrinter(w io.Writer, mode string) *Printer {
	p := &Printer{
		w:        w,
		borrowed: color.New(color.FgGreen),
		owned:    color.New(color.FgYellow, color.Bold),
	}
	switch mode {
	case "on":
		p.borrowed.EnableColor()
		p.owned.EnableColor()
	case "off":
		p.borrowed.DisableColor()
		p.owned.DisableColor()
	}
	return p
}

// Tag renders a variant as "[Borrowed]" or "[Owned]"
func (p *Printer) Tag(v cow.Variant) string {
	c := p.borrowed
	if v == cow.Owned {
		c = p.owned
	}
	return c.Sprintf("[%s]", v)
}

// Linef prints one formatted line
func (p *Printer) Linef(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Run prints the full walk-through driven by cfg
func Run(w io.Writer, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	appends, err := cfg.AppendBytes()
	if err != nil {
		return err
	}

	p := NewPrinter(w, cfg.Color)
	Strip(p, cfg.Text)
	Users(p, cfg.FirstName, cfg.LastName)
	Buffer(p, make([]byte, cfg.BufferSize), appends)
	return nil
}

// Strip removes spaces from s, prints the borrowed-or-owned view, a copy of
// it and then takes ownership of the result.
func Strip(p *Printer, s string) {
	value := text.RemoveWhitespaces(s)
	p.Linef("c: %s %s", value.Get(), p.Tag(value.Variant()))

	copied := strings.Clone(value.Get())
	p.Linef("%s", copied)

	logger.Debugf("taking ownership of stripped text, variant=%s", value.Variant())
	owned := value.IntoOwned()
	p.Linef("%s", owned)
}

// Users prints an owned user, a user borrowing literals and a user borrowing
// the given names.
func Users(p *Printer, firstName, lastName string) {
	printUser(p, user.NewOwned("first_name", "last_name"))
	printUser(p, user.NewBorrowed("first_name", "last_name"))

	// Fresh heap strings, standing in for names read at runtime.
	first, last := strings.Clone(firstName), strings.Clone(lastName)
	printUser(p, user.NewBorrowed(first, last))
}

func printUser(p *Printer, u *user.User) {
	v := cow.Borrowed
	if u.Owned() {
		v = cow.Owned
	}
	p.Linef("Name: %s %s", u, p.Tag(v))
}

// Buffer borrows data, then applies each append in turn
func Buffer(p *Printer, data []byte, appends [][]byte) {
	buf := buffer.New(data)
	p.Linef("%s %s", buf, p.Tag(bufferVariant(buf)))

	for _, more := range appends {
		buf.Append(more)
		p.Linef("%s %s", buf, p.Tag(bufferVariant(buf)))
	}
	logger.Debugf("buffer finished with %d bytes", buf.Len())
}

func bufferVariant(b *buffer.LazyBuffer) cow.Variant {
	if b.Cloned() {
		return cow.Owned
	}
	return cow.Borrowed
}
