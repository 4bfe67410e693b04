// Command rtfdump is a thin demonstration driver over the rtfdoc parser,
// the same role the teacher's msdocdump plays for the MS-DOC reader: open
// a file, run the parser to completion, and print what it collected. The
// CLI itself, the file I/O it wraps, and the markdown rendering below are
// all external collaborators to the parser (spec.md §1's Non-goals) — this
// command exists only so the library has a runnable demo, not because any
// of it is part of the parser's contract.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/TalentFormula/rtfdoc/format"
	"github.com/TalentFormula/rtfdoc/numbering"
	"github.com/TalentFormula/rtfdoc/parser"
	flag "github.com/ogier/pflag"
)

func main() {
	plainText := flag.Bool("plain-text", false, "deliver \\pntext list-marker glyphs to the text output")
	debug := flag.Bool("debug", false, "log every paragraph and page break as they are emitted")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: rtfdump [--plain-text] [--debug] <file.rtf>")
		os.Exit(1)
	}
	filename := flag.Arg(0)

	f, err := os.Open(filename)
	if err != nil {
		log.Fatalf("failed to open %s: %v", filename, err)
	}
	defer f.Close()

	out := newCollector(*debug)
	p := parser.New(f, parser.Config{Output: out, PlainText: *plainText})
	if err := p.Run(); err != nil {
		log.Fatalf("failed to parse %s: %v", filename, err)
	}

	fmt.Println("=== Document Text ===")
	fmt.Println(out.String())

	info := p.Info()
	fmt.Println("\n=== Metadata ===")
	fmt.Printf("Title: %s\n", info.Title)
	fmt.Printf("Subject: %s\n", info.Subject)
	fmt.Printf("Author: %s\n", info.Author)
	fmt.Printf("Company: %s\n", info.Company)
	fmt.Printf("Manager: %s\n", info.Manager)
	fmt.Printf("Category: %s\n", info.Category)
	fmt.Printf("Keywords: %s\n", info.Keywords)
	fmt.Printf("Created: %s\n", info.CreatedAt)
	fmt.Printf("Revised: %s\n", info.RevisedAt)
}

// collector is an destination.Output implementation good enough to drive a
// demo: it renders body text with hyperlinks as markdown links, mirroring
// the teacher's MarkdownText, and optionally logs structural events.
type collector struct {
	debug bool
	sb    strings.Builder
}

func newCollector(debug bool) *collector { return &collector{debug: debug} }

func (c *collector) String() string { return c.sb.String() }

func (c *collector) Write(text string, view format.View) error {
	c.sb.WriteString(text)
	return nil
}

func (c *collector) Par(view format.View) error {
	if c.debug {
		log.Print("paragraph break")
	}
	c.sb.WriteString("\n\n")
	return nil
}

func (c *collector) PageBreak(view format.View) error {
	if c.debug {
		log.Print("page break")
	}
	c.sb.WriteString("\n\x0c\n")
	return nil
}

func (c *collector) PlainText(text string) error {
	c.sb.WriteString(text)
	return nil
}

func (c *collector) Hyperlink(text, url string) error {
	fmt.Fprintf(&c.sb, "[%s](%s)", text, url)
	return nil
}

func (c *collector) NumberingOn(n *numbering.Numbering) error {
	if c.debug {
		log.Printf("numbering on: style=%s level=%d", n.Style, n.Level)
	}
	return nil
}

func (c *collector) NumberingOff(n *numbering.Numbering) error {
	if c.debug {
		log.Print("numbering off")
	}
	return nil
}

func (c *collector) EndDoc() error {
	if c.debug {
		log.Print("end of document")
	}
	return nil
}
