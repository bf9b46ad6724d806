package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// Printer handles user-facing terminal output. Operator diagnostics go to the
// logger instead, never here.
type Printer struct {
	out       io.Writer
	useColors bool
}

// NewPrinter creates a printer writing to out. Colors are enabled only when
// out is a real terminal and NO_COLOR is unset.
func NewPrinter(out io.Writer) *Printer {
	useColors := false
	if f, ok := out.(*os.File); ok {
		useColors = term.IsTerminal(int(f.Fd()))
	}
	if _, off := os.LookupEnv("NO_COLOR"); off {
		useColors = false
	}
	return &Printer{out: out, useColors: useColors}
}

func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Success(format string, args ...any) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Warn(format string, args ...any) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Table renders rows under headers without borders, left aligned.
func (p *Printer) Table(headers []string, rows [][]string) {
	t := tablewriter.NewTable(p.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
	t.Header(headers)
	t.Bulk(rows)
	t.Render()
}
