package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rytmctl/rytm/command"
)

var (
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// printer is the query outlet of the console.
type printer struct {
	w io.Writer
}

func (p printer) Send(atoms []command.Atom) error {
	_, err := fmt.Fprintln(p.w, resultStyle.Render(command.FormatAtoms(atoms)))
	return err
}

func printError(w io.Writer, err error) {
	prefix := "error"
	if kind := command.KindOf(err); kind != command.NoError {
		prefix = kind.String()
	}
	fmt.Fprintln(w, kindStyle.Render(prefix+":"), errorStyle.Render(err.Error()))
}
