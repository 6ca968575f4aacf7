// Command zxmeter is a live terminal password-strength meter. Type a
// password and the screen updates on every keystroke with the current
// score, verdict, a progress bar, and the top feedback issues.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "zxmeter: %v\n", err)
		os.Exit(1)
	}
}
