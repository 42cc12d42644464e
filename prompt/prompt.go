package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// menu maps the numbered choices to sort tokens
var menu = []struct {
	choice string
	label  string
	token  string
}{
	{"1", "Alphabetical (Name)", "Name"},
	{"2", "By PID", "PID"},
	{"3", "By User", "User"},
	{"4", "By Status", "Status"},
}

// SortPrompter asks the user which key the export is sorted by
type SortPrompter struct {
	In  io.Reader
	Out io.Writer
}

// Ask prints the menu and returns the chosen token. A numbered choice maps
// to its token, anything else is returned trimmed for the caller to resolve.
func (p *SortPrompter) Ask() (string, error) {
	fmt.Fprintln(p.Out, "Choose the sorting type for the processes:")
	for _, m := range menu {
		fmt.Fprintf(p.Out, "%s. %s\n", m.choice, m.label)
	}
	fmt.Fprint(p.Out, "Enter the number corresponding to your choice: ")

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read choice: %w", err)
	}

	choice := strings.TrimSpace(line)
	for _, m := range menu {
		if choice == m.choice {
			return m.token, nil
		}
	}
	return choice, nil
}
