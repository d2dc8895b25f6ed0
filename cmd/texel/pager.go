package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"golang.org/x/term"
)

// page writes out to stdout, through $PAGER when stdout is a terminal
// and the content is taller than it.
func page(out string, disabled bool) {
	fd := int(os.Stdout.Fd())
	if disabled || !term.IsTerminal(fd) {
		fmt.Println(out)
		return
	}

	_, rows, err := term.GetSize(fd)
	if err == nil && strings.Count(out, "\n")+1 <= rows {
		fmt.Println(out)
		return
	}

	pager := os.Getenv("PAGER")
	if pager == "" {
		pager = "less -R"
	}
	argv, err := shellquote.Split(pager)
	if err != nil || len(argv) == 0 {
		fmt.Println(out)
		return
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(out)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Println(out)
	}
}
