package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"jsonlscope/internal/adapters/tui"
)

const promptText = "Enter the name of your .jsonl file (e.g. data.jsonl): "

// askPath asks for the file to analyze. A terminal gets the interactive
// prompt; piped input is read as a single line.
func askPath(in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return tui.AskPath(f, out)
	}

	if _, err := fmt.Fprint(out, promptText); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read file name: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
