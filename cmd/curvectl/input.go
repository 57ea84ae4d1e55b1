package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

// readInput returns the request passed with the --request flag, or the
// content of the --file flag, or stdin as a fallback.
func readInput(ctx *cli.Context) ([]byte, error) {
	request, file := ctx.String(requestFlag.Name), ctx.String(fileFlag.Name)
	if request != "" && file != "" {
		return nil, fmt.Errorf("--request and --file are mutually exclusive")
	}

	if request != "" {
		return []byte(request), nil
	}
	if file != "" {
		buf, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading request file: %w", err)
		}
		return buf, nil
	}

	reader := ctx.App.Reader
	if reader == nil {
		reader = os.Stdin
	}
	buf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading request from stdin: %w", err)
	}
	if len(strings.TrimSpace(string(buf))) <= 0 {
		return nil, fmt.Errorf("missing request")
	}
	return buf, nil
}

func printLine(ctx *cli.Context, line string) {
	fmt.Fprintln(ctx.App.Writer, line)
}
