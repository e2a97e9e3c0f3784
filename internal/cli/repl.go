// internal/cli/repl.go
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"tourism-agent/internal/common/logger"
)

// Processor answers one utterance with a rendered text reply.
type Processor interface {
	Process(ctx context.Context, text string) string
}

var exitWords = map[string]bool{
	"exit": true, "quit": true, "bye": true, "q": true,
}

// REPL is the interactive read-eval loop. It owns no query state; every
// line is an independent query.
type REPL struct {
	processor Processor
	in        io.Reader
	out       io.Writer
	logger    logger.Logger
}

func New(processor Processor, in io.Reader, out io.Writer, log logger.Logger) *REPL {
	return &REPL{
		processor: processor,
		in:        in,
		out:       out,
		logger:    log.WithFields(map[string]interface{}{"component": "repl"}),
	}
}

// Run prompts until EOF, an exit word, or context cancellation. Empty
// input is silently re-prompted.
func (r *REPL) Run(ctx context.Context) error {
	r.printBanner()

	scanner := bufio.NewScanner(r.in)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fmt.Fprint(r.out, "\nYou: ")
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if exitWords[strings.ToLower(line)] {
			fmt.Fprintln(r.out, "\nThanks for using the Tourism Agent! Safe travels!")
			return nil
		}

		reply := r.processor.Process(ctx, line)
		fmt.Fprintf(r.out, "\nTourism Agent:\n%s\n", reply)
	}
}

func (r *REPL) printBanner() {
	divider := strings.Repeat("=", 60)
	fmt.Fprintln(r.out, divider)
	fmt.Fprintln(r.out, "Welcome to the Tourism Agent!")
	fmt.Fprintln(r.out, divider)
	fmt.Fprintln(r.out, "\nYou can ask me about:")
	fmt.Fprintln(r.out, "  - Weather in a location")
	fmt.Fprintln(r.out, "  - Tourist attractions to visit")
	fmt.Fprintln(r.out, "  - Or both!")
	fmt.Fprintln(r.out, "\nExamples:")
	fmt.Fprintln(r.out, "  - I'm going to Paris, let's plan my trip")
	fmt.Fprintln(r.out, "  - What's the temperature in Tokyo?")
	fmt.Fprintln(r.out, "  - I want to visit London, what's the weather and what can I see?")
	fmt.Fprintln(r.out, "\nType 'exit' to quit.")
	fmt.Fprintln(r.out, divider)
}
