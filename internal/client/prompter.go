package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-reader-sync/models"
)

var errNoAnswer = errors.New("no answer to the prompt")

// StdinPrompter asks on a terminal whether remote data should replace local
// data.
type StdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *StdinPrompter {
	return &StdinPrompter{in: bufio.NewReader(in), out: out}
}

// ConfirmRemoteData returns true for "y" or "yes". Anything else declines.
func (p *StdinPrompter) ConfirmRemoteData(ctx context.Context, backend string, payload models.SyncPayload) (bool, error) {
	when := payload.LastSync
	if when == "" {
		when = "unknown time"
	}
	fmt.Fprintf(p.out, "Found synced data on %s from %s.\nReplace local data with it? [y/N]: ", backend, when)

	type answer struct {
		line string
		err  error
	}
	answers := make(chan answer, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		answers <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-answers:
		if a.err != nil && (!errors.Is(a.err, io.EOF) || a.line == "") {
			return false, fmt.Errorf("%w: %w", errNoAnswer, a.err)
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
