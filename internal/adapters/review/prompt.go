// Package review implements the plan review prompt on a line-oriented
// terminal.
package review

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.loadout.dev/loadout/internal/core/domain"
	"go.loadout.dev/loadout/internal/core/ports"
	"go.loadout.dev/loadout/internal/ui/style"
	"go.trai.ch/zerr"
)

// Prompt implements ports.PlanReviewer by printing the plan and reading a
// one-line verdict: accept, cancel, or a list of row numbers to deselect.
type Prompt struct {
	in  *bufio.Scanner
	out *termenv.Output
}

var _ ports.PlanReviewer = (*Prompt)(nil)

// NewPrompt creates a Prompt reading verdicts from in and rendering to out.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:  bufio.NewScanner(in),
		out: termenv.NewOutput(out),
	}
}

// Review renders the ordered plan and blocks until the user answers. An
// answer of row numbers accepts the plan with those rows deselected.
func (p *Prompt) Review(ctx context.Context, plan domain.DownloadPlan) (domain.ReviewDecision, error) {
	p.render(plan)

	line, err := p.readLine(ctx)
	if err != nil {
		return domain.ReviewDecision{}, err
	}

	return p.parse(line, plan)
}

func (p *Prompt) render(plan domain.DownloadPlan) {
	fmt.Fprintln(p.out, style.Header.Render(
		fmt.Sprintf("Confirm %d resources to download", len(plan.Rows))))

	for i, row := range plan.Rows {
		fmt.Fprintf(p.out, "  %2d. %s %s\n", i+1,
			style.Name.Render(row.Name),
			style.Dim.Render(fmt.Sprintf("(%s, %s)", row.FileName, row.ProviderName)))
		if len(row.RequiredBy) > 0 {
			fmt.Fprintf(p.out, "      %s\n",
				style.Dim.Render("required by "+strings.Join(row.RequiredBy, ", ")))
		}
		if row.CustomPath != "" {
			fmt.Fprintf(p.out, "      %s\n",
				style.Dim.Render("installs to "+row.CustomPath))
		}
	}

	fmt.Fprint(p.out, "Accept? [y]es / [n]o / numbers to skip (e.g. 1 3): ")
}

// readLine reads one line of input, honoring ctx cancellation.
func (p *Prompt) readLine(ctx context.Context) (string, error) {
	type scanResult struct {
		line string
		err  error
	}

	ch := make(chan scanResult, 1)
	go func() {
		if !p.in.Scan() {
			err := p.in.Err()
			if err == nil {
				err = io.EOF
			}
			ch <- scanResult{err: err}
			return
		}
		ch <- scanResult{line: p.in.Text()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.err != nil {
			return "", zerr.Wrap(res.err, "failed to read review answer")
		}
		return res.line, nil
	}
}

func (p *Prompt) parse(line string, plan domain.DownloadPlan) (domain.ReviewDecision, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))

	if len(fields) == 0 {
		return domain.ReviewDecision{Accepted: true}, nil
	}

	// Verdict keywords only count on their own; "y 2" is ambiguous and is
	// rejected below rather than accepting and dropping the numbers.
	if len(fields) == 1 {
		switch fields[0] {
		case "y", "yes":
			return domain.ReviewDecision{Accepted: true}, nil
		case "n", "no", "q", "quit":
			return domain.ReviewDecision{}, nil
		}
	}

	var deselected []string
	for _, f := range fields {
		idx, err := strconv.Atoi(f)
		if err != nil || idx < 1 || idx > len(plan.Rows) {
			return domain.ReviewDecision{}, zerr.With(zerr.New("invalid review answer"), "answer", line)
		}
		deselected = append(deselected, plan.Rows[idx-1].Name)
	}

	return domain.ReviewDecision{Accepted: true, Deselected: deselected}, nil
}
