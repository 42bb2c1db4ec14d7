// Package ui is the terminal presentation layer.
// It forwards typed commands to the roster service and renders snapshots.
// It never holds roster state of its own beyond what a snapshot carries.
package ui

import (
	"attendance-lab/contract"
	"attendance-lab/domain"
	"attendance-lab/errors"
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const prompt = "> "

const helpText = `Commands:
  add <name>      add an attendee
  type <text>     fill the add field
  submit          add whatever is in the add field
  toggle <n>      mark row n present / absent
  edit <n>        start renaming row n
  draft <text>    change the name being edited
  save            save the edit
  delete <n>      remove row n
  list            show the roster
  help            show this help
  quit            leave`

// FeedSource supplies recent activity lines shown under the table.
type FeedSource interface {
	Lines() []string
}

type Console struct {
	service contract.IRosterService
	feed    FeedSource
	out     io.Writer
	title   string
	colours bool
}

func NewConsole(service contract.IRosterService, feed FeedSource, out io.Writer, title string, colours bool) *Console {
	return &Console{service: service, feed: feed, out: out, title: title, colours: colours}
}

// Run reads one command per line until quit, EOF, or ctx is done.
// Lines are read on a separate goroutine so a cancelled ctx ends Run even
// while it waits at the prompt.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, readErr := readLines(ctx, in)

	c.Render()
	for {
		fmt.Fprint(c.out, prompt)
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.out)
				return <-readErr
			}
			line = l
		}

		quit, err := c.Execute(ctx, line)
		if quit {
			return nil
		}
		if err != nil {
			fmt.Fprintln(c.out, c.paint(color.FgRed, hint(err)))
			continue
		}
		c.Render()
	}
}

// readLines feeds scanned lines into the returned channel and closes it at EOF
// or once ctx is done. The error channel always receives exactly one value.
// A reader blocked in Read stays blocked until it returns; for stdin that is
// process exit.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

// Execute applies a single command line. Errors describe malformed commands only;
// roster validation failures show up in the next rendered snapshot.
func (c *Console) Execute(ctx context.Context, line string) (bool, error) {
	name, arg, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
	switch strings.ToLower(name) {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(c.out, helpText)
		return false, nil
	case "list":
		return false, nil
	case "add":
		_, _ = c.service.Add(ctx, arg)
		return false, nil
	case "type":
		c.service.SetInput(arg)
		return false, nil
	case "submit":
		_, _ = c.service.SubmitInput(ctx)
		return false, nil
	case "toggle":
		id, err := c.resolve(arg)
		if err != nil {
			return false, err
		}
		c.service.Toggle(ctx, id)
		return false, nil
	case "edit":
		id, err := c.resolve(arg)
		if err != nil {
			return false, err
		}
		c.service.BeginEdit(ctx, id)
		return false, nil
	case "draft":
		c.service.UpdateEditDraft(arg)
		return false, nil
	case "save":
		_, _ = c.service.CommitEdit(ctx)
		return false, nil
	case "delete", "del", "rm":
		id, err := c.resolve(arg)
		if err != nil {
			return false, err
		}
		c.service.Remove(ctx, id)
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", errors.ErrUnknownCommand, name)
	}
}

// resolve maps a 1-based row number from the last render to an attendee id.
func (c *Console) resolve(arg string) (domain.AttendeeID, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", errors.ErrMissingArgs
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errors.ErrInvalidIndex, arg)
	}
	attendees := c.service.Snapshot().Attendees
	if n < 1 || n > len(attendees) {
		return "", fmt.Errorf("%w: %d", errors.ErrInvalidIndex, n)
	}
	return attendees[n-1].ID, nil
}

func (c *Console) Render() {
	snap := c.service.Snapshot()

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.paint(color.OpBold, c.title))
	if snap.Input != "" {
		fmt.Fprintf(c.out, "Add field: %q\n", snap.Input)
	}
	if snap.ValidationError != "" {
		fmt.Fprintln(c.out, c.paint(color.FgRed, snap.ValidationError))
	}

	if len(snap.Attendees) == 0 {
		fmt.Fprintln(c.out, "No attendees yet.")
	} else {
		c.renderTable(snap)
	}

	fmt.Fprintln(c.out, c.paint(color.FgGreen, fmt.Sprintf("Present: %d / %d", snap.Summary.Present, snap.Summary.Total)))

	if c.feed != nil {
		for _, line := range c.feed.Lines() {
			fmt.Fprintln(c.out, c.paint(color.FgGray, "  · "+line))
		}
	}
}

func (c *Console) renderTable(snap domain.Snapshot) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"#", "Present", "Name"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for i, a := range snap.Attendees {
		mark := "[ ]"
		if a.Present {
			mark = "[x]"
		}
		name := a.Name
		if snap.IsEditing(a.ID) {
			name = fmt.Sprintf("%s -> %q (editing)", a.Name, snap.Edit.Draft)
		}
		table.Append([]string{strconv.Itoa(i + 1), mark, name})
	}
	table.Render()
}

func (c *Console) paint(style color.Color, s string) string {
	if !c.colours {
		return s
	}
	return color.New(style).Render(s)
}

func hint(err error) string {
	return fmt.Sprintf("%v (type \"help\" for commands)", err)
}
