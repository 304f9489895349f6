// Package console renders the admin pages on a terminal: every view
// fetches from the API, derives its table from local list state and prints
// it, and every mutation re-fetches to resynchronize with the server.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/checkturnitin/adminctl/internal/api"
	"github.com/checkturnitin/adminctl/internal/auth"
	"github.com/checkturnitin/adminctl/internal/export"
	"github.com/checkturnitin/adminctl/internal/listview"
)

type Console struct {
	client       *api.Client
	auth         *auth.Context
	saver        *export.Saver
	log          *logrus.Logger
	in           *bufio.Scanner
	out          io.Writer
	pageSize     int
	pollInterval time.Duration
}

func New(client *api.Client, authCtx *auth.Context, saver *export.Saver, log *logrus.Logger, in io.Reader, out io.Writer, pageSize int, pollInterval time.Duration) *Console {
	return &Console{
		client:       client,
		auth:         authCtx,
		saver:        saver,
		log:          log,
		in:           bufio.NewScanner(in),
		out:          out,
		pageSize:     pageSize,
		pollInterval: pollInterval,
	}
}

// readLine fetches the next command line from the terminal; false on EOF.
func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// notifySuccess and notifyError are the transient toasts of the terminal:
// one line, then the view moves on.
func (c *Console) notifySuccess(format string, args ...any) {
	fmt.Fprintf(c.out, "ok: "+format+"\n", args...)
}

func (c *Console) notifyError(err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		fmt.Fprintf(c.out, "error: %s\n", apiErr.Message)
		return
	}
	if errors.Is(err, auth.ErrNotLoggedIn) {
		fmt.Fprintln(c.out, "error: not logged in, run the login command first")
		return
	}
	fmt.Fprintf(c.out, "error: %v\n", err)
}

func (c *Console) heading(title string) {
	fmt.Fprintf(c.out, "\n%s\n", title)
}

// placeholder is the empty-collection state: fixed text, no table, no
// pagination controls.
func (c *Console) placeholder(what string) {
	fmt.Fprintf(c.out, "No %s found\n", what)
}

func (c *Console) table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	printRow(w, headers)
	for _, row := range rows {
		printRow(w, row)
	}
	_ = w.Flush()
}

func printRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}

// pageFooter prints the cursor line with Previous/Next gated exactly at
// the boundaries.
func (c *Console) pageFooter(page, totalPages int) {
	prev := "[p]rev"
	if page == 1 {
		prev = "      "
	}
	next := "[n]ext"
	if page == totalPages {
		next = "      "
	}
	fmt.Fprintf(c.out, "%s  Page %d of %d  %s\n", prev, page, totalPages, next)
}

// browse drives a client-side sortable list: print the current page, then
// take single-letter commands (n/p to page, a sort-field letter to toggle,
// q or EOF to leave). An empty collection short-circuits to the
// placeholder with no controls at all.
func browse[T any](c *Console, v *listview.View[T], what string, headers []string, sortFields map[string]string, row func(T) []string) {
	if v.Empty() {
		c.placeholder(what)
		return
	}

	for {
		rows := make([][]string, 0, c.pageSize)
		for _, item := range v.Page() {
			rows = append(rows, row(item))
		}
		c.table(headers, rows)
		c.pageFooter(v.PageNum(), v.TotalPages())
		fmt.Fprintf(c.out, "sort: %s %s  (%s, q to quit)\n", v.SortBy(), v.SortOrder(), sortHint(sortFields))

		line, ok := c.readLine()
		if !ok {
			return
		}
		switch line {
		case "q", "quit":
			return
		case "n":
			v.Next()
		case "p":
			v.Prev()
		default:
			if field, ok := sortFields[line]; ok {
				v.ToggleSort(field)
			}
		}
	}
}

func sortHint(sortFields map[string]string) string {
	keys := make([]string, 0, len(sortFields))
	for key := range sortFields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	hint := ""
	for _, key := range keys {
		if hint != "" {
			hint += ", "
		}
		hint += key + "=" + sortFields[key]
	}
	return hint
}
