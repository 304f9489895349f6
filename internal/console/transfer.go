package console

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/checkturnitin/adminctl/internal/api"
	"github.com/checkturnitin/adminctl/internal/debounce"
	"github.com/checkturnitin/adminctl/internal/fetch"
	"github.com/checkturnitin/adminctl/internal/models"
	"github.com/checkturnitin/adminctl/internal/objectid"
)

const suggestQuiet = 300 * time.Millisecond

// TransferBoard shows staff presence and the transfer history in one view.
func (c *Console) TransferBoard(ctx context.Context) error {
	board, err := c.client.GetTransferBoard(ctx)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading("Online Staff")
	if len(board.OnlineStaff) == 0 {
		c.placeholder("online staff")
	} else {
		c.table([]string{"ID", "Name"}, staffRefRows(board.OnlineStaff))
	}

	c.heading("Offline Staff")
	if len(board.OfflineStaff) == 0 {
		c.placeholder("offline staff")
	} else {
		c.table([]string{"ID", "Name"}, staffRefRows(board.OfflineStaff))
	}

	c.heading("Transfer History")
	if len(board.TransferHistory) == 0 {
		c.placeholder("check transfers")
		return nil
	}
	rows := make([][]string, 0, len(board.TransferHistory))
	for _, t := range board.TransferHistory {
		rows = append(rows, []string{
			t.CheckID.ID, t.FromStaff.Name, t.ToStaff.Name, t.Reason, t.Status,
		})
	}
	c.table([]string{"Check", "From", "To", "Reason", "Status"}, rows)
	return nil
}

func staffRefRows(refs []models.StaffRef) [][]string {
	rows := make([][]string, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, []string{ref.ID, ref.Name})
	}
	return rows
}

// SuggestSession is the interactive check-ID lookup used before a
// transfer. Keystrokes (lines) feed a debounced search against one staff
// member's pending checks; a lookup fires only for a query that is a full
// object ID and has been stable for the quiet period, and out-of-order
// responses never overwrite newer ones.
type SuggestSession struct {
	console  *Console
	staffID  string
	debounce *debounce.Debouncer
	latest   *fetch.Latest

	mu          sync.Mutex
	suggestions []models.PendingCheck
}

func (c *Console) NewSuggestSession(staffID string) *SuggestSession {
	return &SuggestSession{
		console:  c,
		staffID:  staffID,
		debounce: debounce.New(suggestQuiet),
		latest:   &fetch.Latest{},
	}
}

// Type feeds the next state of the query box. Without a staff id, or with
// a query shorter than a full check ID, nothing is fetched; the call only
// cancels any pending lookup.
func (s *SuggestSession) Type(ctx context.Context, query string) {
	if s.staffID == "" || !objectid.IsValid(query) {
		s.debounce.Stop()
		return
	}

	s.debounce.Trigger(func() {
		ticket := s.latest.Begin()
		checks, err := s.console.client.ListStaffPendingChecks(ctx, s.staffID, query)
		if err != nil {
			if s.latest.Commit(ticket) {
				s.console.notifyError(err)
			}
			return
		}
		if !s.latest.Commit(ticket) {
			return
		}

		s.mu.Lock()
		s.suggestions = checks
		s.console.renderSuggestions(checks)
		s.mu.Unlock()
	})
}

// Suggestions returns the last committed lookup result.
func (s *SuggestSession) Suggestions() []models.PendingCheck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggestions
}

func (s *SuggestSession) Close() {
	s.debounce.Stop()
}

func (c *Console) renderSuggestions(checks []models.PendingCheck) {
	if len(checks) == 0 {
		c.placeholder("pending checks")
		return
	}
	rows := make([][]string, 0, len(checks))
	for _, check := range checks {
		rows = append(rows, []string{check.ID, check.UserID.Email})
	}
	c.table([]string{"Check ID", "User"}, rows)
}

// TransferInteractive runs the suggestion flow before the transfer: each
// input line is a query-box state fed through the debounced search, an
// empty line accepts the newest suggestion as the check to move, and q
// cancels. The transfer itself then goes through Transfer.
func (c *Console) TransferInteractive(ctx context.Context, fromStaffID, toStaffID, reason string) error {
	if strings.TrimSpace(fromStaffID) == "" {
		err := fmt.Errorf("source staff id is required to search pending checks")
		c.notifyError(err)
		return err
	}

	session := c.NewSuggestSession(fromStaffID)
	defer session.Close()

	fmt.Fprintln(c.out, "type a check id to search, an empty line to accept the newest match, q to cancel")
	for {
		line, ok := c.readLine()
		if !ok || line == "q" {
			fmt.Fprintln(c.out, "cancelled")
			return nil
		}
		if line == "" {
			suggestions := session.Suggestions()
			if len(suggestions) == 0 {
				fmt.Fprintln(c.out, "no match yet, keep typing")
				continue
			}
			return c.Transfer(ctx, suggestions[0].ID, fromStaffID, toStaffID, reason)
		}
		session.Type(ctx, line)
	}
}

// Transfer reassigns one check between staff members and re-renders the
// board on success.
func (c *Console) Transfer(ctx context.Context, checkID, fromStaffID, toStaffID, reason string) error {
	if strings.TrimSpace(checkID) == "" || strings.TrimSpace(fromStaffID) == "" ||
		strings.TrimSpace(toStaffID) == "" || strings.TrimSpace(reason) == "" {
		err := fmt.Errorf("check, both staff members and a reason are required")
		c.notifyError(err)
		return err
	}

	req := api.TransferCheckRequest{
		CheckID:     checkID,
		FromStaffID: fromStaffID,
		ToStaffID:   toStaffID,
		Reason:      reason,
	}
	if err := c.client.TransferCheck(ctx, req); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Check transferred successfully.")
	return c.TransferBoard(ctx)
}
