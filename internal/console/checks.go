package console

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/checkturnitin/adminctl/internal/api"
	"github.com/checkturnitin/adminctl/internal/export"
	"github.com/checkturnitin/adminctl/internal/poller"
)

// Checks renders one snapshot of the checks dashboard and exits. Watch is
// the live variant.
func (c *Console) Checks(ctx context.Context, page int) error {
	p := poller.New(c.client, c.log, c.pollInterval, c.pageSize)
	p.SetPage(page)

	snap, err := p.Fetch(ctx)
	if err != nil {
		c.notifyError(err)
		return err
	}
	c.renderChecksDashboard(snap, time.Now())
	return nil
}

// Watch re-renders the checks dashboard on every poll sweep until ctx is
// cancelled. Errors surface as one transient line and the loop keeps going.
func (c *Console) Watch(ctx context.Context, page int) {
	p := poller.New(c.client, c.log, c.pollInterval, c.pageSize)
	p.SetPage(page)

	p.Run(ctx,
		func(snap *poller.Snapshot) {
			c.renderChecksDashboard(snap, time.Now())
		},
		func(err error) {
			c.notifyError(err)
		},
	)
}

func (c *Console) renderChecksDashboard(snap *poller.Snapshot, now time.Time) {
	if snap.Summary != nil {
		c.heading("Checks Summary")
		c.table(
			[]string{"Pending", "Processing", "Completed", "Failed"},
			[][]string{{
				strconv.Itoa(snap.Summary.Pending),
				strconv.Itoa(snap.Summary.Processing),
				strconv.Itoa(snap.Summary.Completed),
				strconv.Itoa(snap.Summary.Failed),
			}},
		)
	}

	c.renderCheckBoard("Pending Checks", snap.Pending, now)
	c.renderCheckBoard("Processing Checks", snap.Processing, now)
	c.renderCheckBoard("Completed Checks", snap.Completed, now)

	if len(snap.Staff) > 0 {
		c.heading("Staff Workload")
		rows := make([][]string, 0, len(snap.Staff))
		for _, s := range snap.Staff {
			presence := "offline"
			if s.OnlineStatus {
				presence = "online"
			}
			prio := s.Checkouts.PendingPriorityCounts
			rows = append(rows, []string{
				s.Name, presence,
				strconv.Itoa(s.Checkouts.Total),
				strconv.Itoa(s.Checkouts.Pending),
				strconv.Itoa(s.Checkouts.Processing),
				strconv.Itoa(s.Checkouts.Completed),
				strconv.Itoa(s.Checkouts.Failed),
				fmt.Sprintf("%d/%d/%d", prio.High, prio.Medium, prio.Low),
			})
		}
		c.table([]string{"Staff", "Presence", "Total", "Pending", "Processing", "Completed", "Failed", "Prio H/M/L"}, rows)
	}

	// all three boards share one cursor, shown once
	c.pageFooter(pollerPage(snap), snap.TotalPages())
}

// pollerPage recovers the cursor the snapshot was fetched for. The boards
// carry no page number of their own, so the footer trusts the request page
// clamped into the reported range.
func pollerPage(snap *poller.Snapshot) int {
	if snap.Page < 1 {
		return 1
	}
	if snap.Page > snap.TotalPages() {
		return snap.TotalPages()
	}
	return snap.Page
}

func (c *Console) renderCheckBoard(title string, list *api.CheckList, now time.Time) {
	c.heading(title)
	if list == nil || len(list.Checks) == 0 {
		c.placeholder("checks")
		return
	}

	rows := make([][]string, 0, len(list.Checks))
	for _, check := range list.Checks {
		checkedBy := "-"
		if check.CheckedBy != nil {
			checkedBy = check.CheckedBy.Name
		}
		rows = append(rows, []string{
			check.ID,
			check.UserID.Email,
			check.Priority,
			checkedBy,
			fmt.Sprintf("%dh left", check.HoursLeft(now)),
		})
	}
	c.table([]string{"Check ID", "User", "Priority", "Checked By", "Deadline"}, rows)
}

// CheckDetails looks up a single check and prints its full card, including
// report links when the reports are ready.
func (c *Console) CheckDetails(ctx context.Context, checkID string) error {
	details, err := c.client.GetCheckDetails(ctx, checkID)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading("Check " + details.CheckID)
	c.table([]string{"Field", "Value"}, [][]string{
		{"Status", details.Status},
		{"Priority", details.Priority},
		{"Delivery", details.DeliveryTime},
		{"Checked By", details.CheckedBy},
		{"User", details.UserID},
		{"File", details.InputFile.OriginalFileName},
		{"Size", strconv.FormatInt(details.InputFile.FileSize, 10)},
		{"Type", details.InputFile.FileType},
		{"Uploaded", details.InputFile.UploadedAt},
	})

	if details.Reports != nil {
		if details.Reports.AI != nil {
			fmt.Fprintf(c.out, "AI report: score %s (%s)\n", details.Reports.AI.Score, details.Reports.AI.ReportURL)
		}
		if details.Reports.Plagiarism != nil {
			fmt.Fprintf(c.out, "Plagiarism report: score %s (%s)\n", details.Reports.Plagiarism.Score, details.Reports.Plagiarism.ReportURL)
		}
	}
	return nil
}

// DownloadReport saves a report PDF under its endpoint name.
func (c *Console) DownloadReport(ctx context.Context, endpoint string) error {
	data, err := c.client.DownloadReport(ctx, endpoint)
	if err != nil {
		c.notifyError(err)
		return err
	}

	path, err := c.saver.Save(export.ReportFilename(endpoint), data)
	if err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("report saved to %s", path)
	return nil
}
