package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/checkturnitin/adminctl/internal/models"
)

type CheckList struct {
	Checks     []models.Check `json:"data"`
	TotalPages int            `json:"totalPages"`
}

func (c *Client) ListPendingChecks(ctx context.Context, page, limit int) (*CheckList, error) {
	return c.listChecks(ctx, "/admin/pending-checks", page, limit)
}

func (c *Client) ListProcessingChecks(ctx context.Context, page, limit int) (*CheckList, error) {
	return c.listChecks(ctx, "/admin/processing-checks", page, limit)
}

func (c *Client) ListCompletedChecks(ctx context.Context, page, limit int) (*CheckList, error) {
	return c.listChecks(ctx, "/admin/completed-checks", page, limit)
}

func (c *Client) listChecks(ctx context.Context, path string, page, limit int) (*CheckList, error) {
	var out CheckList
	err := c.get(ctx, path, pageQuery(page, limit), &out, "Failed to fetch data.")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetChecksSummary(ctx context.Context) (*models.CheckSummary, error) {
	var out struct {
		Data models.CheckSummary `json:"data"`
	}
	err := c.get(ctx, "/admin/checks-summary", nil, &out, "Failed to fetch data.")
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) ListStaffCheckDetails(ctx context.Context) ([]models.StaffCheckDetail, error) {
	var out struct {
		Data []models.StaffCheckDetail `json:"data"`
	}
	err := c.get(ctx, "/admin/staff-each-detail", nil, &out, "Failed to fetch data.")
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) GetCheckDetails(ctx context.Context, checkID string) (*models.CheckDetails, error) {
	var out struct {
		Success bool                 `json:"success"`
		Data    *models.CheckDetails `json:"data"`
	}
	err := c.get(ctx, "/admin/check/"+checkID+"/details", nil, &out, "Failed to fetch check details.")
	if err != nil {
		return nil, err
	}
	if !out.Success || out.Data == nil {
		return nil, &Error{Message: "No check details found."}
	}
	return out.Data, nil
}

// DownloadReport fetches a generated report (AI or plagiarism PDF) by its
// server-side download endpoint name.
func (c *Client) DownloadReport(ctx context.Context, endpoint string) ([]byte, error) {
	return c.download(ctx, resty.MethodGet, "/admin/download/"+endpoint, nil, nil, "Failed to download file.")
}

// TransferBoard is everything the transfer view needs in one response:
// who is online, who is not, and the transfer history.
type TransferBoard struct {
	TransferHistory []models.CheckTransfer `json:"transferHistory"`
	OnlineStaff     []models.StaffRef      `json:"onlineStaff"`
	OfflineStaff    []models.StaffRef      `json:"offlineStaff"`
}

func (c *Client) GetTransferBoard(ctx context.Context) (*TransferBoard, error) {
	var out struct {
		Data TransferBoard `json:"data"`
	}
	err := c.get(ctx, "/admin/staff-status-transferhistory", nil, &out, "Failed to fetch check transfers and staff status.")
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ListStaffPendingChecks searches one staff member's pending workload.
func (c *Client) ListStaffPendingChecks(ctx context.Context, staffID, search string) ([]models.PendingCheck, error) {
	query := map[string]string{}
	if search != "" {
		query["search"] = search
	}
	var out struct {
		Data []models.PendingCheck `json:"data"`
	}
	err := c.get(ctx, "/admin/staff-pending-checks/"+staffID, query, &out, "Failed to fetch pending checks.")
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

type TransferCheckRequest struct {
	CheckID     string `json:"checkId"`
	FromStaffID string `json:"fromStaffId"`
	ToStaffID   string `json:"toStaffId"`
	Reason      string `json:"reason"`
}

func (c *Client) TransferCheck(ctx context.Context, req TransferCheckRequest) error {
	return c.send(ctx, resty.MethodPost, "/admin/transfer-check", req, nil, "Failed to transfer check.")
}
