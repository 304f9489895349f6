package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/checkturnitin/adminctl/internal/models"
)

type staffList struct {
	Staffs []models.Staff `json:"data"`
}

func (c *Client) ListStaffs(ctx context.Context) ([]models.Staff, error) {
	var out staffList
	err := c.get(ctx, "/admin/staffs", nil, &out, "Failed to fetch staffs.")
	if err != nil {
		return nil, err
	}
	return out.Staffs, nil
}

// PromoteToStaff flips an existing user's account type to staff.
func (c *Client) PromoteToStaff(ctx context.Context, email, name, telegramID string) error {
	body := map[string]string{
		"email":      email,
		"type":       "staff",
		"name":       name,
		"telegramId": telegramID,
	}
	return c.send(ctx, resty.MethodPost, "/admin/change-user-type", body, nil, "Failed to update user type.")
}

// EditStaffRequest updates a staff member keyed by email. Status is always
// sent; Name and TelegramID only when set, mirroring the two call shapes
// the edit page used (status toggle vs full edit).
type EditStaffRequest struct {
	Email      string `json:"email"`
	Status     string `json:"status"`
	Name       string `json:"name,omitempty"`
	TelegramID string `json:"telegramId,omitempty"`
}

func (c *Client) EditStaff(ctx context.Context, req EditStaffRequest) error {
	return c.send(ctx, resty.MethodPost, "/admin/edit-staff", req, nil, "Failed to update staff details.")
}

func (c *Client) ChangeStaffPassword(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.send(ctx, resty.MethodPost, "/admin/change-staff-password", body, nil, "Failed to change password.")
}

func (c *Client) UpdateStaffCheckSettings(ctx context.Context, staffID, numberOfChecksPriority, checkTypeAllowed string) error {
	body := map[string]string{
		"staffId":                staffID,
		"numberOfChecksPriority": numberOfChecksPriority,
		"checkTypeAllowed":       checkTypeAllowed,
	}
	return c.send(ctx, resty.MethodPost, "/admin/update-staff-check-settings", body, nil, "Failed to update check settings.")
}

func (c *Client) UpdateStaffOnlineStatus(ctx context.Context, staffID string, isOnline bool) error {
	body := map[string]any{"staffId": staffID, "isOnline": isOnline}
	return c.send(ctx, resty.MethodPost, "/admin/update-staff-online-status", body, nil, "Failed to update online status.")
}

func (c *Client) DeleteStaff(ctx context.Context, staffID string) error {
	return c.send(ctx, resty.MethodDelete, "/admin/delete-staff/"+staffID, nil, nil, "Failed to remove staff.")
}
