package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/checkturnitin/adminctl/internal/api"
	"github.com/checkturnitin/adminctl/internal/models"
)

func (c *Console) Staffs(ctx context.Context) error {
	staffs, err := c.client.ListStaffs(ctx)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading("Staff Members")
	if len(staffs) == 0 {
		c.placeholder("staff members")
		return nil
	}

	rows := make([][]string, 0, len(staffs))
	for _, s := range staffs {
		online := "offline"
		if s.IsOnline {
			online = "online"
		}
		rows = append(rows, []string{
			s.Name, s.Email, s.Status, online, s.TelegramID,
			s.NumberOfChecksPriority, s.CheckTypeAllowed,
		})
	}
	c.table([]string{"Name", "Email", "Status", "Presence", "Telegram", "Checks Priority", "Check Type"}, rows)
	return nil
}

func (c *Console) PromoteToStaff(ctx context.Context, email, name, telegramID string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(name) == "" {
		err := fmt.Errorf("please provide email and name")
		c.notifyError(err)
		return err
	}

	if err := c.client.PromoteToStaff(ctx, email, name, telegramID); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("User promoted to staff.")
	return c.Staffs(ctx)
}

// ToggleStaffStatus flips active/inactive for the staff member with the
// given email, then re-renders the roster.
func (c *Console) ToggleStaffStatus(ctx context.Context, email string) error {
	staff, err := c.findStaff(ctx, email)
	if err != nil {
		return err
	}

	newStatus := models.UserStatusInactive
	if staff.Status == models.UserStatusInactive {
		newStatus = models.UserStatusActive
	}

	if err := c.client.EditStaff(ctx, api.EditStaffRequest{Email: staff.Email, Status: newStatus}); err != nil {
		c.notifyError(err)
		return err
	}
	if newStatus == models.UserStatusActive {
		c.notifySuccess("Staff activated successfully.")
	} else {
		c.notifySuccess("Staff deactivated successfully.")
	}
	return c.Staffs(ctx)
}

func (c *Console) EditStaff(ctx context.Context, email, name, telegramID string) error {
	staff, err := c.findStaff(ctx, email)
	if err != nil {
		return err
	}

	req := api.EditStaffRequest{
		Email:      staff.Email,
		Status:     staff.Status,
		Name:       name,
		TelegramID: telegramID,
	}
	if err := c.client.EditStaff(ctx, req); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Staff details updated successfully.")
	return c.Staffs(ctx)
}

func (c *Console) ChangeStaffPassword(ctx context.Context, email, password string) error {
	if password == "" {
		err := fmt.Errorf("password must not be empty")
		c.notifyError(err)
		return err
	}

	if err := c.client.ChangeStaffPassword(ctx, email, password); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Password changed successfully.")
	return nil
}

func (c *Console) UpdateStaffCheckSettings(ctx context.Context, email, numberOfChecksPriority, checkTypeAllowed string) error {
	staff, err := c.findStaff(ctx, email)
	if err != nil {
		return err
	}

	if err := c.client.UpdateStaffCheckSettings(ctx, staff.ID, numberOfChecksPriority, checkTypeAllowed); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Check settings updated successfully.")
	return c.Staffs(ctx)
}

func (c *Console) ToggleStaffOnline(ctx context.Context, email string) error {
	staff, err := c.findStaff(ctx, email)
	if err != nil {
		return err
	}

	if err := c.client.UpdateStaffOnlineStatus(ctx, staff.ID, !staff.IsOnline); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Online status updated successfully.")
	return c.Staffs(ctx)
}

func (c *Console) DeleteStaff(ctx context.Context, email string) error {
	staff, err := c.findStaff(ctx, email)
	if err != nil {
		return err
	}

	// destructive, so ask the way the UI's confirm dialog did
	fmt.Fprintf(c.out, "Remove staff %s <%s>? (y/N) ", staff.Name, staff.Email)
	line, ok := c.readLine()
	if !ok || (line != "y" && line != "yes") {
		fmt.Fprintln(c.out, "cancelled")
		return nil
	}

	if err := c.client.DeleteStaff(ctx, staff.ID); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Staff removed successfully.")
	return nil
}

func (c *Console) findStaff(ctx context.Context, email string) (*models.Staff, error) {
	staffs, err := c.client.ListStaffs(ctx)
	if err != nil {
		c.notifyError(err)
		return nil, err
	}
	for i := range staffs {
		if staffs[i].Email == email {
			return &staffs[i], nil
		}
	}
	err = fmt.Errorf("no staff member with email %s", email)
	c.notifyError(err)
	return nil, err
}
