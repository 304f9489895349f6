package api

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/checkturnitin/adminctl/internal/models"
)

type userSearchResponse struct {
	User *models.User `json:"user"`
}

// SearchUser looks a user up by email or id. A nil result means the query
// matched nothing.
func (c *Client) SearchUser(ctx context.Context, query string) (*models.User, error) {
	var out userSearchResponse
	err := c.get(ctx, "/admin/user-search", map[string]string{"query": query}, &out, "Search failed")
	if err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) GetUserDetail(ctx context.Context, userID string) (*models.UserDetail, error) {
	var out models.UserDetail
	err := c.get(ctx, "/admin/user/"+userID, nil, &out, "Failed to fetch user details")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUserStatus(ctx context.Context, userID, status string) error {
	body := map[string]string{"status": status}
	path := fmt.Sprintf("/admin/user/%s/status", userID)
	return c.send(ctx, resty.MethodPut, path, body, nil, "Failed to update status")
}

// AddCredits tops up a user's balance. The backend requires the admin PIN
// on this endpoint specifically.
func (c *Client) AddCredits(ctx context.Context, userID string, credits decimal.Decimal, adminPin string) error {
	body := map[string]any{"credits": credits, "adminPin": adminPin}
	path := fmt.Sprintf("/admin/user/%s/add-credits", userID)
	return c.send(ctx, resty.MethodPost, path, body, nil, "Failed to add credits")
}

func (c *Client) AddBonus(ctx context.Context, email string, amount decimal.Decimal) error {
	body := map[string]any{"email": email, "amount": amount}
	return c.send(ctx, resty.MethodPost, "/admin/add-bonus", body, nil, "Failed to add bonus. Please try again.")
}

func (c *Client) CustomizeReferralCode(ctx context.Context, email, referralCode string) error {
	body := map[string]string{"email": email, "referralCode": referralCode}
	return c.send(ctx, resty.MethodPost, "/admin/customize-referral-code", body, nil, "Failed to update referral code.")
}

func (c *Client) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	var out models.Dashboard
	err := c.get(ctx, "/admin/dashboard", nil, &out, "Failed to fetch dashboard data")
	if err != nil {
		return nil, err
	}
	return &out, nil
}
