package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/checkturnitin/adminctl/internal/listview"
	"github.com/checkturnitin/adminctl/internal/models"
)

const detailPageSize = 5

// UserPage searches by email or id, then renders the profile, summaries
// and the two browsable recent-activity lists.
func (c *Console) UserPage(ctx context.Context, query string) error {
	detail, err := c.lookupUser(ctx, query)
	if err != nil {
		return err
	}

	c.renderUserDetail(detail)

	c.heading("Recent Transactions")
	txView := listview.New(detailPageSize, "date", map[string]listview.Key[models.UserTransaction]{
		"date":   listview.DateKey(func(t models.UserTransaction) string { return t.Date }),
		"amount": func(t models.UserTransaction) float64 { return t.Amount.InexactFloat64() },
	})
	txView.SetItems(detail.Transactions.All)
	browse(c, txView, "transactions",
		[]string{"Date", "Type", "Amount", "Status"},
		map[string]string{"d": "date", "a": "amount"},
		func(t models.UserTransaction) []string {
			return []string{t.Date, t.Type, currencySymbol(t.Currency) + " " + t.Amount.String(), t.Status}
		})

	c.heading("Recent Credit Transactions")
	creditView := listview.New(detailPageSize, "date", map[string]listview.Key[models.CreditTransaction]{
		"date":   listview.DateKey(func(t models.CreditTransaction) string { return t.Date }),
		"amount": func(t models.CreditTransaction) float64 { return t.Amount.InexactFloat64() },
	})
	creditView.SetItems(detail.CreditTransactions)
	browse(c, creditView, "credit transactions",
		[]string{"Date", "Type", "Amount"},
		map[string]string{"d": "date", "a": "amount"},
		func(t models.CreditTransaction) []string {
			return []string{t.Date, t.Type, t.Amount.String()}
		})

	return nil
}

func (c *Console) lookupUser(ctx context.Context, query string) (*models.UserDetail, error) {
	if strings.TrimSpace(query) == "" {
		err := fmt.Errorf("empty search query")
		c.notifyError(err)
		return nil, err
	}

	user, err := c.client.SearchUser(ctx, query)
	if err != nil {
		c.notifyError(err)
		return nil, err
	}
	if user == nil {
		c.placeholder("user")
		return nil, fmt.Errorf("no user matched %q", query)
	}

	detail, err := c.client.GetUserDetail(ctx, user.ID)
	if err != nil {
		c.notifyError(err)
		return nil, err
	}
	return detail, nil
}

func (c *Console) renderUserDetail(detail *models.UserDetail) {
	u := detail.User
	c.heading("User Information")
	fmt.Fprintf(c.out, "%s <%s>  status: %s\n", u.Name, u.Email, u.Status)
	fmt.Fprintf(c.out, "Credits Balance: %s  Total Purchases: %d\n", u.CreditBalance.String(), u.TotalPurchases)

	fin := detail.Summaries.Financial
	c.heading("Financial Summary")
	fmt.Fprintf(c.out, "Total Spent (NPR): Rs %s  Total Spent (USD): $ %s\n", fin.TotalSpentNPR.String(), fin.TotalSpentUSD.String())
	fmt.Fprintf(c.out, "Credits Earned: %s  Credits Used: %s\n", fin.TotalCreditsEarned.String(), fin.TotalCreditsUsed.String())

	tx := detail.Summaries.Transactions
	c.heading("Transactions Summary")
	fmt.Fprintf(c.out, "IME Pay: %d  Paddle: %d  Successful: %d  Failed: %d\n",
		tx.TotalIMEPayTransactions, tx.TotalPaddleTransactions, tx.SuccessfulTransactions, tx.FailedTransactions)
}

// ToggleUserStatus flips active/inactive and re-fetches so the rendered
// status is the server's, not a locally assumed one.
func (c *Console) ToggleUserStatus(ctx context.Context, query string) error {
	detail, err := c.lookupUser(ctx, query)
	if err != nil {
		return err
	}

	newStatus := models.UserStatusInactive
	if detail.User.Status == models.UserStatusInactive {
		newStatus = models.UserStatusActive
	}

	if err := c.client.UpdateUserStatus(ctx, detail.User.ID, newStatus); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Status updated successfully")

	refreshed, err := c.client.GetUserDetail(ctx, detail.User.ID)
	if err != nil {
		c.notifyError(err)
		return err
	}
	fmt.Fprintf(c.out, "%s is now %s\n", refreshed.User.Email, refreshed.User.Status)
	return nil
}

// AddCredits tops up a user after the presentational guard on the amount;
// the admin PIN is validated server-side only.
func (c *Console) AddCredits(ctx context.Context, query string, credits decimal.Decimal, adminPin string) error {
	if credits.LessThanOrEqual(decimal.Zero) {
		err := fmt.Errorf("credits must be greater than 0")
		c.notifyError(err)
		return err
	}

	detail, err := c.lookupUser(ctx, query)
	if err != nil {
		return err
	}

	if err := c.client.AddCredits(ctx, detail.User.ID, credits, adminPin); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Credits added successfully")

	refreshed, err := c.client.GetUserDetail(ctx, detail.User.ID)
	if err != nil {
		c.notifyError(err)
		return err
	}
	fmt.Fprintf(c.out, "New balance: %s\n", refreshed.User.CreditBalance.String())
	return nil
}

func (c *Console) AddBonus(ctx context.Context, email string, amount decimal.Decimal) error {
	if strings.TrimSpace(email) == "" {
		err := fmt.Errorf("please fill out both email and amount fields")
		c.notifyError(err)
		return err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		err := fmt.Errorf("bonus amount must be greater than 0")
		c.notifyError(err)
		return err
	}

	if err := c.client.AddBonus(ctx, email, amount); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Bonus successfully added!")
	return nil
}

func (c *Console) CustomizeReferralCode(ctx context.Context, email, referralCode string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(referralCode) == "" {
		err := fmt.Errorf("please provide both email and referral code")
		c.notifyError(err)
		return err
	}

	if err := c.client.CustomizeReferralCode(ctx, email, referralCode); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Referral code updated successfully!")
	return nil
}
