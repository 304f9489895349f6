package console

import (
	"context"
	"fmt"

	"github.com/checkturnitin/adminctl/internal/api"
)

// creditTypeMark gives each ledger entry type the visual cue the UI made
// with colors.
func creditTypeMark(entryType string) string {
	switch entryType {
	case "credit_used":
		return "-"
	default:
		return "+"
	}
}

// CreditTransactions renders one page of the credit ledger plus the
// server-computed today's-usage and top-user panels.
func (c *Console) CreditTransactions(ctx context.Context, page int, filter api.CreditTransactionFilter) error {
	if page < 1 {
		page = 1
	}

	list, err := c.client.ListCreditTransactions(ctx, page, c.pageSize, filter)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading(fmt.Sprintf("Credit Transactions (%d total)", list.TotalTransactions))
	if len(list.Transactions) == 0 {
		c.placeholder("credit transactions")
		return nil
	}

	rows := make([][]string, 0, len(list.Transactions))
	for _, tx := range list.Transactions {
		rows = append(rows, []string{
			tx.Date, tx.User, tx.Email, tx.Type,
			creditTypeMark(tx.Type) + tx.Amount.String(),
		})
	}
	c.table([]string{"Date", "User", "Email", "Type", "Amount"}, rows)
	c.pageFooter(page, list.TotalPages)

	if len(list.TodayUsage) > 0 {
		c.heading("Today's Usage")
		for _, usage := range list.TodayUsage {
			fmt.Fprintf(c.out, "%s: %s\n", usage.ID, usage.TotalAmount.String())
		}
	}
	if len(list.TopUsers) > 0 {
		c.heading("Top Users")
		for _, top := range list.TopUsers {
			fmt.Fprintf(c.out, "%s: %s\n", top.Email, top.TotalAmount.String())
		}
	}
	return nil
}
