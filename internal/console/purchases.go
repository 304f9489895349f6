package console

import (
	"context"
	"fmt"

	"github.com/checkturnitin/adminctl/internal/api"
)

// Purchases renders one server-paginated page of the purchases list.
func (c *Console) Purchases(ctx context.Context, page int, filter api.DateRangeFilter) error {
	if page < 1 {
		page = 1
	}

	list, err := c.client.ListPurchases(ctx, page, c.pageSize, filter)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading(fmt.Sprintf("Purchases (%d total)", list.TotalPurchases))
	if len(list.Purchases) == 0 {
		c.placeholder("purchases")
		return nil
	}

	rows := make([][]string, 0, len(list.Purchases))
	for _, p := range list.Purchases {
		rows = append(rows, []string{
			p.Date, p.User, p.Email, p.Item,
			currencySymbol(p.Currency) + " " + p.Amount.String(),
			p.PaymentMethod,
		})
	}
	c.table([]string{"Date", "User", "Email", "Item", "Amount", "Method"}, rows)
	c.pageFooter(page, list.TotalPages)
	return nil
}
