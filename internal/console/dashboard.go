package console

import (
	"context"
	"fmt"
	"sort"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"NPR": "Rs",
}

func currencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}

// Dashboard renders the aggregate counters and the per-currency earnings
// cards, all-time and today side by side.
func (c *Console) Dashboard(ctx context.Context) error {
	data, err := c.client.GetDashboard(ctx)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading("Dashboard")
	fmt.Fprintf(c.out, "Users: %d  Items: %d\n", data.Users, data.Items)

	currencies := make([]string, 0, len(data.PurchasesByCurrency))
	for code := range data.PurchasesByCurrency {
		currencies = append(currencies, code)
	}
	sort.Strings(currencies)

	if len(currencies) == 0 {
		c.placeholder("earnings")
		return nil
	}

	rows := make([][]string, 0, len(currencies))
	for _, code := range currencies {
		rows = append(rows, []string{
			code,
			currencySymbol(code) + " " + data.PurchasesByCurrency[code].String(),
			fmt.Sprintf("%d", data.PurchaseCountByCurrency[code]),
			currencySymbol(code) + " " + data.TodayPurchasesByCurrency[code].String(),
			fmt.Sprintf("%d", data.TodayPurchaseCountByCurrency[code]),
		})
	}
	c.table([]string{"Currency", "Earnings", "Purchases", "Today", "Today's Purchases"}, rows)
	return nil
}
