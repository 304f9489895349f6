package console

import (
	"context"
	"fmt"

	"github.com/checkturnitin/adminctl/internal/api"
)

func (c *Console) FonepayTransactions(ctx context.Context, page int, filter api.FonepayFilter) error {
	if page < 1 {
		page = 1
	}

	list, err := c.client.ListFonepayTransactions(ctx, page, c.pageSize, filter)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading(fmt.Sprintf("Fonepay Transactions (%d total)", list.TotalTransactions))
	if len(list.Transactions) == 0 {
		c.placeholder("transactions")
		return nil
	}

	rows := make([][]string, 0, len(list.Transactions))
	for _, tx := range list.Transactions {
		rows = append(rows, []string{
			tx.RequestDate, tx.ProductReferenceNumber, tx.UserEmail, tx.ItemTitle,
			tx.AmountRequested.String(), tx.AmountPaid, tx.Status,
		})
	}
	c.table([]string{"Requested", "PRN", "Email", "Item", "Amount", "Paid", "Status"}, rows)
	c.pageFooter(page, list.TotalPages)
	return nil
}

func (c *Console) RecheckFonepay(ctx context.Context, prn string) error {
	msg, err := c.client.RecheckFonepay(ctx, prn)
	if err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("%s", msg)
	return nil
}

func (c *Console) IMETransactions(ctx context.Context, page int, filter api.IMEFilter) error {
	if page < 1 {
		page = 1
	}

	list, err := c.client.ListIMETransactions(ctx, page, c.pageSize, filter)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading(fmt.Sprintf("IME Pay Transactions (%d total)", list.TotalTransactions))
	if len(list.Transactions) == 0 {
		c.placeholder("transactions")
		return nil
	}

	rows := make([][]string, 0, len(list.Transactions))
	for _, tx := range list.Transactions {
		rows = append(rows, []string{
			tx.Date, tx.RefID, tx.TokenID, tx.UserEmail, tx.ItemTitle,
			tx.Amount.String(), tx.MSISDN, tx.Status,
		})
	}
	c.table([]string{"Date", "RefId", "TokenId", "Email", "Item", "Amount", "MSISDN", "Status"}, rows)
	c.pageFooter(page, list.TotalPages)
	return nil
}

func (c *Console) RecheckIME(ctx context.Context, refID, tokenID string) error {
	msg, err := c.client.RecheckIME(ctx, refID, tokenID)
	if err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("%s", msg)
	return nil
}

func (c *Console) PaddleTransactions(ctx context.Context, page int, filter api.PaddleFilter) error {
	if page < 1 {
		page = 1
	}

	list, err := c.client.ListPaddleTransactions(ctx, page, c.pageSize, filter)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading(fmt.Sprintf("Paddle Transactions (%d total)", list.TotalTransactions))
	if len(list.Transactions) == 0 {
		c.placeholder("transactions")
		return nil
	}

	rows := make([][]string, 0, len(list.Transactions))
	for _, tx := range list.Transactions {
		rows = append(rows, []string{
			tx.CreatedAt, tx.PaddleTransactionID, tx.UserEmail, tx.ItemTitle,
			"$ " + tx.Amount.String(), tx.Status,
		})
	}
	c.table([]string{"Created", "Transaction", "Email", "Item", "Amount", "Status"}, rows)
	c.pageFooter(page, list.TotalPages)
	return nil
}

func (c *Console) RecheckPaddle(ctx context.Context, paddleTransactionID string) error {
	msg, err := c.client.RecheckPaddle(ctx, paddleTransactionID)
	if err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("%s", msg)
	return nil
}
