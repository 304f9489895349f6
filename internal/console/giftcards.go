package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/checkturnitin/adminctl/internal/api"
	"github.com/checkturnitin/adminctl/internal/export"
)

const maxCardsPerBatch = 500

func (c *Console) GiftCards(ctx context.Context, page int, filter api.GiftCardFilter) error {
	if page < 1 {
		page = 1
	}

	list, err := c.client.ListGiftCards(ctx, page, c.pageSize, filter)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading(fmt.Sprintf("Gift Cards (%d total)", list.Pagination.Total))
	if len(list.Cards) == 0 {
		c.placeholder("gift cards")
		return nil
	}

	rows := make([][]string, 0, len(list.Cards))
	for _, card := range list.Cards {
		redeemed := "-"
		if card.IsRedeemed {
			redeemed = "redeemed"
			if card.RedeemedBy != nil {
				redeemed = "redeemed by " + card.RedeemedBy.Email
			}
		}
		rows = append(rows, []string{
			card.Code, card.Amount.String(), strconv.Itoa(card.Batch),
			card.Status, redeemed, card.ExpiresAt,
		})
	}
	c.table([]string{"Code", "Amount", "Batch", "Status", "Redemption", "Expires"}, rows)
	c.pageFooter(page, list.Pagination.Pages)
	return nil
}

func (c *Console) GiftCardBatches(ctx context.Context, page, limit int) error {
	batches, err := c.client.ListBatches(ctx, page, limit)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading("Batches")
	if len(batches) == 0 {
		c.placeholder("batches")
		return nil
	}

	rows := make([][]string, 0, len(batches))
	for _, b := range batches {
		rows = append(rows, []string{
			strconv.Itoa(b.Batch), b.Note,
			fmt.Sprintf("%d/%d redeemed", b.Redeemed, b.Total),
			b.Amount.String(), b.Created, b.ExpiresAt,
		})
	}
	c.table([]string{"Batch", "Note", "Redemption", "Amount", "Created", "Expires"}, rows)
	return nil
}

func (c *Console) GenerateGiftCards(ctx context.Context, req api.GenerateGiftCardsRequest) error {
	if req.Count > maxCardsPerBatch {
		err := fmt.Errorf("cannot generate more than %d cards at once", maxCardsPerBatch)
		c.notifyError(err)
		return err
	}
	if req.Count <= 0 {
		err := fmt.Errorf("card count must be greater than 0")
		c.notifyError(err)
		return err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		err := fmt.Errorf("card amount must be greater than 0")
		c.notifyError(err)
		return err
	}

	if err := c.client.GenerateGiftCards(ctx, req); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Gift cards generated successfully")
	return c.GiftCardBatches(ctx, 1, 3)
}

func (c *Console) SetGiftCardStatus(ctx context.Context, cardID, status string) error {
	if err := c.client.UpdateGiftCardStatus(ctx, cardID, status); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Status updated successfully")
	return nil
}

func (c *Console) SetBatchStatus(ctx context.Context, batch int, status string) error {
	if err := c.client.UpdateBatchStatus(ctx, batch, status); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Batch %d status updated", batch)
	return nil
}

// ExportBatch downloads the batch CSV and saves it with the filename the
// browser UI would have used.
func (c *Console) ExportBatch(ctx context.Context, batch int) error {
	data, err := c.client.ExportBatch(ctx, batch)
	if err != nil {
		c.notifyError(err)
		return err
	}

	path, err := c.saver.Save(export.BatchFilename(batch), data)
	if err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Batch %d exported to %s", batch, path)
	return nil
}
