package console

import (
	"context"
	"strconv"
	"time"

	"github.com/checkturnitin/adminctl/internal/api"
	"github.com/checkturnitin/adminctl/internal/export"
	"github.com/checkturnitin/adminctl/internal/models"
)

func (c *Console) UserStats(ctx context.Context, r api.StatsRange) error {
	stats, err := c.client.GetUserStats(ctx, r)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading("User Stats")
	c.table(
		[]string{"Total", "Today", "Week", "Month", "Year", "YoY", "MoM", "WoW"},
		[][]string{{
			strconv.Itoa(stats.TotalUsers),
			strconv.Itoa(stats.TodayUsers),
			strconv.Itoa(stats.WeekUsers),
			strconv.Itoa(stats.MonthUsers),
			strconv.Itoa(stats.YearUsers),
			stats.YoYGrowth.String() + "%",
			stats.MoMGrowth.String() + "%",
			stats.WoWGrowth.String() + "%",
		}},
	)

	c.renderBuckets("Growth", stats.UserGrowth)
	c.renderBuckets("User Types", stats.UserTypes)
	c.renderBuckets("User Statuses", stats.UserStatuses)
	return nil
}

func (c *Console) PurchaseStats(ctx context.Context, r api.StatsRange) error {
	stats, err := c.client.GetPurchaseStats(ctx, r)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading("Purchase Stats")
	c.table(
		[]string{"Total", "Today", "Week", "Month", "Year", "Revenue"},
		[][]string{{
			strconv.Itoa(stats.TotalPurchases),
			strconv.Itoa(stats.TodayPurchases),
			strconv.Itoa(stats.WeekPurchases),
			strconv.Itoa(stats.MonthPurchases),
			strconv.Itoa(stats.YearPurchases),
			stats.Revenue.String(),
		}},
	)

	c.renderBuckets("Growth", stats.Growth)
	return nil
}

func (c *Console) CreditStats(ctx context.Context) error {
	stats, err := c.client.GetCreditStats(ctx)
	if err != nil {
		c.notifyError(err)
		return err
	}

	c.heading("Credit Stats")
	c.table(
		[]string{"Total Credits", "Added", "Used", "Today's Usage"},
		[][]string{{
			stats.TotalCredits.String(),
			stats.CreditsAdded.String(),
			stats.CreditsUsed.String(),
			stats.TodayUsage.String(),
		}},
	)

	c.renderBuckets("Distribution By Type", stats.DistributionByType)
	return nil
}

func (c *Console) renderBuckets(title string, buckets []models.BucketCount) {
	if len(buckets) == 0 {
		return
	}
	c.heading(title)
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{b.ID, strconv.Itoa(b.Count)})
	}
	c.table([]string{"", "Count"}, rows)
}

// ValidateCreditStats runs the server-side ledger cross-check and prints
// its verdict.
func (c *Console) ValidateCreditStats(ctx context.Context) error {
	message, err := c.client.ValidateCreditStats(ctx)
	if err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("%s", message)
	return nil
}

func (c *Console) DownloadUserStats(ctx context.Context, r api.StatsRange) error {
	data, err := c.client.DownloadUserStats(ctx, r)
	if err != nil {
		c.notifyError(err)
		return err
	}
	return c.saveStats(export.UserStatsFilename(statsPeriod(r), time.Now()), data)
}

func (c *Console) DownloadPurchaseStats(ctx context.Context, r api.StatsRange) error {
	data, err := c.client.DownloadPurchaseStats(ctx, r)
	if err != nil {
		c.notifyError(err)
		return err
	}
	return c.saveStats(export.PurchaseStatsFilename(statsPeriod(r), time.Now()), data)
}

// DownloadCreditStats exports either "balances" or "transactions".
func (c *Console) DownloadCreditStats(ctx context.Context, kind string) error {
	data, err := c.client.DownloadCreditStats(ctx, kind)
	if err != nil {
		c.notifyError(err)
		return err
	}
	return c.saveStats(export.CreditStatsFilename(kind, time.Now()), data)
}

func (c *Console) saveStats(name string, data []byte) error {
	path, err := c.saver.Save(name, data)
	if err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("stats saved to %s", path)
	return nil
}

func statsPeriod(r api.StatsRange) string {
	if r.StartDate != "" && r.EndDate != "" {
		return "custom"
	}
	return "yearly"
}
