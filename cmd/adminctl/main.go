package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/checkturnitin/adminctl/internal/api"
	"github.com/checkturnitin/adminctl/internal/auth"
	"github.com/checkturnitin/adminctl/internal/config"
	"github.com/checkturnitin/adminctl/internal/console"
	"github.com/checkturnitin/adminctl/internal/export"
)

const tokenExpiryWarning = 24 * time.Hour

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	authCtx := auth.NewContext(cfg.TokenFile)
	if err := authCtx.Load(); err != nil {
		log.Fatalf("failed to load token: %v", err)
	}

	client := api.NewClient(cfg.ServerURL, authCtx, log)
	saver := export.NewSaver(cfg.DownloadDir)
	c := console.New(client, authCtx, saver, log, os.Stdin, os.Stdout, cfg.PageSize, cfg.PollInterval)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	command, args := os.Args[1], os.Args[2:]

	if command != "login" && authCtx.LoggedIn() && authCtx.ExpiresWithin(tokenExpiryWarning) {
		log.Warn("session token expires within a day, log in again soon")
	}

	if err := dispatch(ctx, c, command, args); err != nil {
		// the console already printed the user-facing message
		log.Debugf("command %s failed: %v", command, err)
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, c *console.Console, command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ExitOnError)

	switch command {
	case "login":
		email := fs.String("email", "", "admin email")
		password := fs.String("password", "", "admin password")
		parseFlags(fs, args)
		return c.Login(ctx, *email, *password)

	case "logout":
		return c.Logout()

	case "dashboard":
		return c.Dashboard(ctx)

	case "user":
		query := fs.String("query", "", "email or user id")
		parseFlags(fs, args)
		return c.UserPage(ctx, *query)

	case "user-status":
		query := fs.String("query", "", "email or user id")
		parseFlags(fs, args)
		return c.ToggleUserStatus(ctx, *query)

	case "add-credits":
		query := fs.String("query", "", "email or user id")
		credits := fs.String("credits", "0", "credits to add")
		pin := fs.String("pin", "", "admin pin")
		parseFlags(fs, args)
		return c.AddCredits(ctx, *query, mustDecimal(*credits), *pin)

	case "add-bonus":
		email := fs.String("email", "", "user email")
		amount := fs.String("amount", "0", "bonus amount")
		parseFlags(fs, args)
		return c.AddBonus(ctx, *email, mustDecimal(*amount))

	case "referral-code":
		email := fs.String("email", "", "user email")
		code := fs.String("code", "", "new referral code")
		parseFlags(fs, args)
		return c.CustomizeReferralCode(ctx, *email, *code)

	case "purchases":
		page := fs.Int("page", 1, "page number")
		filter := rangeFlags(fs)
		parseFlags(fs, args)
		return c.Purchases(ctx, *page, *filter)

	case "credits":
		page := fs.Int("page", 1, "page number")
		filter := rangeFlags(fs)
		creditType := fs.String("type", "", "ledger entry type")
		parseFlags(fs, args)
		return c.CreditTransactions(ctx, *page, api.CreditTransactionFilter{
			DateRangeFilter: *filter, Type: *creditType,
		})

	case "fonepay":
		page := fs.Int("page", 1, "page number")
		filter := rangeFlags(fs)
		prn := fs.String("prn", "", "product reference number")
		uid := fs.String("uid", "", "transaction uuid")
		parseFlags(fs, args)
		return c.FonepayTransactions(ctx, *page, api.FonepayFilter{
			DateRangeFilter: *filter, PRN: *prn, UID: *uid,
		})

	case "fonepay-recheck":
		prn := fs.String("prn", "", "product reference number")
		parseFlags(fs, args)
		return c.RecheckFonepay(ctx, *prn)

	case "imepay":
		page := fs.Int("page", 1, "page number")
		filter := rangeFlags(fs)
		refID := fs.String("ref", "", "reference id")
		tokenID := fs.String("token", "", "token id")
		parseFlags(fs, args)
		return c.IMETransactions(ctx, *page, api.IMEFilter{
			DateRangeFilter: *filter, RefID: *refID, TokenID: *tokenID,
		})

	case "imepay-recheck":
		refID := fs.String("ref", "", "reference id")
		tokenID := fs.String("token", "", "token id")
		parseFlags(fs, args)
		return c.RecheckIME(ctx, *refID, *tokenID)

	case "paddle":
		page := fs.Int("page", 1, "page number")
		filter := rangeFlags(fs)
		status := fs.String("status", "", "transaction status")
		parseFlags(fs, args)
		return c.PaddleTransactions(ctx, *page, api.PaddleFilter{
			DateRangeFilter: *filter, Status: *status,
		})

	case "paddle-recheck":
		id := fs.String("id", "", "paddle transaction id")
		parseFlags(fs, args)
		return c.RecheckPaddle(ctx, *id)

	case "giftcards":
		page := fs.Int("page", 1, "page number")
		search := fs.String("search", "", "code or batch search")
		status := fs.String("status", "", "active or inactive")
		redeemed := fs.Bool("redeemed", false, "only redeemed cards")
		parseFlags(fs, args)
		return c.GiftCards(ctx, *page, api.GiftCardFilter{
			Search: *search, Status: *status, Redeemed: *redeemed,
		})

	case "giftcard-batches":
		page := fs.Int("page", 1, "page number")
		limit := fs.Int("limit", 10, "batches per page")
		parseFlags(fs, args)
		return c.GiftCardBatches(ctx, *page, *limit)

	case "giftcards-generate":
		amount := fs.String("amount", "0", "card value")
		count := fs.Int("count", 0, "number of cards")
		validity := fs.Int("validity", 12, "validity in months")
		note := fs.String("note", "", "batch note")
		parseFlags(fs, args)
		return c.GenerateGiftCards(ctx, api.GenerateGiftCardsRequest{
			Amount: mustDecimal(*amount), Count: *count,
			ValidityMonths: *validity, BatchNote: *note,
		})

	case "giftcard-status":
		id := fs.String("id", "", "gift card id")
		status := fs.String("status", "", "active or inactive")
		parseFlags(fs, args)
		return c.SetGiftCardStatus(ctx, *id, *status)

	case "batch-status":
		batch := fs.Int("batch", 0, "batch number")
		status := fs.String("status", "", "active or inactive")
		parseFlags(fs, args)
		return c.SetBatchStatus(ctx, *batch, *status)

	case "batch-export":
		batch := fs.Int("batch", 0, "batch number")
		parseFlags(fs, args)
		return c.ExportBatch(ctx, *batch)

	case "staffs":
		return c.Staffs(ctx)

	case "staff-promote":
		email := fs.String("email", "", "user email")
		name := fs.String("name", "", "staff name")
		telegram := fs.String("telegram", "", "telegram id")
		parseFlags(fs, args)
		return c.PromoteToStaff(ctx, *email, *name, *telegram)

	case "staff-status":
		email := fs.String("email", "", "staff email")
		parseFlags(fs, args)
		return c.ToggleStaffStatus(ctx, *email)

	case "staff-edit":
		email := fs.String("email", "", "staff email")
		name := fs.String("name", "", "new name")
		telegram := fs.String("telegram", "", "new telegram id")
		parseFlags(fs, args)
		return c.EditStaff(ctx, *email, *name, *telegram)

	case "staff-password":
		email := fs.String("email", "", "staff email")
		password := fs.String("password", "", "new password")
		parseFlags(fs, args)
		return c.ChangeStaffPassword(ctx, *email, *password)

	case "staff-check-settings":
		email := fs.String("email", "", "staff email")
		priority := fs.String("priority", "", "checks priority allowance")
		checkType := fs.String("type", "", "allowed check type")
		parseFlags(fs, args)
		return c.UpdateStaffCheckSettings(ctx, *email, *priority, *checkType)

	case "staff-online":
		email := fs.String("email", "", "staff email")
		parseFlags(fs, args)
		return c.ToggleStaffOnline(ctx, *email)

	case "staff-delete":
		email := fs.String("email", "", "staff email")
		parseFlags(fs, args)
		return c.DeleteStaff(ctx, *email)

	case "checks":
		page := fs.Int("page", 1, "board page")
		parseFlags(fs, args)
		return c.Checks(ctx, *page)

	case "watch":
		page := fs.Int("page", 1, "board page")
		parseFlags(fs, args)
		c.Watch(ctx, *page)
		return nil

	case "check-details":
		id := fs.String("id", "", "check id")
		parseFlags(fs, args)
		return c.CheckDetails(ctx, *id)

	case "report":
		endpoint := fs.String("name", "", "report download name")
		parseFlags(fs, args)
		return c.DownloadReport(ctx, *endpoint)

	case "transfer-board":
		return c.TransferBoard(ctx)

	case "transfer":
		checkID := fs.String("check", "", "check id (omit to search interactively)")
		from := fs.String("from", "", "source staff id")
		to := fs.String("to", "", "target staff id")
		reason := fs.String("reason", "", "transfer reason")
		parseFlags(fs, args)
		if *checkID == "" {
			return c.TransferInteractive(ctx, *from, *to, *reason)
		}
		return c.Transfer(ctx, *checkID, *from, *to, *reason)

	case "payment-methods":
		toggle := fs.String("toggle", "", "gateway to enable/disable")
		parseFlags(fs, args)
		if *toggle != "" {
			return c.TogglePaymentMethod(ctx, *toggle)
		}
		return c.PaymentMethods(ctx)

	case "stats-users":
		r := rangeStatsFlags(fs)
		download := fs.Bool("download", false, "save CSV instead of printing")
		parseFlags(fs, args)
		if *download {
			return c.DownloadUserStats(ctx, *r)
		}
		return c.UserStats(ctx, *r)

	case "stats-purchases":
		r := rangeStatsFlags(fs)
		download := fs.Bool("download", false, "save CSV instead of printing")
		parseFlags(fs, args)
		if *download {
			return c.DownloadPurchaseStats(ctx, *r)
		}
		return c.PurchaseStats(ctx, *r)

	case "stats-credits":
		validate := fs.Bool("validate", false, "cross-check ledger totals")
		download := fs.String("download", "", "export: balances or transactions")
		parseFlags(fs, args)
		if *validate {
			return c.ValidateCreditStats(ctx)
		}
		if *download != "" {
			return c.DownloadCreditStats(ctx, *download)
		}
		return c.CreditStats(ctx)

	case "shop":
		return c.ShopItems(ctx)

	case "shop-create":
		req := shopFlags(fs)
		parseFlags(fs, args)
		return c.CreateShopItem(ctx, req())

	case "shop-update":
		id := fs.String("id", "", "item id")
		req := shopFlags(fs)
		parseFlags(fs, args)
		return c.UpdateShopItem(ctx, *id, req())

	case "shop-toggle":
		id := fs.String("id", "", "item id")
		parseFlags(fs, args)
		return c.ToggleShopItem(ctx, *id)

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) {
	// ExitOnError: a bad flag prints usage and exits here
	_ = fs.Parse(args)
}

func rangeFlags(fs *flag.FlagSet) *api.DateRangeFilter {
	filter := &api.DateRangeFilter{}
	fs.StringVar(&filter.StartDate, "start", "", "start date (YYYY-MM-DD)")
	fs.StringVar(&filter.EndDate, "end", "", "end date (YYYY-MM-DD)")
	fs.StringVar(&filter.Email, "email", "", "filter by user email")
	return filter
}

func rangeStatsFlags(fs *flag.FlagSet) *api.StatsRange {
	r := &api.StatsRange{}
	fs.StringVar(&r.StartDate, "start", "", "start date (YYYY-MM-DD)")
	fs.StringVar(&r.EndDate, "end", "", "end date (YYYY-MM-DD)")
	return r
}

// shopFlags registers the shop item form fields and returns a builder for
// the assembled request.
func shopFlags(fs *flag.FlagSet) func() api.ShopItemRequest {
	title := fs.String("title", "", "item title")
	credits := fs.Int("credits", 0, "credit limit")
	country := fs.String("country", "", "target country")
	currency := fs.String("currency", "", "price currency")
	price := fs.String("price", "0", "item price")
	features := fs.String("features", "", "semicolon-separated feature list")
	paddleID := fs.String("paddle-product", "", "paddle product id (USD items)")

	return func() api.ShopItemRequest {
		var list []string
		for _, f := range strings.Split(*features, ";") {
			if f = strings.TrimSpace(f); f != "" {
				list = append(list, f)
			}
		}
		return api.ShopItemRequest{
			Title:           *title,
			CreditLimit:     *credits,
			Country:         *country,
			Currency:        *currency,
			Price:           mustDecimal(*price),
			Features:        list,
			PaddleProductID: *paddleID,
		}
	}
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func usage() {
	fmt.Fprintln(os.Stderr, strings.TrimSpace(`
usage: adminctl <command> [flags]

session        login, logout
overview       dashboard
users          user, user-status, add-credits, add-bonus, referral-code
purchases      purchases
credits        credits
payments       fonepay, fonepay-recheck, imepay, imepay-recheck, paddle, paddle-recheck
gift cards     giftcards, giftcard-batches, giftcards-generate, giftcard-status, batch-status, batch-export
staff          staffs, staff-promote, staff-status, staff-edit, staff-password, staff-check-settings, staff-online, staff-delete
checks         checks, watch, check-details, report, transfer-board, transfer
settings       payment-methods
stats          stats-users, stats-purchases, stats-credits
shop           shop, shop-create, shop-update, shop-toggle

run "adminctl <command> -h" for the command's flags.
`))
}
