package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// The admin API owns every record below; they exist here only for the
// lifetime of a fetched view. Field tags mirror the wire exactly.

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// Credit ledger entry types.
const (
	CreditAdded    = "credit_added"
	CreditUsed     = "credit_used"
	CreditPurchase = "credit_purchase"
	CreditBonus    = "credit_bonus"
	CreditReferral = "credit_referral"
	CreditReused   = "credit_reused"
)

// CreditTypes lists every ledger entry type the filter form offers.
var CreditTypes = []string{
	CreditAdded, CreditUsed, CreditPurchase,
	CreditBonus, CreditReferral, CreditReused,
}

type User struct {
	ID             string          `json:"_id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"createdAt"`
	CreditBalance  decimal.Decimal `json:"creditBalance"`
	TotalPurchases int             `json:"totalPurchases"`
}

type UserTransaction struct {
	ID            string          `json:"_id"`
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Status        string          `json:"status"`
	Type          string          `json:"type"`
	Currency      string          `json:"currency,omitempty"`
}

type Invoice struct {
	ID            string          `json:"_id"`
	InvoiceID     string          `json:"invoiceId"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod"`
	TaxPercent    decimal.Decimal `json:"taxPercent"`
}

type CreditTransaction struct {
	ID     string          `json:"_id"`
	Date   string          `json:"date"`
	User   string          `json:"user,omitempty"`
	Email  string          `json:"email,omitempty"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// UserDetail is the aggregate the user page renders: profile, recent
// activity and server-computed summaries.
type UserDetail struct {
	User         User `json:"user"`
	Transactions struct {
		All    []UserTransaction `json:"all"`
		IMEPay []UserTransaction `json:"imePay"`
		Paddle []UserTransaction `json:"paddle"`
	} `json:"transactions"`
	Invoices           []Invoice           `json:"invoices"`
	CreditTransactions []CreditTransaction `json:"creditTransactions"`
	Summaries          struct {
		Transactions struct {
			TotalIMEPayTransactions int `json:"totalImePayTransactions"`
			TotalPaddleTransactions int `json:"totalPaddleTransactions"`
			SuccessfulTransactions  int `json:"successfulTransactions"`
			FailedTransactions      int `json:"failedTransactions"`
		} `json:"transactions"`
		Financial struct {
			TotalSpentNPR      decimal.Decimal `json:"totalSpentNPR"`
			TotalSpentUSD      decimal.Decimal `json:"totalSpentUSD"`
			TotalCreditsEarned decimal.Decimal `json:"totalCreditsEarned"`
			TotalCreditsUsed   decimal.Decimal `json:"totalCreditsUsed"`
		} `json:"financial"`
	} `json:"summaries"`
}

type Purchase struct {
	ID            string          `json:"_id"`
	Date          string          `json:"date"`
	User          string          `json:"user"`
	Email         string          `json:"email"`
	Item          string          `json:"item"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod"`
}

type FonepayTransaction struct {
	ID                     string          `json:"_id"`
	MerchantCode           string          `json:"merchantCode"`
	ProductReferenceNumber string          `json:"productReferenceNumber"`
	AmountRequested        decimal.Decimal `json:"amountRequested"`
	AmountPaid             string          `json:"amountPaid"`
	RequestDate            string          `json:"requestDate"`
	ResponseDate           string          `json:"responseDate"`
	TransactionUUID        string          `json:"transactionUuid"`
	TraceID                string          `json:"traceId"`
	Status                 string          `json:"status"`
	ItemTitle              string          `json:"itemTitle"`
	UserName               string          `json:"userName"`
	UserEmail              string          `json:"userEmail"`
}

// Amount arrives as a number on some records and a quoted string on
// others; decimal.Decimal accepts both.
type IMETransaction struct {
	ID            string          `json:"_id"`
	Date          string          `json:"date"`
	MerchantCode  string          `json:"merchantCode"`
	RefID         string          `json:"refId"`
	TokenID       string          `json:"tokenId"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	ItemTitle     string          `json:"itemTitle"`
	UserName      string          `json:"userName"`
	UserEmail     string          `json:"userEmail"`
	MSISDN        string          `json:"msisdn"`
	ResponseDate  string          `json:"responseDate"`
	TransactionID string          `json:"transactionId"`
}

type PaddleTransaction struct {
	ID                  string          `json:"_id"`
	CreatedAt           string          `json:"createdAt"`
	PaddleTransactionID string          `json:"paddleTransactionId"`
	Amount              decimal.Decimal `json:"amount"`
	Status              string          `json:"status"`
	ItemTitle           string          `json:"itemTitle"`
	UserName            string          `json:"userName"`
	UserEmail           string          `json:"userEmail"`
	UpdatedAt           string          `json:"updatedAt"`
}

type UserRef struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type GiftCard struct {
	ID         string          `json:"_id"`
	Code       string          `json:"code"`
	Amount     decimal.Decimal `json:"amount"`
	Batch      int             `json:"batch"`
	BatchNote  string          `json:"batchNote,omitempty"`
	IsRedeemed bool            `json:"isRedeemed"`
	Status     string          `json:"status"`
	ExpiresAt  string          `json:"expiresAt"`
	CreatedAt  string          `json:"createdAt"`
	RedeemedBy *UserRef        `json:"redeemedBy,omitempty"`
	CreatedBy  *UserRef        `json:"createdBy,omitempty"`
}

// Batch is a server-computed aggregate over one generation run.
type Batch struct {
	Batch     int             `json:"batch"`
	Note      string          `json:"note,omitempty"`
	Total     int             `json:"total"`
	Redeemed  int             `json:"redeemed"`
	Amount    decimal.Decimal `json:"amount"`
	Created   string          `json:"created"`
	ExpiresAt string          `json:"expiresAt"`
}

type Staff struct {
	ID                     string `json:"_id"`
	Email                  string `json:"email"`
	Type                   string `json:"type"`
	Status                 string `json:"status"`
	Name                   string `json:"name"`
	TelegramID             string `json:"telegramId"`
	IsOnline               bool   `json:"isOnline"`
	NumberOfChecksPriority string `json:"numberOfChecksPriority"`
	CheckTypeAllowed       string `json:"checkTypeAllowed"`
}

type Check struct {
	ID     string `json:"_id"`
	UserID struct {
		Email string `json:"email"`
	} `json:"userId"`
	CheckedBy *struct {
		Name string `json:"name"`
	} `json:"checkedBy"`
	Priority     string `json:"priority"`
	DeliveryTime string `json:"deliveryTime,omitempty"`
}

// HoursLeft reports whole hours until the check's delivery deadline,
// clamped at zero. Unset or unparseable deadlines count as due now.
func (c Check) HoursLeft(now time.Time) int {
	if c.DeliveryTime == "" {
		return 0
	}
	due, err := time.Parse(time.RFC3339, c.DeliveryTime)
	if err != nil {
		return 0
	}
	left := due.Sub(now)
	if left < 0 {
		return 0
	}
	return int(left / time.Hour)
}

type CheckSummary struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
}

type PriorityCounts struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

type StaffCheckDetail struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	OnlineStatus bool   `json:"onlineStatus"`
	Checkouts    struct {
		Total                 int            `json:"total"`
		Pending               int            `json:"pending"`
		Processing            int            `json:"processing"`
		Completed             int            `json:"completed"`
		Failed                int            `json:"failed"`
		PendingPriorityCounts PriorityCounts `json:"pendingPriorityCounts"`
	} `json:"checkouts"`
}

type ReportRef struct {
	ReportURL string `json:"reportUrl"`
	Score     string `json:"score"`
}

type CheckDetails struct {
	CheckID      string `json:"checkId"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	DeliveryTime string `json:"deliveryTime"`
	CheckedBy    string `json:"checkedBy"`
	UserID       string `json:"userId"`
	InputFile    struct {
		OriginalFileName string `json:"originalFileName"`
		FileSize         int64  `json:"fileSize"`
		FileType         string `json:"fileType"`
		UploadedAt       string `json:"uploadedAt"`
	} `json:"inputFile"`
	Reports *struct {
		AI         *ReportRef `json:"ai,omitempty"`
		Plagiarism *ReportRef `json:"plagiarism,omitempty"`
	} `json:"reports,omitempty"`
}

type StaffRef struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	IsOnline bool   `json:"isOnline"`
}

type CheckTransfer struct {
	ID      string `json:"_id"`
	CheckID struct {
		ID string `json:"_id"`
	} `json:"checkId"`
	FromStaff StaffRef `json:"fromStaffId"`
	ToStaff   StaffRef `json:"toStaffId"`
	Reason    string   `json:"reason"`
	Status    string   `json:"status"`
}

type PendingCheck struct {
	ID     string `json:"_id"`
	UserID struct {
		Email string `json:"email"`
	} `json:"userId"`
}

type ShopItem struct {
	ID              string          `json:"_id"`
	Enable          bool            `json:"enable"`
	Title           string          `json:"title"`
	CreditLimit     int             `json:"creditLimit"`
	Country         string          `json:"country"`
	Currency        string          `json:"currency"`
	Price           decimal.Decimal `json:"price"`
	Features        []string        `json:"features"`
	PaddleProductID string          `json:"paddleProductId,omitempty"`
}

// Gateways lists every payment gateway the settings page manages, in
// display order.
var Gateways = []string{"stripe", "paddle", "imepay", "esewa", "khalti", "fonepay"}

type PaymentMethod struct {
	Enabled    bool     `json:"enabled"`
	Currencies []string `json:"currencies"`
}

type PaymentMethods struct {
	Stripe  PaymentMethod `json:"stripe"`
	Paddle  PaymentMethod `json:"paddle"`
	IMEPay  PaymentMethod `json:"imepay"`
	Esewa   PaymentMethod `json:"esewa"`
	Khalti  PaymentMethod `json:"khalti"`
	Fonepay PaymentMethod `json:"fonepay"`
}

// Gateway returns the settings for a named gateway, nil for an unknown one.
func (p *PaymentMethods) Gateway(name string) *PaymentMethod {
	switch name {
	case "stripe":
		return &p.Stripe
	case "paddle":
		return &p.Paddle
	case "imepay":
		return &p.IMEPay
	case "esewa":
		return &p.Esewa
	case "khalti":
		return &p.Khalti
	case "fonepay":
		return &p.Fonepay
	default:
		return nil
	}
}

type Dashboard struct {
	Items                        int                        `json:"items"`
	Users                        int                        `json:"users"`
	PurchasesByCurrency          map[string]decimal.Decimal `json:"purchasesByCurrency"`
	PurchaseCountByCurrency      map[string]int             `json:"purchaseCountByCurrency"`
	TodayPurchasesByCurrency     map[string]decimal.Decimal `json:"todayPurchasesByCurrency"`
	TodayPurchaseCountByCurrency map[string]int             `json:"todayPurchaseCountByCurrency"`
}

type BucketCount struct {
	ID    string `json:"_id"`
	Count int    `json:"count"`
}

type UserStats struct {
	TotalUsers   int             `json:"totalUsers"`
	TodayUsers   int             `json:"todayUsers"`
	WeekUsers    int             `json:"weekUsers"`
	MonthUsers   int             `json:"monthUsers"`
	YearUsers    int             `json:"yearUsers"`
	UserGrowth   []BucketCount   `json:"userGrowth"`
	UserTypes    []BucketCount   `json:"userTypes"`
	UserStatuses []BucketCount   `json:"userStatuses"`
	YoYGrowth    decimal.Decimal `json:"yoyGrowth"`
	MoMGrowth    decimal.Decimal `json:"momGrowth"`
	WoWGrowth    decimal.Decimal `json:"wowGrowth"`
}

type PurchaseStats struct {
	TotalPurchases int             `json:"totalPurchases"`
	TodayPurchases int             `json:"todayPurchases"`
	WeekPurchases  int             `json:"weekPurchases"`
	MonthPurchases int             `json:"monthPurchases"`
	YearPurchases  int             `json:"yearPurchases"`
	Revenue        decimal.Decimal `json:"revenue"`
	Growth         []BucketCount   `json:"growth"`
}

type CreditStats struct {
	TotalCredits       decimal.Decimal `json:"totalCredits"`
	CreditsAdded       decimal.Decimal `json:"creditsAdded"`
	CreditsUsed        decimal.Decimal `json:"creditsUsed"`
	TodayUsage         decimal.Decimal `json:"todayUsage"`
	DistributionByType []BucketCount   `json:"distributionByType"`
}

type TodayUsage struct {
	ID          string          `json:"_id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type TopUser struct {
	Email       string          `json:"email"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
