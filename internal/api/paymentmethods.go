package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/checkturnitin/adminctl/internal/models"
)

func (c *Client) GetPaymentMethods(ctx context.Context) (*models.PaymentMethods, error) {
	var out models.PaymentMethods
	err := c.get(ctx, "/admin/payment-methods", nil, &out, "Error fetching payment methods")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SavePaymentMethods posts the full gateway set and returns the saved
// state; the backend echoes what it stored.
func (c *Client) SavePaymentMethods(ctx context.Context, methods models.PaymentMethods) (*models.PaymentMethods, error) {
	var out models.PaymentMethods
	err := c.send(ctx, resty.MethodPost, "/admin/payment-methods", methods, &out, "Error saving payment methods")
	if err != nil {
		return nil, err
	}
	return &out, nil
}
