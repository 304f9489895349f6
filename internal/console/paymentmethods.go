package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/checkturnitin/adminctl/internal/models"
)

func (c *Console) PaymentMethods(ctx context.Context) error {
	methods, err := c.client.GetPaymentMethods(ctx)
	if err != nil {
		c.notifyError(err)
		return err
	}
	c.renderPaymentMethods(methods)
	return nil
}

// TogglePaymentMethod flips one gateway and saves the full set, the same
// whole-object write the settings page made.
func (c *Console) TogglePaymentMethod(ctx context.Context, gateway string) error {
	methods, err := c.client.GetPaymentMethods(ctx)
	if err != nil {
		c.notifyError(err)
		return err
	}

	entry := methods.Gateway(gateway)
	if entry == nil {
		err := fmt.Errorf("unknown payment gateway %q", gateway)
		c.notifyError(err)
		return err
	}
	entry.Enabled = !entry.Enabled

	saved, err := c.client.SavePaymentMethods(ctx, *methods)
	if err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Payment method updated successfully")
	c.renderPaymentMethods(saved)
	return nil
}

func (c *Console) renderPaymentMethods(methods *models.PaymentMethods) {
	c.heading("Payment Methods")
	rows := make([][]string, 0, len(models.Gateways))
	for _, name := range models.Gateways {
		entry := methods.Gateway(name)
		state := "disabled"
		if entry.Enabled {
			state = "enabled"
		}
		rows = append(rows, []string{name, state, strings.Join(entry.Currencies, ", ")})
	}
	c.table([]string{"Gateway", "State", "Currencies"}, rows)
}
