package console

import (
	"context"
	"fmt"
)

func (c *Console) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		fmt.Fprintln(c.out, "usage: adminctl login -email <email> -password <password>")
		return nil
	}
	if err := c.client.Login(ctx, email, password); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Logged In!")
	return nil
}

func (c *Console) Logout() error {
	if err := c.auth.Clear(); err != nil {
		c.notifyError(err)
		return err
	}
	c.notifySuccess("Logged out successfully!")
	return nil
}
