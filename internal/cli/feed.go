package cli

import (
	"context"
	"fmt"

	"github.com/ishauck/canvas-cli/internal/canvas"
)

func (a *App) feed(ctx context.Context) error {
	sess, err := a.session(ctx)
	if err != nil {
		return err
	}

	items, err := a.services.Feed.LoadFirst(ctx, sess)
	if err != nil {
		return err
	}

	a.printFeed(items, sess.Account.ID)
	return nil
}

func (a *App) feedMore(ctx context.Context) error {
	sess, err := a.session(ctx)
	if err != nil {
		return err
	}

	if !a.services.Feed.HasMore(sess.Account.ID) && len(a.services.Feed.Items(sess.Account.ID)) > 0 {
		fmt.Fprintln(a.out, "End of feed.")
		return nil
	}

	items, err := a.services.Feed.LoadMore(ctx, sess)
	if err != nil {
		return err
	}

	a.printFeed(items, sess.Account.ID)
	return nil
}

func (a *App) printFeed(items []canvas.FeedItem, accountID string) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Nothing in the feed.")
		return
	}

	for _, item := range items {
		read := " "
		if !item.ReadState {
			read = "•"
		}
		fmt.Fprintf(a.out, "%s [%s] %s  %s\n", read, item.Type, item.Title, item.CreatedAt.Format("2006-01-02 15:04"))
	}

	if a.services.Feed.HasMore(accountID) {
		fmt.Fprintln(a.out, "(type 'feed more' for older items)")
	}
}
