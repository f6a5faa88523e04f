package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
)

func (a *App) courses(ctx context.Context) error {
	sess, err := a.session(ctx)
	if err != nil {
		return err
	}

	courses, err := a.services.Resources.Courses(ctx, sess)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		fmt.Fprintln(a.out, "No active courses.")
		return nil
	}

	colors, err := a.services.Resources.Colors(ctx, sess)
	if err != nil {
		// Colors are decoration; the course list is still useful without them.
		colors = nil
	}

	for i, c := range courses {
		line := fmt.Sprintf("%d. %s", i+1, c.Name)
		if c.CourseCode != "" && c.CourseCode != c.Name {
			line += " [" + c.CourseCode + "]"
		}
		if color, ok := colors["course_"+strconv.FormatInt(c.ID, 10)]; ok {
			line += " " + color
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func (a *App) cards(ctx context.Context) error {
	sess, err := a.session(ctx)
	if err != nil {
		return err
	}

	cards, err := a.services.Resources.DashboardCards(ctx, sess)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Fprintln(a.out, "No dashboard cards.")
		return nil
	}

	for i, card := range cards {
		line := fmt.Sprintf("%d. %s", i+1, card.ShortName)
		if card.Term != "" {
			line += " (" + card.Term + ")"
		}
		if card.IsFavorited {
			line += " ★"
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

func (a *App) colors(ctx context.Context) error {
	sess, err := a.session(ctx)
	if err != nil {
		return err
	}

	colors, err := a.services.Resources.Colors(ctx, sess)
	if err != nil {
		return err
	}
	if len(colors) == 0 {
		fmt.Fprintln(a.out, "No custom colors set.")
		return nil
	}

	assets := make([]string, 0, len(colors))
	for asset := range colors {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	for _, asset := range assets {
		fmt.Fprintf(a.out, "%s: %s\n", asset, colors[asset])
	}
	return nil
}

func (a *App) refresh(ctx context.Context) error {
	sess, err := a.session(ctx)
	if err != nil {
		return err
	}

	a.services.Resources.Refresh(sess.Account.ID)
	a.services.Feed.Refresh(sess.Account.ID)

	if err := a.services.Accounts.RefreshProfile(ctx, sess); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Refreshed.")
	return nil
}

func (a *App) theme(ctx context.Context) error {
	sess, err := a.session(ctx)
	if err != nil {
		return err
	}

	brand, err := a.services.Theme.BrandConfig(ctx, sess.Account.Domain)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(brand))
	for k := range brand {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(a.out, "%s: %v\n", k, brand[k])
	}
	return nil
}
