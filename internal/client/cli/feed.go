package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/collegecupid/cupid-cli/internal/client/models"
	"github.com/collegecupid/cupid-cli/internal/client/services"
	"github.com/collegecupid/cupid-cli/internal/common"
)

// Feed browses the paginated user feed. Pages are fetched on every visit
// (no cross-page cache); forward navigation is disabled once a short page
// signals the end.
func (a *App) Feed(ctx context.Context) error {
	if _, err := a.session.Current(ctx); err != nil {
		a.printer.Warn("Not signed in. Use 'login' first.")
		return common.ErrAuthMissing
	}

	current := 0
	for {
		page, err := a.feedService.Page(ctx, current)
		if err != nil {
			if a.checkSessionExpired(ctx, err) {
				return err
			}
			a.printer.Errorf("Could not load the feed: %v", err)
			return err
		}

		a.renderPage(page)

		choices := "[p]rev, [b]ack"
		if page.HasMore {
			choices = "[n]ext, " + choices
		}
		action, err := getSimpleText(a.reader, choices, os.Stdout)
		if err != nil {
			return err
		}

		switch strings.ToLower(action) {
		case "n", "next":
			if page.HasMore {
				current++
			} else {
				a.printer.Warn("No more pages.")
			}
		case "p", "prev":
			if current > 0 {
				current--
			}
		case "b", "back":
			return nil
		}
	}
}

func (a *App) renderPage(page services.Page) {
	a.printer.Info("")
	a.printer.Info("Discover People — page %d", page.Number+1)

	if len(page.Users) == 0 {
		a.printer.Info("No users found. Check back later for new profiles.")
		return
	}

	headers := []string{"Name", "Personality", "Gender", "Program", "Year", "Looking For", "Orientation", "Interests", "Photos"}
	rows := make([][]string, 0, len(page.Users))
	for _, u := range page.Users {
		rows = append(rows, summaryRow(u))
	}
	a.printer.Table(headers, rows)
}

// summaryRow flattens one user card. Orientation and goals show only when
// the owner opted to display them.
func summaryRow(u models.UserSummary) []string {
	name := u.Name
	if name == "" {
		name = "Anonymous"
	}

	year := ""
	if u.YearOfJoin != 0 {
		year = strconv.Itoa(u.YearOfJoin)
	}

	goal := ""
	if u.RelationshipGoals != nil && u.RelationshipGoals.Display {
		goal = u.RelationshipGoals.Goal
	}

	orientation := ""
	if u.SexualOrientation != nil && u.SexualOrientation.Display {
		orientation = u.SexualOrientation.Type
	}

	return []string{
		name,
		u.PersonalityType,
		u.Gender,
		u.Program,
		year,
		goal,
		orientation,
		interestsSummary(u.Interests),
		strconv.Itoa(len(u.ProfilePicURLs)),
	}
}

// interestsSummary shows the first five interests with a "+N more" suffix.
func interestsSummary(interests []string) string {
	const shown = 5
	if len(interests) <= shown {
		return strings.Join(interests, ", ")
	}
	return fmt.Sprintf("%s +%d more", strings.Join(interests[:shown], ", "), len(interests)-shown)
}
