package ui

import (
	"strings"

	"storefront/internal/content"
	"storefront/internal/rating"

	tea "github.com/charmbracelet/bubbletea"
)

func testContent() *content.Content {
	return &content.Content{
		App: content.App{
			Name:          "Habit Hero",
			Developer:     "Lantern Labs",
			PriceType:     "Free",
			OverallRating: 4.5,
			TotalRatings:  1284,
			ButtonText:    "Get",
			AgeRating:     "4+",
			LiveAppLink:   testLink,
		},
		Screenshots: []string{"/images/a.png", "/images/b.png"},
		Description: longDescription + " " + longDescription,
		WhatsNew: content.WhatsNew{
			Version: "2.4.0",
			Content: "Routines can now be reordered by dragging.",
		},
		Ratings: content.Ratings{
			Overall:      4.5,
			Distribution: rating.Distribution{"5": 72, "4": 16, "3": 6, "2": 2, "1": 4},
			TotalRatings: 1284,
		},
		Reviews: []content.Review{
			{Title: "Finally stuck with it", Date: "Mar 3", Rating: 5, User: "morningperson", Content: "The streak badges work."},
			{Title: "Reminders are flaky", Date: "Jan 29", Rating: 2.5, User: "jt", Content: "Late after a time zone change."},
		},
		Information: content.Information{
			Seller:         "Lantern Labs Ltd",
			Category:       "Health & Fitness",
			Size:           "48.2 MB",
			Language:       "English",
			Compatibility:  "iOS 16.0 or later",
			AgeRating:      "4+",
			InAppPurchases: true,
			Pricing:        []content.PriceTier{{Name: "Hero Monthly", Price: "$2.99"}},
		},
	}
}

// runCmd executes cmd and flattens batches. Only use it when no command
// blocks, i.e. without a share subscription.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// hasLine reports whether any line of s, trimmed, equals want.
func hasLine(s, want string) bool {
	for _, l := range strings.Split(stripANSI(s), "\n") {
		if strings.TrimSpace(l) == want {
			return true
		}
	}
	return false
}
