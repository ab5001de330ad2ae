package router_test

import (
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stpnv0/Activities/internal/domain"
	"github.com/stpnv0/Activities/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBrowserPage starts Chromium via Playwright. The test is skipped when
// the driver or browsers are not installed.
func newBrowserPage(t *testing.T) playwright.Page {
	t.Helper()
	if testing.Short() {
		t.Skip("browser test skipped in short mode")
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Skipf("playwright unavailable: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		pw.Stop()
		t.Skipf("failed to launch browser: %v", err)
	}
	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
	})

	page, err := browser.NewPage()
	require.NoError(t, err)
	t.Cleanup(func() { page.Close() })
	return page
}

func TestBrowser_SignupAndUnregister(t *testing.T) {
	page := newBrowserPage(t)
	app := newTestApp(t, []domain.Activity{
		{Name: "Chess Club", Description: "Strategy", Schedule: "Fridays", MaxParticipants: 2,
			Participants: []string{"a@x.com"}},
	})

	_, err := page.Goto(app.URL + "/")
	require.NoError(t, err)

	card := page.Locator(".activity-card").Filter(playwright.LocatorFilterOptions{HasText: "Chess Club"})
	require.NoError(t, card.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}))
	availability, err := card.Locator(".availability").TextContent()
	require.NoError(t, err)
	assert.Contains(t, availability, "1 spots left")

	options, err := page.Locator("#activity option").Count()
	require.NoError(t, err)
	assert.Equal(t, 2, options)

	require.NoError(t, page.Locator("#email").Fill("b@x.com"))
	_, err = page.Locator("#activity").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{"Chess Club"},
	})
	require.NoError(t, err)
	require.NoError(t, page.Locator("#signup-form button[type=submit]").Click())

	message := page.Locator("#message.success")
	require.NoError(t, message.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}))
	text, err := message.TextContent()
	require.NoError(t, err)
	assert.Equal(t, "Signed up b@x.com for Chess Club", text)

	email, err := page.Locator("#email").InputValue()
	require.NoError(t, err)
	assert.Empty(t, email)

	rows, err := card.Locator(".participant-email").AllTextContents()
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, rows)

	require.NoError(t, card.Locator("li:has-text('a@x.com') .delete-btn").Click())
	require.NoError(t, card.Locator("li:has-text('a@x.com')").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateDetached,
		Timeout: playwright.Float(5000),
	}))

	require.NoError(t, card.Locator("li:has-text('b@x.com') .delete-btn").Click())
	placeholder := card.Locator(".no-participants")
	require.NoError(t, placeholder.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}))
	text, err = placeholder.TextContent()
	require.NoError(t, err)
	assert.Equal(t, view.NoParticipantsText, text)
}

func TestBrowser_DuplicateSignupShowsDetail(t *testing.T) {
	page := newBrowserPage(t)
	app := newTestApp(t, []domain.Activity{
		{Name: "Chess Club", MaxParticipants: 2, Participants: []string{"a@x.com"}},
	})

	_, err := page.Goto(app.URL + "/")
	require.NoError(t, err)

	require.NoError(t, page.Locator("#email").Fill("a@x.com"))
	_, err = page.Locator("#activity").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{"Chess Club"},
	})
	require.NoError(t, err)
	require.NoError(t, page.Locator("#signup-form button[type=submit]").Click())

	message := page.Locator("#message.error")
	require.NoError(t, message.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}))
	text, err := message.TextContent()
	require.NoError(t, err)
	assert.Equal(t, "Student already signed up", text)

	email, err := page.Locator("#email").InputValue()
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestBrowser_MessageHidesAfterTTL(t *testing.T) {
	page := newBrowserPage(t)
	app := newTestAppWithTTL(t, []domain.Activity{
		{Name: "Chess Club", MaxParticipants: 2},
	}, 1500*time.Millisecond)

	_, err := page.Goto(app.URL + "/")
	require.NoError(t, err)

	require.NoError(t, page.Locator("#email").Fill("b@x.com"))
	_, err = page.Locator("#activity").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{"Chess Club"},
	})
	require.NoError(t, err)
	require.NoError(t, page.Locator("#signup-form button[type=submit]").Click())

	message := page.Locator("#message")
	require.NoError(t, page.Locator("#message.success").WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}))
	shown := time.Now()

	require.NoError(t, message.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(5000),
	}))
	assert.Less(t, time.Since(shown), 3*time.Second)

	class, err := message.GetAttribute("class")
	require.NoError(t, err)
	assert.Equal(t, "hidden", class)
}
