//go:build e2e

package e2e

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// LoginPage wraps the demo site's login form behind named operations. It is
// bound to one live page handle at construction; the URLs and selectors are
// fixed and never mutated. Operations fail once the underlying page is
// closed.
type LoginPage struct {
	page      *rod.Page
	loginURL  string
	secureURL string
}

// NewLoginPage binds a page object to the given live page.
func NewLoginPage(page *rod.Page, baseURL string) *LoginPage {
	return &LoginPage{
		page:      page,
		loginURL:  baseURL + "/login",
		secureURL: baseURL + "/secure",
	}
}

// Navigate opens the login form and waits for it to load.
func (p *LoginPage) Navigate() error {
	if err := p.page.Navigate(p.loginURL); err != nil {
		return fmt.Errorf("open login page: %w", err)
	}
	return p.page.WaitLoad()
}

// Login fills the credentials, submits the form, and waits for the follow-up
// page to load.
func (p *LoginPage) Login(username, password string) error {
	if err := p.fill("#username", username); err != nil {
		return err
	}
	if err := p.fill("#password", password); err != nil {
		return err
	}

	btn, err := p.page.Element("#login-submit")
	if err != nil {
		return fmt.Errorf("submit button: %w", err)
	}

	// Submitting navigates, so register the waiter before the click
	wait := p.page.WaitNavigation(proto.PageLifecycleEventNameLoad)
	if err := btn.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("submit login form: %w", err)
	}
	wait()
	return nil
}

// FlashMessage returns the text of the flash region, waiting for the element
// to appear first.
func (p *LoginPage) FlashMessage() (string, error) {
	el, err := p.page.Element("#flash")
	if err != nil {
		return "", fmt.Errorf("flash message: %w", err)
	}
	text, err := el.Text()
	if err != nil {
		return "", fmt.Errorf("flash message text: %w", err)
	}
	return text, nil
}

// CurrentURL reports where the page ended up after the last operation.
func (p *LoginPage) CurrentURL() (string, error) {
	info, err := p.page.Info()
	if err != nil {
		return "", fmt.Errorf("page info: %w", err)
	}
	return info.URL, nil
}

// URL is the login form address the page object was constructed with.
func (p *LoginPage) URL() string { return p.loginURL }

// SecureURL is where a successful login lands.
func (p *LoginPage) SecureURL() string { return p.secureURL }

func (p *LoginPage) fill(selector, value string) error {
	el, err := p.page.Element(selector)
	if err != nil {
		return fmt.Errorf("field %s: %w", selector, err)
	}
	if err := el.Input(value); err != nil {
		return fmt.Errorf("fill %s: %w", selector, err)
	}
	return nil
}
