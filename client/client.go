// Package client drives the demo web application over plain HTTP. It submits
// the same forms a browser would (register, login, web inputs) and classifies
// the responses by status, landing URL and the application's flash banner.
// Browser mechanics are deliberately out of scope for this harness.
package client

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/qaflows/webapp-flow-tests/config"
	"github.com/qaflows/webapp-flow-tests/framework"
)

const requestTimeout = time.Second * 30

// AppClient is one browsing session against the application under test. It
// keeps a cookie jar, so a login is visible to subsequent requests from the
// same client. Create a fresh client per test for isolation.
type AppClient struct {
	env        *config.Environment
	httpClient *http.Client
	logger     framework.Logger
}

// RegistrationForm is the register page's field set.
type RegistrationForm struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// WebInputForm is the web-inputs page's field set. All values are the textual
// form the page receives.
type WebInputForm struct {
	Number   string
	Text     string
	Password string
	Date     string
}

// FormResponse is the classified outcome of a form submission.
type FormResponse struct {
	StatusCode int
	// LandedURL is the final URL after redirects.
	LandedURL string
	// Flash is the text of the application's flash/alert banner, if any.
	Flash string
	// Body is the full response page, kept for element lookups.
	Body string
}

// EchoedValue returns the text of the element with the given id in the
// response page. The web-inputs page echoes each accepted value back in an
// output element.
func (r *FormResponse) EchoedValue(id string) string {
	return elementText(r.Body, id)
}

func New(env *config.Environment, logger framework.Logger) *AppClient {
	if logger == nil {
		logger = framework.NullLogger()
	}
	jar, _ := cookiejar.New(nil)
	return &AppClient{
		env: env,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// WaitForSite polls the application's base URL until it answers 200 or the
// timeout elapses, writing progress dots to output. Run it once before the
// suite; an unreachable site is an environment problem, not a test failure.
func (c *AppClient) WaitForSite(timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Checking that %s is reachable", c.env.BaseURL)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := c.httpClient.Get(c.env.BaseURL)
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode == 200 {
				fmt.Fprintln(output)
				return nil
			}
			err = fmt.Errorf("site returned status code %d", resp.StatusCode)
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out waiting for %s, last result: %w", c.env.BaseURL, err)
		}
		time.Sleep(time.Millisecond * 500)
	}
}

// Register submits the registration form. Success means the application
// confirmed account creation in its flash banner or bounced us to the login
// page; callers must check Succeeded before treating the account as real.
func (c *AppClient) Register(form RegistrationForm) (*FormResponse, error) {
	values := url.Values{}
	values.Set("username", form.Username)
	values.Set("password", form.Password)
	values.Set("confirmPassword", form.ConfirmPassword)
	return c.postForm(c.env.RegisterURL, values, "register")
}

// RegisterSucceeded interprets a registration response.
func (c *AppClient) RegisterSucceeded(resp *FormResponse) bool {
	if resp.StatusCode >= 400 {
		return false
	}
	return strings.Contains(strings.ToLower(resp.Flash), "successfully registered") ||
		strings.HasPrefix(resp.LandedURL, c.env.LoginURL)
}

// Login submits the login form. Success is landing on the dashboard.
func (c *AppClient) Login(username, password string) (*FormResponse, error) {
	values := url.Values{}
	values.Set("username", username)
	values.Set("password", password)
	return c.postForm(c.env.LoginURL, values, "login")
}

// LoginSucceeded interprets a login response: the session must have been
// redirected to the configured dashboard URL.
func (c *AppClient) LoginSucceeded(resp *FormResponse) bool {
	return resp.StatusCode < 400 && strings.HasPrefix(resp.LandedURL, c.env.DashboardURL)
}

// SubmitWebInputs submits the web-inputs form and returns the page's
// response. The page echoes accepted values back in its output panel, which
// the caller can check with EchoedValue.
func (c *AppClient) SubmitWebInputs(form WebInputForm) (*FormResponse, error) {
	values := url.Values{}
	values.Set("inputNumber", form.Number)
	values.Set("inputText", form.Text)
	values.Set("inputPassword", form.Password)
	values.Set("inputDate", form.Date)
	return c.postForm(c.env.WebInputURL, values, "web inputs")
}

func (c *AppClient) postForm(target string, values url.Values, action string) (*FormResponse, error) {
	c.logger.Printf("POST %s (%s) with fields %s", target, action, describeFields(values))

	resp, err := c.httpClient.PostForm(target, values)
	if err != nil {
		c.logger.Printf("request failed: %s", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", target, err)
	}

	result := &FormResponse{
		StatusCode: resp.StatusCode,
		LandedURL:  resp.Request.URL.String(),
		Flash:      extractFlash(string(body)),
		Body:       string(body),
	}
	c.logger.Printf("got status %d, landed at %s, flash banner: %q",
		result.StatusCode, result.LandedURL, result.Flash)
	return result, nil
}

// describeFields lists the submitted field names without their values, so
// passwords never end up in debug logs.
func describeFields(values url.Values) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}
