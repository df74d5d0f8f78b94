// Package thingsurl drives the Things URL-command interface.
//
// The URL channel is one-way: commands are handed to the OS to open and
// no result comes back. It exists because checklist items cannot be
// written through the scripting bridge at all.
package thingsurl

import (
	"fmt"
	"net/url"
	"os/exec"
	"strings"
	"sync"
)

const scheme = "things:///update"

// Opener hands a URL to the operating system.
type Opener interface {
	Open(rawURL string) error
}

type execOpener struct{}

func (execOpener) Open(rawURL string) error {
	return exec.Command("open", rawURL).Run()
}

// Client builds and fires Things URL commands.
type Client struct {
	mu        sync.Mutex
	authToken string
	opener    Opener
}

// New creates a Client that opens URLs via the host's `open` command.
// The auth token may be empty when the application has no token gating.
func New(authToken string) *Client {
	return NewWithOpener(authToken, execOpener{})
}

// NewWithOpener creates a Client with a custom Opener.
func NewWithOpener(authToken string, opener Opener) *Client {
	return &Client{
		authToken: authToken,
		opener:    opener,
	}
}

// SetAuthToken replaces the auth token at runtime.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authToken = token
}

// HasAuthToken reports whether an auth token is configured.
func (c *Client) HasAuthToken() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authToken != ""
}

// AppendChecklistItems appends items to the checklist of the given to-do.
func (c *Client) AppendChecklistItems(todoID string, items []string) error {
	return c.fire(todoID, "append-checklist-items", items)
}

// ReplaceChecklistItems replaces the entire checklist of the given to-do.
func (c *Client) ReplaceChecklistItems(todoID string, items []string) error {
	return c.fire(todoID, "checklist-items", items)
}

// fire builds the update URL and opens it. Fire-and-forget: the URL
// interface returns no data, so success only means the URL was handed off.
func (c *Client) fire(todoID, param string, items []string) error {
	rawURL := c.buildURL(todoID, param, items)
	if err := c.opener.Open(rawURL); err != nil {
		return fmt.Errorf("failed to open url command: %w", err)
	}
	return nil
}

func (c *Client) buildURL(todoID, param string, items []string) string {
	var sb strings.Builder
	sb.WriteString(scheme)
	sb.WriteString("?id=")
	sb.WriteString(url.QueryEscape(todoID))
	sb.WriteString("&")
	sb.WriteString(param)
	sb.WriteString("=")
	sb.WriteString(url.QueryEscape(strings.Join(items, "\n")))

	c.mu.Lock()
	token := c.authToken
	c.mu.Unlock()

	if token != "" {
		sb.WriteString("&auth-token=")
		sb.WriteString(url.QueryEscape(token))
	}

	return sb.String()
}
