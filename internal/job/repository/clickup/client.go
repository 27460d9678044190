package clickup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	pkgLog "proxy-jobs-export/pkg/log"
)

const (
	DefaultBaseURL     = "https://api.clickup.com/api/v2"
	DefaultPageSize    = 100
	DefaultBackoffBase = time.Second
	DefaultBackoffMax  = 10 * time.Second
	maxErrorBody       = 300
)

// Client is the HTTP wrapper for the ClickUp REST API v2.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	pageSize    int
	backoffBase time.Duration
	backoffMax  time.Duration
	l           pkgLog.Logger
}

// NewClient creates a ClickUp client that sends token as-is in the
// Authorization header, the form ClickUp expects for personal tokens.
func NewClient(token string, l pkgLog.Logger) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("clickup: token is required")
	}

	httpClient := &http.Client{
		Transport: &tokenTransport{token: token, base: http.DefaultTransport},
		Timeout:   60 * time.Second,
	}

	return &Client{
		baseURL:     DefaultBaseURL,
		httpClient:  httpClient,
		limiter:     rate.NewLimiter(rate.Inf, 1),
		pageSize:    DefaultPageSize,
		backoffBase: DefaultBackoffBase,
		backoffMax:  DefaultBackoffMax,
		l:           l,
	}, nil
}

// WithBaseURL overrides the default ClickUp API base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithTimeout sets the per-request timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.httpClient.Timeout = d
	}
	return c
}

// WithPageSize sets the page size below which a task page is treated as the last.
func (c *Client) WithPageSize(n int) *Client {
	if n > 0 {
		c.pageSize = n
	}
	return c
}

// WithRateLimit paces requests to at most perMinute per minute. Zero disables pacing.
func (c *Client) WithRateLimit(perMinute int) *Client {
	if perMinute <= 0 {
		c.limiter = rate.NewLimiter(rate.Inf, 1)
		return c
	}
	burst := perMinute / 10
	if burst < 1 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst)
	return c
}

// WithBackoff sets the base and cap of the delay between throttled retries.
func (c *Client) WithBackoff(base, maxDelay time.Duration) *Client {
	if base > 0 {
		c.backoffBase = base
	}
	if maxDelay > 0 {
		c.backoffMax = maxDelay
	}
	return c
}

// ListTeams lists the workspaces visible to the token via GET /team.
func (c *Client) ListTeams(ctx context.Context) ([]Team, error) {
	var resp teamsResp
	if err := c.getJSON(ctx, "/team", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Teams, nil
}

// ListSpaces lists the spaces of a workspace via GET /team/{id}/space.
func (c *Client) ListSpaces(ctx context.Context, teamID string) ([]Space, error) {
	var resp spacesResp
	q := url.Values{"archived": {"false"}}
	if err := c.getJSON(ctx, fmt.Sprintf("/team/%s/space", url.PathEscape(teamID)), q, &resp); err != nil {
		return nil, err
	}
	return resp.Spaces, nil
}

// ListFolders lists the folders of a space via GET /space/{id}/folder.
func (c *Client) ListFolders(ctx context.Context, spaceID string) ([]Folder, error) {
	var resp foldersResp
	q := url.Values{"archived": {"false"}}
	if err := c.getJSON(ctx, fmt.Sprintf("/space/%s/folder", url.PathEscape(spaceID)), q, &resp); err != nil {
		return nil, err
	}
	return resp.Folders, nil
}

// ListLists lists the lists of a folder via GET /folder/{id}/list.
func (c *Client) ListLists(ctx context.Context, folderID string) ([]List, error) {
	var resp listsResp
	q := url.Values{"archived": {"false"}}
	if err := c.getJSON(ctx, fmt.Sprintf("/folder/%s/list", url.PathEscape(folderID)), q, &resp); err != nil {
		return nil, err
	}
	return resp.Lists, nil
}

// ListTasksPage fetches one page of tasks of a list via GET /list/{id}/task.
// last reports whether no further page should be requested.
func (c *Client) ListTasksPage(ctx context.Context, listID string, page int, includeClosed, subtasks bool) (tasks []Task, last bool, err error) {
	q := url.Values{
		"page":           {strconv.Itoa(page)},
		"include_closed": {strconv.FormatBool(includeClosed)},
		"subtasks":       {strconv.FormatBool(subtasks)},
	}

	var resp tasksResp
	if err := c.getJSON(ctx, fmt.Sprintf("/list/%s/task", url.PathEscape(listID)), q, &resp); err != nil {
		return nil, false, err
	}

	last = len(resp.Tasks) < c.pageSize
	if resp.LastPage != nil && *resp.LastPage {
		last = true
	}
	return resp.Tasks, last, nil
}

// ListAllTasks walks every page of a list's tasks.
func (c *Client) ListAllTasks(ctx context.Context, listID string, includeClosed, subtasks bool) ([]Task, error) {
	var all []Task
	for page := 0; ; page++ {
		batch, last, err := c.ListTasksPage(ctx, listID, page, includeClosed, subtasks)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if last {
			return all, nil
		}
	}
}

// getJSON performs a GET and decodes the JSON body into out. Throttled
// responses (429) are retried indefinitely with capped exponential backoff;
// any other non-2xx status is returned as *APIError.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	for attempt := 0; ; {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("clickup: rate limiter wait: %w", err)
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("failed to build clickup request %s: %w", path, err)
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return fmt.Errorf("failed to call clickup %s: %w", path, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			attempt++
			delay := c.backoffDelay(attempt)
			if c.l != nil {
				c.l.Warnf(ctx, "clickup: rate limited on %s, retry %d in %s", path, attempt, delay)
			}
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		return decodeResponse(resp, path, out)
	}
}

func decodeResponse(resp *http.Response, path string, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{StatusCode: resp.StatusCode, Path: path, Body: string(raw)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode clickup %s response: %w", path, err)
	}
	return nil
}

// backoffDelay returns min(max, base·2^attempt).
func (c *Client) backoffDelay(attempt int) time.Duration {
	if attempt > 30 {
		return c.backoffMax
	}
	d := c.backoffBase * time.Duration(1<<uint(attempt))
	if d <= 0 || d > c.backoffMax {
		return c.backoffMax
	}
	return d
}
