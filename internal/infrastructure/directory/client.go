// Package directory is the HTTP client of the external candidate directory
// (a dummyjson-compatible REST API).
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/interviewdesk/dashboard/internal/pkg/metrics"
	"github.com/interviewdesk/dashboard/internal/core/domain"
)

const (
	DefaultBaseURL      = "https://dummyjson.com"
	defaultTimeout      = 10 * time.Second
	defaultRetryBackoff = 200 * time.Millisecond
	maxResponseBytes    = 4 << 20
)

// Config captures the settings of the directory client.
type Config struct {
	BaseURL      string
	Timeout      time.Duration // per attempt
	MaxRetries   int           // retries after the first attempt, GETs only
	RetryBackoff time.Duration // initial retry interval
}

// Client talks to the candidate directory. It is safe for concurrent use.
type Client struct {
	baseURL      string
	http         *http.Client
	timeout      time.Duration
	maxRetries   int
	retryBackoff time.Duration
	log          zerolog.Logger
}

// New builds a Client. Zero values in cfg fall back to defaults; a negative
// MaxRetries disables retries.
func New(cfg Config, log zerolog.Logger) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	interval := cfg.RetryBackoff
	if interval <= 0 {
		interval = defaultRetryBackoff
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return &Client{
		baseURL:      base,
		http:         &http.Client{},
		timeout:      timeout,
		maxRetries:   retries,
		retryBackoff: interval,
		log:          log,
	}
}

// statusError is a non-2xx response from the directory.
type statusError struct {
	Code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

func statusCode(err error) int {
	var se *statusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

type request struct {
	endpoint string // metric label
	method   string
	path     string
	query    url.Values
	body     any
	retry    bool
}

// do executes req, decoding a 2xx JSON body into out when out is non-nil.
// Idempotent requests are retried on transport errors, 429 and 5xx.
func (c *Client) do(ctx context.Context, req request, out any) error {
	start := time.Now()
	defer func() {
		metrics.UpstreamRequestDuration.WithLabelValues(req.endpoint).Observe(time.Since(start).Seconds())
	}()

	attempt := func() error {
		err := c.once(ctx, req, out)
		if err == nil {
			return nil
		}
		if !req.retry || !retryable(err) {
			return backoff.Permanent(err)
		}
		c.log.Warn().Err(err).Str("endpoint", req.endpoint).Msg("directory call failed")
		return err
	}

	var policy backoff.BackOff = &backoff.StopBackOff{}
	if req.retry && c.maxRetries > 0 {
		eb := backoff.NewExponentialBackOff()
		eb.InitialInterval = c.retryBackoff
		eb.MaxElapsedTime = 0
		policy = backoff.WithMaxRetries(eb, uint64(c.maxRetries))
	}

	err := backoff.Retry(attempt, backoff.WithContext(policy, ctx))
	metrics.UpstreamRequestsTotal.WithLabelValues(req.endpoint, outcome(err)).Inc()
	return err
}

func (c *Client) once(ctx context.Context, req request, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &statusError{Code: resp.StatusCode}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// retryable reports whether err is a transport failure or a transient status.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if code := statusCode(err); code != 0 {
		return code == http.StatusTooManyRequests || code >= 500
	}
	var ue *url.Error
	return errors.As(err, &ue)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case statusCode(err) == http.StatusNotFound:
		return "not_found"
	case statusCode(err) == http.StatusBadRequest, statusCode(err) == http.StatusUnauthorized:
		return "rejected"
	default:
		return "error"
	}
}

// unavailable wraps err as a domain.ErrUpstreamUnavailable for endpoint.
func unavailable(endpoint string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrUpstreamUnavailable, endpoint, err)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Authenticate checks the credentials against POST /auth/login.
func (c *Client) Authenticate(ctx context.Context, username, password string) error {
	err := c.do(ctx, request{
		endpoint: "login",
		method:   http.MethodPost,
		path:     "/auth/login",
		body:     loginRequest{Username: username, Password: password},
	}, nil)
	switch code := statusCode(err); {
	case err == nil:
		return nil
	case code == http.StatusBadRequest, code == http.StatusUnauthorized:
		return domain.ErrInvalidCredentials
	default:
		return unavailable("login", err)
	}
}

type usersResponse struct {
	Users []domain.User `json:"users"`
	Total int           `json:"total"`
	Skip  int           `json:"skip"`
	Limit int           `json:"limit"`
}

// ListUsers fetches GET /users?sortBy=id.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var resp usersResponse
	err := c.do(ctx, request{
		endpoint: "list_users",
		method:   http.MethodGet,
		path:     "/users",
		query:    url.Values{"sortBy": {"id"}},
		retry:    true,
	}, &resp)
	if err != nil {
		return nil, unavailable("list_users", err)
	}
	if resp.Users == nil {
		resp.Users = []domain.User{}
	}
	return resp.Users, nil
}

// GetUser fetches GET /users/{id}.
func (c *Client) GetUser(ctx context.Context, id int) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, request{
		endpoint: "get_user",
		method:   http.MethodGet,
		path:     "/users/" + strconv.Itoa(id),
		retry:    true,
	}, &user)
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return domain.User{}, domain.ErrCandidateNotFound
		}
		return domain.User{}, unavailable("get_user", err)
	}
	return user, nil
}

type todosResponse struct {
	Todos []domain.ScheduleItem `json:"todos"`
}

// ListTodos fetches GET /todos?userId={id}.
func (c *Client) ListTodos(ctx context.Context, userID int) ([]domain.ScheduleItem, error) {
	var resp todosResponse
	err := c.do(ctx, request{
		endpoint: "list_todos",
		method:   http.MethodGet,
		path:     "/todos",
		query:    url.Values{"userId": {strconv.Itoa(userID)}},
		retry:    true,
	}, &resp)
	if err != nil {
		return nil, unavailable("list_todos", err)
	}
	if resp.Todos == nil {
		resp.Todos = []domain.ScheduleItem{}
	}
	return resp.Todos, nil
}

// post is the directory's wire shape of a post.
type post struct {
	ID        int              `json:"id"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	UserID    int              `json:"userId"`
	Tags      []string         `json:"tags"`
	Reactions domain.Reactions `json:"reactions"`
}

func (p post) entry() domain.FeedbackEntry {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.FeedbackEntry{
		ID:        strconv.Itoa(p.ID),
		OwnerID:   p.UserID,
		Title:     p.Title,
		Body:      p.Body,
		Reactions: p.Reactions,
		Tags:      tags,
	}
}

type postsResponse struct {
	Posts []post `json:"posts"`
}

// ListPosts fetches GET /posts?userId={id}.
func (c *Client) ListPosts(ctx context.Context, userID int) ([]domain.FeedbackEntry, error) {
	var resp postsResponse
	err := c.do(ctx, request{
		endpoint: "list_posts",
		method:   http.MethodGet,
		path:     "/posts",
		query:    url.Values{"userId": {strconv.Itoa(userID)}},
		retry:    true,
	}, &resp)
	if err != nil {
		return nil, unavailable("list_posts", err)
	}

	entries := make([]domain.FeedbackEntry, 0, len(resp.Posts))
	for _, p := range resp.Posts {
		entries = append(entries, p.entry())
	}
	return entries, nil
}

type createPostRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// CreatePost sends POST /posts?userId={id}. It is never retried.
func (c *Client) CreatePost(ctx context.Context, entry domain.FeedbackEntry) (domain.FeedbackEntry, error) {
	var created post
	err := c.do(ctx, request{
		endpoint: "create_post",
		method:   http.MethodPost,
		path:     "/posts",
		query:    url.Values{"userId": {strconv.Itoa(entry.OwnerID)}},
		body:     createPostRequest{Title: entry.Title, Body: entry.Body, UserID: entry.OwnerID},
	}, &created)
	if err != nil {
		return domain.FeedbackEntry{}, unavailable("create_post", err)
	}

	out := created.entry()
	if out.OwnerID == 0 {
		out.OwnerID = entry.OwnerID
	}
	if out.Title == "" {
		out.Title = entry.Title
	}
	if out.Body == "" {
		out.Body = entry.Body
	}
	return out, nil
}

// Ping checks that the directory answers a minimal users query.
func (c *Client) Ping(ctx context.Context) error {
	err := c.do(ctx, request{
		endpoint: "ping",
		method:   http.MethodGet,
		path:     "/users",
		query:    url.Values{"limit": {"1"}, "select": {"id"}},
	}, nil)
	if err != nil {
		return unavailable("ping", err)
	}
	return nil
}
