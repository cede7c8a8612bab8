// client/client.go

// Package client is the typed HTTP client for the Jupiter billing API. One
// authenticated resty client backs a set of per-concern interfaces so the
// services depend only on the slice of the API they use.
package client

import (
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/jupiterai/jupiterctl/config"
	jerrors "github.com/jupiterai/jupiterctl/errors"
	"github.com/jupiterai/jupiterctl/session"
)

// Client talks to the billing backend. The session is explicit state passed
// in at construction; nothing reaches into shared storage behind the caller's
// back.
type Client struct {
	resty *resty.Client
	sess  *session.Session
	log   *zap.Logger
}

// New builds a client for the configured backend. sess may be nil for the
// login flow; every other call then fails with ErrNotAuthenticated before
// touching the network.
func New(cfg *config.Configuration, sess *session.Session, log *zap.Logger) *Client {
	if log == nil {
		log = zap.L()
	}
	c := &Client{sess: sess, log: log.With(zap.String("component", "api_client"))}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.API.BaseURL, "/")).
		SetTimeout(cfg.API.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	rc.JSONMarshal = jsoniter.Marshal
	rc.JSONUnmarshal = jsoniter.Unmarshal
	rc.OnBeforeRequest(c.beforeRequest)

	c.resty = rc
	return c
}

// beforeRequest is the route guard: it refuses unauthenticated requests
// before any network call and stamps every request with an id for log
// correlation.
func (c *Client) beforeRequest(_ *resty.Client, req *resty.Request) error {
	req.SetHeader("X-Request-ID", uuid.NewString())

	if isPublicPath(req.URL) {
		return nil
	}
	if !c.sess.Valid() {
		return jerrors.ErrNotAuthenticated
	}
	req.SetHeader("Authorization", c.sess.Authorization())
	return nil
}

func isPublicPath(path string) bool {
	return strings.HasSuffix(path, loginPath)
}

// r starts a request with the API error envelope registered.
func (c *Client) r() *resty.Request {
	return c.resty.R().SetError(&APIError{})
}

// check folds a resty response into an error. Backend errors arrive as
// {"detail": "..."}; the detail is preserved verbatim for display.
func (c *Client) check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.IsError() {
		return nil
	}
	if apiErr, ok := resp.Error().(*APIError); ok && apiErr.Detail != "" {
		apiErr.Status = resp.StatusCode()
		return apiErr
	}
	return &APIError{Status: resp.StatusCode(), Detail: resp.Status()}
}
