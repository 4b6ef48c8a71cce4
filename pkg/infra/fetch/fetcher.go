package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/RinzlerTron/Lylyt/pkg/domain/interfaces"
	"github.com/RinzlerTron/Lylyt/pkg/domain/model"
	"github.com/RinzlerTron/Lylyt/pkg/domain/types"
	"github.com/RinzlerTron/Lylyt/pkg/utils/progress"
)

// chunkSize is the read buffer used when streaming the response body to disk
const chunkSize = 8 * 1024

type client struct {
	httpClient  *http.Client
	progressOut io.Writer
}

// Option is a functional option for fetcher configuration
type Option func(*client)

// WithHTTPClient replaces the HTTP client used for requests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// WithTimeout sets an overall timeout for the download request
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.httpClient.Timeout = d
	}
}

// WithProgressOutput sets where progress lines are written (default: stdout)
func WithProgressOutput(w io.Writer) Option {
	return func(c *client) {
		c.progressOut = w
	}
}

// New creates a streaming HTTP fetcher
func New(opts ...Option) interfaces.Fetcher {
	c := &client{
		httpClient:  &http.Client{},
		progressOut: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch issues a GET request for url and streams the response body into the
// file at dest in fixed-size chunks, reporting percentage progress when the
// server declares a Content-Length.
func (c *client) Fetch(ctx context.Context, url, dest string) (*model.FetchResult, error) {
	logger := ctxlog.From(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "creating download request", goerr.V("url", url))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "downloading model archive", goerr.V("url", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, goerr.Wrap(types.ErrUnexpectedStatus, "downloading model archive",
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
		)
	}

	logger.Debug("Download started",
		"url", url,
		"content_length", resp.ContentLength,
	)

	out, err := os.Create(dest)
	if err != nil {
		return nil, goerr.Wrap(err, "creating archive file", goerr.V("path", dest))
	}
	defer out.Close()

	reporter := progress.New(c.progressOut, resp.ContentLength)
	buf := make([]byte, chunkSize)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return nil, goerr.Wrap(writeErr, "writing archive file", goerr.V("path", dest))
			}
			reporter.Add(n)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, goerr.Wrap(readErr, "reading response body", goerr.V("url", url))
		}
	}
	reporter.Finish()

	if err := out.Close(); err != nil {
		return nil, goerr.Wrap(err, "closing archive file", goerr.V("path", dest))
	}

	logger.Info("Download complete",
		"url", url,
		"path", dest,
		"size_bytes", reporter.Written(),
	)

	return &model.FetchResult{
		Path: dest,
		Size: reporter.Written(),
	}, nil
}
