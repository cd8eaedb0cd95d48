package checks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"hellodock/internal/config"
	"hellodock/internal/domain"

	"github.com/alessio/shellescape"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ProbeCheck issues a live GET against a running responder. A server that is
// not running is not a failure: connection errors and timeouts are reported
// as skipped. Only an explicit non-200 answer fails.
type ProbeCheck struct {
	config *config.Config
	client *http.Client
}

// NewProbeCheck creates a new ProbeCheck
func NewProbeCheck(cfg *config.Config) *ProbeCheck {
	return &ProbeCheck{
		config: cfg,
		client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *ProbeCheck) Name() string  { return "http" }
func (c *ProbeCheck) Title() string { return "HTTP response" }

func (c *ProbeCheck) Run(ctx context.Context) domain.CheckResult {
	if _, err := c.config.ListenPort(); err != nil {
		return domain.Failed("cannot probe: " + err.Error())
	}

	url := c.config.ProbeURL()
	timeout := c.config.Probe.Timeout
	if timeout <= 0 {
		timeout = config.DefaultProbeTimeout
	}
	reproduce := fmt.Sprintf("curl -sS -o /dev/null -w '%%{http_code}' --max-time %d %s",
		int((timeout+time.Second-1)/time.Second), shellescape.Quote(url))

	result := c.probe(ctx, url, timeout)
	result.Details = append([]domain.Detail{{Text: "GET " + url}}, result.Details...)
	result.Reproduce = reproduce
	return result
}

// probe runs the request under its own timeout. Only that timeout and
// connection errors mean "no server"; a cancelled parent ctx is a failure.
func (c *ProbeCheck) probe(parent context.Context, url string, timeout time.Duration) domain.CheckResult {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Failed(fmt.Sprintf("invalid probe request: %v", err))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if perr := parent.Err(); perr != nil {
			return domain.Failed(fmt.Sprintf("probe interrupted: %v", perr))
		}
		if isTimeout(err) {
			return domain.Skipped("timeout")
		}
		return domain.Skipped(fmt.Sprintf("server not running: %v", err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	var result domain.CheckResult
	if resp.StatusCode == http.StatusOK {
		result = domain.Passed(fmt.Sprintf("status: %d", resp.StatusCode))
	} else {
		result = domain.Failed(fmt.Sprintf("status: %d", resp.StatusCode))
	}
	result.StatusCode = ldvalue.NewOptionalInt(resp.StatusCode)
	return result
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
