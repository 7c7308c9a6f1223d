package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/safeshift-health/safeshift-api/schema"
)

const (
	explainPath = "/v1/explain"
	tipsPath    = "/v1/tips"

	defaultCallTimeout = 3 * time.Second
)

var (
	errResponseStatus = fmt.Errorf("insight service returned a non-ok status")
	errUnavailable    = fmt.Errorf("insight service is not configured")
)

// Context is the structured input handed to the insight service. The
// service turns it into human-readable text; no free text is generated
// on this side.
type Context struct {
	Index       int                    `json:"index"`
	Zone        schema.Zone            `json:"zone"`
	Attributes  schema.ShiftAttributes `json:"attributes"`
	AlertType   schema.AlertType       `json:"alert_type,omitempty"`
	Severity    schema.Severity        `json:"severity,omitempty"`
	Description string                 `json:"description,omitempty"`
}

// Insight is the optional text-generation collaborator. Callers must
// check Available before calling; the pipeline works correctly without
// it.
type Insight interface {
	Available() bool
	Explain(ctx context.Context, ic Context) (string, error)
	Tips(ctx context.Context, ic Context) (string, error)
}

type client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

type textResponse struct {
	Text string `json:"text"`
}

func (c *client) Available() bool {
	return c.endpoint != "" && c.token != ""
}

func (c *client) Explain(ctx context.Context, ic Context) (string, error) {
	return c.call(ctx, explainPath, ic)
}

func (c *client) Tips(ctx context.Context, ic Context) (string, error) {
	return c.call(ctx, tipsPath, ic)
}

// call posts the structured context and returns the generated text. The
// request is bounded by the caller's context plus a default timeout so a
// slow insight service can never stall the shift write path.
func (c *client) call(ctx context.Context, path string, ic Context) (string, error) {
	if !c.Available() {
		return "", errUnavailable
	}

	body, err := json.Marshal(ic)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultCallTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errResponseStatus
	}

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var r textResponse
	if err := json.Unmarshal(d, &r); err != nil {
		return "", err
	}
	return r.Text, nil
}

// New returns an insight client. An empty endpoint or token yields a
// client that reports itself unavailable.
func New(endpoint, token string, httpClient *http.Client) Insight {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultCallTimeout}
	}

	return &client{
		endpoint:   endpoint,
		token:      token,
		httpClient: httpClient,
	}
}
