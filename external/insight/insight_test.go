package insight_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/safeshift-health/safeshift-api/external/insight"
	"github.com/safeshift-health/safeshift-api/schema"
)

func TestExplain(t *testing.T) {
	text := "Your index is high mostly because of short sleep before a night shift."
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/explain", r.URL.Path, "wrong path")
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"), "wrong auth header")

		var ic insight.Context
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&ic))
		assert.Equal(t, 91, ic.Index, "wrong index forwarded")

		b, _ := json.Marshal(map[string]string{"text": text})
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	c := insight.New(ts.URL, "test-token", nil)
	assert.True(t, c.Available(), "configured client must be available")

	actual, err := c.Explain(context.Background(), insight.Context{
		Index: 91,
		Zone:  schema.ZoneRed,
	})
	assert.NoError(t, err, "wrong Explain")
	assert.Equal(t, text, actual, "wrong explanation text")
}

func TestTips(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tips", r.URL.Path, "wrong path")
		b, _ := json.Marshal(map[string]string{"text": "Rest first, hydrate, ask for support."})
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	c := insight.New(ts.URL, "test-token", nil)
	actual, err := c.Tips(context.Background(), insight.Context{Zone: schema.ZoneYellow})
	assert.NoError(t, err)
	assert.NotEmpty(t, actual, "tips text expected")
}

func TestUnavailableWithoutConfig(t *testing.T) {
	c := insight.New("", "", nil)
	assert.False(t, c.Available(), "unconfigured client must be unavailable")

	_, err := c.Explain(context.Background(), insight.Context{})
	assert.Error(t, err, "calling an unavailable client must fail")
}

func TestServerErrorPropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := insight.New(ts.URL, "test-token", nil)
	_, err := c.Explain(context.Background(), insight.Context{})
	assert.Error(t, err, "a non-ok status must surface as an error")
}
