package apifootball

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/api-football-proxy/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func stubResponse(status int, body string, header http.Header) *http.Response {
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     header,
	}
}

func TestFetchBuildsURLAndInjectsKey(t *testing.T) {
	var captured *http.Request
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return stubResponse(http.StatusOK, `{"response":[{"id":1}]}`, nil), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
	})

	body, err := client.Fetch(context.Background(), "/fixtures", url.Values{"league": {"39"}, "season": {"2024"}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(body) != `{"response":[{"id":1}]}` {
		t.Fatalf("unexpected body %s", body)
	}
	if captured.URL.Path != "/fixtures" {
		t.Fatalf("expected /fixtures path, got %s", captured.URL.Path)
	}
	if got := captured.URL.Query(); got.Get("league") != "39" || got.Get("season") != "2024" {
		t.Fatalf("unexpected query %v", got)
	}
	if got := captured.Header.Get("x-apisports-key"); got != "secret" {
		t.Fatalf("expected api key header, got %q", got)
	}
	if _, ok := captured.Context().Deadline(); !ok {
		t.Fatalf("expected request context to carry a deadline")
	}
}

func TestFetchOmitsQueryAndKeyWhenEmpty(t *testing.T) {
	var captured *http.Request
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return stubResponse(http.StatusOK, `{}`, nil), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	if _, err := client.Fetch(context.Background(), "/standings", nil); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if captured.URL.RawQuery != "" {
		t.Fatalf("expected no query string, got %q", captured.URL.RawQuery)
	}
	if _, ok := captured.Header["X-Apisports-Key"]; ok {
		t.Fatalf("did not expect api key header without a key")
	}
}

func TestFetchReturnsUpstreamErrorOnNon2xx(t *testing.T) {
	header := make(http.Header)
	header.Set("Retry-After", "12")
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return stubResponse(http.StatusTooManyRequests, "slow down", header), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	_, err := client.Fetch(context.Background(), "/fixtures", nil)

	upErr, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upErr.StatusCode != http.StatusTooManyRequests || upErr.Body != "slow down" {
		t.Fatalf("unexpected upstream error %+v", upErr)
	}
	if upErr.RetryAfter != 12*time.Second {
		t.Fatalf("expected retry-after 12s, got %s", upErr.RetryAfter)
	}
	if upErr.Upstream != Name {
		t.Fatalf("expected upstream name %q, got %q", Name, upErr.Upstream)
	}
}

func TestFetchCapsErrorBody(t *testing.T) {
	long := strings.Repeat("x", maxErrorBodyBytes*2)
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return stubResponse(http.StatusInternalServerError, long, nil), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	_, err := client.Fetch(context.Background(), "/fixtures", nil)
	upErr, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if len(upErr.Body) != maxErrorBodyBytes {
		t.Fatalf("expected body capped at %d bytes, got %d", maxErrorBodyBytes, len(upErr.Body))
	}
}

func TestFetchRejectsInvalidJSON(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return stubResponse(http.StatusOK, "{bad json", nil), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	if _, err := client.Fetch(context.Background(), "/fixtures", nil); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchReturnsJSONNullVerbatim(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return stubResponse(http.StatusOK, "null", nil), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	body, err := client.Fetch(context.Background(), "/standings", nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if string(body) != "null" {
		t.Fatalf("expected null body, got %q", body)
	}
}

func TestFetchRejectsMalformedBodies(t *testing.T) {
	cases := map[string]string{
		"trailing garbage": `{"a":1} x`,
		"second value":     `{"a":1}{"b":2}`,
		"stray close":      `{"a":1}}`,
		"empty":            "",
		"whitespace only":  "  \n",
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				return stubResponse(http.StatusOK, payload, nil), nil
			})

			client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
			body, err := client.Fetch(context.Background(), "/fixtures", nil)
			if err == nil {
				t.Fatalf("expected decode error, got body %q", body)
			}
			if _, ok := providers.AsUpstreamError(err); ok {
				t.Fatalf("decode failures should not look like upstream status errors")
			}
		})
	}
}

func TestFetchKeepsTrailingWhitespace(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return stubResponse(http.StatusOK, "{\"response\":[]}\n", nil), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	body, err := client.Fetch(context.Background(), "/fixtures", nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if string(body) != "{\"response\":[]}\n" {
		t.Fatalf("expected body unchanged, got %q", body)
	}
}

func TestFetchPropagatesTransportError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("dial failed")
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	_, err := client.Fetch(context.Background(), "/fixtures", nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	if _, ok := providers.AsUpstreamError(err); ok {
		t.Fatalf("transport failures should not look like upstream status errors")
	}
}

func TestFetchAbortsSlowUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})

	start := time.Now()
	_, err := client.Fetch(context.Background(), "/fixtures", nil)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("expected fetch to abort near the timeout, took %s", elapsed)
	}
}

func TestFetchHonorsCallerCancellation(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Fetch(ctx, "/fixtures", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
