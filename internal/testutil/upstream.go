package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// StubUpstream returns a canned body or error and remembers the last call.
type StubUpstream struct {
	Body json.RawMessage
	Err  error

	mu        sync.Mutex
	calls     int
	lastPath  string
	lastQuery url.Values
}

func (s *StubUpstream) Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	_ = ctx
	s.mu.Lock()
	s.calls++
	s.lastPath = path
	s.lastQuery = query
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Body, nil
}

// Calls returns how many times Fetch ran.
func (s *StubUpstream) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// LastCall returns the path and query of the most recent Fetch.
func (s *StubUpstream) LastCall() (string, url.Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPath, s.lastQuery
}

// BlockingUpstream waits until the caller's context ends.
type BlockingUpstream struct{}

func (BlockingUpstream) Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	_ = path
	_ = query
	<-ctx.Done()
	return nil, ctx.Err()
}

// PanicUpstream panics on every call.
type PanicUpstream struct{}

func (PanicUpstream) Fetch(context.Context, string, url.Values) (json.RawMessage, error) {
	panic("upstream exploded")
}

// SampleFixturesPayload builds an upstream fixtures body with one fixture per id.
func SampleFixturesPayload(ids ...int64) json.RawMessage {
	items := make([]string, 0, len(ids))
	for _, id := range ids {
		items = append(items, fmt.Sprintf(
			`{"fixture":{"id":%d,"date":"2024-05-01T19:00:00+00:00","timestamp":1714590000,"venue":{"name":"Stadium %d"},"status":{"short":"NS"}},"league":{"id":39,"name":"Premier League"},"teams":{"home":{"id":%d,"name":"Home %d"},"away":{"id":%d,"name":"Away %d"}}}`,
			id, id, id*10, id, id*10+1, id,
		))
	}
	return json.RawMessage(`{"response":[` + strings.Join(items, ",") + `]}`)
}
