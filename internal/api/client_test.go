package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"damafashion/cli/internal/credstore"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *credstore.Memory) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tokens := credstore.NewMemory()
	return New(srv.URL, 5*time.Second, tokens, zerolog.Nop()), tokens
}

func TestAttachesBearerWhenTokenPresent(t *testing.T) {
	var got string
	c, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	tokens.Set("tok-123")

	if err := c.Get(context.Background(), "/products", &struct{}{}); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "Bearer tok-123" {
		t.Fatalf("Authorization = %q, want Bearer tok-123", got)
	}
}

func TestSendsUnauthenticatedWhenTokenAbsent(t *testing.T) {
	var got string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))

	if err := c.Get(context.Background(), "/products", &struct{}{}); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "" {
		t.Fatalf("Authorization = %q, want empty", got)
	}
}

func TestUnauthorizedClearsStoreAndFiresHook(t *testing.T) {
	// The 401 path must behave the same regardless of endpoint or method.
	calls := []func(c *Client) error{
		func(c *Client) error { return c.Get(context.Background(), "/users/me", nil) },
		func(c *Client) error { return c.Post(context.Background(), "/products", map[string]string{}, nil) },
		func(c *Client) error { return c.Delete(context.Background(), "/suppliers/9") },
	}

	for i, call := range calls {
		c, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		tokens.Set("expired")
		hookFired := false
		c.SetUnauthorizedHook(func() { hookFired = true })

		err := call(c)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("call %d: err = %v, want ErrUnauthorized", i, err)
		}
		if _, ok := tokens.Get(); ok {
			t.Fatalf("call %d: token survived a 401", i)
		}
		if !hookFired {
			t.Fatalf("call %d: unauthorized hook not fired", i)
		}
	}
}

func TestNon401ErrorsPropagateUnchanged(t *testing.T) {
	c, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"duplicate name"}`))
	}))
	tokens.Set("tok")
	c.SetUnauthorizedHook(func() { t.Fatal("hook fired for non-401") })

	err := c.Post(context.Background(), "/categories", map[string]string{"name": "x"}, nil)
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *api.Error", err)
	}
	if apiErr.Status != http.StatusConflict || apiErr.Message != "duplicate name" {
		t.Fatalf("got %+v", apiErr)
	}
	if errors.Is(err, ErrUnauthorized) {
		t.Fatal("409 must not map to ErrUnauthorized")
	}
	if _, ok := tokens.Get(); !ok {
		t.Fatal("token cleared on non-401 failure")
	}
}

func TestTokenReadAtDispatchTime(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]bool{}
	c, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen[r.Header.Get("Authorization")] = true
		mu.Unlock()
		w.Write([]byte(`{}`))
	}))

	tokens.Set("first")
	if err := c.Get(context.Background(), "/stocks", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	tokens.Set("second")
	if err := c.Get(context.Background(), "/stocks", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if !seen["Bearer first"] || !seen["Bearer second"] {
		t.Fatalf("header not re-read per dispatch: %v", seen)
	}
}

func TestConcurrentCallsReadTokenIndependently(t *testing.T) {
	c, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{}`))
	}))
	tokens.Set("tok")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- c.Get(context.Background(), "/products", nil)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent Get: %v", err)
		}
	}
}

func TestDecodesResponseBody(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"name":"Vestido"}`))
	}))

	var out struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := c.Get(context.Background(), "/products/1", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.ID != 1 || out.Name != "Vestido" {
		t.Fatalf("decoded %+v", out)
	}
}
