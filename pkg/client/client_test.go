package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piksel-lt/orderdesk/pkg/client"
)

func TestList_SendsQueryAndDecodesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "50", q.Get("perPage"))
		assert.Equal(t, "-final_price", q.Get("sort"))
		assert.Equal(t, `client~"maxima"`, q.Get("filter"))

		json.NewEncoder(w).Encode(client.OrderPage{
			Items:      []client.Order{{ID: "o1", Client: "Maxima", From: "2025-09-01"}},
			Page:       2,
			PerPage:    50,
			TotalItems: 51,
			TotalPages: 2,
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	page, err := c.List(context.Background(), client.ListParams{
		Page: 2, PerPage: 50, Sort: "-final_price", Filter: `client~"maxima"`,
	})

	require.NoError(t, err)
	assert.Equal(t, 51, page.TotalItems)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Maxima", page.Items[0].Client)
}

func TestGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"Not found"}`)
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Not found", apiErr.Message)
}

func TestUpdate_SendsPatchBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["approved"])
		_, hasClient := body["client"]
		assert.False(t, hasClient, "nil fields must be omitted")

		json.NewEncoder(w).Encode(client.Order{ID: "o1", Approved: true})
	}))
	defer srv.Close()

	approved := true
	c := client.New(srv.URL)
	order, err := c.Update(context.Background(), "o1", client.OrderPatch{Approved: &approved})

	require.NoError(t, err)
	assert.True(t, order.Approved)
}

func TestRetry_ServerErrorsThenSuccess(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(client.Order{ID: "o1"})
	}))
	defer srv.Close()

	c := client.New(srv.URL, client.WithRetry(3, time.Millisecond))
	order, err := c.Get(context.Background(), "o1")

	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := client.New(srv.URL, client.WithRetry(3, time.Millisecond))
	_, err := c.Get(context.Background(), "o1")

	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetry_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"syntax error in filter"}`)
	}))
	defer srv.Close()

	c := client.New(srv.URL, client.WithRetry(3, time.Millisecond))
	_, err := c.List(context.Background(), client.ListParams{Filter: "nope"})

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestTimeout_NotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := client.New(srv.URL,
		client.WithTimeout(20*time.Millisecond),
		client.WithRetry(3, time.Millisecond))
	_, err := c.Get(context.Background(), "o1")

	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrTimeout)
	assert.Equal(t, int32(1), calls.Load())
}

func TestExecutor_BoundsConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inFlight.Add(-1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := client.New(srv.URL, client.WithMaxConcurrent(2))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, c.Health(context.Background()))
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestUploadFile_Multipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders/o1/files", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "screen.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		assert.Equal(t, "fake png bytes", string(content))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(client.Attachment{ID: "f1", OrderID: "o1", Filename: "screen.png"})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	attachment, err := c.UploadFile(context.Background(), "o1", "screen.png", "image/png",
		strings.NewReader("fake png bytes"))

	require.NoError(t, err)
	assert.Equal(t, "f1", attachment.ID)
}

func TestDueReminders_PassThroughError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"database unavailable"}`)
	}))
	defer srv.Close()

	c := client.New(srv.URL, client.WithRetry(3, time.Millisecond))
	_, err := c.DueReminders(context.Background())

	require.Error(t, err)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, int32(1), calls.Load(), "aux calls carry no retry policy")
}
