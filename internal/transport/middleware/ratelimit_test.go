package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func hit(h http.Handler, addr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", nil)
	req.RemoteAddr = addr
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BurstThenBlock(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(5, 0, time.Minute)
	defer rl.Stop()
	h := rl.Middleware(okHandler())

	for i := range 5 {
		assert.Equal(t, http.StatusOK, hit(h, "1.2.3.4:1000").Code, "request %d", i)
	}

	rec := hit(h, "1.2.3.4:1000")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "12", rec.Header().Get("Retry-After"))
}

func TestRateLimiter_KeyedByHost(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 1, time.Minute)
	defer rl.Stop()
	h := rl.Middleware(okHandler())

	assert.Equal(t, http.StatusOK, hit(h, "1.1.1.1:1111").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "1.1.1.1:2222").Code, "same host, other port")
	assert.Equal(t, http.StatusOK, hit(h, "2.2.2.2:1111").Code)
	assert.Equal(t, 2, rl.size())
}

func TestRateLimiter_Refill(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(600, 1, time.Minute) // one token per 100ms
	defer rl.Stop()
	h := rl.Middleware(okHandler())

	assert.Equal(t, http.StatusOK, hit(h, "3.3.3.3:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "3.3.3.3:1").Code)

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hit(h, "3.3.3.3:1").Code)
}

func TestRateLimiter_SweepIdle(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(10, 0, time.Hour)
	defer rl.Stop()
	hit(rl.Middleware(okHandler()), "4.4.4.4:1")

	rl.sweep(time.Now())
	assert.Equal(t, 1, rl.size())

	rl.sweep(time.Now().Add(idleTTL + time.Second))
	assert.Equal(t, 0, rl.size())
}

func TestRateLimiter_StopTwice(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(10, 0, time.Minute)
	rl.Stop()
	rl.Stop()
}
