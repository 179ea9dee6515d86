package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	Status string
	Checks map[string]string
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) body {
	t.Helper()
	var b body
	d := jx.DecodeBytes(rec.Body.Bytes())
	require.NoError(t, d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "status":
			s, err := d.Str()
			b.Status = s
			return err
		case "checks":
			b.Checks = map[string]string{}
			return d.ObjBytes(func(d *jx.Decoder, name []byte) error {
				s, err := d.Str()
				b.Checks[string(name)] = s
				return err
			})
		default:
			return d.Skip()
		}
	}))
	return b
}

func ok(context.Context) error { return nil }

func fail(msg string) CheckFunc {
	return func(context.Context) error { return errors.New(msg) }
}

func runN(p *monitor, n int) {
	for i := 0; i < n; i++ {
		p.run(context.Background())
	}
}

func TestLiveEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		runs     int
		wantCode int
		wantFail string
	}{
		{name: "fresh check is healthy", runs: 0, wantCode: http.StatusOK},
		{name: "below threshold", runs: FailureThreshold - 1, wantCode: http.StatusOK},
		{name: "at threshold", runs: FailureThreshold, wantCode: http.StatusServiceUnavailable, wantFail: "connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			h.AddLivenessCheck("postgres", time.Second, fail("connection refused"))
			runN(h.monitors[0], tt.runs)

			rec := httptest.NewRecorder()
			h.LiveEndpoint(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			b := decode(t, rec)
			if tt.wantFail == "" {
				assert.Equal(t, "ok", b.Status)
				assert.Empty(t, b.Checks)
				return
			}
			assert.Equal(t, "unhealthy", b.Status)
			assert.Equal(t, tt.wantFail, b.Checks["postgres"])
		})
	}
}

func TestReadyEndpoint(t *testing.T) {
	h := New()
	h.AddReadinessCheck("postgres", time.Second, ok)
	h.AddReadinessCheck("broker", time.Second, fail("channel closed"))
	h.AddLivenessCheck("goroutines", time.Second, fail("too many"))

	get := func() (int, body) {
		rec := httptest.NewRecorder()
		h.ReadyEndpoint(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		return rec.Code, decode(t, rec)
	}

	code, b := get()
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, map[string]string{"_readiness": "service is not ready"}, b.Checks)

	h.SetReady(true)
	code, _ = get()
	assert.Equal(t, http.StatusOK, code, "liveness failures do not gate readiness")
	assert.True(t, h.IsReady())

	runN(h.monitors[1], FailureThreshold)
	code, b = get()
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, map[string]string{"broker": "channel closed"}, b.Checks)
	assert.False(t, h.IsReady())
}

func TestMonitorRecovers(t *testing.T) {
	down := true
	h := New()
	h.AddReadinessCheck("flaky", time.Second, func(context.Context) error {
		if down {
			return errors.New("down")
		}
		return nil
	})
	p := h.monitors[0]

	runN(p, FailureThreshold)
	assert.False(t, p.healthy.Load())
	assert.Equal(t, "down", p.failure())

	down = false
	runN(p, SuccessThreshold)
	assert.True(t, p.healthy.Load())
}

func TestMonitorTimeout(t *testing.T) {
	h := New()
	h.AddLivenessCheck("slow", 10*time.Millisecond, func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	runN(h.monitors[0], FailureThreshold)
	assert.Equal(t, context.DeadlineExceeded.Error(), h.monitors[0].failure())
}

func TestStartStop(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
	)
	h := New()
	h.AddReadinessCheck("postgres", time.Second, func(context.Context) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	})
	h.SetReady(true)
	h.Start(context.Background(), 5*time.Millisecond)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 2
	}, time.Second, 5*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				h.IsReady()
				h.LiveEndpoint(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/livez", nil))
			}
		}()
	}
	wg.Wait()

	h.Stop()
	h.Stop()
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestCheckers(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, PingCheck(pinger{})(ctx))
	assert.EqualError(t, PingCheck(pinger{err: errors.New("refused")})(ctx), "refused")

	assert.NoError(t, GoroutineCountCheck(1_000_000)(ctx))
	assert.ErrorContains(t, GoroutineCountCheck(0)(ctx), "goroutines running")

	assert.NoError(t, GCMaxPauseCheck(time.Hour)(ctx))
}
