package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/onepick/pkg/config"
	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/preference"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	dir := t.TempDir()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := fmt.Sprintf(`
server:
  listen: "127.0.0.1:%d"
  token: "test-token"
database:
  dsn: "file:%s?mode=rwc&_txlock=immediate"
  max_open_conns: 1
timezone: "Europe/Kyiv"
`, port, filepath.Join(dir, "onepick.db"))
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, Opts{Config: path}) }()

	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 5*time.Second, 50*time.Millisecond)

	// operator endpoints need the token
	resp, err := http.Get(base + "/api/v1/jobs")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, base+"/api/v1/jobs", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer test-token")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	var jobs []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&jobs))
	resp.Body.Close()
	names := make([]string, 0, len(jobs))
	for _, j := range jobs {
		names = append(names, j.Name)
	}
	assert.ElementsMatch(t, []string{"click_aggregation", "score_recompute", "ab_evaluation", "daily_metrics",
		"alert_checks", "session_sweep"}, names, "catalog sync and publishing disabled without tokens")

	// empty catalog has nothing to recommend
	req, err = http.NewRequest(http.MethodPost, base+"/api/v1/recommend",
		strings.NewReader(`{"user_id":"u1","mood":"light","pace":"fast","format":"movie"}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer test-token")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown timeout")
	}
}

func TestMakeSchedules(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)

	sc := config.Default().Schedule
	s, err := makeSchedules(sc, loc)
	require.NoError(t, err)

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, loc)
	assert.True(t, time.Date(2026, 3, 10, 9, 30, 0, 0, loc).Equal(s.PublishPost.Next(now)))
	assert.True(t, time.Date(2026, 3, 11, 3, 0, 0, 0, loc).Equal(s.ABEvaluation.Next(now)))
	assert.True(t, now.Add(5*time.Minute).Equal(s.SessionSweep.Next(now)))

	sc.PublishSlots = []string{"25:00"}
	_, err = makeSchedules(sc, loc)
	assert.ErrorContains(t, err, "publish slots")

	sc = config.Default().Schedule
	sc.DailyMetrics = "noon"
	_, err = makeSchedules(sc, loc)
	assert.ErrorContains(t, err, "daily metrics slot")
}

func TestPreferenceConfig(t *testing.T) {
	res := preferenceConfig(config.PreferenceConfig{MinWeight: -2, MaxWeight: 2})
	assert.Nil(t, res.Steps, "defaults applied by the preference service")
	assert.InDelta(t, -2.0, res.MinWeight, 1e-9)

	res = preferenceConfig(config.PreferenceConfig{Steps: map[string]float64{"hit": 0.5}, MinWeight: -1, MaxWeight: 1})
	assert.InDelta(t, 0.5, res.Steps[domain.FeedbackHit], 1e-9)
	assert.InDelta(t, preference.DefaultSteps[domain.FeedbackMiss], res.Steps[domain.FeedbackMiss], 1e-9)
	assert.InDelta(t, 0.2, preference.DefaultSteps[domain.FeedbackHit], 1e-9, "defaults untouched")
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		setupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		setupLog(false)
	})

	t.Run("with secrets, empty ones skipped", func(t *testing.T) {
		setupLog(true, "secret1", "", "secret2")
	})
}
