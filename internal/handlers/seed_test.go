package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"real-estate-listings/internal/database"
)

type fakeSeeder struct {
	result *database.SeedResult
	err    error

	called    bool
	lastForce bool
}

func (f *fakeSeeder) Seed(_ context.Context, force bool) (*database.SeedResult, error) {
	f.called = true
	f.lastForce = force
	return f.result, f.err
}

func newSeedRouter(seeder *fakeSeeder, production bool) *gin.Engine {
	h := NewSeedHandler(seeder, testLogger(), production)
	r := gin.New()
	r.POST("/api/seed", h.Seed)
	return r
}

func TestSeedRefusedInProduction(t *testing.T) {
	seeder := &fakeSeeder{}
	r := newSeedRouter(seeder, true)

	w := doRequest(t, r, http.MethodPost, "/api/seed")
	require.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Forbidden", body["error"])
	assert.False(t, seeder.called)
}

func TestSeedSuccess(t *testing.T) {
	seeder := &fakeSeeder{result: &database.SeedResult{Owners: 5, Properties: 25, Images: 40, Traces: 50}}
	r := newSeedRouter(seeder, false)

	w := doRequest(t, r, http.MethodPost, "/api/seed")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, seeder.lastForce)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Database seeded successfully", body["message"])
	result, ok := body["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(25), result["properties"])
}

func TestSeedSkippedWhenDataExists(t *testing.T) {
	seeder := &fakeSeeder{result: &database.SeedResult{Skipped: true}}
	r := newSeedRouter(seeder, false)

	w := doRequest(t, r, http.MethodPost, "/api/seed")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["message"], "seeding skipped")
}

func TestSeedForceFlag(t *testing.T) {
	seeder := &fakeSeeder{result: &database.SeedResult{}}
	r := newSeedRouter(seeder, false)

	w := doRequest(t, r, http.MethodPost, "/api/seed?force=true")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, seeder.lastForce)
}

func TestSeedFailure(t *testing.T) {
	seeder := &fakeSeeder{err: errors.New("insert failed")}
	r := newSeedRouter(seeder, false)

	w := doRequest(t, r, http.MethodPost, "/api/seed")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Seeding failed", body["error"])
}
