package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() Config {
	return Config{
		TokenSecret:            "s3cret",
		AccessTokenTTL:         time.Minute,
		RefreshTokenTTL:        time.Hour,
		BcryptCost:             bcrypt.MinCost,
		KafkaHost:              "localhost:9092",
		KafkaOrderChangedTopic: "orders.changed",
		OutboxBatchSize:        10,
	}
}

func TestNewCompositionRoot_RejectsBadConfig(t *testing.T) {
	config := testConfig()
	config.TokenSecret = ""
	_, err := NewCompositionRoot(config, nil, nil)
	assert.Error(t, err)

	config = testConfig()
	config.BcryptCost = bcrypt.MaxCost + 1
	_, err = NewCompositionRoot(config, nil, nil)
	assert.Error(t, err)
}

func TestCompositionRoot_Router(t *testing.T) {
	app, err := NewCompositionRoot(testConfig(), nil, nil)
	require.NoError(t, err)

	e, err := app.CreateRouter()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCompositionRoot_OutboxRelay(t *testing.T) {
	app, err := NewCompositionRoot(testConfig(), nil, nil)
	require.NoError(t, err)

	relay, publisher := app.CreateOutboxRelay()

	assert.Equal(t, "outbox_relay", relay.Name())
	assert.NoError(t, publisher.Close())
}
