package config

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVaultServer(t *testing.T, reads *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/secret/data/catalog", func(w http.ResponseWriter, r *http.Request) {
		reads.Add(1)
		if r.Header.Get("X-Vault-Token") != "root" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, `{"errors":["permission denied"]}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":{"data":{"DB_PASS":"s3cret","DB_MAX_CONNS":20},"metadata":{"version":1}}}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewVaultProvider(t *testing.T) {
	tests := map[string]struct {
		server, token, mount, path string
		expectedErr                string
	}{
		"valid":          {server: "http://localhost:8200", token: "t", mount: "secret", path: "catalog"},
		"missing-server": {token: "t", mount: "secret", path: "catalog", expectedErr: "server is required"},
		"missing-token":  {server: "http://localhost:8200", mount: "secret", path: "catalog", expectedErr: "token is required"},
		"missing-mount":  {server: "http://localhost:8200", token: "t", path: "catalog", expectedErr: "mountPath is required"},
		"missing-path":   {server: "http://localhost:8200", token: "t", mount: "secret", expectedErr: "secretPath is required"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewVaultProvider(tt.server, tt.token, tt.mount, tt.path)
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVaultProvider_Get(t *testing.T) {
	srv := newVaultServer(t, &atomic.Int32{})

	tests := map[string]struct {
		token         string
		key           string
		expectedValue string
		expectedErr   string
	}{
		"string-value": {
			token:         "root",
			key:           "DB_PASS",
			expectedValue: "s3cret",
		},
		"missing-key": {
			token:       "root",
			key:         "DB_USER",
			expectedErr: "vault secret catalog does not contain key DB_USER",
		},
		"non-string-value": {
			token:       "root",
			key:         "DB_MAX_CONNS",
			expectedErr: "vault secret DB_MAX_CONNS is not a string",
		},
		"forbidden": {
			token: "wrong",
			key:   "DB_PASS",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			vp, err := NewVaultProvider(srv.URL, tt.token, "secret", "catalog")
			require.NoError(t, err)

			got, err := vp.Get(context.Background(), tt.key)
			switch {
			case tt.expectedErr != "":
				assert.EqualError(t, err, tt.expectedErr)
			case tt.expectedValue == "":
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedValue, got)
			}
		})
	}
}

func TestVaultProvider_Get_ReadsSecretOnce(t *testing.T) {
	reads := &atomic.Int32{}
	srv := newVaultServer(t, reads)

	vp, err := NewVaultProvider(srv.URL, "root", "secret", "catalog")
	require.NoError(t, err)

	for range 3 {
		got, err := vp.Get(context.Background(), "DB_PASS")
		require.NoError(t, err)
		assert.Equal(t, "s3cret", got)
	}
	_, err = vp.Get(context.Background(), "DB_USER")
	assert.Error(t, err)

	assert.Equal(t, int32(1), reads.Load())
}

func TestVaultProvider_Get_RetriesFailedRead(t *testing.T) {
	reads := &atomic.Int32{}
	srv := newVaultServer(t, reads)

	vp, err := NewVaultProvider(srv.URL, "wrong", "secret", "catalog")
	require.NoError(t, err)

	_, err = vp.Get(context.Background(), "DB_PASS")
	assert.Error(t, err)
	_, err = vp.Get(context.Background(), "DB_PASS")
	assert.Error(t, err)

	assert.GreaterOrEqual(t, reads.Load(), int32(2))
}

func TestInitVaultProvider_Initialize(t *testing.T) {
	logger := log.New(io.Discard, "", 0)

	tests := map[string]struct {
		init        InitVaultProvider
		expectedErr bool
	}{
		"disabled": {
			init: InitVaultProvider{Logger: logger, Server: "-"},
		},
		"invalid-settings": {
			init:        InitVaultProvider{Logger: logger, Server: "http://localhost:8200"},
			expectedErr: true,
		},
		"enabled": {
			init: InitVaultProvider{
				Logger:     logger,
				Server:     "http://localhost:8200",
				Token:      "root",
				MountPath:  "secret",
				SecretPath: "catalog",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, err := tt.init.Initialize(context.Background())
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, ctx)
		})
	}
}
