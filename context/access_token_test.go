package context

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gotid/wechat-mp/cache"
	"github.com/gotid/wechat-mp/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ cache.Cache }

func (failingStore) Set(string, []byte) error {
	return errors.New("只读文件系统")
}

func newTokenServer(t *testing.T, body string, calls *int32) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		q := r.URL.Query()
		assert.Equal(t, "client_credential", q.Get("grant_type"))
		assert.Equal(t, "wx1", q.Get("appid"))
		assert.Equal(t, "secret", q.Get("secret"))
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAccessToken(t *testing.T) {
	var calls int32
	srv := newTokenServer(t, `{"access_token":"abc","expires_in":7200}`, &calls)
	ctx := &Context{AppID: "wx1", AppSecret: "secret", TokenURL: srv.URL}

	token, err := ctx.FetchAccessToken()
	require.NoError(t, err)
	assert.Equal(t, "abc", token.AccessToken)
	assert.Equal(t, int64(7200), token.ExpiresIn)
	assert.Equal(t, int32(1), calls)
}

func TestFetchAccessTokenDefaultExpiry(t *testing.T) {
	var calls int32
	srv := newTokenServer(t, `{"access_token":"abc"}`, &calls)
	ctx := &Context{AppID: "wx1", AppSecret: "secret", TokenURL: srv.URL}

	token, err := ctx.FetchAccessToken()
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultExpiresIn), token.ExpiresIn)
}

func TestFetchAccessTokenErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int64
	}{
		{name: "rejected", body: `{"errcode":40013,"errmsg":"invalid appid"}`, code: 40013},
		{name: "empty", body: `{}`},
		{name: "malformed", body: `<html>bad gateway</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := newTokenServer(t, tt.body, &calls)
			ctx := &Context{AppID: "wx1", AppSecret: "secret", TokenURL: srv.URL}

			_, err := ctx.FetchAccessToken()
			var aerr *util.AuthError
			require.True(t, errors.As(err, &aerr))
			assert.Equal(t, tt.code, aerr.Code)
			assert.Equal(t, tt.body, aerr.Raw)
		})
	}
}

func TestFetchAccessTokenMissingCredentials(t *testing.T) {
	ctx := &Context{AppID: "wx1"}

	_, err := ctx.FetchAccessToken()
	var aerr *util.AuthError
	require.True(t, errors.As(err, &aerr))
	assert.ErrorIs(t, err, util.ErrMissingParam)
}

func TestFetchAccessTokenTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	ctx := &Context{AppID: "wx1", AppSecret: "secret", TokenURL: srv.URL}

	_, err := ctx.FetchAccessToken()
	var terr *util.TransportError
	assert.True(t, errors.As(err, &terr))
}

func TestAccessTokenUsesCache(t *testing.T) {
	var calls int32
	srv := newTokenServer(t, `{"access_token":"abc","expires_in":7200}`, &calls)
	tc := cache.NewTokenCache(cache.NewMemory(), cache.KeyAccessToken("wx1"))
	ctx := &Context{AppID: "wx1", AppSecret: "secret", TokenURL: srv.URL, Cache: tc}

	_, ok := tc.Get()
	require.False(t, ok)

	for i := 0; i < 3; i++ {
		token, err := ctx.AccessToken()
		require.NoError(t, err)
		assert.Equal(t, "abc", token)
	}
	assert.Equal(t, int32(1), calls)

	token, ok := tc.Get()
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
}

func TestAccessTokenRefetchesStaleRecord(t *testing.T) {
	var calls int32
	srv := newTokenServer(t, `{"access_token":"fresh","expires_in":7200}`, &calls)
	store := cache.NewMemory()
	now := time.Now()
	raw := fmt.Sprintf(`{"access_token":"stale","expires_in":7200,"timestamp":%d}`, now.Unix()-7000)
	require.NoError(t, store.Set(cache.KeyAccessToken("wx1"), []byte(raw)))

	ctx := &Context{
		AppID:     "wx1",
		AppSecret: "secret",
		TokenURL:  srv.URL,
		Cache:     cache.NewTokenCache(store, cache.KeyAccessToken("wx1")),
	}

	token, err := ctx.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	assert.Equal(t, int32(1), calls)
}

func TestAccessTokenCacheWriteFailure(t *testing.T) {
	var calls int32
	srv := newTokenServer(t, `{"access_token":"abc","expires_in":7200}`, &calls)
	ctx := &Context{
		AppID:     "wx1",
		AppSecret: "secret",
		TokenURL:  srv.URL,
		Cache:     cache.NewTokenCache(failingStore{cache.NewMemory()}, cache.KeyAccessToken("wx1")),
	}

	token, err := ctx.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestAccessTokenWithoutCache(t *testing.T) {
	var calls int32
	srv := newTokenServer(t, `{"access_token":"abc","expires_in":7200}`, &calls)
	ctx := &Context{AppID: "wx1", AppSecret: "secret", TokenURL: srv.URL}

	_, err := ctx.AccessToken()
	require.NoError(t, err)
	_, err = ctx.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls)
}
