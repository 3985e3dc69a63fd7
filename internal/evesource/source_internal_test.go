package evesource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_SizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"proto":"TCP"}]`))
	}))
	defer srv.Close()

	tests := []struct {
		name     string
		maxBytes int64
		wantErr  bool
	}{
		{name: "Exactly At Limit", maxBytes: 17},
		{name: "One Byte Over", maxBytes: 16, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &httpSource{url: srv.URL, client: srv.Client(), maxBytes: tt.maxBytes}
			data, err := src.Fetch(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPayloadTooLarge)
				assert.Nil(t, data)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, `[{"proto":"TCP"}]`, string(data))
		})
	}
}
