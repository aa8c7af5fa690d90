package tests

import (
	"net/http"
	"testing"
	"time"

	"staffhub/internal/adapter/http/middleware"
	"staffhub/pkg/token"

	"github.com/stretchr/testify/require"
)

var testTokens = token.NewManager("test-secret", time.Hour)

func sessionCookie(t *testing.T, identity token.Identity) *http.Cookie {
	t.Helper()

	signed, err := testTokens.Sign(identity)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: signed}
}
