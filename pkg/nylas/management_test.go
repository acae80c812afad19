package nylas_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Towerism/nylas-go/pkg/nylas"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestManagementAccountsService(t *testing.T) {
	t.Parallel()
	t.Run("lists under the application prefix", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, "/a/client-id/accounts", req.Path)

			return jsonResponse(http.StatusOK, []map[string]interface{}{
				{"id": "acct-1", "object": "account", "billing_state": "paid", "trial": false},
			})
		}}
		accounts := nylas.NewManagementAccountsService(stub, "client-id")

		list, err := accounts.List(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "paid", list[0].BillingState)
	})

	t.Run("downgrade and upgrade post to the account", func(t *testing.T) {
		t.Parallel()

		var paths []string

		stub := &apiStub{}
		stub.handler = func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			paths = append(paths, req.Path)

			return jsonResponse(http.StatusOK, map[string]bool{"success": true})
		}

		accounts := nylas.NewManagementAccountsService(stub, "client-id")

		require.NoError(t, accounts.Downgrade(context.Background(), "acct-1"))
		require.NoError(t, accounts.Upgrade(context.Background(), "acct-1"))
		assert.Equal(t, []string{
			"/a/client-id/accounts/acct-1/downgrade",
			"/a/client-id/accounts/acct-1/upgrade",
		}, paths)
	})

	t.Run("revoke-all keeps the named token", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, "/a/client-id/accounts/acct-1/revoke-all", req.Path)

			body, ok := req.Body.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "keep-me", body["keep_access_token"])

			return jsonResponse(http.StatusOK, map[string]bool{"success": true})
		}}
		accounts := nylas.NewManagementAccountsService(stub, "client-id")

		require.NoError(t, accounts.RevokeAllTokens(context.Background(), "acct-1", "keep-me"))
	})

	t.Run("revoke-all without a survivor sends an empty body", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			body, ok := req.Body.(map[string]interface{})
			require.True(t, ok)
			assert.Empty(t, body)

			return jsonResponse(http.StatusOK, map[string]bool{"success": true})
		}}
		accounts := nylas.NewManagementAccountsService(stub, "client-id")

		require.NoError(t, accounts.RevokeAllTokens(context.Background(), "acct-1", ""))
	})

	t.Run("token info posts the token in the body", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, "/a/client-id/accounts/acct-1/token-info", req.Path)

			body, ok := req.Body.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "token-123", body["access_token"])

			return jsonResponse(http.StatusOK, map[string]interface{}{
				"scopes":     "calendar,email",
				"state":      "valid",
				"created_at": 1609459200,
			})
		}}
		accounts := nylas.NewManagementAccountsService(stub, "client-id")

		info, err := accounts.TokenInfo(context.Background(), "acct-1", "token-123")
		require.NoError(t, err)
		assert.Equal(t, "calendar,email", info.Scopes)
		assert.Equal(t, "valid", info.State)
		assert.Equal(t, int64(1609459200), info.CreatedAt.Unix())
	})

	t.Run("ip addresses live beside the accounts tree", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: func(req *nylas.Request) (*nylas.Response, error) {
			assert.Equal(t, "/a/client-id/ip_addresses", req.Path)

			return jsonResponse(http.StatusOK, map[string]interface{}{
				"ip_addresses": []string{"10.0.0.1", "10.0.0.2"},
				"updated_at":   1609459200,
			})
		}}
		accounts := nylas.NewManagementAccountsService(stub, "client-id")

		ips, err := accounts.IPAddresses(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, ips.Addresses)
	})

	t.Run("account operations require an id", func(t *testing.T) {
		t.Parallel()

		stub := &apiStub{handler: pagedCalendars(0)}
		accounts := nylas.NewManagementAccountsService(stub, "client-id")

		require.ErrorIs(t, accounts.Downgrade(context.Background(), ""), nylas.ErrMissingID)
		require.ErrorIs(t, accounts.Upgrade(context.Background(), ""), nylas.ErrMissingID)
		require.ErrorIs(t, accounts.RevokeAllTokens(context.Background(), "", ""), nylas.ErrMissingID)

		_, err := accounts.TokenInfo(context.Background(), "", "tok")
		require.ErrorIs(t, err, nylas.ErrMissingID)
		assert.Empty(t, stub.calls)
	})
}
