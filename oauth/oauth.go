// Package oauth validates OAuth2 requests against the user service.
//
// The result of the validation call is cached in the request context
// store, so repeated lookups within one request cost a single RPC per
// scope set. Cached failures are replayed as the same typed error.
package oauth

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	sdk "github.com/apphost/sdk-go"
	"github.com/apphost/sdk-go/requestctx"
)

// ServiceName is the backend service the client talks to.
const ServiceName = "user"

// Numeric application error codes returned by the user service.
const (
	codeNotAllowed     int32 = 2
	codeInvalidToken   int32 = 3
	codeInvalidRequest int32 = 4
	codeServiceError   int32 = 5
)

var (
	// ErrNotAllowed means the requested URL does not permit OAuth
	// authentication.
	ErrNotAllowed = errors.New("oauth: not allowed")
	// ErrInvalidParameters means the request was a malformed OAuth request,
	// for example one with an invalid signature or an unknown consumer.
	ErrInvalidParameters = errors.New("oauth: invalid parameters")
	// ErrInvalidToken means the request contained an invalid token, for
	// example one revoked by the user.
	ErrInvalidToken = errors.New("oauth: invalid token")
	// ErrServiceFailure means there was a problem communicating with the
	// OAuth service.
	ErrServiceFailure = errors.New("oauth: service failure")
)

// Request context keys holding the cached validation result.
const (
	keyEmail            = "OAUTH_EMAIL"
	keyAuthDomain       = "OAUTH_AUTH_DOMAIN"
	keyUserID           = "OAUTH_USER_ID"
	keyClientID         = "OAUTH_CLIENT_ID"
	keyAuthorizedScopes = "OAUTH_AUTHORIZED_SCOPES"
	keyIsAdmin          = "OAUTH_IS_ADMIN"
	keyErrorCode        = "OAUTH_ERROR_CODE"
	keyErrorDetail      = "OAUTH_ERROR_DETAIL"
	keyLastScope        = "OAUTH_LAST_SCOPE"
)

// GetOAuthUserRequest asks the user service to validate the OAuth
// credentials of the current request against the given scopes.
type GetOAuthUserRequest struct {
	Scopes []string
}

// GetOAuthUserResponse describes the validated user.
type GetOAuthUserResponse struct {
	Email      string
	AuthDomain string
	UserID     string
	ClientID   string
	Scopes     []string
	IsAdmin    bool
}

// User is the account on whose behalf an OAuth request was made.
type User struct {
	Email      string
	AuthDomain string
	UserID     string
}

// A Client answers OAuth queries about the current request.
type Client struct {
	caller sdk.Caller
	logger logrus.FieldLogger
}

// NewClient creates a client issuing validation calls through caller.
func NewClient(caller sdk.Caller) *Client {
	return &Client{caller: caller, logger: logrus.StandardLogger()}
}

// SetLogger replaces the logger used for validation failures.
func (c *Client) SetLogger(logger logrus.FieldLogger) {
	c.logger = logger
}

// CurrentUser returns the user on whose behalf the request was made. When
// scopes are given, at least one of them must be authorized.
func (c *Client) CurrentUser(ctx context.Context, scopes ...string) (*User, error) {
	store, err := c.maybeGetOAuthUser(ctx, scopes)
	if err != nil {
		return nil, err
	}
	return &User{
		Email:      store.Get(keyEmail),
		AuthDomain: store.Get(keyAuthDomain),
		UserID:     store.Get(keyUserID),
	}, nil
}

// IsCurrentUserAdmin reports whether the user on whose behalf the request
// was made is an administrator of the application.
func (c *Client) IsCurrentUserAdmin(ctx context.Context, scopes ...string) (bool, error) {
	store, err := c.maybeGetOAuthUser(ctx, scopes)
	if err != nil {
		return false, err
	}
	return store.GetDefault(keyIsAdmin, "0") == "1", nil
}

// ClientID returns the OAuth2 client id of the request.
func (c *Client) ClientID(ctx context.Context, scopes ...string) (string, error) {
	store, err := c.maybeGetOAuthUser(ctx, scopes)
	if err != nil {
		return "", err
	}
	return store.Get(keyClientID), nil
}

// AuthorizedScopes returns the scopes the request's token is authorized
// for.
func (c *Client) AuthorizedScopes(ctx context.Context, scopes ...string) ([]string, error) {
	store, err := c.maybeGetOAuthUser(ctx, scopes)
	if err != nil {
		return nil, err
	}
	var authorized []string
	if err := json.Unmarshal([]byte(store.Get(keyAuthorizedScopes)), &authorized); err != nil {
		return nil, errors.Wrap(err, "oauth: malformed cached scopes")
	}
	return authorized, nil
}

// ConsumerKey always fails: two-legged OAuth1 was turned down upstream.
func (c *Client) ConsumerKey(ctx context.Context) (string, error) {
	return "", errors.Wrap(ErrInvalidParameters, "two-legged OAuth1 not supported any more")
}

// scopeFingerprint canonicalizes a scope set so that equal sets hit the
// same cache entry.
func scopeFingerprint(scopes []string) string {
	if len(scopes) == 0 {
		return ""
	}
	if len(scopes) == 1 {
		return scopes[0]
	}
	sorted := make([]string, len(scopes))
	copy(sorted, scopes)
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}

// maybeGetOAuthUser performs the validation RPC unless the store already
// caches a result for the same scope set, then replays any cached error.
func (c *Client) maybeGetOAuthUser(ctx context.Context, scopes []string) (*requestctx.Store, error) {
	store := requestctx.FromContext(ctx)
	if store == nil {
		return nil, errors.New("oauth: no request context store")
	}

	fingerprint := scopeFingerprint(scopes)
	_, cached := store.Lookup(keyErrorCode)
	if !cached || store.Get(keyLastScope) != fingerprint {
		res := &GetOAuthUserResponse{}
		err := c.caller.Call(ctx, ServiceName, "GetOAuthUser", &GetOAuthUserRequest{Scopes: scopes}, res)
		var appErr *sdk.ApplicationError
		switch {
		case err == nil:
			authorized, _ := json.Marshal(res.Scopes)
			store.Put(keyEmail, res.Email)
			store.Put(keyAuthDomain, res.AuthDomain)
			store.Put(keyUserID, res.UserID)
			store.Put(keyClientID, res.ClientID)
			store.Put(keyAuthorizedScopes, string(authorized))
			if res.IsAdmin {
				store.Put(keyIsAdmin, "1")
			} else {
				store.Put(keyIsAdmin, "0")
			}
			store.Put(keyErrorCode, "")
		case errors.As(err, &appErr):
			c.logger.WithField("code", appErr.Code).Debug("oauth validation failed")
			store.Put(keyErrorCode, strconv.Itoa(int(appErr.Code)))
			store.Put(keyErrorDetail, appErr.Detail)
		default:
			// Transport failures are not cached.
			return nil, err
		}
		store.Put(keyLastScope, fingerprint)
	}
	if err := cachedError(store); err != nil {
		return nil, err
	}
	return store, nil
}

func cachedError(store *requestctx.Store) error {
	code := store.Get(keyErrorCode)
	if code == "" {
		return nil
	}
	detail := store.Get(keyErrorDetail)
	var base error
	switch code {
	case strconv.Itoa(int(codeNotAllowed)):
		base = ErrNotAllowed
	case strconv.Itoa(int(codeInvalidRequest)):
		base = ErrInvalidParameters
	case strconv.Itoa(int(codeInvalidToken)):
		base = ErrInvalidToken
	case strconv.Itoa(int(codeServiceError)):
		base = ErrServiceFailure
	default:
		base = ErrServiceFailure
	}
	if detail == "" {
		return base
	}
	return errors.Wrap(base, detail)
}
