// ABOUTME: Authenticator implementations for the session store
// ABOUTME: Remote delegates to the backend login endpoint; dev mints local JWTs

package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Authenticate when the username or
// password is wrong. The store maps it to a false login, not an error.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Result carries a successful authentication outcome.
type Result struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Authenticator validates credentials and produces a session token.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*Result, error)
}

// devTokenLifetime is how long a locally minted dev token stays valid.
const devTokenLifetime = 24 * time.Hour

// Fixture identity for local development. Not a security mechanism.
const (
	devUsername = "admin"
	devPassword = "admin123"
)

// DevAuthenticator accepts the single fixture credential pair and mints an
// HS256 JWT locally. Only for development against the stub backend; real
// deployments use RemoteAuthenticator.
type DevAuthenticator struct {
	secret       []byte
	passwordHash []byte
}

// NewDevAuthenticator creates a dev authenticator signing tokens with the
// given secret.
func NewDevAuthenticator(secret []byte) (*DevAuthenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(devPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hashing fixture password: %w", err)
	}
	return &DevAuthenticator{secret: secret, passwordHash: hash}, nil
}

// Authenticate checks the fixture credential and mints a token on match.
func (a *DevAuthenticator) Authenticate(_ context.Context, username, password string) (*Result, error) {
	if username != devUsername {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user := User{
		ID:       1,
		Username: devUsername,
		Role:     "admin",
		Email:    "admin@example.com",
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": fmt.Sprintf("%d", user.ID),
		"jti": uuid.New().String(),
		"iat": now.Unix(),
		"exp": now.Add(devTokenLifetime).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &Result{Token: token, User: user}, nil
}

// RemoteAuthenticator delegates the credential check to the backend's login
// endpoint and passes its token through unchanged.
type RemoteAuthenticator struct {
	baseURL string
	client  *http.Client
}

// NewRemoteAuthenticator creates a remote authenticator against the given
// backend base URL. Pass nil client to use http.DefaultClient.
func NewRemoteAuthenticator(baseURL string, client *http.Client) *RemoteAuthenticator {
	if client == nil {
		client = http.DefaultClient
	}
	return &RemoteAuthenticator{baseURL: baseURL, client: client}
}

// Authenticate POSTs the credentials to /api/auth/login. A 401 or 403
// response means bad credentials; anything else non-2xx is a fault.
func (a *RemoteAuthenticator) Authenticate(ctx context.Context, username, password string) (*Result, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding login request: %w", err)
	}

	url := a.baseURL + "/api/auth/login"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidCredentials
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("login failed: server returned status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing login response: %w", err)
	}
	if result.Token == "" {
		return nil, fmt.Errorf("login response missing token")
	}
	return &result, nil
}

// tokenExpired reports whether a stored JWT is past its expiry. Opaque
// (non-JWT) tokens and tokens without an exp claim are never considered
// expired locally; the backend decides their fate.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
