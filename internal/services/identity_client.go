package services

import (
  "bytes"
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "io"
  "net/http"
  "strings"
  "time"

  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "github.com/studyloop/studyloop-backend/internal/logger"
  pkgerrors "github.com/studyloop/studyloop-backend/internal/pkg/errors"
  "github.com/studyloop/studyloop-backend/internal/utils"
)

// IdentityUser is the identity provider's view of an account. Its ID becomes
// the Profile primary key.
type IdentityUser struct {
  ID    uuid.UUID `json:"id"`
  Email string    `json:"email"`
}

// Session is the token pair the provider issues on login, passed through to
// the client verbatim.
type Session struct {
  AccessToken  string        `json:"access_token"`
  TokenType    string        `json:"token_type"`
  ExpiresIn    int           `json:"expires_in"`
  RefreshToken string        `json:"refresh_token"`
  User         *IdentityUser `json:"user,omitempty"`
}

// IdentityProvider wraps the external auth service: credentials are
// exchanged remotely, session tokens are verified locally against the
// provider's signing secret.
type IdentityProvider interface {
  SignUp(ctx context.Context, email, password string) (*IdentityUser, error)
  SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
  VerifyAccessToken(tokenString string) (uuid.UUID, string, error)
}

type identityClient struct {
  log        *logger.Logger
  baseURL    string
  apiKey     string
  jwtSecret  string
  httpClient *http.Client
}

func NewIdentityClient(log *logger.Logger) (IdentityProvider, error) {
  clientLog := log.With("service", "IdentityClient")

  baseURL := utils.GetEnv("IDENTITY_BASE_URL", "http://localhost:9999", log)
  apiKey := utils.GetEnv("IDENTITY_API_KEY", "", log)
  jwtSecret := utils.GetEnv("IDENTITY_JWT_SECRET", "", log)
  if jwtSecret == "" {
    return nil, fmt.Errorf("missing IDENTITY_JWT_SECRET")
  }
  timeoutSec := utils.GetEnvAsInt("IDENTITY_TIMEOUT_SECONDS", 10, log)

  return &identityClient{
    log:        clientLog,
    baseURL:    strings.TrimRight(baseURL, "/"),
    apiKey:     apiKey,
    jwtSecret:  jwtSecret,
    httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
  }, nil
}

type identityHTTPError struct {
  StatusCode int
  Body       string
}

func (e *identityHTTPError) Error() string {
  return fmt.Sprintf("identity http %d: %s", e.StatusCode, e.Body)
}

func (c *identityClient) do(ctx context.Context, method, path string, body any, out any) error {
  var buf bytes.Buffer
  if body != nil {
    if err := json.NewEncoder(&buf).Encode(body); err != nil {
      return err
    }
  }

  req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
  if err != nil {
    return err
  }
  req.Header.Set("Content-Type", "application/json")
  if c.apiKey != "" {
    req.Header.Set("apikey", c.apiKey)
    req.Header.Set("Authorization", "Bearer "+c.apiKey)
  }

  resp, err := c.httpClient.Do(req)
  if err != nil {
    return err
  }
  raw, readErr := io.ReadAll(resp.Body)
  _ = resp.Body.Close()
  if readErr != nil {
    return readErr
  }

  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return &identityHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
  }
  if out == nil {
    return nil
  }
  if err := json.Unmarshal(raw, out); err != nil {
    return fmt.Errorf("identity decode error: %w", err)
  }
  return nil
}

func (c *identityClient) SignUp(ctx context.Context, email, password string) (*IdentityUser, error) {
  payload := map[string]string{"email": email, "password": password}

  var out struct {
    ID    string `json:"id"`
    Email string `json:"email"`
    User  *struct {
      ID    string `json:"id"`
      Email string `json:"email"`
    } `json:"user"`
  }
  if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", payload, &out); err != nil {
    var httpErr *identityHTTPError
    if errors.As(err, &httpErr) {
      // The raw provider message is logged, never surfaced.
      c.log.Warn("Identity signup rejected", "status", httpErr.StatusCode, "body", httpErr.Body)
      if httpErr.StatusCode == http.StatusUnprocessableEntity || httpErr.StatusCode == http.StatusConflict {
        return nil, pkgerrors.ErrConflict
      }
    }
    return nil, err
  }

  idStr := out.ID
  emailOut := out.Email
  if out.User != nil {
    idStr = out.User.ID
    emailOut = out.User.Email
  }
  id, err := uuid.Parse(idStr)
  if err != nil {
    return nil, fmt.Errorf("identity returned no usable user id: %w", err)
  }
  return &IdentityUser{ID: id, Email: emailOut}, nil
}

func (c *identityClient) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
  payload := map[string]string{"email": email, "password": password}

  var session Session
  if err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", payload, &session); err != nil {
    var httpErr *identityHTTPError
    if errors.As(err, &httpErr) {
      c.log.Warn("Identity login rejected", "status", httpErr.StatusCode)
      if httpErr.StatusCode == http.StatusBadRequest || httpErr.StatusCode == http.StatusUnauthorized {
        return nil, pkgerrors.ErrUnauthorized
      }
    }
    return nil, err
  }
  if session.AccessToken == "" {
    return nil, fmt.Errorf("identity returned no access token")
  }
  return &session, nil
}

// VerifyAccessToken checks the provider-issued session JWT locally: HS256
// over the shared signing secret, "authenticated" audience, unexpired.
func (c *identityClient) VerifyAccessToken(tokenString string) (uuid.UUID, string, error) {
  token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
    }
    return []byte(c.jwtSecret), nil
  }, jwt.WithAudience("authenticated"), jwt.WithExpirationRequired())
  if err != nil || !token.Valid {
    return uuid.Nil, "", pkgerrors.ErrUnauthorized
  }

  claims, ok := token.Claims.(jwt.MapClaims)
  if !ok {
    return uuid.Nil, "", pkgerrors.ErrUnauthorized
  }
  sub, err := claims.GetSubject()
  if err != nil {
    return uuid.Nil, "", pkgerrors.ErrUnauthorized
  }
  userID, err := uuid.Parse(sub)
  if err != nil {
    return uuid.Nil, "", pkgerrors.ErrUnauthorized
  }
  email, _ := claims["email"].(string)
  return userID, email, nil
}
