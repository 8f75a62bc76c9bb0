package services

import (
  "bytes"
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"
  "os"
  "strconv"
  "strings"
  "time"

  "github.com/studyloop/studyloop-backend/internal/logger"
)

// ContentProvider is the narrow boundary to the generative model: one prompt
// in, free text out. The caller owns parsing and validation of the response.
type ContentProvider interface {
  GenerateContent(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
  log        *logger.Logger
  baseURL    string
  apiKey     string
  model      string
  httpClient *http.Client
}

func NewGeminiClient(log *logger.Logger) (ContentProvider, error) {
  apiKey := os.Getenv("GEMINI_API_KEY")
  if apiKey == "" {
    return nil, fmt.Errorf("missing GEMINI_API_KEY")
  }

  baseURL := os.Getenv("GEMINI_BASE_URL")
  if baseURL == "" {
    baseURL = "https://generativelanguage.googleapis.com"
  }

  model := os.Getenv("GEMINI_MODEL")
  if model == "" {
    model = "gemini-2.0-flash"
  }

  // Generation can take a while on long plans; keep the default generous.
  timeoutSec := 120
  if v := os.Getenv("GEMINI_TIMEOUT_SECONDS"); v != "" {
    if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
      timeoutSec = parsed
    }
  }

  return &geminiClient{
    log:        log.With("service", "GeminiClient"),
    baseURL:    baseURL,
    apiKey:     apiKey,
    model:      model,
    httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
  }, nil
}

type geminiHTTPError struct {
  StatusCode int
  Body       string
}

func (e *geminiHTTPError) Error() string {
  return fmt.Sprintf("gemini http %d: %s", e.StatusCode, e.Body)
}

type generateContentRequest struct {
  Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
  Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
  Text string `json:"text"`
}

type generateContentResponse struct {
  Candidates []struct {
    Content struct {
      Parts []geminiPart `json:"parts"`
    } `json:"content"`
    FinishReason string `json:"finishReason,omitempty"`
  } `json:"candidates"`
}

// GenerateContent makes a single synchronous call. A failed or malformed
// generation is surfaced to the caller, who resubmits; there is no retry
// loop here.
func (c *geminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
  reqBody := generateContentRequest{
    Contents: []geminiContent{
      {Parts: []geminiPart{{Text: prompt}}},
    },
  }

  var buf bytes.Buffer
  if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
    return "", err
  }

  path := fmt.Sprintf("/v1beta/models/%s:generateContent", c.model)
  req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
  if err != nil {
    return "", err
  }
  req.Header.Set("Content-Type", "application/json")
  req.Header.Set("x-goog-api-key", c.apiKey)

  resp, err := c.httpClient.Do(req)
  if err != nil {
    return "", err
  }
  raw, readErr := io.ReadAll(resp.Body)
  _ = resp.Body.Close()
  if readErr != nil {
    return "", readErr
  }

  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return "", &geminiHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
  }

  var out generateContentResponse
  if err := json.Unmarshal(raw, &out); err != nil {
    return "", fmt.Errorf("gemini decode error: %w", err)
  }
  if len(out.Candidates) == 0 {
    return "", fmt.Errorf("gemini returned no candidates")
  }

  var text strings.Builder
  for _, part := range out.Candidates[0].Content.Parts {
    text.WriteString(part.Text)
  }
  if text.Len() == 0 {
    return "", fmt.Errorf("gemini returned an empty candidate")
  }
  return text.String(), nil
}
