package builder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/mertcan/coursehub/internal/app/models/dto"
)

// Client is the HTTP client the publishing tooling uses to talk to the API.
// All calls decode the standard response envelope and surface the server's
// error detail as an *APIError.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the API rooted at baseURL
// (e.g. "http://localhost:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

// SetToken sets the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	StatusCode int
	Detail     *dto.ErrorDetail
}

func (e *APIError) Error() string {
	if e.Detail != nil {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Detail.Code, e.Detail.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *dto.ErrorDetail `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/v1"+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &env); err != nil {
			return fmt.Errorf("failed to decode response (%d): %w", resp.StatusCode, err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Detail: env.Error}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

// Login authenticates and stores the returned access token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", &dto.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	c.SetToken(resp.Token.AccessToken)
	return &resp, nil
}

// CreateCourse creates a new draft.
func (c *Client) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	var course dto.CourseResponse
	if err := c.doJSON(ctx, http.MethodPost, "/courses", req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse updates draft fields.
func (c *Client) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	var course dto.CourseResponse
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/courses/%d", id), req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// GetCourse fetches a course with its full curriculum tree.
func (c *Client) GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	var course dto.CourseResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/courses/%d", id), nil, "", &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// AddUnit appends a unit to a course.
func (c *Client) AddUnit(ctx context.Context, courseID int64, req *dto.AddUnitRequest) (*dto.UnitResponse, error) {
	var unit dto.UnitResponse
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/courses/%d/units", courseID), req, &unit); err != nil {
		return nil, err
	}
	return &unit, nil
}

// AddLesson appends a lesson with its resources to a unit.
func (c *Client) AddLesson(ctx context.Context, courseID, unitID int64, req *dto.AddLessonRequest) (*dto.LessonResponse, error) {
	var lesson dto.LessonResponse
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/courses/%d/units/%d/lessons", courseID, unitID), req, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// SubmitCourse moves a draft into the review queue.
func (c *Client) SubmitCourse(ctx context.Context, courseID int64) (*dto.CourseResponse, error) {
	var course dto.CourseResponse
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/courses/%d/submit", courseID), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// UploadFile streams a local file to the given upload endpoint and returns
// the stored path.
func (c *Client) UploadFile(ctx context.Context, endpoint, localPath string) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fw, err := writer.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(fw, file); err != nil {
		return "", fmt.Errorf("failed to copy file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize form: %w", err)
	}

	var resp dto.UploadResponse
	if err := c.do(ctx, http.MethodPost, endpoint, body, writer.FormDataContentType(), &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}
