package schema_registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Aleph-Alpha/schemasync/v1/observability"
)

const contentType = "application/vnd.schemaregistry.v1+json"

// Client is the default implementation of Registry
// that communicates with a Confluent compatible Schema Registry over HTTP.
type Client struct {
	url        string
	httpClient *http.Client

	// Authentication
	username string
	password string
	token    string

	observer observability.Observer
}

// NewClient creates a new schema registry client
// Returns the concrete *Client type.
func NewClient(config Config) (*Client, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("schema registry URL is required")
	}
	if _, err := url.ParseRequestURI(config.URL); err != nil {
		return nil, fmt.Errorf("invalid schema registry URL %q: %w", config.URL, err)
	}

	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	return &Client{
		url: strings.TrimSuffix(config.URL, "/"),
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		username: config.Username,
		password: config.Password,
		token:    config.Token,
	}, nil
}

// WithObserver attaches an observer notified after every registry call.
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// GetCompatibility returns the compatibility level of a subject, or the global
// level when subject is empty.
func (c *Client) GetCompatibility(ctx context.Context, subject string) Result[string] {
	start := time.Now()
	path := "/config"
	if subject != "" {
		path += "/" + url.PathEscape(subject)
	}

	var resp struct {
		CompatibilityLevel string `json:"compatibilityLevel"`
		Compatibility      string `json:"compatibility"`
	}
	err := c.do(ctx, http.MethodGet, path, nil, &resp)
	c.observeOperation("get_compatibility", subject, "", time.Since(start), err, nil)

	level := resp.CompatibilityLevel
	if level == "" {
		level = resp.Compatibility
	}
	return ResultOf(level, err)
}

// UpdateCompatibility sets the compatibility level of a subject.
func (c *Client) UpdateCompatibility(ctx context.Context, subject, level string) (string, error) {
	start := time.Now()
	if subject == "" {
		return "", fmt.Errorf("subject is required to update compatibility")
	}

	req := map[string]string{"compatibility": level}
	var resp struct {
		Compatibility string `json:"compatibility"`
	}
	err := c.do(ctx, http.MethodPut, "/config/"+url.PathEscape(subject), req, &resp)
	c.observeOperation("update_compatibility", subject, level, time.Since(start), err, nil)
	if err != nil {
		return "", fmt.Errorf("failed to update compatibility of %s: %w", subject, err)
	}
	return resp.Compatibility, nil
}

// GetLatestSchemaMetadata retrieves the latest version of a schema for a subject
func (c *Client) GetLatestSchemaMetadata(ctx context.Context, subject string) Result[*Metadata] {
	start := time.Now()
	var metadata Metadata
	err := c.do(ctx, http.MethodGet, "/subjects/"+url.PathEscape(subject)+"/versions/latest", nil, &metadata)
	c.observeOperation("get_latest_schema", subject, "latest", time.Since(start), err, nil)
	if err != nil {
		return ResultOf[*Metadata](nil, err)
	}

	metadata.Subject = subject
	// The registry omits schemaType for Avro.
	if metadata.Type == "" {
		metadata.Type = TypeAvro
	}
	return Found(&metadata)
}

// GetAllSubjects lists all registered subjects.
func (c *Client) GetAllSubjects(ctx context.Context) ([]string, error) {
	start := time.Now()
	var subjects []string
	err := c.do(ctx, http.MethodGet, "/subjects", nil, &subjects)
	c.observeOperation("get_subjects", "", "", time.Since(start), err, map[string]interface{}{"count": len(subjects)})
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	return subjects, nil
}

// GetAllVersions lists the versions registered under a subject.
func (c *Client) GetAllVersions(ctx context.Context, subject string) Result[[]int] {
	start := time.Now()
	var versions []int
	err := c.do(ctx, http.MethodGet, "/subjects/"+url.PathEscape(subject)+"/versions", nil, &versions)
	c.observeOperation("get_versions", subject, "", time.Since(start), err, nil)
	return ResultOf(versions, err)
}

// GetVersion looks up the version under which schema is registered for subject.
func (c *Client) GetVersion(ctx context.Context, subject string, schema ParsedSchema) Result[int] {
	start := time.Now()
	var resp struct {
		Version int `json:"version"`
	}
	err := c.do(ctx, http.MethodPost, "/subjects/"+url.PathEscape(subject), schemaRequest(schema), &resp)
	c.observeOperation("lookup_version", subject, schema.SchemaType(), time.Since(start), err, nil)
	return ResultOf(resp.Version, err)
}

// TestCompatibility checks if a schema is compatible with the latest version of subject
func (c *Client) TestCompatibility(ctx context.Context, subject string, schema ParsedSchema) Result[bool] {
	start := time.Now()
	var resp struct {
		IsCompatible bool `json:"is_compatible"`
	}
	err := c.do(ctx, http.MethodPost, "/compatibility/subjects/"+url.PathEscape(subject)+"/versions/latest", schemaRequest(schema), &resp)
	c.observeOperation("test_compatibility", subject, schema.SchemaType(), time.Since(start), err, map[string]interface{}{
		"compatible": resp.IsCompatible,
	})
	return ResultOf(resp.IsCompatible, err)
}

// Register registers a new schema with the schema registry
func (c *Client) Register(ctx context.Context, subject string, schema ParsedSchema) (int, error) {
	start := time.Now()
	var resp struct {
		ID int `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/subjects/"+url.PathEscape(subject)+"/versions", schemaRequest(schema), &resp)
	c.observeOperation("register", subject, schema.SchemaType(), time.Since(start), err, map[string]interface{}{
		"id": resp.ID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to register schema for %s: %w", subject, err)
	}
	return resp.ID, nil
}

// DeleteSubject soft-deletes all versions of a subject.
func (c *Client) DeleteSubject(ctx context.Context, subject string) ([]int, error) {
	start := time.Now()
	var versions []int
	err := c.do(ctx, http.MethodDelete, "/subjects/"+url.PathEscape(subject), nil, &versions)
	c.observeOperation("delete_subject", subject, "", time.Since(start), err, map[string]interface{}{
		"versions": len(versions),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete subject %s: %w", subject, err)
	}
	return versions, nil
}

// ParseSchema parses raw content as the given schema type.
func (c *Client) ParseSchema(schemaType, raw string) (ParsedSchema, error) {
	return ParseSchema(schemaType, raw)
}

func schemaRequest(schema ParsedSchema) map[string]interface{} {
	payload := map[string]interface{}{
		"schema": strings.TrimSpace(schema.Raw()),
	}
	if schemaType := schema.SchemaType(); schemaType != "" && schemaType != TypeAvro {
		payload["schemaType"] = schemaType
	}
	return payload
}

// do issues a request against the registry. Non-2xx responses are decoded
// into a *RegistryError.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	switch {
	case c.token != "":
		req.Header.Set("Authorization", "Bearer "+c.token)
	case c.username != "":
		req.SetBasicAuth(c.username, c.password)
	}
	req.Header.Set("Accept", contentType)
	if in != nil {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	regErr := &RegistryError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(raw, regErr); err != nil || (regErr.ErrorCode == 0 && regErr.Message == "") {
		regErr.Message = strings.TrimSpace(string(raw))
	}
	regErr.StatusCode = resp.StatusCode
	return regErr
}
