// Package storage uploads token images and metadata documents to an
// Irys-style decentralized storage gateway, returning permanent content URIs.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseUrl is the devnet upload gateway. Mainnet deployments
	// should configure their own gateway with funded uploads.
	DefaultBaseUrl = "https://devnet.irys.xyz"

	jsonEndpointName = "upload/json"
	fileEndpointName = "upload/file"

	defaultTimeout = 30 * time.Second
)

// Client is an HTTP client for an upload gateway exposing the two-endpoint
// contract: POST /upload/json and POST /upload/file, each responding with
// {"uri": "..."}.
type Client struct {
	log        *logrus.Entry
	baseUrl    string
	apiKey     string
	httpClient *http.Client
}

// NewClient returns a new storage client for the gateway at baseUrl. The
// apiKey is optional and sent as a bearer token when set.
func NewClient(baseUrl, apiKey string) *Client {
	return &Client{
		log:     logrus.StandardLogger().WithField("type", "storage/client"),
		baseUrl: strings.TrimRight(strings.TrimSpace(baseUrl), "/") + "/",
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// UploadJSON marshals v and uploads it as a JSON document, returning the
// content URI.
func (c *Client) UploadJSON(ctx context.Context, v interface{}) (string, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "error marshalling upload payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseUrl+jsonEndpointName, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "error creating http request")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// UploadFile uploads the file at path as a multipart form, returning the
// content URI.
func (c *Client) UploadFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "error opening file")
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", errors.Wrap(err, "error creating form file")
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", errors.Wrap(err, "error reading file contents")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "error finalizing multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseUrl+fileEndpointName, &body)
	if err != nil {
		return "", errors.Wrap(err, "error creating http request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

func (c *Client) do(req *http.Request) (string, error) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "error executing http request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "error reading response body")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("received http status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed jsonUploadResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errors.Wrap(err, "error unmarshalling json response")
	}
	if parsed.Uri == "" {
		return "", errors.New("upload response has empty uri")
	}

	c.log.WithField("uri", parsed.Uri).Debug("upload complete")

	return parsed.Uri, nil
}

type jsonUploadResponse struct {
	Uri string `json:"uri"`
}
