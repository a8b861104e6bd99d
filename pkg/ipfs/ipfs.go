// Package ipfs is the HTTP client for the external pinning service that
// holds all media bytes. The service is append-only from our side: once a
// hash is obtained the bytes are treated as permanently available, and
// nothing here ever deletes.
package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type UploadedFile struct {
	ID           int64  `json:"id"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Mimetype     string `json:"mimetype"`
	IpfsHash     string `json:"ipfsHash"`
	GatewayURL   string `json:"gatewayUrl"`
}

type uploadResponse struct {
	Success bool          `json:"success"`
	File    *UploadedFile `json:"file"`
	Error   string        `json:"error"`
}

// Upload posts the file bytes as multipart form data and returns the
// pinning service's record, including the content hash.
func (c *Client) Upload(ctx context.Context, data []byte, filename, mimetype string) (*UploadedFile, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", mimetype)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, errors.Wrap(err, "create multipart body")
	}
	if _, err := part.Write(data); err != nil {
		return nil, errors.Wrap(err, "write multipart body")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "close multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", body)
	if err != nil {
		return nil, errors.Wrap(err, "build upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "upload to pinning service")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("pinning service returned status %d", resp.StatusCode)
	}

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "decode upload response")
	}
	if !result.Success || result.File == nil {
		return nil, errors.Errorf("pinning service rejected upload: %s", result.Error)
	}
	return result.File, nil
}

// Verify checks whether a hash is reachable on the service without
// downloading the bytes.
func (c *Client) Verify(ctx context.Context, hash string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/api/ipfs/"+hash, nil)
	if err != nil {
		return false, errors.Wrap(err, "build verify request")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "verify hash")
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK, nil
}

type AccessURLs struct {
	Primary string `json:"primary"`
	IpfsIo  string `json:"ipfs"`
	Gateway string `json:"gateway"`
}

// URLs returns the public access URLs for a pinned hash.
func (c *Client) URLs(hash string) AccessURLs {
	return AccessURLs{
		Primary: c.baseURL + "/api/ipfs/" + hash,
		IpfsIo:  "https://ipfs.io/ipfs/" + hash,
		Gateway: "https://gateway.pinata.cloud/ipfs/" + hash,
	}
}

// ValidHash is the cheap prefix check the route layer applies before
// trusting an externally supplied content address.
func ValidHash(hash string) bool {
	return strings.HasPrefix(hash, "Qm") || strings.HasPrefix(hash, "bafyb")
}

var std *Client

func Init(baseURL string) {
	std = NewClient(baseURL)
}

func Upload(ctx context.Context, data []byte, filename, mimetype string) (*UploadedFile, error) {
	return std.Upload(ctx, data, filename, mimetype)
}

func Verify(ctx context.Context, hash string) (bool, error) {
	return std.Verify(ctx, hash)
}

func URLs(hash string) AccessURLs {
	return std.URLs(hash)
}

func ServiceURL() string {
	return std.baseURL
}
