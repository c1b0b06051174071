package imagekit

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vopial/kyc-backend/internal/config"
)

// Client talks to the ImageKit media REST API. Browser clients upload
// directly with the short-lived auth params from SignToken; the server-side
// relay path goes through Upload with the private key.
type Client struct {
	publicKey  string
	privateKey string
	uploadURL  string
	httpClient *http.Client
}

func NewClient(cfg config.ImageKitConfig) *Client {
	return &Client{
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		uploadURL:  cfg.UploadURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) PublicKey() string {
	return c.publicKey
}

// SignToken produces the upload-auth signature ImageKit expects:
// hex(HMAC-SHA1(token + expire, privateKey)).
func (c *Client) SignToken(token string, expire int64) string {
	mac := hmac.New(sha1.New, []byte(c.privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))

	return hex.EncodeToString(mac.Sum(nil))
}

type uploadResponse struct {
	FileID string `json:"fileId"`
	Name   string `json:"name"`
	URL    string `json:"url"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Upload pushes one file to ImageKit and returns its public URL.
func (c *Client) Upload(ctx context.Context, fileName string, data []byte) (string, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", errors.Wrap(err, "create multipart file part")
	}
	if _, err = part.Write(data); err != nil {
		return "", errors.Wrap(err, "write multipart file part")
	}
	if err = writer.WriteField("fileName", fileName); err != nil {
		return "", errors.Wrap(err, "write fileName field")
	}
	if err = writer.WriteField("useUniqueFileName", "true"); err != nil {
		return "", errors.Wrap(err, "write useUniqueFileName field")
	}
	if err = writer.Close(); err != nil {
		return "", errors.Wrap(err, "close multipart writer")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, body)
	if err != nil {
		return "", errors.Wrap(err, "create upload request")
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	// ImageKit uses the private key as the basic-auth user with empty password.
	httpReq.SetBasicAuth(c.privateKey, "")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "send upload request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "read upload response")
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return "", errors.Errorf("imagekit upload failed: %s", errResp.Message)
		}
		return "", errors.Errorf("imagekit upload failed: status %d", resp.StatusCode)
	}

	var uploaded uploadResponse
	if err := json.Unmarshal(respBody, &uploaded); err != nil {
		return "", errors.Wrap(err, "decode upload response")
	}

	if uploaded.URL == "" {
		return "", fmt.Errorf("imagekit upload response missing url")
	}

	return uploaded.URL, nil
}
