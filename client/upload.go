package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/nikhilkumar92976/FOOD-INSTA/feed"
)

// NewFood is a video post as the partner's create form sends it.
type NewFood struct {
	Name        string
	Description string
	Filename    string
	Video       io.Reader
}

var videoTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
}

func videoContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := videoTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// CreateFood uploads a video as the logged-in food partner.
func (c *Client) CreateFood(ctx context.Context, in NewFood) (*feed.Item, error) {
	if in.Video == nil {
		return nil, fmt.Errorf("video is required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("name", in.Name); err != nil {
		return nil, fmt.Errorf("write form: %w", err)
	}
	if err := w.WriteField("description", in.Description); err != nil {
		return nil, fmt.Errorf("write form: %w", err)
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="video"; filename=%q`, filepath.Base(in.Filename)))
	h.Set("Content-Type", videoContentType(in.Filename))
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("write form: %w", err)
	}
	if _, err := io.Copy(part, in.Video); err != nil {
		return nil, fmt.Errorf("read video: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("write form: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/api/food", w.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Food *feed.Item `json:"food"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Food == nil {
		return nil, feed.ErrUnexpectedShape
	}
	return envelope.Food, nil
}
