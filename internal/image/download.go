package imagepkg

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/disintegration/imaging"
)

// DefaultClient is used when callers don't bring their own.
var DefaultClient = &http.Client{Timeout: 12 * time.Second}

// FetchImage fetches and decodes an image. http(s) URLs go over the wire;
// anything else is treated as a local file path, which is what the offline
// CLI resolver hands in.
func FetchImage(ctx context.Context, client *http.Client, rawURL string) (image.Image, error) {
	if client == nil {
		client = DefaultClient
	}
	u, err := url.Parse(rawURL)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return fetchHTTP(ctx, client, rawURL)
	}
	f, err := os.Open(rawURL)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", rawURL, err)
	}
	defer f.Close()
	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", rawURL, err)
	}
	return img, nil
}

func fetchHTTP(ctx context.Context, client *http.Client, rawURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching image %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching image %s: status %d", rawURL, resp.StatusCode)
	}
	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", rawURL, err)
	}
	return img, nil
}
