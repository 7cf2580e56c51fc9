package export

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// assetClient downloads the remote document assets (Word template, PDF
// background image). Responses are fetched per render; assets can be swapped
// on the hosting side without redeploying.
type assetClient struct {
	client *http.Client
}

func newAssetClient() *assetClient {
	return &assetClient{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (a *assetClient) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build asset request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("asset download returned status %d", resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset body: %w", err)
	}
	return content, nil
}
