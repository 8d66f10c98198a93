package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"biasharaBack/utils"
)

// HTTPSyncClient posts the signed-in principal to the backend sync endpoint
// so server-side records exist before the profile is read. The call is
// authenticated with a short-lived service token.
type HTTPSyncClient struct {
	URL      string
	Tokens   *utils.Manager
	TokenTTL time.Duration
	Client   *http.Client
}

type syncResponse struct {
	Success   bool   `json:"success"`
	IsNewUser bool   `json:"isNewUser"`
	Message   string `json:"message"`
}

func (c *HTTPSyncClient) SyncUser(ctx context.Context, p Principal) (bool, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return false, err
	}

	token, err := c.Tokens.NewServiceToken(p.UID, c.TokenTTL)
	if err != nil {
		return false, fmt.Errorf("mint sync token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.Client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("sync endpoint returned %d", resp.StatusCode)
	}

	var out syncResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, err
	}
	return out.Success, nil
}
