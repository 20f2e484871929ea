package idp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// OAuthClient talks to the external identity provider: authorization-code
// login, token exchange and userinfo lookup.
type OAuthClient struct {
	BaseURL     string
	AppID       string
	AppSecret   string
	RedirectURI string
}

type UserInfo struct {
	Subject string `json:"sub"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar_url"`
	Email   string `json:"email"`
}

func NewOAuthClient(baseURL, appID, appSecret, redirectURI string) *OAuthClient {
	return &OAuthClient{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		AppID:       appID,
		AppSecret:   appSecret,
		RedirectURI: redirectURI,
	}
}

func (c *OAuthClient) AuthURL(state string) string {
	params := url.Values{
		"client_id":     {c.AppID},
		"redirect_uri":  {c.RedirectURI},
		"response_type": {"code"},
		"state":         {state},
	}
	return c.BaseURL + "/oauth/authorize?" + params.Encode()
}

// ExchangeCode trades an authorization code for a provider access token.
func (c *OAuthClient) ExchangeCode(code string) (string, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"client_id":     {c.AppID},
		"client_secret": {c.AppSecret},
		"redirect_uri":  {c.RedirectURI},
	}
	resp, err := http.PostForm(c.BaseURL+"/oauth/token", form)
	if err != nil {
		return "", fmt.Errorf("request access token: %w", err)
	}
	defer resp.Body.Close()

	respBytes, _ := io.ReadAll(resp.Body)

	var result struct {
		AccessToken string `json:"access_token"`
		Error       string `json:"error"`
		ErrorDesc   string `json:"error_description"`
	}
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return "", fmt.Errorf("decode token resp: %w (body: %s)", err, string(respBytes))
	}
	if result.Error != "" {
		return "", fmt.Errorf("exchange code failed (%s): %s", result.Error, result.ErrorDesc)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("empty access_token (body: %s)", string(respBytes))
	}
	return result.AccessToken, nil
}

// GetUserInfo fetches the identity claims behind an access token.
func (c *OAuthClient) GetUserInfo(accessToken string) (*UserInfo, error) {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+"/oauth/userinfo", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request userinfo: %w", err)
	}
	defer resp.Body.Close()

	respBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo failed (status=%d): %s", resp.StatusCode, string(respBytes))
	}

	var info UserInfo
	if err := json.Unmarshal(respBytes, &info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w (body: %s)", err, string(respBytes))
	}
	if info.Subject == "" {
		return nil, fmt.Errorf("empty subject (body: %s)", string(respBytes))
	}
	return &info, nil
}
