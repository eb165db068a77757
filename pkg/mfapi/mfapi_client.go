package mfapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrNoIdentifier is returned when the scheme exists upstream but
// carries no usable ISIN in any plan variant.
var ErrNoIdentifier = errors.New("no identifier listed for scheme")

type Client struct {
	HttpClient *http.Client
	BaseUrl    string
}

type SchemeIdentifiersResponse struct {
	Meta struct {
		SchemeCode          string `json:"scheme_code"`
		SchemeName          string `json:"scheme_name"`
		FundHouse           string `json:"fund_house"`
		IsinGrowth          string `json:"isin_growth"`
		IsinDivReinvestment string `json:"isin_div_reinvestment"`
	} `json:"meta"`
}

// ResolveISIN maps a scheme code to a security identifier, preferring
// the growth-plan ISIN over the dividend-reinvestment one.
func (c Client) ResolveISIN(ctx context.Context, schemeCode string) (string, error) {
	url := fmt.Sprintf("%s/mf/%s/identifiers", c.BaseUrl, schemeCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return "", fmt.Errorf("scheme lookup failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseJson := SchemeIdentifiersResponse{}
	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return "", fmt.Errorf("failed to parse scheme lookup response: %w", err)
	}

	if responseJson.Meta.IsinGrowth != "" {
		return responseJson.Meta.IsinGrowth, nil
	}
	if responseJson.Meta.IsinDivReinvestment != "" {
		return responseJson.Meta.IsinDivReinvestment, nil
	}

	return "", ErrNoIdentifier
}
