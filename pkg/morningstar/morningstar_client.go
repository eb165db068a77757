package morningstar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoData is returned when the profile endpoint answers cleanly but
// has no record for the requested identifier.
var ErrNoData = errors.New("no profile data for security")

const redirectSentinel = "redirect:"

const inceptionDateLayout = "2006-01-02"

type Client struct {
	HttpClient *http.Client
	BaseUrl    string
	ApiKey     string
}

type FundAttributes struct {
	Managers      []string
	InceptionDate *time.Time
}

type profileRecord struct {
	Managers      []string `json:"managers"`
	InceptionDate string   `json:"inception_date"`
}

// GetFundAttributes fetches manager names and the inception date for a
// security. The upstream may answer with a textual redirect sentinel
// ("redirect:<url>") instead of data; exactly one follow-up request is
// issued in that case. A sentinel in the follow-up response is an error.
func (c Client) GetFundAttributes(ctx context.Context, isin string) (*FundAttributes, error) {
	requestUrl := fmt.Sprintf("%s/v1/securities/%s/profile?apikey=%s", c.BaseUrl, isin, c.ApiKey)
	body, err := c.get(ctx, requestUrl)
	if err != nil {
		return nil, err
	}

	if target, ok := redirectTarget(body); ok {
		if _, err := url.ParseRequestURI(target); err != nil {
			return nil, fmt.Errorf("profile response redirected to malformed url %q: %w", target, err)
		}
		body, err = c.get(ctx, target)
		if err != nil {
			return nil, err
		}
		if _, ok := redirectTarget(body); ok {
			return nil, errors.New("profile response redirected more than once")
		}
	}

	records := []profileRecord{}
	err = json.Unmarshal(body, &records)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile response: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	record := records[0]
	out := &FundAttributes{
		Managers: record.Managers,
	}
	if record.InceptionDate != "" {
		inception, err := time.Parse(inceptionDateLayout, record.InceptionDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse inception date %q: %w", record.InceptionDate, err)
		}
		out.InceptionDate = &inception
	}

	return out, nil
}

func (c Client) get(ctx context.Context, requestUrl string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("profile lookup failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	return responseBytes, nil
}

func redirectTarget(body []byte) (string, bool) {
	trimmed := strings.TrimSpace(string(body))
	if !strings.HasPrefix(trimmed, redirectSentinel) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, redirectSentinel)), true
}
