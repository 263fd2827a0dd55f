package socrataclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	socratadomain "github.com/advanced-computing/bouncing-penguin/infrastructure/integrator/socrata/domain"
	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	jsoniter "github.com/json-iterator/go"
)

// Números chegam como json.Number para não perder precisão nem o texto original
var json = jsoniter.Config{
	EscapeHTML:             true,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

type PageParams struct {
	URL       string
	Limit     int
	Offset    int
	Order     string
	Params    url.Values
	Paginated bool // sem paginação o $offset não é enviado
}

func (c *SocrataClient) GetPage(ctx context.Context, params PageParams) ([]domain.RawRecord, error) {
	endpoint, err := url.Parse(params.URL)
	if err != nil {
		return nil, fmt.Errorf("socrata: invalid base url: %w", err)
	}

	query := endpoint.Query()
	for key, values := range params.Params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	query.Set(socratadomain.ParamLimit, strconv.Itoa(params.Limit))
	if params.Paginated {
		query.Set(socratadomain.ParamOffset, strconv.Itoa(params.Offset))
	}
	if params.Order != "" {
		query.Set(socratadomain.ParamOrder, params.Order)
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("socrata: error creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.appToken != "" {
		req.Header.Set("X-App-Token", c.appToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("socrata: error executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var records []domain.RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("socrata: error decoding page at offset %d: %w", params.Offset, err)
	}

	return records, nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	var apiErr socratadomain.ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.HasMessage() {
		return fmt.Errorf("socrata: request failed with status %s: %s (%s)", resp.Status, apiErr.Message, apiErr.Code)
	}

	return fmt.Errorf("socrata: request failed with status: %s", resp.Status)
}
