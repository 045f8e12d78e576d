package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"BourseSignal/internal/model"
)

// APISource implements Source against a REST sheet service.
type APISource struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAPISource creates a new source with optional proxy support.
func NewAPISource(baseURL, apiKey, proxyURL string) *APISource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &APISource{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (s *APISource) Name() string { return "api" }

// apiTable is the JSON shape the sheet service exchanges.
type apiTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

func (s *APISource) ListSheets() ([]string, error) {
	endpoint := fmt.Sprintf("%s/api/v1/sheets", s.BaseURL)
	body, err := s.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	var sheets []string
	if err := json.Unmarshal(body, &sheets); err != nil {
		return nil, fmt.Errorf("decode sheet list: %w", err)
	}
	return sheets, nil
}

func (s *APISource) ReadTable(sheet string) (*model.Table, error) {
	endpoint := fmt.Sprintf("%s/api/v1/sheets/%s", s.BaseURL, url.PathEscape(sheet))
	body, err := s.get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", sheet, err)
	}
	var t apiTable
	if err := json.Unmarshal(body, &t); err != nil {
		return nil, fmt.Errorf("decode table %s: %w", sheet, err)
	}
	return &model.Table{Headers: t.Headers, Rows: t.Rows}, nil
}

func (s *APISource) WriteTable(sheet string, table *model.ResultTable) error {
	endpoint := fmt.Sprintf("%s/api/v1/sheets/%s", s.BaseURL, url.PathEscape(sheet))
	payload, err := json.Marshal(apiTable{Headers: table.Headers, Rows: table.Rows})
	if err != nil {
		return fmt.Errorf("marshal table %s: %w", sheet, err)
	}
	req, err := http.NewRequest(http.MethodPut, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("write table %s: %w", sheet, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("write table %s: status %d, body: %s", sheet, resp.StatusCode, string(body))
	}
	return nil
}

func (s *APISource) get(endpoint string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
