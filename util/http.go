package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout 默认的网络请求超时时间。
const DefaultTimeout = 10 * time.Second

// Client 微信接口网络请求客户端。
type Client struct {
	http *http.Client
}

// NewClient 返回一个指定超时时间的网络请求客户端，timeout 为 0 时使用 DefaultTimeout。
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// Get 网络拉取请求
func (c *Client) Get(uri string) ([]byte, error) {
	resp, err := c.http.Get(uri)
	if err != nil {
		return nil, transportError(uri, err)
	}
	defer resp.Body.Close()

	return readBody(uri, resp)
}

// PostJSON 发送 JSON 数据请求。
func (c *Client) PostJSON(uri string, object interface{}) ([]byte, error) {
	body := new(bytes.Buffer)
	encoder := json.NewEncoder(body)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(object); err != nil {
		return nil, err
	}

	resp, err := c.http.Post(uri, "application/json;charset=utf-8", body)
	if err != nil {
		return nil, transportError(uri, err)
	}
	defer resp.Body.Close()

	return readBody(uri, resp)
}

func readBody(uri string, resp *http.Response) ([]byte, error) {
	if resp.StatusCode != http.StatusOK {
		return nil, transportError(uri, fmt.Errorf("状态码=%d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(uri, err)
	}
	return data, nil
}

// 网址中可能带有 secret 与 access_token，错误信息中只保留路径
func transportError(uri string, err error) *TransportError {
	if u, perr := url.Parse(uri); perr == nil {
		u.RawQuery = ""
		uri = u.String()
	}
	if uerr, ok := err.(*url.Error); ok {
		err = uerr.Err
	}
	return &TransportError{URL: uri, Err: err}
}

// BuildURL 在网址上追加查询参数。
func BuildURL(rawURL string, params map[string]string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	query := parsedURL.Query()
	for k, v := range params {
		query.Set(k, v)
	}
	parsedURL.RawQuery = query.Encode()
	return parsedURL.String(), nil
}
