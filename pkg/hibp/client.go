package hibp

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/context"
)

// DefaultBaseURL is the public Pwned Passwords range index.
const DefaultBaseURL = "https://api.pwnedpasswords.com"

// RangeClient fetches the raw candidate text for one digest prefix. It is
// the single suspension point of a lookup; tests substitute deterministic
// fakes for it.
type RangeClient interface {
	Range(ctx context.Context, prefix string) (string, error)
}

// Client queries a Pwned Passwords compatible range endpoint over HTTPS.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

// NewClient returns a client for the given range index. An empty baseURL
// selects the public haveibeenpwned.com API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		http:    initHttpClient(),
	}
}

func initHttpClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	// Too much garbage in the logs otherwise.
	client.Logger = nil

	// A failed lookup is surfaced to the user, resubmitting is the retry path.
	client.RetryMax = 0

	client.HTTPClient = &http.Client{
		Transport: &http.Transport{
			DisableCompression: false,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS13,
			},
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       10 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
		},
	}

	return client
}

// Range performs the one GET of the k-anonymity protocol and returns the
// newline-separated SUFFIX:COUNT body. Anything other than a 200 is a
// failure.
func (c *Client) Range(ctx context.Context, prefix string) (string, error) {
	req, err := retryablehttp.NewRequestWithContext(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s/range/%s", c.baseURL, prefix),
		nil,
	)
	if err != nil {
		return "", err
	}
	// This user agent string is identifying enough, I think...
	req.Header.Set("User-Agent", "golang-breachlook/1.0")

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("range request for prefix %s failed with status [%d] %s", prefix, res.StatusCode, res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
