package ratefeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

// NewCarProduct is the feed product code for new-car loans
const NewCarProduct = "new-car"

// LenderRate is one lender's published annual rate
type LenderRate struct {
	Lender  string
	Product string
	Percent float64
}

// Client fetches the lender rate feed
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new rate feed client
func NewClient(url string, log *logrus.Logger) *Client {
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// fetch downloads the raw feed document
func (c *Client) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("Rate feed XML response: %s", string(body))

	return body, nil
}

// ParseRates extracts every <rate> element of the feed:
//
//	<rates>
//	  <rate lender="SBI" product="new-car">8.75</rate>
//	</rates>
func ParseRates(rawBody []byte) ([]LenderRate, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	elements := doc.FindElements("//rates/rate")
	if len(elements) == 0 {
		return nil, fmt.Errorf("no rate data found in XML")
	}

	rates := make([]LenderRate, 0, len(elements))
	for _, el := range elements {
		pct, err := strconv.ParseFloat(strings.TrimSpace(el.Text()), 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rate for %s: %w", el.SelectAttrValue("lender", "?"), err)
		}
		if pct < 0 {
			return nil, fmt.Errorf("negative rate for %s", el.SelectAttrValue("lender", "?"))
		}
		rates = append(rates, LenderRate{
			Lender:  el.SelectAttrValue("lender", ""),
			Product: el.SelectAttrValue("product", ""),
			Percent: pct,
		})
	}
	return rates, nil
}

// LowestRate returns the cheapest rate published for product
func LowestRate(rates []LenderRate, product string) (LenderRate, bool) {
	var best LenderRate
	found := false
	for _, r := range rates {
		if r.Product != product {
			continue
		}
		if !found || r.Percent < best.Percent {
			best = r
			found = true
		}
	}
	return best, found
}

// ReferenceRate retrieves the lowest new-car loan rate currently published
func (c *Client) ReferenceRate(ctx context.Context) (LenderRate, error) {
	body, err := c.fetch(ctx)
	if err != nil {
		return LenderRate{}, err
	}

	rates, err := ParseRates(body)
	if err != nil {
		return LenderRate{}, err
	}

	best, ok := LowestRate(rates, NewCarProduct)
	if !ok {
		return LenderRate{}, fmt.Errorf("no %s rate in feed", NewCarProduct)
	}

	c.log.Infof("Retrieved reference rate: %.2f%% (%s)", best.Percent, best.Lender)
	return best, nil
}
