// Package goquery provides CSS-selector-based implementations of the
// storecrawl extraction interfaces. The per-field selector chains encode the
// observed precedence of the storefront's markup (sale price over regular
// price, nested rich structure over flat text) rather than a formal schema.
package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/storecrawl"
)

// Image width substituted into the storefront's {width}x template.
// Detail pages and rendered listing cards were observed with slightly
// different values; both sit in the 1000–1024 range the CDN serves.
const (
	detailImageWidth   = "1000x"
	renderedImageWidth = "1024x"
)

// Ensure Extractor implements the extraction interfaces at compile time.
var (
	_ storecrawl.RecordExtractor = (*Extractor)(nil)
	_ storecrawl.CardLister      = (*Extractor)(nil)
)

// Extractor extracts normalized product records from storefront markup.
// Extract never fails: every field falls back to its documented default
// when the markup doesn't resolve.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract produces a fully populated record from a product detail page.
func (e *Extractor) Extract(html string, sourceURL string) *storecrawl.ProductRecord {
	rec := storecrawl.NewProductRecord(sourceURL)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return rec
	}

	populateDetail(rec, doc.Selection)
	return rec
}

// populateDetail fills rec from a detail page's markup. Each field is
// resolved independently so one missing signal never affects the others.
func populateDetail(rec *storecrawl.ProductRecord, s *goquery.Selection) {
	// Name: title block → nested heading → nested link.
	if name := chainText(s, "div.product-collection__title", "h4", "a"); name != "" {
		rec.Name = name
	}

	// Price: sale-price container's last nested span wins over the regular
	// price, which prefers its currency-amount sub-node over flat text.
	if cont := s.Find("div.product-collection__price").First(); cont.Length() > 0 {
		var raw string
		if sale := cont.Find("span.price--sale").First(); sale.Length() > 0 {
			raw = sale.Find("span").Last().Text()
		} else if single := cont.Find("span.price").First(); single.Length() > 0 {
			if amount := single.Find("bdi").First(); amount.Length() > 0 {
				raw = amount.Text()
			} else {
				raw = single.Text()
			}
		}
		rec.Price = ParsePrice(raw)
	}

	// Description: paragraph text with whitespace collapsed.
	if desc := s.Find("div.product-collection__description").First().Find("p.m-0").First(); desc.Length() > 0 {
		if text := collapseSpace(desc.Text()); text != "" {
			rec.Description = text
		}
	}

	// Category: the vendor link in the more-info block stands in for a
	// category; the markup has no dedicated category signal.
	if cat := strings.TrimSpace(s.Find("div.product-collection__more-info").First().Find("a").First().Text()); cat != "" {
		rec.Category = cat
	}

	rec.Availability = availabilityFromNode(s.Find("div.product-collection__availability").First().Find("span").First())

	if src, ok := s.Find("div.rimage").First().Find("img").First().Attr("data-master"); ok {
		rec.ImageURL = NormalizeImageURL(src, detailImageWidth)
	}
}

// chainText walks a chain of selectors, requiring each step to resolve, and
// returns the trimmed text of the final node. A miss at any step returns "".
func chainText(s *goquery.Selection, selectors ...string) string {
	for _, sel := range selectors {
		s = s.Find(sel).First()
		if s.Length() == 0 {
			return ""
		}
	}
	return strings.TrimSpace(s.Text())
}

// availabilityFromNode applies the availability policy: absence of the text
// node means in stock; presence means in stock only if the lower-cased text
// contains "in stock".
func availabilityFromNode(s *goquery.Selection) bool {
	if s.Length() == 0 {
		return true
	}
	return strings.Contains(strings.ToLower(s.Text()), "in stock")
}

var nonPriceChars = regexp.MustCompile(`[^0-9.]`)

// CleanPrice strips every character that is not a digit or decimal point
// from raw price text.
func CleanPrice(raw string) string {
	return nonPriceChars.ReplaceAllString(strings.TrimSpace(raw), "")
}

// ParsePrice cleans and parses price text. Empty or unparseable cleaned
// text yields exactly 0.0; the result is never negative.
func ParsePrice(raw string) float64 {
	cleaned := CleanPrice(raw)
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// NormalizeImageURL substitutes the CDN's {width}x placeholder and
// qualifies protocol-relative URLs with https. Absolute URLs pass through
// unchanged apart from the width substitution.
func NormalizeImageURL(src string, width string) string {
	u := strings.Replace(src, "{width}x", width, 1)
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}

// collapseSpace trims text and collapses all internal whitespace runs to
// single spaces.
func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
