package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/storecrawl"
)

// Selectors for the client-side-rendered listing variant. The rendered DOM
// wraps each card in a custom element and annotates price and availability
// nodes with data attributes that the server-rendered markup lacks.
const (
	renderedCardSelector         = "product-item.product-collection"
	renderedNameSelector         = "h4 a"
	renderedSalePriceSelector    = "span.price--sale[data-js-product-price]"
	renderedRegularPriceSelector = "span.price[data-js-product-price]"
	renderedDescriptionSelector  = "p.product-collection__description"
	renderedAvailabilitySelector = "p[data-js-product-availability] span:nth-child(2)"
	renderedImageSelector        = "img.rimage__img"
)

// ExtractCards extracts one record per product card from the settled DOM of
// a fully rendered listing page. The per-field policy mirrors Extract's but
// against the rendered markup's selectors; both paths emit the same
// canonical record. Cards without a resolvable product link are skipped
// because SourceURL is the record's required dedup key.
func (e *Extractor) ExtractCards(html string, baseURL string) ([]*storecrawl.ProductRecord, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, storecrawl.Errorf(storecrawl.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, storecrawl.Errorf(storecrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	var records []*storecrawl.ProductRecord
	doc.Find(renderedCardSelector).Each(func(_ int, card *goquery.Selection) {
		href, ok := card.Find(productLinkSelector).First().Attr("href")
		if !ok || href == "" {
			return
		}
		sourceURL := resolveURL(base, href)
		if sourceURL == "" {
			return
		}

		rec := storecrawl.NewProductRecord(sourceURL)
		populateCard(rec, card)
		records = append(records, rec)
	})

	return records, nil
}

// populateCard fills rec from one rendered product card.
func populateCard(rec *storecrawl.ProductRecord, card *goquery.Selection) {
	if name := strings.TrimSpace(card.Find(renderedNameSelector).First().Text()); name != "" {
		rec.Name = name
	}

	// Sale price wins over the regular price, as on detail pages.
	if sale := card.Find(renderedSalePriceSelector).First(); sale.Length() > 0 {
		rec.Price = ParsePrice(sale.Text())
	} else if regular := card.Find(renderedRegularPriceSelector).First(); regular.Length() > 0 {
		rec.Price = ParsePrice(regular.Text())
	}

	if desc := collapseSpace(card.Find(renderedDescriptionSelector).First().Text()); desc != "" {
		rec.Description = desc
	}

	if cat := strings.TrimSpace(card.Find("div.product-collection__more-info").First().Find("a").First().Text()); cat != "" {
		rec.Category = cat
	}

	rec.Availability = availabilityFromNode(card.Find(renderedAvailabilitySelector).First())

	if src, ok := card.Find(renderedImageSelector).First().Attr("data-master"); ok {
		rec.ImageURL = NormalizeImageURL(src, renderedImageWidth)
	}
}
