package newscrawl

import (
	"net/url"
	"path"
	"strings"
)

// Category is a news section whose listing pages are walked independently.
type Category struct {
	Name    string
	SeedURL string
}

// CategoryFromURL builds a Category named after the last path segment of seedURL.
func CategoryFromURL(seedURL string) (Category, error) {
	u, err := url.Parse(seedURL)
	if err != nil {
		return Category{}, Errorf(EINVALID, "invalid category URL %q: %v", seedURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return Category{}, Errorf(EINVALID, "category URL %q must be absolute", seedURL)
	}
	name := path.Base(strings.TrimSuffix(u.Path, "/"))
	if name == "." || name == "/" || name == "" {
		name = u.Host
	}
	return Category{Name: name, SeedURL: seedURL}, nil
}

// DefaultCategoryURLs lists the Moneycontrol news sections crawled when
// no categories are configured.
var DefaultCategoryURLs = []string{
	"https://www.moneycontrol.com/news/business",
	"https://www.moneycontrol.com/news/markets",
	"https://www.moneycontrol.com/news/technology",
	"https://www.moneycontrol.com/news/personal-finance",
	"https://www.moneycontrol.com/news/commodities",
	"https://www.moneycontrol.com/news/cryptocurrency",
}

// DefaultCategories returns the categories for DefaultCategoryURLs.
func DefaultCategories() []Category {
	categories := make([]Category, 0, len(DefaultCategoryURLs))
	for _, u := range DefaultCategoryURLs {
		c, _ := CategoryFromURL(u)
		categories = append(categories, c)
	}
	return categories
}
