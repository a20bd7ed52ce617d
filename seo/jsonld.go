package seo

import (
	"encoding/json"
	"strings"

	"github.com/jyotirmoydotdev/portfolio/content"
)

// Owner describes the site for structured data.
type Owner struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// WebsiteJSONLD returns a Schema.org WebSite JSON-LD block.
func WebsiteJSONLD(o Owner) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     o.Name,
		"url":      strings.TrimSuffix(o.URL, "/") + "/",
	}
	if o.Description != "" {
		data["description"] = o.Description
	}
	if o.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  o.Author,
		}
	}
	return marshal(data)
}

// PostingJSONLD returns a Schema.org BlogPosting JSON-LD block for p.
func PostingJSONLD(o Owner, p content.PostRecord) string {
	postURL := strings.TrimSuffix(o.URL, "/") + p.URL
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      p.Title,
		"description":   p.Description,
		"datePublished": p.Date,
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if o.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  o.Author,
		}
	}
	if o.Name != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  o.Name,
		}
	}
	if len(p.Tags) > 0 {
		data["keywords"] = strings.Join(p.Tags, ", ")
	}
	return marshal(data)
}

func marshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
