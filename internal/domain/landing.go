package domain

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---"

// LandingFeature is one entry of the landing page's features list
type LandingFeature struct {
	Title   string `yaml:"title"`
	Details string `yaml:"details"`
	Link    string `yaml:"link"`
}

// FeaturesFromRecent maps recently modified documents to landing features
func FeaturesFromRecent(files []RecentFile) []LandingFeature {
	features := make([]LandingFeature, 0, len(files))
	for _, f := range files {
		features = append(features, LandingFeature{
			Title:   f.Title,
			Details: "Last modified: " + f.Label,
			Link:    f.Path,
		})
	}
	return features
}

// SplitFrontMatter separates the YAML header from the body. Leading newlines
// of the body are dropped.
func SplitFrontMatter(content string) (string, string, error) {
	if !strings.HasPrefix(content, frontMatterDelim) {
		return "", "", ErrNoFrontMatter
	}
	rest := content[len(frontMatterDelim):]
	end := strings.Index(rest, "\n"+frontMatterDelim)
	if end < 0 {
		return "", "", ErrNoFrontMatter
	}
	header := strings.TrimLeft(rest[:end], "\r\n")
	body := strings.TrimLeft(rest[end+1+len(frontMatterDelim):], "\r\n")
	return header, body, nil
}

// ReplaceFeatures rewrites only the features key of the landing page front
// matter. Other keys keep their order and the body is preserved.
func ReplaceFeatures(content string, features []LandingFeature) (string, error) {
	header, body, err := SplitFrontMatter(content)
	if err != nil {
		return "", err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(header), &doc); err != nil {
		return "", fmt.Errorf("failed to parse front matter: %w", err)
	}
	if doc.Kind == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return "", fmt.Errorf("front matter is not a mapping")
	}

	if features == nil {
		features = []LandingFeature{}
	}
	var value yaml.Node
	if err := value.Encode(features); err != nil {
		return "", fmt.Errorf("failed to encode features: %w", err)
	}

	replaced := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "features" {
			root.Content[i+1] = &value
			replaced = true
			break
		}
	}
	if !replaced {
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "features"},
			&value,
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return "", fmt.Errorf("failed to render front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", err
	}

	return frontMatterDelim + "\n" + buf.String() + frontMatterDelim + "\n" + body, nil
}
