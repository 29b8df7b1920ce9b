package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/maxaizer/job-ingest/internal/entities"
	"github.com/maxaizer/job-ingest/internal/normalize"
	log "github.com/sirupsen/logrus"
)

const promptDescriptionLength = 1500

type aiClient interface {
	GenerateResponse(ctx context.Context, request string) (string, error)
}

// AICategorizer asks a language model to place a posting into the fixed taxonomy.
type AICategorizer struct {
	aiClient aiClient
}

func NewAICategorizer(aiClient aiClient) *AICategorizer {
	return &AICategorizer{aiClient: aiClient}
}

type categorySuggestion struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

func (a *AICategorizer) SuggestCategory(ctx context.Context, title, description string) (entities.Category, entities.Subcategory, error) {
	response, err := a.aiClient.GenerateResponse(ctx, categoryRequest(title, description))
	if err != nil {
		return "", "", err
	}

	log.Debugf("got category response %q for %q", response, title)

	var suggestion categorySuggestion
	if err := json.Unmarshal([]byte(stripCodeFence(response)), &suggestion); err != nil {
		return "", "", fmt.Errorf("unexpected response %q for %q: %w", response, title, err)
	}

	category := entities.Category(strings.ToLower(strings.TrimSpace(suggestion.Category)))
	subcategory := entities.Subcategory(strings.ToLower(strings.TrimSpace(suggestion.Subcategory)))
	if !entities.IsKnownClassification(category, subcategory) {
		return "", "", fmt.Errorf("suggestion %s/%s is not part of the taxonomy", category, subcategory)
	}
	return category, subcategory, nil
}

func categoryRequest(title, description string) string {
	var request strings.Builder

	request.WriteString("Classify the job posting into exactly one category and subcategory from this list:\n")
	request.WriteString(taxonomyListing())
	request.WriteString("Answer only with JSON of the form {\"category\": \"...\", \"subcategory\": \"...\"}. ")
	request.WriteString("Use general/other when nothing fits.\n")
	request.WriteString("Title: " + title + "\n")
	if description != "" {
		request.WriteString("Description: " + normalize.Truncate(description, promptDescriptionLength) + "\n")
	}
	return request.String()
}

func taxonomyListing() string {
	taxonomy := entities.Taxonomy()

	categories := make([]string, 0, len(taxonomy))
	for category := range taxonomy {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)

	var listing strings.Builder
	for _, category := range categories {
		subs := taxonomy[entities.Category(category)]
		names := make([]string, len(subs))
		for i, sub := range subs {
			names[i] = string(sub)
		}
		listing.WriteString("- " + category + ": " + strings.Join(names, ", ") + "\n")
	}
	return listing.String()
}

// stripCodeFence removes a markdown fence the model sometimes wraps around JSON.
func stripCodeFence(response string) string {
	response = strings.TrimSpace(response)
	if !strings.HasPrefix(response, "```") {
		return response
	}
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}
