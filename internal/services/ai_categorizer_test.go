package services

import (
	"context"
	"errors"
	"testing"

	"github.com/maxaizer/job-ingest/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAiClient struct {
	mock.Mock
}

func (m *mockAiClient) GenerateResponse(ctx context.Context, request string) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func Test_AICategorizer_SuggestCategory(t *testing.T) {
	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.MatchedBy(func(request string) bool {
		return assert.Contains(t, request, "Title: Growth Hacker") &&
			assert.Contains(t, request, "- marketing: digital-marketing")
	})).Return("```json\n{\"category\": \"Marketing\", \"subcategory\": \"digital-marketing\"}\n```", nil)

	category, subcategory, err := NewAICategorizer(client).SuggestCategory(context.Background(), "Growth Hacker", "")
	require.NoError(t, err)
	assert.Equal(t, entities.CategoryMarketing, category)
	assert.Equal(t, entities.SubDigitalMarketing, subcategory)
}

func Test_AICategorizer_RejectsUnknownPair(t *testing.T) {
	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.Anything).Return(`{"category":"tech","subcategory":"ux"}`, nil)

	_, _, err := NewAICategorizer(client).SuggestCategory(context.Background(), "Barista", "")
	assert.Error(t, err)
}

func Test_AICategorizer_UnexpectedResponse(t *testing.T) {
	client := &mockAiClient{}
	client.On("GenerateResponse", mock.Anything, mock.Anything).Return("probably sales", nil).Once()
	client.On("GenerateResponse", mock.Anything, mock.Anything).Return("", errors.New("Error 429")).Once()

	categorizer := NewAICategorizer(client)
	_, _, err := categorizer.SuggestCategory(context.Background(), "Barista", "")
	assert.ErrorContains(t, err, "unexpected response")

	_, _, err = categorizer.SuggestCategory(context.Background(), "Barista", "")
	assert.ErrorContains(t, err, "429")
}
