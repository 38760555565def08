package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	stockdomain "github.com/ghuser/shelfwatch/services/stock/domain"
	"github.com/ghuser/shelfwatch/services/stock/infrastructure/genai"
)

const suggestionSystemInstruction = "You are a household food assistant. " +
	"Suggest short, practical ways to use up the given groceries before they expire. " +
	"Answer in a few sentences, no markdown."

// Generator is the text-generation port. genai.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, req genai.Request) (string, error)
	Busy() bool
}

// SuggestionService produces consumption suggestions for one item or
// for the whole urgent set via the resilient generation client.
type SuggestionService struct {
	gen   Generator
	stock *StockService
}

// NewSuggestionService returns a SuggestionService over the given
// generator and stock reader.
func NewSuggestionService(gen Generator, stock *StockService) *SuggestionService {
	return &SuggestionService{gen: gen, stock: stock}
}

// Busy reports whether a generation call is currently in flight.
func (s *SuggestionService) Busy() bool {
	return s.gen.Busy()
}

// ForItem generates a suggestion for a single stock item.
func (s *SuggestionService) ForItem(ctx context.Context, userID, itemID uuid.UUID) (string, error) {
	item, err := s.stock.GetByID(ctx, userID, itemID)
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf("I have %d x %s (%s) expiring on %s. How should I use it up?",
		item.Quantity, item.Name, item.Category, item.ExpirationDate.Format("2006-01-02"))
	return s.generate(ctx, query)
}

// ForUrgent generates one combined suggestion for every item currently
// in the urgent set. Returns ErrItemNotFound when the set is empty.
func (s *SuggestionService) ForUrgent(ctx context.Context, userID uuid.UUID) (string, error) {
	items, err := s.stock.List(ctx, userID)
	if err != nil {
		return "", err
	}

	report := Aggregate(items, timeNow())
	urgent := append(append([]ClassifiedItem{}, report.Expired...), report.Warning...)
	if len(urgent) == 0 {
		return "", stockdomain.ErrItemNotFound
	}

	var b strings.Builder
	b.WriteString("These groceries need attention:\n")
	for _, ci := range urgent {
		fmt.Fprintf(&b, "- %d x %s: %s\n", ci.Item.Quantity, ci.Item.Name, ci.Classification.Message)
	}
	b.WriteString("Suggest meals or uses that consume them soon.")
	return s.generate(ctx, b.String())
}

// generate runs the resilient call and maps its failures onto the
// domain taxonomy, so handlers never see raw transport errors.
func (s *SuggestionService) generate(ctx context.Context, query string) (string, error) {
	text, err := s.gen.Generate(ctx, genai.Request{
		SystemInstruction: suggestionSystemInstruction,
		Query:             query,
		SearchGrounding:   true,
	})
	if err != nil {
		if errors.Is(err, genai.ErrCallInFlight) {
			return "", stockdomain.ErrSuggestionInFlight
		}
		var ce *genai.CallError
		if errors.As(err, &ce) {
			return "", fmt.Errorf("%w: %s", stockdomain.ErrSuggestionUnavailable, ce.Error())
		}
		return "", fmt.Errorf("%w: %v", stockdomain.ErrSuggestionUnavailable, err)
	}
	return text, nil
}
