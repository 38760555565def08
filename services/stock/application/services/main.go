package services

import (
	"golang.org/x/text/language"

	"github.com/ghuser/shelfwatch/pkg/app"
	"github.com/ghuser/shelfwatch/pkg/cache"
	"github.com/ghuser/shelfwatch/services/stock/infrastructure/genai"
	"github.com/ghuser/shelfwatch/services/stock/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded
// context. It wires domain services with their infrastructure
// implementations.
type Services struct {
	Stock      *StockService
	Names      *NameService
	Import     *ImportService
	Urgency    *UrgencyService
	Suggestion *SuggestionService
}

// New wires all stock application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	itemRepo := postgres.NewStockItemRepository(a.Db, a.EventBus)
	nameRepo := postgres.NewCommonNameRepository(a.Db)
	snapshots := cache.NewStockSnapshotCache(a.Redis)
	gate := cache.NewAlertGateStore(a.Redis)

	tag, err := language.Parse(a.Config.CollationLocale)
	if err != nil {
		tag = language.Und
	}

	gen := genai.NewClient(genai.Config{
		BaseURL: a.Config.GenAIBaseURL,
		APIKey:  a.Config.GenAIAPIKey,
		Model:   a.Config.GenAIModel,
	})

	stock := NewStockService(itemRepo, snapshots)
	return &Services{
		Stock:      stock,
		Names:      NewNameService(stock, nameRepo, tag),
		Import:     NewImportService(nameRepo),
		Urgency:    NewUrgencyService(stock, gate),
		Suggestion: NewSuggestionService(gen, stock),
	}
}
