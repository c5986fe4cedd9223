package services

import (
	"fmt"

	"github.com/SamWeninger/shopping-assistant/pkg/app"
	"github.com/SamWeninger/shopping-assistant/pkg/cache"
	"github.com/SamWeninger/shopping-assistant/pkg/config"
	"github.com/SamWeninger/shopping-assistant/pkg/events"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/repositories"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/infrastructure/objectstore"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/infrastructure/persistence/dynamodb"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/infrastructure/persistence/memory"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Store    repositories.Store
	Lists    *ListService
	Items    *ItemService
	Deletion *DeletionService
	Receipts *ReceiptService
}

// New wires all shopping list services with infrastructure from the
// Application container. The persistence backend follows cfg.StoreBackend.
func New(a *app.Application) (*Services, error) {
	store, err := newStore(a)
	if err != nil {
		return nil, err
	}

	var listCache ListCache
	if a.Redis != nil {
		listCache = cache.NewListCache(a.Redis)
	}

	return Wire(store, objectstore.NewS3Store(a.Config), listCache, a), nil
}

// Wire assembles the services over explicit collaborators. Tests use it with
// the memory store and fakes.
func Wire(store repositories.Store, objects repositories.ObjectStore, listCache ListCache, a *app.Application) *Services {
	lists := NewListService(store.Lists(), listCache, a.Logger)
	return &Services{
		Store:    store,
		Lists:    lists,
		Items:    NewItemService(store.Items(), lists),
		Deletion: NewDeletionService(lists, store.Items(), a.Logger),
		Receipts: NewReceiptService(store.Receipts(), objects, lists, a.Config.ReceiptUploadTTL, a.Logger),
	}
}

func newStore(a *app.Application) (repositories.Store, error) {
	switch a.Config.StoreBackend {
	case config.StorePostgres:
		if a.Db == nil {
			return nil, fmt.Errorf("store backend %q requires a database connection", a.Config.StoreBackend)
		}
		return postgres.NewStore(a.Db, a.EventBus), nil
	case config.StoreDynamoDB:
		return dynamodb.NewStore(dynamodb.NewClient(a.Config), dynamodb.TablesFromConfig(a.Config), publisher(a), a.Logger), nil
	case config.StoreMemory:
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", a.Config.StoreBackend)
	}
}

// publisher avoids handing a typed nil *EventBus to the DynamoDB store.
func publisher(a *app.Application) events.Publisher {
	if a.EventBus == nil {
		return nil
	}
	return a.EventBus
}
