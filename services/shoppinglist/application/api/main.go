package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/handlers"
	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
)

// ShoppingListRoutes registers list, item and receipt endpoints on the
// provided chi router.
func ShoppingListRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Route("/lists", func(r chi.Router) {
			r.Post("/", handlers.NewPostListHandler(svcs).Execute)
			r.Get("/", handlers.NewGetListsHandler(svcs).Execute)

			r.Route("/{listId}", func(r chi.Router) {
				r.Get("/", handlers.NewGetListHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteListHandler(svcs).Execute)

				r.Post("/users", handlers.NewPostListUserHandler(svcs).Execute)
				r.Delete("/users/{userId}", handlers.NewDeleteListUserHandler(svcs).Execute)

				r.Get("/items", handlers.NewGetItemsHandler(svcs).Execute)
				r.Post("/items", handlers.NewPostItemHandler(svcs).Execute)
				r.Put("/items/{itemId}/purchase", handlers.NewPutItemPurchaseHandler(svcs).Execute)
				r.Delete("/items/{itemId}", handlers.NewDeleteItemHandler(svcs).Execute)

				r.Get("/receipts", handlers.NewGetReceiptsHandler(svcs).Execute)
			})
		})

		r.Post("/receipts/upload", handlers.NewPostReceiptUploadHandler(svcs).Execute)
	})
}
