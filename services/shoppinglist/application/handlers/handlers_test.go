package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/SamWeninger/shopping-assistant/pkg/app"
	"github.com/SamWeninger/shopping-assistant/pkg/auth"
	"github.com/SamWeninger/shopping-assistant/pkg/config"
	"github.com/SamWeninger/shopping-assistant/pkg/logger"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/api"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/handlers"
	appsvcs "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/domain/repositories"
	"github.com/SamWeninger/shopping-assistant/services/shoppinglist/infrastructure/persistence/memory"
)

type stubObjects struct {
	err error
}

func (o *stubObjects) PresignPut(_ context.Context, key, _ string, ttl time.Duration) (*repositories.UploadURL, error) {
	if o.err != nil {
		return nil, o.err
	}
	return &repositories.UploadURL{URL: "https://upload.example/" + key, Method: http.MethodPut, ExpiresAt: time.Now().Add(ttl)}, nil
}

func (o *stubObjects) PublicURL(key string) string { return "https://receipts.example/" + key }

func (o *stubObjects) Exists(context.Context, string) (bool, error) { return false, nil }

// newServer mounts the routes under /api. When identity is non-empty every
// request is authenticated as that user.
func newServer(t *testing.T, identity string, objects *stubObjects) http.Handler {
	t.Helper()
	a := &app.Application{Config: &config.Config{ReceiptUploadTTL: time.Hour}, Logger: logger.Nop()}
	if objects == nil {
		objects = &stubObjects{}
	}
	svcs := appsvcs.Wire(memory.NewStore(), objects, nil, a)

	r := chi.NewRouter()
	if identity != "" {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), auth.Identity{UserID: identity})))
			})
		})
	}
	r.Route("/api", func(r chi.Router) { api.ShoppingListRoutes(r, svcs) })
	return r
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decode %T: %v (body %q)", v, err, w.Body.String())
	}
	return v
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, kind string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
	body := decode[map[string]any](t, w)
	if body["kind"] != kind {
		t.Fatalf("kind = %v, want %q", body["kind"], kind)
	}
}

func TestCaller(t *testing.T) {
	authed := auth.WithIdentity(context.Background(), auth.Identity{UserID: "user123"})

	tests := []struct {
		name    string
		ctx     context.Context
		payload string
		want    string
		wantErr error
	}{
		{"identity only", authed, "", "user123", nil},
		{"identity matches payload", authed, "user123", "user123", nil},
		{"identity disagrees", authed, "mallory", "", domain.ErrAuthorization},
		{"payload only", context.Background(), " user456 ", "user456", nil},
		{"nobody", context.Background(), "", "", domain.ErrAuthentication},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := handlers.Caller(tt.ctx, tt.payload)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("Caller = %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}

func TestPostList(t *testing.T) {
	h := newServer(t, "", nil)

	tests := []struct {
		name     string
		body     any
		status   int
		wantKind string
	}{
		{"created", handlers.CreateListRequest{ListName: "Weekly Groceries", CreatedBy: "user123"}, http.StatusCreated, ""},
		{"missing name", handlers.CreateListRequest{CreatedBy: "user123"}, http.StatusUnprocessableEntity, "validation"},
		{"blank name", handlers.CreateListRequest{ListName: "   ", CreatedBy: "user123"}, http.StatusUnprocessableEntity, "validation"},
		{"invalid json", `{"listName":`, http.StatusBadRequest, "validation"},
		{"no caller", handlers.CreateListRequest{ListName: "Groceries"}, http.StatusUnauthorized, "authentication"},
		{"capacity", handlers.CreateListRequest{ListName: "Big", CreatedBy: "u0", AllowedUsers: []string{
			"u1", "u2", "u3", "u4", "u5", "u6", "u7", "u8", "u9", "u10",
		}}, http.StatusConflict, "capacity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/api/lists", tt.body)
			if tt.wantKind != "" {
				expectError(t, w, tt.status, tt.wantKind)
				return
			}
			if w.Code != tt.status {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}
			got := decode[handlers.ListResponse](t, w)
			if got.ListName != "Weekly Groceries" || got.CreatedBy != "user123" || len(got.AllowedUsers) != 1 {
				t.Fatalf("unexpected list %+v", got)
			}
		})
	}
}

func TestAuthenticatedCallerWins(t *testing.T) {
	h := newServer(t, "user123", nil)

	w := do(t, h, http.MethodPost, "/api/lists", handlers.CreateListRequest{ListName: "Groceries"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	if got := decode[handlers.ListResponse](t, w); got.CreatedBy != "user123" {
		t.Fatalf("createdBy = %q", got.CreatedBy)
	}

	w = do(t, h, http.MethodPost, "/api/lists", handlers.CreateListRequest{ListName: "Groceries", CreatedBy: "mallory"})
	expectError(t, w, http.StatusForbidden, "authorization")
}

func TestGetList_MalformedID(t *testing.T) {
	h := newServer(t, "", nil)
	w := do(t, h, http.MethodGet, "/api/lists/not-a-uuid?requestingUserId=user123", nil)
	expectError(t, w, http.StatusNotFound, "not_found")
}

func TestShoppingFlow(t *testing.T) {
	h := newServer(t, "", nil)

	w := do(t, h, http.MethodPost, "/api/lists", handlers.CreateListRequest{
		ListName: "Weekly Groceries", CreatedBy: "user123", AllowedUsers: []string{"user456", "user789", "user123"},
	})
	list := decode[handlers.ListResponse](t, w)
	if len(list.AllowedUsers) != 3 {
		t.Fatalf("allowedUsers = %v", list.AllowedUsers)
	}
	base := "/api/lists/" + list.ListID.String()

	w = do(t, h, http.MethodGet, base+"?requestingUserId=stranger", nil)
	expectError(t, w, http.StatusForbidden, "authorization")

	w = do(t, h, http.MethodPost, base+"/items", handlers.AddItemRequest{ItemName: "Eggs", AddedBy: "user123"})
	if w.Code != http.StatusCreated {
		t.Fatalf("add item: %d %s", w.Code, w.Body.String())
	}
	item := decode[handlers.ItemResponse](t, w)
	if item.Purchased || item.Quantity != 1 {
		t.Fatalf("unexpected item %+v", item)
	}

	cost := 2.99
	w = do(t, h, http.MethodPut, base+"/items/"+item.ItemID.String()+"/purchase", handlers.PurchaseItemRequest{
		PurchasedBy: "user456", Cost: &cost, ItemDetails: json.RawMessage(`{"brand":"BrandA","barcode":"123456789"}`),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("purchase: %d %s", w.Code, w.Body.String())
	}
	item = decode[handlers.ItemResponse](t, w)
	if !item.Purchased || item.Cost == nil || *item.Cost != 2.99 {
		t.Fatalf("unexpected purchased item %+v", item)
	}

	stale := int64(1)
	w = do(t, h, http.MethodPut, base+"/items/"+item.ItemID.String()+"/purchase", handlers.PurchaseItemRequest{
		PurchasedBy: "user456", ExpectedVersion: &stale,
	})
	expectError(t, w, http.StatusConflict, "conflict")

	w = do(t, h, http.MethodPost, base+"/users", handlers.AddUserRequest{RequestingUserID: "user123", UserID: "user456"})
	if got := decode[handlers.MembershipResponse](t, w); got.Status != "already_member" {
		t.Fatalf("status = %q", got.Status)
	}

	w = do(t, h, http.MethodDelete, base+"/users/user456?requestingUserId=user123", nil)
	if got := decode[handlers.MembershipResponse](t, w); got.Status != "removed" || len(got.AllowedUsers) != 2 {
		t.Fatalf("remove = %+v", got)
	}

	w = do(t, h, http.MethodDelete, base+"/users/user123?requestingUserId=user123", nil)
	expectError(t, w, http.StatusUnprocessableEntity, "validation")

	for i := 0; i < 2; i++ {
		w = do(t, h, http.MethodDelete, base+"/items/"+item.ItemID.String()+"?requestingUserId=user123", nil)
		if w.Code != http.StatusNoContent {
			t.Fatalf("delete item #%d: %d", i+1, w.Code)
		}
	}
	w = do(t, h, http.MethodGet, base+"/items?requestingUserId=user123", nil)
	if got := decode[handlers.ItemsResponse](t, w); len(got.Items) != 0 {
		t.Fatalf("items = %v", got.Items)
	}

	w = do(t, h, http.MethodDelete, base+"?requestingUserId=user789", nil)
	expectError(t, w, http.StatusForbidden, "authorization")

	w = do(t, h, http.MethodDelete, base+"?requestingUserId=user123", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete list: %d %s", w.Code, w.Body.String())
	}
	w = do(t, h, http.MethodGet, base+"?requestingUserId=user123", nil)
	expectError(t, w, http.StatusNotFound, "not_found")
}

func TestListsForCaller(t *testing.T) {
	h := newServer(t, "user123", nil)
	do(t, h, http.MethodPost, "/api/lists", handlers.CreateListRequest{ListName: "A"})
	do(t, h, http.MethodPost, "/api/lists", handlers.CreateListRequest{ListName: "B"})

	w := do(t, h, http.MethodGet, "/api/lists", nil)
	if got := decode[handlers.ListsResponse](t, w); len(got.Lists) != 2 {
		t.Fatalf("lists = %d", len(got.Lists))
	}
}

func TestReceiptUpload(t *testing.T) {
	objects := &stubObjects{}
	h := newServer(t, "user123", objects)

	list := decode[handlers.ListResponse](t, do(t, h, http.MethodPost, "/api/lists", handlers.CreateListRequest{ListName: "Groceries"}))

	w := do(t, h, http.MethodPost, "/api/receipts/upload", handlers.ReceiptUploadRequest{ListID: list.ListID.String()})
	if w.Code != http.StatusCreated {
		t.Fatalf("upload: %d %s", w.Code, w.Body.String())
	}
	grant := decode[handlers.ReceiptUploadResponse](t, w)
	if grant.Method != http.MethodPut || grant.ContentType != "image/jpeg" {
		t.Fatalf("unexpected grant %+v", grant)
	}
	wantImage := "https://receipts.example/receipts/" + grant.ReceiptID.String() + ".jpg"
	if grant.ImageURL != wantImage {
		t.Fatalf("imageUrl = %q, want %q", grant.ImageURL, wantImage)
	}

	w = do(t, h, http.MethodGet, "/api/lists/"+list.ListID.String()+"/receipts", nil)
	if got := decode[handlers.ReceiptsResponse](t, w); len(got.Receipts) != 1 || got.Receipts[0].ReceiptID != grant.ReceiptID {
		t.Fatalf("receipts = %+v", got.Receipts)
	}

	w = do(t, h, http.MethodPost, "/api/receipts/upload", handlers.ReceiptUploadRequest{ListID: "nope"})
	expectError(t, w, http.StatusNotFound, "not_found")

	objects.err = errors.New("signing key unavailable")
	w = do(t, h, http.MethodPost, "/api/receipts/upload", handlers.ReceiptUploadRequest{ListID: list.ListID.String()})
	expectError(t, w, http.StatusBadGateway, "upload_url")
}

func TestDeleteCallerFromBody(t *testing.T) {
	h := newServer(t, "", nil)
	list := decode[handlers.ListResponse](t, do(t, h, http.MethodPost, "/api/lists", handlers.CreateListRequest{
		ListName: "Weekly Groceries", CreatedBy: "user123", AllowedUsers: []string{"user456"},
	}))
	base := "/api/lists/" + list.ListID.String()

	w := do(t, h, http.MethodDelete, base+"/users/user456", handlers.DeleteRequest{RequestingUserID: "user123"})
	if w.Code != http.StatusOK {
		t.Fatalf("remove user with body caller: status = %d (body %s)", w.Code, w.Body.String())
	}
	if got := decode[handlers.MembershipResponse](t, w); got.Status != appsvcs.StatusRemoved {
		t.Fatalf("status = %q", got.Status)
	}

	tests := []struct {
		name     string
		path     string
		body     any
		status   int
		wantKind string
	}{
		{"no caller anywhere", base, nil, http.StatusUnauthorized, "authentication"},
		{"body is not json", base, "{", http.StatusBadRequest, "validation"},
		{"query and body disagree", base + "?requestingUserId=user123", handlers.DeleteRequest{RequestingUserID: "user456"}, http.StatusForbidden, "authorization"},
		{"body names a non-creator", base, handlers.DeleteRequest{RequestingUserID: "user456"}, http.StatusForbidden, "authorization"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, do(t, h, http.MethodDelete, tt.path, tt.body), tt.status, tt.wantKind)
		})
	}

	if w := do(t, h, http.MethodDelete, base, handlers.DeleteRequest{RequestingUserID: "user123"}); w.Code != http.StatusNoContent {
		t.Fatalf("delete list with body caller: status = %d (body %s)", w.Code, w.Body.String())
	}
	expectError(t, do(t, h, http.MethodGet, base+"?requestingUserId=user123", nil), http.StatusNotFound, "not_found")
}
