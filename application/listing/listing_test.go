package listing_test

import (
	"context"
	"errors"
	"testing"

	applisting "github.com/bekzodm/minibazar/application/listing"
	"github.com/bekzodm/minibazar/catalog"
	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	"github.com/bekzodm/minibazar/storage"
	productstore "github.com/bekzodm/minibazar/store/product"
	shopstore "github.com/bekzodm/minibazar/store/shop"
	userstore "github.com/bekzodm/minibazar/store/user"
	cerr "github.com/bekzodm/minibazar/utils/errors"
	"github.com/stretchr/testify/require"
)

type env struct {
	app      applisting.ListingApp
	users    *userstore.Store
	shops    *shopstore.Store
	products *productstore.Store
}

func newEnv(t *testing.T) env {
	t.Helper()
	p, err := storage.NewFileProvider(t.TempDir())
	require.NoError(t, err)
	users := userstore.New(p)
	shops := shopstore.New(p)
	products := productstore.New(p)
	return env{
		app:      applisting.NewListingApp(users, shops, products),
		users:    users,
		shops:    shops,
		products: products,
	}
}

func requireErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	require.Equal(t, constant.ErrorTypeCode[want], ce.ErrorCode())
}

func TestListingApp_Submit(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(e env)
		req     *model.SubmitProductRequest
		wantErr bool
		errCode constant.ErrorType
		check   func(t *testing.T, e env, got *model.Product)
	}{
		{
			name: "success: registered seller under quota",
			setup: func(e env) {
				e.users.SetUser("Bekzod", "+998901234567")
				name := "Tech Haven"
				phone := "+998 90 123 45 67"
				e.shops.UpdateProfile(model.ShopPatch{ShopName: &name, Phone: &phone})
			},
			req: &model.SubmitProductRequest{Name: "Galaxy Buds", Category: "Audio", Price: 55},
			check: func(t *testing.T, e env, got *model.Product) {
				require.Equal(t, catalog.MaxID()+1, got.ID)
				require.Equal(t, "Tech Haven", got.SellerName)
				require.Equal(t, "+998 90 123 45 67", got.SellerPhone)
				require.Equal(t, 1, e.shops.Profile().ListingsUsed)
				items := e.products.Products()
				require.Len(t, items, 1)
			},
		},
		{
			name:    "error: not registered",
			setup:   func(e env) {},
			req:     &model.SubmitProductRequest{Name: "Galaxy Buds", Category: "Audio"},
			wantErr: true,
			errCode: constant.ErrNotRegistered,
		},
		{
			name: "error: listing limit reached",
			setup: func(e env) {
				e.users.SetUser("Bekzod", "+998901234567")
				for i := 0; i < constant.DefaultListingsLimit; i++ {
					e.shops.IncrementListingsUsed()
				}
			},
			req:     &model.SubmitProductRequest{Name: "Galaxy Buds", Category: "Audio"},
			wantErr: true,
			errCode: constant.ErrListingLimit,
		},
		{
			name: "success: seller identity falls back to visitor",
			setup: func(e env) {
				e.users.SetUser("Dilnoza", "+998935554433")
			},
			req: &model.SubmitProductRequest{Name: "Sneakers", Category: "Footwear", Price: 80},
			check: func(t *testing.T, e env, got *model.Product) {
				require.Equal(t, "Dilnoza", got.SellerName)
				require.Equal(t, "+998935554433", got.SellerPhone)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			tt.setup(e)

			got, err := e.app.Submit(context.Background(), tt.req)
			if tt.wantErr {
				require.Error(t, err)
				requireErrCode(t, err, tt.errCode)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, e, got)
			}
		})
	}
}

func TestListingApp_Submit_IDsRiseAboveBothSources(t *testing.T) {
	e := newEnv(t)
	e.users.SetUser("Bekzod", "+998901234567")

	first, err := e.app.Submit(context.Background(), &model.SubmitProductRequest{Name: "one", Category: "Audio"})
	require.NoError(t, err)
	second, err := e.app.Submit(context.Background(), &model.SubmitProductRequest{Name: "two", Category: "Audio"})
	require.NoError(t, err)

	require.Greater(t, first.ID, catalog.MaxID())
	require.Equal(t, first.ID+1, second.ID)
}

func TestListingApp_Delete_OnlyTouchesSubmissions(t *testing.T) {
	e := newEnv(t)
	e.users.SetUser("Bekzod", "+998901234567")
	got, err := e.app.Submit(context.Background(), &model.SubmitProductRequest{Name: "one", Category: "Audio"})
	require.NoError(t, err)

	require.NoError(t, e.app.Delete(context.Background(), got.ID))
	require.Empty(t, e.products.Products())

	// seed entries survive any delete
	require.NoError(t, e.app.Delete(context.Background(), 1))
	require.Len(t, e.app.Catalog(context.Background()).Items, len(catalog.Products()))
}

func TestListingApp_SellerCatalog_ConcatenatesSubmissionsFirst(t *testing.T) {
	e := newEnv(t)
	e.users.SetUser("Bekzod", "+998901234567")
	got, err := e.app.Submit(context.Background(), &model.SubmitProductRequest{Name: "Fresh", Category: "Audio"})
	require.NoError(t, err)

	merged := e.app.SellerCatalog(context.Background()).Items
	require.Len(t, merged, len(catalog.Products())+1)
	require.Equal(t, got.ID, merged[0].ID)
}
