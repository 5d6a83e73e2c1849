package account_test

import (
	"context"
	"testing"

	appaccount "github.com/bekzodm/minibazar/application/account"
	"github.com/bekzodm/minibazar/storage"
	shopstore "github.com/bekzodm/minibazar/store/shop"
	userstore "github.com/bekzodm/minibazar/store/user"
	"github.com/bekzodm/minibazar/model"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) (appaccount.AccountApp, *userstore.Store, *shopstore.Store) {
	t.Helper()
	p, err := storage.NewFileProvider(t.TempDir())
	require.NoError(t, err)
	users := userstore.New(p)
	shops := shopstore.New(p)
	return appaccount.NewAccountApp(users, shops), users, shops
}

func TestAccountApp_Register(t *testing.T) {
	app, users, shops := newApp(t)

	res, err := app.Register(context.Background(), &model.RegisterRequest{
		Name:  "Bekzod",
		Phone: "+998901234567",
	})
	require.NoError(t, err)
	require.Equal(t, "Bekzod", res.Name)

	u := users.Get()
	require.True(t, u.IsRegistered)
	require.Equal(t, "+998901234567", u.Phone)

	// first registration seeds the shop name
	require.Equal(t, "Bekzod", shops.Profile().ShopName)
}

func TestAccountApp_Register_KeepsExistingShopName(t *testing.T) {
	app, _, shops := newApp(t)
	name := "Tech Haven"
	shops.UpdateProfile(model.ShopPatch{ShopName: &name})

	_, err := app.Register(context.Background(), &model.RegisterRequest{Name: "Bekzod", Phone: "+998901234567"})
	require.NoError(t, err)
	require.Equal(t, "Tech Haven", shops.Profile().ShopName)
}

func TestAccountApp_Logout(t *testing.T) {
	app, users, _ := newApp(t)
	_, err := app.Register(context.Background(), &model.RegisterRequest{Name: "Bekzod", Phone: "+998901234567"})
	require.NoError(t, err)

	app.Logout(context.Background())

	require.False(t, users.IsRegistered())
	require.Equal(t, model.User{}, app.Current(context.Background()))
}
