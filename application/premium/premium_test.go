package premium_test

import (
	"context"
	"errors"
	"testing"

	apppremium "github.com/bekzodm/minibazar/application/premium"
	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	"github.com/bekzodm/minibazar/storage"
	adminstore "github.com/bekzodm/minibazar/store/admin"
	shopstore "github.com/bekzodm/minibazar/store/shop"
	userstore "github.com/bekzodm/minibazar/store/user"
	cerr "github.com/bekzodm/minibazar/utils/errors"
	"github.com/stretchr/testify/require"
)

type env struct {
	app    apppremium.PremiumApp
	users  *userstore.Store
	shops  *shopstore.Store
	admins *adminstore.Store
}

func newEnv(t *testing.T) env {
	t.Helper()
	p, err := storage.NewFileProvider(t.TempDir())
	require.NoError(t, err)
	users := userstore.New(p)
	shops := shopstore.New(p)
	admins := adminstore.New(p)
	return env{
		app:    apppremium.NewPremiumApp(users, shops, admins, nil),
		users:  users,
		shops:  shops,
		admins: admins,
	}
}

func register(e env) {
	e.users.SetUser("Bekzod", "+998901234567")
	name := "Tech Haven"
	e.shops.UpdateProfile(model.ShopPatch{ShopName: &name})
}

func requireErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	require.Equal(t, constant.ErrorTypeCode[want], ce.ErrorCode())
}

func TestPremiumApp_SubmitRequest(t *testing.T) {
	e := newEnv(t)
	register(e)

	got, err := e.app.SubmitRequest(context.Background(), &model.SubmitPremiumRequest{
		ListingsCount: 10,
		Amount:        "10 000 so'm",
		CheckImage:    "receipt.jpg",
	})
	require.NoError(t, err)

	require.NotEmpty(t, got.ID)
	require.Equal(t, constant.RequestStatusPending, got.Status)
	require.Equal(t, "Tech Haven", got.SenderName)
	require.Equal(t, "Bekzod", got.UserName)
	require.Equal(t, "+998901234567", got.UserID)
	require.Equal(t, 1, e.app.PendingCount(context.Background()))
}

func TestPremiumApp_SubmitRequest_RequiresRegistration(t *testing.T) {
	e := newEnv(t)

	_, err := e.app.SubmitRequest(context.Background(), &model.SubmitPremiumRequest{ListingsCount: 10, Amount: "x"})
	require.Error(t, err)
	requireErrCode(t, err, constant.ErrNotRegistered)
}

func TestPremiumApp_Approve(t *testing.T) {
	e := newEnv(t)
	register(e)
	req, err := e.app.SubmitRequest(context.Background(), &model.SubmitPremiumRequest{ListingsCount: 20, Amount: "20 000 so'm"})
	require.NoError(t, err)

	limitBefore := e.shops.Profile().ListingsLimit

	require.NoError(t, e.app.Approve(context.Background(), req.ID))

	got, ok := e.admins.Request(req.ID)
	require.True(t, ok)
	require.Equal(t, constant.RequestStatusApproved, got.Status)
	require.True(t, e.app.IsShopPremium(context.Background(), "Tech Haven"))
	require.Equal(t, limitBefore+20, e.shops.Profile().ListingsLimit)
	require.Equal(t, 0, e.app.PendingCount(context.Background()))
}

// Approving twice credits the quota twice. The transition is deliberately
// unguarded; this pins the behavior so a change shows up in review.
func TestPremiumApp_Approve_TwiceDoubleCredits(t *testing.T) {
	e := newEnv(t)
	register(e)
	req, err := e.app.SubmitRequest(context.Background(), &model.SubmitPremiumRequest{ListingsCount: 10, Amount: "x"})
	require.NoError(t, err)

	limitBefore := e.shops.Profile().ListingsLimit

	require.NoError(t, e.app.Approve(context.Background(), req.ID))
	require.NoError(t, e.app.Approve(context.Background(), req.ID))

	require.Equal(t, limitBefore+20, e.shops.Profile().ListingsLimit)
}

func TestPremiumApp_Reject(t *testing.T) {
	e := newEnv(t)
	register(e)
	req, err := e.app.SubmitRequest(context.Background(), &model.SubmitPremiumRequest{ListingsCount: 10, Amount: "x"})
	require.NoError(t, err)

	limitBefore := e.shops.Profile().ListingsLimit

	require.NoError(t, e.app.Reject(context.Background(), req.ID))

	got, _ := e.admins.Request(req.ID)
	require.Equal(t, constant.RequestStatusRejected, got.Status)
	require.False(t, e.app.IsShopPremium(context.Background(), "Tech Haven"))
	require.Equal(t, limitBefore, e.shops.Profile().ListingsLimit)
}

func TestPremiumApp_DecisionsOnUnknownID(t *testing.T) {
	e := newEnv(t)

	err := e.app.Approve(context.Background(), "missing")
	require.Error(t, err)
	requireErrCode(t, err, constant.ErrNotFound)

	err = e.app.Reject(context.Background(), "missing")
	require.Error(t, err)
	requireErrCode(t, err, constant.ErrNotFound)
}

func TestPremiumApp_Pricing(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, constant.DefaultListingPrice, e.app.Pricing(context.Background()).ListingPrice)

	e.admins.SetListingPrice(15000)
	require.Equal(t, 15000, e.app.Pricing(context.Background()).ListingPrice)
}
