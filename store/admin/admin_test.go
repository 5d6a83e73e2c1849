package admin_test

import (
	"testing"
	"time"

	"github.com/bekzodm/minibazar/constant"
	"github.com/bekzodm/minibazar/model"
	"github.com/bekzodm/minibazar/storage"
	"github.com/bekzodm/minibazar/store/admin"
)

func newStore(t *testing.T) *admin.Store {
	t.Helper()
	p, err := storage.NewFileProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}
	return admin.New(p)
}

func TestStore_AddRequest_CreatesPending(t *testing.T) {
	s := newStore(t)

	req := s.AddRequest(admin.AddRequestInput{
		UserID:        "+998901234567",
		UserName:      "Bekzod",
		SenderName:    "Tech Haven",
		ListingsCount: 10,
		Amount:        "10 000 so'm",
	})

	if req.ID == "" {
		t.Fatal("request id should be assigned")
	}
	if req.Status != constant.RequestStatusPending {
		t.Fatalf("status = %s, want pending", req.Status)
	}
	if time.Since(req.Date) > time.Minute {
		t.Fatalf("date = %v, want roughly now", req.Date)
	}

	// newest first
	second := s.AddRequest(admin.AddRequestInput{SenderName: "Audio World", ListingsCount: 20, Amount: "20 000 so'm"})
	reqs := s.Requests()
	if len(reqs) != 2 || reqs[0].ID != second.ID {
		t.Fatalf("requests not most-recent-first: %+v", reqs)
	}
}

func TestStore_ApproveRequest(t *testing.T) {
	s := newStore(t)
	req := s.AddRequest(admin.AddRequestInput{SenderName: "Tech Haven", ListingsCount: 10, Amount: "10 000 so'm"})

	s.ApproveRequest(req.ID)

	got, ok := s.Request(req.ID)
	if !ok {
		t.Fatal("request disappeared")
	}
	if got.Status != constant.RequestStatusApproved {
		t.Fatalf("status = %s, want approved", got.Status)
	}
	if !s.IsShopPremium("Tech Haven") {
		t.Fatal("approved sender should be premium")
	}
	if s.PendingCount() != 0 {
		t.Fatalf("PendingCount() = %d, want 0", s.PendingCount())
	}
}

func TestStore_ApproveRequest_EmptySenderSkipsRegistry(t *testing.T) {
	s := newStore(t)
	req := s.AddRequest(admin.AddRequestInput{ListingsCount: 10, Amount: "10 000 so'm"})

	s.ApproveRequest(req.ID)

	if len(s.ApprovedShops()) != 0 {
		t.Fatalf("ApprovedShops() = %v, want empty for empty sender", s.ApprovedShops())
	}
}

func TestStore_RejectRequest_LeavesRegistryUntouched(t *testing.T) {
	s := newStore(t)
	req := s.AddRequest(admin.AddRequestInput{SenderName: "Sport Style", ListingsCount: 10, Amount: "10 000 so'm"})

	s.RejectRequest(req.ID)

	got, _ := s.Request(req.ID)
	if got.Status != constant.RequestStatusRejected {
		t.Fatalf("status = %s, want rejected", got.Status)
	}
	if s.IsShopPremium("Sport Style") {
		t.Fatal("rejected sender must not be premium")
	}
}

func TestStore_PendingCount_TracksTransitions(t *testing.T) {
	s := newStore(t)
	a := s.AddRequest(admin.AddRequestInput{SenderName: "A", ListingsCount: 10, Amount: "x"})
	b := s.AddRequest(admin.AddRequestInput{SenderName: "B", ListingsCount: 10, Amount: "x"})
	s.AddRequest(admin.AddRequestInput{SenderName: "C", ListingsCount: 10, Amount: "x"})

	if s.PendingCount() != 3 {
		t.Fatalf("PendingCount() = %d, want 3", s.PendingCount())
	}

	s.ApproveRequest(a.ID)
	s.RejectRequest(b.ID)

	if s.PendingCount() != 1 {
		t.Fatalf("PendingCount() = %d, want 1", s.PendingCount())
	}
}

func TestStore_IsShopPremium_EmptyName(t *testing.T) {
	s := newStore(t)
	if s.IsShopPremium("") {
		t.Fatal(`IsShopPremium("") = true, want false`)
	}
	if s.IsShopPremium("Nobody") {
		t.Fatal("unknown shop must not be premium")
	}
}

func TestStore_RecordFailedAttempt_Lockout(t *testing.T) {
	s := newStore(t)

	s.RecordFailedAttempt()
	s.RecordFailedAttempt()
	if s.IsLocked() {
		t.Fatal("locked after 2 attempts, want unlocked")
	}

	s.RecordFailedAttempt()
	if !s.IsLocked() {
		t.Fatal("not locked after 3 attempts")
	}

	sec := s.Security()
	if sec.FailedAttempts != 3 {
		t.Fatalf("FailedAttempts = %d, want 3", sec.FailedAttempts)
	}
	if sec.LockoutUntil == nil {
		t.Fatal("LockoutUntil not set")
	}
	ahead := time.Until(*sec.LockoutUntil)
	if ahead < 23*time.Hour || ahead > 25*time.Hour {
		t.Fatalf("lockout deadline %v ahead, want ~24h", ahead)
	}
}

func TestStore_ResetSecurity(t *testing.T) {
	s := newStore(t)
	s.RecordFailedAttempt()
	s.RecordFailedAttempt()
	s.RecordFailedAttempt()

	s.ResetSecurity()

	sec := s.Security()
	if sec.FailedAttempts != 0 || sec.LockoutUntil != nil {
		t.Fatalf("Security() = %+v, want zeroed", sec)
	}
	if s.IsLocked() {
		t.Fatal("IsLocked() after reset = true, want false")
	}
}

func TestStore_CheckPin_DefaultAndReplace(t *testing.T) {
	s := newStore(t)

	if !s.CheckPin(constant.DefaultAdminPin) {
		t.Fatal("default pin rejected")
	}
	if s.CheckPin("0000") {
		t.Fatal("wrong pin accepted")
	}

	s.SetAdminPin("4321")
	if !s.CheckPin("4321") {
		t.Fatal("replaced pin rejected")
	}
	if s.CheckPin(constant.DefaultAdminPin) {
		t.Fatal("old pin still accepted after replace")
	}
}

func TestStore_ConfigPatches(t *testing.T) {
	s := newStore(t)

	number := "9860 0000 1111 2222"
	s.SetAdminCard(model.AdminCardPatch{Number: &number})

	cfg := s.Config()
	if cfg.Card.Number != number {
		t.Fatalf("card number = %s, want patched value", cfg.Card.Number)
	}
	if cfg.Card.Holder != constant.DefaultCardHolder {
		t.Fatalf("card holder = %s, want default untouched", cfg.Card.Holder)
	}

	token := "123:abc"
	s.SetBotConfig(model.BotConfigPatch{Token: &token})
	cfg = s.Config()
	if cfg.Bot.Token != token || cfg.Bot.Username != constant.DefaultBotUsername {
		t.Fatalf("bot config = %+v, want token patched and username untouched", cfg.Bot)
	}

	s.SetListingPrice(15000)
	s.SetAdminTelegram("new_admin")
	cfg = s.Config()
	if cfg.ListingPrice != 15000 || cfg.AdminTelegram != "new_admin" {
		t.Fatalf("config = %+v, want full replacements applied", cfg)
	}
}

func TestStore_RehydratesFromSnapshot(t *testing.T) {
	p, err := storage.NewFileProvider(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileProvider() error = %v", err)
	}

	s := admin.New(p)
	req := s.AddRequest(admin.AddRequestInput{SenderName: "Urban Gear", ListingsCount: 10, Amount: "x"})
	s.ApproveRequest(req.ID)
	s.SetAdminPin("9999")

	reloaded := admin.New(p)
	if !reloaded.IsShopPremium("Urban Gear") {
		t.Fatal("reloaded store lost approved shop")
	}
	if got, ok := reloaded.Request(req.ID); !ok || got.Status != constant.RequestStatusApproved {
		t.Fatalf("reloaded request = %+v ok=%v, want approved", got, ok)
	}
	if !reloaded.CheckPin("9999") {
		t.Fatal("reloaded store lost replaced pin")
	}
}
