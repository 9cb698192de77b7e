package authz

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzTest(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("init authz failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap roles failed: %v", err)
	}
	return svc
}

func TestAnonymousTier(t *testing.T) {
	svc := setupAuthzTest(t)

	cases := []struct {
		path   string
		method string
		want   bool
	}{
		{"/api/v1/products", "GET", true},
		{"/api/v1/products/7", "GET", true},
		{"/api/v1/categories", "GET", true},
		{"/api/v1/users", "POST", true},
		{"/api/v1/token", "POST", true},
		{"/api/v1/carts/me", "GET", false},
		{"/api/v1/orders", "POST", false},
		{"/api/v1/favorites", "GET", false},
	}
	for _, tc := range cases {
		ok, err := svc.EnforceRequest(SubjectForUser(0), tc.path, tc.method)
		if err != nil {
			t.Fatalf("enforce %s %s failed: %v", tc.method, tc.path, err)
		}
		if ok != tc.want {
			t.Fatalf("%s %s anonymous want %v got %v", tc.method, tc.path, tc.want, ok)
		}
	}
}

func TestCustomerTierInheritsAnonymous(t *testing.T) {
	svc := setupAuthzTest(t)

	cases := []struct {
		path   string
		method string
		want   bool
	}{
		{"/api/v1/products", "GET", true}, // inherited
		{"/api/v1/carts/me", "GET", true},
		{"/api/v1/carts/5/add_item", "POST", true},
		{"/api/v1/orders", "POST", true},
		{"/api/v1/orders/3/cancel", "POST", true},
		{"/api/v1/favorites/toggle/9", "POST", true},
		{"/api/v1/users/me", "PUT", true},
	}
	for _, tc := range cases {
		ok, err := svc.EnforceRequest(SubjectForUser(42), tc.path, tc.method)
		if err != nil {
			t.Fatalf("enforce %s %s failed: %v", tc.method, tc.path, err)
		}
		if ok != tc.want {
			t.Fatalf("%s %s customer want %v got %v", tc.method, tc.path, tc.want, ok)
		}
	}
}

func TestNormalizeObjectStripsVersionPrefix(t *testing.T) {
	if got := NormalizeObject("/api/v1/products"); got != "/products" {
		t.Fatalf("want /products got %s", got)
	}
	if got := NormalizeObject("products"); got != "/products" {
		t.Fatalf("want /products got %s", got)
	}
	if got := NormalizeObject(""); got != "/" {
		t.Fatalf("want / got %s", got)
	}
}
