package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// every account kind must satisfy the lifecycle constraint
func assertCredentialed[T Credentialed]() {}

var (
	_ = assertCredentialed[*User]
	_ = assertCredentialed[*Admin]
	_ = assertCredentialed[*Merchant]
	_ = assertCredentialed[*Shop]
)

func TestUser_RegistrationFields(t *testing.T) {
	u := &User{
		Account:            Account{Email: "ada@x.com", Role: RoleUser},
		RegistrationNumber: "mm-4411",
	}

	assert.False(t, u.IsRegistrationVerified)

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "mm-4411", out["registration_number"])
	assert.Equal(t, false, out["is_registration_verified"])
}

func TestMerchant_ReferencesShopByID(t *testing.T) {
	m := &Merchant{
		Account: Account{Name: "Grace", Role: RoleMerchant},
		ShopID:  "shop-9",
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "shop-9", out["shop_id"])
}

func TestShop_AggregateDefaults(t *testing.T) {
	s := &Shop{Account: Account{Name: "Noodle Bar", Role: RoleShop}}

	assert.Zero(t, s.RatingsAverage)
	assert.Zero(t, s.RatingsQuantity)
	assert.Zero(t, s.OrdersTotal)
	assert.Zero(t, s.OrdersTotalAmount)
	assert.Empty(t, s.OperatorIDs)
}

func TestShop_JSONShape(t *testing.T) {
	s := &Shop{
		Account:         Account{Name: "Noodle Bar", Email: "shop@x.com"},
		Slug:            "noodle-bar",
		RatingsAverage:  4.5,
		RatingsQuantity: 12,
		OperatorIDs:     []string{"merchant-1"},
		IsOpen:          true,
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "noodle-bar", out["slug"])
	assert.Equal(t, 4.5, out["ratings_average"])
	assert.Equal(t, true, out["is_open"])
}
