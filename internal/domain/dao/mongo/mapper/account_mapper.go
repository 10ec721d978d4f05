package mapper

import (
	"github.com/mealmart/mealmart-go/internal/domain/dao/mongo/document"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
)

func accountToDocument(a *entity.Account) document.AccountDocument {
	return document.AccountDocument{
		ID:              OIDFromHex(a.ID),
		Name:            a.Name,
		Email:           a.Email,
		Phone:           a.Phone,
		Password:        a.PasswordHash,
		Role:            string(a.Role),
		IsEmailVerified: a.IsEmailVerified,
		IsPhoneVerified: a.IsPhoneVerified,
		IsActive:        a.IsActive,
		PasscodeSecret:  a.PasscodeSecret,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func accountToEntity(d *document.AccountDocument) entity.Account {
	return entity.Account{
		ID:              HexFromOID(d.ID),
		Name:            d.Name,
		Email:           d.Email,
		Phone:           d.Phone,
		PasswordHash:    d.Password,
		Role:            entity.Role(d.Role),
		IsEmailVerified: d.IsEmailVerified,
		IsPhoneVerified: d.IsPhoneVerified,
		IsActive:        d.IsActive,
		PasscodeSecret:  d.PasscodeSecret,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func addressToDocument(a entity.Address) document.AddressDocument {
	return document.AddressDocument{
		Street:      a.Street,
		HouseNumber: a.HouseNumber,
		Landmark:    a.Landmark,
	}
}

func addressToEntity(d document.AddressDocument) entity.Address {
	return entity.Address{
		Street:      d.Street,
		HouseNumber: d.HouseNumber,
		Landmark:    d.Landmark,
	}
}

// UserToDocument converts a User entity to its MongoDB document
func UserToDocument(u *entity.User) *document.UserDocument {
	if u == nil {
		return nil
	}
	return &document.UserDocument{
		AccountDocument:        accountToDocument(&u.Account),
		RegistrationNumber:     u.RegistrationNumber,
		IsRegistrationVerified: u.IsRegistrationVerified,
		Address:                addressToDocument(u.Address),
		Image:                  u.Image,
	}
}

// UserToEntity converts a MongoDB document to a User entity
func UserToEntity(d *document.UserDocument) *entity.User {
	if d == nil {
		return nil
	}
	return &entity.User{
		Account:                accountToEntity(&d.AccountDocument),
		RegistrationNumber:     d.RegistrationNumber,
		IsRegistrationVerified: d.IsRegistrationVerified,
		Address:                addressToEntity(d.Address),
		Image:                  d.Image,
	}
}

// AdminToDocument converts an Admin entity to its MongoDB document
func AdminToDocument(a *entity.Admin) *document.AdminDocument {
	if a == nil {
		return nil
	}
	return &document.AdminDocument{
		AccountDocument: accountToDocument(&a.Account),
		Image:           a.Image,
	}
}

// AdminToEntity converts a MongoDB document to an Admin entity
func AdminToEntity(d *document.AdminDocument) *entity.Admin {
	if d == nil {
		return nil
	}
	return &entity.Admin{
		Account: accountToEntity(&d.AccountDocument),
		Image:   d.Image,
	}
}

// MerchantToDocument converts a Merchant entity to its MongoDB document
func MerchantToDocument(m *entity.Merchant) *document.MerchantDocument {
	if m == nil {
		return nil
	}
	return &document.MerchantDocument{
		AccountDocument: accountToDocument(&m.Account),
		Image:           m.Image,
		ShopID:          OIDFromHex(m.ShopID),
		IsVerified:      m.IsVerified,
	}
}

// MerchantToEntity converts a MongoDB document to a Merchant entity
func MerchantToEntity(d *document.MerchantDocument) *entity.Merchant {
	if d == nil {
		return nil
	}
	return &entity.Merchant{
		Account:    accountToEntity(&d.AccountDocument),
		Image:      d.Image,
		ShopID:     HexFromOID(d.ShopID),
		IsVerified: d.IsVerified,
	}
}

// ShopToDocument converts a Shop entity to its MongoDB document
func ShopToDocument(s *entity.Shop) *document.ShopDocument {
	if s == nil {
		return nil
	}
	return &document.ShopDocument{
		AccountDocument:        accountToDocument(&s.Account),
		Slug:                   s.Slug,
		Address:                addressToDocument(s.Address),
		ImageCover:             s.ImageCover,
		Images:                 s.Images,
		RatingsAverage:         s.RatingsAverage,
		RatingsQuantity:        s.RatingsQuantity,
		TimeAverage:            s.TimeAverage,
		OrdersTotal:            s.OrdersTotal,
		OrdersTotalAmount:      s.OrdersTotalAmount,
		OfflinePaymentAccepted: s.OfflinePaymentAccepted,
		IsOpen:                 s.IsOpen,
		OperatorIDs:            OIDsFromHex(s.OperatorIDs),
	}
}

// ShopToEntity converts a MongoDB document to a Shop entity
func ShopToEntity(d *document.ShopDocument) *entity.Shop {
	if d == nil {
		return nil
	}
	return &entity.Shop{
		Account:                accountToEntity(&d.AccountDocument),
		Slug:                   d.Slug,
		Address:                addressToEntity(d.Address),
		ImageCover:             d.ImageCover,
		Images:                 d.Images,
		RatingsAverage:         d.RatingsAverage,
		RatingsQuantity:        d.RatingsQuantity,
		TimeAverage:            d.TimeAverage,
		OrdersTotal:            d.OrdersTotal,
		OrdersTotalAmount:      d.OrdersTotalAmount,
		OfflinePaymentAccepted: d.OfflinePaymentAccepted,
		IsOpen:                 d.IsOpen,
		OperatorIDs:            HexesFromOID(d.OperatorIDs),
	}
}
