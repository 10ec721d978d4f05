package mapper

import (
	"github.com/mealmart/mealmart-go/internal/domain/dao/mongo/document"
	"github.com/mealmart/mealmart-go/internal/domain/entity"
)

// ItemToDocument converts an Item entity to its MongoDB document
func ItemToDocument(i *entity.Item) *document.ItemDocument {
	if i == nil {
		return nil
	}
	return &document.ItemDocument{
		ID:              OIDFromHex(i.ID),
		Name:            i.Name,
		ShopID:          OIDFromHex(i.ShopID),
		Image:           i.Image,
		Images:          i.Images,
		Price:           i.Price,
		TimeTaken:       i.TimeTaken,
		RatingsAverage:  i.RatingsAverage,
		RatingsQuantity: i.RatingsQuantity,
		IsVeg:           i.IsVeg,
		IsAvailable:     i.IsAvailable,
		IsActive:        i.IsActive,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

// ItemToEntity converts a MongoDB document to an Item entity
func ItemToEntity(d *document.ItemDocument) *entity.Item {
	if d == nil {
		return nil
	}
	return &entity.Item{
		ID:              HexFromOID(d.ID),
		Name:            d.Name,
		ShopID:          HexFromOID(d.ShopID),
		Image:           d.Image,
		Images:          d.Images,
		Price:           d.Price,
		TimeTaken:       d.TimeTaken,
		RatingsAverage:  d.RatingsAverage,
		RatingsQuantity: d.RatingsQuantity,
		IsVeg:           d.IsVeg,
		IsAvailable:     d.IsAvailable,
		IsActive:        d.IsActive,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// OrderToDocument converts an Order entity to its MongoDB document
func OrderToDocument(o *entity.Order) *document.OrderDocument {
	if o == nil {
		return nil
	}
	return &document.OrderDocument{
		ID:            OIDFromHex(o.ID),
		ShopID:        OIDFromHex(o.ShopID),
		UserID:        OIDFromHex(o.UserID),
		PaymentID:     OIDFromHex(o.PaymentID),
		ItemIDs:       OIDsFromHex(o.ItemIDs),
		Status:        string(o.Status),
		TotalPrice:    o.TotalPrice,
		TimeReceived:  o.TimeReceived,
		TimePrepared:  o.TimePrepared,
		TimeDelivered: o.TimeDelivered,
		TimeCanceled:  o.TimeCanceled,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// OrderToEntity converts a MongoDB document to an Order entity
func OrderToEntity(d *document.OrderDocument) *entity.Order {
	if d == nil {
		return nil
	}
	return &entity.Order{
		ID:            HexFromOID(d.ID),
		ShopID:        HexFromOID(d.ShopID),
		UserID:        HexFromOID(d.UserID),
		PaymentID:     HexFromOID(d.PaymentID),
		ItemIDs:       HexesFromOID(d.ItemIDs),
		Status:        entity.OrderStatus(d.Status),
		TotalPrice:    d.TotalPrice,
		TimeReceived:  d.TimeReceived,
		TimePrepared:  d.TimePrepared,
		TimeDelivered: d.TimeDelivered,
		TimeCanceled:  d.TimeCanceled,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// PaymentToDocument converts a Payment entity to its MongoDB document
func PaymentToDocument(p *entity.Payment) *document.PaymentDocument {
	if p == nil {
		return nil
	}
	return &document.PaymentDocument{
		ID:              OIDFromHex(p.ID),
		ShopID:          OIDFromHex(p.ShopID),
		UserFromID:      OIDFromHex(p.UserFromID),
		UserToID:        OIDFromHex(p.UserToID),
		OrderID:         OIDFromHex(p.OrderID),
		TransactionID:   p.TransactionID,
		Type:            string(p.Type),
		Status:          string(p.Status),
		Amount:          p.Amount,
		TimeInitialized: p.TimeInitialized,
		TimeCompleted:   p.TimeCompleted,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// PaymentToEntity converts a MongoDB document to a Payment entity
func PaymentToEntity(d *document.PaymentDocument) *entity.Payment {
	if d == nil {
		return nil
	}
	return &entity.Payment{
		ID:              HexFromOID(d.ID),
		ShopID:          HexFromOID(d.ShopID),
		UserFromID:      HexFromOID(d.UserFromID),
		UserToID:        HexFromOID(d.UserToID),
		OrderID:         HexFromOID(d.OrderID),
		TransactionID:   d.TransactionID,
		Type:            entity.PaymentType(d.Type),
		Status:          entity.PaymentStatus(d.Status),
		Amount:          d.Amount,
		TimeInitialized: d.TimeInitialized,
		TimeCompleted:   d.TimeCompleted,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ReviewToDocument converts a Review entity to its MongoDB document
func ReviewToDocument(r *entity.Review) *document.ReviewDocument {
	if r == nil {
		return nil
	}
	return &document.ReviewDocument{
		ID:        OIDFromHex(r.ID),
		Review:    r.Review,
		Rating:    r.Rating,
		OrderID:   OIDFromHex(r.OrderID),
		UserID:    OIDFromHex(r.UserID),
		ShopID:    OIDFromHex(r.ShopID),
		ItemIDs:   OIDsFromHex(r.ItemIDs),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ReviewToEntity converts a MongoDB document to a Review entity
func ReviewToEntity(d *document.ReviewDocument) *entity.Review {
	if d == nil {
		return nil
	}
	return &entity.Review{
		ID:        HexFromOID(d.ID),
		Review:    d.Review,
		Rating:    d.Rating,
		OrderID:   HexFromOID(d.OrderID),
		UserID:    HexFromOID(d.UserID),
		ShopID:    HexFromOID(d.ShopID),
		ItemIDs:   HexesFromOID(d.ItemIDs),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// SupportToDocument converts a Support entity to its MongoDB document
func SupportToDocument(s *entity.Support) *document.SupportDocument {
	if s == nil {
		return nil
	}
	return &document.SupportDocument{
		ID:         OIDFromHex(s.ID),
		OrderID:    OIDFromHex(s.OrderID),
		UserID:     OIDFromHex(s.UserID),
		ShopID:     OIDFromHex(s.ShopID),
		Query:      s.Query,
		Type:       string(s.Type),
		IsSolved:   s.IsSolved,
		TimeAsked:  s.TimeAsked,
		TimeSolved: s.TimeSolved,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// SupportToEntity converts a MongoDB document to a Support entity
func SupportToEntity(d *document.SupportDocument) *entity.Support {
	if d == nil {
		return nil
	}
	return &entity.Support{
		ID:         HexFromOID(d.ID),
		OrderID:    HexFromOID(d.OrderID),
		UserID:     HexFromOID(d.UserID),
		ShopID:     HexFromOID(d.ShopID),
		Query:      d.Query,
		Type:       entity.SupportType(d.Type),
		IsSolved:   d.IsSolved,
		TimeAsked:  d.TimeAsked,
		TimeSolved: d.TimeSolved,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
