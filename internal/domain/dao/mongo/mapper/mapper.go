// Package mapper converts between domain entities and MongoDB documents.
package mapper

import "go.mongodb.org/mongo-driver/bson/primitive"

// OIDFromHex parses an entity id into an ObjectID, returning the nil
// ObjectID for malformed or empty input.
func OIDFromHex(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

// HexFromOID renders an ObjectID as an entity id, empty for the nil id
func HexFromOID(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

// OIDsFromHex converts a slice of entity ids, skipping malformed ones
func OIDsFromHex(hexes []string) []primitive.ObjectID {
	if hexes == nil {
		return nil
	}
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		if id, err := primitive.ObjectIDFromHex(h); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// HexesFromOID converts a slice of ObjectIDs to entity ids
func HexesFromOID(ids []primitive.ObjectID) []string {
	if ids == nil {
		return nil
	}
	hexes := make([]string, len(ids))
	for i, id := range ids {
		hexes[i] = id.Hex()
	}
	return hexes
}
