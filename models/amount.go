package models

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Amount is a price kept in its string form. Search matches prices with a
// regex, which only applies to string values in MongoDB.
type Amount string

// UnmarshalJSON accepts both "50" and 50.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or a number: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

// UnmarshalBSONValue decodes numeric prices stored out of band as well as strings.
func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	s, ok := scalarString(bson.RawValue{Type: t, Value: data})
	if !ok {
		return fmt.Errorf("cannot decode %s into an Amount", t)
	}
	*a = Amount(s)
	return nil
}

// scalarString renders string, numeric and null BSON values as text.
func scalarString(raw bson.RawValue) (string, bool) {
	switch raw.Type {
	case bsontype.String:
		return raw.StringValue(), true
	case bsontype.Double:
		return strconv.FormatFloat(raw.Double(), 'f', -1, 64), true
	case bsontype.Int32:
		return strconv.FormatInt(int64(raw.Int32()), 10), true
	case bsontype.Int64:
		return strconv.FormatInt(raw.Int64(), 10), true
	case bsontype.Decimal128:
		return raw.Decimal128().String(), true
	case bsontype.Null, bsontype.Undefined:
		return "", true
	}
	return "", false
}
