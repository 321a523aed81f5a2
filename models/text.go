package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Text is a free-form booking field. Documents written by other clients may
// hold numbers, booleans, dates or arrays there; they decode to their text
// form instead of failing the whole result set.
type Text string

// UnmarshalJSON accepts strings, numbers and booleans.
func (s *Text) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		*s = Text(v)
	case json.Number:
		*s = Text(v.String())
	case bool:
		*s = Text(strconv.FormatBool(v))
	default:
		return fmt.Errorf("expected a string, number or boolean, got %s", data)
	}
	return nil
}

// UnmarshalBSONValue never fails on a well-formed value. Arrays are joined
// with ", " and embedded documents fall back to their extended JSON form.
func (s *Text) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*s = Text(bsonText(bson.RawValue{Type: t, Value: data}))
	return nil
}

func bsonText(raw bson.RawValue) string {
	if str, ok := scalarString(raw); ok {
		return str
	}
	switch raw.Type {
	case bsontype.Boolean:
		return strconv.FormatBool(raw.Boolean())
	case bsontype.DateTime:
		return raw.Time().UTC().Format(time.RFC3339)
	case bsontype.ObjectID:
		return raw.ObjectID().Hex()
	case bsontype.Array:
		values, err := raw.Array().Values()
		if err != nil {
			return raw.String()
		}
		parts := make([]string, 0, len(values))
		for _, v := range values {
			parts = append(parts, bsonText(v))
		}
		return strings.Join(parts, ", ")
	}
	return raw.String()
}
