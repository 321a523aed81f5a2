package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestText_UnmarshalBSONValue(t *testing.T) {
	oid := primitive.NewObjectID()
	tests := []struct {
		name  string
		value interface{}
		want  Text
	}{
		{"string", "oil-change", "oil-change"},
		{"int32", int32(3), "3"},
		{"double", 2.5, "2.5"},
		{"bool", false, "false"},
		{"null", nil, ""},
		{"datetime", primitive.NewDateTimeFromTime(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)), "2024-03-01T00:00:00Z"},
		{"object id", oid, Text(oid.Hex())},
		{"array", bson.A{"oil", "brake", int32(2)}, "oil, brake, 2"},
		{"nested array", bson.A{"oil", bson.A{"brake", "tyre"}}, "oil, brake, tyre"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"services": tt.value})
			require.NoError(t, err)

			var b Booking
			require.NoError(t, bson.Unmarshal(raw, &b))
			assert.Equal(t, tt.want, b.Services)
		})
	}
}

func TestText_UnmarshalBSONValueDocument(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"status": bson.M{"state": "done"}})
	require.NoError(t, err)

	var b Booking
	require.NoError(t, bson.Unmarshal(raw, &b))
	assert.Contains(t, string(b.Status), "done")
}

func TestText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Text
		wantErr bool
	}{
		{"string", `{"services":"oil-change"}`, "oil-change", false},
		{"number", `{"services":12}`, "12", false},
		{"bool", `{"services":true}`, "true", false},
		{"null", `{"services":null}`, "", false},
		{"array", `{"services":["oil"]}`, "", true},
		{"object", `{"services":{"a":1}}`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Booking
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Services)
		})
	}
}

func TestBooking_EncodesTextAsString(t *testing.T) {
	raw, err := bson.Marshal(Booking{Services: "oil-change", Status: "pending"})
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, "oil-change", doc["services"])
	assert.Equal(t, "pending", doc["status"])
	assert.NotContains(t, doc, "date")
}
