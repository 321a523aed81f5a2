package bookingRepo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

func emailFilter(email string) bson.M {
	if email == "" {
		return bson.M{}
	}
	return bson.M{"email": email}
}

// searchFilter matches text as a literal, case-insensitive substring of
// either services or price.
func searchFilter(text string) bson.M {
	pattern := regexp.QuoteMeta(text)
	return bson.M{
		"$or": []bson.M{
			{"services": bson.M{"$regex": pattern, "$options": "i"}},
			{"price": bson.M{"$regex": pattern, "$options": "i"}},
		},
	}
}

func statusUpdate(status *string) bson.M {
	var value interface{}
	if status != nil {
		value = *status
	}
	return bson.M{"$set": bson.M{"status": value}}
}
