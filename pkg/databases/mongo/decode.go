package mongo

import (
	"fmt"
	"reflect"

	"github.com/labfi/labfi-api/internal/interfaces"

	"github.com/go-viper/mapstructure/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Decode maps a raw document returned by FindMany onto a struct with
// mapstructure tags, translating the BSON primitive types the driver hands
// back when decoding into plain maps.
func Decode(doc interfaces.Document, result interface{}) error {
	docMap, ok := toMap(doc)
	if !ok {
		return fmt.Errorf("MongoDBClient: cannot decode document of type %T", doc)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       bsonPrimitiveHook(),
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(docMap)
}

// bsonPrimitiveHook unwraps the primitive wrapper types found in documents
// decoded as map[string]interface{}: ObjectID to hex string, DateTime to
// time.Time, and D/A to plain maps and slices.
func bsonPrimitiveHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		switch v := data.(type) {
		case primitive.ObjectID:
			return v.Hex(), nil
		case primitive.DateTime:
			return v.Time().UTC(), nil
		case primitive.D:
			m := make(map[string]interface{}, len(v))
			for _, e := range v {
				m[e.Key] = e.Value
			}
			return m, nil
		case primitive.A:
			return []interface{}(v), nil
		}
		return data, nil
	}
}
