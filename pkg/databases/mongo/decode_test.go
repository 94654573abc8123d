package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Nombre     string                   `mapstructure:"nombrePractica"`
	Fecha      time.Time                `mapstructure:"fecha"`
	Estado     bool                     `mapstructure:"estado"`
	Materiales []map[string]interface{} `mapstructure:"materiales"`
}

func TestDecode(t *testing.T) {
	fecha := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

	doc := bson.M{
		"nombrePractica": "Medición",
		"fecha":          primitive.NewDateTimeFromTime(fecha),
		"estado":         true,
		"materiales": primitive.A{
			primitive.D{
				{Key: "descripcion", Value: "Micrómetro"},
				{Key: "cantidad", Value: int32(2)},
			},
		},
	}

	var got decodeTarget
	require.NoError(t, Decode(doc, &got))

	assert.Equal(t, "Medición", got.Nombre)
	assert.True(t, got.Fecha.Equal(fecha))
	assert.True(t, got.Estado)
	require.Len(t, got.Materiales, 1)
	assert.Equal(t, "Micrómetro", got.Materiales[0]["descripcion"])
}

func TestDecode_ObjectIDToHex(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := map[string]interface{}{"id": oid}

	var got struct {
		ID string `mapstructure:"id"`
	}
	require.NoError(t, Decode(doc, &got))
	assert.Equal(t, oid.Hex(), got.ID)
}

func TestDecode_RejectsNonMapDocument(t *testing.T) {
	var got decodeTarget
	err := Decode("not-a-document", &got)
	assert.Error(t, err)
}
