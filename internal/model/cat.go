package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cat is a document of the cats collection.
type Cat struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Age      int                `bson:"age" json:"age"`
	Features []string           `bson:"features" json:"features"`
}
