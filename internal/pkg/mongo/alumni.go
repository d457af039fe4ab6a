package mongo

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AlumniModel 校友目录条目，与关系库无外键关联
type AlumniModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	College   string             `bson:"college" json:"college"`
	Branch    string             `bson:"branch" json:"branch"`
	Year      int                `bson:"year,omitempty" json:"year,omitempty"`
	LinkedIn  string             `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}

// Valid name college branch 均为必填
func (a *AlumniModel) Valid() bool {
	return strings.TrimSpace(a.Name) != "" &&
		strings.TrimSpace(a.College) != "" &&
		strings.TrimSpace(a.Branch) != ""
}
