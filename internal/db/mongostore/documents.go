package mongostore

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"educonnect-backend/internal/models"
)

// Each document type pairs the driver-assigned ObjectID with the inlined model.

type userDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	models.User `bson:",inline"`
}

func (d *userDocument) model() *models.User {
	usr := d.User
	usr.ID = d.ID.Hex()
	return &usr
}

type classDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	models.Class `bson:",inline"`
}

func (d *classDocument) model() *models.Class {
	class := d.Class
	class.ID = d.ID.Hex()
	return &class
}

type teacherRequestDocument struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	models.TeacherRequest `bson:",inline"`
}

func (d *teacherRequestDocument) model() *models.TeacherRequest {
	req := d.TeacherRequest
	req.ID = d.ID.Hex()
	return &req
}

// freeForm converts a raw payment or feedback document into its model,
// replacing the ObjectID with its hex form.
func freeForm(raw bson.M) models.Document {
	doc := models.Document(raw)
	id := ""
	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		id = oid.Hex()
	}
	return doc.WithID(id)
}

type auditDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	models.AuditLog `bson:",inline"`
}
