package models

// DocumentIDKey is the key under which a free-form document's store-assigned
// ID is returned.
const DocumentIDKey = "_id"

// Document is a free-form JSON object persisted as the client sent it.
type Document map[string]interface{}

// Payment is an append-only record of a confirmed client-side payment. Only
// "email" means anything to the server: it scopes the enrollment listing.
type Payment = Document

// Feedback is an append-only note left by a student.
type Feedback = Document

// ID returns the store-assigned ID, or "" before the document is stored.
func (d Document) ID() string {
	return d.StringField(DocumentIDKey)
}

// StringField returns the value under key when it is a string.
func (d Document) StringField(key string) string {
	s, _ := d[key].(string)
	return s
}

// WithoutID returns a shallow copy without the ID key, the form that is written.
func (d Document) WithoutID() Document {
	out := make(Document, len(d))
	for k, v := range d {
		if k != DocumentIDKey {
			out[k] = v
		}
	}
	return out
}

// WithID returns a shallow copy carrying id under DocumentIDKey.
func (d Document) WithID(id string) Document {
	out := d.WithoutID()
	out[DocumentIDKey] = id
	return out
}
