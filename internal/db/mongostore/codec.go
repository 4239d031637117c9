package mongostore

import (
	"fmt"
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var timeType = reflect.TypeOf(time.Time{})

// newRegistry returns the default registry with a time.Time decoder that also
// accepts epoch milliseconds stored as numbers, the form older EduConnect
// documents carry in "timestamp" and "date".
func newRegistry() *bsoncodec.Registry {
	registry := bson.NewRegistry()
	registry.RegisterTypeDecoder(timeType, bsoncodec.ValueDecoderFunc(decodeTime))
	return registry
}

func decodeTime(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != timeType {
		return bsoncodec.ValueDecoderError{Name: "decodeTime", Types: []reflect.Type{timeType}, Received: val}
	}

	var t time.Time
	switch vr.Type() {
	case bsontype.DateTime:
		ms, err := vr.ReadDateTime()
		if err != nil {
			return err
		}
		t = time.UnixMilli(ms).UTC()
	case bsontype.Int64:
		ms, err := vr.ReadInt64()
		if err != nil {
			return err
		}
		t = time.UnixMilli(ms).UTC()
	case bsontype.Int32:
		ms, err := vr.ReadInt32()
		if err != nil {
			return err
		}
		t = time.UnixMilli(int64(ms)).UTC()
	case bsontype.Double:
		ms, err := vr.ReadDouble()
		if err != nil {
			return err
		}
		t = time.UnixMilli(int64(ms)).UTC()
	case bsontype.String:
		s, err := vr.ReadString()
		if err != nil {
			return err
		}
		if t, err = time.Parse(time.RFC3339Nano, s); err != nil {
			return fmt.Errorf("cannot decode %q into a time.Time: %w", s, err)
		}
	case bsontype.Null:
		if err := vr.ReadNull(); err != nil {
			return err
		}
	case bsontype.Undefined:
		if err := vr.ReadUndefined(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot decode %v into a time.Time", vr.Type())
	}
	val.Set(reflect.ValueOf(t))
	return nil
}
