package mongo

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestKV(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get existing", func(mt *mtest.T) {
		kv := NewKV(mt.DB, mt.Coll.Name())
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "bank-micro-saas-users"},
			{Key: "value", Value: "[]"},
		}))

		got, ok, err := kv.Get(context.Background(), "bank-micro-saas-users")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !ok || got != "[]" {
			t.Fatalf("expected [], got %q (ok=%v)", got, ok)
		}
	})

	mt.Run("get missing", func(mt *mtest.T) {
		kv := NewKV(mt.DB, mt.Coll.Name())
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, ok, err := kv.Get(context.Background(), "bank-micro-saas-sessions")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if ok {
			t.Fatalf("expected missing key")
		}
	})

	mt.Run("set", func(mt *mtest.T) {
		kv := NewKV(mt.DB, mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		if err := kv.Set(context.Background(), "bank-micro-saas-users", "[]"); err != nil {
			t.Fatalf("Set: %v", err)
		}
	})

	mt.Run("delete error", func(mt *mtest.T) {
		kv := NewKV(mt.DB, mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Message: "interrupted at shutdown",
		}))

		if err := kv.Delete(context.Background(), "bank-micro-saas-sessions"); err == nil {
			t.Fatalf("expected error from failed delete")
		}
	})
}
