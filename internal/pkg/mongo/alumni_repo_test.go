package mongo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("REUNITE_TEST_MONGO_URL")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("mongo unavailable: %v", err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("mongo unavailable: %v", err)
	}

	db := client.Database("reunite_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func TestAlumniRepo(t *testing.T) {
	db := testDatabase(t)
	repo := NewAlumniRepo(db, "alumnis")
	ctx := context.Background()

	n, err := repo.InsertMany(ctx, []*AlumniModel{
		{Name: "Alice", College: "MIT", Branch: "CSE", Year: 2019},
		{Name: "Bob", College: "MIT", Branch: "EEE"},
		{Name: "Carol", College: "IIT Delhi", Branch: "CSE"},
		{Name: "", College: "MIT", Branch: "CSE"},
		{Name: "Dan", College: "MIT"},
	})
	if err != nil {
		t.Fatalf("InsertMany: %v", err)
	}
	if n != 3 {
		t.Fatalf("inserted %d, want 3", n)
	}

	colleges, err := repo.DistinctColleges(ctx)
	if err != nil {
		t.Fatalf("DistinctColleges: %v", err)
	}
	if len(colleges) != 2 || colleges[0] != "IIT Delhi" || colleges[1] != "MIT" {
		t.Fatalf("colleges = %v", colleges)
	}

	branches, err := repo.DistinctBranches(ctx, "MIT")
	if err != nil {
		t.Fatalf("DistinctBranches: %v", err)
	}
	if len(branches) != 2 {
		t.Fatalf("branches = %v", branches)
	}

	list, err := repo.FindByCollegeAndBranch(ctx, "MIT", "CSE")
	if err != nil {
		t.Fatalf("FindByCollegeAndBranch: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Alice" {
		t.Fatalf("alumni = %+v", list)
	}

	empty, err := repo.FindByCollegeAndBranch(ctx, "Nowhere", "CSE")
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty lookup = %v, %v", empty, err)
	}
}
