package database

import (
	"Reunite/internal/model"
	"context"
	"testing"
)

func TestBootstrapIsIdempotent(t *testing.T) {
	db, err := NewMemoryDB()
	if err != nil {
		t.Fatalf("NewMemoryDB: %v", err)
	}
	ctx := context.Background()
	seed := AdminSeed{Username: "admin", Email: "admin@alumni.com", Password: "admin123"}

	for i := 0; i < 2; i++ {
		if err := Bootstrap(ctx, db, seed); err != nil {
			t.Fatalf("Bootstrap run %d: %v", i, err)
		}
	}

	var colleges int64
	db.Model(&model.College{}).Count(&colleges)
	if colleges != int64(len(DefaultColleges)) {
		t.Fatalf("colleges = %d, want %d", colleges, len(DefaultColleges))
	}

	var admins []model.User
	db.Where("role = ?", model.RoleAdmin).Find(&admins)
	if len(admins) != 1 {
		t.Fatalf("admins = %d, want 1", len(admins))
	}
	if admins[0].Status != model.StatusActive || admins[0].CollegeName != "MIT" {
		t.Fatalf("unexpected admin %+v", admins[0])
	}
	if admins[0].Password == "admin123" {
		t.Fatal("admin password stored in plain text")
	}
}
