package main

import (
	"strings"
	"testing"
)

func TestLoadRecords(t *testing.T) {
	input := `[
		{"Name": "Asha", "Bio": "SDE", "College": "MIT", "Branch": "CSE", "Year": 2019, "LinkedIn": "https://linkedin.com/in/asha"},
		{"Name": "", "College": "MIT", "Branch": "CSE"}
	]`
	records, err := loadRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("loadRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	if records[0].LinkedIn != "https://linkedin.com/in/asha" || records[0].Year != 2019 {
		t.Fatalf("record = %+v", records[0])
	}

	if _, err = loadRecords(strings.NewReader(`{"Name": "x"}`)); err == nil {
		t.Fatal("object input should fail")
	}
}
