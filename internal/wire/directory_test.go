package wire

import (
	"Reunite/internal/api/config"
	"Reunite/internal/api/dto"
	"Reunite/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
)

type stubAlumni struct{}

func (stubAlumni) Colleges(context.Context) ([]string, error) {
	return []string{"IIT Delhi", "MIT"}, nil
}

func (stubAlumni) Branches(_ context.Context, college string) ([]string, error) {
	if college == "" {
		return nil, service.ErrAlumniQueryInvalid
	}
	return []string{"CSE", "EE"}, nil
}

func (stubAlumni) Alumni(_ context.Context, college, branch string) ([]*dto.AlumniDTO, error) {
	return []*dto.AlumniDTO{{ID: "a1", Name: "Asha", College: college, Branch: branch, Year: 2019}}, nil
}

func (stubAlumni) Import(context.Context, []dto.AlumniRecordDTO, bool) (*dto.ImportResultDTO, error) {
	return &dto.ImportResultDTO{}, nil
}

func TestDirectoryRoutes(t *testing.T) {
	app, err := buildDirectory(stubAlumni{}, &config.Config{})
	if err != nil {
		t.Fatalf("buildDirectory: %v", err)
	}
	if app.KafkaManager != nil {
		t.Fatal("kafka manager built while disabled")
	}

	get := func(path string) (int, envelope) {
		w := httptest.NewRecorder()
		app.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		var env envelope
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s: %v", w.Body.String(), err)
		}
		return w.Code, env
	}

	code, env := get("/api/colleges")
	var colleges []string
	decode(t, env, &colleges)
	if code != http.StatusOK || len(colleges) != 2 {
		t.Fatalf("colleges = %d %v", code, colleges)
	}

	code, env = get("/api/branches/MIT")
	var branches []string
	decode(t, env, &branches)
	if code != http.StatusOK || len(branches) != 2 {
		t.Fatalf("branches = %d %v", code, branches)
	}

	code, env = get("/api/alumni/IIT%20Delhi/CSE")
	var alumni []dto.AlumniDTO
	decode(t, env, &alumni)
	if code != http.StatusOK || len(alumni) != 1 || alumni[0].College != "IIT Delhi" || alumni[0].Branch != "CSE" {
		t.Fatalf("alumni = %d %+v", code, alumni)
	}
}
