package service

import (
	"Reunite/internal/pkg/mongo"
	"context"
	"errors"
	"io"
	"sync"
	"time"
)

type fakeTokenStore struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{revoked: make(map[string]time.Duration)}
}

func (f *fakeTokenStore) Revoke(_ context.Context, signature string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked[signature] = ttl
	return nil
}

func (f *fakeTokenStore) IsRevoked(_ context.Context, signature string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.revoked[signature]
	return ok, nil
}

type fakeCache struct {
	mu     sync.Mutex
	data   map[string]string
	gets   int
	broken bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

var errCacheDown = errors.New("cache down")

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.broken {
		return "", errCacheDown
	}
	return f.data[key], nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.broken {
		return errCacheDown
	}
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte), types: make(map[string]string)}
}

func (f *fakeStorage) Upload(_ context.Context, objectName string, reader io.Reader, _ int64, contentType string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	url := "http://media.test/" + objectName
	f.objects[url] = data
	f.types[url] = contentType
	return url, nil
}

func (f *fakeStorage) Delete(_ context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, url)
	f.deleted = append(f.deleted, url)
	return nil
}

type fakeAlumniRepo struct {
	docs []*mongo.AlumniModel
}

func (f *fakeAlumniRepo) DistinctColleges(context.Context) ([]string, error) {
	seen := map[string]bool{}
	out := []string{}
	for _, d := range f.docs {
		if !seen[d.College] {
			seen[d.College] = true
			out = append(out, d.College)
		}
	}
	return out, nil
}

func (f *fakeAlumniRepo) DistinctBranches(_ context.Context, college string) ([]string, error) {
	seen := map[string]bool{}
	out := []string{}
	for _, d := range f.docs {
		if d.College == college && !seen[d.Branch] {
			seen[d.Branch] = true
			out = append(out, d.Branch)
		}
	}
	return out, nil
}

func (f *fakeAlumniRepo) FindByCollegeAndBranch(_ context.Context, college, branch string) ([]*mongo.AlumniModel, error) {
	out := []*mongo.AlumniModel{}
	for _, d := range f.docs {
		if d.College == college && d.Branch == branch {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeAlumniRepo) InsertMany(_ context.Context, list []*mongo.AlumniModel) (int, error) {
	n := 0
	for _, d := range list {
		if d.Valid() {
			f.docs = append(f.docs, d)
			n++
		}
	}
	return n, nil
}

func (f *fakeAlumniRepo) DeleteAll(context.Context) (int64, error) {
	n := int64(len(f.docs))
	f.docs = nil
	return n, nil
}
