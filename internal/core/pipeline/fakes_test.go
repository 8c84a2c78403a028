package pipeline

import (
	"context"
	"fmt"

	"github.com/markdave123-py/Indexa/internal/core"
	"github.com/markdave123-py/Indexa/internal/models"
)

// fakeObjectStore serves objects from a map keyed "bucket/key".
type fakeObjectStore struct {
	objects map[string][]byte
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string][]byte{}}
}

func (f *fakeObjectStore) put(bucket, key string, data []byte) {
	f.objects[bucket+"/"+key] = data
}

func (f *fakeObjectStore) GetFile(_ context.Context, bucket, key string) ([]byte, error) {
	data, ok := f.objects[bucket+"/"+key]
	if !ok {
		return nil, fmt.Errorf("%w: s3://%s/%s: no such key", core.ErrObjectFetch, bucket, key)
	}
	return data, nil
}

func (f *fakeObjectStore) UploadFile(_ context.Context, bucket, key string, data []byte, _ string) (string, error) {
	f.put(bucket, key, data)
	return fmt.Sprintf("https://%s.s3.test.amazonaws.com/%s", bucket, key), nil
}

// fakeEmbedder returns deterministic vectors and can be told to fail after
// a number of successful calls.
type fakeEmbedder struct {
	dim       int
	calls     int
	failAfter int // fail on call N+1 when > 0
}

func (f *fakeEmbedder) EmbedText(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.failAfter > 0 && f.calls > f.failAfter {
		return nil, fmt.Errorf("%w: quota exceeded", core.ErrEmbedding)
	}
	vec := make([]float32, f.dim)
	for i := range vec {
		vec[i] = float32(len(text)%97) / 97
	}
	return vec, nil
}

// fakeIndex keeps upserted records per namespace, replacing by id the way
// the real index does.
type fakeIndex struct {
	upserts int
	byNS    map[string]map[string]models.VectorRecord
	fail    bool
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{byNS: map[string]map[string]models.VectorRecord{}}
}

func (f *fakeIndex) Upsert(_ context.Context, namespace string, records []models.VectorRecord) error {
	if f.fail {
		return fmt.Errorf("%w: index unavailable", core.ErrIndexWrite)
	}
	f.upserts++
	ns, ok := f.byNS[namespace]
	if !ok {
		ns = map[string]models.VectorRecord{}
		f.byNS[namespace] = ns
	}
	for _, rec := range records {
		ns[rec.ID] = rec
	}
	return nil
}

func (f *fakeIndex) Close() error { return nil }
