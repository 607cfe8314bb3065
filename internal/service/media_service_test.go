package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/jaewoo-dev/instalite/internal/repository/postgres"
	"github.com/jaewoo-dev/instalite/internal/service"
	"github.com/jaewoo-dev/instalite/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObjectStore records puts in memory so upload tests run without MinIO.
type fakeObjectStore struct {
	objects map[string][]byte
	types   map[string]string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (f *fakeObjectStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	f.objects[key] = data
	f.types[key] = contentType
	return nil
}

func (f *fakeObjectStore) ObjectURL(key string) string {
	return "http://fake-store/media/" + key
}

// multipartFile builds a real multipart file + header the way an HTTP upload
// would deliver them.
func multipartFile(t *testing.T, filename, contentType string, data []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	h["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	header := form.File["file"][0]
	file, err := header.Open()
	require.NoError(t, err)
	return file, header
}

func TestMediaService_Upload(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	store := newFakeObjectStore()
	mediaService := service.NewMediaService(repos.Media, store)
	ctx := context.Background()

	uploader, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	tests := []struct {
		name        string
		filename    string
		contentType string
		data        []byte
		wantErr     error
	}{
		{
			name:        "png upload",
			filename:    "photo.png",
			contentType: "image/png",
			data:        []byte("fake png bytes"),
		},
		{
			name:        "non-image rejected",
			filename:    "notes.txt",
			contentType: "text/plain",
			data:        []byte("hello"),
			wantErr:     service.ErrUnsupportedType,
		},
		{
			name:        "oversized upload rejected",
			filename:    "huge.jpg",
			contentType: "image/jpeg",
			data:        bytes.Repeat([]byte("x"), 10<<20+1),
			wantErr:     service.ErrMediaTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, header := multipartFile(t, tt.filename, tt.contentType, tt.data)
			defer file.Close()

			media, err := mediaService.Upload(ctx, uploader.ID, file, header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uploader.ID, media.UploaderID)
			assert.Equal(t, tt.contentType, media.ContentType)
			assert.Equal(t, int64(len(tt.data)), media.Size)
			assert.Equal(t, store.ObjectURL(media.ObjectKey), media.URL)
			assert.Equal(t, tt.data, store.objects[media.ObjectKey])

			// And it is readable back through the service
			got, err := mediaService.Get(ctx, media.ID)
			require.NoError(t, err)
			assert.Equal(t, media.ObjectKey, got.ObjectKey)
		})
	}
}
