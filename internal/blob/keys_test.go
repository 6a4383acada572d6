package blob

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmarr/casefolio/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"crash_report.pdf":     "crash_report.pdf",
		"scene photo (1).jpg":  "scene_photo__1_.jpg",
		"médical.pdf":          "m__dical.pdf", // é is two UTF-8 bytes
		"a/b\\c:d.txt":         "a_b_c_d.txt",
		"UPPER-lower_0.9.docx": "UPPER-lower_0.9.docx",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFileName(in), "input %q", in)
	}
}

func TestBuildObjectKey(t *testing.T) {
	now := time.UnixMilli(1767225600123)

	key := BuildObjectKey("case-42", "police report.pdf", now)
	assert.Equal(t, "case-42/1767225600123_police_report.pdf", key)

	// two files with the same name in the same case differ by timestamp
	other := BuildObjectKey("case-42", "police report.pdf", now.Add(time.Millisecond))
	assert.NotEqual(t, key, other)
}

// fakeS3 records calls and fails on demand.
type fakeS3 struct {
	putErr    error
	putKeys   []string
	deleteErr error
	deleted   []string
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.putKeys = append(f.putKeys, *params.Key)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deleted = append(f.deleted, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Gateway_Put(t *testing.T) {
	fake := &fakeS3{}
	g := &s3Gateway{client: fake, bucket: "docs", publicBaseURL: "https://docs.example.com", logger: logger.Nop()}

	result, err := g.Put(context.Background(), "case-1/1_a.pdf", bytes.Repeat([]byte{1}, 8), "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "case-1/1_a.pdf", result.Key)
	assert.Equal(t, "https://docs.example.com/case-1/1_a.pdf", result.URL)
	assert.Equal(t, []string{"case-1/1_a.pdf"}, fake.putKeys)
}

func TestS3Gateway_PutError(t *testing.T) {
	fake := &fakeS3{putErr: errors.New("disk full")}
	g := &s3Gateway{client: fake, bucket: "docs", publicBaseURL: "https://docs.example.com", logger: logger.Nop()}

	_, err := g.Put(context.Background(), "k", nil, "")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "disk full"))
}

func TestS3Gateway_Delete(t *testing.T) {
	fake := &fakeS3{}
	g := &s3Gateway{client: fake, bucket: "docs", publicBaseURL: "https://docs.example.com", logger: logger.Nop()}

	require.NoError(t, g.Delete(context.Background(), "case-1/1_a.pdf"))
	assert.Equal(t, []string{"case-1/1_a.pdf"}, fake.deleted)
}
