package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Key)
	f.objects[key] = data
	f.types[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	key := aws.ToString(in.Key)
	data, ok := f.objects[key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentType:   aws.String(f.types[key]),
		ContentLength: aws.Int64(int64(len(data))),
	}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Provider_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	client := newFakeS3()
	p := NewS3ProviderWithClient(client, "assets", "/builder/")

	size, err := p.Save(ctx, "a.png", bytes.NewReader([]byte("abc")), "image/png")
	require.NoError(t, err)
	require.EqualValues(t, 3, size)
	require.Contains(t, client.objects, "builder/a.png")

	f, err := p.Open(ctx, "a.png")
	require.NoError(t, err)
	defer f.Body.Close()
	require.Equal(t, "image/png", f.ContentType)
	require.EqualValues(t, 3, f.Size)

	require.NoError(t, p.Delete(ctx, "a.png"))
	_, err = p.Open(ctx, "a.png")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestS3Provider_UnseekableBody(t *testing.T) {
	p := NewS3ProviderWithClient(newFakeS3(), "assets", "")

	size, err := p.Save(context.Background(), "a.mp3", io.LimitReader(bytes.NewReader([]byte("abc")), 3), "")
	require.NoError(t, err)
	require.EqualValues(t, -1, size)
}
