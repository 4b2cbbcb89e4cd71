// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package areacode

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulecheck/internal/resilience"
)

type fakeS3 struct {
	errs   []error
	body   string
	calls  int
	bucket string
	key    string
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.calls++
	f.bucket = aws.ToString(in.Bucket)
	f.key = aws.ToString(in.Key)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return nil, err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func newTestS3Loader(client ObjectGetter) *s3Loader {
	l := NewS3LoaderWithClient(client, "reference-data", zerolog.Nop()).(*s3Loader)
	l.retry.InitialInterval = time.Millisecond
	l.retry.MaxInterval = time.Millisecond
	l.retry.Jitter = false
	return l
}

func TestS3Loader_Load(t *testing.T) {
	client := &fakeS3{body: "# codes\n201\n234\n"}
	set, err := newTestS3Loader(client).Load(context.Background(), "areacodes.txt")
	require.NoError(t, err)

	assert.Equal(t, 2, set.Size())
	assert.Equal(t, "reference-data", client.bucket)
	assert.Equal(t, "areacodes.txt", client.key)
}

func TestS3Loader_RetriesTransient(t *testing.T) {
	client := &fakeS3{
		errs: []error{&smithy.GenericAPIError{Code: "SlowDown", Message: "reduce rate"}},
		body: "234\n",
	}
	set, err := newTestS3Loader(client).Load(context.Background(), "areacodes.txt")
	require.NoError(t, err)

	assert.True(t, set.Contains("234"))
	assert.Equal(t, 2, client.calls)
}

func TestS3Loader_PermanentNotRetried(t *testing.T) {
	client := &fakeS3{
		errs: []error{&smithy.GenericAPIError{Code: "NoSuchKey", Message: "missing"}},
	}
	_, err := newTestS3Loader(client).Load(context.Background(), "areacodes.txt")
	require.Error(t, err)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, resilience.ErrorTypeResourceNotFound, resilience.ClassifyError(err).Type)
}
