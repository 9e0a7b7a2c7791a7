package multi_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianliechti/wingman-extract/pkg/detector"
	"github.com/adrianliechti/wingman-extract/pkg/detector/extension"
	"github.com/adrianliechti/wingman-extract/pkg/detector/magic"
	"github.com/adrianliechti/wingman-extract/pkg/detector/multi"

	"github.com/stretchr/testify/require"
)

type staticDetector struct {
	result string
	err    error
}

func (d staticDetector) Detect(ctx context.Context, input detector.Input) (string, error) {
	return d.result, d.err
}

func TestDetectFirstWins(t *testing.T) {
	d := multi.New(
		staticDetector{err: errors.New("offline")},
		staticDetector{result: "application/pdf"},
		staticDetector{result: "text/html"},
	)

	got, err := d.Detect(context.Background(), detector.Input{})
	require.NoError(t, err)
	require.Equal(t, "application/pdf", got)
}

func TestDetectRefinesGeneric(t *testing.T) {
	d := multi.New(magic.New(), extension.New())

	got, err := d.Detect(context.Background(), detector.Input{
		Name:   "notes.md",
		Header: []byte("# Notes\n\nsome text"),
	})

	require.NoError(t, err)
	require.Equal(t, "text/markdown", got)
}

func TestDetectKeepsGenericOnMismatch(t *testing.T) {
	d := multi.New(magic.New(), extension.New())

	got, err := d.Detect(context.Background(), detector.Input{
		Name:   "renamed.pdf",
		Header: []byte("this is not really a pdf"),
	})

	require.NoError(t, err)
	require.Equal(t, "text/plain", got)
}

func TestDetectNothing(t *testing.T) {
	d := multi.New(staticDetector{err: detector.ErrUndetected})

	_, err := d.Detect(context.Background(), detector.Input{})
	require.ErrorIs(t, err, detector.ErrUndetected)
}

func TestDetectKeepsFailureCause(t *testing.T) {
	offline := errors.New("dial tcp tika:9998: connection refused")

	d := multi.New(
		staticDetector{err: offline},
		staticDetector{err: detector.ErrUndetected},
	)

	_, err := d.Detect(context.Background(), detector.Input{})
	require.ErrorIs(t, err, detector.ErrUndetected)
	require.ErrorIs(t, err, offline)
	require.Contains(t, err.Error(), "connection refused")
}

func TestDetectIgnoresFailureOnMatch(t *testing.T) {
	d := multi.New(
		staticDetector{err: errors.New("offline")},
		staticDetector{result: "application/pdf"},
	)

	got, err := d.Detect(context.Background(), detector.Input{})
	require.NoError(t, err)
	require.Equal(t, "application/pdf", got)
}

func TestDetectCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := multi.New(magic.New()).Detect(ctx, detector.Input{Header: []byte("hi")})
	require.ErrorIs(t, err, context.Canceled)
}
