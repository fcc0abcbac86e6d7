package overlay

import (
	"context"

	"github.com/bgraf/gpxview/blob"
	"github.com/bgraf/gpxview/geotrack"
)

// Loader turns a registered blob into a track. Load runs off the caller's goroutine.
type Loader interface {
	Load(ctx context.Context, ref blob.Ref) (geotrack.TrackSource, error)
}

type LoaderFunc func(ctx context.Context, ref blob.Ref) (geotrack.TrackSource, error)

func (f LoaderFunc) Load(ctx context.Context, ref blob.Ref) (geotrack.TrackSource, error) {
	return f(ctx, ref)
}

// BlobLoader parses blobs of a store as GPX or NMEA depending on their name.
type BlobLoader struct {
	Blobs *blob.Store
}

func (l BlobLoader) Load(ctx context.Context, ref blob.Ref) (geotrack.TrackSource, error) {
	b, err := l.Blobs.Open(ref.ID)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	track, err := geotrack.Parse(b.Name, b.Data)
	if err != nil {
		return nil, err
	}

	return track, nil
}
