package catalog

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/timespan/misc"
)

// Export writes every record into a single object under key, each one
// length prefixed.  It returns how many records were written.
func (c *Catalog) Export(ctx context.Context, key string) (int, error) {
	records, err := c.List(ctx)
	if err != nil {
		return 0, err
	}

	w, err := c.store.BeginStream(ctx, key)
	if err != nil {
		return 0, errors.Wrapf(err, "can not export to %s", key)
	}
	for _, r := range records {
		b, err := misc.EncodeToBytes(r.stored())
		if err != nil {
			w.Abort()
			return 0, errors.Wrapf(err, "can not encode %s", r.Name)
		}
		if err := misc.WriteFrame(w, b); err != nil {
			w.Abort()
			return 0, errors.Wrapf(err, "can not export %s", r.Name)
		}
	}
	if err := w.Close(); err != nil {
		return 0, errors.Wrapf(err, "can not finish export to %s", key)
	}

	c.log.Info(fmt.Sprintf("exported %d spans to %s", len(records), key))
	return len(records), nil
}

// Import loads the records of an export, replacing records of the same name.
// IDs and update times are kept as exported.
func (c *Catalog) Import(ctx context.Context, key string) (int, error) {
	data, err := c.store.Read(ctx, key)
	if err != nil {
		return 0, errors.Wrapf(err, "can not import %s", key)
	}
	frames, err := misc.ReadFrames(data)
	if err != nil {
		return 0, errors.Wrapf(err, "corrupt export %s", key)
	}

	for idx, frame := range frames {
		var s storedRecord
		if err := misc.DecodeFromBytes(frame, &s); err != nil {
			return idx, errors.Wrapf(err, "corrupt record %d in %s", idx, key)
		}
		if err := validateName(s.Name); err != nil {
			return idx, err
		}
		r, err := s.record()
		if err != nil {
			return idx, errors.Wrapf(err, "corrupt record %d in %s", idx, key)
		}
		if err := c.write(ctx, r); err != nil {
			return idx, err
		}
	}

	c.log.Info(fmt.Sprintf("imported %d spans from %s", len(frames), key))
	return len(frames), nil
}
