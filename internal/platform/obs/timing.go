package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const (
	RequestIDKey ctxKey = "req_id"
	FileKey      ctxKey = "file"
)

// WithFile tags ctx with the problem file being processed.
func WithFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, FileKey, path)
}

// Time logs the duration of an operation; call the returned func with the
// operation's error pointer when it finishes.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)
	file, _ := ctx.Value(FileKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		prefix := ""
		if reqID != "" {
			prefix += "req_id=" + reqID + " "
		}
		if file != "" {
			prefix += "file=" + file + " "
		}

		if errp != nil && *errp != nil {
			log.Printf("%sop=%s dur=%dms err=%v", prefix, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("%sop=%s dur=%dms", prefix, name, dur.Milliseconds())
	}
}
