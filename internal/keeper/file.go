package keeper

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mdjurovic/kratos/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// FileKeeper stores the snapshot as a single JSON file,
// <rootDir>/<namespace>.json.
type FileKeeper struct {
	namespace string
	path      string
}

func NewFileKeeper(rootDir, namespace string) (*FileKeeper, error) {
	if namespace == "" {
		return nil, errors.New("namespace empty")
	}
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileKeeper{
		namespace: namespace,
		path:      filepath.Join(rootDir, namespace+".json"),
	}, nil
}

func (k *FileKeeper) Load(ctx context.Context) (_ []byte, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "keeper.file.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("namespace", k.namespace))

	data, err := os.ReadFile(k.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Tracef("keeper [%s]: no stored snapshot yet", k.namespace)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	return data, nil
}

func (k *FileKeeper) Save(ctx context.Context, snapshot []byte) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "keeper.file.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("namespace", k.namespace))
	span.SetAttributes(attribute.Int("snapshot.size", len(snapshot)))

	// write to a temp file first, then rename, so a crash mid-write
	// never leaves a truncated snapshot behind
	tmpPath := k.path + ".tmp"
	if err := os.WriteFile(tmpPath, snapshot, 0o600); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	if err := os.Rename(tmpPath, k.path); err != nil {
		return fmt.Errorf("rename snapshot file: %w", err)
	}
	return nil
}
