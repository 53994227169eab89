package receipt

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"comercialsoares.com/app/internal/modules/orders"
	"comercialsoares.com/app/internal/storage"
)

// Emitter renders the receipt for an order snapshot and mirrors it into the
// archive. It is the orders.Renderer collaborator: the core never waits on
// it and never sees its failures.
type Emitter struct {
	gen     *Generator
	archive storage.Storage // nil disables archiving
	log     *slog.Logger
}

func NewEmitter(gen *Generator, archive storage.Storage, l *slog.Logger) *Emitter {
	return &Emitter{gen: gen, archive: archive, log: l}
}

func (e *Emitter) Render(o orders.Order) {
	raw, err := e.gen.Generate(o)
	if err != nil {
		e.log.Error("receipt_render_failed", "order_id", o.ID, "numero", o.Number, "err", err)
		return
	}
	e.log.Info("receipt_rendered", "order_id", o.ID, "numero", o.Number, "bytes", len(raw))

	if e.archive == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		res, err := e.archive.Put(ctx, bytes.NewReader(raw), storage.PutInput{
			Filename:    Filename(o),
			ContentType: "application/pdf",
			Size:        int64(len(raw)),
		})
		if err != nil {
			e.log.Error("receipt_archive_failed", "order_id", o.ID, "err", err)
			return
		}
		e.log.Info("receipt_archived", "order_id", o.ID, "key", res.Key)
	}()
}
