package a

import "context"

type Catalog struct{}

type DatasetSource interface {
	Load(ctx context.Context) (*Catalog, error)
}

type PromptHandler interface {
	Handle(ctx context.Context, id string) (any, error)
	HandleMany(ctx context.Context, ids []string) ([]any, error)
}

func bad(ctx context.Context, ids []string, src DatasetSource, h PromptHandler) {
	for _, id := range ids {
		src.Load(ctx)     // want "repeated load: Load called inside loop"
		h.Handle(ctx, id) // want "repeated load: Handle called inside loop - use HandleMany or HandleAll"
	}
	for i := 0; i < 3; i++ {
		src.Load(ctx) // want "repeated load: Load called inside loop"
	}
}

func badNested(ctx context.Context, groups [][]string, h PromptHandler) {
	for _, ids := range groups {
		for _, id := range ids {
			h.Handle(ctx, id) // want "repeated load: Handle called inside loop"
		}
	}
}

func good(ctx context.Context, ids []string, src DatasetSource, h PromptHandler) {
	// Loaded once, outside the loop
	catalog, _ := src.Load(ctx)
	for range ids {
		_ = catalog
	}
	h.HandleMany(ctx, ids)
}
