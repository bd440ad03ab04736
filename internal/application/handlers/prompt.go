package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/ports"
)

var (
	// ErrUnknownPrompt is returned for a prompt id that is not registered.
	ErrUnknownPrompt = errors.New("unknown prompt")
	// ErrUnknownDataset is returned for a dataset name that is not in the catalog.
	ErrUnknownDataset = errors.New("unknown dataset")
)

// PromptHandler runs registered prompts against the dataset catalog.
type PromptHandler struct {
	source  ports.DatasetSource
	prompts []Prompt
	byID    map[string]int
}

// NewPromptHandler creates a new prompt handler. Later prompts with a
// duplicate id are ignored.
func NewPromptHandler(source ports.DatasetSource, prompts []Prompt) *PromptHandler {
	h := &PromptHandler{
		source: source,
		byID:   make(map[string]int, len(prompts)),
	}
	for _, p := range prompts {
		if _, ok := h.byID[p.ID()]; ok {
			continue
		}
		h.byID[p.ID()] = len(h.prompts)
		h.prompts = append(h.prompts, p)
	}
	return h
}

// PromptResult is the outcome of running one prompt.
type PromptResult struct {
	Prompt      string `json:"prompt" yaml:"prompt"`
	Description string `json:"description" yaml:"description"`
	Result      any    `json:"result,omitempty" yaml:"result,omitempty"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
	Err         error  `json:"-" yaml:"-"`
}

// List returns the prompts in registration order. A non-empty dataset
// limits the list to that dataset's prompts.
func (h *PromptHandler) List(dataset string) ([]Prompt, error) {
	if dataset == "" {
		return append([]Prompt(nil), h.prompts...), nil
	}
	if !entities.IsDataset(dataset) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, dataset)
	}

	var out []Prompt
	for _, p := range h.prompts {
		if p.Dataset == dataset {
			out = append(out, p)
		}
	}
	return out, nil
}

// Lookup returns the prompt registered under id.
func (h *PromptHandler) Lookup(id string) (Prompt, error) {
	i, ok := h.byID[id]
	if !ok {
		return Prompt{}, fmt.Errorf("%w: %s", ErrUnknownPrompt, id)
	}
	return h.prompts[i], nil
}

// Handle loads the catalog and runs the prompt registered under id.
func (h *PromptHandler) Handle(ctx context.Context, id string) (*PromptResult, error) {
	prompt, err := h.Lookup(id)
	if err != nil {
		return nil, err
	}

	catalog, err := h.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading datasets: %w", err)
	}

	result := run(prompt, catalog)
	if result.Err != nil {
		return nil, fmt.Errorf("running %s: %w", id, result.Err)
	}
	return &result, nil
}

// HandleMany loads the catalog once and runs the prompts registered under
// ids, in order. Every id must be registered. A failing prompt records its
// error in its result and the rest still run.
func (h *PromptHandler) HandleMany(ctx context.Context, ids []string) ([]PromptResult, error) {
	prompts := make([]Prompt, 0, len(ids))
	for _, id := range ids {
		p, err := h.Lookup(id)
		if err != nil {
			return nil, err
		}
		prompts = append(prompts, p)
	}

	return h.runAll(ctx, prompts)
}

// HandleAll loads the catalog once and runs every prompt, or only the
// prompts of dataset when it is non-empty. A failing prompt records its
// error in its result and the rest still run.
func (h *PromptHandler) HandleAll(ctx context.Context, dataset string) ([]PromptResult, error) {
	prompts, err := h.List(dataset)
	if err != nil {
		return nil, err
	}

	return h.runAll(ctx, prompts)
}

func (h *PromptHandler) runAll(ctx context.Context, prompts []Prompt) ([]PromptResult, error) {
	catalog, err := h.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading datasets: %w", err)
	}

	results := make([]PromptResult, 0, len(prompts))
	for _, p := range prompts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, run(p, catalog))
	}
	return results, nil
}

func run(p Prompt, catalog *entities.Catalog) PromptResult {
	result := PromptResult{
		Prompt:      p.ID(),
		Description: p.Description,
	}
	v, err := p.Run(catalog)
	if err != nil {
		result.Err = err
		result.Error = err.Error()
		return result
	}
	result.Result = v
	return result
}
