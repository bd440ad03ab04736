package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/ports"
)

// DatasetHandler describes the datasets in the catalog.
type DatasetHandler struct {
	source  ports.DatasetSource
	prompts []Prompt
}

// NewDatasetHandler creates a new dataset handler.
func NewDatasetHandler(source ports.DatasetSource, prompts []Prompt) *DatasetHandler {
	return &DatasetHandler{
		source:  source,
		prompts: prompts,
	}
}

// sourceDescriber is implemented by dataset sources that can tell where a
// dataset is read from.
type sourceDescriber interface {
	Source(name string) (string, error)
}

// DatasetSummary describes one dataset.
type DatasetSummary struct {
	Name        string                     `json:"name" yaml:"name"`
	Records     int                        `json:"records" yaml:"records"`
	Collections []entities.CollectionCount `json:"collections" yaml:"collections"`
	Prompts     int                        `json:"prompts" yaml:"prompts"`
	Source      string                     `json:"source,omitempty" yaml:"source,omitempty"`
}

// Handle loads the catalog and summarizes every dataset in catalog order.
func (h *DatasetHandler) Handle(ctx context.Context) ([]DatasetSummary, error) {
	catalog, err := h.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading datasets: %w", err)
	}

	promptCounts := make(map[string]int)
	for _, p := range h.prompts {
		promptCounts[p.Dataset]++
	}

	describer, _ := h.source.(sourceDescriber)

	summaries := make([]DatasetSummary, 0, len(entities.DatasetNames))
	for _, name := range entities.DatasetNames {
		counts := catalog.Counts(name)
		records := 0
		for _, c := range counts {
			records += c.Records
		}
		summary := DatasetSummary{
			Name:        name,
			Records:     records,
			Collections: counts,
			Prompts:     promptCounts[name],
		}
		if describer != nil {
			src, err := describer.Source(name)
			if err != nil {
				return nil, fmt.Errorf("describing dataset %s: %w", name, err)
			}
			summary.Source = src
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
