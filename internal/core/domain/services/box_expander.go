package services

import (
	"errors"
	"fmt"
	"strings"

	"loadplanner/internal/core/domain/model/cargo"
	"loadplanner/internal/core/domain/model/kernel"
)

// BoxExpander turns order lines and manual what-if items into the unit boxes
// the packer works on. Box ids are assigned sequentially from 0 in input order.
type BoxExpander struct{}

// NewBoxExpander creates a BoxExpander.
func NewBoxExpander() BoxExpander {
	return BoxExpander{}
}

// FromOrderLines expands each line into BoxCount boxes sized from catalog.
//
// Weight rules per line:
//   - line weight is Units × article weight when Units > 0, otherwise
//     BoxCount × article weight
//   - every box of the line carries line weight / BoxCount
//   - when that share is not positive the article weight is used
//
// Returns an error when a line is invalid.
func (e BoxExpander) FromOrderLines(lines []cargo.OrderLine, catalog cargo.Catalog) ([]cargo.Box, error) {
	var boxes []cargo.Box
	var errList []error

	for i, line := range lines {
		if err := line.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("order line %d: %w", i, err))
			continue
		}

		article := catalog.Lookup(line.ArticleCode)
		count := line.BoxCount()

		lineWeight := float64(count) * article.WeightKg()
		if line.Units > 0 {
			lineWeight = line.Units * article.WeightKg()
		}
		weight := lineWeight / float64(count)
		if weight <= 0 {
			weight = article.WeightKg()
		}

		for range count {
			ref := cargo.Reference{
				Label:       articleLabel(article),
				OrderNumber: line.OrderNumber,
				ClientCode:  strings.TrimSpace(line.ClientCode),
				ArticleCode: article.Code(),
				Estimated:   article.Estimated(),
			}
			b, err := cargo.NewBox(len(boxes), article.Box(), weight, ref)
			if err != nil {
				return nil, err
			}
			boxes = append(boxes, b)
		}
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return boxes, nil
}

// FromManualItems expands each item into BoxCount boxes.
//
// Size precedence: explicit item dimensions, then the catalog, then the
// default box. An explicit item weight wins over the article weight. Label
// defaults to the article name, or its code when the name is unknown.
func (e BoxExpander) FromManualItems(items []cargo.ManualItem, catalog cargo.Catalog) ([]cargo.Box, error) {
	var boxes []cargo.Box

	for i, item := range items {
		article := catalog.Lookup(item.ArticleCode)
		size := article.Box()
		weight := article.WeightKg()
		estimated := article.Estimated()

		if item.HasDimensions() {
			d, err := kernel.NewDimensions(item.LengthCm, item.WidthCm, item.HeightCm)
			if err != nil {
				return nil, fmt.Errorf("manual item %d: %w", i, err)
			}
			size = d
			estimated = false
		}
		if item.WeightKg > 0 {
			weight = item.WeightKg
		}

		label := strings.TrimSpace(item.Label)
		if label == "" {
			label = articleLabel(article)
		}

		for range item.BoxCount() {
			ref := cargo.Reference{
				Label:       label,
				OrderNumber: item.OrderNumber,
				ClientCode:  strings.TrimSpace(item.ClientCode),
				ArticleCode: article.Code(),
				Estimated:   estimated,
			}
			b, err := cargo.NewBox(len(boxes), size, weight, ref)
			if err != nil {
				return nil, fmt.Errorf("manual item %d: %w", i, err)
			}
			boxes = append(boxes, b)
		}
	}

	return boxes, nil
}

func articleLabel(a cargo.Article) string {
	if a.Name() != "" {
		return a.Name()
	}
	return a.Code()
}
