package services

import (
	"land-acreage/gazetteer"
	"land-acreage/models"
	"land-acreage/utils"
)

// Options selects the optional pipeline stages.
type Options struct {
	FractionPrepass  bool
	ExtractLocations bool
}

type stage struct {
	name string
	run  func(*models.Table) (*models.Table, error)
}

// Processor runs the extraction stages over a listings table in order.
type Processor struct {
	logger     *utils.Logger
	matcher    *Matcher
	normalizer *Normalizer
	reconciler *Reconciler
	locations  *LocationExtractor
	opts       Options
}

// NewProcessor wires the stages. A nil gazetteer falls back to the built-in
// county tables.
func NewProcessor(logger *utils.Logger, gaz *gazetteer.Gazetteer, opts Options) *Processor {
	if gaz == nil {
		gaz = gazetteer.New()
	}
	return &Processor{
		logger:     logger,
		matcher:    NewMatcher(logger),
		normalizer: NewNormalizer(logger),
		reconciler: NewReconciler(logger),
		locations:  NewLocationExtractor(logger, gaz),
		opts:       opts,
	}
}

func (p *Processor) stages() []stage {
	s := []stage{{"match", p.matcher.ExtractSizes}}
	if p.opts.FractionPrepass {
		s = append(s, stage{"prepass", p.normalizer.CanonicalizeFractions})
	}
	s = append(s,
		stage{"normalize", p.normalizer.ConvertToAcreage},
		stage{"reconcile", p.reconciler.Reconcile},
	)
	if p.opts.ExtractLocations {
		s = append(s, stage{"locations", p.locations.Extract})
	}
	return s
}

// Process runs every stage over a copy of t, which is left unchanged.
// Surviving rows keep their relative order. On a structural failure it
// returns a *StageError and no table.
func (p *Processor) Process(t *models.Table) (*models.Table, error) {
	in := 0
	if t != nil {
		in = len(t.Rows)
		t = t.Clone()
	}

	for _, s := range p.stages() {
		out, err := s.run(t)
		if err != nil {
			p.logger.Error("[pipeline] Stage %s failed: %v", s.name, err)
			return nil, &StageError{Stage: s.name, Err: err}
		}
		t = out
	}

	p.logger.Info("[pipeline] Processed %d → %d listings", in, len(t.Rows))
	return t, nil
}
