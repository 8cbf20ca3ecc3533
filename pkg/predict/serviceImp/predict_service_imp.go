package serviceImp

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cropyield/entities"
	"cropyield/pkg/crop"
	"cropyield/pkg/predict/repository"
	"cropyield/pkg/predict/service"
	"cropyield/pkg/predict/types"
	"cropyield/pkg/yield"
)

const articlesPerFactor = 3

type kbSuggester interface {
	Suggest(query string, k int) ([]entities.ArticleRef, error)
}

type PredictSvc struct {
	table      *crop.Table
	noise      yield.NoiseSource
	repo       repository.PredictionRepository
	kb         kbSuggester
	log        *zap.Logger
	batchLimit int
	now        func() time.Time
}

var _ service.PredictService = (*PredictSvc)(nil)

// NewPredictService wires the engine. repo and kb may be nil: predictions are
// then neither logged nor annotated with articles.
func NewPredictService(t *crop.Table, noise yield.NoiseSource, repo repository.PredictionRepository, kb kbSuggester, log *zap.Logger, batchLimit int) *PredictSvc {
	if log == nil {
		log = zap.NewNop()
	}
	if batchLimit <= 0 {
		batchLimit = 1
	}
	return &PredictSvc{table: t, noise: noise, repo: repo, kb: kb, log: log, batchLimit: batchLimit, now: time.Now}
}

func (s *PredictSvc) Predict(ctx context.Context, in yield.FieldObservation) (*types.Prediction, error) {
	return s.predict(ctx, in, nil)
}

func (s *PredictSvc) PredictField(ctx context.Context, f *entities.Field) (*types.Prediction, error) {
	if f == nil {
		return nil, errors.New("nil field")
	}
	id := f.FieldID
	return s.predict(ctx, f.FieldObservation, &id)
}

func (s *PredictSvc) predict(ctx context.Context, in yield.FieldObservation, fieldID *uint) (*types.Prediction, error) {
	res, rs, err := yield.Predict(in, s.table, s.noise)
	if err != nil {
		return nil, err
	}

	p := &types.Prediction{
		ID:               uuid.NewString(),
		Observation:      in,
		Resolution:       rs,
		Unit:             types.YieldUnit,
		CreatedAt:        s.now().UTC(),
		PredictionResult: res,
	}
	if s.kb != nil && len(res.LimitingFactors) > 0 {
		p.Articles = s.articles(rs.Profile, res.LimitingFactors)
	}

	fields := []zap.Field{
		zap.String("id", p.ID),
		zap.String("crop", in.CropType),
		zap.String("profile", rs.Profile),
		zap.Float64("yield", res.YieldEstimate),
		zap.Int("factors", len(res.LimitingFactors)),
	}
	if rs.Fallback() {
		s.log.Warn("prediction used fallback values", append(fields,
			zap.Bool("crop_exact", rs.CropExact),
			zap.Bool("soil_exact", rs.SoilExact),
			zap.Bool("irrigation_exact", rs.IrrigationExact))...)
	} else {
		s.log.Debug("prediction", fields...)
	}

	if s.repo != nil {
		if err := s.repo.Append(ctx, toLog(p, fieldID)); err != nil {
			s.log.Warn("prediction log append failed", zap.String("id", p.ID), zap.Error(err))
		}
	}
	return p, nil
}

// articles looks up KB references per factor; lookup failures only cost the
// annotation.
func (s *PredictSvc) articles(cropName string, fs []yield.LimitingFactor) map[yield.FactorName][]entities.ArticleRef {
	out := map[yield.FactorName][]entities.ArticleRef{}
	for _, f := range fs {
		if _, done := out[f.Name]; done {
			continue
		}
		refs, err := s.kb.Suggest(f.Name.Label()+" "+cropName, articlesPerFactor)
		if err != nil {
			s.log.Debug("kb suggest failed", zap.String("factor", string(f.Name)), zap.Error(err))
			continue
		}
		if len(refs) > 0 {
			out[f.Name] = refs
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// PredictBatch runs up to batchLimit predictions at once. Each item succeeds or
// fails on its own; results keep the input order.
func (s *PredictSvc) PredictBatch(ctx context.Context, in []yield.FieldObservation) []types.BatchItem {
	out := make([]types.BatchItem, len(in))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchLimit)
	for i := range in {
		out[i].Index = i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i].Error = err.Error()
				return nil
			}
			p, err := s.predict(gctx, in[i], nil)
			if err != nil {
				out[i].Error = err.Error()
				var pe *yield.ParamError
				if errors.As(err, &pe) {
					out[i].Field = pe.Field
				}
				return nil
			}
			out[i].Prediction = p
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (s *PredictSvc) Recent(ctx context.Context, limit int) ([]entities.PredictionLog, error) {
	if s.repo == nil {
		return []entities.PredictionLog{}, nil
	}
	return s.repo.Recent(ctx, limit)
}

func toLog(p *types.Prediction, fieldID *uint) *entities.PredictionLog {
	return &entities.PredictionLog{
		PredictionID:    p.ID,
		FieldID:         fieldID,
		CropType:        p.Observation.CropType,
		Profile:         p.Resolution.Profile,
		SoilType:        p.Observation.SoilType,
		IrrigationType:  p.Observation.IrrigationType,
		Region:          p.Observation.Region,
		Fallback:        p.Resolution.Fallback(),
		YieldEstimate:   p.YieldEstimate,
		Confidence:      p.Confidence,
		FactorCount:     len(p.LimitingFactors),
		Observation:     p.Observation,
		Factors:         p.LimitingFactors,
		Recommendations: p.Recommendations,
		CreatedAt:       p.CreatedAt,
	}
}
