// Package service is the service layer of the learning path.
package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Laisky/devhub-api/internal/web/path/dao"
	"github.com/Laisky/devhub-api/internal/web/path/dto"
	"github.com/Laisky/devhub-api/internal/web/path/model"
	mongoSDK "github.com/Laisky/devhub-api/library/db/mongo"
	"github.com/Laisky/devhub-api/library/rest"
)

// maxSteps is a soft cap on the whole collection, the path is never paginated.
const maxSteps = 1000

// Path learning-path service
type Path struct {
	logger glog.Logger
	dao    *dao.Path
}

// New new learning-path service
func New(logger glog.Logger, dao *dao.Path) *Path {
	return &Path{
		logger: logger,
		dao:    dao,
	}
}

// Create inserts a new step with generated id and timestamps.
func (s *Path) Create(ctx context.Context, req dto.NewStep) (*model.Step, error) {
	now := gutils.Clock.GetUTCNow()
	step := &model.Step{
		ID:          uuid.NewString(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Label:       req.Label,
		DurationMin: *req.DurationMin,
	}

	if _, err := s.dao.GetPathCol().InsertOne(ctx, step); err != nil {
		return nil, errors.Wrap(err, "insert path step")
	}

	s.logger.Debug("created path step", zap.String("id", step.ID))
	return step, nil
}

// List returns the whole path ordered by creation time ascending.
func (s *Path) List(ctx context.Context) ([]*model.Step, error) {
	cur, err := s.dao.GetPathCol().Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
		options.Find().SetLimit(maxSteps),
	)
	if err != nil {
		return nil, errors.Wrap(err, "find path steps")
	}
	defer cur.Close(ctx) //nolint:errcheck

	steps := []*model.Step{}
	if err = cur.All(ctx, &steps); err != nil {
		return nil, errors.Wrap(err, "load path steps")
	}

	return steps, nil
}

// Update applies a partial update; only provided fields change
// and updated_at is refreshed.
func (s *Path) Update(ctx context.Context, id string, patch dto.StepPatch) (*model.Step, error) {
	set := patch.Fields()
	set["updated_at"] = gutils.Clock.GetUTCNow()

	step := new(model.Step)
	if err := s.dao.GetPathCol().
		FindOneAndUpdate(ctx,
			bson.M{"_id": id},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(step); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.Wrapf(rest.ErrNotFound, "path step `%s`", id)
		}
		return nil, errors.Wrap(err, "update path step")
	}

	return step, nil
}

// Remove hard-deletes one step by id.
func (s *Path) Remove(ctx context.Context, id string) error {
	res, err := s.dao.GetPathCol().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "delete path step")
	}
	if res.DeletedCount == 0 {
		return errors.Wrapf(rest.ErrNotFound, "path step `%s`", id)
	}

	return nil
}
