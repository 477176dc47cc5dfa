// Package service is the service layer of the tools directory.
package service

import (
	"context"
	"strings"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Laisky/devhub-api/internal/web/tool/dao"
	"github.com/Laisky/devhub-api/internal/web/tool/dto"
	"github.com/Laisky/devhub-api/internal/web/tool/model"
	mongoSDK "github.com/Laisky/devhub-api/library/db/mongo"
	"github.com/Laisky/devhub-api/library/rest"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// categoryAll disables the category filter, matched case-insensitively.
	categoryAll = "all"

	sortByName     = "name"
	sortByCategory = "category"
)

// Tool tools service
type Tool struct {
	logger glog.Logger
	dao    *dao.Tool
}

// New new tools service
func New(logger glog.Logger, dao *dao.Tool) *Tool {
	return &Tool{
		logger: logger,
		dao:    dao,
	}
}

// Create inserts a new tool with generated id and timestamps.
func (s *Tool) Create(ctx context.Context, req dto.NewTool) (*model.Tool, error) {
	now := gutils.Clock.GetUTCNow()
	tool := &model.Tool{
		ID:          uuid.NewString(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		URL:         req.URL,
		Tags:        req.Tags,
	}
	if tool.Tags == nil {
		tool.Tags = []string{}
	}

	if _, err := s.dao.GetToolsCol().InsertOne(ctx, tool); err != nil {
		return nil, errors.Wrap(err, "insert tool")
	}

	s.logger.Debug("created tool", zap.String("id", tool.ID))
	return tool, nil
}

// List loads one page of tools sorted ascending by the requested field.
// An invalid sort value is rejected before any store access.
func (s *Tool) List(ctx context.Context, q dto.ListToolsQuery) (*rest.Paged, error) {
	sort, err := sortSpec(q.Sort)
	if err != nil {
		return nil, err
	}

	pag := q.Pagination.Sanitize(defaultPageSize, maxPageSize)
	filter := makeFilter(q.Category)

	col := s.dao.GetToolsCol()
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "count tools")
	}

	cur, err := col.Find(ctx, filter,
		options.Find().SetSort(sort),
		options.Find().SetSkip(pag.Skip()),
		options.Find().SetLimit(int64(pag.Limit)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "find tools")
	}
	defer cur.Close(ctx) //nolint:errcheck

	items := []*model.Tool{}
	if err = cur.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "load tools")
	}

	return &rest.Paged{
		Items: items,
		Page:  pag.Page,
		Limit: pag.Limit,
		Total: total,
	}, nil
}

// Load returns one tool by id.
func (s *Tool) Load(ctx context.Context, id string) (*model.Tool, error) {
	tool := new(model.Tool)
	if err := s.dao.GetToolsCol().
		FindOne(ctx, bson.M{"_id": id}).
		Decode(tool); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.Wrapf(rest.ErrNotFound, "tool `%s`", id)
		}
		return nil, errors.Wrap(err, "find tool")
	}

	return tool, nil
}

// Update applies a partial update; only provided fields change
// and updated_at is refreshed.
func (s *Tool) Update(ctx context.Context, id string, patch dto.ToolPatch) (*model.Tool, error) {
	set := patch.Fields()
	set["updated_at"] = gutils.Clock.GetUTCNow()

	tool := new(model.Tool)
	if err := s.dao.GetToolsCol().
		FindOneAndUpdate(ctx,
			bson.M{"_id": id},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(tool); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.Wrapf(rest.ErrNotFound, "tool `%s`", id)
		}
		return nil, errors.Wrap(err, "update tool")
	}

	return tool, nil
}

// Remove hard-deletes one tool by id.
func (s *Tool) Remove(ctx context.Context, id string) error {
	res, err := s.dao.GetToolsCol().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "delete tool")
	}
	if res.DeletedCount == 0 {
		return errors.Wrapf(rest.ErrNotFound, "tool `%s`", id)
	}

	return nil
}

// makeFilter builds the list filter. The literal `all` (any case) disables
// the category filter; any other value is matched exactly, case-sensitively.
func makeFilter(category string) bson.D {
	filter := bson.D{}
	if category != "" && !strings.EqualFold(category, categoryAll) {
		filter = append(filter, bson.E{Key: "category", Value: category})
	}
	return filter
}

// sortSpec validates the sort parameter, restricted to `name` or `category`
// ascending. Empty defaults to name.
func sortSpec(sort string) (bson.D, error) {
	switch sort {
	case "", sortByName:
		return bson.D{{Key: sortByName, Value: 1}}, nil
	case sortByCategory:
		return bson.D{{Key: sortByCategory, Value: 1}}, nil
	default:
		return nil, errors.Wrapf(rest.ErrValidation,
			"sort must be `name` or `category`, got `%s`", sort)
	}
}
