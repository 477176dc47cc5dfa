// Package service is the service layer of blogs.
package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Laisky/devhub-api/internal/web/blog/dao"
	"github.com/Laisky/devhub-api/internal/web/blog/dto"
	"github.com/Laisky/devhub-api/internal/web/blog/model"
	mongoSDK "github.com/Laisky/devhub-api/library/db/mongo"
	"github.com/Laisky/devhub-api/library/rest"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Blog blog service
type Blog struct {
	logger glog.Logger
	dao    *dao.Blog
}

// New new blog service
func New(logger glog.Logger, dao *dao.Blog) *Blog {
	return &Blog{
		logger: logger,
		dao:    dao,
	}
}

// Create inserts a new blog post with generated id and timestamps.
// Date falls back to the creation time when the payload omits it.
func (s *Blog) Create(ctx context.Context, req dto.NewBlog) (*model.Blog, error) {
	now := gutils.Clock.GetUTCNow()
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}

	blog := &model.Blog{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Tags:      req.Tags,
		Author:    req.Author,
		Date:      date,
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}

	if _, err := s.dao.GetBlogsCol().InsertOne(ctx, blog); err != nil {
		return nil, errors.Wrap(err, "insert blog")
	}

	s.logger.Debug("created blog", zap.String("id", blog.ID))
	return blog, nil
}

// List loads one page of blogs, newest date first.
func (s *Blog) List(ctx context.Context, q dto.ListBlogsQuery) (*rest.Paged, error) {
	pag := q.Pagination.Sanitize(defaultPageSize, maxPageSize)
	filter := makeFilter(q.Search, q.Tags)

	col := s.dao.GetBlogsCol()
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "count blogs")
	}

	cur, err := col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
		options.Find().SetSkip(pag.Skip()),
		options.Find().SetLimit(int64(pag.Limit)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "find blogs")
	}
	defer cur.Close(ctx) //nolint:errcheck

	items := []*model.Blog{}
	if err = cur.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "load blogs")
	}

	return &rest.Paged{
		Items: items,
		Page:  pag.Page,
		Limit: pag.Limit,
		Total: total,
	}, nil
}

// Load returns one blog by id.
func (s *Blog) Load(ctx context.Context, id string) (*model.Blog, error) {
	blog := new(model.Blog)
	if err := s.dao.GetBlogsCol().
		FindOne(ctx, bson.M{"_id": id}).
		Decode(blog); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.Wrapf(rest.ErrNotFound, "blog `%s`", id)
		}
		return nil, errors.Wrap(err, "find blog")
	}

	return blog, nil
}

// Update applies a partial update; only provided fields change
// and updated_at is refreshed.
func (s *Blog) Update(ctx context.Context, id string, patch dto.BlogPatch) (*model.Blog, error) {
	set := patch.Fields()
	set["updated_at"] = gutils.Clock.GetUTCNow()

	blog := new(model.Blog)
	if err := s.dao.GetBlogsCol().
		FindOneAndUpdate(ctx,
			bson.M{"_id": id},
			bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(blog); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.Wrapf(rest.ErrNotFound, "blog `%s`", id)
		}
		return nil, errors.Wrap(err, "update blog")
	}

	return blog, nil
}

// Remove hard-deletes one blog by id.
func (s *Blog) Remove(ctx context.Context, id string) error {
	res, err := s.dao.GetBlogsCol().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "delete blog")
	}
	if res.DeletedCount == 0 {
		return errors.Wrapf(rest.ErrNotFound, "blog `%s`", id)
	}

	return nil
}

// makeFilter builds the list filter. Search is a case-insensitive substring
// match OR-combined over title/excerpt/tags; tags is a comma-separated list
// matched by membership.
func makeFilter(search, tags string) bson.D {
	filter := bson.D{}

	if search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.M{"title": re},
			bson.M{"excerpt": re},
			bson.M{"tags": re},
		}})
	}

	if tagList := splitTags(tags); len(tagList) > 0 {
		filter = append(filter, bson.E{Key: "tags", Value: bson.M{"$in": tagList}})
	}

	return filter
}

// splitTags splits a comma-separated tag list, dropping empty entries.
func splitTags(tags string) (tagList []string) {
	for _, t := range strings.Split(tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tagList = append(tagList, t)
		}
	}
	return tagList
}
